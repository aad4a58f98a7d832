package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolveEigen computes the same nodes and weights as Solve by the
// Golub-Welsch method: the nodes are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix of the Legendre recurrence and each weight is
// 2 times the squared first component of the normalised eigenvector.
func SolveEigen(N int) (X, W []float64, err error) {
	if err = checkOrder(N); err != nil {
		return
	}
	var (
		JJ  = mat.NewSymDense(N, nil)
		eig mat.EigenSym
	)
	// Main diagonal is zero for alpha = beta = 0
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		JJ.SetSym(i, i+1, ip1/math.Sqrt(4.*ip1*ip1-1.))
	}
	if ok := eig.Factorize(JJ, true); !ok {
		err = &DegeneracyError{Order: N, Root: -1, Node: math.NaN(), Weight: math.NaN(),
			Reason: "eigenvalue decomposition failed"}
		return
	}
	var (
		x   = eig.Values(nil)
		w   = make([]float64, N)
		VVr = mat.NewDense(N, N, nil)
	)
	eig.VectorsTo(VVr)
	for k := range w {
		v := VVr.At(0, k)
		w[k] = 2. * v * v
	}
	for k := range x {
		if err = checkNode(N, k, x[k], w[k]); err != nil {
			return
		}
	}
	X, W = x, w
	return
}
