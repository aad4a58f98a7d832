// Package quadrature computes Gauss-Legendre nodes and weights, maps them to
// a finite interval and evaluates the resulting quadrature sum.
//
// Nodes on the standard interval [-1,1] are always returned in ascending
// order with their weights index aligned. Nothing in the package holds state
// between calls.
package quadrature

import (
	"math"
	"sync"

	"github.com/notargets/gaussquad/utils"
)

const (
	DefaultTolerance     = 1.e-15
	DefaultMaxIterations = 100
)

// Solver locates the roots of P_N by Newton iteration, one independent lane
// per root. A zero field falls back to its default.
type Solver struct {
	Tolerance      float64 // Stop a lane once |dx| <= Tolerance
	MaxIterations  int     // Cap on Newton steps per lane
	ParallelDegree int     // Number of goroutines sharing the lanes
}

func NewSolver() *Solver {
	return &Solver{
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		ParallelDegree: 1,
	}
}

var DefaultSolver = NewSolver()

// Solve returns the N Gauss-Legendre nodes and weights on [-1,1] using the
// default solver.
func Solve(N int) (X, W []float64, err error) {
	return DefaultSolver.Solve(N)
}

func (s *Solver) Solve(N int) (X, W []float64, err error) {
	if err = checkOrder(N); err != nil {
		return
	}
	var (
		NP = s.parallelDegree(N)
		x  = make([]float64, N)
		w  = make([]float64, N)
	)
	if NP == 1 {
		if err = s.solveLanes(N, 0, N, x, w); err != nil {
			return
		}
		X, W = x, w
		return
	}
	var (
		pm   = utils.NewPartitionMap(NP, N)
		errs = make([]error, NP)
		wg   = sync.WaitGroup{}
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			errs[np] = s.solveLanes(N, kMin, kMax, x, w)
			wg.Done()
		}(np)
	}
	wg.Wait()
	// Buckets are contiguous in k, so the first error is the lowest failing root
	for _, e := range errs {
		if e != nil {
			err = e
			return
		}
	}
	X, W = x, w
	return
}

// solveLanes runs roots kMin <= k < kMax. Root k is the (k+1)-th largest, so
// it is stored at N-1-k to keep the output ascending.
func (s *Solver) solveLanes(N, kMin, kMax int, X, W []float64) (err error) {
	var (
		fN = float64(N)
		// 2(N+1)^2 / N^2
		wFac = 2. * (fN + 1.) * (fN + 1.) / (fN * fN)
	)
	for k := kMin; k < kMax; k++ {
		var x, dp float64
		if x, dp, err = s.newtonRoot(N, k); err != nil {
			return
		}
		w := wFac / ((1. - x*x) * dp * dp)
		if err = checkNode(N, k, x, w); err != nil {
			return
		}
		X[N-1-k], W[N-1-k] = x, w
	}
	return
}

// newtonRoot returns root k of P_N and the derivative term dp evaluated on
// the final iteration, which the weight formula needs.
func (s *Solver) newtonRoot(N, k int) (x, dp float64, err error) {
	var (
		fN      = float64(N)
		a       = (3. + 4.*float64(k)) / (4.*fN + 2.)
		tol     = s.tolerance()
		maxIter = s.maxIterations()
		dx      float64
	)
	x = math.Cos(math.Pi*a + 1./(8.*fN*fN*math.Tan(a)))
	for iter := 1; iter <= maxIter; iter++ {
		pNm1, pN := legendrePair(N, x)
		dp = (fN + 1.) * (pNm1 - x*pN) / (1. - x*x)
		dx = pN / dp
		if math.IsNaN(dx) || math.IsInf(dx, 0) {
			err = &DegeneracyError{Order: N, Root: k, Node: x, Weight: math.NaN(),
				Reason: "non-finite Newton step"}
			return
		}
		x -= dx
		if math.Abs(dx) <= tol {
			return
		}
	}
	err = &ConvergenceError{Order: N, Root: k, Iterations: maxIter,
		Delta: math.Abs(dx), Tolerance: tol}
	return
}

// legendrePair evaluates P_{N-1}(x) and P_N(x) with the three term recurrence.
func legendrePair(N int, x float64) (pNm1, pN float64) {
	if N == 0 {
		return 0, 1
	}
	pNm1, pN = 1., x
	for j := 1; j < N; j++ {
		fj := float64(j)
		pNm1, pN = pN, ((2.*fj+1.)*x*pN-fj*pNm1)/(fj+1.)
	}
	return
}

// LegendreP evaluates the Legendre polynomial P_N at x.
func LegendreP(N int, x float64) (p float64) {
	_, p = legendrePair(N, x)
	return
}

func checkNode(N, k int, x, w float64) (err error) {
	switch {
	case math.IsNaN(x) || !(math.Abs(x) < 1.):
		err = &DegeneracyError{Order: N, Root: k, Node: x, Weight: w,
			Reason: "node outside (-1,1)"}
	case math.IsNaN(w) || math.IsInf(w, 0) || !(w > 0.):
		err = &DegeneracyError{Order: N, Root: k, Node: x, Weight: w,
			Reason: "weight not finite and positive"}
	}
	return
}

func (s *Solver) tolerance() float64 {
	if s == nil || !(s.Tolerance > 0) {
		return DefaultTolerance
	}
	return s.Tolerance
}

func (s *Solver) maxIterations() int {
	if s == nil || s.MaxIterations < 1 {
		return DefaultMaxIterations
	}
	return s.MaxIterations
}

func (s *Solver) parallelDegree(N int) (NP int) {
	NP = 1
	if s != nil && s.ParallelDegree > 1 {
		NP = s.ParallelDegree
	}
	if NP > N {
		NP = N
	}
	return
}
