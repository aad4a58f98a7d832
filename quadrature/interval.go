package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rescale maps nodes and weights from [-1,1] to [a,b]:
//
//	x'_k = (b-a)/2 x_k + (b+a)/2,  w'_k = (b-a)/2 w_k
//
// New slices are returned; X and W are not modified.
func Rescale(a, b float64, X, W []float64) (XS, WS []float64, err error) {
	if err = checkInterval(a, b); err != nil {
		return
	}
	if err = checkDims(X, W); err != nil {
		return
	}
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (b + a)
	)
	XS = floats.ScaleTo(make([]float64, len(X)), half, X)
	floats.AddConst(mid, XS)
	WS = floats.ScaleTo(make([]float64, len(W)), half, W)
	return
}

// Unscale is the inverse of Rescale, mapping a rule on [a,b] back to [-1,1].
func Unscale(a, b float64, XS, WS []float64) (X, W []float64, err error) {
	if err = checkInterval(a, b); err != nil {
		return
	}
	if err = checkDims(XS, WS); err != nil {
		return
	}
	var (
		half = 0.5 * (b - a)
		mid  = 0.5 * (b + a)
	)
	X = make([]float64, len(XS))
	for i, xs := range XS {
		X[i] = (xs - mid) / half
	}
	W = floats.ScaleTo(make([]float64, len(WS)), 1./half, WS)
	return
}

func checkInterval(a, b float64) (err error) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0):
		err = fmt.Errorf("%w: [%g, %g] has a non-finite bound", ErrInvalidInterval, a, b)
	case !(a < b):
		err = fmt.Errorf("%w: [%g, %g], need a < b", ErrInvalidInterval, a, b)
	}
	return
}
