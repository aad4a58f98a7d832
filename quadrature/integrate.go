package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Integrand is evaluated once at each node, in node order.
type Integrand func(x float64) float64

// FallibleIntegrand may refuse a node; its error ends the evaluation.
type FallibleIntegrand func(x float64) (float64, error)

// VectorIntegrand evaluates the whole node vector in one call and must
// return one value per node.
type VectorIntegrand func(X []float64) []float64

// Integrate returns sum_k W[k]*f(X[k]). A panic raised by f is not recovered.
func Integrate(f Integrand, X, W []float64) (sum float64, err error) {
	if err = checkDims(X, W); err != nil {
		return
	}
	for k, x := range X {
		sum += W[k] * f(x)
	}
	return
}

func IntegrateFallible(f FallibleIntegrand, X, W []float64) (sum float64, err error) {
	if err = checkDims(X, W); err != nil {
		return
	}
	for k, x := range X {
		var fx float64
		if fx, err = f(x); err != nil {
			sum = 0
			err = fmt.Errorf("integrand failed at node %d (x = %g): %w", k, x, err)
			return
		}
		sum += W[k] * fx
	}
	return
}

func IntegrateVector(f VectorIntegrand, X, W []float64) (sum float64, err error) {
	if err = checkDims(X, W); err != nil {
		return
	}
	// f gets its own copy so a rule's nodes cannot be altered through it
	xc := make([]float64, len(X))
	copy(xc, X)
	F := f(xc)
	if len(F) != len(W) {
		err = fmt.Errorf("%w: integrand returned %d values for %d nodes",
			ErrDimensionMismatch, len(F), len(W))
		return
	}
	sum = floats.Dot(W, F)
	return
}
