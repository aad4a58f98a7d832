package quadrature

import (
	"errors"
	"fmt"
)

// Failures surfaced by the solver, the interval map and the evaluator.
// Detailed errors wrap one of these, so callers test with errors.Is.
var (
	// ErrInvalidOrder is returned for a quadrature order N < 1.
	ErrInvalidOrder = errors.New("invalid quadrature order")
	// ErrInvalidInterval is returned when a >= b or a bound is not finite.
	ErrInvalidInterval = errors.New("invalid integration interval")
	// ErrDimensionMismatch is returned when node and weight vectors differ in length.
	ErrDimensionMismatch = errors.New("node and weight dimensions do not match")
	// ErrConvergenceFailure is returned when Newton iteration hits its iteration cap.
	ErrConvergenceFailure = errors.New("newton iteration failed to converge")
	// ErrNumericalDegeneracy is returned when a node leaves (-1,1) or a
	// value becomes non-finite.
	ErrNumericalDegeneracy = errors.New("numerical degeneracy")
	// ErrInvalidPanels is returned for a composite rule with fewer than one panel.
	ErrInvalidPanels = errors.New("invalid composite panel count")
)

// ConvergenceError reports the root lane that did not reach the tolerance.
type ConvergenceError struct {
	Order      int
	Root       int
	Iterations int
	Delta      float64 // |dx| of the last Newton step
	Tolerance  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: order %d, root %d, |dx| = %g > %g after %d iterations",
		ErrConvergenceFailure, e.Order, e.Root, e.Delta, e.Tolerance, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergenceFailure }

// DegeneracyError reports the node whose value or weight is unusable.
type DegeneracyError struct {
	Order  int
	Root   int
	Node   float64
	Weight float64
	Reason string
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("%s: order %d, root %d (x = %g, w = %g): %s",
		ErrNumericalDegeneracy, e.Order, e.Root, e.Node, e.Weight, e.Reason)
}

func (e *DegeneracyError) Unwrap() error { return ErrNumericalDegeneracy }

func checkOrder(N int) (err error) {
	if N < 1 {
		err = fmt.Errorf("%w: N = %d, must be >= 1", ErrInvalidOrder, N)
	}
	return
}

func checkDims(X, W []float64) (err error) {
	if len(X) != len(W) {
		err = fmt.Errorf("%w: %d nodes, %d weights", ErrDimensionMismatch, len(X), len(W))
	}
	return
}
