package quadrature

import (
	"fmt"
)

// Rule is a solved set of nodes and weights on [A,B]. A rule from NewRule
// lives on [-1,1]; Rescale returns an independent copy on another interval.
type Rule struct {
	Order int
	A, B  float64
	X, W  []float64
}

func NewRule(N int) (r Rule, err error) {
	return NewRuleWith(DefaultSolver, Newton, N)
}

func NewRuleWith(s *Solver, m Method, N int) (r Rule, err error) {
	var X, W []float64
	if X, W, err = SolveWith(s, m, N); err != nil {
		return
	}
	r = Rule{Order: N, A: -1, B: 1, X: X, W: W}
	return
}

func (r Rule) IsStandard() bool { return r.A == -1 && r.B == 1 }

// Rescale returns the rule mapped onto [a,b].
func (r Rule) Rescale(a, b float64) (rs Rule, err error) {
	var (
		X, W = r.X, r.W
	)
	if !r.IsStandard() {
		if X, W, err = Unscale(r.A, r.B, X, W); err != nil {
			return
		}
	}
	if X, W, err = Rescale(a, b, X, W); err != nil {
		return
	}
	rs = Rule{Order: r.Order, A: a, B: b, X: X, W: W}
	return
}

// Integrate approximates the integral of f over the rule's own interval.
func (r Rule) Integrate(f Integrand) (float64, error) {
	return Integrate(f, r.X, r.W)
}

// Composite splits [a,b] into equal panels and applies the rule on each.
func (r Rule) Composite(f Integrand, a, b float64, panels int) (sum float64, err error) {
	if panels < 1 {
		err = fmt.Errorf("%w: %d panels", ErrInvalidPanels, panels)
		return
	}
	if err = checkInterval(a, b); err != nil {
		return
	}
	var (
		h = (b - a) / float64(panels)
	)
	for p := 0; p < panels; p++ {
		var (
			pa, pb = a + float64(p)*h, a + float64(p+1)*h
			rp     Rule
			part   float64
		)
		if p == panels-1 {
			pb = b
		}
		if rp, err = r.Rescale(pa, pb); err != nil {
			return
		}
		if part, err = rp.Integrate(f); err != nil {
			return
		}
		sum += part
	}
	return
}

// Quad integrates f over [a,b] with an N point rule from the default solver.
func Quad(f Integrand, a, b float64, N int) (result float64, err error) {
	var r Rule
	if r, err = NewRule(N); err != nil {
		return
	}
	if r, err = r.Rescale(a, b); err != nil {
		return
	}
	return r.Integrate(f)
}
