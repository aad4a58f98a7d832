package quadrature

import (
	"fmt"
	"strings"
)

type Method uint8

const (
	Newton Method = iota
	Eigen
)

var (
	MethodNames = map[string]Method{
		"newton": Newton,
		"eigen":  Eigen,
	}
	MethodPrintNames = []string{"Newton", "Golub-Welsch"}
)

func NewMethod(label string) (m Method, err error) {
	var ok bool
	if m, ok = MethodNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown quadrature method %q, want one of newton, eigen", label)
	}
	return
}

func (m Method) Print() (txt string) {
	if int(m) >= len(MethodPrintNames) {
		return fmt.Sprintf("Method(%d)", m)
	}
	txt = MethodPrintNames[m]
	return
}

// SolveWith dispatches to the Newton solver s (DefaultSolver when nil) or to
// the eigenvalue method.
func SolveWith(s *Solver, m Method, N int) (X, W []float64, err error) {
	switch m {
	case Eigen:
		return SolveEigen(N)
	case Newton:
		if s == nil {
			s = DefaultSolver
		}
		return s.Solve(N)
	default:
		err = fmt.Errorf("unknown quadrature method %d", m)
	}
	return
}
