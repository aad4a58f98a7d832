// Package integrands holds the named test functions the command line driver
// can integrate, together with their antiderivatives where one is known in
// closed form.
package integrands

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/gaussquad/utils"
)

type Integrand struct {
	Name           string
	Description    string
	F              func(x float64) float64
	Antiderivative func(x float64) float64 // nil when there is no closed form
	Degree         int                     // Polynomial degree, -1 otherwise
}

// Exact returns F(b)-F(a) when the antiderivative is known.
func (ig Integrand) Exact(a, b float64) (val float64, ok bool) {
	if ig.Antiderivative == nil {
		return
	}
	return ig.Antiderivative(b) - ig.Antiderivative(a), true
}

// Monomial returns x^p, p >= 0.
func Monomial(p int) Integrand {
	return Integrand{
		Name:        fmt.Sprintf("x%d", p),
		Description: fmt.Sprintf("x^%d", p),
		F:           func(x float64) float64 { return utils.POW(x, p) },
		Antiderivative: func(x float64) float64 {
			return utils.POW(x, p+1) / float64(p+1)
		},
		Degree: p,
	}
}

// Polynomial returns sum_i c[i] x^i.
func Polynomial(name string, c ...float64) Integrand {
	coeffs := make([]float64, len(c))
	copy(coeffs, c)
	return Integrand{
		Name:        name,
		Description: describePolynomial(coeffs),
		F: func(x float64) (y float64) {
			// Horner
			for i := len(coeffs) - 1; i >= 0; i-- {
				y = y*x + coeffs[i]
			}
			return
		},
		Antiderivative: func(x float64) (y float64) {
			for i := len(coeffs) - 1; i >= 0; i-- {
				y = y*x + coeffs[i]/float64(i+1)
			}
			return y * x
		},
		Degree: len(coeffs) - 1,
	}
}

func describePolynomial(c []float64) string {
	var terms []string
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%g", c[i]))
		case 1:
			terms = append(terms, fmt.Sprintf("%g x", c[i]))
		default:
			terms = append(terms, fmt.Sprintf("%g x^%d", c[i], i))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

var Catalogue = map[string]Integrand{
	"poly6sin": {
		Name:        "poly6sin",
		Description: "x^6 - sin(2x) x^2",
		F: func(x float64) float64 {
			return utils.POW(x, 6) - math.Sin(2.*x)*x*x
		},
		Antiderivative: func(x float64) float64 {
			s, c := math.Sincos(2. * x)
			return utils.POW(x, 7)/7. + 0.5*x*x*c - 0.5*x*s - 0.25*c
		},
		Degree: -1,
	},
	"x6":    Monomial(6),
	"cubic": Polynomial("cubic", 1, -2, 0, 1),
	"exp": {
		Name:           "exp",
		Description:    "e^x",
		F:              math.Exp,
		Antiderivative: math.Exp,
		Degree:         -1,
	},
	"cos": {
		Name:           "cos",
		Description:    "cos(x)",
		F:              math.Cos,
		Antiderivative: math.Sin,
		Degree:         -1,
	},
	"runge": {
		Name:        "runge",
		Description: "1 / (1 + 25 x^2)",
		F: func(x float64) float64 {
			return 1. / (1. + 25.*x*x)
		},
		Antiderivative: func(x float64) float64 {
			return math.Atan(5.*x) / 5.
		},
		Degree: -1,
	},
	"gaussian": {
		Name:        "gaussian",
		Description: "e^(-x^2)",
		F: func(x float64) float64 {
			return math.Exp(-x * x)
		},
		Antiderivative: func(x float64) float64 {
			return 0.5 * math.Sqrt(math.Pi) * math.Erf(x)
		},
		Degree: -1,
	},
}

func Lookup(name string) (ig Integrand, err error) {
	var ok bool
	if ig, ok = Catalogue[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("unknown integrand %q, available: %s",
			name, strings.Join(Names(), ", "))
	}
	return
}

func Names() (names []string) {
	names = make([]string, 0, len(Catalogue))
	for name := range Catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
