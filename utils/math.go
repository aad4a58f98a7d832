package utils

import (
	"math"
)

// POW multiplies out small integer powers and defers to math.Pow otherwise.
func POW(x float64, p int) (y float64) {
	if p > 8 || p < -8 {
		return math.Pow(x, float64(p))
	}
	var (
		n = p
	)
	if n < 0 {
		n = -n
	}
	switch n {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y
		y = y * y
	}
	if p < 0 {
		y = 1. / y
	}
	return
}
