package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
)

func poly6sin(x float64) float64 {
	return math.Pow(x, 6) - math.Sin(2*x)*x*x
}

func poly6sinExact(a, b float64) float64 {
	F := func(x float64) float64 {
		s, c := math.Sincos(2 * x)
		return math.Pow(x, 7)/7 + 0.5*x*x*c - 0.5*x*s - 0.25*c
	}
	return F(b) - F(a)
}

func TestIntegrate_TwoPointScenario(t *testing.T) {
	// N = 2 on [1,3]: nodes 2 -+ 1/sqrt(3), both weights 1
	X, W, err := Solve(2)
	require.NoError(t, err)
	XS, WS, err := Rescale(1, 3, X, W)
	require.NoError(t, err)
	got, err := Integrate(poly6sin, XS, WS)
	require.NoError(t, err)
	r := 1. / math.Sqrt(3.)
	assert.InDelta(t, poly6sin(2-r)+poly6sin(2+r), got, 1e-10)
	assert.InDelta(t, 306.820, got, 5e-4)

	// A two point rule is exact only to degree 3, so its error against the
	// integral itself is the truncation error of the rule
	ref := quad.Fixed(poly6sin, 1, 3, 100, quad.Legendre{}, 0)
	assert.InDelta(t, poly6sinExact(1, 3), ref, 1e-10)
	assert.InDelta(t, 10.524, ref-got, 1e-3)
}

func TestIntegrate_ConvergesWithOrder(t *testing.T) {
	var (
		exact   = poly6sinExact(1, 3)
		lastErr = math.Inf(1)
	)
	for N := 2; N <= 12; N++ {
		got, err := Quad(poly6sin, 1, 3, N)
		require.NoError(t, err)
		e := math.Abs(got - exact)
		if N >= 5 {
			assert.Lessf(t, e, 1e-3, "N = %d", N)
		}
		if N <= 8 {
			assert.Lessf(t, e, lastErr, "error not decreasing at N = %d", N)
		}
		lastErr = e
	}
}

func TestIntegrate_NodeOrderAndCount(t *testing.T) {
	X, W, err := Solve(7)
	require.NoError(t, err)
	var calls []float64
	f := func(x float64) float64 {
		calls = append(calls, x)
		return 1
	}
	sum, err := Integrate(f, X, W)
	require.NoError(t, err)
	assert.Equal(t, X, calls)
	assert.InDelta(t, 2., sum, 1e-12)
}

func TestIntegrate_PanicPropagates(t *testing.T) {
	X, W, err := Solve(3)
	require.NoError(t, err)
	assert.PanicsWithValue(t, "bad node", func() {
		_, _ = Integrate(func(x float64) float64 { panic("bad node") }, X, W)
	})
}

func TestIntegrate_DimensionMismatch(t *testing.T) {
	X, W, err := Solve(4)
	require.NoError(t, err)
	_, err = Integrate(math.Cos, X, W[:3])
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = IntegrateFallible(func(x float64) (float64, error) { return x, nil }, X[:2], W)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = IntegrateVector(func(x []float64) []float64 { return x }, X, W[:1])
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestIntegrateFallible(t *testing.T) {
	X, W, err := Solve(5)
	require.NoError(t, err)
	{
		got, err := IntegrateFallible(func(x float64) (float64, error) {
			return math.Exp(x), nil
		}, X, W)
		require.NoError(t, err)
		assert.InDelta(t, math.E-1/math.E, got, 1e-8)
	}
	{
		errDomain := errors.New("outside domain")
		var count int
		got, err := IntegrateFallible(func(x float64) (float64, error) {
			count++
			if count == 2 {
				return 0, errDomain
			}
			return x, nil
		}, X, W)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errDomain))
		assert.Contains(t, err.Error(), "node 1")
		assert.Equal(t, 2, count)
		assert.Equal(t, 0., got)
	}
}

func TestIntegrateVector(t *testing.T) {
	X, W, err := Solve(6)
	require.NoError(t, err)
	XS, WS, err := Rescale(1, 3, X, W)
	require.NoError(t, err)
	XC := append([]float64{}, XS...)
	vec := func(x []float64) []float64 {
		for i, xi := range x {
			x[i] = poly6sin(xi) // overwrites its argument
		}
		return x
	}
	got, err := IntegrateVector(vec, XS, WS)
	require.NoError(t, err)
	want, err := Integrate(poly6sin, XS, WS)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
	assert.Equal(t, XC, XS)

	_, err = IntegrateVector(func(x []float64) []float64 { return x[:2] }, XS, WS)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}
