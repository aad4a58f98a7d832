package cmd

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/gaussquad/InputParameters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuadrature(t *testing.T) {
	ip := InputParameters.NewQuadratureParameters()
	results, err := RunQuadrature(ip)
	require.NoError(t, err)
	require.Len(t, results, len(ip.Orders))
	for i, qr := range results {
		assert.Equal(t, ip.Orders[i], qr.Order)
		assert.Len(t, qr.Standard.X, qr.Order)
		assert.Equal(t, 1., qr.Scaled.A)
		assert.Equal(t, 3., qr.Scaled.B)
		assert.True(t, qr.ExactReference)
		assert.InDelta(t, 317.34424667382643, qr.Reference, 1e-9)
	}
	r := 1. / math.Sqrt(3.)
	f := func(x float64) float64 { return math.Pow(x, 6) - math.Sin(2*x)*x*x }
	assert.InDelta(t, f(2-r)+f(2+r), results[0].Integral, 1e-10)
	assert.Less(t, results[len(results)-1].AbsError(), 1e-3)

	var buf bytes.Buffer
	PrintResults(&buf, ip, results, true)
	out := buf.String()
	assert.Contains(t, out, "Integral for N=2: 306.820")
	assert.Contains(t, out, "For N=7, scaled:")
	assert.Contains(t, out, "exact reference")
}

func TestRunQuadrature_Options(t *testing.T) {
	base := InputParameters.NewQuadratureParameters()
	newton, err := RunQuadrature(base)
	require.NoError(t, err)

	ip := InputParameters.NewQuadratureParameters()
	ip.Method = "eigen"
	ip.ParallelDegree = 3
	eigen, err := RunQuadrature(ip)
	require.NoError(t, err)
	for i := range newton {
		assert.InDelta(t, newton[i].Integral, eigen[i].Integral, 1e-9)
	}

	ip = InputParameters.NewQuadratureParameters()
	ip.Orders = []int{4}
	ip.Panels = 16
	composite, err := RunQuadrature(ip)
	require.NoError(t, err)
	assert.Less(t, composite[0].AbsError(), 1e-9)

	ip = InputParameters.NewQuadratureParameters()
	ip.Integrand = "nope"
	_, err = RunQuadrature(ip)
	assert.Error(t, err)

	ip = InputParameters.NewQuadratureParameters()
	ip.Orders = []int{3, 0, 5}
	_, err = RunQuadrature(ip)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order 0")

	ip = InputParameters.NewQuadratureParameters()
	ip.MaxIterations = 2
	_, err = RunQuadrature(ip)
	assert.Error(t, err)
}

func executeCommand(t *testing.T, args ...string) (out string, err error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	out = buf.String()
	return
}

func TestCommands(t *testing.T) {
	{
		out, err := executeCommand(t, "integrands")
		require.NoError(t, err)
		assert.Contains(t, out, "poly6sin")
		assert.Contains(t, out, "x^6 - sin(2x) x^2")
	}
	{
		out, err := executeCommand(t, "nodes", "-n", "3")
		require.NoError(t, err)
		assert.Contains(t, out, "Order 3 on [-1, 1] (Newton)")
		assert.Contains(t, out, "sum(w) = 2.000000000000")
	}
	{
		out, err := executeCommand(t, "nodes", "-n", "1", "--a", "1", "--b", "3", "-m", "eigen")
		require.NoError(t, err)
		assert.Contains(t, out, "Order 1 on [1, 3] (Golub-Welsch)")
		assert.Contains(t, out, "2.00000000000000000")
	}
	{
		_, err := executeCommand(t, "nodes", "-n", "0", "--a", "-1", "--b", "1", "-m", "newton")
		assert.Error(t, err)
	}
	{
		out, err := executeCommand(t, "quad", "-n", "2,7", "--a", "1", "--b", "3", "-f", "poly6sin")
		require.NoError(t, err)
		assert.Contains(t, out, "Integral for N=2: 306.820")
		assert.Contains(t, out, "Integral for N=7: 317.344")
	}
	{
		dir := t.TempDir()
		fileName := filepath.Join(dir, "run.yaml")
		require.NoError(t, os.WriteFile(fileName, []byte(`
Title: "cos on [0,1]"
Orders: [5]
A: 0
B: 1
Integrand: cos
`), 0o644))
		out, err := executeCommand(t, "quad", "-I", fileName)
		require.NoError(t, err)
		assert.Contains(t, out, "cos on [0,1]")
		assert.Contains(t, out, "Integral for N=5: 0.841")
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 2)
	}
	{
		_, err := executeCommand(t, "quad", "-I", "", "--a", "3", "--b", "1")
		assert.Error(t, err)
	}
}
