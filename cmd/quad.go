/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"math"
	"runtime"

	"github.com/notargets/gaussquad/InputParameters"
	"github.com/notargets/gaussquad/integrands"
	"github.com/notargets/gaussquad/quadrature"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// QuadCmd represents the quad command
var QuadCmd = &cobra.Command{
	Use:   "quad",
	Short: "Integrate a function over [a,b] for a sweep of quadrature orders",
	Long: `
Solves for the Gauss-Legendre nodes and weights of every requested order,
rescales them to [a,b] and integrates the chosen function, printing the
result next to a reference value,

gaussquad quad -n 2,3,4,5,6,7 --a 1 --b 3 -f poly6sin`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip        = quadParameters(cmd)
			inputFile string
			showNodes bool
			verbose   bool
			results   []QuadResult
		)
		if inputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			return
		}
		if len(inputFile) != 0 {
			if err = ip.ReadFile(inputFile); err != nil {
				return
			}
		}
		if err = ip.Validate(); err != nil {
			return
		}
		showNodes, _ = cmd.Flags().GetBool("showNodes")
		verbose, _ = cmd.Flags().GetBool("verbose")
		if verbose {
			ip.Print()
		}
		if results, err = RunQuadrature(ip); err != nil {
			return
		}
		PrintResults(cmd.OutOrStdout(), ip, results, showNodes)
		return
	},
}

func init() {
	rootCmd.AddCommand(QuadCmd)
	def := InputParameters.NewQuadratureParameters()
	QuadCmd.Flags().IntSliceP("orders", "n", def.Orders, "quadrature orders to sweep")
	QuadCmd.Flags().Float64("a", def.A, "lower integration bound")
	QuadCmd.Flags().Float64("b", def.B, "upper integration bound")
	QuadCmd.Flags().StringP("integrand", "f", def.Integrand, "integrand name, see the integrands command")
	QuadCmd.Flags().StringP("method", "m", def.Method, "node solver: newton or eigen")
	QuadCmd.Flags().Float64("tolerance", def.Tolerance, "Newton step tolerance")
	QuadCmd.Flags().Int("maxIterations", def.MaxIterations, "Newton iteration cap per root")
	QuadCmd.Flags().IntP("parallel", "p", def.ParallelDegree, "goroutines sharing the root lanes of one order")
	QuadCmd.Flags().Int("panels", def.Panels, "number of composite panels over [a,b]")
	QuadCmd.Flags().StringP("inputFile", "I", "", "YAML file of run parameters, overrides the flags")
	QuadCmd.Flags().Bool("showNodes", false, "print the standard and scaled nodes and weights")
	for _, name := range []string{"orders", "a", "b", "integrand", "method",
		"tolerance", "maxIterations", "parallel", "panels"} {
		if err := viper.BindPFlag("quad."+name, QuadCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func quadParameters(cmd *cobra.Command) (ip *InputParameters.QuadratureParameters) {
	ip = InputParameters.NewQuadratureParameters()
	if cmd.Flags().Changed("orders") {
		ip.Orders, _ = cmd.Flags().GetIntSlice("orders")
	} else if orders := viper.GetIntSlice("quad.orders"); len(orders) != 0 {
		ip.Orders = orders
	}
	ip.A = viper.GetFloat64("quad.a")
	ip.B = viper.GetFloat64("quad.b")
	ip.Integrand = viper.GetString("quad.integrand")
	ip.Method = viper.GetString("quad.method")
	ip.Tolerance = viper.GetFloat64("quad.tolerance")
	ip.MaxIterations = viper.GetInt("quad.maxIterations")
	ip.ParallelDegree = viper.GetInt("quad.parallel")
	ip.Panels = viper.GetInt("quad.panels")
	ip.Title = fmt.Sprintf("%s on [%g,%g]", ip.Integrand, ip.A, ip.B)
	return
}

type QuadResult struct {
	Order            int
	Standard, Scaled quadrature.Rule
	Integral         float64
	Reference        float64
	ExactReference   bool // Reference is from a closed form antiderivative
}

func (qr QuadResult) AbsError() float64 { return math.Abs(qr.Integral - qr.Reference) }

// RunQuadrature solves every order of ip concurrently and returns the
// results in the order they were requested.
func RunQuadrature(ip *InputParameters.QuadratureParameters) (results []QuadResult, err error) {
	var (
		ig     integrands.Integrand
		method quadrature.Method
		solver = &quadrature.Solver{
			Tolerance:      ip.Tolerance,
			MaxIterations:  ip.MaxIterations,
			ParallelDegree: ip.ParallelDegree,
		}
	)
	if ig, err = integrands.Lookup(ip.Integrand); err != nil {
		return
	}
	if len(ip.Method) != 0 {
		if method, err = quadrature.NewMethod(ip.Method); err != nil {
			return
		}
	}
	ref, exact := ig.ReferenceValue(ip.A, ip.B)
	res := make([]QuadResult, len(ip.Orders))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, N := range ip.Orders {
		i, N := i, N
		g.Go(func() (err error) {
			if res[i], err = solveOrder(solver, method, N, ig, ip.A, ip.B, ip.Panels); err != nil {
				return fmt.Errorf("order %d: %w", N, err)
			}
			res[i].Reference, res[i].ExactReference = ref, exact
			return
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	results = res
	return
}

func solveOrder(solver *quadrature.Solver, method quadrature.Method, N int,
	ig integrands.Integrand, a, b float64, panels int) (qr QuadResult, err error) {
	qr.Order = N
	if qr.Standard, err = quadrature.NewRuleWith(solver, method, N); err != nil {
		return
	}
	if qr.Scaled, err = qr.Standard.Rescale(a, b); err != nil {
		return
	}
	if panels > 1 {
		qr.Integral, err = qr.Standard.Composite(ig.F, a, b, panels)
		return
	}
	qr.Integral, err = qr.Scaled.Integrate(ig.F)
	return
}

func PrintResults(w io.Writer, ip *InputParameters.QuadratureParameters, results []QuadResult, showNodes bool) {
	refKind := "quadrature"
	if len(results) != 0 && results[0].ExactReference {
		refKind = "exact"
	}
	fmt.Fprintf(w, "%s\n", ip.Title)
	for _, qr := range results {
		if showNodes {
			fmt.Fprintf(w, "For N=%d:\n", qr.Order)
			fmt.Fprintf(w, "Sample points: %v\n", qr.Standard.X)
			fmt.Fprintf(w, "Weights: %v\n\n", qr.Standard.W)
			fmt.Fprintf(w, "For N=%d, scaled:\n", qr.Order)
			fmt.Fprintf(w, "Scaled points: %v\n", qr.Scaled.X)
			fmt.Fprintf(w, "Scaled weights: %v\n\n", qr.Scaled.W)
		}
		fmt.Fprintf(w, "Integral for N=%d: %.3f\t(%s reference %.6f, |error| = %8.3e)\n",
			qr.Order, qr.Integral, refKind, qr.Reference, qr.AbsError())
	}
}
