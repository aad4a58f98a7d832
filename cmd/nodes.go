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

	"github.com/notargets/gaussquad/quadrature"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

// NodesCmd represents the nodes command
var NodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the Gauss-Legendre nodes and weights of one order",
	Long: `
Prints the nodes and weights of order N on [-1,1], and on [a,b] when an
interval other than the standard one is given,

gaussquad nodes -n 5 --a 0 --b 2`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			N      int
			a, b   float64
			label  string
			method quadrature.Method
			r      quadrature.Rule
		)
		N, _ = cmd.Flags().GetInt("order")
		a, _ = cmd.Flags().GetFloat64("a")
		b, _ = cmd.Flags().GetFloat64("b")
		label, _ = cmd.Flags().GetString("method")
		if method, err = quadrature.NewMethod(label); err != nil {
			return
		}
		if r, err = quadrature.NewRuleWith(quadrature.DefaultSolver, method, N); err != nil {
			return
		}
		if a != -1 || b != 1 {
			if r, err = r.Rescale(a, b); err != nil {
				return
			}
		}
		PrintRule(cmd.OutOrStdout(), r, method)
		return
	},
}

func init() {
	rootCmd.AddCommand(NodesCmd)
	NodesCmd.Flags().IntP("order", "n", 2, "quadrature order N")
	NodesCmd.Flags().Float64("a", -1, "lower interval bound")
	NodesCmd.Flags().Float64("b", 1, "upper interval bound")
	NodesCmd.Flags().StringP("method", "m", "newton", "node solver: newton or eigen")
}

func PrintRule(w io.Writer, r quadrature.Rule, method quadrature.Method) {
	fmt.Fprintf(w, "Order %d on [%g, %g] (%s)\n", r.Order, r.A, r.B, method.Print())
	fmt.Fprintf(w, "%4s %24s %24s\n", "k", "x_k", "w_k")
	for k := range r.X {
		fmt.Fprintf(w, "%4d %24.17f %24.17f\n", k, r.X[k], r.W[k])
	}
	fmt.Fprintf(w, "sum(w) = %.12f\n", floats.Sum(r.W))
}
