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

	"github.com/notargets/gaussquad/integrands"
	"github.com/spf13/cobra"
)

// IntegrandsCmd represents the integrands command
var IntegrandsCmd = &cobra.Command{
	Use:   "integrands",
	Short: "List the integrands available to the quad command",
	Run: func(cmd *cobra.Command, args []string) {
		PrintIntegrands(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(IntegrandsCmd)
}

func PrintIntegrands(w io.Writer) {
	for _, name := range integrands.Names() {
		ig := integrands.Catalogue[name]
		closed := "numerical reference"
		if ig.Antiderivative != nil {
			closed = "exact reference"
		}
		fmt.Fprintf(w, "%-10s %-24s %s\n", name, ig.Description, closed)
	}
}
