// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/spf13/cobra"
)

// prefixesCmd represents the prefixes command
var prefixesCmd = &cobra.Command{
	Use:   "prefixes [flags] file",
	Short: "List the prefix declarations of a document.",
	Long:  `List the prefix declarations of a document, in the order they were written.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		inputs := readInputs(args[0])
		doc := parseDocumentOrExit(inputs[0], cfg)
		//
		printPrefixes(os.Stdout, doc.Prefixes)
	},
}

// Print prefix declarations, aligning their IRIs.
func printPrefixes(out io.Writer, prefixes []owl.PrefixDeclaration) {
	width := 0
	//
	for _, prefix := range prefixes {
		width = max(width, len(prefix.Name))
	}
	//
	for _, prefix := range prefixes {
		fmt.Fprintf(out, "%-*s <%s>\n", width+1, prefix.Name+":", prefix.IRI)
	}
}

func init() {
	rootCmd.AddCommand(prefixesCmd)
}
