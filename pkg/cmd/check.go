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

	"github.com/consensys/go-owl/pkg/config"
	"github.com/consensys/go-owl/pkg/util/termio"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] file...",
	Short: "Check one or more documents are well-formed.",
	Long: `Parse one or more documents written in OWL 2 functional-style syntax,
	reporting the first syntax error (if any) found in each.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := getConfig(cmd)
		inputs := readInputs(args...)
		//
		if !checkInputs(os.Stdout, inputs, cfg, getHighlighter(cfg)) {
			os.Exit(1)
		}
	},
}

// Check each input in turn, reporting the outcome for each.  This returns true
// only if every file parsed without error.
func checkInputs(out io.Writer, inputs []input, cfg *config.Config, hl termio.Highlighter) bool {
	ok := true
	//
	for _, in := range inputs {
		if doc, err := parseDocument(in, cfg); err != nil {
			printSyntaxError(out, err, hl)
			//
			ok = false
		} else {
			fmt.Fprintf(out, "%s: %s (%d elements)\n", hl.Location(in.filename), hl.Success("OK"),
				len(doc.Ontology.Elements))
		}
	}
	//
	return ok
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
