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
	"maps"
	"os"
	"slices"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/termio"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] file",
	Short: "Summarise the contents of a document.",
	Long: `Parse a document written in OWL 2 functional-style syntax and summarise
	its ontology header, imports and elements.`,
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
		inspectDocument(os.Stdout, doc, getHighlighter(cfg))
	},
}

// Print a summary of a parsed document.
func inspectDocument(out io.Writer, doc *owl.Document, hl termio.Highlighter) {
	ontology := doc.Ontology
	//
	if ontology.IRI == nil {
		fmt.Fprintf(out, "%s: (anonymous)\n", hl.Keyword("Ontology"))
	} else if ontology.VersionIRI == nil {
		fmt.Fprintf(out, "%s: <%s>\n", hl.Keyword("Ontology"), ontology.IRI)
	} else {
		fmt.Fprintf(out, "%s: <%s> <%s>\n", hl.Keyword("Ontology"), ontology.IRI, ontology.VersionIRI)
	}
	//
	fmt.Fprintf(out, "%s: %d\n", hl.Keyword("Prefixes"), len(doc.Prefixes))
	fmt.Fprintf(out, "%s: %d\n", hl.Keyword("Imports"), len(ontology.Imports))
	//
	for _, iri := range ontology.Imports {
		fmt.Fprintf(out, "  <%s>\n", iri)
	}
	//
	fmt.Fprintf(out, "%s: %d\n", hl.Keyword("Annotations"), len(ontology.Annotations))
	fmt.Fprintf(out, "%s: %d\n", hl.Keyword("Elements"), len(ontology.Elements))
	// Break down elements by kind
	counts := ontology.CountByKeyword()
	for _, keyword := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(out, "  %-40s %d\n", keyword, counts[keyword])
	}
	//
	fmt.Fprintf(out, "%s: %d\n", hl.Keyword("Rules"), len(ontology.Rules()))
	fmt.Fprintf(out, "%s: %d\n", hl.Keyword("DescriptionGraphs"), len(ontology.DescriptionGraphs()))
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
