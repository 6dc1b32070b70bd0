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
	"strings"

	"github.com/consensys/go-owl/pkg/config"
	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/owl/ofn"
	"github.com/consensys/go-owl/pkg/util"
	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/consensys/go-owl/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned int, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the configuration in effect, starting from the configuration file
// (if given) and then applying any overriding flags.
func getConfig(cmd *cobra.Command) *config.Config {
	var (
		cfg      = config.DefaultConfig()
		filename = GetString(cmd, "config")
		err      error
	)
	//
	if filename != "" {
		if cfg, err = config.LoadFromFile(filename); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("loaded configuration from %s", filename)
	}
	//
	if cmd.Flags().Changed("max-depth") {
		cfg.Limits.MaxDepth = GetUint(cmd, "max-depth")
	}
	//
	if cmd.Flags().Changed("max-input-size") {
		cfg.Limits.MaxInputSize = GetUint(cmd, "max-input-size")
	}
	//
	if cmd.Flags().Changed("color") {
		cfg.Report.Color = GetString(cmd, "color")
	}
	// Flags may have invalidated the configuration
	if err = cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

// Construct a highlighter for reporting errors to stdout.
func getHighlighter(cfg *config.Config) termio.Highlighter {
	switch cfg.Report.Color {
	case config.COLOR_ALWAYS:
		return termio.NewHighlighter(true)
	case config.COLOR_NEVER:
		return termio.NewHighlighter(false)
	default:
		return termio.NewHighlighter(termio.IsTerminal(os.Stdout))
	}
}

// Input holds the undecoded contents of a document read from disk.
type input struct {
	filename string
	bytes    []byte
}

// Read the given files, or exit.
func readInputs(filenames ...string) []input {
	inputs := make([]input, len(filenames))
	//
	for i, filename := range filenames {
		bytes, err := os.ReadFile(filename)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		inputs[i] = input{filename, bytes}
	}
	//
	return inputs
}

// Parse a single document, logging how long it took.
func parseDocument(in input, cfg *config.Config) (*owl.Document, *source.SyntaxError) {
	stats := util.NewPerfStats()
	doc, err := ofn.ParseBytes(in.filename, in.bytes, ofn.WithOptions(cfg.Options()))
	//
	stats.Log(fmt.Sprintf("Parsing %s", in.filename))
	//
	return doc, err
}

// Parse a single document, printing any syntax error and exiting.
func parseDocumentOrExit(in input, cfg *config.Config) *owl.Document {
	doc, err := parseDocument(in, cfg)
	if err != nil {
		printSyntaxError(os.Stdout, err, getHighlighter(cfg))
		os.Exit(1)
	}
	//
	return doc
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError, hl termio.Highlighter) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	text := line.String()
	// Print error + line number
	fmt.Fprintln(out, hl.Error(err.Error()))
	// Print line
	fmt.Fprintln(out, text)
	// Print indent, preserving tabs so the caret lines up
	indent := min(max(span.Start()-line.Start(), 0), line.Length())
	fmt.Fprint(out, caretIndent([]rune(text)[:indent]))
	// Print highlight (always at least one character)
	width := min(span.End(), line.Start()+line.Length()) - span.Start()
	fmt.Fprintln(out, hl.Error(strings.Repeat("^", max(width, 1))))
}

func caretIndent(prefix []rune) string {
	var builder strings.Builder
	//
	for _, c := range prefix {
		if c == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	return builder.String()
}
