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
package termio

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal determines whether a given file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// Highlighter decorates text with ANSI escapes, or leaves it unchanged when
// colour is disabled.
type Highlighter struct {
	colour bool
}

// NewHighlighter constructs a highlighter which uses colour or not.
func NewHighlighter(colour bool) Highlighter {
	return Highlighter{colour}
}

// Colour reports whether this highlighter emits escapes.
func (p Highlighter) Colour() bool {
	return p.colour
}

// Apply an escape to some text, resetting afterwards.
func (p Highlighter) Apply(escape AnsiEscape, text string) string {
	if !p.colour || text == "" {
		return text
	}
	//
	return escape.Build() + text + ResetAnsiEscape().Build()
}

// Error highlights the text of an error message.
func (p Highlighter) Error(text string) string {
	return p.Apply(BoldAnsiEscape().FgColour(TERM_RED), text)
}

// Success highlights text reporting success.
func (p Highlighter) Success(text string) string {
	return p.Apply(BoldAnsiEscape().FgColour(TERM_GREEN), text)
}

// Location highlights a file location.
func (p Highlighter) Location(text string) string {
	return p.Apply(BoldAnsiEscape(), text)
}

// Keyword highlights a keyword or name.
func (p Highlighter) Keyword(text string) string {
	return p.Apply(BoldAnsiEscape().FgColour(TERM_CYAN), text)
}
