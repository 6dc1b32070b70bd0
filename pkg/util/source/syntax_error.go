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
package source

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a syntax error by the stage which detected it.
type ErrorKind uint8

// LEXICAL_ERROR signals malformed text which could not be split into tokens
// (e.g. an unterminated string, a malformed IRI or an oversized integer).
const LEXICAL_ERROR ErrorKind = 0

// STRUCTURAL_ERROR signals a well-formed token in the wrong place (e.g. a
// missing delimiter, an unknown keyword or the wrong number of operands).
const STRUCTURAL_ERROR ErrorKind = 1

// SEMANTIC_ERROR signals a problem detected whilst building the tree, such as
// an undeclared or duplicate prefix.
const SEMANTIC_ERROR ErrorKind = 2

func (k ErrorKind) String() string {
	switch k {
	case LEXICAL_ERROR:
		return "lexical error"
	case STRUCTURAL_ERROR:
		return "structural error"
	case SEMANTIC_ERROR:
		return "semantic error"
	default:
		return "unknown error"
	}
}

// maxReportedExpectations limits how many expected tokens Error() spells out.
const maxReportedExpectations = 8

// SyntaxError is a structured error which retains the index into the original
// string where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Character span of the original string where error arose.
	span Span
	// Stage which detected the error
	kind ErrorKind
	// Error message being reported
	msg string
	// Tokens which would have been accepted here
	expected []string
	// Underlying error (if any)
	cause error
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Kind returns the kind of this error.
func (p *SyntaxError) Kind() ErrorKind {
	return p.kind
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Expected returns the set of tokens which would have been accepted where the
// error arose.  This may be empty.
func (p *SyntaxError) Expected() []string {
	return p.expected
}

// Position returns the byte offset, line and column at which this error starts.
func (p *SyntaxError) Position() Position {
	return p.srcfile.PositionOf(p.span.start)
}

// Wrap records an underlying error from which this error arose, such that it
// can be recovered via errors.Is or errors.As.
func (p *SyntaxError) Wrap(cause error) *SyntaxError {
	p.cause = cause
	return p
}

// Unwrap returns the underlying error (if any).
func (p *SyntaxError) Unwrap() error {
	return p.cause
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	var (
		builder strings.Builder
		pos     = p.Position()
	)
	//
	if p.srcfile.Filename() != "" {
		builder.WriteString(p.srcfile.Filename())
		builder.WriteString(":")
	}
	//
	fmt.Fprintf(&builder, "%d:%d: %s: %s", pos.Line, pos.Column, p.kind, p.msg)
	//
	switch n := len(p.expected); {
	case n == 0:
		// nothing to add
	case n <= maxReportedExpectations:
		fmt.Fprintf(&builder, " (expected %s)", strings.Join(p.expected, ", "))
	default:
		fmt.Fprintf(&builder, " (expected one of %d alternatives)", n)
	}
	//
	return builder.String()
}

// FirstEnclosingLine determines the first line in this source file to which
// this error is associated. Observe that, if the position is beyond the bounds
// of the source file then the last physical line is returned.  Also, the
// returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
