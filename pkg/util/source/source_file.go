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

import "unicode/utf8"

// Line provides information about a given line within the original string.
// This includes the line number (counting from 1), and the span of the line
// within the original string.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line in a string
// has line number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original string.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// Position identifies a point in a source file by its byte offset into the
// original input, along with its line and column (both counting from 1, with
// columns in characters).
type Position struct {
	Offset int
	Line   int
	Column int
}

// File represents a given source file (typically stored on disk).
type File struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
	// Size of the original input in bytes.
	size int
	// Index of the first character which was not valid UTF-8, or -1.
	invalid int
}

// NewSourceFile constructs a new source file from a given byte array.
// Invalid byte sequences decode as utf8.RuneError, one per byte, and the first
// is recorded.
func NewSourceFile(filename string, bytes []byte) *File {
	var (
		contents = make([]rune, 0, utf8.RuneCount(bytes))
		invalid  = -1
	)
	// Convert bytes into runes for easier parsing
	for i := 0; i < len(bytes); {
		r, n := utf8.DecodeRune(bytes[i:])
		//
		if r == utf8.RuneError && n == 1 && invalid < 0 {
			invalid = len(contents)
		}
		//
		contents = append(contents, r)
		i += n
	}
	//
	return &File{filename, contents, len(bytes), invalid}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// InvalidEncoding returns the index of the first character which was not
// valid UTF-8 in the original input, if there is one.
func (s *File) InvalidEncoding() (int, bool) {
	return s.invalid, s.invalid >= 0
}

// Size returns the number of bytes in the original input.
func (s *File) Size() int {
	return s.size
}

// SyntaxError constructs a syntax error of a given kind over a given span of
// this file.  The expected set lists the tokens which would have been accepted
// at this point (if known).
func (s *File) SyntaxError(span Span, kind ErrorKind, msg string, expected ...string) *SyntaxError {
	return &SyntaxError{s, span, kind, msg, expected, nil}
}

// PositionOf converts a character index into a position.  Indices beyond the
// end of the file are clamped to the end.
func (s *File) PositionOf(index int) Position {
	var (
		offset = 0
		line   = 1
		column = 1
	)
	//
	index = min(max(index, 0), len(s.contents))
	//
	for _, c := range s.contents[:index] {
		offset += utf8.RuneLen(c)
		//
		if c == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	//
	return Position{offset, line, column}
}

// FindFirstEnclosingLine determines the first line  in this source file which
// encloses the start of a span.  Observe that, if the position is beyond the
// bounds of the source file then the last physical line is returned.  Also,
// the returned line is not guaranteed to enclose the entire span, as these can
// cross multiple lines.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	// Index identifies the current position within the original text.
	index := span.start
	// Num records the line number, counting from 1.
	num := 1
	// Start records the starting offset of the current line.
	start := 0
	// Find the line.
	for i := 0; i < len(s.contents); i++ {
		if i == index {
			end := findEndOfLine(index, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
