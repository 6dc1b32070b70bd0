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
package ofn

import (
	"strings"

	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/consensys/go-owl/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// LBRACE signals "("
const LBRACE uint = 3

// RBRACE signals ")"
const RBRACE uint = 4

// EQUALS signals "="
const EQUALS uint = 5

// DOUBLE_CARET signals "^^"
const DOUBLE_CARET uint = 6

// NUMBER signals a non-negative integer
const NUMBER uint = 10

// STRING signals a quoted string
const STRING uint = 11

// LANGUAGE_TAG signals "@en", "@en-GB", etc
const LANGUAGE_TAG uint = 12

// FULL_IRI signals "<http://...>"
const FULL_IRI uint = 20

// PREFIXED_NAME signals "ex:local", "ex:" or ":local"
const PREFIXED_NAME uint = 21

// BLANK_NODE signals "_:label"
const BLANK_NODE uint = 22

// KEYWORD signals a bare word, such as "Ontology" or a prefix name
const KEYWORD uint = 30

var tokenNames = map[uint]string{
	END_OF:        "end of input",
	LBRACE:        "\"(\"",
	RBRACE:        "\")\"",
	EQUALS:        "\"=\"",
	DOUBLE_CARET:  "\"^^\"",
	NUMBER:        "integer",
	STRING:        "quoted string",
	LANGUAGE_TAG:  "language tag",
	FULL_IRI:      "IRI",
	PREFIXED_NAME: "prefixed name",
	BLANK_NODE:    "blank node",
	KEYWORD:       "keyword",
}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.OneOf(' ', '\t', '\r', '\n'))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Comments start with '#' and continue until a newline or EOF.
var comment lex.Scanner[rune] = lex.And(lex.Unit('#'), lex.Until('\n'))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Skip(comment),
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('='), EQUALS),
	lex.Rule(lex.Unit('^', '^'), DOUBLE_CARET),
	lex.Skip(whitespace),
	lex.Rule(number, NUMBER),
	lex.Rule[rune](scanQuotedString, STRING),
	lex.Rule[rune](scanLanguageTag, LANGUAGE_TAG),
	lex.Rule[rune](scanFullIRI, FULL_IRI),
	lex.Rule[rune](scanBlankNode, BLANK_NODE),
	lex.Rule[rune](scanPrefixedName, PREFIXED_NAME),
	lex.Rule[rune](scanPnPrefix, KEYWORD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of zero or more tokens, or a
// lexical error.  Whitespace and comments are removed.
func Lex(srcfile *source.File) ([]lex.Token, *source.SyntaxError) {
	var (
		lexer = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := int(lexer.Index())
		msg, end := lexicalError(srcfile.Contents(), start)
		//
		return nil, srcfile.SyntaxError(source.NewSpan(start, end), source.LEXICAL_ERROR, msg)
	}
	// Done
	return tokens, nil
}

// Determine the most helpful message for text which could not be lexed,
// along with the end of the offending region.
func lexicalError(contents []rune, start int) (string, int) {
	end := start + 1
	//
	switch contents[start] {
	case '"':
		return "unterminated string literal", len(contents)
	case '<':
		end = start + max(1, int(endOfIRI(contents[start:])))
		return "malformed IRI", min(end+1, len(contents))
	case '@':
		return "malformed language tag", end
	case '_':
		return "malformed blank node", end
	default:
		return "unknown text encountered", end
	}
}

// A malformed IRI extends to its closing '>' or the first space or newline.
var endOfIRI = lex.Until('>', ' ', '\n')

// A quoted string is delimited by '"', where a backslash escapes the following
// character.
func scanQuotedString(items []rune) uint {
	if len(items) == 0 || items[0] != '"' {
		return 0
	}
	//
	for i := 1; i < len(items); i++ {
		switch items[i] {
		case '\\':
			i++
		case '"':
			return uint(i + 1)
		}
	}
	// unterminated
	return 0
}

// Decode a quoted string (including its delimiters).  Only escaped quotes and
// backslashes are decoded, with any other backslash retained as is.
func unquote(text string) string {
	var (
		builder strings.Builder
		runes   = []rune(text[1 : len(text)-1])
	)
	//
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && (runes[i+1] == '\\' || runes[i+1] == '"') {
			i++
		}
		//
		builder.WriteRune(runes[i])
	}
	//
	return builder.String()
}

// A language tag is "@" followed by letters, with optional "-" separated
// alphanumeric subtags.
func scanLanguageTag(items []rune) uint {
	if len(items) == 0 || items[0] != '@' {
		return 0
	}
	//
	n := 1 + countWhile(items[1:], isAsciiLetter)
	if n == 1 {
		return 0
	}
	//
	for n < len(items) && items[n] == '-' {
		m := countWhile(items[n+1:], isAsciiAlphaNumeric)
		if m == 0 {
			break
		}
		//
		n += 1 + m
	}
	//
	return uint(n)
}

// A full IRI is delimited by '<' and '>', and cannot contain whitespace,
// control characters or any of <>"{}|^`\.
func scanFullIRI(items []rune) uint {
	if len(items) == 0 || items[0] != '<' {
		return 0
	}
	//
	for i := 1; i < len(items); i++ {
		switch r := items[i]; {
		case r == '>':
			return uint(i + 1)
		case r <= ' ' || strings.ContainsRune("<\"{}|^`\\", r):
			return 0
		}
	}
	// unterminated
	return 0
}

// Check an IRI (without delimiters) begins with a scheme.
func hasScheme(iri string) bool {
	for i, r := range iri {
		switch {
		case isAsciiLetter(r):
			continue
		case i > 0 && (isAsciiDigit(r) || r == '+' || r == '-' || r == '.'):
			continue
		case i > 0 && r == ':':
			return true
		}
		//
		return false
	}
	//
	return false
}

// A blank node is "_:" followed by a label.
func scanBlankNode(items []rune) uint {
	if len(items) < 3 || items[0] != '_' || items[1] != ':' {
		return 0
	} else if !isPnCharsU(items[2]) && !isAsciiDigit(items[2]) {
		return 0
	}
	//
	n := 3 + countWhile(items[3:], func(r rune) bool { return isPnChars(r) || r == '.' })
	// Cannot end with '.'
	for items[n-1] == '.' {
		n--
	}
	//
	return uint(n)
}

// A prefixed name is an optional prefix, followed by ':' and an optional local
// part.
func scanPrefixedName(items []rune) uint {
	n := int(scanPnPrefix(items))
	//
	if n >= len(items) || items[n] != ':' {
		return 0
	}
	//
	n++
	//
	return uint(n) + scanPnLocal(items[n:])
}

// A prefix begins with a letter, and cannot end with '.'.
func scanPnPrefix(items []rune) uint {
	if len(items) == 0 || !isPnCharsBase(items[0]) {
		return 0
	}
	//
	n := 1 + countWhile(items[1:], func(r rune) bool { return isPnChars(r) || r == '.' })
	// Cannot end with '.'
	for items[n-1] == '.' {
		n--
	}
	//
	return uint(n)
}

// A local name admits a wider range of characters than a prefix, including
// percent-encoded and backslash-escaped characters, but also cannot end with
// '.'.
func scanPnLocal(items []rune) uint {
	var (
		n    = 0
		last = 0
	)
	//
	for n < len(items) {
		r := items[n]
		//
		switch {
		case r == '%':
			if n+2 >= len(items) || !isHexDigit(items[n+1]) || !isHexDigit(items[n+2]) {
				return uint(last)
			}
			//
			n += 3
		case r == '\\':
			if n+1 >= len(items) || !strings.ContainsRune(localEscapes, items[n+1]) {
				return uint(last)
			}
			//
			n += 2
		case r == '.' && n > 0:
			n++
			continue
		case n == 0 && (isPnCharsU(r) || r == ':' || isAsciiDigit(r)):
			n++
		case n > 0 && (isPnChars(r) || r == ':'):
			n++
		default:
			return uint(last)
		}
		// Record last position which did not end with a '.'.
		last = n
	}
	//
	return uint(last)
}

const localEscapes = "_~.-!$&'()*+,;=/?#@%"

// Remove backslash escapes from the local part of a prefixed name.
func unescapeLocal(local string) string {
	if !strings.ContainsRune(local, '\\') {
		return local
	}
	//
	var builder strings.Builder
	//
	for i := 0; i < len(local); i++ {
		if local[i] == '\\' && i+1 < len(local) {
			i++
		}
		//
		builder.WriteByte(local[i])
	}
	//
	return builder.String()
}

func countWhile(items []rune, predicate func(rune) bool) int {
	n := 0
	for n < len(items) && predicate(items[n]) {
		n++
	}
	//
	return n
}

func isAsciiLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isAsciiDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAsciiAlphaNumeric(r rune) bool {
	return isAsciiLetter(r) || isAsciiDigit(r)
}

func isHexDigit(r rune) bool {
	return isAsciiDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// Character classes for prefixed names, as used by SPARQL and Turtle.
func isPnCharsBase(r rune) bool {
	switch {
	case isAsciiLetter(r):
		return true
	case 0xC0 <= r && r <= 0xD6, 0xD8 <= r && r <= 0xF6, 0xF8 <= r && r <= 0x2FF:
		return true
	case 0x370 <= r && r <= 0x37D, 0x37F <= r && r <= 0x1FFF, 0x200C <= r && r <= 0x200D:
		return true
	case 0x2070 <= r && r <= 0x218F, 0x2C00 <= r && r <= 0x2FEF, 0x3001 <= r && r <= 0xD7FF:
		return true
	case 0xF900 <= r && r <= 0xFDCF, 0xFDF0 <= r && r <= 0xFFFD, 0x10000 <= r && r <= 0xEFFFF:
		return true
	}
	//
	return false
}

func isPnCharsU(r rune) bool {
	return isPnCharsBase(r) || r == '_'
}

func isPnChars(r rune) bool {
	switch {
	case isPnCharsU(r), r == '-', isAsciiDigit(r), r == 0xB7:
		return true
	case 0x300 <= r && r <= 0x36F, 0x203F <= r && r <= 0x2040:
		return true
	}
	//
	return false
}
