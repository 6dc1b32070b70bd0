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
	"fmt"
	"slices"
	"strings"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/consensys/go-owl/pkg/util/source/lex"
	"github.com/google/uuid"
)

// Parse accepts a given source file in functional-style syntax, and parses it
// into a document.  Parsing is all-or-nothing: either a complete document is
// returned, or the first error encountered.
func Parse(srcfile *source.File, opts ...Option) (*owl.Document, *source.SyntaxError) {
	parser, err := NewParser(srcfile, NewPrefixTable(), opts...)
	if err != nil {
		return nil, err
	}
	//
	return parser.ParseDocument()
}

// ParseBytes parses a document held in a byte array.  The input size limit is
// checked before the text is decoded.
func ParseBytes(filename string, bytes []byte, opts ...Option) (*owl.Document, *source.SyntaxError) {
	options := buildOptions(opts)
	//
	if uint(len(bytes)) > options.MaxInputSize {
		return nil, inputTooLarge(source.NewSourceFile(filename, nil), len(bytes), options)
	}
	//
	return Parse(source.NewSourceFile(filename, bytes), opts...)
}

// ParseString is a convenience for parsing a document held in a string.
func ParseString(text string, opts ...Option) (*owl.Document, error) {
	doc, err := ParseBytes("", []byte(text), opts...)
	if err != nil {
		return nil, err
	}
	//
	return doc, nil
}

// ParseClassExpression parses a single class expression against an existing
// prefix table.
func ParseClassExpression(text string, prefixes *PrefixTable, opts ...Option) (owl.ClassExpression, error) {
	return parseFragment(text, prefixes, opts, (*Parser).parseClassExpression)
}

// ParseDataRange parses a single data range against an existing prefix table.
func ParseDataRange(text string, prefixes *PrefixTable, opts ...Option) (owl.DataRange, error) {
	return parseFragment(text, prefixes, opts, (*Parser).parseDataRange)
}

// ParseAxiom parses a single axiom against an existing prefix table.
func ParseAxiom(text string, prefixes *PrefixTable, opts ...Option) (owl.Axiom, error) {
	return parseFragment(text, prefixes, opts, (*Parser).parseAxiom)
}

func parseFragment[T any](text string, prefixes *PrefixTable, opts []Option,
	parse func(*Parser) (T, *source.SyntaxError)) (T, error) {
	var empty T
	//
	parser, err := NewParser(source.NewSourceFile("", []byte(text)), prefixes, opts...)
	if err != nil {
		return empty, err
	}
	//
	item, err := parse(parser)
	if err == nil {
		_, err = parser.expect(END_OF)
	}
	//
	if err != nil {
		return empty, err
	}
	//
	return item, nil
}

// Parser is a recursive descent parser for functional-style syntax.  A parser
// is used for exactly one document, and shares no state with any other.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
	// Prefixes declared so far
	prefixes *PrefixTable
	// Limits
	options Options
	// Current nesting depth
	depth uint
	// Identifier of the document being parsed
	document uuid.UUID
	// Source mapping
	srcmap *source.Map[any]
}

// NewParser constructs a new parser for a given source file, checking the input
// size limit and encoding before lexing the file.
func NewParser(srcfile *source.File, prefixes *PrefixTable, opts ...Option) (*Parser, *source.SyntaxError) {
	var (
		options = buildOptions(opts)
		tokens  []lex.Token
		err     *source.SyntaxError
	)
	//
	if uint(srcfile.Size()) > options.MaxInputSize {
		return nil, inputTooLarge(srcfile, srcfile.Size(), options)
	} else if index, ok := srcfile.InvalidEncoding(); ok {
		return nil, srcfile.SyntaxError(source.NewSpan(index, index+1), source.LEXICAL_ERROR, "invalid UTF-8")
	}
	// Convert source file into tokens
	if tokens, err = Lex(srcfile); err != nil {
		return nil, err
	}
	//
	srcmap := source.NewSourceMap[any](srcfile)
	//
	return &Parser{srcfile, tokens, 0, prefixes, options, 0, uuid.New(), srcmap}, nil
}

func inputTooLarge(srcfile *source.File, size int, options Options) *source.SyntaxError {
	msg := fmt.Sprintf("input too large (%d bytes exceeds limit of %d)", size, options.MaxInputSize)
	return srcfile.SyntaxError(source.NewSpan(0, 0), source.LEXICAL_ERROR, msg)
}

// ============================================================================
// Helpers
// ============================================================================

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.peek(0)
}

// Peek returns the token n positions after the next token, or the final (EOF)
// token if there are not enough.
func (p *Parser) peek(n int) lex.Token {
	return p.tokens[min(p.index+n, len(p.tokens)-1)]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, *source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		return lookahead, p.unexpected(tokenNames[kind], tokenNames[kind])
	}
	//
	p.index++
	//
	return lookahead, nil
}

// ExpectKeyword returns an error if the next token is not the given keyword.
func (p *Parser) expectKeyword(keyword string) *source.SyntaxError {
	if !p.isKeyword(keyword) {
		return p.unexpected(keyword, keyword)
	}
	//
	p.index++
	//
	return nil
}

// Match attempts to match the given token.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// IsKeyword checks whether the next token is a given keyword.
func (p *Parser) isKeyword(keyword string) bool {
	lookahead := p.lookahead()
	return lookahead.Kind == KEYWORD && p.string(lookahead) == keyword
}

// IsIRI checks whether a given token is an IRI (full or abbreviated).
func isIRI(token lex.Token) bool {
	return token.Kind == FULL_IRI || token.Kind == PREFIXED_NAME
}

// Open consumes a keyword and the opening brace which follows it.
func (p *Parser) open(keyword string) *source.SyntaxError {
	if err := p.expectKeyword(keyword); err != nil {
		return err
	}
	//
	_, err := p.expect(LBRACE)
	//
	return err
}

// Close consumes the closing brace of a construct.
func (p *Parser) close(keyword string) *source.SyntaxError {
	switch {
	case p.follows(RBRACE):
		p.index++
		return nil
	case p.follows(END_OF):
		return p.unexpected("\")\"", tokenNames[RBRACE])
	default:
		return p.syntaxError(p.lookahead(), source.STRUCTURAL_ERROR,
			fmt.Sprintf("too many operands for %s", keyword), tokenNames[RBRACE])
	}
}

// Unexpected reports that the next token is not what was required.
func (p *Parser) unexpected(what string, expected ...string) *source.SyntaxError {
	lookahead := p.lookahead()
	//
	switch lookahead.Kind {
	case END_OF:
		return p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "unexpected end of input", expected...)
	case RBRACE:
		return p.syntaxError(lookahead, source.STRUCTURAL_ERROR, fmt.Sprintf("missing %s", what), expected...)
	default:
		return p.syntaxError(lookahead, source.STRUCTURAL_ERROR, fmt.Sprintf("expected %s", what), expected...)
	}
}

// Enter a nested construct, or fail if the nesting limit is exceeded.
func (p *Parser) enter() *source.SyntaxError {
	if p.depth >= p.options.MaxDepth {
		return p.syntaxError(p.lookahead(), source.STRUCTURAL_ERROR, "nesting too deep")
	}
	//
	p.depth++
	//
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Record the span of a node, from a given token up to the last consumed token.
func (p *Parser) record(node any, start int) {
	p.srcmap.Put(node, p.spanOf(start, p.index-1))
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	//
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

func (p *Parser) syntaxError(token lex.Token, kind source.ErrorKind, msg string,
	expected ...string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, kind, msg, expected...)
}

// ParseList parses items until a closing brace is reached (but not consumed),
// and checks at least a minimum number were given.
func parseList[T any](p *Parser, keyword string, minimum int, what string,
	parse func(*Parser) (T, *source.SyntaxError)) ([]T, *source.SyntaxError) {
	var items []T
	//
	for !p.follows(RBRACE, END_OF) {
		item, err := parse(p)
		if err != nil {
			return nil, err
		}
		//
		items = append(items, item)
	}
	//
	if len(items) < minimum {
		msg := fmt.Sprintf("%s requires at least %d %s, found %d", keyword, minimum, plural(what, minimum), len(items))
		return nil, p.syntaxError(p.lookahead(), source.STRUCTURAL_ERROR, msg, what)
	}
	//
	return items, nil
}

func plural(what string, n int) string {
	if n == 1 {
		return what
	} else if strings.HasSuffix(what, "y") {
		return what[:len(what)-1] + "ies"
	}
	//
	return what + "s"
}

// Keys of a keyword dispatch table, for error reporting.
func keywordsOf[T any](table map[string]T, extra ...string) []string {
	keywords := make([]string, 0, len(table)+len(extra))
	//
	for k := range table {
		keywords = append(keywords, k)
	}
	//
	slices.Sort(keywords)
	//
	return append(keywords, extra...)
}
