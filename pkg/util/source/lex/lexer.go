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
package lex

import "github.com/consensys/go-owl/pkg/util/source"

// Token associates a token kind with a given range of characters in the text
// being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates groups of characters with a given tag.  Characters
// matched by a skipping rule (e.g. whitespace or comments) produce no token.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
	skip    bool
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag, false}
}

// Skip constructs a new lexing rule whose matching characters are discarded.
func Skip[T any](scanner Scanner[T]) LexRule[T] {
	return LexRule[T]{scanner, 0, true}
}

// Lexer provides a top-level construct for tokenising a given input string.
// Rules are tried in the order given, and the first rule which matches at
// least one item wins.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many characters from the original sequence were
// left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next returns the next token and advances the lexer, passing over anything
// matched by a skipping rule.  This fails once the end of the input has been
// consumed, or when no rule matches at the current position.
func (p *Lexer[T]) Next() (Token, bool) {
	for p.index <= len(p.items) {
		rule, n := p.match()
		//
		if n == 0 {
			return Token{}, false
		}
		//
		start := p.index
		end := min(len(p.items), start+int(n))
		// A match at the end of input still advances, so EOF is seen once.
		p.index = max(end, start+1)
		//
		if !rule.skip {
			return Token{rule.tag, source.NewSpan(start, end)}, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which scans all remaining tokens in one
// go, producing an array of tokens.  Lexing stops at the first position where
// no rule matches; use Remaining to detect this.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for token, ok := p.Next(); ok; token, ok = p.Next() {
		tokens = append(tokens, token)
	}
	//
	return tokens
}

// Find the first rule matching at the current position.
func (p *Lexer[T]) match() (LexRule[T], uint) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			return r, n
		}
	}
	//
	return LexRule[T]{}, 0
}
