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
	"strconv"
	"strings"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
)

// Parse an IRI, which is either written in full or as a prefixed name.  In the
// latter case, it is resolved immediately against the prefix table.
func (p *Parser) parseIRI() (owl.IRI, *source.SyntaxError) {
	var (
		token = p.lookahead()
		text  = p.string(token)
	)
	//
	switch token.Kind {
	case FULL_IRI:
		value := text[1 : len(text)-1]
		//
		if !hasScheme(value) {
			return owl.IRI{}, p.syntaxError(token, source.LEXICAL_ERROR, "malformed IRI (missing scheme)")
		}
		//
		p.index++
		//
		return owl.NewIRI(value), nil
	case PREFIXED_NAME:
		colon := strings.IndexByte(text, ':')
		//
		value, err := p.prefixes.Expand(text[:colon], unescapeLocal(text[colon+1:]))
		if err != nil {
			return owl.IRI{}, p.syntaxError(token, source.SEMANTIC_ERROR, err.Error()).Wrap(err)
		}
		//
		p.index++
		//
		return owl.NewAbbreviatedIRI(value, text), nil
	default:
		return owl.IRI{}, p.unexpected("IRI", tokenNames[FULL_IRI], tokenNames[PREFIXED_NAME])
	}
}

func (p *Parser) parseClass() (*owl.Class, *source.SyntaxError) {
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return owl.NewClass(iri), nil
}

func (p *Parser) parseDatatype() (*owl.Datatype, *source.SyntaxError) {
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return owl.NewDatatype(iri), nil
}

func (p *Parser) parseObjectProperty() (*owl.ObjectProperty, *source.SyntaxError) {
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return owl.NewObjectProperty(iri), nil
}

func (p *Parser) parseDataProperty() (*owl.DataProperty, *source.SyntaxError) {
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return owl.NewDataProperty(iri), nil
}

func (p *Parser) parseAnnotationProperty() (*owl.AnnotationProperty, *source.SyntaxError) {
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return owl.NewAnnotationProperty(iri), nil
}

// Parse a named individual (IRI) or an anonymous individual (blank node).
func (p *Parser) parseIndividual() (owl.Individual, *source.SyntaxError) {
	if anon, ok := p.parseAnonymousIndividual(); ok {
		return anon, nil
	} else if !isIRI(p.lookahead()) {
		return nil, p.unexpected("individual", tokenNames[FULL_IRI], tokenNames[PREFIXED_NAME], tokenNames[BLANK_NODE])
	}
	//
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return owl.NewNamedIndividual(iri), nil
}

// Parse an anonymous individual, if one is next.  Its identity is scoped to the
// document being parsed.
func (p *Parser) parseAnonymousIndividual() (*owl.AnonymousIndividual, bool) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != BLANK_NODE {
		return nil, false
	}
	//
	p.index++
	//
	return owl.NewAnonymousIndividual(p.string(lookahead)[2:], p.document), true
}

// Parse a literal, which is a quoted string optionally followed by either a
// datatype or a language tag.
func (p *Parser) parseLiteral() (owl.Literal, *source.SyntaxError) {
	token, err := p.expect(STRING)
	if err != nil {
		return owl.Literal{}, p.unexpected("literal", tokenNames[STRING])
	}
	//
	lexical := unquote(p.string(token))
	//
	switch {
	case p.match(DOUBLE_CARET):
		datatype, err := p.parseIRI()
		if err != nil {
			return owl.Literal{}, err
		}
		//
		return owl.NewTypedLiteral(lexical, datatype), nil
	case p.follows(LANGUAGE_TAG):
		tag := p.string(p.lookahead())[1:]
		p.index++
		//
		return owl.NewLanguageLiteral(lexical, tag), nil
	default:
		return owl.NewPlainLiteral(lexical), nil
	}
}

// Parse a non-negative integer, which must fit in 32 bits.
func (p *Parser) parseNonNegativeInteger() (uint32, *source.SyntaxError) {
	token, err := p.expect(NUMBER)
	if err != nil {
		return 0, p.unexpected("non-negative integer", tokenNames[NUMBER])
	}
	//
	n, perr := strconv.ParseUint(p.string(token), 10, 32)
	if perr != nil {
		return 0, p.syntaxError(token, source.LEXICAL_ERROR, "integer out of range (maximum is 4294967295)")
	}
	//
	return uint32(n), nil
}
