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
	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
)

type dataRangeParser func(*Parser, string) (owl.DataRange, *source.SyntaxError)

// Maps the leading keyword of each data range to its parser.  A bare IRI is the
// only form without a keyword.
var dataRanges map[string]dataRangeParser

// Keywords of all data ranges, for error reporting.
var dataRangeKeywords []string

func init() {
	dataRanges = map[string]dataRangeParser{
		"DataIntersectionOf":  (*Parser).parseDataIntersectionOf,
		"DataUnionOf":         (*Parser).parseDataUnionOf,
		"DataComplementOf":    (*Parser).parseDataComplementOf,
		"DataOneOf":           (*Parser).parseDataOneOf,
		"DatatypeRestriction": (*Parser).parseDatatypeRestriction,
	}
	dataRangeKeywords = keywordsOf(dataRanges, tokenNames[FULL_IRI], tokenNames[PREFIXED_NAME])
}

// Parse a data range.  Keywords are dispatched directly to the relevant
// parser, falling back to a named datatype when no keyword is present.
func (p *Parser) parseDataRange() (owl.DataRange, *source.SyntaxError) {
	var (
		start     = p.index
		lookahead = p.lookahead()
		dr        owl.DataRange
		err       *source.SyntaxError
	)
	//
	switch {
	case lookahead.Kind == KEYWORD:
		keyword := p.string(lookahead)
		parser, ok := dataRanges[keyword]
		//
		if !ok {
			return nil, p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "unknown data range", dataRangeKeywords...)
		} else if err = p.enter(); err != nil {
			return nil, err
		}
		//
		dr, err = parser(p, keyword)
		//
		p.leave()
	case isIRI(lookahead):
		dr, err = p.parseDatatype()
	default:
		return nil, p.unexpected("data range", dataRangeKeywords...)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	p.record(dr, start)
	//
	return dr, nil
}

func (p *Parser) parseDataIntersectionOf(keyword string) (owl.DataRange, *source.SyntaxError) {
	operands, err := p.parseDataRanges(keyword, 2)
	if err != nil {
		return nil, err
	}
	//
	return &owl.DataIntersectionOf{Operands: operands}, nil
}

func (p *Parser) parseDataUnionOf(keyword string) (owl.DataRange, *source.SyntaxError) {
	operands, err := p.parseDataRanges(keyword, 2)
	if err != nil {
		return nil, err
	}
	//
	return &owl.DataUnionOf{Operands: operands}, nil
}

// Parse a bracketed list of at least n data ranges following a keyword.
func (p *Parser) parseDataRanges(keyword string, n int) ([]owl.DataRange, *source.SyntaxError) {
	if err := p.open(keyword); err != nil {
		return nil, err
	}
	//
	operands, err := parseList(p, keyword, n, "data range", (*Parser).parseDataRange)
	if err != nil {
		return nil, err
	}
	//
	return operands, p.close(keyword)
}

func (p *Parser) parseDataComplementOf(keyword string) (owl.DataRange, *source.SyntaxError) {
	var (
		dr  owl.DataComplementOf
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if dr.Operand, err = p.parseDataRange(); err != nil {
		return nil, err
	}
	//
	return &dr, p.close(keyword)
}

func (p *Parser) parseDataOneOf(keyword string) (owl.DataRange, *source.SyntaxError) {
	var (
		dr  owl.DataOneOf
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if dr.Literals, err = parseList(p, keyword, 1, "literal", (*Parser).parseLiteral); err != nil {
		return nil, err
	}
	//
	return &dr, p.close(keyword)
}

func (p *Parser) parseDatatypeRestriction(keyword string) (owl.DataRange, *source.SyntaxError) {
	var (
		dr  owl.DatatypeRestriction
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if dr.Datatype, err = p.parseDatatype(); err != nil {
		return nil, err
	} else if dr.Restrictions, err = parseList(p, keyword, 1, "facet restriction",
		(*Parser).parseFacetRestriction); err != nil {
		return nil, err
	}
	//
	return &dr, p.close(keyword)
}

// Parse a constraining facet followed by its value.  The facet must be one of
// those defined for datatype restrictions.
func (p *Parser) parseFacetRestriction() (owl.FacetRestriction, *source.SyntaxError) {
	var (
		restriction owl.FacetRestriction
		token       = p.lookahead()
		err         *source.SyntaxError
	)
	//
	if restriction.Facet, err = p.parseIRI(); err != nil {
		return restriction, err
	} else if !owl.IsFacet(restriction.Facet) {
		return restriction, p.syntaxError(token, source.SEMANTIC_ERROR, "invalid facet", owl.FACETS...)
	} else if restriction.Value, err = p.parseLiteral(); err != nil {
		return restriction, err
	}
	//
	return restriction, nil
}
