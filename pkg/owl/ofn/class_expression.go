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

type classExpressionParser func(*Parser, string) (owl.ClassExpression, *source.SyntaxError)

// Maps the leading keyword of each class expression to its parser.  A bare IRI
// is the only form without a keyword.
var classExpressions map[string]classExpressionParser

// Keywords of all class expressions, for error reporting.
var classExpressionKeywords []string

func init() {
	classExpressions = map[string]classExpressionParser{
		"ObjectIntersectionOf":   (*Parser).parseObjectIntersectionOf,
		"ObjectUnionOf":          (*Parser).parseObjectUnionOf,
		"ObjectComplementOf":     (*Parser).parseObjectComplementOf,
		"ObjectOneOf":            (*Parser).parseObjectOneOf,
		"ObjectSomeValuesFrom":   (*Parser).parseObjectSomeValuesFrom,
		"ObjectAllValuesFrom":    (*Parser).parseObjectAllValuesFrom,
		"ObjectHasValue":         (*Parser).parseObjectHasValue,
		"ObjectHasSelf":          (*Parser).parseObjectHasSelf,
		"ObjectMinCardinality":   objectCardinality(owl.MIN_CARDINALITY),
		"ObjectMaxCardinality":   objectCardinality(owl.MAX_CARDINALITY),
		"ObjectExactCardinality": objectCardinality(owl.EXACT_CARDINALITY),
		"DataSomeValuesFrom":     (*Parser).parseDataSomeValuesFrom,
		"DataAllValuesFrom":      (*Parser).parseDataAllValuesFrom,
		"DataHasValue":           (*Parser).parseDataHasValue,
		"DataMinCardinality":     dataCardinality(owl.MIN_CARDINALITY),
		"DataMaxCardinality":     dataCardinality(owl.MAX_CARDINALITY),
		"DataExactCardinality":   dataCardinality(owl.EXACT_CARDINALITY),
	}
	classExpressionKeywords = keywordsOf(classExpressions, tokenNames[FULL_IRI], tokenNames[PREFIXED_NAME])
}

// Parse a class expression.  Keywords are dispatched directly to the relevant
// parser, falling back to a named class when no keyword is present.
func (p *Parser) parseClassExpression() (owl.ClassExpression, *source.SyntaxError) {
	var (
		start     = p.index
		lookahead = p.lookahead()
		ce        owl.ClassExpression
		err       *source.SyntaxError
	)
	//
	switch {
	case lookahead.Kind == KEYWORD:
		keyword := p.string(lookahead)
		parser, ok := classExpressions[keyword]
		//
		if !ok {
			return nil, p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "unknown class expression",
				classExpressionKeywords...)
		} else if err = p.enter(); err != nil {
			return nil, err
		}
		//
		ce, err = parser(p, keyword)
		//
		p.leave()
	case isIRI(lookahead):
		ce, err = p.parseClass()
	default:
		return nil, p.unexpected("class expression", classExpressionKeywords...)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	p.record(ce, start)
	//
	return ce, nil
}

func (p *Parser) parseObjectIntersectionOf(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	operands, err := p.parseClassExpressions(keyword, 2)
	if err != nil {
		return nil, err
	}
	//
	return &owl.ObjectIntersectionOf{Operands: operands}, nil
}

func (p *Parser) parseObjectUnionOf(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	operands, err := p.parseClassExpressions(keyword, 2)
	if err != nil {
		return nil, err
	}
	//
	return &owl.ObjectUnionOf{Operands: operands}, nil
}

// Parse a bracketed list of at least n class expressions following a keyword.
func (p *Parser) parseClassExpressions(keyword string, n int) ([]owl.ClassExpression, *source.SyntaxError) {
	if err := p.open(keyword); err != nil {
		return nil, err
	}
	//
	operands, err := parseList(p, keyword, n, "class expression", (*Parser).parseClassExpression)
	if err != nil {
		return nil, err
	}
	//
	return operands, p.close(keyword)
}

func (p *Parser) parseObjectComplementOf(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	var (
		ce  owl.ObjectComplementOf
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if ce.Operand, err = p.parseClassExpression(); err != nil {
		return nil, err
	}
	//
	return &ce, p.close(keyword)
}

func (p *Parser) parseObjectOneOf(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	var (
		ce  owl.ObjectOneOf
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if ce.Individuals, err = parseList(p, keyword, 1, "individual", (*Parser).parseIndividual); err != nil {
		return nil, err
	}
	//
	return &ce, p.close(keyword)
}

func (p *Parser) parseObjectSomeValuesFrom(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	property, filler, err := p.parseObjectQuantifier(keyword)
	if err != nil {
		return nil, err
	}
	//
	return &owl.ObjectSomeValuesFrom{Property: property, Filler: filler}, nil
}

func (p *Parser) parseObjectAllValuesFrom(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	property, filler, err := p.parseObjectQuantifier(keyword)
	if err != nil {
		return nil, err
	}
	//
	return &owl.ObjectAllValuesFrom{Property: property, Filler: filler}, nil
}

func (p *Parser) parseObjectQuantifier(keyword string) (owl.ObjectPropertyExpression, owl.ClassExpression,
	*source.SyntaxError) {
	var (
		property owl.ObjectPropertyExpression
		filler   owl.ClassExpression
		err      *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, nil, err
	} else if property, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, nil, err
	} else if filler, err = p.parseClassExpression(); err != nil {
		return nil, nil, err
	}
	//
	return property, filler, p.close(keyword)
}

func (p *Parser) parseObjectHasValue(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	var (
		ce  owl.ObjectHasValue
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if ce.Property, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	} else if ce.Individual, err = p.parseIndividual(); err != nil {
		return nil, err
	}
	//
	return &ce, p.close(keyword)
}

func (p *Parser) parseObjectHasSelf(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	var (
		ce  owl.ObjectHasSelf
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if ce.Property, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	}
	//
	return &ce, p.close(keyword)
}

// Construct a parser for object cardinality restrictions of a given kind.  The
// qualifying class expression is optional.
func objectCardinality(kind owl.CardinalityKind) classExpressionParser {
	return func(p *Parser, keyword string) (owl.ClassExpression, *source.SyntaxError) {
		var (
			ce  = owl.ObjectCardinality{Restriction: kind}
			err *source.SyntaxError
		)
		//
		if err = p.open(keyword); err != nil {
			return nil, err
		} else if ce.Cardinality, err = p.parseNonNegativeInteger(); err != nil {
			return nil, err
		} else if ce.Property, err = p.parseObjectPropertyExpression(); err != nil {
			return nil, err
		} else if !p.follows(RBRACE) {
			if ce.Filler, err = p.parseClassExpression(); err != nil {
				return nil, err
			}
		}
		//
		return &ce, p.close(keyword)
	}
}

func (p *Parser) parseDataSomeValuesFrom(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	properties, rng, err := p.parseDataQuantifier(keyword)
	if err != nil {
		return nil, err
	}
	//
	return &owl.DataSomeValuesFrom{Properties: properties, Range: rng}, nil
}

func (p *Parser) parseDataAllValuesFrom(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	properties, rng, err := p.parseDataQuantifier(keyword)
	if err != nil {
		return nil, err
	}
	//
	return &owl.DataAllValuesFrom{Properties: properties, Range: rng}, nil
}

// Parse one or more data properties followed by a data range.  Since a data
// range may itself be a bare datatype IRI, an IRI is only taken as a data
// property when it is not immediately followed by the closing brace.
func (p *Parser) parseDataQuantifier(keyword string) ([]*owl.DataProperty, owl.DataRange, *source.SyntaxError) {
	var (
		properties []*owl.DataProperty
		rng        owl.DataRange
		err        *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, nil, err
	}
	//
	for isIRI(p.lookahead()) && p.peek(1).Kind != RBRACE {
		property, err := p.parseDataProperty()
		if err != nil {
			return nil, nil, err
		}
		//
		properties = append(properties, property)
	}
	//
	if len(properties) == 0 {
		return nil, nil, p.syntaxError(p.lookahead(), source.STRUCTURAL_ERROR,
			keyword+" requires at least 1 data property, found 0", "data property")
	} else if rng, err = p.parseDataRange(); err != nil {
		return nil, nil, err
	}
	//
	return properties, rng, p.close(keyword)
}

func (p *Parser) parseDataHasValue(keyword string) (owl.ClassExpression, *source.SyntaxError) {
	var (
		ce  owl.DataHasValue
		err *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if ce.Property, err = p.parseDataProperty(); err != nil {
		return nil, err
	} else if ce.Value, err = p.parseLiteral(); err != nil {
		return nil, err
	}
	//
	return &ce, p.close(keyword)
}

// Construct a parser for data cardinality restrictions of a given kind.  The
// qualifying data range is optional.
func dataCardinality(kind owl.CardinalityKind) classExpressionParser {
	return func(p *Parser, keyword string) (owl.ClassExpression, *source.SyntaxError) {
		var (
			ce  = owl.DataCardinality{Restriction: kind}
			err *source.SyntaxError
		)
		//
		if err = p.open(keyword); err != nil {
			return nil, err
		} else if ce.Cardinality, err = p.parseNonNegativeInteger(); err != nil {
			return nil, err
		} else if ce.Property, err = p.parseDataProperty(); err != nil {
			return nil, err
		} else if !p.follows(RBRACE) {
			if ce.Range, err = p.parseDataRange(); err != nil {
				return nil, err
			}
		}
		//
		return &ce, p.close(keyword)
	}
}
