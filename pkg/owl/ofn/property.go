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

const (
	inverseOf     = "ObjectInverseOf"
	propertyChain = "ObjectPropertyChain"
)

// Parse an object property expression, which is either a named object
// property, or the inverse of one.
func (p *Parser) parseObjectPropertyExpression() (owl.ObjectPropertyExpression, *source.SyntaxError) {
	var (
		start = p.index
		ope   owl.ObjectPropertyExpression
		err   *source.SyntaxError
	)
	//
	switch {
	case p.isKeyword(inverseOf):
		ope, err = p.parseObjectInverseOf()
	case isIRI(p.lookahead()):
		ope, err = p.parseObjectProperty()
	default:
		return nil, p.unexpected("object property expression", inverseOf, tokenNames[FULL_IRI],
			tokenNames[PREFIXED_NAME])
	}
	//
	if err != nil {
		return nil, err
	}
	//
	p.record(ope, start)
	//
	return ope, nil
}

func (p *Parser) parseObjectInverseOf() (*owl.ObjectInverseOf, *source.SyntaxError) {
	var (
		ope owl.ObjectInverseOf
		err *source.SyntaxError
	)
	//
	if err = p.open(inverseOf); err != nil {
		return nil, err
	} else if ope.Property, err = p.parseObjectProperty(); err != nil {
		return nil, err
	}
	//
	return &ope, p.close(inverseOf)
}

// Parse the left-hand side of a SubObjectPropertyOf axiom, which is either an
// object property expression or a chain of at least two.
func (p *Parser) parseSubObjectPropertyExpression() (owl.SubObjectPropertyExpression, *source.SyntaxError) {
	var (
		start = p.index
		chain owl.ObjectPropertyChain
		err   *source.SyntaxError
	)
	//
	if !p.isKeyword(propertyChain) {
		return p.parseObjectPropertyExpression()
	} else if err = p.open(propertyChain); err != nil {
		return nil, err
	} else if chain.Properties, err = parseList(p, propertyChain, 2, "object property expression",
		(*Parser).parseObjectPropertyExpression); err != nil {
		return nil, err
	} else if err = p.close(propertyChain); err != nil {
		return nil, err
	}
	//
	p.record(&chain, start)
	//
	return &chain, nil
}
