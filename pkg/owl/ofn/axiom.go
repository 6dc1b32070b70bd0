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
	"slices"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
)

type axiomParser func(*Parser, string) (owl.Axiom, *source.SyntaxError)

// Maps the keyword of each axiom to its parser.
var axioms map[string]axiomParser

// Keywords of all axioms, for error reporting.
var axiomKeywords []string

func init() {
	axioms = map[string]axiomParser{
		"Declaration":                     (*Parser).parseDeclaration,
		"SubClassOf":                      (*Parser).parseSubClassOf,
		"EquivalentClasses":               (*Parser).parseEquivalentClasses,
		"DisjointClasses":                 (*Parser).parseDisjointClasses,
		"DisjointUnion":                   (*Parser).parseDisjointUnion,
		"SubObjectPropertyOf":             (*Parser).parseSubObjectPropertyOf,
		"EquivalentObjectProperties":      (*Parser).parseEquivalentObjectProperties,
		"DisjointObjectProperties":        (*Parser).parseDisjointObjectProperties,
		"InverseObjectProperties":         (*Parser).parseInverseObjectProperties,
		"ObjectPropertyDomain":            (*Parser).parseObjectPropertyDomain,
		"ObjectPropertyRange":             (*Parser).parseObjectPropertyRange,
		"SubDataPropertyOf":               (*Parser).parseSubDataPropertyOf,
		"EquivalentDataProperties":        (*Parser).parseEquivalentDataProperties,
		"DisjointDataProperties":          (*Parser).parseDisjointDataProperties,
		"DataPropertyDomain":              (*Parser).parseDataPropertyDomain,
		"DataPropertyRange":               (*Parser).parseDataPropertyRange,
		"FunctionalDataProperty":          (*Parser).parseFunctionalDataProperty,
		"DatatypeDefinition":              (*Parser).parseDatatypeDefinition,
		"HasKey":                          (*Parser).parseHasKey,
		"SameIndividual":                  (*Parser).parseSameIndividual,
		"DifferentIndividuals":            (*Parser).parseDifferentIndividuals,
		"ClassAssertion":                  (*Parser).parseClassAssertion,
		"ObjectPropertyAssertion":         objectPropertyAssertion(false),
		"NegativeObjectPropertyAssertion": objectPropertyAssertion(true),
		"DataPropertyAssertion":           dataPropertyAssertion(false),
		"NegativeDataPropertyAssertion":   dataPropertyAssertion(true),
		"AnnotationAssertion":             (*Parser).parseAnnotationAssertion,
		"SubAnnotationPropertyOf":         (*Parser).parseSubAnnotationPropertyOf,
		"AnnotationPropertyDomain":        (*Parser).parseAnnotationPropertyDomain,
		"AnnotationPropertyRange":         (*Parser).parseAnnotationPropertyRange,
	}
	// Object property characteristics all share the same shape
	for i, keyword := range owl.CHARACTERISTICS {
		axioms[keyword] = objectPropertyCharacteristic(owl.Characteristic(i))
	}
	//
	axiomKeywords = keywordsOf(axioms)
}

// Parse an axiom.
func (p *Parser) parseAxiom() (owl.Axiom, *source.SyntaxError) {
	var (
		start     = p.index
		lookahead = p.lookahead()
	)
	//
	if lookahead.Kind != KEYWORD {
		return nil, p.unexpected("axiom", axiomKeywords...)
	}
	//
	keyword := p.string(lookahead)
	parser, ok := axioms[keyword]
	//
	if !ok {
		return nil, p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "unknown axiom", axiomKeywords...)
	}
	//
	axiom, err := parser(p, keyword)
	if err != nil {
		return nil, err
	}
	//
	p.record(axiom, start)
	//
	return axiom, nil
}

// Parse the keyword, opening brace and annotations which begin every axiom.
func (p *Parser) parseAxiomHead(keyword string) ([]*owl.Annotation, *source.SyntaxError) {
	if err := p.open(keyword); err != nil {
		return nil, err
	}
	//
	return p.parseAnnotations()
}

// ============================================================================
// Declarations
// ============================================================================

func (p *Parser) parseDeclaration(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.Declaration
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Entity, err = p.parseEntity(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// Parse a typed entity, such as Class(ex:A).
func (p *Parser) parseEntity() (owl.Entity, *source.SyntaxError) {
	var (
		lookahead = p.lookahead()
		keyword   = p.string(lookahead)
		entity    owl.Entity
	)
	//
	if lookahead.Kind != KEYWORD {
		return nil, p.unexpected("entity", entityKeywords...)
	} else if !slices.Contains(entityKeywords, keyword) {
		return nil, p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "unknown entity", entityKeywords...)
	}
	//
	if err := p.open(keyword); err != nil {
		return nil, err
	}
	//
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	switch keyword {
	case "Class":
		entity = owl.NewClass(iri)
	case "Datatype":
		entity = owl.NewDatatype(iri)
	case "ObjectProperty":
		entity = owl.NewObjectProperty(iri)
	case "DataProperty":
		entity = owl.NewDataProperty(iri)
	case "AnnotationProperty":
		entity = owl.NewAnnotationProperty(iri)
	case "NamedIndividual":
		entity = owl.NewNamedIndividual(iri)
	}
	//
	return entity, p.close(keyword)
}

var entityKeywords = []string{"Class", "Datatype", "ObjectProperty", "DataProperty", "AnnotationProperty",
	"NamedIndividual"}

// ============================================================================
// Class Axioms
// ============================================================================

func (p *Parser) parseSubClassOf(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.SubClassOf
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Sub, err = p.parseClassExpression(); err != nil {
		return nil, err
	} else if axiom.Super, err = p.parseClassExpression(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseEquivalentClasses(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.EquivalentClasses
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Classes, err = parseList(p, keyword, 2, "class expression",
		(*Parser).parseClassExpression); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDisjointClasses(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DisjointClasses
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Classes, err = parseList(p, keyword, 2, "class expression",
		(*Parser).parseClassExpression); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDisjointUnion(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DisjointUnion
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Class, err = p.parseClass(); err != nil {
		return nil, err
	} else if axiom.Classes, err = parseList(p, keyword, 2, "class expression",
		(*Parser).parseClassExpression); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// ============================================================================
// Object Property Axioms
// ============================================================================

func (p *Parser) parseSubObjectPropertyOf(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.SubObjectPropertyOf
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Sub, err = p.parseSubObjectPropertyExpression(); err != nil {
		return nil, err
	} else if axiom.Super, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseEquivalentObjectProperties(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.EquivalentObjectProperties
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Properties, err = parseList(p, keyword, 2, "object property expression",
		(*Parser).parseObjectPropertyExpression); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDisjointObjectProperties(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DisjointObjectProperties
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Properties, err = parseList(p, keyword, 2, "object property expression",
		(*Parser).parseObjectPropertyExpression); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseInverseObjectProperties(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.InverseObjectProperties
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.First, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	} else if axiom.Second, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseObjectPropertyDomain(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.ObjectPropertyDomain
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	} else if axiom.Domain, err = p.parseClassExpression(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseObjectPropertyRange(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.ObjectPropertyRange
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	} else if axiom.Range, err = p.parseClassExpression(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// Construct a parser for an object property characteristic axiom, such as
// FunctionalObjectProperty or TransitiveObjectProperty.
func objectPropertyCharacteristic(characteristic owl.Characteristic) axiomParser {
	return func(p *Parser, keyword string) (owl.Axiom, *source.SyntaxError) {
		var (
			axiom = owl.ObjectPropertyCharacteristic{Characteristic: characteristic}
			err   *source.SyntaxError
		)
		//
		if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
			return nil, err
		} else if axiom.Property, err = p.parseObjectPropertyExpression(); err != nil {
			return nil, err
		}
		//
		return &axiom, p.close(keyword)
	}
}

// ============================================================================
// Data Property Axioms
// ============================================================================

func (p *Parser) parseSubDataPropertyOf(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.SubDataPropertyOf
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Sub, err = p.parseDataProperty(); err != nil {
		return nil, err
	} else if axiom.Super, err = p.parseDataProperty(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseEquivalentDataProperties(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.EquivalentDataProperties
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Properties, err = parseList(p, keyword, 2, "data property",
		(*Parser).parseDataProperty); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDisjointDataProperties(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DisjointDataProperties
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Properties, err = parseList(p, keyword, 2, "data property",
		(*Parser).parseDataProperty); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDataPropertyDomain(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DataPropertyDomain
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseDataProperty(); err != nil {
		return nil, err
	} else if axiom.Domain, err = p.parseClassExpression(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDataPropertyRange(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DataPropertyRange
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseDataProperty(); err != nil {
		return nil, err
	} else if axiom.Range, err = p.parseDataRange(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseFunctionalDataProperty(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.FunctionalDataProperty
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseDataProperty(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// ============================================================================
// Datatype Definitions & Keys
// ============================================================================

func (p *Parser) parseDatatypeDefinition(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DatatypeDefinition
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Datatype, err = p.parseDatatype(); err != nil {
		return nil, err
	} else if axiom.Range, err = p.parseDataRange(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// HasKey carries two bracketed (and possibly empty) lists after the class
// expression: first the object properties, then the data properties.
func (p *Parser) parseHasKey(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.HasKey
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Class, err = p.parseClassExpression(); err != nil {
		return nil, err
	} else if _, err = p.expect(LBRACE); err != nil {
		return nil, err
	} else if axiom.ObjectProperties, err = parseList(p, keyword, 0, "object property expression",
		(*Parser).parseObjectPropertyExpression); err != nil {
		return nil, err
	} else if _, err = p.expect(RBRACE); err != nil {
		return nil, err
	} else if _, err = p.expect(LBRACE); err != nil {
		return nil, err
	} else if axiom.DataProperties, err = parseList(p, keyword, 0, "data property",
		(*Parser).parseDataProperty); err != nil {
		return nil, err
	} else if _, err = p.expect(RBRACE); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// ============================================================================
// Assertions
// ============================================================================

func (p *Parser) parseSameIndividual(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.SameIndividual
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Individuals, err = parseList(p, keyword, 2, "individual",
		(*Parser).parseIndividual); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseDifferentIndividuals(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.DifferentIndividuals
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Individuals, err = parseList(p, keyword, 2, "individual",
		(*Parser).parseIndividual); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseClassAssertion(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.ClassAssertion
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Class, err = p.parseClassExpression(); err != nil {
		return nil, err
	} else if axiom.Individual, err = p.parseIndividual(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

// Construct a parser for positive or negative object property assertions.
func objectPropertyAssertion(negative bool) axiomParser {
	return func(p *Parser, keyword string) (owl.Axiom, *source.SyntaxError) {
		var (
			axiom = owl.ObjectPropertyAssertion{Negative: negative}
			err   *source.SyntaxError
		)
		//
		if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
			return nil, err
		} else if axiom.Property, err = p.parseObjectPropertyExpression(); err != nil {
			return nil, err
		} else if axiom.Source, err = p.parseIndividual(); err != nil {
			return nil, err
		} else if axiom.Target, err = p.parseIndividual(); err != nil {
			return nil, err
		}
		//
		return &axiom, p.close(keyword)
	}
}

// Construct a parser for positive or negative data property assertions.
func dataPropertyAssertion(negative bool) axiomParser {
	return func(p *Parser, keyword string) (owl.Axiom, *source.SyntaxError) {
		var (
			axiom = owl.DataPropertyAssertion{Negative: negative}
			err   *source.SyntaxError
		)
		//
		if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
			return nil, err
		} else if axiom.Property, err = p.parseDataProperty(); err != nil {
			return nil, err
		} else if axiom.Source, err = p.parseIndividual(); err != nil {
			return nil, err
		} else if axiom.Target, err = p.parseLiteral(); err != nil {
			return nil, err
		}
		//
		return &axiom, p.close(keyword)
	}
}

// ============================================================================
// Annotation Axioms
// ============================================================================

func (p *Parser) parseAnnotationAssertion(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.AnnotationAssertion
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseAnnotationProperty(); err != nil {
		return nil, err
	} else if axiom.Subject, err = p.parseAnnotationSubject(); err != nil {
		return nil, err
	} else if axiom.Value, err = p.parseAnnotationValue(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseSubAnnotationPropertyOf(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.SubAnnotationPropertyOf
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Sub, err = p.parseAnnotationProperty(); err != nil {
		return nil, err
	} else if axiom.Super, err = p.parseAnnotationProperty(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseAnnotationPropertyDomain(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.AnnotationPropertyDomain
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseAnnotationProperty(); err != nil {
		return nil, err
	} else if axiom.Domain, err = p.parseIRI(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}

func (p *Parser) parseAnnotationPropertyRange(keyword string) (owl.Axiom, *source.SyntaxError) {
	var (
		axiom owl.AnnotationPropertyRange
		err   *source.SyntaxError
	)
	//
	if axiom.Annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if axiom.Property, err = p.parseAnnotationProperty(); err != nil {
		return nil, err
	} else if axiom.Range, err = p.parseIRI(); err != nil {
		return nil, err
	}
	//
	return &axiom, p.close(keyword)
}
