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

const (
	dlSafeRule           = "DLSafeRule"
	descriptionGraphRule = "DescriptionGraphRule"
	descriptionGraph     = "DescriptionGraph"
	variable             = "Variable"
)

type atomParser func(*Parser, string) (owl.Atom, *source.SyntaxError)

// Maps the keyword of each atom to its parser.
var atoms map[string]atomParser

// Atoms permitted within a DL-safe rule.
var dlSafeAtoms []string

// Atoms permitted within a description graph rule.
var descriptionGraphAtoms = []string{"ClassAtom", "ObjectPropertyAtom"}

func init() {
	atoms = map[string]atomParser{
		"ClassAtom":                (*Parser).parseClassAtom,
		"DataRangeAtom":            (*Parser).parseDataRangeAtom,
		"ObjectPropertyAtom":       (*Parser).parseObjectPropertyAtom,
		"DataPropertyAtom":         (*Parser).parseDataPropertyAtom,
		"BuiltInAtom":              (*Parser).parseBuiltInAtom,
		"SameIndividualAtom":       (*Parser).parseSameIndividualAtom,
		"DifferentIndividualsAtom": (*Parser).parseDifferentIndividualsAtom,
	}
	dlSafeAtoms = keywordsOf(atoms)
}

// Parse a DL-safe rule or description graph rule.  Both consist of a body and
// a head, each of which is a (possibly empty) list of atoms.  The atoms of a
// description graph rule are limited to class and object property atoms.
func (p *Parser) parseRule(keyword string, permitted []string) (owl.Rule, *source.SyntaxError) {
	var (
		annotations []*owl.Annotation
		body, head  []owl.Atom
		err         *source.SyntaxError
	)
	//
	if annotations, err = p.parseAxiomHead(keyword); err != nil {
		return nil, err
	} else if body, err = p.parseAtoms("Body", permitted); err != nil {
		return nil, err
	} else if head, err = p.parseAtoms("Head", permitted); err != nil {
		return nil, err
	} else if err = p.close(keyword); err != nil {
		return nil, err
	}
	//
	if keyword == descriptionGraphRule {
		return &owl.DescriptionGraphRule{Annotated: owl.Annotated{Annotations: annotations}, Body: body, Head: head}, nil
	}
	//
	return &owl.DLSafeRule{Annotated: owl.Annotated{Annotations: annotations}, Body: body, Head: head}, nil
}

// Parse a bracketed list of atoms, such as Body(...) or Head(...).
func (p *Parser) parseAtoms(keyword string, permitted []string) ([]owl.Atom, *source.SyntaxError) {
	if err := p.open(keyword); err != nil {
		return nil, err
	}
	//
	items, err := parseList(p, keyword, 0, "atom", func(p *Parser) (owl.Atom, *source.SyntaxError) {
		return p.parseAtom(permitted)
	})
	//
	if err != nil {
		return nil, err
	}
	//
	return items, p.close(keyword)
}

// Parse an atom, provided it is one of those permitted.
func (p *Parser) parseAtom(permitted []string) (owl.Atom, *source.SyntaxError) {
	var (
		start     = p.index
		lookahead = p.lookahead()
		keyword   = p.string(lookahead)
	)
	//
	if lookahead.Kind != KEYWORD {
		return nil, p.unexpected("atom", permitted...)
	}
	//
	parser, ok := atoms[keyword]
	//
	if !ok {
		return nil, p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "unknown atom", permitted...)
	} else if !slices.Contains(permitted, keyword) {
		return nil, p.syntaxError(lookahead, source.STRUCTURAL_ERROR, keyword+" not permitted here", permitted...)
	}
	//
	atom, err := parser(p, keyword)
	if err != nil {
		return nil, err
	}
	//
	p.record(atom, start)
	//
	return atom, nil
}

func (p *Parser) parseClassAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.ClassAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.Class, err = p.parseClassExpression(); err != nil {
		return nil, err
	} else if atom.Argument, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

func (p *Parser) parseDataRangeAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.DataRangeAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.Range, err = p.parseDataRange(); err != nil {
		return nil, err
	} else if atom.Argument, err = p.parseDataArgument(); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

func (p *Parser) parseObjectPropertyAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.ObjectPropertyAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.Property, err = p.parseObjectPropertyExpression(); err != nil {
		return nil, err
	} else if atom.Source, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	} else if atom.Target, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

func (p *Parser) parseDataPropertyAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.DataPropertyAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.Property, err = p.parseDataProperty(); err != nil {
		return nil, err
	} else if atom.Source, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	} else if atom.Target, err = p.parseDataArgument(); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

func (p *Parser) parseBuiltInAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.BuiltInAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.Predicate, err = p.parseIRI(); err != nil {
		return nil, err
	} else if atom.Arguments, err = parseList(p, keyword, 1, "data argument",
		(*Parser).parseDataArgument); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

func (p *Parser) parseSameIndividualAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.SameIndividualAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.First, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	} else if atom.Second, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

func (p *Parser) parseDifferentIndividualsAtom(keyword string) (owl.Atom, *source.SyntaxError) {
	var (
		atom owl.DifferentIndividualsAtom
		err  *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return nil, err
	} else if atom.First, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	} else if atom.Second, err = p.parseIndividualArgument(); err != nil {
		return nil, err
	}
	//
	return &atom, p.close(keyword)
}

// Parse a variable, such as Variable(ex:x).
func (p *Parser) parseVariable() (*owl.Variable, *source.SyntaxError) {
	var (
		v   owl.Variable
		err *source.SyntaxError
	)
	//
	if err = p.open(variable); err != nil {
		return nil, err
	} else if v.Name, err = p.parseIRI(); err != nil {
		return nil, err
	}
	//
	return &v, p.close(variable)
}

// Parse an argument which is either a variable or an individual.
func (p *Parser) parseIndividualArgument() (owl.IndividualArgument, *source.SyntaxError) {
	if p.isKeyword(variable) {
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		//
		return v, nil
	}
	//
	individual, err := p.parseIndividual()
	if err != nil {
		return nil, err
	}
	//
	return individual.(owl.IndividualArgument), nil
}

// Parse an argument which is either a variable or a literal.
func (p *Parser) parseDataArgument() (owl.DataArgument, *source.SyntaxError) {
	if p.isKeyword(variable) {
		v, err := p.parseVariable()
		if err != nil {
			return nil, err
		}
		//
		return v, nil
	} else if !p.follows(STRING) {
		return nil, p.unexpected("data argument", variable, tokenNames[STRING])
	}
	//
	literal, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	//
	return literal, nil
}

// ============================================================================
// Description Graphs
// ============================================================================

// Parse a description graph, which consists of a name followed by non-empty
// lists of node assertions, edge assertions and main classes.
func (p *Parser) parseDescriptionGraph() (*owl.DescriptionGraph, *source.SyntaxError) {
	var (
		graph owl.DescriptionGraph
		err   *source.SyntaxError
	)
	//
	if graph.Annotations, err = p.parseAxiomHead(descriptionGraph); err != nil {
		return nil, err
	} else if graph.Name, err = p.parseIRI(); err != nil {
		return nil, err
	} else if graph.Nodes, err = parseSection(p, "Nodes", "node assertion", (*Parser).parseNodeAssertion); err != nil {
		return nil, err
	} else if graph.Edges, err = parseSection(p, "Edges", "edge assertion", (*Parser).parseEdgeAssertion); err != nil {
		return nil, err
	} else if graph.MainClasses, err = parseSection(p, "MainClasses", "class", (*Parser).parseClass); err != nil {
		return nil, err
	}
	//
	return &graph, p.close(descriptionGraph)
}

// Parse a keyword followed by a bracketed non-empty list of items.
func parseSection[T any](p *Parser, keyword string, what string,
	parse func(*Parser) (T, *source.SyntaxError)) ([]T, *source.SyntaxError) {
	if err := p.open(keyword); err != nil {
		return nil, err
	}
	//
	items, err := parseList(p, keyword, 1, what, parse)
	if err != nil {
		return nil, err
	}
	//
	return items, p.close(keyword)
}

func (p *Parser) parseNodeAssertion() (owl.NodeAssertion, *source.SyntaxError) {
	var (
		keyword   = "NodeAssertion"
		assertion owl.NodeAssertion
		err       *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return assertion, err
	} else if assertion.Class, err = p.parseClass(); err != nil {
		return assertion, err
	} else if assertion.Node, err = p.parseIRI(); err != nil {
		return assertion, err
	}
	//
	return assertion, p.close(keyword)
}

func (p *Parser) parseEdgeAssertion() (owl.EdgeAssertion, *source.SyntaxError) {
	var (
		keyword   = "EdgeAssertion"
		assertion owl.EdgeAssertion
		err       *source.SyntaxError
	)
	//
	if err = p.open(keyword); err != nil {
		return assertion, err
	} else if assertion.Property, err = p.parseObjectProperty(); err != nil {
		return assertion, err
	} else if assertion.From, err = p.parseIRI(); err != nil {
		return assertion, err
	} else if assertion.To, err = p.parseIRI(); err != nil {
		return assertion, err
	}
	//
	return assertion, p.close(keyword)
}
