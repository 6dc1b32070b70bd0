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

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// ParseDocument parses zero or more prefix declarations, followed by exactly
// one ontology, followed by the end of the input.
func (p *Parser) ParseDocument() (*owl.Document, *source.SyntaxError) {
	var (
		ontology *owl.Ontology
		err      *source.SyntaxError
	)
	// Prefixes must all be known before the ontology is parsed
	for p.isKeyword("Prefix") {
		if err = p.parsePrefixDeclaration(); err != nil {
			return nil, err
		}
	}
	//
	if ontology, err = p.parseOntology(); err != nil {
		return nil, err
	} else if !p.follows(END_OF) {
		return nil, p.syntaxError(p.lookahead(), source.STRUCTURAL_ERROR, "unexpected text after ontology",
			tokenNames[END_OF])
	}
	//
	log.Debugf("parsed %d prefixes, %d imports and %d elements (%d source mappings)", p.prefixes.Len(),
		len(ontology.Imports), len(ontology.Elements), p.srcmap.Len())
	//
	return &owl.Document{
		ID:        p.document,
		Prefixes:  p.prefixes.Declarations(),
		Ontology:  ontology,
		SourceMap: p.srcmap,
	}, nil
}

// Parse a prefix declaration, such as Prefix(ex=<http://example.org/>).  The
// name may be written bare (ex=), with a trailing colon (ex:=) or, for the
// default prefix, as a lone colon (:=).
func (p *Parser) parsePrefixDeclaration() *source.SyntaxError {
	var (
		name  string
		token = p.lookahead()
	)
	//
	if err := p.open("Prefix"); err != nil {
		return err
	}
	//
	lookahead := p.lookahead()
	text := p.string(lookahead)
	//
	switch {
	case lookahead.Kind == KEYWORD:
		name = text
	case lookahead.Kind == PREFIXED_NAME && strings.HasSuffix(text, ":") && strings.Count(text, ":") == 1:
		name = text[:len(text)-1]
	case lookahead.Kind == EQUALS:
		return p.syntaxError(lookahead, source.STRUCTURAL_ERROR, "missing prefix name", "prefix name")
	default:
		return p.unexpected("prefix name", "prefix name")
	}
	//
	p.index++
	//
	if _, err := p.expect(EQUALS); err != nil {
		return err
	}
	//
	iri, err := p.expect(FULL_IRI)
	if err != nil {
		return err
	}
	//
	value := p.string(iri)
	value = value[1 : len(value)-1]
	//
	if !hasScheme(value) {
		return p.syntaxError(iri, source.LEXICAL_ERROR, "malformed IRI (missing scheme)")
	} else if derr := p.prefixes.Declare(name, value); derr != nil {
		return p.syntaxError(token, source.SEMANTIC_ERROR, derr.Error()).Wrap(derr)
	}
	//
	return p.close("Prefix")
}

// Parse the ontology, which has an optional ontology IRI (optionally followed
// by a version IRI), then imports, annotations and elements in that order.
func (p *Parser) parseOntology() (*owl.Ontology, *source.SyntaxError) {
	var (
		start    = p.index
		ontology owl.Ontology
		err      *source.SyntaxError
	)
	//
	if !p.isKeyword("Ontology") {
		return nil, p.unexpected("Ontology", "Prefix", "Ontology")
	} else if err = p.open("Ontology"); err != nil {
		return nil, err
	}
	// A version IRI can only follow an ontology IRI
	if isIRI(p.lookahead()) {
		if ontology.IRI, err = p.parseOptionalIRI(); err != nil {
			return nil, err
		} else if ontology.VersionIRI, err = p.parseOptionalIRI(); err != nil {
			return nil, err
		}
	}
	//
	for p.isKeyword("Import") {
		iri, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		//
		ontology.Imports = append(ontology.Imports, iri)
	}
	//
	if ontology.Annotations, err = p.parseAnnotations(); err != nil {
		return nil, err
	}
	//
	for !p.follows(RBRACE, END_OF) {
		element, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		//
		ontology.Elements = append(ontology.Elements, element)
	}
	//
	if err = p.close("Ontology"); err != nil {
		return nil, err
	}
	//
	p.record(&ontology, start)
	//
	return &ontology, nil
}

func (p *Parser) parseOptionalIRI() (*owl.IRI, *source.SyntaxError) {
	if !isIRI(p.lookahead()) {
		return nil, nil
	}
	//
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return &iri, nil
}

func (p *Parser) parseImport() (owl.IRI, *source.SyntaxError) {
	if err := p.open("Import"); err != nil {
		return owl.IRI{}, err
	}
	//
	iri, err := p.parseIRI()
	if err != nil {
		return iri, err
	}
	//
	return iri, p.close("Import")
}

// Parse an element of the ontology, which is an axiom, a rule or a description
// graph.
func (p *Parser) parseElement() (owl.Element, *source.SyntaxError) {
	var (
		start   = p.index
		element owl.Element
		err     *source.SyntaxError
	)
	//
	switch {
	case p.isKeyword(dlSafeRule):
		element, err = p.parseRule(dlSafeRule, dlSafeAtoms)
	case p.isKeyword(descriptionGraphRule):
		element, err = p.parseRule(descriptionGraphRule, descriptionGraphAtoms)
	case p.isKeyword(descriptionGraph):
		element, err = p.parseDescriptionGraph()
	default:
		// Axioms record their own spans
		return p.parseAxiom()
	}
	//
	if err != nil {
		return nil, err
	}
	//
	p.record(element, start)
	//
	return element, nil
}
