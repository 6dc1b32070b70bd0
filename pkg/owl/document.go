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
package owl

import (
	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/google/uuid"
)

// PrefixDeclaration associates a prefix name with an IRI.  The empty name is
// the default prefix.
type PrefixDeclaration struct {
	Name string
	IRI  string
}

// Document is the result of parsing a complete functional-style syntax
// document.
type Document struct {
	// Identifier scoping the anonymous individuals of this document.
	ID uuid.UUID
	// Prefix declarations in the order they were written.
	Prefixes []PrefixDeclaration
	// The ontology itself.
	Ontology *Ontology
	// Maps tree nodes (elements, annotations, class expressions, data ranges,
	// property expressions and atoms) back to the text they were parsed from.
	SourceMap *source.Map[any]
}

// Ontology is a sequence of imports, annotations and elements, optionally
// identified by an ontology IRI and version IRI.  A version IRI is only ever
// present alongside an ontology IRI.
type Ontology struct {
	Annotated
	IRI        *IRI
	VersionIRI *IRI
	Imports    []IRI
	// Axioms, rules and description graphs in the order they were written.
	Elements []Element
}

// Keyword implementation for Node interface.
func (p *Ontology) Keyword() string { return "Ontology" }

// Axioms returns the axioms of this ontology, in the order written.
func (p *Ontology) Axioms() []Axiom {
	return elementsOf[Axiom](p.Elements)
}

// Rules returns the rules of this ontology, in the order written.
func (p *Ontology) Rules() []Rule {
	return elementsOf[Rule](p.Elements)
}

// DescriptionGraphs returns the description graphs of this ontology, in the
// order written.
func (p *Ontology) DescriptionGraphs() []*DescriptionGraph {
	return elementsOf[*DescriptionGraph](p.Elements)
}

// CountByKeyword counts how many elements there are of each kind.
func (p *Ontology) CountByKeyword() map[string]uint {
	counts := make(map[string]uint)
	//
	for _, e := range p.Elements {
		counts[e.Keyword()]++
	}
	//
	return counts
}

func elementsOf[T Element](elements []Element) []T {
	var items []T
	//
	for _, e := range elements {
		if item, ok := e.(T); ok {
			items = append(items, item)
		}
	}
	//
	return items
}
