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

// Rule is an if-then rule, consisting of a body and a head of atoms.
type Rule interface {
	Element
	// BodyAtoms returns the (possibly empty) antecedent of this rule.
	BodyAtoms() []Atom
	// HeadAtoms returns the (possibly empty) consequent of this rule.
	HeadAtoms() []Atom
}

// DLSafeRule is a SWRL rule restricted to named individuals.
type DLSafeRule struct {
	Annotated
	Body []Atom
	Head []Atom
}

// Keyword implementation for Node interface.
func (p *DLSafeRule) Keyword() string { return "DLSafeRule" }

// BodyAtoms implementation for Rule interface.
func (p *DLSafeRule) BodyAtoms() []Atom { return p.Body }

// HeadAtoms implementation for Rule interface.
func (p *DLSafeRule) HeadAtoms() []Atom { return p.Head }

// DescriptionGraphRule is a rule over a description graph, whose atoms are
// restricted to class and object property atoms.
type DescriptionGraphRule struct {
	Annotated
	Body []Atom
	Head []Atom
}

// Keyword implementation for Node interface.
func (p *DescriptionGraphRule) Keyword() string { return "DescriptionGraphRule" }

// BodyAtoms implementation for Rule interface.
func (p *DescriptionGraphRule) BodyAtoms() []Atom { return p.Body }

// HeadAtoms implementation for Rule interface.
func (p *DescriptionGraphRule) HeadAtoms() []Atom { return p.Head }

// ============================================================================
// Atoms
// ============================================================================

// Atom is a single condition within the body or head of a rule.
type Atom interface {
	Node
	isAtom()
}

// IndividualArgument is a variable or an individual.
type IndividualArgument interface {
	isIndividualArgument()
}

// DataArgument is a variable or a literal.
type DataArgument interface {
	isDataArgument()
}

// Variable is a rule variable, named by an IRI.
type Variable struct {
	Name IRI
}

// Keyword implementation for Node interface.
func (p *Variable) Keyword() string { return "Variable" }

func (p *Variable) isIndividualArgument() {}
func (p *Variable) isDataArgument()       {}

// ClassAtom holds when its argument is an instance of a class expression.
type ClassAtom struct {
	Class    ClassExpression
	Argument IndividualArgument
}

// Keyword implementation for Node interface.
func (p *ClassAtom) Keyword() string { return "ClassAtom" }
func (p *ClassAtom) isAtom()         {}

// DataRangeAtom holds when its argument is in a data range.
type DataRangeAtom struct {
	Range    DataRange
	Argument DataArgument
}

// Keyword implementation for Node interface.
func (p *DataRangeAtom) Keyword() string { return "DataRangeAtom" }
func (p *DataRangeAtom) isAtom()         {}

// ObjectPropertyAtom holds when an object property expression relates its two
// arguments.
type ObjectPropertyAtom struct {
	Property ObjectPropertyExpression
	Source   IndividualArgument
	Target   IndividualArgument
}

// Keyword implementation for Node interface.
func (p *ObjectPropertyAtom) Keyword() string { return "ObjectPropertyAtom" }
func (p *ObjectPropertyAtom) isAtom()         {}

// DataPropertyAtom holds when a data property relates its two arguments.
type DataPropertyAtom struct {
	Property *DataProperty
	Source   IndividualArgument
	Target   DataArgument
}

// Keyword implementation for Node interface.
func (p *DataPropertyAtom) Keyword() string { return "DataPropertyAtom" }
func (p *DataPropertyAtom) isAtom()         {}

// BuiltInAtom applies a built-in predicate to one or more data arguments.
type BuiltInAtom struct {
	Predicate IRI
	Arguments []DataArgument
}

// Keyword implementation for Node interface.
func (p *BuiltInAtom) Keyword() string { return "BuiltInAtom" }
func (p *BuiltInAtom) isAtom()         {}

// SameIndividualAtom holds when both arguments denote the same individual.
type SameIndividualAtom struct {
	First  IndividualArgument
	Second IndividualArgument
}

// Keyword implementation for Node interface.
func (p *SameIndividualAtom) Keyword() string { return "SameIndividualAtom" }
func (p *SameIndividualAtom) isAtom()         {}

// DifferentIndividualsAtom holds when the arguments denote different
// individuals.
type DifferentIndividualsAtom struct {
	First  IndividualArgument
	Second IndividualArgument
}

// Keyword implementation for Node interface.
func (p *DifferentIndividualsAtom) Keyword() string { return "DifferentIndividualsAtom" }
func (p *DifferentIndividualsAtom) isAtom()         {}

// ============================================================================
// Description Graphs
// ============================================================================

// NodeAssertion labels a graph node with a class.
type NodeAssertion struct {
	Class *Class
	Node  IRI
}

// EdgeAssertion connects two graph nodes by an object property.
type EdgeAssertion struct {
	Property *ObjectProperty
	From     IRI
	To       IRI
}

// DescriptionGraph describes a graph-shaped structure of nodes and edges,
// which is instantiated for every instance of its main classes.
type DescriptionGraph struct {
	Annotated
	Name        IRI
	Nodes       []NodeAssertion
	Edges       []EdgeAssertion
	MainClasses []*Class
}

// Keyword implementation for Node interface.
func (p *DescriptionGraph) Keyword() string { return "DescriptionGraph" }
