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

// Element is a top-level item of an ontology: an axiom, a rule or a
// description graph.
type Element interface {
	Node
	// AnnotationList returns the (possibly empty) annotations of this element.
	AnnotationList() []*Annotation
}

// Axiom is a statement about classes, properties or individuals.
type Axiom interface {
	Element
	isAxiom()
}

// ============================================================================
// Declarations
// ============================================================================

// Declaration declares an entity.
type Declaration struct {
	Annotated
	Entity Entity
}

// Keyword implementation for Node interface.
func (p *Declaration) Keyword() string { return "Declaration" }
func (p *Declaration) isAxiom()        {}

// ============================================================================
// Class Axioms
// ============================================================================

// SubClassOf states that one class expression is subsumed by another.
type SubClassOf struct {
	Annotated
	Sub   ClassExpression
	Super ClassExpression
}

// Keyword implementation for Node interface.
func (p *SubClassOf) Keyword() string { return "SubClassOf" }
func (p *SubClassOf) isAxiom()        {}

// EquivalentClasses states that two or more class expressions are equivalent.
type EquivalentClasses struct {
	Annotated
	Classes []ClassExpression
}

// Keyword implementation for Node interface.
func (p *EquivalentClasses) Keyword() string { return "EquivalentClasses" }
func (p *EquivalentClasses) isAxiom()        {}

// DisjointClasses states that two or more class expressions are pairwise
// disjoint.
type DisjointClasses struct {
	Annotated
	Classes []ClassExpression
}

// Keyword implementation for Node interface.
func (p *DisjointClasses) Keyword() string { return "DisjointClasses" }
func (p *DisjointClasses) isAxiom()        {}

// DisjointUnion states that a class is the disjoint union of two or more class
// expressions.
type DisjointUnion struct {
	Annotated
	Class   *Class
	Classes []ClassExpression
}

// Keyword implementation for Node interface.
func (p *DisjointUnion) Keyword() string { return "DisjointUnion" }
func (p *DisjointUnion) isAxiom()        {}

// ============================================================================
// Object Property Axioms
// ============================================================================

// SubObjectPropertyOf states that one object property expression (or chain)
// is subsumed by another.
type SubObjectPropertyOf struct {
	Annotated
	Sub   SubObjectPropertyExpression
	Super ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *SubObjectPropertyOf) Keyword() string { return "SubObjectPropertyOf" }
func (p *SubObjectPropertyOf) isAxiom()        {}

// EquivalentObjectProperties states that two or more object property
// expressions are equivalent.
type EquivalentObjectProperties struct {
	Annotated
	Properties []ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *EquivalentObjectProperties) Keyword() string { return "EquivalentObjectProperties" }
func (p *EquivalentObjectProperties) isAxiom()        {}

// DisjointObjectProperties states that two or more object property
// expressions are pairwise disjoint.
type DisjointObjectProperties struct {
	Annotated
	Properties []ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *DisjointObjectProperties) Keyword() string { return "DisjointObjectProperties" }
func (p *DisjointObjectProperties) isAxiom()        {}

// InverseObjectProperties states that two object property expressions are
// inverses of each other.
type InverseObjectProperties struct {
	Annotated
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *InverseObjectProperties) Keyword() string { return "InverseObjectProperties" }
func (p *InverseObjectProperties) isAxiom()        {}

// ObjectPropertyDomain states the domain of an object property expression.
type ObjectPropertyDomain struct {
	Annotated
	Property ObjectPropertyExpression
	Domain   ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectPropertyDomain) Keyword() string { return "ObjectPropertyDomain" }
func (p *ObjectPropertyDomain) isAxiom()        {}

// ObjectPropertyRange states the range of an object property expression.
type ObjectPropertyRange struct {
	Annotated
	Property ObjectPropertyExpression
	Range    ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectPropertyRange) Keyword() string { return "ObjectPropertyRange" }
func (p *ObjectPropertyRange) isAxiom()        {}

// Characteristic identifies one of the seven characteristics an object
// property can be given.
type Characteristic uint8

const (
	// FUNCTIONAL object properties relate each individual to at most one other.
	FUNCTIONAL Characteristic = iota
	// INVERSE_FUNCTIONAL object properties have functional inverses.
	INVERSE_FUNCTIONAL
	// REFLEXIVE object properties relate every individual to itself.
	REFLEXIVE
	// IRREFLEXIVE object properties relate no individual to itself.
	IRREFLEXIVE
	// SYMMETRIC object properties are their own inverse.
	SYMMETRIC
	// ASYMMETRIC object properties are disjoint from their inverse.
	ASYMMETRIC
	// TRANSITIVE object properties are closed under composition.
	TRANSITIVE
)

// CHARACTERISTICS maps each characteristic to the keyword of its axiom.
var CHARACTERISTICS = [...]string{
	"FunctionalObjectProperty",
	"InverseFunctionalObjectProperty",
	"ReflexiveObjectProperty",
	"IrreflexiveObjectProperty",
	"SymmetricObjectProperty",
	"AsymmetricObjectProperty",
	"TransitiveObjectProperty",
}

// ObjectPropertyCharacteristic assigns a characteristic (e.g. functional or
// transitive) to an object property expression.
type ObjectPropertyCharacteristic struct {
	Annotated
	Characteristic Characteristic
	Property       ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *ObjectPropertyCharacteristic) Keyword() string {
	return CHARACTERISTICS[p.Characteristic]
}

func (p *ObjectPropertyCharacteristic) isAxiom() {}

// ============================================================================
// Data Property Axioms
// ============================================================================

// SubDataPropertyOf states that one data property is subsumed by another.
type SubDataPropertyOf struct {
	Annotated
	Sub   *DataProperty
	Super *DataProperty
}

// Keyword implementation for Node interface.
func (p *SubDataPropertyOf) Keyword() string { return "SubDataPropertyOf" }
func (p *SubDataPropertyOf) isAxiom()        {}

// EquivalentDataProperties states that two or more data properties are
// equivalent.
type EquivalentDataProperties struct {
	Annotated
	Properties []*DataProperty
}

// Keyword implementation for Node interface.
func (p *EquivalentDataProperties) Keyword() string { return "EquivalentDataProperties" }
func (p *EquivalentDataProperties) isAxiom()        {}

// DisjointDataProperties states that two or more data properties are pairwise
// disjoint.
type DisjointDataProperties struct {
	Annotated
	Properties []*DataProperty
}

// Keyword implementation for Node interface.
func (p *DisjointDataProperties) Keyword() string { return "DisjointDataProperties" }
func (p *DisjointDataProperties) isAxiom()        {}

// DataPropertyDomain states the domain of a data property.
type DataPropertyDomain struct {
	Annotated
	Property *DataProperty
	Domain   ClassExpression
}

// Keyword implementation for Node interface.
func (p *DataPropertyDomain) Keyword() string { return "DataPropertyDomain" }
func (p *DataPropertyDomain) isAxiom()        {}

// DataPropertyRange states the range of a data property.
type DataPropertyRange struct {
	Annotated
	Property *DataProperty
	Range    DataRange
}

// Keyword implementation for Node interface.
func (p *DataPropertyRange) Keyword() string { return "DataPropertyRange" }
func (p *DataPropertyRange) isAxiom()        {}

// FunctionalDataProperty states that a data property is functional.
type FunctionalDataProperty struct {
	Annotated
	Property *DataProperty
}

// Keyword implementation for Node interface.
func (p *FunctionalDataProperty) Keyword() string { return "FunctionalDataProperty" }
func (p *FunctionalDataProperty) isAxiom()        {}

// ============================================================================
// Datatype Definitions & Keys
// ============================================================================

// DatatypeDefinition defines a datatype as equivalent to a data range.
type DatatypeDefinition struct {
	Annotated
	Datatype *Datatype
	Range    DataRange
}

// Keyword implementation for Node interface.
func (p *DatatypeDefinition) Keyword() string { return "DatatypeDefinition" }
func (p *DatatypeDefinition) isAxiom()        {}

// HasKey states that the named instances of a class expression are uniquely
// identified by the values of the given properties.  Either list may be empty.
type HasKey struct {
	Annotated
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []*DataProperty
}

// Keyword implementation for Node interface.
func (p *HasKey) Keyword() string { return "HasKey" }
func (p *HasKey) isAxiom()        {}

// ============================================================================
// Assertions
// ============================================================================

// SameIndividual states that two or more individuals are equal.
type SameIndividual struct {
	Annotated
	Individuals []Individual
}

// Keyword implementation for Node interface.
func (p *SameIndividual) Keyword() string { return "SameIndividual" }
func (p *SameIndividual) isAxiom()        {}

// DifferentIndividuals states that two or more individuals are pairwise
// different.
type DifferentIndividuals struct {
	Annotated
	Individuals []Individual
}

// Keyword implementation for Node interface.
func (p *DifferentIndividuals) Keyword() string { return "DifferentIndividuals" }
func (p *DifferentIndividuals) isAxiom()        {}

// ClassAssertion states that an individual is an instance of a class
// expression.
type ClassAssertion struct {
	Annotated
	Class      ClassExpression
	Individual Individual
}

// Keyword implementation for Node interface.
func (p *ClassAssertion) Keyword() string { return "ClassAssertion" }
func (p *ClassAssertion) isAxiom()        {}

// ObjectPropertyAssertion states that an object property expression does (or,
// if negative, does not) relate two individuals.
type ObjectPropertyAssertion struct {
	Annotated
	Negative bool
	Property ObjectPropertyExpression
	Source   Individual
	Target   Individual
}

// Keyword implementation for Node interface.
func (p *ObjectPropertyAssertion) Keyword() string {
	if p.Negative {
		return "NegativeObjectPropertyAssertion"
	}
	//
	return "ObjectPropertyAssertion"
}

func (p *ObjectPropertyAssertion) isAxiom() {}

// DataPropertyAssertion states that a data property does (or, if negative, does
// not) relate an individual to a literal.
type DataPropertyAssertion struct {
	Annotated
	Negative bool
	Property *DataProperty
	Source   Individual
	Target   Literal
}

// Keyword implementation for Node interface.
func (p *DataPropertyAssertion) Keyword() string {
	if p.Negative {
		return "NegativeDataPropertyAssertion"
	}
	//
	return "DataPropertyAssertion"
}

func (p *DataPropertyAssertion) isAxiom() {}

// ============================================================================
// Annotation Axioms
// ============================================================================

// AnnotationAssertion annotates an IRI or anonymous individual.
type AnnotationAssertion struct {
	Annotated
	Property *AnnotationProperty
	Subject  AnnotationSubject
	Value    AnnotationValue
}

// Keyword implementation for Node interface.
func (p *AnnotationAssertion) Keyword() string { return "AnnotationAssertion" }
func (p *AnnotationAssertion) isAxiom()        {}

// SubAnnotationPropertyOf states that one annotation property is subsumed by
// another.
type SubAnnotationPropertyOf struct {
	Annotated
	Sub   *AnnotationProperty
	Super *AnnotationProperty
}

// Keyword implementation for Node interface.
func (p *SubAnnotationPropertyOf) Keyword() string { return "SubAnnotationPropertyOf" }
func (p *SubAnnotationPropertyOf) isAxiom()        {}

// AnnotationPropertyDomain states the domain of an annotation property.
type AnnotationPropertyDomain struct {
	Annotated
	Property *AnnotationProperty
	Domain   IRI
}

// Keyword implementation for Node interface.
func (p *AnnotationPropertyDomain) Keyword() string { return "AnnotationPropertyDomain" }
func (p *AnnotationPropertyDomain) isAxiom()        {}

// AnnotationPropertyRange states the range of an annotation property.
type AnnotationPropertyRange struct {
	Annotated
	Property *AnnotationProperty
	Range    IRI
}

// Keyword implementation for Node interface.
func (p *AnnotationPropertyRange) Keyword() string { return "AnnotationPropertyRange" }
func (p *AnnotationPropertyRange) isAxiom()        {}
