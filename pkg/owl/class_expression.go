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

// ClassExpression describes a set of individuals.  Class expressions are
// either named classes, or built recursively from other class expressions,
// property expressions and data ranges.
type ClassExpression interface {
	Node
	isClassExpression()
}

// CardinalityKind distinguishes minimum, maximum and exact cardinality
// restrictions.
type CardinalityKind uint8

// MIN_CARDINALITY restricts to at least n values.
const MIN_CARDINALITY CardinalityKind = 0

// MAX_CARDINALITY restricts to at most n values.
const MAX_CARDINALITY CardinalityKind = 1

// EXACT_CARDINALITY restricts to exactly n values.
const EXACT_CARDINALITY CardinalityKind = 2

func (k CardinalityKind) String() string {
	switch k {
	case MIN_CARDINALITY:
		return "Min"
	case MAX_CARDINALITY:
		return "Max"
	default:
		return "Exact"
	}
}

// ObjectIntersectionOf is the intersection of two or more class expressions.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectIntersectionOf) Keyword() string    { return "ObjectIntersectionOf" }
func (p *ObjectIntersectionOf) isClassExpression() {}

// ObjectUnionOf is the union of two or more class expressions.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectUnionOf) Keyword() string    { return "ObjectUnionOf" }
func (p *ObjectUnionOf) isClassExpression() {}

// ObjectComplementOf is the complement of a class expression.
type ObjectComplementOf struct {
	Operand ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectComplementOf) Keyword() string    { return "ObjectComplementOf" }
func (p *ObjectComplementOf) isClassExpression() {}

// ObjectOneOf enumerates one or more individuals.
type ObjectOneOf struct {
	Individuals []Individual
}

// Keyword implementation for Node interface.
func (p *ObjectOneOf) Keyword() string    { return "ObjectOneOf" }
func (p *ObjectOneOf) isClassExpression() {}

// ObjectSomeValuesFrom is an existential restriction over an object property.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectSomeValuesFrom) Keyword() string    { return "ObjectSomeValuesFrom" }
func (p *ObjectSomeValuesFrom) isClassExpression() {}

// ObjectAllValuesFrom is a universal restriction over an object property.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectAllValuesFrom) Keyword() string    { return "ObjectAllValuesFrom" }
func (p *ObjectAllValuesFrom) isClassExpression() {}

// ObjectHasValue restricts an object property to a specific individual.
type ObjectHasValue struct {
	Property   ObjectPropertyExpression
	Individual Individual
}

// Keyword implementation for Node interface.
func (p *ObjectHasValue) Keyword() string    { return "ObjectHasValue" }
func (p *ObjectHasValue) isClassExpression() {}

// ObjectHasSelf describes individuals related to themselves by an object
// property.
type ObjectHasSelf struct {
	Property ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *ObjectHasSelf) Keyword() string    { return "ObjectHasSelf" }
func (p *ObjectHasSelf) isClassExpression() {}

// ObjectCardinality is a minimum, maximum or exact cardinality restriction
// over an object property.  The filler is nil when the restriction is
// unqualified.
type ObjectCardinality struct {
	Restriction CardinalityKind
	Cardinality uint32
	Property    ObjectPropertyExpression
	Filler      ClassExpression
}

// Keyword implementation for Node interface.
func (p *ObjectCardinality) Keyword() string {
	return "Object" + p.Restriction.String() + "Cardinality"
}

// IsQualified checks whether an explicit filler was given.
func (p *ObjectCardinality) IsQualified() bool {
	return p.Filler != nil
}

// EffectiveFiller returns the filler of this restriction, which is owl:Thing
// when none was given.
func (p *ObjectCardinality) EffectiveFiller() ClassExpression {
	if p.Filler == nil {
		return NewClass(NewIRI(OWL_THING))
	}
	//
	return p.Filler
}

func (p *ObjectCardinality) isClassExpression() {}

// DataSomeValuesFrom is an existential restriction over one or more data
// properties.
type DataSomeValuesFrom struct {
	Properties []*DataProperty
	Range      DataRange
}

// Keyword implementation for Node interface.
func (p *DataSomeValuesFrom) Keyword() string    { return "DataSomeValuesFrom" }
func (p *DataSomeValuesFrom) isClassExpression() {}

// DataAllValuesFrom is a universal restriction over one or more data
// properties.
type DataAllValuesFrom struct {
	Properties []*DataProperty
	Range      DataRange
}

// Keyword implementation for Node interface.
func (p *DataAllValuesFrom) Keyword() string    { return "DataAllValuesFrom" }
func (p *DataAllValuesFrom) isClassExpression() {}

// DataHasValue restricts a data property to a specific literal.
type DataHasValue struct {
	Property *DataProperty
	Value    Literal
}

// Keyword implementation for Node interface.
func (p *DataHasValue) Keyword() string    { return "DataHasValue" }
func (p *DataHasValue) isClassExpression() {}

// DataCardinality is a minimum, maximum or exact cardinality restriction over a
// data property.  The range is nil when the restriction is unqualified.
type DataCardinality struct {
	Restriction CardinalityKind
	Cardinality uint32
	Property    *DataProperty
	Range       DataRange
}

// Keyword implementation for Node interface.
func (p *DataCardinality) Keyword() string {
	return "Data" + p.Restriction.String() + "Cardinality"
}

// IsQualified checks whether an explicit data range was given.
func (p *DataCardinality) IsQualified() bool {
	return p.Range != nil
}

// EffectiveRange returns the data range of this restriction, which is
// rdfs:Literal when none was given.
func (p *DataCardinality) EffectiveRange() DataRange {
	if p.Range == nil {
		return NewDatatype(NewIRI(RDFS_LITERAL))
	}
	//
	return p.Range
}

func (p *DataCardinality) isClassExpression() {}
