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

import "github.com/google/uuid"

// Node is implemented by every composite item of the syntax tree.  The keyword
// is that which introduces the item in functional-style syntax.
type Node interface {
	Keyword() string
}

// EntityKind identifies one of the six kinds of entity.
type EntityKind uint8

const (
	// CLASS entities denote sets of individuals.
	CLASS EntityKind = iota
	// DATATYPE entities denote sets of data values.
	DATATYPE
	// OBJECT_PROPERTY entities relate individuals to individuals.
	OBJECT_PROPERTY
	// DATA_PROPERTY entities relate individuals to data values.
	DATA_PROPERTY
	// ANNOTATION_PROPERTY entities attach annotations.
	ANNOTATION_PROPERTY
	// NAMED_INDIVIDUAL entities denote individuals.
	NAMED_INDIVIDUAL
)

var entityKeywords = [...]string{"Class", "Datatype", "ObjectProperty", "DataProperty", "AnnotationProperty",
	"NamedIndividual"}

func (k EntityKind) String() string {
	if int(k) < len(entityKeywords) {
		return entityKeywords[k]
	}
	//
	return "unknown"
}

// Entity is a named item of an ontology's vocabulary.
type Entity interface {
	Node
	// Kind of this entity.
	EntityKind() EntityKind
	// Name of this entity.
	Name() IRI
}

// Class is a named class.  Classes are also atomic class expressions.
type Class struct {
	IRI IRI
}

// NewClass constructs a new class.
func NewClass(iri IRI) *Class {
	return &Class{iri}
}

// Keyword implementation for Node interface.
func (p *Class) Keyword() string { return "Class" }

// EntityKind implementation for Entity interface.
func (p *Class) EntityKind() EntityKind { return CLASS }

// Name implementation for Entity interface.
func (p *Class) Name() IRI { return p.IRI }

func (p *Class) isClassExpression() {}

// Datatype is a named datatype.  Datatypes are also atomic data ranges.
type Datatype struct {
	IRI IRI
}

// NewDatatype constructs a new datatype.
func NewDatatype(iri IRI) *Datatype {
	return &Datatype{iri}
}

// Keyword implementation for Node interface.
func (p *Datatype) Keyword() string { return "Datatype" }

// EntityKind implementation for Entity interface.
func (p *Datatype) EntityKind() EntityKind { return DATATYPE }

// Name implementation for Entity interface.
func (p *Datatype) Name() IRI { return p.IRI }

func (p *Datatype) isDataRange() {}

// ObjectProperty is a named object property.  These are also atomic object
// property expressions.
type ObjectProperty struct {
	IRI IRI
}

// NewObjectProperty constructs a new object property.
func NewObjectProperty(iri IRI) *ObjectProperty {
	return &ObjectProperty{iri}
}

// Keyword implementation for Node interface.
func (p *ObjectProperty) Keyword() string { return "ObjectProperty" }

// EntityKind implementation for Entity interface.
func (p *ObjectProperty) EntityKind() EntityKind { return OBJECT_PROPERTY }

// Name implementation for Entity interface.
func (p *ObjectProperty) Name() IRI { return p.IRI }

func (p *ObjectProperty) isObjectPropertyExpression()    {}
func (p *ObjectProperty) isSubObjectPropertyExpression() {}

// DataProperty is a named data property.
type DataProperty struct {
	IRI IRI
}

// NewDataProperty constructs a new data property.
func NewDataProperty(iri IRI) *DataProperty {
	return &DataProperty{iri}
}

// Keyword implementation for Node interface.
func (p *DataProperty) Keyword() string { return "DataProperty" }

// EntityKind implementation for Entity interface.
func (p *DataProperty) EntityKind() EntityKind { return DATA_PROPERTY }

// Name implementation for Entity interface.
func (p *DataProperty) Name() IRI { return p.IRI }

// AnnotationProperty is a named annotation property.
type AnnotationProperty struct {
	IRI IRI
}

// NewAnnotationProperty constructs a new annotation property.
func NewAnnotationProperty(iri IRI) *AnnotationProperty {
	return &AnnotationProperty{iri}
}

// Keyword implementation for Node interface.
func (p *AnnotationProperty) Keyword() string { return "AnnotationProperty" }

// EntityKind implementation for Entity interface.
func (p *AnnotationProperty) EntityKind() EntityKind { return ANNOTATION_PROPERTY }

// Name implementation for Entity interface.
func (p *AnnotationProperty) Name() IRI { return p.IRI }

// Individual is either a named or an anonymous individual.
type Individual interface {
	Node
	isIndividual()
}

// NamedIndividual is an individual identified by an IRI.
type NamedIndividual struct {
	IRI IRI
}

// NewNamedIndividual constructs a new named individual.
func NewNamedIndividual(iri IRI) *NamedIndividual {
	return &NamedIndividual{iri}
}

// Keyword implementation for Node interface.
func (p *NamedIndividual) Keyword() string { return "NamedIndividual" }

// EntityKind implementation for Entity interface.
func (p *NamedIndividual) EntityKind() EntityKind { return NAMED_INDIVIDUAL }

// Name implementation for Entity interface.
func (p *NamedIndividual) Name() IRI { return p.IRI }

func (p *NamedIndividual) isIndividual()         {}
func (p *NamedIndividual) isIndividualArgument() {}

// AnonymousIndividual is an individual identified only by a blank node label.
// Labels are only meaningful within the document which declared them, hence
// each carries the identifier of that document.
type AnonymousIndividual struct {
	// Blank node label, without the leading "_:".
	Label string
	// Identifier of the enclosing document.
	Document uuid.UUID
}

// NewAnonymousIndividual constructs a new anonymous individual scoped to a given
// document.
func NewAnonymousIndividual(label string, document uuid.UUID) *AnonymousIndividual {
	return &AnonymousIndividual{label, document}
}

// Keyword implementation for Node interface.
func (p *AnonymousIndividual) Keyword() string { return "AnonymousIndividual" }

// SameAs checks whether two anonymous individuals denote the same blank node.
// This holds only when both come from the same document.
func (p *AnonymousIndividual) SameAs(other *AnonymousIndividual) bool {
	return p.Label == other.Label && p.Document == other.Document
}

func (p *AnonymousIndividual) isIndividual()         {}
func (p *AnonymousIndividual) isIndividualArgument() {}
func (p *AnonymousIndividual) isAnnotationSubject()  {}
func (p *AnonymousIndividual) isAnnotationValue()    {}
