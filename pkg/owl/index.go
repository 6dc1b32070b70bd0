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

import "reflect"

// BUILTIN_ENTITIES maps the reserved vocabulary of OWL 2 onto the kind of
// entity each denotes.  These need no declaration.
var BUILTIN_ENTITIES = map[string]EntityKind{
	OWL_THING:                                CLASS,
	OWL_NOTHING:                              CLASS,
	OWL_NAMESPACE + "topObjectProperty":      OBJECT_PROPERTY,
	OWL_NAMESPACE + "bottomObjectProperty":   OBJECT_PROPERTY,
	OWL_NAMESPACE + "topDataProperty":        DATA_PROPERTY,
	OWL_NAMESPACE + "bottomDataProperty":     DATA_PROPERTY,
	OWL_NAMESPACE + "real":                   DATATYPE,
	OWL_NAMESPACE + "rational":               DATATYPE,
	RDFS_LITERAL:                             DATATYPE,
	RDF_NAMESPACE + "PlainLiteral":           DATATYPE,
	RDF_NAMESPACE + "XMLLiteral":             DATATYPE,
	RDFS_NAMESPACE + "label":                 ANNOTATION_PROPERTY,
	RDFS_NAMESPACE + "comment":               ANNOTATION_PROPERTY,
	RDFS_NAMESPACE + "seeAlso":               ANNOTATION_PROPERTY,
	RDFS_NAMESPACE + "isDefinedBy":           ANNOTATION_PROPERTY,
	OWL_NAMESPACE + "deprecated":             ANNOTATION_PROPERTY,
	OWL_NAMESPACE + "versionInfo":            ANNOTATION_PROPERTY,
	OWL_NAMESPACE + "priorVersion":           ANNOTATION_PROPERTY,
	OWL_NAMESPACE + "backwardCompatibleWith": ANNOTATION_PROPERTY,
	OWL_NAMESPACE + "incompatibleWith":       ANNOTATION_PROPERTY,
}

// XSD_DATATYPES lists the local names of the XML Schema datatypes which are
// built into OWL 2.
var XSD_DATATYPES = []string{
	"anyURI", "base64Binary", "boolean", "byte", "dateTime", "dateTimeStamp", "decimal", "double", "float",
	"hexBinary", "int", "integer", "language", "long", "Name", "NCName", "negativeInteger", "NMTOKEN",
	"nonNegativeInteger", "nonPositiveInteger", "normalizedString", "positiveInteger", "short", "string",
	"token", "unsignedByte", "unsignedInt", "unsignedLong", "unsignedShort",
}

func init() {
	for _, name := range XSD_DATATYPES {
		BUILTIN_ENTITIES[XSD_NAMESPACE+name] = DATATYPE
	}
}

// BuiltinEntityKind determines the kind of a reserved IRI, if it is one.
func BuiltinEntityKind(iri string) (EntityKind, bool) {
	kind, ok := BUILTIN_ENTITIES[iri]
	return kind, ok
}

// DeclarationKind determines the kind of entity an IRI denotes in this
// ontology.  Declarations are searched in the order classes, object
// properties, annotation properties, data properties, named individuals and
// then datatypes.  An undeclared IRI falls back to the reserved vocabulary.
func (p *Ontology) DeclarationKind(iri string) (EntityKind, bool) {
	var declared [NAMED_INDIVIDUAL + 1]bool
	//
	for _, axiom := range p.Axioms() {
		if decl, ok := axiom.(*Declaration); ok && decl.Entity.Name().Value == iri {
			declared[decl.Entity.EntityKind()] = true
		}
	}
	//
	for _, kind := range []EntityKind{CLASS, OBJECT_PROPERTY, ANNOTATION_PROPERTY, DATA_PROPERTY,
		NAMED_INDIVIDUAL, DATATYPE} {
		if declared[kind] {
			return kind, true
		}
	}
	//
	return BuiltinEntityKind(iri)
}

// IsAnnotationProperty checks whether an IRI denotes an annotation property in
// this ontology.
func (p *Ontology) IsAnnotationProperty(iri string) bool {
	kind, ok := p.DeclarationKind(iri)
	return ok && kind == ANNOTATION_PROPERTY
}

// FindLogicallyEqualAxiom returns the first axiom of this ontology which is
// logically equal to the given axiom, along with its index in Elements.
func (p *Ontology) FindLogicallyEqualAxiom(axiom Axiom) (Axiom, int, bool) {
	for i, e := range p.Elements {
		if other, ok := e.(Axiom); ok && LogicallyEqual(other, axiom) {
			return other, i, true
		}
	}
	//
	return nil, -1, false
}

// UpdateLogicallyEqualAxiom adds an axiom to this ontology.  If a logically
// equal axiom is already present, it is replaced by the given axiom carrying
// the annotations of both (the given axiom's first).  Otherwise, the axiom is
// appended.
func (p *Ontology) UpdateLogicallyEqualAxiom(axiom Axiom) {
	if other, index, ok := p.FindLogicallyEqualAxiom(axiom); ok {
		if target, ok := axiom.(annotatable); ok {
			target.Annotate(other.AnnotationList()...)
		}
		//
		p.Elements[index] = axiom
	} else {
		p.Elements = append(p.Elements, axiom)
	}
}

// LogicallyEqual checks whether two axioms are equal once their own
// annotations are ignored.  IRIs are compared by their resolved value, hence
// an abbreviated IRI equals the full IRI it resolves to.
func LogicallyEqual(lhs Axiom, rhs Axiom) bool {
	if lhs.Keyword() != rhs.Keyword() {
		return false
	}
	//
	return structurallyEqual(reflect.ValueOf(lhs), reflect.ValueOf(rhs), true)
}

type annotatable interface {
	Annotate(annotations ...*Annotation)
}

var iriType = reflect.TypeFor[IRI]()

var annotatedType = reflect.TypeFor[Annotated]()

// Compare two values of the syntax tree.  When top is set, the annotations of
// the outermost struct are skipped.
func structurallyEqual(lhs reflect.Value, rhs reflect.Value, top bool) bool {
	if lhs.Kind() != rhs.Kind() || (lhs.IsValid() && lhs.Type() != rhs.Type()) {
		return false
	}
	//
	switch lhs.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		if lhs.IsNil() || rhs.IsNil() {
			return lhs.IsNil() == rhs.IsNil()
		}
		//
		return structurallyEqual(lhs.Elem(), rhs.Elem(), top)
	case reflect.Slice:
		if lhs.Len() != rhs.Len() {
			return false
		}
		//
		for i := 0; i < lhs.Len(); i++ {
			if !structurallyEqual(lhs.Index(i), rhs.Index(i), false) {
				return false
			}
		}
		//
		return true
	case reflect.Struct:
		if lhs.Type() == iriType {
			return lhs.FieldByName("Value").String() == rhs.FieldByName("Value").String()
		}
		//
		for i := 0; i < lhs.NumField(); i++ {
			if top && lhs.Type().Field(i).Type == annotatedType {
				continue
			} else if !structurallyEqual(lhs.Field(i), rhs.Field(i), false) {
				return false
			}
		}
		//
		return true
	default:
		return lhs.Equal(rhs)
	}
}
