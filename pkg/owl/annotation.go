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

// AnnotationSubject is either an IRI or an anonymous individual.
type AnnotationSubject interface {
	isAnnotationSubject()
}

// AnnotationValue is an IRI, an anonymous individual or a literal.
type AnnotationValue interface {
	isAnnotationValue()
}

// Annotated is embedded in every item which can carry annotations.
type Annotated struct {
	// Annotations in the order they were written.
	Annotations []*Annotation
}

// AnnotationList returns the annotations attached to this item.
func (p *Annotated) AnnotationList() []*Annotation {
	return p.Annotations
}

// Annotate appends annotations to this item.
func (p *Annotated) Annotate(annotations ...*Annotation) {
	p.Annotations = append(p.Annotations, annotations...)
}

// Annotation attaches a value to an item via an annotation property.
// Annotations may themselves be annotated, to arbitrary depth.
type Annotation struct {
	Annotated
	Property *AnnotationProperty
	Value    AnnotationValue
}

// Keyword implementation for Node interface.
func (p *Annotation) Keyword() string { return "Annotation" }

// Depth returns the maximum nesting depth of this annotation, where an
// annotation with no annotations of its own has depth 1.
func (p *Annotation) Depth() uint {
	depth := uint(0)
	//
	for _, a := range p.Annotations {
		depth = max(depth, a.Depth())
	}
	//
	return depth + 1
}
