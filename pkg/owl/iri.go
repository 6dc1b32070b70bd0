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

import "fmt"

// IRIForm records how an IRI was written in the original document.
type IRIForm uint8

// FULL_IRI indicates an IRI written in full, as in <http://example.org/a>.
const FULL_IRI IRIForm = 0

// ABBREVIATED_IRI indicates an IRI written as a prefixed name, as in ex:a.
const ABBREVIATED_IRI IRIForm = 1

// IRI identifies a resource.  Regardless of how it was written, the value of
// an IRI is always the fully resolved absolute IRI.  For abbreviated IRIs the
// original prefixed name is retained as well.
type IRI struct {
	// Resolved absolute IRI.
	Value string
	// Form in which this IRI was written.
	Form IRIForm
	// Original prefixed name (abbreviated IRIs only).
	Abbreviation string
}

// NewIRI constructs an IRI which was written in full.
func NewIRI(value string) IRI {
	return IRI{value, FULL_IRI, ""}
}

// NewAbbreviatedIRI constructs an IRI which was written as a prefixed name, and
// subsequently resolved against the enclosing document's prefix table.
func NewAbbreviatedIRI(value string, abbreviation string) IRI {
	return IRI{value, ABBREVIATED_IRI, abbreviation}
}

// IsAbbreviated checks whether this IRI was written as a prefixed name.
func (p IRI) IsAbbreviated() bool {
	return p.Form == ABBREVIATED_IRI
}

func (p IRI) String() string {
	return p.Value
}

func (p IRI) isAnnotationSubject() {}
func (p IRI) isAnnotationValue()   {}

// LiteralKind distinguishes the three forms of literal.
type LiteralKind uint8

// PLAIN_LITERAL is a quoted string with neither datatype nor language tag.
const PLAIN_LITERAL LiteralKind = 0

// TYPED_LITERAL is a quoted string followed by ^^ and a datatype IRI.
const TYPED_LITERAL LiteralKind = 1

// LANGUAGE_LITERAL is a quoted string followed by @ and a language tag.
const LANGUAGE_LITERAL LiteralKind = 2

// Literal represents a data value.  Exactly one of the datatype and language
// fields is meaningful, or neither for a plain literal, as determined by the
// kind.
type Literal struct {
	Kind LiteralKind
	// Lexical form, with escapes already decoded.
	Lexical string
	// Datatype (typed literals only).
	Datatype IRI
	// Language tag without the leading @ (language literals only).
	Language string
}

// NewPlainLiteral constructs a literal with neither datatype nor language tag.
func NewPlainLiteral(lexical string) Literal {
	return Literal{Kind: PLAIN_LITERAL, Lexical: lexical}
}

// NewTypedLiteral constructs a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Kind: TYPED_LITERAL, Lexical: lexical, Datatype: datatype}
}

// NewLanguageLiteral constructs a language-tagged literal.
func NewLanguageLiteral(lexical string, language string) Literal {
	return Literal{Kind: LANGUAGE_LITERAL, Lexical: lexical, Language: language}
}

// HasDatatype checks whether this is a typed literal.
func (p Literal) HasDatatype() bool {
	return p.Kind == TYPED_LITERAL
}

// HasLanguage checks whether this is a language-tagged literal.
func (p Literal) HasLanguage() bool {
	return p.Kind == LANGUAGE_LITERAL
}

func (p Literal) String() string {
	switch p.Kind {
	case TYPED_LITERAL:
		return fmt.Sprintf("%q^^<%s>", p.Lexical, p.Datatype.Value)
	case LANGUAGE_LITERAL:
		return fmt.Sprintf("%q@%s", p.Lexical, p.Language)
	default:
		return fmt.Sprintf("%q", p.Lexical)
	}
}

func (p Literal) isAnnotationValue() {}
func (p Literal) isDataArgument()    {}
