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
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exPrefix = "Prefix(ex=<http://example.org/>)\n"

func Test_Parser_Empty(t *testing.T) {
	doc, err := ParseString("Ontology()")
	require.NoError(t, err)
	//
	assert.Empty(t, doc.Prefixes)
	assert.Nil(t, doc.Ontology.IRI)
	assert.Nil(t, doc.Ontology.VersionIRI)
	assert.Empty(t, doc.Ontology.Imports)
	assert.Empty(t, doc.Ontology.Annotations)
	assert.Empty(t, doc.Ontology.Elements)
}

func Test_Parser_Declaration(t *testing.T) {
	doc, err := ParseString(
		"Prefix(ex=<http://example.org/>) Ontology(<http://example.org/o> Declaration(Class(ex:Foo)))")
	require.NoError(t, err)
	//
	require.NotNil(t, doc.Ontology.IRI)
	assert.Equal(t, "http://example.org/o", doc.Ontology.IRI.Value)
	assert.Nil(t, doc.Ontology.VersionIRI)
	assert.Equal(t, []owl.PrefixDeclaration{{Name: "ex", IRI: "http://example.org/"}}, doc.Prefixes)
	//
	axioms := doc.Ontology.Axioms()
	require.Len(t, axioms, 1)
	//
	decl, ok := axioms[0].(*owl.Declaration)
	require.True(t, ok)
	class, ok := decl.Entity.(*owl.Class)
	require.True(t, ok)
	assert.Equal(t, owl.CLASS, class.EntityKind())
	assert.Equal(t, owl.NewAbbreviatedIRI("http://example.org/Foo", "ex:Foo"), class.IRI)
}

func Test_Parser_VersionIRI(t *testing.T) {
	doc, err := ParseString("Ontology(<http://example.org/o> <http://example.org/o/2>)")
	require.NoError(t, err)
	//
	assert.Equal(t, "http://example.org/o", doc.Ontology.IRI.Value)
	assert.Equal(t, "http://example.org/o/2", doc.Ontology.VersionIRI.Value)
	assert.False(t, doc.Ontology.VersionIRI.IsAbbreviated())
}

func Test_Parser_PrefixForms(t *testing.T) {
	text := "Prefix(:=<http://a.org/>) Prefix(b:=<http://b.org/>) Prefix(c=<http://c.org/>)\n" +
		"Ontology(SubClassOf(:X ObjectUnionOf(b:Y c:Z)))"
	doc, err := ParseString(text)
	require.NoError(t, err)
	//
	assert.Equal(t, []owl.PrefixDeclaration{
		{Name: "", IRI: "http://a.org/"},
		{Name: "b", IRI: "http://b.org/"},
		{Name: "c", IRI: "http://c.org/"},
	}, doc.Prefixes)
	//
	axiom := doc.Ontology.Elements[0].(*owl.SubClassOf)
	assert.Equal(t, "http://a.org/X", axiom.Sub.(*owl.Class).IRI.Value)
	union := axiom.Super.(*owl.ObjectUnionOf)
	assert.Equal(t, "http://b.org/Y", union.Operands[0].(*owl.Class).IRI.Value)
	assert.Equal(t, "http://c.org/Z", union.Operands[1].(*owl.Class).IRI.Value)
}

func Test_Parser_EscapedLocalName(t *testing.T) {
	doc, err := ParseString(exPrefix + `Ontology(Declaration(Class(ex:a\-b%20c)))`)
	require.NoError(t, err)
	//
	decl := doc.Ontology.Elements[0].(*owl.Declaration)
	assert.Equal(t, "http://example.org/a-b%20c", decl.Entity.Name().Value)
}

func Test_Parser_Comments(t *testing.T) {
	text := "# leading comment\n" + exPrefix +
		"Ontology( # the ontology\n  Declaration(Class(ex:A)) # a class\n)\n# trailing"
	doc, err := ParseString(text)
	require.NoError(t, err)
	assert.Len(t, doc.Ontology.Elements, 1)
}

// ===================================================================
// Class Expressions
// ===================================================================

func Test_Parser_Intersection(t *testing.T) {
	ce, err := ParseClassExpression("ObjectIntersectionOf(<http://a> <http://b>)", NewPrefixTable())
	require.NoError(t, err)
	//
	intersection, ok := ce.(*owl.ObjectIntersectionOf)
	require.True(t, ok)
	assert.Equal(t, []owl.ClassExpression{
		owl.NewClass(owl.NewIRI("http://a")),
		owl.NewClass(owl.NewIRI("http://b")),
	}, intersection.Operands)
	//
	_, err = ParseClassExpression("ObjectIntersectionOf(<http://a>)", NewPrefixTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ObjectIntersectionOf requires at least 2 class expressions, found 1")
}

func Test_Parser_MinimumOperands(t *testing.T) {
	for _, keyword := range []string{"ObjectIntersectionOf", "ObjectUnionOf"} {
		_, err := ParseClassExpression(keyword+"(<http://a>)", NewPrefixTable())
		checkArityError(t, err, keyword+" requires at least 2 class expressions, found 1")
		//
		_, err = ParseClassExpression(keyword+"(<http://a> <http://b>)", NewPrefixTable())
		assert.NoError(t, err, keyword)
	}
	//
	for _, keyword := range []string{"DataIntersectionOf", "DataUnionOf"} {
		_, err := ParseDataRange(keyword+"(<http://a>)", NewPrefixTable())
		checkArityError(t, err, keyword+" requires at least 2 data ranges, found 1")
		//
		_, err = ParseDataRange(keyword+"(<http://a> <http://b>)", NewPrefixTable())
		assert.NoError(t, err, keyword)
	}
	//
	_, err := ParseClassExpression("ObjectOneOf()", NewPrefixTable())
	checkArityError(t, err, "ObjectOneOf requires at least 1 individual, found 0")
	_, err = ParseDataRange("DataOneOf()", NewPrefixTable())
	checkArityError(t, err, "DataOneOf requires at least 1 literal, found 0")
}

func Test_Parser_ExactlyOneOperand(t *testing.T) {
	_, err := ParseClassExpression("ObjectComplementOf(<http://a> <http://b>)", NewPrefixTable())
	checkArityError(t, err, "too many operands for ObjectComplementOf")
	assert.Equal(t, 31, err.(*source.SyntaxError).Position().Column)
	//
	_, err = ParseDataRange("DataComplementOf(<http://a> <http://b>)", NewPrefixTable())
	checkArityError(t, err, "too many operands for DataComplementOf")
	assert.Equal(t, 29, err.(*source.SyntaxError).Position().Column)
	//
	_, err = ParseClassExpression("ObjectComplementOf(<http://a>)", NewPrefixTable())
	assert.NoError(t, err)
	_, err = ParseDataRange("DataComplementOf(<http://a>)", NewPrefixTable())
	assert.NoError(t, err)
}

func Test_Parser_MinimumAxiomOperands(t *testing.T) {
	var (
		prefixes = examplePrefixes(t)
		tests    = []struct {
			keyword string
			operand string
			what    string
		}{
			{"EquivalentClasses", "ex:A", "class expressions"},
			{"DisjointClasses", "ex:A", "class expressions"},
			{"EquivalentObjectProperties", "ex:p", "object property expressions"},
			{"DisjointObjectProperties", "ex:p", "object property expressions"},
			{"EquivalentDataProperties", "ex:d", "data properties"},
			{"DisjointDataProperties", "ex:d", "data properties"},
			{"SameIndividual", "ex:i", "individuals"},
			{"DifferentIndividuals", "ex:i", "individuals"},
		}
	)
	//
	for _, test := range tests {
		_, err := ParseAxiom(fmt.Sprintf("%s(%s)", test.keyword, test.operand), prefixes)
		checkArityError(t, err, fmt.Sprintf("%s requires at least 2 %s, found 1", test.keyword, test.what))
		//
		axiom, err := ParseAxiom(fmt.Sprintf("%s(%s %s)", test.keyword, test.operand, test.operand), prefixes)
		require.NoError(t, err, test.keyword)
		assert.Equal(t, test.keyword, axiom.Keyword())
	}
	//
	_, err := ParseAxiom("DisjointUnion(ex:A ex:B)", prefixes)
	checkArityError(t, err, "DisjointUnion requires at least 2 class expressions, found 1")
}

func Test_Parser_ExactOperands(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	axiom, err := ParseAxiom("InverseObjectProperties(ex:p ObjectInverseOf(ex:q))", prefixes)
	require.NoError(t, err)
	//
	inverse := axiom.(*owl.InverseObjectProperties)
	assert.Equal(t, "http://example.org/p", inverse.First.(*owl.ObjectProperty).IRI.Value)
	assert.Equal(t, "http://example.org/q", inverse.Second.(*owl.ObjectInverseOf).Property.IRI.Value)
	//
	_, err = ParseAxiom("InverseObjectProperties(ex:p ex:q ex:r)", prefixes)
	checkArityError(t, err, "too many operands for InverseObjectProperties")
	//
	_, err = ParseAxiom("InverseObjectProperties(ex:p)", prefixes)
	checkArityError(t, err, "missing object property expression")
}

func Test_Parser_DataSomeValuesFrom(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	ce, err := ParseClassExpression("DataSomeValuesFrom(ex:hasAge <http://www.w3.org/2001/XMLSchema#integer>)", prefixes)
	require.NoError(t, err)
	//
	some := ce.(*owl.DataSomeValuesFrom)
	require.Len(t, some.Properties, 1)
	assert.Equal(t, "http://example.org/hasAge", some.Properties[0].IRI.Value)
	assert.Equal(t, owl.NewDatatype(owl.NewIRI(owl.XSD_INTEGER)), some.Range)
}

func Test_Parser_DataAllValuesFrom(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	ce, err := ParseClassExpression("DataAllValuesFrom(ex:p ex:q ex:r ex:dt)", prefixes)
	require.NoError(t, err)
	//
	all := ce.(*owl.DataAllValuesFrom)
	require.Len(t, all.Properties, 3)
	assert.Equal(t, "http://example.org/r", all.Properties[2].IRI.Value)
	assert.Equal(t, "http://example.org/dt", all.Range.(*owl.Datatype).IRI.Value)
	// Complex ranges follow the properties directly
	ce, err = ParseClassExpression("DataAllValuesFrom(ex:p DataComplementOf(ex:dt))", prefixes)
	require.NoError(t, err)
	//
	all = ce.(*owl.DataAllValuesFrom)
	assert.Len(t, all.Properties, 1)
	assert.IsType(t, &owl.DataComplementOf{}, all.Range)
	//
	_, err = ParseClassExpression("DataAllValuesFrom(ex:dt)", prefixes)
	checkArityError(t, err, "DataAllValuesFrom requires at least 1 data property, found 0")
}

func Test_Parser_Cardinality(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	ce, err := ParseClassExpression("ObjectMinCardinality(1 ex:p)", prefixes)
	require.NoError(t, err)
	//
	card := ce.(*owl.ObjectCardinality)
	assert.Equal(t, owl.MIN_CARDINALITY, card.Restriction)
	assert.Equal(t, uint32(1), card.Cardinality)
	assert.False(t, card.IsQualified())
	assert.Equal(t, owl.OWL_THING, card.EffectiveFiller().(*owl.Class).IRI.Value)
	//
	ce, err = ParseClassExpression("DataExactCardinality(4294967295 ex:d ex:dt)", prefixes)
	require.NoError(t, err)
	//
	dcard := ce.(*owl.DataCardinality)
	assert.Equal(t, "DataExactCardinality", dcard.Keyword())
	assert.Equal(t, uint32(4294967295), dcard.Cardinality)
	assert.True(t, dcard.IsQualified())
	//
	_, err = ParseClassExpression("ObjectMaxCardinality(4294967296 ex:p)", prefixes)
	require.Error(t, err)
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, source.LEXICAL_ERROR, serr.Kind())
	assert.Equal(t, "integer out of range (maximum is 4294967295)", serr.Message())
}

func Test_Parser_DatatypeRestriction(t *testing.T) {
	prefixes := examplePrefixes(t)
	require.NoError(t, prefixes.Declare("xsd", owl.XSD_NAMESPACE))
	//
	dr, err := ParseDataRange(`DatatypeRestriction(xsd:integer xsd:minInclusive "1"^^xsd:integer
		xsd:maxExclusive "10"^^xsd:integer)`, prefixes)
	require.NoError(t, err)
	//
	restriction := dr.(*owl.DatatypeRestriction)
	assert.Equal(t, owl.XSD_INTEGER, restriction.Datatype.IRI.Value)
	require.Len(t, restriction.Restrictions, 2)
	assert.Equal(t, owl.XSD_NAMESPACE+"maxExclusive", restriction.Restrictions[1].Facet.Value)
	assert.Equal(t, "10", restriction.Restrictions[1].Value.Lexical)
	//
	_, err = ParseDataRange(`DatatypeRestriction(xsd:integer ex:other "1")`, prefixes)
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, source.SEMANTIC_ERROR, serr.Kind())
	assert.Equal(t, "invalid facet", serr.Message())
	assert.Equal(t, owl.FACETS, serr.Expected())
}

func Test_Parser_ObjectOneOf(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	ce, err := ParseClassExpression("ObjectOneOf(ex:a _:b ex:c)", prefixes)
	require.NoError(t, err)
	//
	individuals := ce.(*owl.ObjectOneOf).Individuals
	require.Len(t, individuals, 3)
	assert.Equal(t, "http://example.org/a", individuals[0].(*owl.NamedIndividual).IRI.Value)
	assert.Equal(t, "b", individuals[1].(*owl.AnonymousIndividual).Label)
}

func Test_Parser_UnknownKeyword(t *testing.T) {
	_, err := ParseClassExpression("ObjectNothing(<http://a>)", NewPrefixTable())
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "unknown class expression", serr.Message())
	assert.Contains(t, serr.Expected(), "ObjectIntersectionOf")
	assert.Contains(t, serr.Expected(), "IRI")
}

// ===================================================================
// Prefixes
// ===================================================================

func Test_Parser_UndeclaredPrefix(t *testing.T) {
	_, err := ParseString("Ontology(Declaration(Class(unknown:Thing)))")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndeclaredPrefix))
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, source.SEMANTIC_ERROR, serr.Kind())
	assert.Equal(t, `undeclared prefix "unknown:"`, serr.Message())
	assert.Equal(t, source.Position{Offset: 27, Line: 1, Column: 28}, serr.Position())
}

func Test_Parser_DuplicatePrefix(t *testing.T) {
	_, err := ParseString(exPrefix + "Prefix(ex:=<http://example.org/other#>) Ontology()")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePrefix))
}

func Test_Parser_PrefixAfterOntology(t *testing.T) {
	_, err := ParseString("Ontology() " + exPrefix)
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "unexpected text after ontology", serr.Message())
}

func Test_Parser_FreshPrefixTable(t *testing.T) {
	_, err := ParseString(exPrefix + "Ontology()")
	require.NoError(t, err)
	// Prefixes from one document never leak into another
	_, err = ParseString("Ontology(Declaration(Class(ex:A)))")
	assert.True(t, errors.Is(err, ErrUndeclaredPrefix))
}

// ===================================================================
// Annotations
// ===================================================================

func Test_Parser_NestedAnnotations(t *testing.T) {
	const depth = 50
	//
	doc, err := ParseString(exPrefix + "Ontology(" + nestedAnnotationAssertion(depth) + ")")
	require.NoError(t, err)
	//
	axiom := doc.Ontology.Elements[0].(*owl.AnnotationAssertion)
	assert.Equal(t, "http://example.org/Subject", axiom.Subject.(owl.IRI).Value)
	assert.Equal(t, owl.NewPlainLiteral("value"), axiom.Value)
	require.Len(t, axiom.Annotations, 1)
	assert.Equal(t, uint(depth), axiom.Annotations[0].Depth())
	// Walk down, checking values in order
	annotation := axiom.Annotations[0]
	//
	for i := depth; i > 0; i-- {
		assert.Equal(t, owl.NewPlainLiteral(fmt.Sprintf("v%d", i)), annotation.Value)
		//
		if i > 1 {
			require.Len(t, annotation.Annotations, 1)
			annotation = annotation.Annotations[0]
		} else {
			assert.Empty(t, annotation.Annotations)
		}
	}
}

func Test_Parser_AnnotationOrder(t *testing.T) {
	doc, err := ParseString(exPrefix + `Ontology(
		Annotation(ex:first "1") Annotation(ex:second "2")
		SubClassOf(Annotation(ex:a "x") Annotation(ex:b _:y) Annotation(ex:c ex:z) ex:A ex:B))`)
	require.NoError(t, err)
	//
	require.Len(t, doc.Ontology.Annotations, 2)
	assert.Equal(t, "http://example.org/first", doc.Ontology.Annotations[0].Property.IRI.Value)
	assert.Equal(t, "http://example.org/second", doc.Ontology.Annotations[1].Property.IRI.Value)
	//
	annotations := doc.Ontology.Elements[0].AnnotationList()
	require.Len(t, annotations, 3)
	assert.Equal(t, owl.NewPlainLiteral("x"), annotations[0].Value)
	assert.Equal(t, "y", annotations[1].Value.(*owl.AnonymousIndividual).Label)
	assert.Equal(t, owl.NewAbbreviatedIRI("http://example.org/z", "ex:z"), annotations[2].Value)
}

func Test_Parser_AnnotationDepthLimit(t *testing.T) {
	text := exPrefix + "Ontology(" + nestedAnnotationAssertion(10) + ")"
	//
	_, err := ParseString(text, WithMaxDepth(10))
	require.NoError(t, err)
	//
	_, err = ParseString(text, WithMaxDepth(9))
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "nesting too deep", serr.Message())
	assert.Equal(t, source.STRUCTURAL_ERROR, serr.Kind())
}

// ===================================================================
// Literals
// ===================================================================

func Test_Parser_Literals(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	literal := parseLiteralValue(t, prefixes, `"3"^^<http://www.w3.org/2001/XMLSchema#integer>`)
	assert.Equal(t, owl.TYPED_LITERAL, literal.Kind)
	assert.Equal(t, "3", literal.Lexical)
	assert.Equal(t, owl.XSD_INTEGER, literal.Datatype.Value)
	assert.True(t, literal.HasDatatype())
	assert.False(t, literal.HasLanguage())
	//
	literal = parseLiteralValue(t, prefixes, `"chat"@en`)
	assert.Equal(t, owl.NewLanguageLiteral("chat", "en"), literal)
	assert.True(t, literal.HasLanguage())
	assert.False(t, literal.HasDatatype())
	//
	literal = parseLiteralValue(t, prefixes, `"chat"`)
	assert.Equal(t, owl.NewPlainLiteral("chat"), literal)
	assert.False(t, literal.HasLanguage())
	assert.False(t, literal.HasDatatype())
	//
	literal = parseLiteralValue(t, prefixes, `"say \"hi\" \\ \n"`)
	assert.Equal(t, `say "hi" \ \n`, literal.Lexical)
}

// ===================================================================
// Limits
// ===================================================================

func Test_Parser_NestingTooDeep(t *testing.T) {
	text := strings.Repeat("ObjectComplementOf(", 300) + "<http://a>" + strings.Repeat(")", 300)
	//
	_, err := ParseClassExpression(text, NewPrefixTable())
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "nesting too deep", serr.Message())
	// Exactly at the limit is fine
	text = strings.Repeat("ObjectComplementOf(", 5) + "<http://a>" + strings.Repeat(")", 5)
	_, err = ParseClassExpression(text, NewPrefixTable(), WithMaxDepth(5))
	assert.NoError(t, err)
	_, err = ParseClassExpression("ObjectComplementOf("+text+")", NewPrefixTable(), WithMaxDepth(5))
	assert.Error(t, err)
}

func Test_Parser_MixedNesting(t *testing.T) {
	prefixes := examplePrefixes(t)
	//
	ce, err := ParseClassExpression(`ObjectSomeValuesFrom(ex:p ObjectIntersectionOf(
		DataSomeValuesFrom(ex:d DataUnionOf(ex:dt DataComplementOf(DataOneOf("a" "b"))))
		ObjectAllValuesFrom(ObjectInverseOf(ex:q) ObjectHasSelf(ex:r))))`, prefixes)
	require.NoError(t, err)
	//
	some := ce.(*owl.ObjectSomeValuesFrom)
	intersection := some.Filler.(*owl.ObjectIntersectionOf)
	require.Len(t, intersection.Operands, 2)
	//
	data := intersection.Operands[0].(*owl.DataSomeValuesFrom)
	union := data.Range.(*owl.DataUnionOf)
	oneOf := union.Operands[1].(*owl.DataComplementOf).Operand.(*owl.DataOneOf)
	assert.Equal(t, []owl.Literal{owl.NewPlainLiteral("a"), owl.NewPlainLiteral("b")}, oneOf.Literals)
}

func Test_Parser_InputTooLarge(t *testing.T) {
	_, err := ParseString("Ontology()", WithMaxInputSize(8))
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, source.LEXICAL_ERROR, serr.Kind())
	assert.Equal(t, "input too large (10 bytes exceeds limit of 8)", serr.Message())
	//
	_, err = ParseString("Ontology()", WithOptions(Options{MaxDepth: 1, MaxInputSize: 10}))
	assert.NoError(t, err)
}

func Test_Parser_InputTooLargeBeforeDecoding(t *testing.T) {
	_, err := ParseBytes("big.ofn", []byte("Ontology(  )"), WithMaxInputSize(11))
	//
	require.NotNil(t, err)
	assert.Equal(t, "big.ofn:1:1: lexical error: input too large (12 bytes exceeds limit of 11)", err.Error())
	// Nothing is decoded when the limit is exceeded
	assert.Equal(t, 0, err.SourceFile().Size())
	assert.Empty(t, err.SourceFile().Contents())
}

func Test_Parser_InvalidEncoding(t *testing.T) {
	tests := []struct {
		text   string
		column int
	}{
		{"Ontology(AnnotationAssertion(<http://l> <http://s> \"\xff\"))", 53},
		{"\xc3", 1},
		// Truncated multi-byte sequence
		{"Ontology(\xe2\x82)", 10},
		// Invalid bytes inside a comment are still rejected
		{"# caf\xe9\nOntology()", 6},
	}
	//
	for _, test := range tests {
		_, err := ParseString(test.text)
		//
		var serr *source.SyntaxError
		require.True(t, errors.As(err, &serr), "expected %q to fail", test.text)
		assert.Equal(t, source.LEXICAL_ERROR, serr.Kind())
		assert.Equal(t, "invalid UTF-8", serr.Message())
		assert.Equal(t, test.column, serr.Position().Column, test.text)
	}
	// Encoded replacement characters are valid text
	doc, err := ParseString("Prefix(ex=<http://example.org/>)\nOntology(AnnotationAssertion(ex:l ex:s \"\uFFFD\"))")
	require.NoError(t, err)
	assertion := doc.Ontology.Axioms()[0].(*owl.AnnotationAssertion)
	assert.Equal(t, owl.NewPlainLiteral("\uFFFD"), assertion.Value)
}

// ===================================================================
// Document Structure
// ===================================================================

func Test_Parser_ElementOrder(t *testing.T) {
	doc, err := ParseString(exPrefix + `Ontology(
		Declaration(Class(ex:A))
		DLSafeRule(Body() Head())
		SubClassOf(ex:A ex:B)
		DescriptionGraph(ex:G Nodes(NodeAssertion(ex:A ex:n)) Edges(EdgeAssertion(ex:p ex:n ex:n)) MainClasses(ex:A))
		DescriptionGraphRule(Body() Head(ClassAtom(ex:A Variable(ex:x)))))`)
	require.NoError(t, err)
	//
	var keywords []string
	for _, element := range doc.Ontology.Elements {
		keywords = append(keywords, element.Keyword())
	}
	//
	assert.Equal(t, []string{"Declaration", "DLSafeRule", "SubClassOf", "DescriptionGraph", "DescriptionGraphRule"},
		keywords)
	assert.Len(t, doc.Ontology.Axioms(), 2)
	assert.Len(t, doc.Ontology.Rules(), 2)
	assert.Len(t, doc.Ontology.DescriptionGraphs(), 1)
}

func Test_Parser_SourceMap(t *testing.T) {
	doc, err := ParseString(exPrefix + "Ontology(\n  SubClassOf(ex:A  ObjectUnionOf(ex:B ex:C))\n)")
	require.NoError(t, err)
	//
	axiom := doc.Ontology.Elements[0].(*owl.SubClassOf)
	assert.Equal(t, "SubClassOf(ex:A  ObjectUnionOf(ex:B ex:C))", doc.SourceMap.Text(axiom))
	assert.Equal(t, "ObjectUnionOf(ex:B ex:C)", doc.SourceMap.Text(axiom.Super))
	assert.Equal(t, "ex:A", doc.SourceMap.Text(axiom.Sub))
	assert.True(t, doc.SourceMap.Has(doc.Ontology))
}

func Test_Parser_AnonymousIndividuals(t *testing.T) {
	text := exPrefix + "Ontology(ClassAssertion(ex:A _:x) ClassAssertion(ex:B _:x))"
	//
	first, err := ParseString(text)
	require.NoError(t, err)
	second, err := ParseString(text)
	require.NoError(t, err)
	//
	a := first.Ontology.Elements[0].(*owl.ClassAssertion).Individual.(*owl.AnonymousIndividual)
	b := first.Ontology.Elements[1].(*owl.ClassAssertion).Individual.(*owl.AnonymousIndividual)
	c := second.Ontology.Elements[0].(*owl.ClassAssertion).Individual.(*owl.AnonymousIndividual)
	// Same label in the same document denotes the same individual
	assert.True(t, a.SameAs(b))
	assert.Equal(t, first.ID, a.Document)
	// Same label in different documents does not
	assert.False(t, a.SameAs(c))
}

func Test_Parser_Concurrent(t *testing.T) {
	var (
		wg     sync.WaitGroup
		errs   = make([]error, 16)
		counts = make([]int, 16)
	)
	//
	for i := range errs {
		wg.Add(1)
		//
		go func(i int) {
			defer wg.Done()
			//
			text := fmt.Sprintf("Prefix(ex=<http://example.org/%d/>) Ontology(%s)", i,
				strings.Repeat("SubClassOf(ex:A ex:B) ", i))
			//
			doc, err := ParseString(text)
			if err == nil {
				counts[i] = len(doc.Ontology.Elements)
			}
			//
			errs[i] = err
		}(i)
	}
	//
	wg.Wait()
	//
	for i := range errs {
		assert.NoError(t, errs[i])
		assert.Equal(t, i, counts[i])
	}
}

func Test_Parser_ErrorExpectations(t *testing.T) {
	_, err := ParseString("Ontology(Declaration(Class(<http://a>))")
	//
	var serr *source.SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "unexpected end of input", serr.Message())
	assert.Equal(t, []string{`")"`}, serr.Expected())
	assert.Equal(t, `1:40: structural error: unexpected end of input (expected ")")`, serr.Error())
}

// ===================================================================
// Helpers
// ===================================================================

func checkArityError(t *testing.T, err error, msg string) {
	t.Helper()
	//
	var serr *source.SyntaxError
	//
	require.True(t, errors.As(err, &serr), "expected syntax error %q", msg)
	assert.Equal(t, source.STRUCTURAL_ERROR, serr.Kind())
	assert.Equal(t, msg, serr.Message())
}

func examplePrefixes(t *testing.T) *PrefixTable {
	prefixes := NewPrefixTable()
	require.NoError(t, prefixes.Declare("ex", "http://example.org/"))
	//
	return prefixes
}

func parseLiteralValue(t *testing.T, prefixes *PrefixTable, text string) owl.Literal {
	ce, err := ParseClassExpression("DataHasValue(ex:d "+text+")", prefixes)
	require.NoError(t, err)
	//
	return ce.(*owl.DataHasValue).Value
}

// Construct an annotation assertion whose annotation is nested to a given
// depth, with the value at depth n being "v<n>".
func nestedAnnotationAssertion(depth int) string {
	annotation := ""
	//
	for i := 1; i <= depth; i++ {
		annotation = fmt.Sprintf("Annotation(%s ex:p \"v%d\")", annotation, i)
	}
	//
	return fmt.Sprintf("AnnotationAssertion(%s ex:label ex:Subject \"value\")", annotation)
}
