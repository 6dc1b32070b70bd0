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
	"testing"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Rule_Atoms(t *testing.T) {
	rule := parseSingleRule(t, `DLSafeRule(
		Body(
			ClassAtom(ObjectSomeValuesFrom(ex:p ex:A) Variable(ex:x))
			DataRangeAtom(DataOneOf("a") Variable(ex:v))
			ObjectPropertyAtom(ObjectInverseOf(ex:p) ex:i _:j)
			DataPropertyAtom(ex:d Variable(ex:x) "7")
			BuiltInAtom(ex:op Variable(ex:v) "1" "2")
		)
		Head(
			SameIndividualAtom(Variable(ex:x) ex:i)
			DifferentIndividualsAtom(_:j Variable(ex:y))
		))`)
	//
	assert.IsType(t, &owl.DLSafeRule{}, rule)
	//
	body := rule.BodyAtoms()
	require.Len(t, body, 5)
	//
	class := body[0].(*owl.ClassAtom)
	assert.IsType(t, &owl.ObjectSomeValuesFrom{}, class.Class)
	assert.Equal(t, "http://example.org/x", class.Argument.(*owl.Variable).Name.Value)
	//
	property := body[2].(*owl.ObjectPropertyAtom)
	assert.IsType(t, &owl.ObjectInverseOf{}, property.Property)
	assert.IsType(t, &owl.NamedIndividual{}, property.Source)
	assert.IsType(t, &owl.AnonymousIndividual{}, property.Target)
	//
	data := body[3].(*owl.DataPropertyAtom)
	assert.Equal(t, owl.NewPlainLiteral("7"), data.Target)
	//
	builtin := body[4].(*owl.BuiltInAtom)
	assert.Equal(t, "http://example.org/op", builtin.Predicate.Value)
	require.Len(t, builtin.Arguments, 3)
	assert.IsType(t, &owl.Variable{}, builtin.Arguments[0])
	assert.Equal(t, owl.NewPlainLiteral("2"), builtin.Arguments[2])
	//
	head := rule.HeadAtoms()
	require.Len(t, head, 2)
	assert.Equal(t, "SameIndividualAtom", head[0].Keyword())
	assert.Equal(t, "DifferentIndividualsAtom", head[1].Keyword())
}

func Test_Rule_Empty(t *testing.T) {
	rule := parseSingleRule(t, "DLSafeRule(Annotation(ex:note \"empty\") Body() Head())")
	//
	assert.Empty(t, rule.BodyAtoms())
	assert.Empty(t, rule.HeadAtoms())
	assert.Len(t, rule.AnnotationList(), 1)
}

func Test_Rule_DescriptionGraphRule(t *testing.T) {
	rule := parseSingleRule(t, `DescriptionGraphRule(
		Body(ClassAtom(ex:A Variable(ex:x)) ObjectPropertyAtom(ex:p Variable(ex:x) Variable(ex:y)))
		Head(ClassAtom(ex:B Variable(ex:y))))`)
	//
	assert.IsType(t, &owl.DescriptionGraphRule{}, rule)
	assert.Len(t, rule.BodyAtoms(), 2)
	assert.Len(t, rule.HeadAtoms(), 1)
	//
	for _, atom := range []string{"DataRangeAtom(ex:dt Variable(ex:x))", "DataPropertyAtom(ex:d ex:i \"1\")",
		"BuiltInAtom(ex:op \"1\")", "SameIndividualAtom(ex:i ex:j)", "DifferentIndividualsAtom(ex:i ex:j)"} {
		err := parseRuleError(t, "DescriptionGraphRule(Body("+atom+") Head())")
		assert.Contains(t, err.Message(), "not permitted here")
		assert.Equal(t, []string{"ClassAtom", "ObjectPropertyAtom"}, err.Expected())
	}
}

func Test_Rule_AtomArity(t *testing.T) {
	tests := []struct {
		text string
		msg  string
	}{
		{"DLSafeRule(Body(ClassAtom(ex:A)) Head())", "missing individual"},
		{"DLSafeRule(Body(ClassAtom(ex:A ex:i ex:j)) Head())", "too many operands for ClassAtom"},
		{"DLSafeRule(Body(ObjectPropertyAtom(ex:p ex:i)) Head())", "missing individual"},
		{"DLSafeRule(Body(DataPropertyAtom(ex:d ex:i)) Head())", "missing data argument"},
		{"DLSafeRule(Body(BuiltInAtom(ex:op)) Head())", "BuiltInAtom requires at least 1 data argument, found 0"},
		{"DLSafeRule(Body(SameIndividualAtom(ex:i)) Head())", "missing individual"},
		{"DLSafeRule(Body(UnknownAtom(ex:i)) Head())", "unknown atom"},
		{"DLSafeRule(Head() Body())", "expected Body"},
		{"DLSafeRule(Body())", "missing Head"},
	}
	//
	for _, test := range tests {
		err := parseRuleError(t, test.text)
		assert.Equal(t, test.msg, err.Message(), test.text)
	}
}

func Test_Rule_DescriptionGraph(t *testing.T) {
	doc, err := ParseString(exPrefix + `Ontology(DescriptionGraph(Annotation(ex:note "g") ex:G
		Nodes(NodeAssertion(ex:A ex:n0) NodeAssertion(ex:B ex:n1))
		Edges(EdgeAssertion(ex:p ex:n0 ex:n1))
		MainClasses(ex:A ex:B)))`)
	require.NoError(t, err)
	//
	graphs := doc.Ontology.DescriptionGraphs()
	require.Len(t, graphs, 1)
	//
	graph := graphs[0]
	assert.Equal(t, "http://example.org/G", graph.Name.Value)
	assert.Len(t, graph.AnnotationList(), 1)
	assert.Equal(t, []owl.NodeAssertion{
		{Class: owl.NewClass(owl.NewAbbreviatedIRI("http://example.org/A", "ex:A")),
			Node: owl.NewAbbreviatedIRI("http://example.org/n0", "ex:n0")},
		{Class: owl.NewClass(owl.NewAbbreviatedIRI("http://example.org/B", "ex:B")),
			Node: owl.NewAbbreviatedIRI("http://example.org/n1", "ex:n1")},
	}, graph.Nodes)
	require.Len(t, graph.Edges, 1)
	assert.Equal(t, "http://example.org/n1", graph.Edges[0].To.Value)
	assert.Len(t, graph.MainClasses, 2)
}

func Test_Rule_DescriptionGraphSections(t *testing.T) {
	tests := []struct {
		text string
		msg  string
	}{
		{"DescriptionGraph(ex:G Nodes() Edges(EdgeAssertion(ex:p ex:a ex:b)) MainClasses(ex:A))",
			"Nodes requires at least 1 node assertion, found 0"},
		{"DescriptionGraph(ex:G Nodes(NodeAssertion(ex:A ex:a)) Edges() MainClasses(ex:A))",
			"Edges requires at least 1 edge assertion, found 0"},
		{"DescriptionGraph(ex:G Nodes(NodeAssertion(ex:A ex:a)) Edges(EdgeAssertion(ex:p ex:a ex:b)) MainClasses())",
			"MainClasses requires at least 1 class, found 0"},
		{"DescriptionGraph(ex:G Edges(EdgeAssertion(ex:p ex:a ex:b)) MainClasses(ex:A))",
			"expected Nodes"},
	}
	//
	for _, test := range tests {
		err := parseRuleError(t, test.text)
		assert.Equal(t, test.msg, err.Message(), test.text)
	}
}

// ===================================================================
// Helpers
// ===================================================================

func parseSingleRule(t *testing.T, text string) owl.Rule {
	doc, err := ParseString(exPrefix + "Ontology(" + text + ")")
	require.NoError(t, err)
	//
	rules := doc.Ontology.Rules()
	require.Len(t, rules, 1)
	//
	return rules[0]
}

func parseRuleError(t *testing.T, text string) *source.SyntaxError {
	var serr *source.SyntaxError
	//
	_, err := ParseString(exPrefix + "Ontology(" + text + ")")
	require.True(t, errors.As(err, &serr), "expected %q to fail", text)
	//
	return serr
}
