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
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Determines the (relative) location of the test directory.  That is where the
// ontology files (.ofn) can be found.
const TestDir = "../../../testdata/ofn"

// ===================================================================
// Valid Documents
// ===================================================================

func Test_Valid_Empty(t *testing.T) {
	doc := CheckValid(t, "empty")
	assert.Nil(t, doc.Ontology.IRI)
	assert.Empty(t, doc.Ontology.Elements)
}

func Test_Valid_Family(t *testing.T) {
	doc := CheckValid(t, "family")
	counts := doc.Ontology.CountByKeyword()
	//
	assert.Len(t, doc.Prefixes, 4)
	assert.Equal(t, uint(10), counts["Declaration"])
	assert.Equal(t, uint(3), counts["SubClassOf"])
	assert.Equal(t, uint(2), counts["ClassAssertion"])
	assert.Equal(t, uint(1), counts["NegativeObjectPropertyAssertion"])
	assert.Equal(t, uint(2), counts["AnnotationAssertion"])
	assert.Equal(t, "http://example.org/family/1.0", doc.Ontology.VersionIRI.Value)
	assert.Equal(t, []owl.IRI{owl.NewIRI("http://example.org/people")}, doc.Ontology.Imports)
	require.Len(t, doc.Ontology.Annotations, 1)
	assert.Equal(t, owl.NewLanguageLiteral("A small family ontology", "en"), doc.Ontology.Annotations[0].Value)
}

func Test_Valid_Datatypes(t *testing.T) {
	doc := CheckValid(t, "datatypes")
	assert.Len(t, doc.Ontology.Axioms(), 16)
	assert.Empty(t, doc.Ontology.Rules())
}

func Test_Valid_Properties(t *testing.T) {
	doc := CheckValid(t, "properties")
	counts := doc.Ontology.CountByKeyword()
	//
	assert.Nil(t, doc.Ontology.IRI)
	assert.Equal(t, uint(2), counts["SubObjectPropertyOf"])
	assert.Equal(t, uint(2), counts["HasKey"])
	//
	for _, keyword := range owl.CHARACTERISTICS {
		assert.Equal(t, uint(1), counts[keyword], keyword)
	}
}

func Test_Valid_Rules(t *testing.T) {
	doc := CheckValid(t, "rules")
	rules := doc.Ontology.Rules()
	//
	require.Len(t, rules, 4)
	assert.Len(t, rules[0].AnnotationList(), 1)
	assert.Len(t, rules[1].BodyAtoms(), 4)
	assert.Empty(t, rules[2].HeadAtoms())
	assert.Empty(t, rules[3].BodyAtoms())
}

func Test_Valid_Graphs(t *testing.T) {
	doc := CheckValid(t, "graphs")
	graphs := doc.Ontology.DescriptionGraphs()
	//
	require.Len(t, graphs, 1)
	assert.Len(t, graphs[0].Nodes, 3)
	assert.Len(t, graphs[0].Edges, 2)
	assert.Len(t, graphs[0].MainClasses, 1)
	assert.Len(t, doc.Ontology.Rules(), 1)
	assert.Len(t, doc.Ontology.Axioms(), 1)
}

// ===================================================================
// Invalid Documents
// ===================================================================

func Test_Invalid_IntersectionArity(t *testing.T) {
	CheckInvalid(t, "intersection_arity", source.STRUCTURAL_ERROR)
}

func Test_Invalid_EquivalentClassesArity(t *testing.T) {
	CheckInvalid(t, "equivalent_classes_arity", source.STRUCTURAL_ERROR)
}

func Test_Invalid_InversePropertiesArity(t *testing.T) {
	CheckInvalid(t, "inverse_properties_arity", source.STRUCTURAL_ERROR)
}

func Test_Invalid_DataSomeValuesFrom(t *testing.T) {
	CheckInvalid(t, "data_some_values_from", source.STRUCTURAL_ERROR)
}

func Test_Invalid_UndeclaredPrefix(t *testing.T) {
	CheckInvalid(t, "undeclared_prefix", source.SEMANTIC_ERROR)
}

func Test_Invalid_DuplicatePrefix(t *testing.T) {
	CheckInvalid(t, "duplicate_prefix", source.SEMANTIC_ERROR)
}

func Test_Invalid_UnterminatedString(t *testing.T) {
	CheckInvalid(t, "unterminated_string", source.LEXICAL_ERROR)
}

func Test_Invalid_InvalidUtf8(t *testing.T) {
	CheckInvalid(t, "invalid_utf8", source.LEXICAL_ERROR)
}

func Test_Invalid_IntegerOverflow(t *testing.T) {
	CheckInvalid(t, "integer_overflow", source.LEXICAL_ERROR)
}

func Test_Invalid_UnknownAxiom(t *testing.T) {
	CheckInvalid(t, "unknown_axiom", source.STRUCTURAL_ERROR)
}

func Test_Invalid_UnknownClassExpression(t *testing.T) {
	CheckInvalid(t, "unknown_class_expression", source.STRUCTURAL_ERROR)
}

func Test_Invalid_UnknownEntity(t *testing.T) {
	CheckInvalid(t, "unknown_entity", source.STRUCTURAL_ERROR)
}

func Test_Invalid_AtomNotPermitted(t *testing.T) {
	CheckInvalid(t, "atom_not_permitted", source.STRUCTURAL_ERROR)
}

func Test_Invalid_EmptyNodes(t *testing.T) {
	CheckInvalid(t, "empty_nodes", source.STRUCTURAL_ERROR)
}

func Test_Invalid_MissingClose(t *testing.T) {
	CheckInvalid(t, "missing_close", source.STRUCTURAL_ERROR)
}

func Test_Invalid_TrailingText(t *testing.T) {
	CheckInvalid(t, "trailing_text", source.STRUCTURAL_ERROR)
}

func Test_Invalid_Facet(t *testing.T) {
	CheckInvalid(t, "invalid_facet", source.SEMANTIC_ERROR)
}

func Test_Invalid_MissingScheme(t *testing.T) {
	CheckInvalid(t, "missing_scheme", source.LEXICAL_ERROR)
}

func Test_Invalid_BuiltInArity(t *testing.T) {
	CheckInvalid(t, "builtin_arity", source.STRUCTURAL_ERROR)
}

func Test_Invalid_ChainArity(t *testing.T) {
	CheckInvalid(t, "chain_arity", source.STRUCTURAL_ERROR)
}

func Test_Invalid_MissingOperand(t *testing.T) {
	CheckInvalid(t, "missing_operand", source.STRUCTURAL_ERROR)
}

func Test_Invalid_UnknownText(t *testing.T) {
	CheckInvalid(t, "unknown_text", source.LEXICAL_ERROR)
}

func Test_Invalid_DifferentIndividualsAtomArity(t *testing.T) {
	CheckInvalid(t, "different_individuals_atom_arity", source.STRUCTURAL_ERROR)
}

// ===================================================================
// Test Helpers
// ===================================================================

// CheckValid parses a given ontology file which is expected to parse without
// error, and returns the resulting document.
func CheckValid(t *testing.T, test string) *owl.Document {
	filename := fmt.Sprintf("%s/valid/%s.ofn", TestDir, test)
	// Enable testing each file in parallel
	t.Parallel()
	// Read ontology file
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	// Package up as source file
	srcfile := source.NewSourceFile(filename, bytes)
	//
	doc, serr := Parse(srcfile)
	if serr != nil {
		t.Fatalf("Error %s should have parsed: %s", filename, serr.Error())
	}
	// Every element should map back to some text
	for _, element := range doc.Ontology.Elements {
		assert.True(t, doc.SourceMap.Has(element), "no source mapping for %s", element.Keyword())
	}
	//
	return doc
}

// CheckInvalid parses a given ontology file which is expected to fail.  The
// file must contain a comment of the form "#error:line:column:message" giving
// the error expected.
func CheckInvalid(t *testing.T, test string, kind source.ErrorKind) {
	filename := fmt.Sprintf("%s/invalid/%s.ofn", TestDir, test)
	// Enable testing each file in parallel
	t.Parallel()
	// Read ontology file
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	// Extract expected error for comparison
	expected := extractExpectedError(t, string(bytes))
	//
	_, serr := ParseBytes(filename, bytes)
	if serr == nil {
		t.Fatalf("Error %s should not have parsed", filename)
	}
	//
	pos := serr.Position()
	//
	assert.Equal(t, expected.msg, serr.Message())
	assert.Equal(t, expected.line, pos.Line, "line of %q", serr.Message())
	assert.Equal(t, expected.column, pos.Column, "column of %q", serr.Message())
	assert.Equal(t, kind, serr.Kind())
}

// ExpectedError captures key information about an expected error
type ExpectedError struct {
	line   int
	column int
	msg    string
}

func extractExpectedError(t *testing.T, text string) ExpectedError {
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "#error:") {
			continue
		}
		//
		parts := strings.SplitN(strings.TrimPrefix(line, "#error:"), ":", 3)
		require.Len(t, parts, 3, "malformed expected error %q", line)
		//
		lineNo, err1 := strconv.Atoi(parts[0])
		column, err2 := strconv.Atoi(parts[1])
		require.NoError(t, err1)
		require.NoError(t, err2)
		//
		return ExpectedError{lineNo, column, parts[2]}
	}
	//
	t.Fatalf("missing expected error")
	//
	return ExpectedError{}
}
