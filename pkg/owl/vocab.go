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

import "slices"

// Standard namespaces
const (
	OWL_NAMESPACE  = "http://www.w3.org/2002/07/owl#"
	RDF_NAMESPACE  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS_NAMESPACE = "http://www.w3.org/2000/01/rdf-schema#"
	XSD_NAMESPACE  = "http://www.w3.org/2001/XMLSchema#"
)

// OWL_THING is the top class, used as the filler of unqualified object
// cardinality restrictions.
const OWL_THING = OWL_NAMESPACE + "Thing"

// OWL_NOTHING is the bottom class.
const OWL_NOTHING = OWL_NAMESPACE + "Nothing"

// RDFS_LITERAL is the top datatype, used as the range of unqualified data
// cardinality restrictions.
const RDFS_LITERAL = RDFS_NAMESPACE + "Literal"

// XSD_INTEGER is the datatype of integer literals.
const XSD_INTEGER = XSD_NAMESPACE + "integer"

// XSD_STRING is the datatype of string literals.
const XSD_STRING = XSD_NAMESPACE + "string"

// FACETS lists the constraining facets permitted within a datatype restriction.
var FACETS = []string{
	XSD_NAMESPACE + "length",
	XSD_NAMESPACE + "minLength",
	XSD_NAMESPACE + "maxLength",
	XSD_NAMESPACE + "pattern",
	XSD_NAMESPACE + "minInclusive",
	XSD_NAMESPACE + "minExclusive",
	XSD_NAMESPACE + "maxInclusive",
	XSD_NAMESPACE + "maxExclusive",
	XSD_NAMESPACE + "totalDigits",
	XSD_NAMESPACE + "fractionDigits",
	RDF_NAMESPACE + "langRange",
}

// IsFacet checks whether a given IRI names a constraining facet.
func IsFacet(iri IRI) bool {
	return slices.Contains(FACETS, iri.Value)
}
