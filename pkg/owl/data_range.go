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

// DataRange describes a set of data values.
type DataRange interface {
	Node
	isDataRange()
}

// DataIntersectionOf is the intersection of two or more data ranges.
type DataIntersectionOf struct {
	Operands []DataRange
}

// Keyword implementation for Node interface.
func (p *DataIntersectionOf) Keyword() string { return "DataIntersectionOf" }
func (p *DataIntersectionOf) isDataRange()    {}

// DataUnionOf is the union of two or more data ranges.
type DataUnionOf struct {
	Operands []DataRange
}

// Keyword implementation for Node interface.
func (p *DataUnionOf) Keyword() string { return "DataUnionOf" }
func (p *DataUnionOf) isDataRange()    {}

// DataComplementOf is the complement of a data range.
type DataComplementOf struct {
	Operand DataRange
}

// Keyword implementation for Node interface.
func (p *DataComplementOf) Keyword() string { return "DataComplementOf" }
func (p *DataComplementOf) isDataRange()    {}

// DataOneOf enumerates one or more literals.
type DataOneOf struct {
	Literals []Literal
}

// Keyword implementation for Node interface.
func (p *DataOneOf) Keyword() string { return "DataOneOf" }
func (p *DataOneOf) isDataRange()    {}

// FacetRestriction constrains a datatype by pairing a constraining facet with
// a value.
type FacetRestriction struct {
	Facet IRI
	Value Literal
}

// DatatypeRestriction restricts a datatype by one or more facets.
type DatatypeRestriction struct {
	Datatype     *Datatype
	Restrictions []FacetRestriction
}

// Keyword implementation for Node interface.
func (p *DatatypeRestriction) Keyword() string { return "DatatypeRestriction" }
func (p *DatatypeRestriction) isDataRange()    {}
