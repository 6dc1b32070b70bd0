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

// ObjectPropertyExpression is either a named object property, or the inverse
// of a named object property.
type ObjectPropertyExpression interface {
	Node
	isObjectPropertyExpression()
	isSubObjectPropertyExpression()
}

// SubObjectPropertyExpression is anything permitted on the left-hand side of a
// SubObjectPropertyOf axiom.  That is, an object property expression or a
// property chain.
type SubObjectPropertyExpression interface {
	Node
	isSubObjectPropertyExpression()
}

// ObjectInverseOf is the inverse of a named object property.  Inverses of
// inverses are not expressible.
type ObjectInverseOf struct {
	Property *ObjectProperty
}

// Keyword implementation for Node interface.
func (p *ObjectInverseOf) Keyword() string { return "ObjectInverseOf" }

func (p *ObjectInverseOf) isObjectPropertyExpression()    {}
func (p *ObjectInverseOf) isSubObjectPropertyExpression() {}

// ObjectPropertyChain is a chain of two or more object property expressions.
type ObjectPropertyChain struct {
	Properties []ObjectPropertyExpression
}

// Keyword implementation for Node interface.
func (p *ObjectPropertyChain) Keyword() string { return "ObjectPropertyChain" }

func (p *ObjectPropertyChain) isSubObjectPropertyExpression() {}
