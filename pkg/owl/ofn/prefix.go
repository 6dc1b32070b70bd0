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

	"github.com/consensys/go-owl/pkg/owl"
)

// ErrDuplicatePrefix is returned when a prefix name is declared twice.
var ErrDuplicatePrefix = errors.New("duplicate prefix")

// ErrUndeclaredPrefix is returned when a prefixed name uses a prefix which was
// never declared.
var ErrUndeclaredPrefix = errors.New("undeclared prefix")

// PrefixTable maps prefix names to IRIs for a single document.  The empty name
// is the default prefix (written ":").  No prefixes are predeclared.
type PrefixTable struct {
	// Declaration order
	names []string
	// Mapping of names to IRIs
	mapping map[string]string
}

// NewPrefixTable constructs an initially empty prefix table.
func NewPrefixTable() *PrefixTable {
	return &PrefixTable{nil, make(map[string]string)}
}

// Declare a new prefix, or fail if the name is already declared.
func (p *PrefixTable) Declare(name string, iri string) error {
	if _, ok := p.mapping[name]; ok {
		return fmt.Errorf("%w \"%s:\"", ErrDuplicatePrefix, name)
	}
	//
	p.names = append(p.names, name)
	p.mapping[name] = iri
	//
	return nil
}

// Resolve the IRI associated with a given prefix name.
func (p *PrefixTable) Resolve(name string) (string, error) {
	if iri, ok := p.mapping[name]; ok {
		return iri, nil
	}
	//
	return "", fmt.Errorf("%w \"%s:\"", ErrUndeclaredPrefix, name)
}

// Expand a prefixed name into an absolute IRI, by concatenating the IRI of the
// prefix with the local part.
func (p *PrefixTable) Expand(name string, local string) (string, error) {
	iri, err := p.Resolve(name)
	if err != nil {
		return "", err
	}
	//
	return iri + local, nil
}

// Len returns the number of declared prefixes.
func (p *PrefixTable) Len() int {
	return len(p.names)
}

// Declarations returns the declared prefixes in declaration order.
func (p *PrefixTable) Declarations() []owl.PrefixDeclaration {
	decls := make([]owl.PrefixDeclaration, len(p.names))
	//
	for i, name := range p.names {
		decls[i] = owl.PrefixDeclaration{Name: name, IRI: p.mapping[name]}
	}
	//
	return decls
}
