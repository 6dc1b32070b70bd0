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
	"github.com/consensys/go-owl/pkg/owl"
	"github.com/consensys/go-owl/pkg/util/source"
)

const annotation = "Annotation"

// Parse zero or more annotations.
func (p *Parser) parseAnnotations() ([]*owl.Annotation, *source.SyntaxError) {
	var annotations []*owl.Annotation
	//
	for p.isKeyword(annotation) {
		a, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}
		//
		annotations = append(annotations, a)
	}
	//
	return annotations, nil
}

// Parse an annotation, which may itself be annotated.
func (p *Parser) parseAnnotation() (*owl.Annotation, *source.SyntaxError) {
	var (
		start = p.index
		a     owl.Annotation
		err   *source.SyntaxError
	)
	//
	if err = p.enter(); err != nil {
		return nil, err
	}
	//
	defer p.leave()
	//
	if err = p.open(annotation); err != nil {
		return nil, err
	} else if a.Annotations, err = p.parseAnnotations(); err != nil {
		return nil, err
	} else if a.Property, err = p.parseAnnotationProperty(); err != nil {
		return nil, err
	} else if a.Value, err = p.parseAnnotationValue(); err != nil {
		return nil, err
	} else if err = p.close(annotation); err != nil {
		return nil, err
	}
	//
	p.record(&a, start)
	//
	return &a, nil
}

// Parse an annotation subject, which is an IRI or an anonymous individual.
func (p *Parser) parseAnnotationSubject() (owl.AnnotationSubject, *source.SyntaxError) {
	if anon, ok := p.parseAnonymousIndividual(); ok {
		return anon, nil
	} else if !isIRI(p.lookahead()) {
		return nil, p.unexpected("annotation subject", tokenNames[FULL_IRI], tokenNames[PREFIXED_NAME],
			tokenNames[BLANK_NODE])
	}
	//
	iri, err := p.parseIRI()
	if err != nil {
		return nil, err
	}
	//
	return iri, nil
}

// Parse an annotation value, which is an IRI, an anonymous individual or a
// literal.
func (p *Parser) parseAnnotationValue() (owl.AnnotationValue, *source.SyntaxError) {
	if p.follows(STRING) {
		literal, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		//
		return literal, nil
	} else if p.follows(BLANK_NODE) || isIRI(p.lookahead()) {
		subject, err := p.parseAnnotationSubject()
		if err != nil {
			return nil, err
		}
		//
		return subject.(owl.AnnotationValue), nil
	}
	//
	return nil, p.unexpected("annotation value", tokenNames[FULL_IRI], tokenNames[PREFIXED_NAME],
		tokenNames[BLANK_NODE], tokenNames[STRING])
}
