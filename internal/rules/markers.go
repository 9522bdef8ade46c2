// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"context"

	"fillmore-labs.com/xunitguard/internal/attribute"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/semantic"
)

// factWithParameters reports Fact methods that declare parameters.
type factWithParameters struct{}

func (factWithParameters) Descriptor() *report.Descriptor { return FactMethodMustNotHaveParameters }

func (factWithParameters) CheckMethod(_ context.Context, p *Pass, m *semantic.Method) {
	if len(m.Params) == 0 || !isFact(p, m) {
		return
	}

	p.Report(FactMethodMustNotHaveParameters, m.NameNode, nil)
}

// multipleTestKinds reports methods with more than one Fact or Theory attribute.
type multipleTestKinds struct{}

func (multipleTestKinds) Descriptor() *report.Descriptor {
	return TestMethodMustNotHaveMultipleFactAttributes
}

func (multipleTestKinds) CheckMethod(_ context.Context, p *Pass, m *semantic.Method) {
	facts := p.Classifier.Count(m.Attributes, attribute.Fact)
	theories := p.Classifier.Count(m.Attributes, attribute.Theory)

	if facts+theories < 2 {
		return
	}

	p.Report(TestMethodMustNotHaveMultipleFactAttributes, m.NameNode, nil)
}

// factWithData reports Fact methods carrying test data.
type factWithData struct{}

func (factWithData) Descriptor() *report.Descriptor { return FactMethodShouldNotHaveTestData }

func (factWithData) CheckMethod(_ context.Context, p *Pass, m *semantic.Method) {
	if !isFact(p, m) || !p.Classifier.Has(m.Attributes, attribute.DataProvider) {
		return
	}

	p.Report(FactMethodShouldNotHaveTestData, m.NameNode, nil)
}

// theoryWithoutParameters reports Theory methods without parameters.
type theoryWithoutParameters struct{}

func (theoryWithoutParameters) Descriptor() *report.Descriptor { return TheoryMethodShouldHaveParameters }

func (theoryWithoutParameters) CheckMethod(_ context.Context, p *Pass, m *semantic.Method) {
	if len(m.Params) > 0 || !p.Classifier.Has(m.Attributes, attribute.Theory) {
		return
	}

	p.Report(TheoryMethodShouldHaveParameters, m.NameNode, nil)
}

// dataWithoutTheory reports test data on methods that are neither Facts nor Theories.
type dataWithoutTheory struct{}

func (dataWithoutTheory) Descriptor() *report.Descriptor { return DataAttributeShouldBeUsedOnATheory }

func (dataWithoutTheory) CheckMethod(_ context.Context, p *Pass, m *semantic.Method) {
	if !p.Classifier.Has(m.Attributes, attribute.DataProvider) || p.Classifier.IsTest(m.Attributes) {
		return
	}

	p.Report(DataAttributeShouldBeUsedOnATheory, m.NameNode, nil)
}

// isFact reports whether m is marked as a Fact and not as a Theory.
func isFact(p *Pass, m *semantic.Method) bool {
	return p.Classifier.Has(m.Attributes, attribute.Fact) && !p.Classifier.Has(m.Attributes, attribute.Theory)
}
