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
	"strings"

	"fillmore-labs.com/xunitguard/internal/config"
	"fillmore-labs.com/xunitguard/internal/report"
)

const helpBase = "https://xunit.net/xunit.analyzers/rules/"

// Rule categories.
const (
	CategoryUsage         = "Usage"
	CategoryAssertions    = "Assertions"
	CategoryExtensibility = "Extensibility"
)

// Rule descriptors.
var (
	FactMethodMustNotHaveParameters = &report.Descriptor{
		ID:       "xUnit1001",
		Title:    "Fact methods cannot have parameters",
		Message:  "Fact methods cannot have parameters",
		Severity: report.Error,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1001",
		Flag:     config.FactWithParameters,
	}

	TestMethodMustNotHaveMultipleFactAttributes = &report.Descriptor{
		ID:       "xUnit1002",
		Title:    "Test methods cannot have multiple Fact or Theory attributes",
		Message:  "Test methods cannot have multiple Fact or Theory attributes",
		Severity: report.Error,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1002",
		Flag:     config.MultipleTestKinds,
	}

	FactMethodShouldNotHaveTestData = &report.Descriptor{
		ID:       "xUnit1005",
		Title:    "Fact methods should not have test data",
		Message:  "Fact methods should not have test data",
		Severity: report.Warning,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1005",
		Flag:     config.FactWithData,
	}

	TheoryMethodShouldHaveParameters = &report.Descriptor{
		ID:       "xUnit1006",
		Title:    "Theory methods should have parameters",
		Message:  "Theory methods should have parameters",
		Severity: report.Warning,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1006",
		Flag:     config.TheoryWithoutParameters,
	}

	DataAttributeShouldBeUsedOnATheory = &report.Descriptor{
		ID:       "xUnit1008",
		Title:    "Test data attribute should only be used on a Theory",
		Message:  "Test data attribute should only be used on a Theory",
		Severity: report.Warning,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1008",
		Flag:     config.DataWithoutTheory,
	}

	PublicMethodShouldBeMarkedAsTest = &report.Descriptor{
		ID:       "xUnit1013",
		Title:    "Public method should be marked as test",
		Message:  "Public method '{0}' on test class '{1}' should be marked as a {2}.",
		Severity: report.Warning,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1013",
		Flag:     config.PublicNonTestMethod,
	}

	TheoryMethodShouldUseAllParameters = &report.Descriptor{
		ID:       "xUnit1026",
		Title:    "Theory methods should use all of their parameters",
		Message:  "Theory method '{0}' on test class '{1}' does not use parameter '{2}'.",
		Severity: report.Warning,
		Category: CategoryUsage,
		HelpURL:  helpBase + "xUnit1026",
		Flag:     config.UnusedTheoryParameter,
	}

	AssertCollectionContainsShouldNotUseBoolCheck = &report.Descriptor{
		ID:       "xUnit2017",
		Title:    "Do not use Contains() to check if a value exists in a collection",
		Message:  "Do not use Contains() to check if a value exists in a collection.",
		Severity: report.Warning,
		Category: CategoryAssertions,
		HelpURL:  helpBase + "xUnit2017",
		Flag:     config.ContainsAssertion,
	}

	TestCaseMustBeLongLivedMarshalByRefObject = &report.Descriptor{
		ID:       "xUnit3000",
		Title:    "Test case classes must derive directly or indirectly from Xunit.LongLivedMarshalByRefObject",
		Message:  "Test case class {0} must derive directly or indirectly from {1}",
		Severity: report.Error,
		Category: CategoryExtensibility,
		HelpURL:  helpBase + "xUnit3000",
		Flag:     config.TestCaseBase,
	}
)

// Descriptors returns the descriptors of all rules, ordered by rule ID.
func Descriptors() []*report.Descriptor {
	all := All()
	ds := make([]*report.Descriptor, len(all))

	for i, r := range all {
		ds[i] = r.Descriptor()
	}

	return ds
}

// Lookup returns the descriptor of the rule with the given ID.
func Lookup(id string) (*report.Descriptor, bool) {
	for _, r := range All() {
		if d := r.Descriptor(); strings.EqualFold(d.ID, id) {
			return d, true
		}
	}

	return nil, false
}
