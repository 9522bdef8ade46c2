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

package config

// RuleFlags selects individual inspection rules.
type RuleFlags uint16

const (
	// FactWithParameters reports Fact methods that declare parameters.
	FactWithParameters RuleFlags = 1 << iota

	// MultipleTestKinds reports methods carrying more than one Fact or Theory attribute.
	MultipleTestKinds

	// FactWithData reports Fact methods that carry test data.
	FactWithData

	// TheoryWithoutParameters reports Theory methods without parameters.
	TheoryWithoutParameters

	// DataWithoutTheory reports test data on methods that are not Theories.
	DataWithoutTheory

	// PublicNonTestMethod reports public methods of test classes that are not tests.
	PublicNonTestMethod

	// UnusedTheoryParameter reports Theory parameters that are never read.
	UnusedTheoryParameter

	// ContainsAssertion reports Assert.True/False over collection Contains calls.
	ContainsAssertion

	// TestCaseBase reports test case classes not deriving from the marshalling base class.
	TestCaseBase

	// AllRules enables every rule.
	AllRules = FactWithParameters | MultipleTestKinds | FactWithData | TheoryWithoutParameters |
		DataWithoutTheory | PublicNonTestMethod | UnusedTheoryParameter | ContainsAssertion | TestCaseBase
)

// Config represents behavior options of the inspector.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota

	// SuggestFixes attaches suggested rewrites to diagnostics that support them.
	SuggestFixes
)
