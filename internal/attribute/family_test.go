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

package attribute_test

import (
	"testing"

	. "fillmore-labs.com/xunitguard/internal/attribute"

	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/testsource"
)

const familySource = `
using System;
using Xunit;
using Xunit.Sdk;

namespace Custom
{
    class DerivedFact : FactAttribute { }
    class DerivedTheory : TheoryAttribute { }
    class CustomData : DataAttribute { }
    class Unrelated : Attribute { }

    class IgnoreXunitAnalyzersRule1013Attribute : Attribute { }

    [IgnoreXunitAnalyzersRule1013]
    class CustomTestMarker : Attribute { }

    class DerivedMarker : CustomTestMarker { }
}
`

func TestClassify(t *testing.T) {
	t.Parallel()

	c := testsource.Compile(t, familySource)
	cl := NewClassifier(c)

	tests := []struct {
		name string
		want Family
	}{
		{"Xunit.FactAttribute", Fact},
		{"Xunit.TheoryAttribute", Theory},
		{"Xunit.InlineDataAttribute", DataProvider},
		{"Xunit.MemberDataAttribute", DataProvider},
		{"Custom.DerivedFact", Fact},
		{"Custom.DerivedTheory", Theory},
		{"Custom.CustomData", DataProvider},
		{"Custom.Unrelated", None},
		{"Custom.IgnoreXunitAnalyzersRule1013Attribute", RuleSuppression},
		{"System.IDisposable", Lifecycle},
		{"System.IAsyncDisposable", Lifecycle},
		{"Xunit.IAsyncLifetime", Lifecycle},
		{"Xunit.TraitAttribute", None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cl.Classify(testsource.Type(t, c, tt.name)); got != tt.want {
				t.Errorf("Classify(%s) = %v, expected %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassifyMissingRoots(t *testing.T) {
	t.Parallel()

	c := testsource.Compile(t, familySource)
	cl := NewClassifier(emptyLookup{})

	if got := cl.Classify(testsource.Type(t, c, "Xunit.FactAttribute")); got != None {
		t.Errorf("Expected None without well-known types, got %v", got)
	}
}

type emptyLookup struct{}

func (emptyLookup) Lookup(string, int) *semantic.TypeDef { return nil }

func TestAttributes(t *testing.T) {
	t.Parallel()

	const src = `
using Xunit;
using Custom;

class Tests
{
    [Fact, DerivedTheory, InlineData(1), Trait("a", "b")]
    public void Mixed(int x) { }

    [Trait("a", "b")]
    public void NoTest() { }

    [CustomTestMarker]
    public void Marked() { }

    [DerivedMarker]
    public void DerivedMarked() { }
}
`

	c := testsource.Compile(t, familySource, src)
	cl := NewClassifier(c)
	tests := testsource.Type(t, c, "Tests")

	method := func(name string) []*semantic.Attribute {
		t.Helper()

		ms := tests.MethodsNamed(name)
		if len(ms) != 1 {
			t.Fatalf("Can't find method %s", name)
		}

		return ms[0].Attributes
	}

	mixed := method("Mixed")

	if got := cl.Count(mixed, Fact); got != 1 {
		t.Errorf("Got %d Fact attributes, expected 1", got)
	}

	if got := cl.Count(mixed, Theory); got != 1 {
		t.Errorf("Got %d Theory attributes, expected 1", got)
	}

	if !cl.Has(mixed, DataProvider) {
		t.Error("Expected a data provider")
	}

	if !cl.IsTest(mixed) {
		t.Error("Expected Mixed to be a test")
	}

	if cl.IsTest(method("NoTest")) {
		t.Error("Expected NoTest not to be a test")
	}

	if !cl.Suppressed(method("Marked")) {
		t.Error("Expected Marked to be suppressed")
	}

	if cl.Suppressed(method("DerivedMarked")) {
		t.Error("Expected suppression not to be inherited")
	}

	if cl.Suppressed(mixed) {
		t.Error("Expected Mixed not to be suppressed")
	}
}
