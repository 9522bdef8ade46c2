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

package hierarchy_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/xunitguard/internal/hierarchy"

	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/testsource"
)

func typeNames(ts []*semantic.Type) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}

	return names
}

func TestWalk(t *testing.T) {
	t.Parallel()

	const src = `
using System;
using System.Collections.Generic;

class A : ICollection<int> { }
class B : A, IList<int>, IDisposable { }
class C : B { }
`

	c := testsource.Compile(t, src)
	ch := Walk(c, testsource.Type(t, c, "C").Self())

	if got, want := typeNames(ch.Classes), []string{"C", "B", "A", "System.Object"}; !slices.Equal(got, want) {
		t.Errorf("Got classes %v, expected %v", got, want)
	}

	got := typeNames(ch.Contracts)
	for _, want := range []string{
		"System.Collections.Generic.ICollection<System.Int32>",
		"System.Collections.Generic.IEnumerable<System.Int32>",
		"System.Collections.IEnumerable",
		"System.Collections.Generic.IList<System.Int32>",
		"System.IDisposable",
	} {
		if n := countOf(got, want); n != 1 {
			t.Errorf("Got contract %s %d times, expected once in %v", want, n, got)
		}
	}

	if !ch.Derives(testsource.Type(t, c, "A")) {
		t.Error("Expected C to derive from A")
	}

	if ch.Derives(testsource.Type(t, c, "System.IDisposable")) {
		t.Error("Expected contracts not to count as base classes")
	}

	if ch.Contract(testsource.Type(t, c, "A")) != nil {
		t.Error("Expected classes not to count as contracts")
	}
}

func countOf(names []string, name string) int {
	n := 0
	for _, s := range names {
		if s == name {
			n++
		}
	}

	return n
}

func TestWalkCycle(t *testing.T) {
	t.Parallel()

	const src = `
class X : Y { }
class Y : X { }
`

	c := testsource.Compile(t, src)
	ch := Walk(c, testsource.Type(t, c, "X").Self())

	if got, want := typeNames(ch.Classes), []string{"X", "Y"}; !slices.Equal(got, want) {
		t.Errorf("Got classes %v, expected %v", got, want)
	}
}

func TestWalkGeneric(t *testing.T) {
	t.Parallel()

	const src = `
using System.Collections.Generic;

class Base<T> : ICollection<T> { }
class Strings : Base<string> { }
`

	c := testsource.Compile(t, src)
	collection := c.Lookup("System.Collections.Generic.ICollection", 1)

	contract := Walk(c, testsource.Type(t, c, "Strings").Self()).Contract(collection)
	if contract == nil {
		t.Fatal("Expected ICollection contract")
	}

	if got, want := contract.String(), "System.Collections.Generic.ICollection<System.String>"; got != want {
		t.Errorf("Got contract %s, expected %s", got, want)
	}
}

func TestSatisfies(t *testing.T) {
	t.Parallel()

	const src = `
using System;

class Resource : IDisposable { public void Dispose() { } }
class Derived : Resource { }
class Plain { }
`

	c := testsource.Compile(t, src)
	disposable := testsource.Type(t, c, "System.IDisposable")
	resource := testsource.Type(t, c, "Resource")

	tests := []struct {
		name    string
		typ     string
		satisfy bool
		derives bool
	}{
		{"direct", "Resource", true, true},
		{"inherited", "Derived", true, true},
		{"unrelated", "Plain", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := testsource.Type(t, c, tt.typ).Self()

			if got := Satisfies(c, typ, disposable); got != tt.satisfy {
				t.Errorf("Satisfies(%s, IDisposable) = %t, expected %t", tt.typ, got, tt.satisfy)
			}

			if got := DerivesFrom(c, typ, resource); got != tt.derives {
				t.Errorf("DerivesFrom(%s, Resource) = %t, expected %t", tt.typ, got, tt.derives)
			}

			if Satisfies(c, typ, nil) || DerivesFrom(c, typ, nil) {
				t.Error("Expected nil definitions never to match")
			}
		})
	}
}

func TestFindImplementation(t *testing.T) {
	t.Parallel()

	const src = `
using System.Collections.Generic;

class Direct : ICollection<string>
{
    public bool Contains(string item) => true;
}

class BaseContains
{
    public bool Contains(string item) => true;
}

class Inherited : BaseContains, ICollection<string> { }

class Explicit : ICollection<string>
{
    bool ICollection<string>.Contains(string item) => true;
}

class Mismatch : ICollection<string>
{
    public bool Contains(object item) => true;
}

class Hidden : ICollection<string>
{
    internal bool Contains(string item) => true;
}
`

	c := testsource.Compile(t, src)
	collection := c.Lookup("System.Collections.Generic.ICollection", 1)
	if collection == nil {
		t.Fatal("Can't find ICollection<T>")
	}

	member := collection.MethodsNamed("Contains")[0]

	tests := []struct {
		typ   string
		owner string
	}{
		{"Direct", "Direct"},
		{"Inherited", "BaseContains"},
		{"Explicit", ""},
		{"Mismatch", ""},
		{"Hidden", ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			t.Parallel()

			typ := testsource.Type(t, c, tt.typ).Self()
			contract := Walk(c, typ).Contract(collection)

			m := FindImplementation(c, typ, member, contract)
			switch {
			case tt.owner == "" && m != nil:
				t.Errorf("Expected no implementation, got %s", m)

			case tt.owner != "" && m == nil:
				t.Errorf("Expected implementation in %s, got none", tt.owner)

			case tt.owner != "" && m.Owner.Name != tt.owner:
				t.Errorf("Got implementation in %s, expected %s", m.Owner.Name, tt.owner)
			}
		})
	}
}

func TestOverridden(t *testing.T) {
	t.Parallel()

	const src = `
class A
{
    public virtual void Run(int x) { }
    public virtual void Other() { }
}

class B : A { }

class C : B
{
    public override void Run(int x) { }
    public void Other() { }
}

class G<T>
{
    public virtual void Take(T item) { }
}

class H : G<string>
{
    public override void Take(string item) { }
}
`

	c := testsource.Compile(t, src)

	tests := []struct {
		typ, method string
		owner       string
	}{
		{"C", "Run", "A"},
		{"C", "Other", ""},
		{"H", "Take", "G"},
		{"A", "Run", ""},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"."+tt.method, func(t *testing.T) {
			t.Parallel()

			m := testsource.Type(t, c, tt.typ).MethodsNamed(tt.method)[0]

			base := Overridden(c, m)
			switch {
			case tt.owner == "" && base != nil:
				t.Errorf("Expected no overridden method, got %s", base)

			case tt.owner != "" && base == nil:
				t.Errorf("Expected overridden method in %s, got none", tt.owner)

			case tt.owner != "" && base.Owner.Name != tt.owner:
				t.Errorf("Got overridden method in %s, expected %s", base.Owner.Name, tt.owner)
			}
		})
	}
}
