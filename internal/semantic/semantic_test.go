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

package semantic_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/xunitguard/internal/semantic"

	"fillmore-labs.com/xunitguard/internal/syntax"
	"fillmore-labs.com/xunitguard/internal/testsource"
)

func TestDeclarations(t *testing.T) {
	t.Parallel()

	const first = `
using System;
using Fact2 = Xunit.FactAttribute;
using Abs = Xunit.Abstractions;

namespace A.B;

public partial class P : IDisposable
{
    [Fact2]
    public void Test() { }

    class Inner { }
}

class Aliased : Abs.ITestCase { }
class Qualified : Abs::ITestCase { }

struct S { }
interface I { }
enum E { One }
record R(int X);
`

	const second = `
namespace A.B
{
    partial class P
    {
        public void Dispose() { }
    }
}
`

	c := testsource.Compile(t, first, second)

	p := testsource.Type(t, c, "A.B.P")
	if len(p.Decls) != 2 {
		t.Errorf("Got %d declarations of P, expected 2", len(p.Decls))
	}

	if !p.Modifiers.Has(Public) {
		t.Error("Expected P to be public")
	}

	if got := methodNames(p.Methods); !slices.Equal(got, []string{"Test", "Dispose"}) {
		t.Errorf("Got methods %v, expected [Test Dispose]", got)
	}

	if len(p.Interfaces) != 1 || p.Interfaces[0].String() != "System.IDisposable" {
		t.Errorf("Got interfaces %v, expected [System.IDisposable]", p.Interfaces)
	}

	if p.Base == nil || p.Base.String() != "System.Object" {
		t.Errorf("Got base %v, expected System.Object", p.Base)
	}

	if attrs := p.Methods[0].Attributes; len(attrs) != 1 || attrs[0].Class == nil || attrs[0].Class.FullName() != "Xunit.FactAttribute" {
		t.Errorf("Expected alias Fact2 to resolve to Xunit.FactAttribute, got %v", attrs)
	}

	inner := p.Nested("Inner", 0)
	if inner == nil || inner.FullName() != "A.B.P.Inner" || inner.Outer != p {
		t.Errorf("Unexpected nested type %v", inner)
	}

	for _, name := range []string{"A.B.Aliased", "A.B.Qualified"} {
		def := testsource.Type(t, c, name)
		if len(def.Interfaces) != 1 || def.Interfaces[0].String() != "Xunit.Abstractions.ITestCase" {
			t.Errorf("Got interfaces %v for %s, expected [Xunit.Abstractions.ITestCase]", def.Interfaces, name)
		}
	}

	for name, kind := range map[string]Kind{
		"A.B.P": KindClass,
		"A.B.S": KindStruct,
		"A.B.I": KindInterface,
		"A.B.E": KindEnum,
		"A.B.R": KindRecord,
	} {
		if got := testsource.Type(t, c, name).Kind; got != kind {
			t.Errorf("Got kind %v for %s, expected %v", got, name, kind)
		}
	}

	if _, err := c.MustLookup("A.B.Missing", 0); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Expected ErrUnresolved, got %v", err)
	}

	if got := c.Sources()[0]; got != p {
		t.Errorf("Expected P to be the first source type, got %v", got)
	}
}

func methodNames(ms []*Method) []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}

	return names
}

func TestParameters(t *testing.T) {
	t.Parallel()

	_, m := testsource.Method(t, `
public static void Run(int a, ref string b, out bool c, int d = 1, params object[] rest) { c = true; }
`)

	if !m.Public() || !m.Static() || m.Abstract() {
		t.Errorf("Unexpected modifiers %v", m.Modifiers)
	}

	tests := []struct {
		name, typ, modifier string
		def, params         bool
	}{
		{"a", "System.Int32", "", false, false},
		{"b", "System.String", "ref", false, false},
		{"c", "System.Boolean", "out", false, false},
		{"d", "System.Int32", "", true, false},
		{"rest", "System.Object[]", "", false, true},
	}

	if len(m.Params) != len(tests) {
		t.Fatalf("Got %d parameters, expected %d", len(m.Params), len(tests))
	}

	for i, tt := range tests {
		p := m.Params[i]
		if p.Name != tt.name || p.Type.String() != tt.typ || p.Modifier != tt.modifier ||
			p.Default != tt.def || p.Params != tt.params || p.Ordinal != i || p.Method != m {
			t.Errorf("Got parameter %s %s %s (default %t, params %t), expected %+v",
				p.Modifier, p.Type, p.Name, p.Default, p.Params, tt)
		}
	}
}

const methodSource = `
void Run(List<int> list, string[] words, bool flag)
{
    var made = new List<string>();
    var first = words[0];
    var array = list.ToArray();
    var boxed = (object)1;
    var found = list.Contains(1);
    var linq = words.Contains("x");
    var head = list.First();
    var count = list.Count;
    foreach (var item in list)
    {
        Use(item);
    }

    Assert.True(flag);
    Assert.True(flag, "message");
    Helper(1);
    Unknown.Call();
    Use(nameof(list));
}

void Use(object value) { }

int Helper(int x) => x;
`

func find(tb testing.TB, root *syntax.Node, kind, text string) *syntax.Node {
	tb.Helper()

	for n := range root.Preorder() {
		if n.Kind == kind && n.Text() == text {
			return n
		}
	}

	tb.Fatalf("Can't find %s %q", kind, text)

	return nil
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	c, _ := testsource.Method(t, methodSource)
	root := c.Files()[0].Root

	tests := []struct {
		kind, text string
		want       string
	}{
		{"object_creation_expression", "new List<string>()", "System.Collections.Generic.List<System.String>"},
		{"element_access_expression", "words[0]", "System.String"},
		{"invocation_expression", "list.ToArray()", "System.Int32[]"},
		{"cast_expression", "(object)1", "System.Object"},
		{"invocation_expression", "list.Contains(1)", "System.Boolean"},
		{"invocation_expression", `words.Contains("x")`, "System.Boolean"},
		{"invocation_expression", "list.First()", "System.Int32"},
		{"member_access_expression", "list.Count", "System.Int32"},
		{"argument", "item", "System.Int32"},
		{"integer_literal", "1", "System.Int32"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			n := find(t, root, tt.kind, tt.text)
			if n.Kind == "argument" {
				n = syntax.ArgumentExpression(n)
			}

			if got := c.TypeOf(n); got == nil || got.String() != tt.want {
				t.Errorf("TypeOf(%s) = %v, expected %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestCallOf(t *testing.T) {
	t.Parallel()

	c, _ := testsource.Method(t, methodSource)
	root := c.Files()[0].Root

	tests := []struct {
		text      string
		owner     string // empty for extension methods
		method    string
		params    int
		extension bool
	}{
		{"list.Contains(1)", "System.Collections.Generic.List<System.Int32>", "Contains", 1, false},
		{`words.Contains("x")`, "", "Contains", 2, true},
		{"Assert.True(flag)", "Xunit.Assert", "True", 1, false},
		{`Assert.True(flag, "message")`, "Xunit.Assert", "True", 2, false},
		{"Helper(1)", testsource.TestClass, "Helper", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			call, ok := c.CallOf(find(t, root, "invocation_expression", tt.text))
			if !ok {
				t.Fatalf("Can't resolve %s", tt.text)
			}

			if call.Method.Name != tt.method || len(call.Method.Params) != tt.params || call.Method.Extension != tt.extension {
				t.Errorf("Got method %s, expected %s with %d parameters", call.Method, tt.method, tt.params)
			}

			switch {
			case tt.owner == "" && call.Owner != nil:
				t.Errorf("Expected no owner, got %s", call.Owner)

			case tt.owner != "" && (call.Owner == nil || call.Owner.String() != tt.owner):
				t.Errorf("Got owner %v, expected %s", call.Owner, tt.owner)
			}
		})
	}

	t.Run("extension receiver", func(t *testing.T) {
		t.Parallel()

		call, _ := c.CallOf(find(t, root, "invocation_expression", `words.Contains("x")`))
		if got := call.Receiver.String(); got != "System.String[]" {
			t.Errorf("Got receiver %s, expected System.String[]", got)
		}

		if got := call.ParamType(0); got == nil || got.String() != "System.Collections.Generic.IEnumerable<System.String>" {
			t.Errorf("Got first parameter type %v, expected IEnumerable<System.String>", got)
		}
	})

	for _, text := range []string{"Unknown.Call()", "nameof(list)"} {
		if _, ok := c.CallOf(find(t, root, "invocation_expression", text)); ok {
			t.Errorf("Expected %s not to resolve", text)
		}
	}
}
