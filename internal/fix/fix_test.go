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

package fix_test

import (
	"errors"
	"go/token"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/xunitguard/internal/fix"

	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/testsource"
)

const longLived = "Xunit.LongLivedMarshalByRefObject"

func rewrite(t *testing.T, c *semantic.Compilation, name string) (Edit, string) {
	t.Helper()

	def := c.Lookup(name, 0)
	if def == nil {
		def = c.Lookup(name, 1)
	}

	if def == nil {
		t.Fatalf("Can't find type %s", name)
	}

	edit, err := RequireBase(c, def, testsource.Type(t, c, longLived))
	if err != nil {
		t.Fatalf("RequireBase(%s) failed: %v", name, err)
	}

	f := c.Files()[0]

	out, err := Apply(f.TokenFile(), f.Src, edit.TextEdits)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	return edit, string(out)
}

func TestRequireBase(t *testing.T) {
	t.Parallel()

	const header = "using System;\nusing Xunit;\nusing Xunit.Abstractions;\n\n"

	tests := []struct {
		name     string
		src      string
		want     string
		baseList []string
	}{
		{
			name:     "no_base_list",
			src:      "class T { }",
			want:     "class T : LongLivedMarshalByRefObject { }",
			baseList: []string{"LongLivedMarshalByRefObject"},
		},
		{
			name:     "type_parameters",
			src:      "class T<U> { }",
			want:     "class T<U> : LongLivedMarshalByRefObject { }",
			baseList: []string{"LongLivedMarshalByRefObject"},
		},
		{
			name:     "replace_class",
			src:      "class T : Exception, ITestCase { }",
			want:     "class T : LongLivedMarshalByRefObject, ITestCase { }",
			baseList: []string{"LongLivedMarshalByRefObject", "ITestCase"},
		},
		{
			name:     "insert_before_contract",
			src:      "class T : ITestCase { }",
			want:     "class T : LongLivedMarshalByRefObject, ITestCase { }",
			baseList: []string{"LongLivedMarshalByRefObject", "ITestCase"},
		},
		{
			name:     "record_parameters",
			src:      "record T(int X);",
			want:     "record T(int X) : LongLivedMarshalByRefObject;",
			baseList: []string{"LongLivedMarshalByRefObject"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := testsource.Compile(t, header+tt.src)

			edit, got := rewrite(t, c, "T")

			if want := header + tt.want; got != want {
				t.Errorf("Got %q, expected %q", got, want)
			}

			if !slices.Equal(edit.NewBaseList, tt.baseList) {
				t.Errorf("Got base list %v, expected %v", edit.NewBaseList, tt.baseList)
			}
		})
	}
}

func TestRequireBaseCompliant(t *testing.T) {
	t.Parallel()

	const src = `
using Xunit;

class Direct : LongLivedMarshalByRefObject { }
class Indirect : Direct { }
`

	c := testsource.Compile(t, src)

	for _, name := range []string{"Direct", "Indirect"} {
		edit, got := rewrite(t, c, name)

		if !edit.Empty() {
			t.Errorf("Expected no edit for %s, got %v", name, edit.NewBaseList)
		}

		if got != src {
			t.Errorf("Expected %s to stay unchanged, got %q", name, got)
		}
	}
}

func TestRequireBaseNotApplicable(t *testing.T) {
	t.Parallel()

	const src = `
using Xunit.Abstractions;

interface IContract : ITestCase { }
struct Value : ITestCase { }
`

	c := testsource.Compile(t, src)
	required := testsource.Type(t, c, longLived)

	for _, name := range []string{"IContract", "Value"} {
		if _, err := RequireBase(c, testsource.Type(t, c, name), required); !errors.Is(err, ErrNotApplicable) {
			t.Errorf("Expected ErrNotApplicable for %s, got %v", name, err)
		}
	}

	if _, err := RequireBase(c, testsource.Type(t, c, "Value"), nil); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Expected ErrNotApplicable without required type, got %v", err)
	}
}

func TestShortestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"imported", "using Xunit;\nclass T { }", "LongLivedMarshalByRefObject"},
		{"qualified", "class T { }", longLived},
		{"alias", "using LL = Xunit.LongLivedMarshalByRefObject;\nclass T { }", "LL"},
		{
			"shadowed",
			"using Xunit;\nnamespace N { class LongLivedMarshalByRefObject { } class T { } }",
			longLived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := testsource.Compile(t, tt.src)

			typeName := "T"
			if tt.name == "shadowed" {
				typeName = "N.T"
			}

			got, err := ShortestName(c, testsource.Type(t, c, longLived), testsource.Type(t, c, typeName).Decl())
			if err != nil {
				t.Fatalf("ShortestName failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestShortestNameGeneric(t *testing.T) {
	t.Parallel()

	c := testsource.Compile(t, "class T { }")
	list := c.Lookup("System.Collections.Generic.List", 1)

	if _, err := ShortestName(c, list, testsource.Type(t, c, "T").Decl()); !errors.Is(err, ErrNotApplicable) {
		t.Errorf("Expected ErrNotApplicable for generic type, got %v", err)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	const src = "class T : Base { }"

	fset := token.NewFileSet()
	tok := fset.AddFile("test.cs", -1, len(src))

	edit := func(start, end int, text string) analysis.TextEdit {
		return analysis.TextEdit{Pos: tok.Pos(start), End: tok.Pos(end), NewText: []byte(text)}
	}

	tests := []struct {
		name    string
		edits   []analysis.TextEdit
		want    string
		wantErr error
	}{
		{"none", nil, src, nil},
		{"replace", []analysis.TextEdit{edit(10, 14, "Other")}, "class T : Other { }", nil},
		{"insert", []analysis.TextEdit{edit(10, 10, "First, ")}, "class T : First, Base { }", nil},
		{"unordered", []analysis.TextEdit{edit(15, 18, "{}"), edit(6, 7, "U")}, "class U : Base {}", nil},
		{"duplicate", []analysis.TextEdit{edit(10, 14, "Other"), edit(10, 14, "Other")}, "class T : Other { }", nil},
		{"overlap", []analysis.TextEdit{edit(6, 12, "X"), edit(10, 14, "Y")}, "", ErrOverlap},
		{"conflicting_inserts", []analysis.TextEdit{edit(10, 10, "A, "), edit(10, 10, "B, ")}, "", ErrOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(tok, []byte(src), tt.edits)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Got error %v, expected %v", err, tt.wantErr)
			}

			if err == nil && string(got) != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
