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

package usage_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/xunitguard/internal/testsource"
	. "fillmore-labs.com/xunitguard/internal/usage"
)

func TestTrack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		unused []string
	}{
		{
			name:   "not_referenced",
			src:    `void M(int unused) { }`,
			unused: []string{"unused"},
		},
		{
			name:   "write_only",
			src:    `void M(int x) { x = 3; int.TryParse("1", out x); }`,
			unused: []string{"x"},
		},
		{
			name: "read",
			src:  `void M(int used) { Console.WriteLine(used); }`,
		},
		{
			name:   "declaration_order",
			src:    `void M(int foo, int bar, int baz) { Console.WriteLine(bar); baz = 3; }`,
			unused: []string{"foo", "baz"},
		},
		{
			name: "expression_body",
			src:  `void M(int used) => Assert.Equal(used, 2 + 2);`,
		},
		{
			name:   "expression_body_unused",
			src:    `void M(int unused) => Assert.Equal(5, 2 + 2);`,
			unused: []string{"unused"},
		},
		{
			name: "compound_assignment",
			src:  `void M(int x) { x += 1; }`,
		},
		{
			name: "increment",
			src:  `void M(int x) { x++; }`,
		},
		{
			name: "ref_argument",
			src:  `void M(int x) { N(ref x); } void N(ref int x) { }`,
		},
		{
			name: "parenthesized_target",
			src:  `void M(int x) { (x) = 1; }`,
			unused: []string{"x"},
		},
		{
			name:   "deconstruction",
			src:    `void M(int a, int b) { (a, (b, _)) = (1, (2, 3)); }`,
			unused: []string{"a", "b"},
		},
		{
			name: "assigned_from_itself",
			src:  `void M(int x) { x = x + 1; }`,
		},
		{
			name: "receiver",
			src:  `void M(string s) { var n = s.Length; }`,
		},
		{
			name:   "member_name",
			src:    `void M(int Length) { var n = "abc".Length; }`,
			unused: []string{"Length"},
		},
		{
			name:   "named_argument",
			src:    `void M(int value) { N(value: 1); } void N(int value) { }`,
			unused: []string{"value"},
		},
		{
			name:   "nameof",
			src:    `void M(int value) { Console.WriteLine(nameof(value)); }`,
			unused: []string{"value"},
		},
		{
			name:   "lambda_shadowing",
			src:    `void M(int value) { Func<int, int> f = value => value + 1; }`,
			unused: []string{"value"},
		},
		{
			name:   "lambda_list_shadowing",
			src:    `void M(int value) { Func<int, int, int> f = (value, y) => value + y; }`,
			unused: []string{"value"},
		},
		{
			name: "lambda_capture",
			src:  `void M(int value) { Func<int, int> f = x => x + value; }`,
		},
		{
			name:   "local_function_shadowing",
			src:    `void M(int value) { int L(int value) => value; }`,
			unused: []string{"value"},
		},
		{
			name: "local_function_capture",
			src:  `void M(int value) { int L() => value; }`,
		},
		{
			name:   "object_initializer",
			src:    `void M(int Count) { var l = new Holder { Count = 1 }; } class Holder { public int Count; }`,
			unused: []string{"Count"},
		},
		{
			name: "return_value",
			src:  `int M(int x) { return x; }`,
		},
		{
			name: "interpolation",
			src:  `string M(int x) { return $"{x}"; }`,
		},
		{
			name:   "foreach_variable",
			src:    `void M(int x, int[] xs) { foreach (var y in xs) { y.ToString(); } }`,
			unused: []string{"x"},
		},
		{
			name:   "no_body",
			src:    `extern void M(int x);`,
			unused: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, m := testsource.Method(t, tt.src)

			var unused []string
			for _, p := range Track(t.Context(), m).Unused() {
				unused = append(unused, p.Name)
			}

			if !slices.Equal(unused, tt.unused) {
				t.Errorf("Got unused %v, want %v", unused, tt.unused)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	_, m := testsource.Method(t, `void M(int r, int w, int rw, int n) { Console.WriteLine(r); w = 1; rw = rw + 1; }`)

	result := Track(t.Context(), m)

	tests := []struct {
		param         int
		read, written bool
	}{
		{0, true, false},
		{1, false, true},
		{2, true, true},
		{3, false, false},
	}

	for _, tt := range tests {
		p := m.Params[tt.param]
		if got := result.Of(p); got.Read() != tt.read || got.Written() != tt.written {
			t.Errorf("Usage of %s: read=%v written=%v, want read=%v written=%v",
				p.Name, got.Read(), got.Written(), tt.read, tt.written)
		}
	}

	if got := result.Of(nil); got != UsageNone {
		t.Errorf("Usage of unknown parameter = %v, want %v", got, UsageNone)
	}
}
