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

package analyzer_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/xunitguard/analyzer"
	"fillmore-labs.com/xunitguard/internal/checktest"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		archive string
		options Option
		fix     bool
	}{
		{
			name:    "FactParameters",
			archive: "fact_parameters.txtar",
			options: WithRules("xUnit1001"),
		},
		{
			name:    "MultipleAttributes",
			archive: "multiple_attributes.txtar",
			options: WithRules("xUnit1002"),
		},
		{
			name:    "FactData",
			archive: "fact_data.txtar",
			options: WithRules("xUnit1005"),
		},
		{
			name:    "TheoryParameters",
			archive: "theory_parameters.txtar",
			options: WithRules("xUnit1006"),
		},
		{
			name:    "DataTheory",
			archive: "data_theory.txtar",
			options: WithRules("xUnit1008"),
		},
		{
			name:    "PublicMethod",
			archive: "public_method.txtar",
			options: WithRules("xUnit1013"),
		},
		{
			name:    "TheoryUsage",
			archive: "theory_usage.txtar",
			options: WithRules("xUnit1026"),
		},
		{
			name:    "Contains",
			archive: "contains.txtar",
			options: WithRules("xUnit2017"),
		},
		{
			name:    "TestCase",
			archive: "test_case.txtar",
			options: WithRules("xUnit3000"),
			fix:     true,
		},
		{
			name:    "TestCaseUsing",
			archive: "test_case_using.txtar",
			options: Options{WithRules("xUnit3000"), WithConcurrency(1)},
			fix:     true,
		},
		{
			name:    "Suppressed",
			archive: "suppressed.txtar",
			options: Options{WithRule("xUnit1026", false), WithLogger(nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join("testdata", tt.archive)
			if tt.fix {
				checktest.RunWithSuggestedFixes(t, path, tt.options)
			} else {
				checktest.Run(t, path, tt.options)
			}
		})
	}
}

const generatedSource = `// <auto-generated/>
public class GeneratedTests
{
    [Xunit.Fact]
    public void TestMethod(int a) { }
}
`

func TestGenerated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		options Option
		want    int
	}{
		{"Header", "Tests.cs", nil, 0},
		{"Suffix", "Tests.g.cs", nil, 0},
		{"Included", "Tests.cs", WithGenerated(true), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := generatedSource
			if tt.file == "Tests.g.cs" {
				src = src[len("// <auto-generated/>\n"):]
			}

			result, err := New(tt.options, WithRules("xUnit1001")).Check(context.Background(),
				[]Source{{Name: tt.file, Src: []byte(src)}})
			if err != nil {
				t.Fatalf("Check failed: %v", err)
			}

			if got := len(result.Diagnostics); got != tt.want {
				t.Errorf("Got %d diagnostics, want %d", got, tt.want)
			}
		})
	}
}

func TestCheckResult(t *testing.T) {
	t.Parallel()

	const src = `using Xunit;

public class Tests
{
    [Fact] public void TestMethod(int a) { }
    public void Helper() { }
}
`

	result, err := New().Check(context.Background(), []Source{{Name: "Tests.cs", Src: []byte(src)}})
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(result.Diagnostics) != 2 {
		t.Fatalf("Got %d diagnostics, want 2: %v", len(result.Diagnostics), result.Diagnostics)
	}

	if d := result.Diagnostics[0]; d.Rule.ID != "xUnit1001" || result.Position(d).Line != 5 {
		t.Errorf("Got first diagnostic %s at %s, want xUnit1001 on line 5", d, result.Position(d))
	}

	if d := result.Diagnostics[1]; d.Rule.ID != "xUnit1013" || d.Rule.Severity != Warning {
		t.Errorf("Got second diagnostic %s, want xUnit1013 warning", d)
	}

	if !result.HasErrors() {
		t.Error("Expected an error severity diagnostic")
	}
}

func TestCheckCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Check(ctx, []Source{{Name: "Tests.cs", Src: []byte("public class Tests { }")}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for _, d := range Rules() {
		if ids[d.ID] {
			t.Errorf("Duplicate rule ID %s", d.ID)
		}

		ids[d.ID] = true

		if d.Title == "" || d.Message == "" || d.HelpURL == "" {
			t.Errorf("Incomplete descriptor %s", d.ID)
		}

		if !KnownRule(d.ID) {
			t.Errorf("Rule %s not known", d.ID)
		}
	}

	if len(ids) != 9 {
		t.Errorf("Got %d rules, want 9", len(ids))
	}
}
