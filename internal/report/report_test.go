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

package report_test

import (
	"bytes"
	"encoding/json"
	"go/token"
	"testing"

	"github.com/fatih/color"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/xunitguard/internal/report"
)

var testRule = &Descriptor{
	ID:       "xUnit9999",
	Title:    "Test rule",
	Message:  "Method '{0}' on test class '{1}' is {0}",
	Severity: Error,
	Category: "Usage",
	HelpURL:  "https://example.com/xUnit9999",
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"none", nil, "Method '{0}' on test class '{1}' is {0}"},
		{"all", []string{"M", "C"}, "Method 'M' on test class 'C' is M"},
		{"partial", []string{"M"}, "Method 'M' on test class '{1}' is M"},
		{"literal_braces", []string{"{1}", "C"}, "Method '{1}' on test class 'C' is {1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := testRule.Format(tt.args...); got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}

func diagnostics(tb testing.TB) (*token.FileSet, []Diagnostic) {
	tb.Helper()

	const src = "class T\n{\n    void M() { }\n}\n"

	fset := token.NewFileSet()
	tok := fset.AddFile("test.cs", -1, len(src))
	tok.SetLinesForContent([]byte(src))

	warning := *testRule
	warning.Severity = Warning

	return fset, []Diagnostic{
		{
			Rule:    testRule,
			Pos:     tok.Pos(6),
			End:     tok.Pos(7),
			Message: testRule.Format("M", "T"),
			SuggestedFixes: []analysis.SuggestedFix{{
				Message:   "Rename",
				TextEdits: []analysis.TextEdit{{Pos: tok.Pos(6), End: tok.Pos(7), NewText: []byte("U")}},
			}},
		},
		{Rule: &warning, Pos: tok.Pos(19), End: tok.Pos(20), Message: "plain"},
	}
}

// TestWriteText is not parallel, it disables color output globally.
func TestWriteText(t *testing.T) {
	color.NoColor = true

	fset, diags := diagnostics(t)

	var buf bytes.Buffer
	if err := WriteText(&buf, fset, diags); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	const want = "test.cs:1:7: error xUnit9999: Method 'M' on test class 'T' is M\n" +
		"test.cs:3:10: warning xUnit9999: plain\n"

	if got := buf.String(); got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	fset, diags := diagnostics(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, fset, diags); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("Got %d diagnostics, expected 2", out.Count)
	}

	d := out.Diagnostics[0]
	if d.Rule != "xUnit9999" || d.Severity != "error" || d.Category != "Usage" {
		t.Errorf("Unexpected diagnostic %+v", d)
	}

	if d.Location.StartLine != 1 || d.Location.StartCol != 7 || d.Location.EndCol != 8 {
		t.Errorf("Unexpected location %+v", d.Location)
	}

	if len(d.Fixes) != 1 || d.Fixes[0].Title != "Rename" || len(d.Fixes[0].Edits) != 1 || d.Fixes[0].Edits[0].NewText != "U" {
		t.Errorf("Unexpected fixes %+v", d.Fixes)
	}

	if w := out.Diagnostics[1]; w.Severity != "warning" || w.Fixes != nil {
		t.Errorf("Unexpected diagnostic %+v", w)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, token.NewFileSet(), nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	const want = "{\n  \"diagnostics\": [],\n  \"count\": 0\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}
