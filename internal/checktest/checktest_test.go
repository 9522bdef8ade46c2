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

package checktest

import (
	"testing"

	"golang.org/x/tools/go/analysis"

	xunitguard "fillmore-labs.com/xunitguard/analyzer"
	"fillmore-labs.com/xunitguard/internal/report"
)

func TestRemaining(t *testing.T) {
	t.Parallel()

	var (
		fixable = &report.Descriptor{ID: "xUnit3000"}
		plain   = &report.Descriptor{ID: "xUnit1013"}
		fixes   = []analysis.SuggestedFix{{Message: "Set base type"}}
	)

	before := []xunitguard.Diagnostic{
		{Rule: fixable, SuggestedFixes: fixes},
		{Rule: plain},
	}

	tests := []struct {
		name  string
		after []xunitguard.Diagnostic
		want  int
	}{
		{"resolved", nil, 0},
		{"unrelated", []xunitguard.Diagnostic{{Rule: plain}}, 0},
		{"still_reported", []xunitguard.Diagnostic{{Rule: fixable}, {Rule: plain}}, 1},
		{"reported_with_empty_fix", []xunitguard.Diagnostic{{Rule: fixable}, {Rule: fixable, SuggestedFixes: fixes}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := remaining(before, tt.after); len(got) != tt.want {
				t.Errorf("Got %d remaining diagnostics, expected %d", len(got), tt.want)
			}
		})
	}

	if got := remaining([]xunitguard.Diagnostic{{Rule: plain}}, []xunitguard.Diagnostic{{Rule: plain}}); len(got) != 0 {
		t.Errorf("Expected rules without fixes to be ignored, got %d", len(got))
	}
}
