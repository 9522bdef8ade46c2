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
	"context"
	"fmt"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/xunitguard/internal/config"
	"fillmore-labs.com/xunitguard/internal/fix"
	"fillmore-labs.com/xunitguard/internal/hierarchy"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/semantic"
)

// testCaseBase reports test case classes not deriving from the long-lived base class.
type testCaseBase struct{}

func (testCaseBase) Descriptor() *report.Descriptor { return TestCaseMustBeLongLivedMarshalByRefObject }

func (testCaseBase) CheckType(_ context.Context, p *Pass, t *semantic.TypeDef) {
	if t.Kind != semantic.KindClass || p.Known.TestCase == nil || p.Known.LongLivedBase == nil {
		return
	}

	chain := hierarchy.Walk(p, t.Self())
	if chain.Contract(p.Known.TestCase) == nil || chain.Derives(p.Known.LongLivedBase) {
		return
	}

	var fixes []analysis.SuggestedFix
	if p.Behavior.Enabled(config.SuggestFixes) {
		if edit, err := fix.RequireBase(p.Compilation, t, p.Known.LongLivedBase); err == nil && !edit.Empty() {
			fixes = []analysis.SuggestedFix{{
				Message:   fmt.Sprintf("Set base type to %s", p.Known.LongLivedBase.Name),
				TextEdits: edit.TextEdits,
			}}
		}
	}

	p.Report(TestCaseMustBeLongLivedMarshalByRefObject, t.NameNode(), fixes, t.Name, p.Known.LongLivedBase.FullName())
}
