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

	"fillmore-labs.com/xunitguard/internal/attribute"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/usage"
)

// unusedTheoryParameter reports Theory parameters never read in the method body.
type unusedTheoryParameter struct{}

func (unusedTheoryParameter) Descriptor() *report.Descriptor { return TheoryMethodShouldUseAllParameters }

func (unusedTheoryParameter) CheckMethod(ctx context.Context, p *Pass, m *semantic.Method) {
	if m.Body == nil || len(m.Params) == 0 || !p.Classifier.Has(m.Attributes, attribute.Theory) {
		return
	}

	for _, param := range usage.Track(ctx, m).Unused() {
		p.Report(TheoryMethodShouldUseAllParameters, param.NameNode, nil, m.Name, m.Owner.Name, param.Name)
	}
}
