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
	"fillmore-labs.com/xunitguard/internal/hierarchy"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/semantic"
)

// publicNonTestMethod reports public methods of test classes that are not marked as tests.
type publicNonTestMethod struct{}

func (publicNonTestMethod) Descriptor() *report.Descriptor { return PublicMethodShouldBeMarkedAsTest }

func (publicNonTestMethod) CheckType(_ context.Context, p *Pass, t *semantic.TypeDef) {
	if t.Kind != semantic.KindClass && t.Kind != semantic.KindRecord {
		return
	}

	hasTests := false
	for _, m := range t.Methods {
		if p.Classifier.IsTest(m.Attributes) {
			hasTests = true

			break
		}
	}

	if !hasTests {
		return
	}

	var lifecycle map[*semantic.Method]bool

	for _, m := range t.Methods {
		if !m.Public() || m.Abstract() || m.Explicit || p.Classifier.IsTest(m.Attributes) {
			continue
		}

		if lifecycle == nil {
			lifecycle = lifecycleImplementations(p, t)
		}

		if implementsLifecycle(p, m, lifecycle) || p.Classifier.Suppressed(m.Attributes) {
			continue
		}

		kind := attribute.Fact
		if len(m.Params) > 0 {
			kind = attribute.Theory
		}

		p.Report(PublicMethodShouldBeMarkedAsTest, m.NameNode, nil, m.Name, t.Name, kind.String())
	}
}

// lifecycleImplementations returns the methods of the class chain of t implementing members
// of a lifecycle contract of t.
func lifecycleImplementations(p *Pass, t *semantic.TypeDef) map[*semantic.Method]bool {
	self := t.Self()
	impls := make(map[*semantic.Method]bool)

	for _, contract := range hierarchy.Walk(p, self).Contracts {
		if contract.Def == nil || p.Classifier.Classify(contract.Def) != attribute.Lifecycle {
			continue
		}

		want := semantic.BindType(contract)
		for _, member := range contract.Def.Methods {
			impl := hierarchy.FindImplementation(p, self, member, contract)
			if impl == nil || !hierarchy.SameReturn(impl, ownerBinding(p, self, impl), member, want) {
				continue
			}

			impls[impl] = true
		}
	}

	return impls
}

// implementsLifecycle reports whether m, or a method it overrides, implements a lifecycle member.
func implementsLifecycle(p *Pass, m *semantic.Method, impls map[*semantic.Method]bool) bool {
	seen := make(map[*semantic.Method]bool)
	for cur := m; cur != nil && !seen[cur]; cur = hierarchy.Overridden(p, cur) {
		if impls[cur] {
			return true
		}

		seen[cur] = true
	}

	return false
}

// ownerBinding returns the substitution of the declaring type of m as seen from t.
func ownerBinding(p *Pass, t *semantic.Type, m *semantic.Method) semantic.Substitution {
	for _, c := range hierarchy.Walk(p, t).Classes {
		if c.Def == m.Owner {
			return semantic.BindType(c)
		}
	}

	return nil
}
