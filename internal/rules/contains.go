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

	"fillmore-labs.com/xunitguard/internal/hierarchy"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// containsAssertion reports boolean assertions over a Contains check.
type containsAssertion struct{}

func (containsAssertion) Descriptor() *report.Descriptor {
	return AssertCollectionContainsShouldNotUseBoolCheck
}

func (containsAssertion) CheckInvocation(_ context.Context, p *Pass, inv *syntax.Node) {
	if p.Known.Assert == nil {
		return
	}

	assertion, ok := p.CallOf(inv)
	if !ok || assertion.Method.Owner != p.Known.Assert || len(assertion.Args) != 1 {
		return
	}

	switch assertion.Method.Name {
	case "True", "False":
	default:
		return
	}

	inner := syntax.Unparen(syntax.ArgumentExpression(assertion.Args[0]))
	if inner == nil || inner.Kind != "invocation_expression" {
		return
	}

	call, ok := p.CallOf(inner)
	if !ok || call.Method.Name != "Contains" || len(call.Args) < 1 || len(call.Args) > 2 {
		return
	}

	if !isLinqContains(p, call) && !isCollectionContains(p, call) {
		return
	}

	p.Report(AssertCollectionContainsShouldNotUseBoolCheck, inv, nil)
}

// isLinqContains reports whether call is the sequence membership test of System.Linq.
func isLinqContains(p *Pass, call semantic.Call) bool {
	return call.Method.Extension && p.Known.Enumerable != nil && call.Method.Owner == p.Known.Enumerable
}

// isCollectionContains reports whether call implements the Contains member of the
// single-parameter collection contract of its receiver.
func isCollectionContains(p *Pass, call semantic.Call) bool {
	if call.Method.Extension || p.Known.Collection == nil || call.Receiver == nil {
		return false
	}

	contract := call.Receiver
	if contract.Def != p.Known.Collection {
		contract = hierarchy.Walk(p, call.Receiver).Contract(p.Known.Collection)
	}

	if contract == nil || len(contract.Args) != 1 {
		return false
	}

	for _, member := range p.Known.Collection.MethodsNamed("Contains") {
		if call.Method == member {
			return true
		}

		if hierarchy.FindImplementation(p, call.Receiver, member, contract) == call.Method {
			return true
		}
	}

	return false
}
