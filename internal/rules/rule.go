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

// Package rules implements the inspection rules over the semantic model of C# test sources.
package rules

import (
	"context"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/xunitguard/internal/attribute"
	"fillmore-labs.com/xunitguard/internal/config"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// Rule is an inspection rule.
type Rule interface {
	Descriptor() *report.Descriptor
}

// TypeRule inspects type declarations.
type TypeRule interface {
	Rule
	CheckType(ctx context.Context, p *Pass, t *semantic.TypeDef)
}

// MethodRule inspects method declarations.
type MethodRule interface {
	Rule
	CheckMethod(ctx context.Context, p *Pass, m *semantic.Method)
}

// InvocationRule inspects invocation expressions.
type InvocationRule interface {
	Rule
	CheckInvocation(ctx context.Context, p *Pass, inv *syntax.Node)
}

// All returns every rule, ordered by rule ID.
func All() []Rule {
	return []Rule{
		factWithParameters{},
		multipleTestKinds{},
		factWithData{},
		theoryWithoutParameters{},
		dataWithoutTheory{},
		publicNonTestMethod{},
		unusedTheoryParameter{},
		containsAssertion{},
		testCaseBase{},
	}
}

// Env is the state shared by all rule evaluations over one compilation.
type Env struct {
	*semantic.Compilation
	Classifier *attribute.Classifier
	Known      Known
	Behavior   config.BitMask[config.Config]
}

// NewEnv prepares the rule environment of a compilation.
func NewEnv(c *semantic.Compilation, behavior config.BitMask[config.Config]) *Env {
	return &Env{
		Compilation: c,
		Classifier:  attribute.NewClassifier(c),
		Known:       newKnown(c),
		Behavior:    behavior,
	}
}

// Known holds the well-known types the rules refer to. Missing types are nil.
type Known struct {
	Assert        *semantic.TypeDef
	Enumerable    *semantic.TypeDef
	Collection    *semantic.TypeDef
	TestCase      *semantic.TypeDef
	LongLivedBase *semantic.TypeDef
}

func newKnown(c *semantic.Compilation) Known {
	return Known{
		Assert:        c.Lookup("Xunit.Assert", 0),
		Enumerable:    c.Lookup("System.Linq.Enumerable", 0),
		Collection:    c.Lookup("System.Collections.Generic.ICollection", 1),
		TestCase:      c.Lookup("Xunit.Abstractions.ITestCase", 0),
		LongLivedBase: c.Lookup("Xunit.LongLivedMarshalByRefObject", 0),
	}
}

// Pass collects the diagnostics of one evaluation.
type Pass struct {
	*Env
	diagnostics []report.Diagnostic
}

// NewPass starts an evaluation.
func NewPass(env *Env) *Pass {
	return &Pass{Env: env}
}

// Report records a diagnostic located at a node.
func (p *Pass) Report(d *report.Descriptor, at *syntax.Node, fixes []analysis.SuggestedFix, args ...string) {
	p.diagnostics = append(p.diagnostics, report.Diagnostic{
		Rule:           d,
		Pos:            at.Pos(),
		End:            at.EndPos(),
		Message:        d.Format(args...),
		SuggestedFixes: fixes,
	})
}

// Diagnostics returns the diagnostics reported so far.
func (p *Pass) Diagnostics() []report.Diagnostic {
	return p.diagnostics
}
