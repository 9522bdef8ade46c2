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

// Package run evaluates the inspection rules over a compilation.
package run

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/xunitguard/internal/config"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/rules"
	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/suppress"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// Run evaluates the enabled rules over the source files of c.
//
// Diagnostics are returned ordered by position, ties in discovery order.
// When ctx is canceled no new work items are started and the diagnostics
// found so far are returned together with the context error.
func (o *Options) Run(ctx context.Context, c *semantic.Compilation) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "XunitGuard")
	defer task.End()

	env := rules.NewEnv(c, o.Behavior)
	set := o.ruleSet()
	log := o.logger()

	var (
		items        []workItem
		suppressions = make(map[*token.File]*suppress.Index)
	)

	for _, f := range c.Files() {
		if f.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			log.DebugContext(ctx, "Skipping generated file", slog.String("file", f.Name))

			continue
		}

		suppressions[f.TokenFile()] = suppress.NewIndex(f)
		items = set.collect(c, f, items)
	}

	trace.Logf(ctx, "items", "%d", len(items))

	results := make([][]report.Diagnostic, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit())

	for i := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			results[i] = items[i].evaluate(gctx, env, log)

			return nil
		})
	}

	_ = g.Wait() // work items never fail

	var diagnostics []report.Diagnostic
	for _, r := range results {
		for _, d := range r {
			tok := c.Fset().File(d.Pos)
			if idx := suppressions[tok]; idx != nil && idx.Suppressed(d.Rule.ID, tok.Offset(d.Pos)) {
				continue
			}

			diagnostics = append(diagnostics, d)
		}
	}

	slices.SortStableFunc(diagnostics, func(a, b report.Diagnostic) int { return cmp.Compare(a.Pos, b.Pos) })

	return diagnostics, ctx.Err()
}

// ruleSet holds the enabled rules, grouped by the construct they inspect.
type ruleSet struct {
	types       []rules.TypeRule
	methods     []rules.MethodRule
	invocations []rules.InvocationRule
}

func (o *Options) ruleSet() ruleSet {
	var set ruleSet

	for _, r := range rules.All() {
		if !o.Rules.Enabled(r.Descriptor().Flag) {
			continue
		}

		if tr, ok := r.(rules.TypeRule); ok {
			set.types = append(set.types, tr)
		}

		if mr, ok := r.(rules.MethodRule); ok {
			set.methods = append(set.methods, mr)
		}

		if ir, ok := r.(rules.InvocationRule); ok {
			set.invocations = append(set.invocations, ir)
		}
	}

	return set
}

// workItem is one construct of a source file paired with the rules inspecting it.
type workItem struct {
	file *syntax.File

	typ    *semantic.TypeDef
	method *semantic.Method
	inv    *syntax.Node

	set *ruleSet
}

// collect appends the work items of f in source order.
func (s *ruleSet) collect(c *semantic.Compilation, f *syntax.File, items []workItem) []workItem {
	for n := range f.Root.Preorder() {
		item := workItem{file: f, set: s}

		switch {
		case n.Is(syntax.TypeDeclKinds...):
			if len(s.types) == 0 {
				continue
			}

			t := c.TypeDecl(n)
			if t == nil || t.Decl() != n {
				continue // later part of a partial type
			}

			item.typ = t

		case n.Kind == "method_declaration":
			if len(s.methods) == 0 {
				continue
			}

			m := c.MethodDecl(n)
			if m == nil {
				continue
			}

			item.method = m

		case n.Kind == "invocation_expression":
			if len(s.invocations) == 0 {
				continue
			}

			item.inv = n

		default:
			continue
		}

		items = append(items, item)
	}

	return items
}

// evaluate runs the rules of one work item. A panicking rule yields no diagnostics.
func (w workItem) evaluate(ctx context.Context, env *rules.Env, log *slog.Logger) (diagnostics []report.Diagnostic) {
	defer trace.StartRegion(ctx, "Evaluate").End()

	p := rules.NewPass(env)

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Internal error in rule evaluation",
				slog.String("file", w.file.Name),
				slog.String("construct", w.String()),
				slog.Any("panic", r))

			diagnostics = nil
		}
	}()

	switch {
	case w.typ != nil:
		for _, r := range w.set.types {
			r.CheckType(ctx, p, w.typ)
		}

	case w.method != nil:
		for _, r := range w.set.methods {
			r.CheckMethod(ctx, p, w.method)
		}

	case w.inv != nil:
		for _, r := range w.set.invocations {
			r.CheckInvocation(ctx, p, w.inv)
		}
	}

	return p.Diagnostics()
}

func (w workItem) String() string {
	switch {
	case w.typ != nil:
		return "type " + w.typ.FullName()

	case w.method != nil:
		return fmt.Sprintf("method %s.%s", w.method.Owner.FullName(), w.method.Name)

	case w.inv != nil:
		return fmt.Sprintf("invocation at line %d", w.file.Line(w.inv.Start))

	default:
		return "empty"
	}
}
