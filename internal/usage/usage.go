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

// Package usage determines which parameters of a method body are read.
package usage

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// Track classifies every reference to the parameters of m within its body.
func Track(ctx context.Context, m *semantic.Method) Result {
	defer trace.StartRegion(ctx, "Usage").End()

	c := newCollector(m.Params)
	if m.Body != nil {
		c.inspect(m.Body, nil)
	}

	return c.result()
}

// collector records the usage of parameters while walking a method body.
type collector struct {
	params []*semantic.Parameter
	names  map[string]int
	usages []Flags
}

func newCollector(params []*semantic.Parameter) collector {
	names := make(map[string]int, len(params))
	for i, p := range params {
		if _, ok := names[p.Name]; !ok {
			names[p.Name] = i
		}
	}

	return collector{
		params: params,
		names:  names,
		usages: make([]Flags, len(params)),
	}
}

// inspect walks n, with hidden naming the parameters redeclared by an enclosing lambda or local function.
func (c *collector) inspect(n *syntax.Node, hidden map[string]bool) {
	switch n.Kind {
	case "identifier":
		c.handleIdent(n, hidden)

		return

	case "lambda_expression", "anonymous_method_expression", "local_function_statement":
		hidden = c.hide(n, hidden)
	}

	for _, child := range n.Children {
		c.inspect(child, hidden)
	}
}

// handleIdent processes a simple name that might refer to a parameter.
func (c *collector) handleIdent(id *syntax.Node, hidden map[string]bool) {
	name := id.Text()

	i, ok := c.names[name]
	if !ok || hidden[name] || !isReference(id) {
		return
	}

	if isWrite(id) {
		c.usages[i] |= UsageWritten
	} else {
		c.usages[i] |= UsageRead
	}
}

// hide returns hidden extended by the tracked names a nested function redeclares as its parameters.
func (c *collector) hide(fn *syntax.Node, hidden map[string]bool) map[string]bool {
	var names []string

	if id := syntax.ImplicitParameter(fn); id != nil {
		names = append(names, id.Text())
	}

	for _, p := range syntax.Parameters(fn) {
		if id := syntax.DeclName(p); id != nil {
			names = append(names, id.Text())
		}
	}

	var result map[string]bool
	for _, name := range names {
		if _, ok := c.names[name]; !ok || hidden[name] {
			continue
		}

		if result == nil {
			result = make(map[string]bool, len(hidden)+1)
			for k := range hidden {
				result[k] = true
			}
		}

		result[name] = true
	}

	if result == nil {
		return hidden
	}

	return result
}

func (c *collector) result() Result {
	return Result{params: c.params, usages: c.usages}
}
