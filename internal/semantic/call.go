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

package semantic

import (
	"slices"

	"fillmore-labs.com/xunitguard/internal/syntax"
)

// Call is a resolved method invocation.
type Call struct {
	Method *Method
	// Receiver is the type the method was looked up on, or the receiver type of an extension method.
	Receiver *Type
	// Owner is the constructed declaring type, nil for extension methods.
	Owner *Type
	Subst Substitution
	Args  []*syntax.Node
}

// ReturnType returns the return type of the call with all type arguments substituted.
func (c Call) ReturnType() *Type {
	return c.Method.Return.Subst(c.Subst)
}

// ParamType returns the type of the i-th declared parameter with all type arguments substituted.
func (c Call) ParamType(i int) *Type {
	if i < 0 || i >= len(c.Method.Params) {
		return nil
	}

	return c.Method.Params[i].Type.Subst(c.Subst)
}

// CallOf resolves the method called by an invocation expression.
func (c *Compilation) CallOf(inv *syntax.Node) (Call, bool) {
	return c.callOf(inv, 0)
}

func (c *Compilation) callOf(inv *syntax.Node, depth int) (Call, bool) {
	if inv == nil || inv.Kind != "invocation_expression" || depth > maxDepth {
		return Call{}, false
	}

	fn, args := syntax.Invocation(inv)
	if fn == nil {
		return Call{}, false
	}

	sc := c.scopeAt(inv)

	switch fn.Kind {
	case "member_access_expression":
		recv, nameNode := syntax.MemberAccess(fn)

		name, targs := syntax.SimpleName(nameNode)
		explicit := c.resolveArgs(targs, sc)

		if rt := c.typeOf(recv, depth+1); rt != nil {
			if call, ok := c.methodCall(rt, name, explicit, args, depth); ok {
				return call, true
			}

			return c.extensionCall(rt, name, explicit, args, sc, depth)
		}

		if ent := c.resolveEntity(recv, sc, ""); ent.typ != nil {
			return c.methodCall(ent.typ, name, explicit, args, depth)
		}

	case "identifier", "generic_name":
		name, targs := syntax.SimpleName(fn)
		if name == "nameof" {
			return Call{}, false
		}

		explicit := c.resolveArgs(targs, sc)
		for _, t := range sc.types {
			if call, ok := c.methodCall(t.Self(), name, explicit, args, depth); ok {
				return call, true
			}
		}
	}

	return Call{}, false
}

func applicable(m *Method, nargs int) bool {
	required, limit := 0, len(m.Params)
	for _, p := range m.Params {
		switch {
		case p.Params:
			limit = -1
		case !p.Default:
			required++
		}
	}

	return nargs >= required && (limit < 0 || nargs <= limit)
}

// argTypes returns the static types of the arguments, nil where unknown.
func (c *Compilation) argTypes(args []*syntax.Node, depth int) []*Type {
	types := make([]*Type, len(args))
	for i, a := range args {
		types[i] = c.typeOf(syntax.ArgumentExpression(a), depth+1)
	}

	return types
}

// methodCall looks up an instance or static method of t.
func (c *Compilation) methodCall(t *Type, name string, explicit []*Type, args []*syntax.Node, depth int) (Call, bool) {
	var (
		best      Call
		bestScore = -1
		atypes    []*Type
	)

	for _, level := range c.lookupLevels(t) {
		if level.Def == nil {
			continue
		}

		for _, m := range level.Def.MethodsNamed(name) {
			if m.Explicit || !applicable(m, len(args)) || (len(explicit) > 0 && len(explicit) != len(m.TypeParams)) {
				continue
			}

			if atypes == nil {
				atypes = c.argTypes(args, depth)
			}

			subst := BindType(level).Merge(Bind(m.TypeParams, explicit))
			if len(explicit) == 0 && len(m.TypeParams) > 0 {
				subst = subst.Merge(c.infer(m, 0, atypes))
			}

			call := Call{Method: m, Receiver: t, Owner: level, Subst: subst, Args: args}
			if score := matchScore(call, 0, atypes); score > bestScore {
				best, bestScore = call, score
			}
		}

		if bestScore >= 0 {
			return best, true
		}
	}

	return Call{}, false
}

// extensionCall looks up an extension method in the namespaces visible at the call.
func (c *Compilation) extensionCall(recv *Type, name string, explicit []*Type, args []*syntax.Node, sc scope, depth int) (Call, bool) {
	var (
		best      Call
		bestScore = -1
		atypes    []*Type
	)

	for _, ns := range visibleNamespaces(sc) {
		for _, m := range c.extensions[ns] {
			if m.Name != name || !applicable(m, len(args)+1) || (len(explicit) > 0 && len(explicit) != len(m.TypeParams)) {
				continue
			}

			subst := Bind(m.TypeParams, explicit)
			if subst == nil {
				subst = make(Substitution)
			}

			if !c.unify(m.Params[0].Type, recv, m.TypeParams, subst) {
				continue
			}

			if atypes == nil {
				atypes = c.argTypes(args, depth)
			}

			if len(explicit) == 0 {
				subst = subst.Merge(c.infer(m, 1, atypes))
			}

			call := Call{Method: m, Receiver: recv, Subst: subst, Args: args}
			if score := matchScore(call, 1, atypes); score > bestScore {
				best, bestScore = call, score
			}
		}

		if bestScore >= 0 {
			return best, true
		}
	}

	return Call{}, false
}

// visibleNamespaces returns the namespaces searched for extension methods, innermost first.
func visibleNamespaces(sc scope) []string {
	var result []string
	for lvl := sc.imp; lvl != nil; lvl = lvl.parent {
		for _, ns := range lvl.namespaces() {
			if !slices.Contains(result, ns) {
				result = append(result, ns)
			}
		}

		for _, ns := range lvl.usings {
			if !slices.Contains(result, ns) {
				result = append(result, ns)
			}
		}
	}

	return result
}

// infer binds method type parameters from argument types, ignoring arguments that do not unify.
func (c *Compilation) infer(m *Method, offset int, atypes []*Type) Substitution {
	s := make(Substitution)
	for i, at := range atypes {
		if p := i + offset; p < len(m.Params) && at != nil {
			trial := make(Substitution, len(s))
			for k, v := range s {
				trial[k] = v
			}

			if c.unify(m.Params[p].Type, at, m.TypeParams, trial) {
				s = trial
			}
		}
	}

	return s
}

// matchScore counts the arguments whose type is identical to the parameter type.
func matchScore(call Call, offset int, atypes []*Type) int {
	score := 0
	for i, at := range atypes {
		if Identical(call.ParamType(i+offset), at) {
			score++
		}
	}

	return score
}

// unify matches pattern against actual, binding the type parameters in params.
func (c *Compilation) unify(pattern, actual *Type, params []string, s Substitution) bool {
	switch {
	case pattern == nil || actual == nil:
		return false

	case pattern.Param != "" && slices.Contains(params, pattern.Param):
		if bound, ok := s[pattern.Param]; ok {
			return Identical(bound, actual)
		}

		s[pattern.Param] = actual

		return true

	case pattern.Elem != nil:
		return actual.Elem != nil && c.unify(pattern.Elem, actual.Elem, params, s)

	case pattern.Def != nil:
		for _, a := range c.ancestors(actual) {
			if a.Def != pattern.Def || len(a.Args) != len(pattern.Args) {
				continue
			}

			trial := make(Substitution, len(s))
			for k, v := range s {
				trial[k] = v
			}

			ok := true
			for i := range a.Args {
				if !c.unify(pattern.Args[i], a.Args[i], params, trial) {
					ok = false

					break
				}
			}

			if ok {
				for k, v := range trial {
					s[k] = v
				}

				return true
			}
		}

		return false
	}

	return Identical(pattern, actual)
}
