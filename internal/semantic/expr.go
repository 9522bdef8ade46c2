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
	"fillmore-labs.com/xunitguard/internal/syntax"
)

const maxDepth = 32

var literalTypes = map[string]string{
	"integer_literal":                "System.Int32",
	"real_literal":                   "System.Double",
	"string_literal":                 "System.String",
	"verbatim_string_literal":        "System.String",
	"raw_string_literal":             "System.String",
	"interpolated_string_expression": "System.String",
	"boolean_literal":                "System.Boolean",
	"character_literal":              "System.Char",
	"typeof_expression":              "System.Type",
}

// TypeOf returns the static type of an expression, or nil when it cannot be determined.
func (c *Compilation) TypeOf(expr *syntax.Node) *Type {
	return c.typeOf(expr, 0)
}

func (c *Compilation) typeOf(e *syntax.Node, depth int) *Type {
	if e == nil || depth > maxDepth {
		return nil
	}

	if full, ok := literalTypes[e.Kind]; ok {
		if def := c.types[full]; def != nil {
			return Named(def)
		}

		return nil
	}

	switch e.Kind {
	case "parenthesized_expression":
		return c.typeOf(syntax.FirstNamed(e), depth+1)

	case "object_creation_expression":
		typ := e.ChildByField("type")
		if typ == nil {
			typ = e.FirstChild(syntax.NameKinds...)
		}

		return c.resolveType(typ, c.scopeAt(e))

	case "array_creation_expression":
		typ := e.ChildByField("type")
		if typ == nil {
			typ = e.FirstChild("array_type")
		}

		return c.resolveType(typ, c.scopeAt(e))

	case "implicit_array_creation_expression":
		init := e.FirstChild("initializer_expression")
		if elem := c.typeOf(syntax.FirstNamed(init), depth+1); elem != nil {
			return ArrayOf(elem)
		}

	case "invocation_expression":
		if call, ok := c.callOf(e, depth+1); ok {
			return call.ReturnType()
		}

	case "identifier":
		return c.valueType(e, depth)

	case "member_access_expression":
		recv, name := syntax.MemberAccess(e)
		id, _ := syntax.SimpleName(name)

		if rt := c.typeOf(recv, depth+1); rt != nil {
			return c.memberType(rt, id)
		}

		if ent := c.resolveEntity(recv, c.scopeAt(e), ""); ent.typ != nil {
			return c.memberType(ent.typ, id)
		}

	case "this_expression", "this":
		if sc := c.scopeAt(e); len(sc.types) > 0 {
			return sc.types[0].Self()
		}

	case "base_expression", "base":
		if sc := c.scopeAt(e); len(sc.types) > 0 {
			return c.BaseOf(sc.types[0].Self())
		}

	case "cast_expression":
		return c.resolveType(e.ChildByField("type"), c.scopeAt(e))

	case "as_expression":
		typ := e.ChildByField("right")
		if typ == nil {
			typ = syntax.LastNamed(e)
		}

		return c.resolveType(typ, c.scopeAt(e))

	case "element_access_expression":
		if t := c.typeOf(syntax.FirstNamed(e), depth+1); t.IsArray() {
			return t.Elem
		}

	case "conditional_expression":
		if then := e.ChildByField("consequence"); then != nil {
			return c.typeOf(then, depth+1)
		}

	case "await_expression":
		if t := c.typeOf(syntax.LastNamed(e), depth+1); t != nil && t.Def != nil &&
			t.Def.FullName() == "System.Threading.Tasks.Task" && len(t.Args) == 1 {
			return t.Args[0]
		}
	}

	return nil
}

// memberType returns the type of a field or property of t.
func (c *Compilation) memberType(t *Type, name string) *Type {
	for _, level := range c.lookupLevels(t) {
		if level.Def == nil {
			continue
		}

		if m := level.Def.Member(name); m != nil {
			return m.Type.Subst(BindType(level))
		}
	}

	return nil
}

// valueType returns the type of a simple name used as a value.
func (c *Compilation) valueType(id *syntax.Node, depth int) *Type {
	name := id.Text()

	if t, ok := c.localType(id, name, depth); ok {
		return t
	}

	sc := c.scopeAt(id)
	for _, t := range sc.types {
		if mt := c.memberType(t.Self(), name); mt != nil {
			return mt
		}
	}

	return nil
}

// localType finds the declaration of a local variable or parameter visible at use.
func (c *Compilation) localType(use *syntax.Node, name string, depth int) (*Type, bool) {
	for p := use.Parent; p != nil; p = p.Parent {
		switch p.Kind {
		case "block", "switch_section":
			for _, stmt := range p.Children {
				if stmt.Start >= use.Start {
					break
				}

				if t, ok := c.declaredIn(stmt, name, use, depth); ok {
					return t, true
				}
			}

		case "for_statement", "using_statement", "fixed_statement":
			if vd := p.FirstChild("variable_declaration"); vd != nil {
				if t, ok := c.declaredVar(vd, name, use, depth); ok {
					return t, true
				}
			}

		case "foreach_statement":
			if id := p.ChildByField("left"); id != nil && id.Kind == "identifier" && id.Text() == name {
				return c.foreachType(p, depth), true
			}

		case "catch_clause":
			if cd := p.FirstChild("catch_declaration"); cd != nil {
				if id := cd.FirstChild("identifier"); id != nil && id.Text() == name {
					return c.resolveType(cd.FirstChild(syntax.NameKinds...), c.scopeAt(cd)), true
				}
			}

		case "lambda_expression", "anonymous_method_expression", "local_function_statement":
			if id := syntax.ImplicitParameter(p); id != nil && id.Text() == name {
				return nil, true
			}

			for _, param := range syntax.Parameters(p) {
				if id := syntax.DeclName(param); id != nil && id.Text() == name {
					return c.resolveType(syntax.ParameterType(param), c.scopeAt(param)), true
				}
			}

		default:
			if m := c.methods[p]; m != nil {
				for _, param := range m.Params {
					if param.Name == name {
						return param.Type, true
					}
				}

				return nil, false
			}
		}
	}

	return nil, false
}

// declaredIn finds a local declared by a statement, including out variables.
func (c *Compilation) declaredIn(stmt *syntax.Node, name string, use *syntax.Node, depth int) (*Type, bool) {
	if stmt.Kind == "local_declaration_statement" {
		if vd := stmt.FirstChild("variable_declaration"); vd != nil {
			if t, ok := c.declaredVar(vd, name, use, depth); ok {
				return t, true
			}
		}
	}

	var (
		found *Type
		ok    bool
	)

	stmt.Inspect(func(n *syntax.Node) bool {
		if ok {
			return false
		}

		switch n.Kind {
		case "lambda_expression", "anonymous_method_expression", "local_function_statement", "block":
			return false

		case "declaration_expression":
			if id := syntax.DeclName(n); id != nil && id.Text() == name {
				typ := n.ChildByField("type")
				if typ == nil {
					typ = syntax.FirstNamed(n)
				}

				found, ok = c.resolveType(typ, c.scopeAt(n)), true
			}

			return false
		}

		return true
	})

	return found, ok
}

func (c *Compilation) declaredVar(vd *syntax.Node, name string, use *syntax.Node, depth int) (*Type, bool) {
	for _, d := range syntax.Declarators(vd) {
		id := syntax.DeclName(d)
		if id == nil || id.Text() != name || d.Contains(use) {
			continue
		}

		typ := syntax.VariableType(vd)
		if isImplicit(typ) {
			return c.typeOf(syntax.Initializer(d), depth+1), true
		}

		return c.resolveType(typ, c.scopeAt(vd)), true
	}

	return nil, false
}

func isImplicit(typ *syntax.Node) bool {
	return typ == nil || typ.Kind == "implicit_type" || (typ.Kind == "identifier" && typ.Text() == "var")
}

func (c *Compilation) foreachType(stmt *syntax.Node, depth int) *Type {
	typ := stmt.ChildByField("type")
	if !isImplicit(typ) {
		return c.resolveType(typ, c.scopeAt(stmt))
	}

	coll := c.typeOf(stmt.ChildByField("right"), depth+1)
	if coll.IsArray() {
		return coll.Elem
	}

	enumerable := c.types[key("System.Collections.Generic.IEnumerable", 1)]
	for _, a := range c.ancestors(coll) {
		if a.Def == enumerable && len(a.Args) == 1 {
			return a.Args[0]
		}
	}

	return nil
}
