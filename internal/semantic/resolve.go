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
	"strings"

	"fillmore-labs.com/xunitguard/internal/syntax"
)

// scope is the name resolution context of a syntax node.
type scope struct {
	imp    *imports
	types  []*TypeDef // enclosing types, innermost first
	params []string   // visible type parameters
	method *Method
}

// entity is the meaning of a name: a namespace or a type.
type entity struct {
	ns   string
	isNS bool
	typ  *Type
}

var predefined = map[string]string{
	"bool": "System.Boolean", "byte": "System.Byte", "sbyte": "System.SByte", "char": "System.Char",
	"decimal": "System.Decimal", "double": "System.Double", "float": "System.Single",
	"int": "System.Int32", "uint": "System.UInt32", "long": "System.Int64", "ulong": "System.UInt64",
	"short": "System.Int16", "ushort": "System.UInt16", "object": "System.Object",
	"string": "System.String", "void": "System.Void",
}

// scopeAt returns the resolution context of n.
func (c *Compilation) scopeAt(n *syntax.Node) scope {
	var sc scope
	for p := n; p != nil; p = p.Parent {
		if t := c.decls[p]; t != nil {
			sc.types = append(sc.types, t)
			sc.params = append(sc.params, t.TypeParams...)
		}

		if m := c.methods[p]; m != nil {
			if sc.method == nil {
				sc.method = m
			}

			sc.params = append(sc.params, m.TypeParams...)
		}

		if p.Kind == "local_function_statement" {
			sc.params = append(sc.params, syntax.TypeParameters(p)...)
		}

		if imp := c.scopes[p]; imp != nil {
			sc.imp = imp

			break
		}
	}

	return sc
}

func (c *Compilation) predefinedType(keyword string) *Type {
	full, ok := predefined[keyword]
	if !ok {
		return nil
	}

	if def := c.types[full]; def != nil {
		return Named(def)
	}

	return nil
}

func (c *Compilation) resolveArgs(nodes []*syntax.Node, sc scope) []*Type {
	if len(nodes) == 0 {
		return nil
	}

	args := make([]*Type, len(nodes))
	for i, n := range nodes {
		args[i] = c.resolveType(n, sc)
	}

	return args
}

// resolveType resolves a type syntax node, returning nil when it does not denote a known type.
func (c *Compilation) resolveType(n *syntax.Node, sc scope) *Type {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case "predefined_type":
		return c.predefinedType(n.Text())

	case "identifier", "generic_name", "qualified_name", "alias_qualified_name":
		return c.resolveEntity(n, sc, "").typ

	case "array_type":
		elem := n.ChildByField("type")
		if elem == nil {
			elem = syntax.FirstNamed(n)
		}

		if t := c.resolveType(elem, sc); t != nil {
			return ArrayOf(t)
		}

	case "nullable_type":
		inner := c.resolveType(syntax.FirstNamed(n), sc)
		if inner == nil || inner.Def == nil || (inner.Def.Kind != KindStruct && inner.Def.Kind != KindEnum) {
			return inner
		}

		if def := c.types[key("System.Nullable", 1)]; def != nil {
			return Named(def, inner)
		}

		return inner
	}

	return nil
}

// resolveEntity resolves a namespace or type name. The suffix is appended to the right-most simple name.
func (c *Compilation) resolveEntity(n *syntax.Node, sc scope, suffix string) entity {
	switch n.Kind {
	case "identifier", "generic_name":
		name, targs := syntax.SimpleName(n)
		if name == "" {
			return entity{}
		}

		args := c.resolveArgs(targs, sc)
		if t := c.lookupSimple(name+suffix, len(targs), sc); t != nil {
			if t.Param != "" {
				return entity{typ: t}
			}

			return entity{typ: Named(t.Def, args...)}
		}

		if len(targs) == 0 && suffix == "" {
			return c.lookupNamespace(name, sc)
		}

	case "qualified_name", "member_access_expression":
		var left, right *syntax.Node
		if n.Kind == "qualified_name" {
			left, right = syntax.Qualified(n)
		} else {
			left, right = syntax.MemberAccess(n)
		}

		if left == nil || right == nil {
			return entity{}
		}

		return c.memberEntity(c.resolveEntity(left, sc, ""), right, sc, suffix)

	case "alias_qualified_name":
		alias, right := syntax.FirstNamed(n), syntax.LastNamed(n)
		if alias == nil || right == nil || alias == right {
			return entity{}
		}

		var left entity
		if a := alias.Text(); a == "global" {
			left = entity{isNS: true}
		} else {
			left = c.lookupAlias(a, sc)
		}

		return c.memberEntity(left, right, sc, suffix)

	case "predefined_type":
		if suffix == "" {
			return entity{typ: c.predefinedType(n.Text())}
		}
	}

	return entity{}
}

func (c *Compilation) memberEntity(left entity, right *syntax.Node, sc scope, suffix string) entity {
	name, targs := syntax.SimpleName(right)
	if name == "" {
		return entity{}
	}

	return c.member(left, name+suffix, c.resolveArgs(targs, sc), len(targs))
}

func (c *Compilation) member(left entity, name string, args []*Type, arity int) entity {
	switch {
	case left.isNS:
		full := join(left.ns, name)
		if def := c.types[key(full, arity)]; def != nil {
			return entity{typ: Named(def, args...)}
		}

		if arity == 0 && c.namespaces[full] {
			return entity{ns: full, isNS: true}
		}

	case left.typ != nil && left.typ.Def != nil:
		if def := left.typ.Def.Nested(name, arity); def != nil {
			return entity{typ: Named(def, args...)}
		}
	}

	return entity{}
}

// lookupSimple resolves an unqualified type name.
func (c *Compilation) lookupSimple(name string, arity int, sc scope) *Type {
	if arity == 0 && slices.Contains(sc.params, name) {
		return &Type{Param: name}
	}

	for _, t := range sc.types {
		if def := t.Nested(name, arity); def != nil {
			return &Type{Def: def}
		}

		if t.Name == name && len(t.TypeParams) == arity {
			return &Type{Def: t}
		}
	}

	for lvl := sc.imp; lvl != nil; lvl = lvl.parent {
		chain := lvl.namespaces()

		if def := c.types[key(join(chain[0], name), arity)]; def != nil {
			return &Type{Def: def}
		}

		if target, ok := lvl.aliases[name]; ok && arity == 0 {
			if e := c.resolveEntity(target, scope{imp: lvl.aliasScope()}, ""); e.typ != nil {
				return e.typ
			}
		}

		for _, u := range lvl.usings {
			if def := c.types[key(join(u, name), arity)]; def != nil {
				return &Type{Def: def}
			}
		}

		for _, ns := range chain[1:] {
			if def := c.types[key(join(ns, name), arity)]; def != nil {
				return &Type{Def: def}
			}
		}
	}

	return nil
}

// lookupNamespace resolves an unqualified namespace name.
func (c *Compilation) lookupNamespace(name string, sc scope) entity {
	for lvl := sc.imp; lvl != nil; lvl = lvl.parent {
		for _, ns := range lvl.namespaces() {
			if full := join(ns, name); c.namespaces[full] {
				return entity{ns: full, isNS: true}
			}
		}

		if _, ok := lvl.aliases[name]; ok {
			return c.lookupAlias(name, scope{imp: lvl})
		}
	}

	return entity{}
}

// lookupAlias resolves a using alias.
func (c *Compilation) lookupAlias(name string, sc scope) entity {
	for lvl := sc.imp; lvl != nil; lvl = lvl.parent {
		if target, ok := lvl.aliases[name]; ok {
			return c.resolveEntity(target, scope{imp: lvl.aliasScope()}, "")
		}
	}

	return entity{}
}

// resolveAttribute resolves an attribute name, preferring the name with an Attribute suffix.
func (c *Compilation) resolveAttribute(name *syntax.Node, sc scope) *TypeDef {
	for _, suffix := range [...]string{"Attribute", ""} {
		if e := c.resolveEntity(name, sc, suffix); e.typ != nil && e.typ.Def != nil && e.typ.Def.Kind == KindClass {
			return e.typ.Def
		}
	}

	return nil
}

// TypeOfName resolves a type syntax node, returning nil when it does not denote a known type.
func (c *Compilation) TypeOfName(n *syntax.Node) *Type {
	return c.resolveType(n, c.scopeAt(n))
}

// ResolveTypeName resolves a type name written as source text at the position of a node.
func (c *Compilation) ResolveTypeName(text string, at *syntax.Node) *Type {
	sc := c.scopeAt(at)

	var left entity
	rest := text
	switch alias, after, ok := strings.Cut(text, "::"); {
	case !ok:
		first, tail, _ := strings.Cut(text, ".")
		if t := c.lookupSimple(first, 0, sc); t != nil {
			left = entity{typ: t}
		} else {
			left = c.lookupNamespace(first, sc)
		}

		rest = tail

	case alias == "global":
		left, rest = entity{isNS: true}, after

	default:
		left, rest = c.lookupAlias(alias, sc), after
	}

	for part := range strings.SplitSeq(rest, ".") {
		if part == "" {
			continue
		}

		left = c.member(left, part, nil, 0)
	}

	return left.typ
}

// Alias is a using alias visible at some position.
type Alias struct {
	Name      string
	Type      *Type
	Namespace string
}

// AliasesAt returns the using aliases visible at a node, innermost first.
func (c *Compilation) AliasesAt(at *syntax.Node) []Alias {
	var aliases []Alias
	for lvl := c.scopeAt(at).imp; lvl != nil; lvl = lvl.parent {
		for _, name := range lvl.aliasOrder {
			e := c.resolveEntity(lvl.aliases[name], scope{imp: lvl.aliasScope()}, "")
			switch {
			case e.typ != nil:
				aliases = append(aliases, Alias{Name: name, Type: e.typ})

			case e.isNS:
				aliases = append(aliases, Alias{Name: name, Namespace: e.ns})
			}
		}
	}

	return aliases
}
