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

// resolveDecl resolves the base list, attributes and members of a declared type.
func (c *Compilation) resolveDecl(t *TypeDef) {
	for _, decl := range t.Decls {
		// Base lists and attributes see the type parameters, but not the members of the type.
		inner := c.scopeAt(decl)
		outer := inner
		outer.types = outer.types[1:]

		if list := syntax.BaseList(decl); list != nil {
			for _, entry := range syntax.BaseTypes(list) {
				c.addBase(t, c.resolveType(syntax.BaseTypeName(entry), outer))
			}
		}

		for _, attr := range syntax.Attributes(decl) {
			t.Attributes = append(t.Attributes, c.attribute(attr, outer))
		}

		for _, member := range syntax.Members(decl) {
			switch member.Kind {
			case "method_declaration":
				c.declareMethod(t, member)

			case "field_declaration", "event_field_declaration":
				vd := member.FirstChild("variable_declaration")
				typ := c.resolveType(syntax.VariableType(vd), inner)
				static := parseModifiers(syntax.Modifiers(member)).Has(Static)

				for _, d := range syntax.Declarators(vd) {
					if id := syntax.DeclName(d); id != nil {
						t.Members = append(t.Members, &Member{Name: id.Text(), Type: typ, Static: static, Owner: t, Decl: d})
					}
				}

			case "property_declaration":
				id := syntax.DeclName(member)
				if id == nil {
					continue
				}

				typ := member.ChildByField("type")
				if typ == nil {
					typ = syntax.ReturnType(member)
				}

				t.Members = append(t.Members, &Member{
					Name:   id.Text(),
					Type:   c.resolveType(typ, inner),
					Static: parseModifiers(syntax.Modifiers(member)).Has(Static),
					Owner:  t,
					Decl:   member,
				})
			}
		}
	}

	if t.Base != nil {
		return
	}

	var base string
	switch t.Kind {
	case KindClass, KindRecord:
		base = "System.Object"
	case KindStruct:
		base = "System.ValueType"
	case KindEnum:
		base = "System.Enum"
	default:
		return
	}

	if def := c.types[base]; def != nil && def != t {
		t.Base = Named(def)
	}
}

func (c *Compilation) addBase(t *TypeDef, base *Type) {
	switch {
	case base == nil || base.Def == nil || base.Def == t:
		return

	case base.Def.Kind == KindInterface:
		t.Interfaces = append(t.Interfaces, base)

	case t.Base == nil && (t.Kind == KindClass || t.Kind == KindRecord):
		t.Base = base
	}
}

func (c *Compilation) attribute(attr *syntax.Node, sc scope) *Attribute {
	a := &Attribute{Node: attr}
	if name := syntax.AttributeName(attr); name != nil {
		a.Name = name.Text()
		a.Class = c.resolveAttribute(name, sc)
	}

	return a
}

func (c *Compilation) declareMethod(t *TypeDef, decl *syntax.Node) {
	id := syntax.DeclName(decl)
	if id == nil {
		return
	}

	m := &Method{
		Name:       id.Text(),
		Owner:      t,
		TypeParams: syntax.TypeParameters(decl),
		Modifiers:  parseModifiers(syntax.Modifiers(decl)),
		Explicit:   decl.FirstChild("explicit_interface_specifier") != nil,
		Decl:       decl,
		NameNode:   id,
		Body:       syntax.Body(decl),
	}

	if t.Kind == KindInterface && !m.Explicit && !m.Modifiers.Has(Private) {
		m.Modifiers |= Public
		if m.Body == nil && !m.Static() {
			m.Modifiers |= Abstract
		}
	}

	c.methods[decl] = m
	sc := c.scopeAt(decl)

	m.Return = c.resolveType(syntax.ReturnType(decl), sc)

	for i, p := range syntax.Parameters(decl) {
		pid := syntax.DeclName(p)
		if pid == nil {
			continue
		}

		param := &Parameter{
			Name:     pid.Text(),
			Type:     c.resolveType(syntax.ParameterType(p), sc),
			Ordinal:  i,
			Default:  syntax.HasDefault(p),
			Params:   p.Kind == "parameter_array",
			Method:   m,
			Decl:     p,
			NameNode: pid,
		}

		for _, mod := range syntax.Modifiers(p) {
			switch mod {
			case "params":
				param.Params = true
			case "this", "ref", "out", "in":
				if param.Modifier == "" {
					param.Modifier = mod
				}
			}
		}

		m.Params = append(m.Params, param)
	}

	m.Extension = len(m.Params) > 0 && m.Params[0].Modifier == "this" && t.Modifiers.Has(Static)

	for _, attr := range syntax.Attributes(decl) {
		m.Attributes = append(m.Attributes, c.attribute(attr, sc))
	}

	t.Methods = append(t.Methods, m)

	if m.Extension && t.Outer == nil {
		c.extensions[t.Namespace] = append(c.extensions[t.Namespace], m)
	}
}
