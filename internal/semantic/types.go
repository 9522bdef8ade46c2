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
	"strings"

	"fillmore-labs.com/xunitguard/internal/syntax"
)

//go:generate go tool stringer -type Kind -linecomment

// Kind is the kind of a declared type.
type Kind uint8

const (
	KindClass     Kind = iota // class
	KindStruct                // struct
	KindInterface             // interface
	KindEnum                  // enum
	KindRecord                // record
)

// Modifiers is a set of declaration modifiers.
type Modifiers uint16

const (
	Public Modifiers = 1 << iota
	Private
	Protected
	Internal
	Static
	Abstract
	Virtual
	Override
	Sealed
	Extern
	Async
	Partial
)

var modifierNames = map[string]Modifiers{
	"public": Public, "private": Private, "protected": Protected, "internal": Internal,
	"static": Static, "abstract": Abstract, "virtual": Virtual, "override": Override,
	"sealed": Sealed, "extern": Extern, "async": Async, "partial": Partial,
}

func parseModifiers(words []string) Modifiers {
	var m Modifiers
	for _, w := range words {
		m |= modifierNames[w]
	}

	return m
}

// Has reports whether all modifiers in o are present.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o == o
}

// TypeDef is a declared type, either from source or from the reference library.
type TypeDef struct {
	Name       string
	Namespace  string
	Kind       Kind
	TypeParams []string
	Modifiers  Modifiers
	Outer      *TypeDef
	Reference  bool

	Decls []*syntax.Node
	File  *syntax.File

	// Base is the base class, nil for interfaces and System.Object.
	Base *Type
	// Interfaces are the directly declared contracts, in declaration order.
	Interfaces []*Type

	Attributes []*Attribute
	Methods    []*Method
	Members    []*Member

	nested map[string]*TypeDef
	scope  *imports
}

// Decl returns the first declaration of the type.
func (t *TypeDef) Decl() *syntax.Node {
	if len(t.Decls) == 0 {
		return nil
	}

	return t.Decls[0]
}

// NameNode returns the identifier of the first declaration.
func (t *TypeDef) NameNode() *syntax.Node {
	if decl := t.Decl(); decl != nil {
		return syntax.DeclName(decl)
	}

	return nil
}

// FullName returns the namespace-qualified name, with enclosing types separated by dots.
func (t *TypeDef) FullName() string {
	if t.Outer != nil {
		return t.Outer.FullName() + "." + t.Name
	}

	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}

func (t *TypeDef) String() string {
	if len(t.TypeParams) == 0 {
		return t.FullName()
	}

	return t.FullName() + "<" + strings.Join(t.TypeParams, ", ") + ">"
}

// Self returns the type as seen from inside its declaration.
func (t *TypeDef) Self() *Type {
	args := make([]*Type, len(t.TypeParams))
	for i, p := range t.TypeParams {
		args[i] = &Type{Param: p}
	}

	return &Type{Def: t, Args: args}
}

// MethodsNamed returns the methods declared with the given name.
func (t *TypeDef) MethodsNamed(name string) []*Method {
	var methods []*Method
	for _, m := range t.Methods {
		if m.Name == name {
			methods = append(methods, m)
		}
	}

	return methods
}

// Member returns the field or property with the given name.
func (t *TypeDef) Member(name string) *Member {
	for _, m := range t.Members {
		if m.Name == name {
			return m
		}
	}

	return nil
}

// Nested returns the nested type with the given name and arity.
func (t *TypeDef) Nested(name string, arity int) *TypeDef {
	return t.nested[key(name, arity)]
}

// Method is a declared method.
type Method struct {
	Name       string
	Owner      *TypeDef
	TypeParams []string
	Params     []*Parameter
	Return     *Type
	Modifiers  Modifiers
	Extension  bool
	Explicit   bool
	Attributes []*Attribute

	Decl     *syntax.Node
	NameNode *syntax.Node
	Body     *syntax.Node
}

func (m *Method) String() string {
	return m.Owner.FullName() + "." + m.Name
}

// Public reports whether the method is declared public, explicitly or as an interface member.
func (m *Method) Public() bool {
	return m.Modifiers.Has(Public)
}

// Static reports whether the method is static.
func (m *Method) Static() bool {
	return m.Modifiers.Has(Static)
}

// Abstract reports whether the method has no implementation in its declaring type.
func (m *Method) Abstract() bool {
	return m.Modifiers.Has(Abstract)
}

// Parameter is a declared method parameter.
type Parameter struct {
	Name     string
	Type     *Type
	Modifier string
	Ordinal  int
	Default  bool
	Params   bool
	Method   *Method

	Decl     *syntax.Node
	NameNode *syntax.Node
}

// Member is a field or property.
type Member struct {
	Name   string
	Type   *Type
	Static bool
	Owner  *TypeDef
	Decl   *syntax.Node
}

// Attribute is an applied attribute.
//
// Class is nil when the attribute name does not resolve.
type Attribute struct {
	Class *TypeDef
	Name  string
	Node  *syntax.Node
}

// Type is a reference to a type: a constructed named type, an array or a type parameter.
type Type struct {
	Def   *TypeDef
	Args  []*Type
	Elem  *Type
	Param string
}

// Named returns a constructed named type.
func Named(def *TypeDef, args ...*Type) *Type {
	return &Type{Def: def, Args: args}
}

// ArrayOf returns an array type.
func ArrayOf(elem *Type) *Type {
	return &Type{Elem: elem}
}

func (t *Type) String() string {
	switch {
	case t == nil:
		return "?"

	case t.Param != "":
		return t.Param

	case t.Elem != nil:
		return t.Elem.String() + "[]"

	case len(t.Args) == 0:
		return t.Def.FullName()
	}

	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}

	return t.Def.FullName() + "<" + strings.Join(args, ", ") + ">"
}

// IsArray reports whether t is an array type.
func (t *Type) IsArray() bool {
	return t != nil && t.Elem != nil
}

// Identical reports whether two types are the same.
// Unresolved types are never identical to anything.
func Identical(a, b *Type) bool {
	switch {
	case a == nil || b == nil:
		return false

	case a.Param != "" || b.Param != "":
		return a.Param == b.Param

	case a.Elem != nil || b.Elem != nil:
		return Identical(a.Elem, b.Elem)

	case a.Def != b.Def || len(a.Args) != len(b.Args):
		return false
	}

	for i := range a.Args {
		if !Identical(a.Args[i], b.Args[i]) {
			return false
		}
	}

	return true
}

// Substitution maps type parameter names to type arguments.
type Substitution map[string]*Type

// Bind returns the substitution binding params to args.
func Bind(params []string, args []*Type) Substitution {
	if len(params) == 0 || len(params) != len(args) {
		return nil
	}

	s := make(Substitution, len(params))
	for i, p := range params {
		s[p] = args[i]
	}

	return s
}

// BindType returns the substitution of a constructed type's declaration parameters.
func BindType(t *Type) Substitution {
	if t == nil || t.Def == nil {
		return nil
	}

	return Bind(t.Def.TypeParams, t.Args)
}

// Merge returns a substitution containing the bindings of s and o, o taking precedence.
func (s Substitution) Merge(o Substitution) Substitution {
	if len(o) == 0 {
		return s
	}

	if len(s) == 0 {
		return o
	}

	m := make(Substitution, len(s)+len(o))
	for k, v := range s {
		m[k] = v
	}

	for k, v := range o {
		m[k] = v
	}

	return m
}

// Subst applies a substitution.
func (t *Type) Subst(s Substitution) *Type {
	if t == nil || len(s) == 0 {
		return t
	}

	switch {
	case t.Param != "":
		if r, ok := s[t.Param]; ok {
			return r
		}

		return t

	case t.Elem != nil:
		return ArrayOf(t.Elem.Subst(s))

	case len(t.Args) == 0:
		return t
	}

	args := make([]*Type, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Subst(s)
	}

	return &Type{Def: t.Def, Args: args}
}
