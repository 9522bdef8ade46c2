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

// Package semantic builds a type model of C# source files.
//
// A [Compilation] declares every type, method and member of its files, resolves names
// against an embedded reference library of the System and xUnit types the inspection
// rules need, and answers expression type and call target queries.
// It is immutable after construction and safe for concurrent use.
package semantic

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"maps"
	"strconv"
	"strings"

	"fillmore-labs.com/xunitguard/internal/syntax"
)

// ErrUnresolved signals that a well-known type is missing from the reference library.
var ErrUnresolved = errors.New("unresolved type")

// Compilation is the type model of a set of source files.
type Compilation struct {
	fset      *token.FileSet
	files     []*syntax.File
	reference bool

	types      map[string]*TypeDef
	namespaces map[string]bool
	extensions map[string][]*Method

	sources []*TypeDef
	decls   map[*syntax.Node]*TypeDef
	methods map[*syntax.Node]*Method
	scopes  map[*syntax.Node]*imports
}

// NewCompilation builds the type model of files, which must have been parsed into fset.
func NewCompilation(ctx context.Context, fset *token.FileSet, files []*syntax.File) (*Compilation, error) {
	lib, err := library()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return build(fset, files, lib, false), nil
}

func build(fset *token.FileSet, files []*syntax.File, base *Compilation, reference bool) *Compilation {
	c := &Compilation{
		fset:       fset,
		files:      files,
		reference:  reference,
		types:      make(map[string]*TypeDef),
		namespaces: map[string]bool{"": true},
		extensions: make(map[string][]*Method),
		decls:      make(map[*syntax.Node]*TypeDef),
		methods:    make(map[*syntax.Node]*Method),
		scopes:     make(map[*syntax.Node]*imports),
	}

	if base != nil {
		maps.Copy(c.types, base.types)
		maps.Copy(c.namespaces, base.namespaces)

		for ns, methods := range base.extensions {
			c.extensions[ns] = append([]*Method(nil), methods...)
		}
	}

	for _, f := range files {
		root := &imports{}
		c.scopes[f.Root] = root
		c.declareContainer(f, f.Root, root, nil)
	}

	for _, t := range c.sources {
		c.resolveDecl(t)
	}

	return c
}

func key(fullName string, arity int) string {
	if arity == 0 {
		return fullName
	}

	return fullName + "`" + strconv.Itoa(arity)
}

func join(ns, name string) string {
	if ns == "" {
		return name
	}

	return ns + "." + name
}

// Fset returns the file set of the source files.
func (c *Compilation) Fset() *token.FileSet {
	return c.fset
}

// Files returns the source files in the order they were given.
func (c *Compilation) Files() []*syntax.File {
	return c.files
}

// Sources returns the types declared in source files, in declaration order.
// Nested types follow their enclosing type.
func (c *Compilation) Sources() []*TypeDef {
	return c.sources
}

// Lookup returns the type with the given namespace-qualified name and arity, or nil.
func (c *Compilation) Lookup(fullName string, arity int) *TypeDef {
	return c.types[key(fullName, arity)]
}

// MustLookup is like [Compilation.Lookup], but returns [ErrUnresolved] for missing types.
func (c *Compilation) MustLookup(fullName string, arity int) (*TypeDef, error) {
	if t := c.Lookup(fullName, arity); t != nil {
		return t, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnresolved, key(fullName, arity))
}

// TypeDecl returns the type declared by a type declaration node.
func (c *Compilation) TypeDecl(decl *syntax.Node) *TypeDef {
	return c.decls[decl]
}

// MethodDecl returns the method declared by a method declaration node.
func (c *Compilation) MethodDecl(decl *syntax.Node) *Method {
	return c.methods[decl]
}

func (c *Compilation) declareContainer(f *syntax.File, n *syntax.Node, imp *imports, outer *TypeDef) {
	for i, child := range n.Children {
		switch child.Kind {
		case "using_directive":
			imp.add(child)

		case "namespace_declaration":
			inner := c.enterNamespace(child, imp)
			if body := child.FirstChild("declaration_list"); body != nil {
				c.scopes[body] = inner
				c.declareContainer(f, body, inner, nil)
			}

		case "file_scoped_namespace_declaration":
			inner := c.enterNamespace(child, imp)
			c.scopes[child] = inner
			c.declareContainer(f, child, inner, nil)

			for _, sibling := range n.Children[i+1:] {
				c.scopes[sibling] = inner
			}

			imp = inner

		default:
			if child.Is(syntax.TypeDeclKinds...) {
				c.declareType(f, child, imp, outer)
			}
		}
	}
}

func (c *Compilation) enterNamespace(decl *syntax.Node, imp *imports) *imports {
	name := decl.ChildByField("name")
	if name == nil {
		name = decl.FirstChild("identifier", "qualified_name")
	}

	inner := &imports{parent: imp, namespace: imp.namespace}
	if name == nil {
		return inner
	}

	for _, part := range strings.Split(dotted(name.Text()), ".") {
		inner.namespace = join(inner.namespace, part)
		c.namespaces[inner.namespace] = true
	}

	return inner
}

func dotted(s string) string {
	s = strings.TrimPrefix(strings.Join(strings.Fields(s), ""), "global::")

	return strings.ReplaceAll(s, "::", ".")
}

func kindOf(decl *syntax.Node) Kind {
	switch decl.Kind {
	case "struct_declaration", "record_struct_declaration":
		return KindStruct

	case "interface_declaration":
		return KindInterface

	case "enum_declaration":
		return KindEnum

	case "record_declaration":
		if decl.HasToken("struct") {
			return KindStruct
		}

		return KindRecord
	}

	return KindClass
}

func (c *Compilation) declareType(f *syntax.File, decl *syntax.Node, imp *imports, outer *TypeDef) {
	id := syntax.DeclName(decl)
	if id == nil {
		return
	}

	name, params := id.Text(), syntax.TypeParameters(decl)

	ns := imp.namespace
	full := join(ns, name)
	if outer != nil {
		ns, full = outer.Namespace, outer.FullName()+"."+name
	}

	k := key(full, len(params))

	t := c.types[k]
	if t == nil || t.Reference != c.reference {
		t = &TypeDef{
			Name:       name,
			Namespace:  ns,
			Kind:       kindOf(decl),
			TypeParams: params,
			Outer:      outer,
			Reference:  c.reference,
			File:       f,
			nested:     make(map[string]*TypeDef),
		}
		c.types[k] = t
		c.sources = append(c.sources, t)

		if outer != nil {
			outer.nested[key(name, len(params))] = t
		}
	}

	t.Decls = append(t.Decls, decl)
	t.Modifiers |= parseModifiers(syntax.Modifiers(decl))
	c.decls[decl] = t

	for _, member := range syntax.Members(decl) {
		if member.Is(syntax.TypeDeclKinds...) {
			c.declareType(f, member, imp, t)
		}
	}
}
