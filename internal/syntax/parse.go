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

// Package syntax holds an immutable syntax tree of C# source files.
//
// Trees are converted once from the tree-sitter parse result, so they can be
// shared between goroutines after [Parse] returns.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// ErrParse is returned when a source file cannot be parsed at all.
var ErrParse = errors.New("parse error")

// File is a parsed C# source file.
type File struct {
	Name     string
	Src      []byte
	Root     *Node
	Comments []*Node

	tok       *token.File
	hasErrors bool
}

// fieldNames are the grammar fields recorded on converted nodes.
var fieldNames = [...]string{
	"alias", "arguments", "body", "condition", "expression", "function", "initializer", "left",
	"name", "operator", "parameters", "qualifier", "returns", "right", "type", "type_arguments",
	"type_parameters", "value",
}

type span struct {
	start, end uint32
	kind       string
}

// Parse parses src and adds the file to fset.
//
// Syntax errors do not fail the parse, the affected constructs show up as ERROR nodes.
func Parse(ctx context.Context, fset *token.FileSet, name string, src []byte) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(csharp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrParse, err)
	}

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%s: %w: no syntax tree", name, ErrParse)
	}

	tok := fset.AddFile(name, -1, len(src))
	tok.SetLinesForContent(src)

	f := &File{Name: name, Src: src, tok: tok, hasErrors: root.HasError()}
	f.Root = f.convert(root, nil, "")

	return f, nil
}

func (f *File) convert(sn *sitter.Node, parent *Node, field string) *Node {
	n := &Node{
		Kind:   sn.Type(),
		Field:  field,
		Start:  int(sn.StartByte()),
		End:    int(sn.EndByte()),
		Named:  sn.IsNamed(),
		Parent: parent,
		file:   f,
	}

	count := int(sn.ChildCount())
	if count == 0 {
		return n
	}

	fields := make(map[span]string)
	for _, name := range fieldNames {
		if c := sn.ChildByFieldName(name); c != nil {
			key := span{c.StartByte(), c.EndByte(), c.Type()}
			if _, ok := fields[key]; !ok {
				fields[key] = name
			}
		}
	}

	n.Children = make([]*Node, 0, count)
	for i := range count {
		c := sn.Child(i)
		if c == nil {
			continue
		}

		if c.Type() == "comment" {
			f.Comments = append(f.Comments, f.convert(c, nil, ""))

			continue
		}

		n.Children = append(n.Children, f.convert(c, n, fields[span{c.StartByte(), c.EndByte(), c.Type()}]))
	}

	if n.Kind == "parameter_list" {
		f.groupParamsArrays(n)
	}

	return n
}

// groupParamsArrays wraps the attributes, `params` token, type and name the grammar
// leaves directly in a parameter list into a parameter_array node.
func (f *File) groupParamsArrays(list *Node) {
	var (
		children = make([]*Node, 0, len(list.Children))
		group    []*Node
	)

	for i, c := range list.Children {
		switch {
		case group == nil && c.Kind == "params" && !c.Named:
			// Attributes written before the token belong to the parameter.
			start := len(children)
			for start > 0 && children[start-1].Kind == "attribute_list" {
				start--
			}

			group = append(slices.Clone(children[start:]), c)
			children = children[:start]

		case group != nil:
			group = append(group, c)

			// The name is the identifier followed by a separator, a type may be an identifier too.
			if c.Kind == "identifier" && (i+1 == len(list.Children) || !list.Children[i+1].Named) {
				children = append(children, f.wrap(list, "parameter_array", group))
				group = nil
			}

		default:
			children = append(children, c)
		}
	}

	if group != nil {
		children = append(children, f.wrap(list, "parameter_array", group))
	}

	list.Children = children
}

// wrap creates a named node of the given kind spanning children, reparenting them.
func (f *File) wrap(parent *Node, kind string, children []*Node) *Node {
	n := &Node{
		Kind:     kind,
		Start:    children[0].Start,
		End:      children[len(children)-1].End,
		Named:    true,
		Parent:   parent,
		Children: children,
		file:     f,
	}

	for _, c := range children {
		c.Parent = n
	}

	return n
}

// HasErrors reports whether the parser had to recover from syntax errors.
func (f *File) HasErrors() bool {
	return f.hasErrors
}

// Pos returns the position of a byte offset.
func (f *File) Pos(offset int) token.Pos {
	return f.tok.Pos(offset)
}

// Offset returns the byte offset of pos.
func (f *File) Offset(pos token.Pos) int {
	return f.tok.Offset(pos)
}

// TokenFile returns the position information of the file.
func (f *File) TokenFile() *token.File {
	return f.tok
}

// Line returns the 1-based line number of a byte offset.
func (f *File) Line(offset int) int {
	return f.tok.Line(f.tok.Pos(offset))
}
