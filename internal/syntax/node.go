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

package syntax

import (
	"go/token"
	"iter"
	"slices"
)

// Node is a node of a C# syntax tree.
//
// Anonymous nodes are tokens, their Kind is the token text.
type Node struct {
	Kind     string
	Field    string
	Start    int
	End      int
	Named    bool
	Parent   *Node
	Children []*Node

	file *File
}

// File returns the file containing the node.
func (n *Node) File() *File {
	return n.file
}

// Text returns the source text of the node.
func (n *Node) Text() string {
	return string(n.file.Src[n.Start:n.End])
}

// Pos returns the start position of the node.
func (n *Node) Pos() token.Pos {
	return n.file.Pos(n.Start)
}

// EndPos returns the end position of the node.
func (n *Node) EndPos() token.Pos {
	return n.file.Pos(n.End)
}

// Is reports whether the node is of any of the given kinds.
func (n *Node) Is(kinds ...string) bool {
	return n != nil && slices.Contains(kinds, n.Kind)
}

// ChildByField returns the first child recorded under a grammar field.
func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// NamedChildren returns the named children of the node.
func (n *Node) NamedChildren() []*Node {
	if n == nil {
		return nil
	}

	named := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Named {
			named = append(named, c)
		}
	}

	return named
}

// FirstChild returns the first child of any of the given kinds.
func (n *Node) FirstChild(kinds ...string) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if slices.Contains(kinds, c.Kind) {
			return c
		}
	}

	return nil
}

// ChildrenOf iterates over the children of the given kinds.
func (n *Node) ChildrenOf(kinds ...string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		for _, c := range n.Children {
			if slices.Contains(kinds, c.Kind) && !yield(c) {
				return
			}
		}
	}
}

// HasToken reports whether the node has an anonymous child with the given text.
func (n *Node) HasToken(text string) bool {
	if n == nil {
		return false
	}

	for _, c := range n.Children {
		if !c.Named && c.Kind == text {
			return true
		}
	}

	return false
}

// Ancestor returns the nearest proper ancestor of any of the given kinds.
func (n *Node) Ancestor(kinds ...string) *Node {
	if n == nil {
		return nil
	}

	for p := n.Parent; p != nil; p = p.Parent {
		if slices.Contains(kinds, p.Kind) {
			return p
		}
	}

	return nil
}

// Contains reports whether m lies within n.
func (n *Node) Contains(m *Node) bool {
	return n != nil && m != nil && n.file == m.file && n.Start <= m.Start && m.End <= n.End
}

// Inspect traverses the subtree in depth-first order, calling f for every node.
// Children are skipped when f returns false.
func (n *Node) Inspect(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}

	for _, c := range n.Children {
		c.Inspect(f)
	}
}

// Preorder iterates over the subtree in depth-first order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(*Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(n) {
		return false
	}

	for _, c := range n.Children {
		if !c.preorder(yield) {
			return false
		}
	}

	return true
}
