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

// Package fix rewrites the base lists of type declarations.
package fix

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/xunitguard/internal/hierarchy"
	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

var (
	// ErrNotApplicable is returned when a type declaration cannot be rewritten.
	ErrNotApplicable = errors.New("rewrite not applicable")

	// ErrOverlap is returned when text edits overlap.
	ErrOverlap = errors.New("overlapping edits")
)

// Edit is a rewrite of the base list of a type declaration.
type Edit struct {
	// NewBaseList are the entries of the rewritten base list, in source order.
	NewBaseList []string
	// TextEdits transform the declaration into the rewritten form.
	TextEdits []analysis.TextEdit
}

// Empty reports whether the rewrite leaves the source unchanged.
func (e Edit) Empty() bool {
	return len(e.TextEdits) == 0
}

// RequireBase rewrites the declaration of t so that it derives from required.
//
// A base class named in the base list of any part of t is replaced in place, otherwise
// the base class is inserted in front of the entries of the first part. Types already
// deriving from required yield an empty edit.
func RequireBase(c *semantic.Compilation, t *semantic.TypeDef, required *semantic.TypeDef) (Edit, error) {
	if required == nil || (t.Kind != semantic.KindClass && t.Kind != semantic.KindRecord) {
		return Edit{}, ErrNotApplicable
	}

	if hierarchy.DerivesFrom(c, t.Self(), required) {
		return Edit{}, nil
	}

	for _, decl := range t.Decls {
		if entries := baseEntries(decl); len(entries) > 0 && namesClass(c, entries[0]) {
			return replaceBase(c, decl, entries, required)
		}
	}

	decl := t.Decl()
	if decl == nil {
		return Edit{}, ErrNotApplicable
	}

	name, err := ShortestName(c, required, decl)
	if err != nil {
		return Edit{}, err
	}

	if syntax.BaseList(decl) == nil {
		return insertList(decl, name)
	}

	entries := baseEntries(decl)
	if len(entries) == 0 {
		return Edit{}, ErrNotApplicable
	}

	first := entries[0]

	return Edit{
		NewBaseList: append([]string{name}, entryTexts(entries)...),
		TextEdits:   []analysis.TextEdit{{Pos: first.Pos(), End: first.Pos(), NewText: []byte(name + ", ")}},
	}, nil
}

func baseEntries(decl *syntax.Node) []*syntax.Node {
	list := syntax.BaseList(decl)
	if list == nil {
		return nil
	}

	return syntax.BaseTypes(list)
}

// namesClass reports whether a base list entry resolves to a class rather than a contract.
func namesClass(c *semantic.Compilation, entry *syntax.Node) bool {
	base := c.TypeOfName(syntax.BaseTypeName(entry))

	return base != nil && base.Def != nil && base.Def.Kind != semantic.KindInterface
}

// replaceBase substitutes the first entry of the base list of decl.
func replaceBase(c *semantic.Compilation, decl *syntax.Node, entries []*syntax.Node, required *semantic.TypeDef) (Edit, error) {
	name, err := ShortestName(c, required, decl)
	if err != nil {
		return Edit{}, err
	}

	first := entries[0]
	texts := entryTexts(entries)
	texts[0] = name

	return Edit{
		NewBaseList: texts,
		TextEdits:   []analysis.TextEdit{{Pos: first.Pos(), End: first.EndPos(), NewText: []byte(name)}},
	}, nil
}

func entryTexts(entries []*syntax.Node) []string {
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text()
	}

	return texts
}

// insertList adds a base list after the name and type parameters of a declaration.
func insertList(decl *syntax.Node, name string) (Edit, error) {
	after := syntax.DeclName(decl)
	if tp := decl.FirstChild("type_parameter_list"); tp != nil {
		after = tp
	}

	if pl := decl.FirstChild("parameter_list"); pl != nil {
		after = pl
	}

	if after == nil {
		return Edit{}, ErrNotApplicable
	}

	return Edit{
		NewBaseList: []string{name},
		TextEdits:   []analysis.TextEdit{{Pos: after.EndPos(), End: after.EndPos(), NewText: []byte(" : " + name)}},
	}, nil
}

// ShortestName returns the shortest spelling of def that resolves back to def at the position of at.
func ShortestName(c *semantic.Compilation, def *semantic.TypeDef, at *syntax.Node) (string, error) {
	if len(def.TypeParams) > 0 {
		return "", fmt.Errorf("%w: generic type %s", ErrNotApplicable, def)
	}

	full := def.FullName()

	var candidates []string
	for _, a := range c.AliasesAt(at) {
		switch {
		case a.Type != nil && a.Type.Def == def && len(a.Type.Args) == 0:
			candidates = append(candidates, a.Name)

		case a.Type == nil && strings.HasPrefix(full, a.Namespace+"."):
			candidates = append(candidates, a.Name+"::"+strings.TrimPrefix(full, a.Namespace+"."), a.Name+"."+strings.TrimPrefix(full, a.Namespace+"."))
		}
	}

	candidates = append(candidates, def.Name, full, "global::"+full)

	slices.SortStableFunc(candidates, func(a, b string) int { return cmp.Compare(len(a), len(b)) })

	for _, name := range candidates {
		if t := c.ResolveTypeName(name, at); t != nil && t.Def == def {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: no resolvable name for %s", ErrNotApplicable, full)
}

// Apply applies text edits to the source of a file. Identical edits are applied once.
func Apply(tok *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	type span struct {
		start, end int
		text       []byte
	}

	spans := make([]span, 0, len(edits))
	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		start, stop := tok.Offset(e.Pos), tok.Offset(end)
		if start > stop || stop > len(src) {
			return nil, fmt.Errorf("invalid edit range %d-%d", start, stop)
		}

		spans = append(spans, span{start, stop, e.NewText})
	}

	slices.SortStableFunc(spans, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})

	spans = slices.CompactFunc(spans, func(a, b span) bool {
		return a.start == b.start && a.end == b.end && string(a.text) == string(b.text)
	})

	var (
		out  = make([]byte, 0, len(src))
		last = 0
	)

	for i, s := range spans {
		if s.start < last || i > 0 && s.start == spans[i-1].start && s.start == s.end {
			return nil, fmt.Errorf("%w at offset %d", ErrOverlap, s.start)
		}

		out = append(out, src[last:s.start]...)
		out = append(out, s.text...)
		last = s.end
	}

	return append(out, src[last:]...), nil
}
