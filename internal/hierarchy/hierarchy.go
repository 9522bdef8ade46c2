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

// Package hierarchy walks the base classes and contracts of types.
//
// All walks tolerate cyclic hierarchies, which erroneous sources can declare.
package hierarchy

import (
	"fillmore-labs.com/xunitguard/internal/semantic"
)

// Types answers the direct supertypes of a type.
type Types interface {
	BaseOf(t *semantic.Type) *semantic.Type
	InterfacesOf(t *semantic.Type) []*semantic.Type
}

// Chain is the hierarchy of a type.
type Chain struct {
	// Classes are the type itself followed by its base classes, most derived first.
	Classes []*semantic.Type
	// Contracts are the contracts reachable from the type, each listed once.
	Contracts []*semantic.Type
}

// Walk returns the hierarchy of t.
func Walk(ts Types, t *semantic.Type) Chain {
	var (
		ch      Chain
		visited = make(map[*semantic.TypeDef]bool)
	)

	for cur := t; cur != nil; cur = ts.BaseOf(cur) {
		if cur.Def != nil {
			if visited[cur.Def] {
				break
			}

			visited[cur.Def] = true
		}

		ch.Classes = append(ch.Classes, cur)

		for _, i := range ts.InterfacesOf(cur) {
			ch.addContract(ts, i)
		}
	}

	return ch
}

const maxContracts = 256

func (ch *Chain) addContract(ts Types, t *semantic.Type) {
	if t == nil || len(ch.Contracts) >= maxContracts {
		return
	}

	for _, c := range ch.Contracts {
		if semantic.Identical(c, t) {
			return
		}
	}

	ch.Contracts = append(ch.Contracts, t)

	for _, i := range ts.InterfacesOf(t) {
		ch.addContract(ts, i)
	}
}

// Contract returns the first contract constructed from def, or nil.
func (ch Chain) Contract(def *semantic.TypeDef) *semantic.Type {
	for _, c := range ch.Contracts {
		if c.Def == def {
			return c
		}
	}

	return nil
}

// Derives reports whether def is one of the classes of the chain.
func (ch Chain) Derives(def *semantic.TypeDef) bool {
	for _, c := range ch.Classes {
		if c.Def == def {
			return true
		}
	}

	return false
}

// Satisfies reports whether t implements the contract def, directly or through any ancestor.
func Satisfies(ts Types, t *semantic.Type, def *semantic.TypeDef) bool {
	if def == nil {
		return false
	}

	return Walk(ts, t).Contract(def) != nil
}

// DerivesFrom reports whether the base class chain of t reaches def.
func DerivesFrom(ts Types, t *semantic.Type, def *semantic.TypeDef) bool {
	if def == nil {
		return false
	}

	return Walk(ts, t).Derives(def)
}

// FindImplementation returns the method of the class chain of t implicitly implementing
// member, a method of the constructed contract.
func FindImplementation(ts Types, t *semantic.Type, member *semantic.Method, contract *semantic.Type) *semantic.Method {
	want := semantic.BindType(contract)

	for _, level := range Walk(ts, t).Classes {
		if level.Def == nil {
			continue
		}

		have := semantic.BindType(level)
		for _, m := range level.Def.MethodsNamed(member.Name) {
			if m.Explicit || m.Static() || !m.Public() || len(m.TypeParams) != len(member.TypeParams) {
				continue
			}

			if sameParameters(m, have, member, want) {
				return m
			}
		}
	}

	return nil
}

// Overridden returns the base class method an override method overrides, or nil.
func Overridden(ts Types, m *semantic.Method) *semantic.Method {
	if !m.Modifiers.Has(semantic.Override) {
		return nil
	}

	classes := Walk(ts, m.Owner.Self()).Classes
	if len(classes) == 0 {
		return nil
	}

	mine := semantic.BindType(classes[0])
	for _, level := range classes[1:] {
		if level.Def == nil {
			continue
		}

		have := semantic.BindType(level)
		for _, b := range level.Def.MethodsNamed(m.Name) {
			if b.Static() || (!b.Modifiers.Has(semantic.Virtual) && !b.Abstract() && !b.Modifiers.Has(semantic.Override)) {
				continue
			}

			if len(b.TypeParams) == len(m.TypeParams) && sameParameters(b, have, m, mine) {
				return b
			}
		}
	}

	return nil
}

func sameParameters(a *semantic.Method, as semantic.Substitution, b *semantic.Method, bs semantic.Substitution) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}

	for i := range a.Params {
		if a.Params[i].Modifier != b.Params[i].Modifier {
			return false
		}

		at, bt := a.Params[i].Type.Subst(as), b.Params[i].Type.Subst(bs)
		if at != nil && bt != nil && at.Param != "" && bt.Param != "" {
			// Method type parameters match by position.
			continue
		}

		if !semantic.Identical(at, bt) {
			return false
		}
	}

	return true
}

// SameReturn reports whether two methods return identical types under the given substitutions.
// Unresolved return types never match.
func SameReturn(a *semantic.Method, as semantic.Substitution, b *semantic.Method, bs semantic.Substitution) bool {
	return semantic.Identical(a.Return.Subst(as), b.Return.Subst(bs))
}
