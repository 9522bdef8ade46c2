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

var arrayContracts = [...]string{
	"System.Collections.Generic.IList",
	"System.Collections.Generic.ICollection",
	"System.Collections.Generic.IEnumerable",
	"System.Collections.Generic.IReadOnlyCollection",
}

// BaseOf returns the base class of t, with the type arguments of t substituted.
func (c *Compilation) BaseOf(t *Type) *Type {
	switch {
	case t == nil:
		return nil

	case t.Elem != nil:
		if def := c.types["System.Array"]; def != nil {
			return Named(def)
		}

		return nil

	case t.Def == nil:
		return nil
	}

	return t.Def.Base.Subst(BindType(t))
}

// InterfacesOf returns the contracts t declares directly, with the type arguments of t substituted.
func (c *Compilation) InterfacesOf(t *Type) []*Type {
	switch {
	case t == nil:
		return nil

	case t.Elem != nil:
		var contracts []*Type
		for _, name := range arrayContracts {
			if def := c.types[key(name, 1)]; def != nil {
				contracts = append(contracts, Named(def, t.Elem))
			}
		}

		return contracts

	case t.Def == nil:
		return nil
	}

	s := BindType(t)
	contracts := make([]*Type, 0, len(t.Def.Interfaces))
	for _, i := range t.Def.Interfaces {
		contracts = append(contracts, i.Subst(s))
	}

	return contracts
}

// lookupLevels returns the types searched for members of t: the class chain for classes,
// the type and all its contracts for interfaces.
func (c *Compilation) lookupLevels(t *Type) []*Type {
	if t == nil {
		return nil
	}

	if t.Def != nil && t.Def.Kind == KindInterface {
		return c.ancestors(t)
	}

	var levels []*Type
	seen := make(map[*TypeDef]bool)
	for cur := t; cur != nil; cur = c.BaseOf(cur) {
		if cur.Def != nil {
			if seen[cur.Def] {
				break
			}

			seen[cur.Def] = true
		}

		levels = append(levels, cur)
	}

	return levels
}

const maxAncestors = 256

// ancestors returns t, its base classes and every contract reachable from them.
func (c *Compilation) ancestors(t *Type) []*Type {
	var (
		result []*Type
		visit  func(*Type)
	)

	visit = func(t *Type) {
		if t == nil || len(result) >= maxAncestors {
			return
		}

		for _, r := range result {
			if Identical(r, t) {
				return
			}
		}

		result = append(result, t)

		for _, i := range c.InterfacesOf(t) {
			visit(i)
		}

		visit(c.BaseOf(t))
	}

	visit(t)

	return result
}
