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

// Package attribute classifies attribute classes and contracts into the xUnit families
// the inspection rules reason about.
package attribute

import (
	"fillmore-labs.com/xunitguard/internal/semantic"
)

//go:generate go tool stringer -type Family -linecomment

// Family is a recognized kind of attribute or contract.
type Family uint8

const (
	None            Family = iota // none
	Fact                          // Fact
	Theory                        // Theory
	DataProvider                  // data provider
	Lifecycle                     // lifecycle
	RuleSuppression               // rule suppression
)

// Well-known type names.
const (
	FactName            = "Xunit.FactAttribute"
	TheoryName          = "Xunit.TheoryAttribute"
	DataProviderName    = "Xunit.Sdk.DataAttribute"
	DisposableName      = "System.IDisposable"
	AsyncDisposableName = "System.IAsyncDisposable"
	AsyncLifetimeName   = "Xunit.IAsyncLifetime"

	// SuppressionName is matched by simple name in any namespace.
	SuppressionName = "IgnoreXunitAnalyzersRule1013Attribute"
)

// Lookup finds types by namespace-qualified name.
type Lookup interface {
	Lookup(fullName string, arity int) *semantic.TypeDef
}

// Classifier assigns types to families.
type Classifier struct {
	roots map[*semantic.TypeDef]Family
}

// NewClassifier returns a classifier for the well-known types of l.
// Families whose root type is missing never match.
func NewClassifier(l Lookup) *Classifier {
	c := &Classifier{roots: make(map[*semantic.TypeDef]Family)}

	for _, r := range [...]struct {
		name   string
		family Family
	}{
		{FactName, Fact},
		{TheoryName, Theory},
		{DataProviderName, DataProvider},
		{DisposableName, Lifecycle},
		{AsyncDisposableName, Lifecycle},
		{AsyncLifetimeName, Lifecycle},
	} {
		if def := l.Lookup(r.name, 0); def != nil {
			c.roots[def] = r.family
		}
	}

	return c
}

// Classify returns the family of a type by walking its base class chain.
// The first recognized type wins, so a Theory is never reported as a Fact.
func (c *Classifier) Classify(def *semantic.TypeDef) Family {
	seen := make(map[*semantic.TypeDef]bool)
	for d := def; d != nil && !seen[d]; d = baseDef(d) {
		seen[d] = true

		if f, ok := c.roots[d]; ok {
			return f
		}

		if d.Name == SuppressionName && d.Outer == nil {
			return RuleSuppression
		}
	}

	return None
}

func baseDef(d *semantic.TypeDef) *semantic.TypeDef {
	if d.Base == nil {
		return nil
	}

	return d.Base.Def
}

// Count returns the number of attributes of the given family.
func (c *Classifier) Count(attrs []*semantic.Attribute, f Family) int {
	n := 0
	for _, a := range attrs {
		if a.Class != nil && c.Classify(a.Class) == f {
			n++
		}
	}

	return n
}

// Has reports whether any attribute is of the given family.
func (c *Classifier) Has(attrs []*semantic.Attribute, f Family) bool {
	for _, a := range attrs {
		if a.Class != nil && c.Classify(a.Class) == f {
			return true
		}
	}

	return false
}

// IsTest reports whether the attributes mark a Fact or a Theory.
func (c *Classifier) IsTest(attrs []*semantic.Attribute) bool {
	for _, a := range attrs {
		if a.Class == nil {
			continue
		}

		if f := c.Classify(a.Class); f == Fact || f == Theory {
			return true
		}
	}

	return false
}

// Suppressed reports whether the class of any attribute is itself decorated with
// an attribute of the [RuleSuppression] family.
//
// Decorations are not inherited: an attribute class derived from a decorated one
// is not suppressed.
func (c *Classifier) Suppressed(attrs []*semantic.Attribute) bool {
	for _, a := range attrs {
		if a.Class != nil && c.Has(a.Class.Attributes, RuleSuppression) {
			return true
		}
	}

	return false
}
