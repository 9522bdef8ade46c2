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

// imports are the using directives of a compilation unit or namespace body.
type imports struct {
	parent     *imports
	namespace  string
	usings     []string
	aliases    map[string]*syntax.Node
	aliasOrder []string
}

func (imp *imports) add(directive *syntax.Node) {
	if directive.HasToken("static") {
		return
	}

	names := directive.NamedChildren()
	if len(names) == 0 {
		return
	}

	target := names[len(names)-1]

	var alias string
	switch {
	case directive.FirstChild("name_equals") != nil:
		if id := directive.FirstChild("name_equals").FirstChild("identifier"); id != nil {
			alias = id.Text()
		}

	case directive.ChildByField("alias") != nil:
		alias = directive.ChildByField("alias").Text()

	case directive.HasToken("=") && len(names) >= 2:
		alias = names[0].Text()
	}

	if alias == "" {
		imp.usings = append(imp.usings, dotted(target.Text()))

		return
	}

	if imp.aliases == nil {
		imp.aliases = make(map[string]*syntax.Node)
	}

	if _, ok := imp.aliases[alias]; !ok {
		imp.aliasOrder = append(imp.aliasOrder, alias)
	}

	imp.aliases[alias] = target
}

// namespaces returns the namespace of this level followed by its enclosing namespaces
// up to, but excluding, the namespace of the parent level.
func (imp *imports) namespaces() []string {
	stop := ""
	if imp.parent != nil {
		stop = imp.parent.namespace
	}

	chain := []string{imp.namespace}
	for ns := imp.namespace; ns != stop && ns != ""; {
		i := strings.LastIndexByte(ns, '.')
		if i < 0 {
			ns = ""
		} else {
			ns = ns[:i]
		}

		if ns == stop && imp.parent != nil {
			break
		}

		chain = append(chain, ns)
	}

	return chain
}

// aliasScope is the context alias targets are resolved in.
func (imp *imports) aliasScope() *imports {
	return &imports{parent: imp.parent, namespace: imp.namespace}
}
