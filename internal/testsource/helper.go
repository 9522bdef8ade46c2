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

// Package testsource provides utilities for compiling C# source code in tests.
//
// It is designed to simplify testing of the inspector components by handling common
// boilerplate code for parsing and resolving C# source fragments.
package testsource

import (
	"bytes"
	"context"
	"go/token"
	"strconv"
	"testing"

	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// TestClass is the name of the class wrapping method fragments.
const TestClass = "TestClass"

// Compile parses the sources, named test0.cs, test1.cs and so on, into one compilation.
func Compile(tb testing.TB, srcs ...string) *semantic.Compilation {
	tb.Helper()

	fset := token.NewFileSet()
	files := make([]*syntax.File, 0, len(srcs))

	for i, src := range srcs {
		name := "test" + strconv.Itoa(i) + ".cs"

		f, err := syntax.Parse(context.Background(), fset, name, []byte(src))
		if err != nil {
			tb.Fatalf("Failed to parse source %q: %v", src, err)
		}

		if f.HasErrors() {
			tb.Logf("Source %s has syntax errors", name)
		}

		files = append(files, f)
	}

	c, err := semantic.NewCompilation(context.Background(), fset, files)
	if err != nil {
		tb.Fatalf("Failed to compile sources: %v", err)
	}

	return c
}

// Method compiles a method declaration fragment.
// The provided source `decl` is automatically wrapped in a class `TestClass`
// importing System, System.Collections.Generic, System.Linq and Xunit. This
// allows testing method-level code without manually constructing the surrounding
// compilation unit.
func Method(tb testing.TB, decl string) (*semantic.Compilation, *semantic.Method) {
	tb.Helper()

	c := Compile(tb, wrapSource(decl).String())

	t := Type(tb, c, TestClass)
	if len(t.Methods) == 0 {
		tb.Fatal("Can't find method")
	}

	return c, t.Methods[0]
}

// Type returns the type with the given namespace-qualified name and no type parameters.
func Type(tb testing.TB, c *semantic.Compilation, fullName string) *semantic.TypeDef {
	tb.Helper()

	t, err := c.MustLookup(fullName, 0)
	if err != nil {
		tb.Fatal(err)
	}

	return t
}

// Find returns the first node of the given kind in the source files of c.
func Find(tb testing.TB, c *semantic.Compilation, kind string) *syntax.Node {
	tb.Helper()

	for _, f := range c.Files() {
		for n := range f.Root.Preorder() {
			if n.Kind == kind {
				return n
			}
		}
	}

	tb.Fatalf("No %s in sources", kind)

	return nil
}

func wrapSource(decl string) *bytes.Buffer {
	const (
		header = "using System;\nusing System.Collections.Generic;\nusing System.Linq;\nusing Xunit;\n\n" +
			"class " + TestClass + "\n{\n"
		suffix     = "\n}\n"
		wrapperLen = len(header) + len(suffix)
	)

	var srcFile bytes.Buffer
	srcFile.Grow(wrapperLen + len(decl))

	srcFile.WriteString(header) // ignore error
	srcFile.WriteString(decl)   // ignore error
	srcFile.WriteString(suffix) // ignore error

	return &srcFile
}
