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

package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"

	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/rules"
	"fillmore-labs.com/xunitguard/internal/run"
	"fillmore-labs.com/xunitguard/internal/semantic"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// Public API constants for the xunitguard inspector.
const (
	Name = "xunitguard"
	Doc  = `xunitguard reports misuse of xUnit test attributes and assertions in C# sources`
	URL  = "https://pkg.go.dev/fillmore-labs.com/xunitguard"
)

type (
	// Descriptor is the static description of a rule.
	Descriptor = report.Descriptor

	// Diagnostic is a finding of a rule at a source location.
	Diagnostic = report.Diagnostic

	// Severity is the severity of a diagnostic.
	Severity = report.Severity
)

// Severities of diagnostics.
const (
	Warning = report.Warning
	Error   = report.Error
)

// Rules returns the descriptors of all rules, ordered by rule ID.
func Rules() []*Descriptor {
	return rules.Descriptors()
}

// Source is a named C# source text.
type Source struct {
	Name string
	Src  []byte
}

// Inspector checks C# sources.
type Inspector struct {
	opts *run.Options
}

// New creates a new inspector.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the inspector into other tools.
func New(opts ...Option) *Inspector {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	return &Inspector{opts: r}
}

// Check inspects sources as one compilation.
//
// Syntax errors do not stop the inspection. When ctx is canceled, the
// diagnostics found so far are returned together with the context error.
func (in *Inspector) Check(ctx context.Context, sources []Source) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	fset := token.NewFileSet()
	files := make([]*syntax.File, 0, len(sources))

	for _, s := range sources {
		f, err := syntax.Parse(ctx, fset, s.Name, s.Src)
		if err != nil {
			return nil, err
		}

		if f.HasErrors() {
			in.opts.Logger.DebugContext(ctx, "Recovered from syntax errors", "file", s.Name)
		}

		files = append(files, f)
	}

	c, err := semantic.NewCompilation(ctx, fset, files)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}

	diagnostics, err := in.opts.Run(ctx, c)

	return &Result{Fset: fset, Diagnostics: diagnostics, files: files}, err
}
