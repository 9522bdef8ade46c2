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
	"errors"
	"fmt"
	"go/token"
	"io"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/xunitguard/internal/fix"
	"fillmore-labs.com/xunitguard/internal/report"
	"fillmore-labs.com/xunitguard/internal/syntax"
)

// ErrConflict is returned when suggested fixes of one file cannot be applied together.
var ErrConflict = errors.New("conflicting fixes")

// Result holds the outcome of [Inspector.Check].
type Result struct {
	Fset        *token.FileSet
	Diagnostics []Diagnostic

	files []*syntax.File
}

// HasErrors reports whether a diagnostic of [Error] severity was found.
func (r *Result) HasErrors() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool { return d.Rule.Severity == Error })
}

// Position returns the source position of a diagnostic.
func (r *Result) Position(d Diagnostic) token.Position {
	return r.Fset.Position(d.Pos)
}

// Fixed applies the first suggested fix of every diagnostic and returns the
// rewritten sources of the changed files, keyed by file name.
func (r *Result) Fixed() (map[string][]byte, error) {
	edits := make(map[*token.File][]analysis.TextEdit)

	for _, d := range r.Diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		for _, e := range d.SuggestedFixes[0].TextEdits {
			tok := r.Fset.File(e.Pos)
			edits[tok] = append(edits[tok], e)
		}
	}

	fixed := make(map[string][]byte, len(edits))

	for _, f := range r.files {
		es, ok := edits[f.TokenFile()]
		if !ok {
			continue
		}

		out, err := fix.Apply(f.TokenFile(), f.Src, es)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", f.Name, ErrConflict, err)
		}

		fixed[f.Name] = out
	}

	return fixed, nil
}

// WriteText prints the diagnostics, one per line, prefixed with their position.
func (r *Result) WriteText(w io.Writer) error {
	return report.WriteText(w, r.Fset, r.Diagnostics)
}

// WriteJSON prints the diagnostics as a JSON document.
func (r *Result) WriteJSON(w io.Writer) error {
	return report.WriteJSON(w, r.Fset, r.Diagnostics)
}
