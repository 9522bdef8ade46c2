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

package report

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"

	"github.com/fatih/color"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	locColor     = color.New(color.Bold)
	ruleColor    = color.New(color.FgCyan)
)

// WriteText prints diagnostics in the form
//
//	<file>:<line>:<col>: <severity> <rule>: <message>
//
// Colors are only emitted when color output is enabled.
func WriteText(w io.Writer, fset *token.FileSet, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		sev := warningColor
		if d.Rule.Severity == Error {
			sev = errorColor
		}

		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			locColor.Sprint(fset.Position(d.Pos)), sev.Sprint(d.Rule.Severity), ruleColor.Sprint(d.Rule.ID), d.Message); err != nil {
			return err
		}
	}

	return nil
}

// LocationJSON is a source location in JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

// EditJSON is a text edit of a suggested fix in JSON output.
type EditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
}

// FixJSON is a suggested fix in JSON output.
type FixJSON struct {
	Title string     `json:"title"`
	Edits []EditJSON `json:"edits"`
}

// DiagnosticJSON is a diagnostic in JSON output.
type DiagnosticJSON struct {
	Rule     string       `json:"rule"`
	Severity string       `json:"severity"`
	Category string       `json:"category"`
	Message  string       `json:"message"`
	HelpURL  string       `json:"help_url,omitempty"`
	Location LocationJSON `json:"location"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(fset *token.FileSet, pos, end token.Pos) LocationJSON {
	start, stop := fset.Position(pos), fset.Position(end)

	return LocationJSON{
		File:      start.Filename,
		StartLine: start.Line,
		StartCol:  start.Column,
		EndLine:   stop.Line,
		EndCol:    stop.Column,
	}
}

// WriteJSON prints diagnostics as an indented JSON document.
func WriteJSON(w io.Writer, fset *token.FileSet, diagnostics []Diagnostic) error {
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(diagnostics)),
		Count:       len(diagnostics),
	}

	for _, d := range diagnostics {
		dj := DiagnosticJSON{
			Rule:     d.Rule.ID,
			Severity: d.Rule.Severity.String(),
			Category: d.Rule.Category,
			Message:  d.Message,
			HelpURL:  d.Rule.HelpURL,
			Location: makeLocation(fset, d.Pos, d.End),
		}

		for _, fix := range d.SuggestedFixes {
			fj := FixJSON{Title: fix.Message}
			for _, e := range fix.TextEdits {
				fj.Edits = append(fj.Edits, EditJSON{Location: makeLocation(fset, e.Pos, e.End), NewText: string(e.NewText)})
			}

			dj.Fixes = append(dj.Fixes, fj)
		}

		out.Diagnostics = append(out.Diagnostics, dj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
