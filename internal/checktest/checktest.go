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

// Package checktest runs the inspector over txtar fixtures and compares the
// diagnostics with expectations written into the sources.
//
// Expectations are comments of the form
//
//	// want "regexp" `regexp`
//
// on the line where a diagnostic is expected. Each pattern is matched against
// the rule ID and message of one diagnostic of that line, as in
// "xUnit1013: Public method 'M' ...". Archive members ending in ".golden" hold
// the expected result of applying all suggested fixes to the member of the same
// name without the suffix.
package checktest

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	xunitguard "fillmore-labs.com/xunitguard/analyzer"
)

const goldenSuffix = ".golden"

// Run checks the C# members of the archive at path as one compilation and
// reports mismatches between diagnostics and expectations.
func Run(tb testing.TB, path string, opts ...xunitguard.Option) *xunitguard.Result {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Can't read archive %s: %v", path, err)
	}

	return check(tb, ar, opts)
}

// RunWithSuggestedFixes is like [Run] and additionally compares the fixed
// sources with the golden members of the archive. Fixed sources must not
// produce further fixes.
func RunWithSuggestedFixes(tb testing.TB, path string, opts ...xunitguard.Option) *xunitguard.Result {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Can't read archive %s: %v", path, err)
	}

	opts = append(opts, xunitguard.WithSuggestedFixes(true))
	result := check(tb, ar, opts)

	fixed, err := result.Fixed()
	if err != nil {
		tb.Fatalf("Can't apply fixes: %v", err)
	}

	sources := Sources(ar)
	for i, s := range sources {
		if out, ok := fixed[s.Name]; ok {
			sources[i].Src = out
		}
	}

	golden := make(map[string][]byte)
	for _, f := range ar.Files {
		if name, ok := strings.CutSuffix(f.Name, goldenSuffix); ok {
			golden[name] = f.Data
		}
	}

	for _, s := range sources {
		want, ok := golden[s.Name]
		if !ok {
			if _, changed := fixed[s.Name]; changed {
				tb.Errorf("%s: fixes applied, but no golden file", s.Name)
			}

			continue
		}

		if got := s.Src; !bytes.Equal(stripWants(got), stripWants(want)) {
			tb.Errorf("%s: fixed source differs from golden file\n--- got\n%s\n--- want\n%s", s.Name, got, want)
		}
	}

	again, err := xunitguard.New(opts...).Check(context.Background(), sources)
	if err != nil {
		tb.Fatalf("Check of fixed sources failed: %v", err)
	}

	if refixed, err := again.Fixed(); err != nil || len(refixed) > 0 {
		tb.Errorf("Fixed sources are not stable: %d files changed again (err=%v)", len(refixed), err)
	}

	for _, d := range remaining(result.Diagnostics, again.Diagnostics) {
		tb.Errorf("%v: fixed source still reported: %s", again.Position(d), d)
	}

	return result
}

// remaining returns the diagnostics of after whose rule suggested a fix in before.
func remaining(before, after []xunitguard.Diagnostic) []xunitguard.Diagnostic {
	fixable := make(map[string]bool)
	for _, d := range before {
		if len(d.SuggestedFixes) > 0 {
			fixable[d.Rule.ID] = true
		}
	}

	var left []xunitguard.Diagnostic
	for _, d := range after {
		if fixable[d.Rule.ID] {
			left = append(left, d)
		}
	}

	return left
}

// Sources returns the C# members of an archive.
func Sources(ar *txtar.Archive) []xunitguard.Source {
	var sources []xunitguard.Source

	for _, f := range ar.Files {
		if !strings.HasSuffix(f.Name, ".cs") {
			continue
		}

		sources = append(sources, xunitguard.Source{Name: f.Name, Src: bytes.Clone(f.Data)})
	}

	return sources
}

type key struct {
	file string
	line int
}

type expectation struct {
	rx      *regexp.Regexp
	matched bool
}

func check(tb testing.TB, ar *txtar.Archive, opts []xunitguard.Option) *xunitguard.Result {
	tb.Helper()

	sources := Sources(ar)
	if len(sources) == 0 {
		tb.Fatal("Archive holds no C# sources")
	}

	want := make(map[key][]*expectation)
	for _, s := range sources {
		if err := expectations(s, want); err != nil {
			tb.Fatal(err)
		}
	}

	result, err := xunitguard.New(opts...).Check(context.Background(), sources)
	if err != nil {
		tb.Fatalf("Check failed: %v", err)
	}

	for _, d := range result.Diagnostics {
		pos := result.Position(d)
		k := key{pos.Filename, pos.Line}

		if !match(want[k], d.String()) {
			tb.Errorf("%s: unexpected diagnostic: %s", pos, d)
		}
	}

	for k, es := range want {
		for _, e := range es {
			if !e.matched {
				tb.Errorf("%s:%d: no diagnostic was reported matching %#q", k.file, k.line, e.rx)
			}
		}
	}

	return result
}

func match(es []*expectation, text string) bool {
	for _, e := range es {
		if !e.matched && e.rx.MatchString(text) {
			e.matched = true

			return true
		}
	}

	return false
}

var wantPattern = regexp.MustCompile(`//\s*want\s+(.*)$`)

// expectations collects the want comments of a source.
func expectations(s xunitguard.Source, want map[key][]*expectation) error {
	for i, line := range strings.Split(string(s.Src), "\n") {
		m := wantPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		patterns, err := unquoteAll(m[1])
		if err != nil {
			return fmt.Errorf("%s:%d: %w", s.Name, i+1, err)
		}

		k := key{s.Name, i + 1}
		for _, p := range patterns {
			rx, err := regexp.Compile(p)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", s.Name, i+1, err)
			}

			want[k] = append(want[k], &expectation{rx: rx})
		}
	}

	return nil
}

// unquoteAll splits a list of Go string literals.
func unquoteAll(list string) ([]string, error) {
	var out []string

	for rest := strings.TrimSpace(list); rest != ""; rest = strings.TrimSpace(rest) {
		lit, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return nil, fmt.Errorf("malformed want pattern %q: %w", rest, err)
		}

		s, err := strconv.Unquote(lit)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
		rest = rest[len(lit):]
	}

	return out, nil
}

var stripPattern = regexp.MustCompile(`[ \t]*//\s*want\s+.*`)

// stripWants removes expectation comments, so golden files need not repeat them.
func stripWants(src []byte) []byte {
	return stripPattern.ReplaceAll(src, nil)
}
