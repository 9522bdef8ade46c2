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

// Package suppress finds in-source suppressions of rule diagnostics.
//
// Two forms are recognized: a `// nolint:xunitguard` (or `nolint:all`) comment on the
// reported line, and `#pragma warning disable` / `#pragma warning restore` regions
// naming rule IDs.
package suppress

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/xunitguard/internal/syntax"
)

// xunitguard is the name of the linter.
const xunitguard = "xunitguard"

// Index answers whether a diagnostic in one file is suppressed.
type Index struct {
	file    *syntax.File
	nolint  map[int]bool // lines carrying a nolint comment
	regions []region
}

type region struct {
	id         string // empty for all rules
	start, end int    // byte offsets, end exclusive
}

var (
	nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	pragmaPattern = regexp.MustCompile(`^\s*#\s*pragma\s+warning\s+(disable|restore)\b([^/\r\n]*)`)
)

// NewIndex scans the comments and pragma directives of f.
func NewIndex(f *syntax.File) *Index {
	idx := &Index{file: f, nolint: make(map[int]bool)}

	for _, c := range f.Comments {
		if CommentHasNoLint(c.Text()) {
			idx.nolint[f.Line(c.Start)] = true
		}
	}

	idx.scanPragmas()

	return idx
}

// CommentHasNoLint checks if the provided comment contains a `//nolint:xunitguard` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == xunitguard || l == "all" {
			return true
		}
	}

	return false
}

func (idx *Index) scanPragmas() {
	open := make(map[string]int)
	src := idx.file.Src

	for offset := 0; offset < len(src); {
		end := bytes.IndexByte(src[offset:], '\n')
		if end < 0 {
			end = len(src)
		} else {
			end += offset + 1
		}

		if m := pragmaPattern.FindSubmatch(src[offset:end]); m != nil {
			ids := pragmaIDs(string(m[2]))

			switch string(m[1]) {
			case "disable":
				for _, id := range ids {
					if _, ok := open[id]; !ok {
						open[id] = end
					}
				}

			case "restore":
				for _, id := range ids {
					idx.close(open, id, offset)
				}
			}
		}

		offset = end
	}

	for id, start := range open {
		idx.regions = append(idx.regions, region{id: id, start: start, end: len(src)})
	}

	slices.SortFunc(idx.regions, func(a, b region) int { return a.start - b.start })
}

// close ends the open regions matching id. An empty id closes every region.
func (idx *Index) close(open map[string]int, id string, at int) {
	for o, start := range open {
		if id != "" && o != id {
			continue
		}

		idx.regions = append(idx.regions, region{id: o, start: start, end: at})
		delete(open, o)
	}
}

// pragmaIDs returns the rule IDs of a pragma, or a single empty ID for all rules.
func pragmaIDs(list string) []string {
	var ids []string

	for id := range strings.SplitSeq(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return []string{""}
	}

	return ids
}

// Suppressed reports whether a diagnostic of rule id starting at offset is suppressed.
func (idx *Index) Suppressed(id string, offset int) bool {
	if idx.nolint[idx.file.Line(offset)] {
		return true
	}

	for _, r := range idx.regions {
		if r.start > offset {
			break
		}

		if offset < r.end && (r.id == "" || strings.EqualFold(r.id, id)) {
			return true
		}
	}

	return false
}
