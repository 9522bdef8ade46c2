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

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	xunitguard "fillmore-labs.com/xunitguard/analyzer"
)

// skipDirs are build output directories never holding sources.
var skipDirs = []string{"bin", "obj", "node_modules"}

// collectSources reads the C# files named by paths, descending into directories.
func collectSources(paths []string) ([]xunitguard.Source, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var names []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			names = append(names, p)

			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != p && (slices.Contains(skipDirs, d.Name()) || strings.HasPrefix(d.Name(), ".")) {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.EqualFold(filepath.Ext(path), ".cs") {
				names = append(names, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}

	slices.Sort(names)
	names = slices.Compact(names)

	sources := make([]xunitguard.Source, 0, len(names))
	for _, name := range names {
		src, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		sources = append(sources, xunitguard.Source{Name: name, Src: src})
	}

	return sources, nil
}
