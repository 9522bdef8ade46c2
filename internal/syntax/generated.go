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

package syntax

import (
	"path/filepath"
	"strings"
)

var generatedSuffixes = [...]string{".g.cs", ".g.i.cs", ".designer.cs", ".generated.cs", ".AssemblyInfo.cs"}

// Generated reports whether the file is produced by a code generator.
//
// Files are considered generated when their name ends with a well-known generator
// suffix or when a leading comment carries an <auto-generated> marker.
func (f *File) Generated() bool {
	base := strings.ToLower(filepath.Base(f.Name))
	for _, suffix := range generatedSuffixes {
		if strings.HasSuffix(base, strings.ToLower(suffix)) {
			return true
		}
	}

	first := f.firstToken()
	for _, c := range f.Comments {
		if c.Start > first {
			break
		}

		text := c.Text()
		if strings.Contains(text, "<auto-generated") || strings.Contains(text, "<autogenerated") {
			return true
		}
	}

	return false
}

func (f *File) firstToken() int {
	if len(f.Root.Children) == 0 {
		return len(f.Src)
	}

	return f.Root.Children[0].Start
}
