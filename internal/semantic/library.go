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
	"context"
	"embed"
	"fmt"
	"go/token"
	"io/fs"
	"path"
	"sync"

	"fillmore-labs.com/xunitguard/internal/syntax"
)

//go:embed refs/*.cs
var refs embed.FS

// library is the reference compilation of the embedded System and xUnit declarations.
var library = sync.OnceValues(func() (*Compilation, error) {
	names, err := fs.Glob(refs, "refs/*.cs")
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	files := make([]*syntax.File, 0, len(names))
	for _, name := range names {
		src, err := refs.ReadFile(name)
		if err != nil {
			return nil, err
		}

		f, err := syntax.Parse(context.Background(), fset, path.Base(name), src)
		if err != nil {
			return nil, fmt.Errorf("reference library: %w", err)
		}

		files = append(files, f)
	}

	return build(fset, files, nil, true), nil
})
