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

package usage

import (
	"fillmore-labs.com/xunitguard/internal/semantic"
)

// Flags indicates how a parameter is used.
type Flags uint8

const (
	// UsageRead indicates the parameter value is read.
	UsageRead Flags = 1 << iota

	// UsageWritten indicates the parameter is assigned to.
	UsageWritten

	// UsageNone indicates the parameter is never referenced.
	UsageNone Flags = 0
)

// Read indicates the parameter value is read.
func (f Flags) Read() bool {
	return f&UsageRead != 0
}

// Written indicates the parameter is assigned to.
func (f Flags) Written() bool {
	return f&UsageWritten != 0
}

// Result contains the usage of each parameter of a method.
type Result struct {
	params []*semantic.Parameter
	usages []Flags
}

// Of returns the usage of a parameter.
func (r Result) Of(p *semantic.Parameter) Flags {
	for i, q := range r.params {
		if q == p {
			return r.usages[i]
		}
	}

	return UsageNone
}

// Unused returns the parameters that are never read, in declaration order.
func (r Result) Unused() []*semantic.Parameter {
	var unused []*semantic.Parameter
	for i, p := range r.params {
		if !r.usages[i].Read() {
			unused = append(unused, p)
		}
	}

	return unused
}
