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

// Package report defines rule descriptors and the diagnostics produced by rules.
package report

import (
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/xunitguard/internal/config"
)

//go:generate go tool stringer -type Severity -linecomment

// Severity is the severity of a diagnostic.
type Severity uint8

const (
	Warning Severity = iota // warning
	Error                   // error
)

// Descriptor is the static description of a rule.
type Descriptor struct {
	ID       string
	Title    string
	Message  string // with positional {0}, {1}... placeholders
	Severity Severity
	Category string
	HelpURL  string
	Flag     config.RuleFlags
}

// Format fills the placeholders of the message template.
func (d *Descriptor) Format(args ...string) string {
	if len(args) == 0 {
		return d.Message
	}

	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
	}

	return strings.NewReplacer(pairs...).Replace(d.Message)
}

// Diagnostic is a finding of a rule at a source location.
type Diagnostic struct {
	Rule           *Descriptor
	Pos, End       token.Pos
	Message        string
	SuggestedFixes []analysis.SuggestedFix
}

// String returns the rule ID and message.
func (d Diagnostic) String() string {
	return d.Rule.ID + ": " + d.Message
}
