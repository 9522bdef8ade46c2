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
	"flag"

	"fillmore-labs.com/xunitguard/internal/config"
)

// RegisterFlags binds the options of the inspector to command line flag values.
// A nil flag set value defaults to the program's command line.
func (in *Inspector) RegisterFlags(flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	o := in.opts

	for _, d := range Rules() {
		flags.Var(NewRuleValue(&o.Rules, d.Flag), d.ID, "enable "+d.ID+": "+d.Title)
	}

	flags.Var(NewBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&o.Behavior, config.SuggestFixes), "suggest-fixes", "attach suggested fixes to diagnostics")
	flags.IntVar(&o.Concurrency, "concurrency", o.Concurrency, "maximum number of parallel evaluations (0 uses GOMAXPROCS)")
}
