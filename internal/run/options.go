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

package run

import (
	"log/slog"
	"runtime"

	"fillmore-labs.com/xunitguard/internal/config"
)

// Options represent configuration of an inspection run.
type Options struct {
	// Rules represent the rules to be enabled.
	Rules config.BitMask[config.RuleFlags]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Config]

	// Concurrency limits the number of work items evaluated in parallel.
	// Values below one use GOMAXPROCS.
	Concurrency int

	// Logger receives internal errors. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Rules:    config.NewBitMask(config.AllRules),
		Behavior: config.NewBitMask(config.SuggestFixes),
		Logger:   slog.New(slog.DiscardHandler),
	}
}

func (o *Options) limit() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.DiscardHandler)
}
