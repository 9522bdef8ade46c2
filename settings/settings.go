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

// Package settings loads inspector configuration from TOML files.
//
// Example:
//
//	generated = false
//	suggest-fixes = true
//	concurrency = 4
//
//	[rules]
//	xUnit1013 = false
package settings

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	xunitguard "fillmore-labs.com/xunitguard/analyzer"
)

var (
	// ErrUnknownRule is returned for rule IDs that name no rule.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownKey is returned for settings keys not understood by the inspector.
	ErrUnknownKey = errors.New("unknown settings key")
)

// Settings represents the configuration options of an inspector.
type Settings struct {
	// Generated enables checks in generated files.
	Generated *bool `toml:"generated"`
	// SuggestFixes attaches suggested fixes to diagnostics.
	SuggestFixes *bool `toml:"suggest-fixes"`
	// Concurrency limits the number of parallel evaluations.
	Concurrency *int `toml:"concurrency"`
	// Rules enables or disables individual rules by ID.
	Rules map[string]bool `toml:"rules"`
}

// Load reads settings from a TOML file.
func Load(path string) (Settings, error) {
	var s Settings

	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if err := checkUndecoded(meta); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode reads settings in TOML format from r.
func Decode(r io.Reader) (Settings, error) {
	var s Settings

	meta, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := checkUndecoded(meta); err != nil {
		return Settings{}, err
	}

	return s, nil
}

func checkUndecoded(meta toml.MetaData) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}

	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
}

// Options converts [Settings] into a list of [xunitguard.Option] for the inspector.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]xunitguard.Option, error) {
	var opts []xunitguard.Option

	opts = appendOption(opts, s.Generated, xunitguard.WithGenerated)
	opts = appendOption(opts, s.SuggestFixes, xunitguard.WithSuggestedFixes)
	opts = appendOption(opts, s.Concurrency, xunitguard.WithConcurrency)

	ids := make([]string, 0, len(s.Rules))
	for id := range s.Rules {
		if !xunitguard.KnownRule(id) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, id)
		}

		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		opts = append(opts, xunitguard.WithRule(id, s.Rules[id]))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [xunitguard.Option] list.
func appendOption[T any](opts []xunitguard.Option, value *T, constructor func(T) xunitguard.Option) []xunitguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
