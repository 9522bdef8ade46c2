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
	"log/slog"

	"fillmore-labs.com/xunitguard/internal/config"
	"fillmore-labs.com/xunitguard/internal/rules"
	"fillmore-labs.com/xunitguard/internal/run"
)

// Option configures specific behavior of a [New] inspector.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// KnownRule reports whether id names a rule.
func KnownRule(id string) bool {
	_, ok := rules.Lookup(id)

	return ok
}

// WithRule is an [Option] to enable or disable the rule with the given ID.
// Unknown IDs are ignored.
func WithRule(id string, enabled bool) Option { return ruleOption{id: id, enabled: enabled} }

type ruleOption struct {
	id      string
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	if d, ok := rules.Lookup(o.id); ok {
		r.Rules.Set(d.Flag, o.enabled)
	}
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.id, o.enabled)
}

// WithRules is an [Option] enabling exactly the rules with the given IDs.
func WithRules(ids ...string) Option { return rulesOption{ids: ids} }

type rulesOption struct{ ids []string }

func (o rulesOption) apply(r *run.Options) {
	var enabled config.BitMask[config.RuleFlags]

	for _, id := range o.ids {
		if d, ok := rules.Lookup(id); ok {
			enabled.Enable(d.Flag)
		}
	}

	r.Rules = enabled
}

func (o rulesOption) LogAttr() slog.Attr {
	return slog.Any("rules", o.ids)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSuggestedFixes is an [Option] to configure whether diagnostics carry suggested fixes.
func WithSuggestedFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("suggest-fixes", o.fixes)
}

// WithConcurrency is an [Option] to limit the number of constructs inspected in parallel.
// Values below one use GOMAXPROCS.
func WithConcurrency(concurrency int) Option { return concurrencyOption{concurrency: concurrency} }

type concurrencyOption struct{ concurrency int }

func (o concurrencyOption) apply(r *run.Options) {
	r.Concurrency = o.concurrency
}

func (o concurrencyOption) LogAttr() slog.Attr {
	return slog.Int("concurrency", o.concurrency)
}

// WithLogger is an [Option] to set the logger receiving internal errors.
// A nil logger discards them.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *run.Options) {
	if o.logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)

		return
	}

	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
