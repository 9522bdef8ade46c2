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
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	xunitguard "fillmore-labs.com/xunitguard/analyzer"
	"fillmore-labs.com/xunitguard/settings"
)

// errFindings signals that the inspection reported errors.
var errFindings = errors.New("errors found")

func exitCode(err error) int {
	if errors.Is(err, errFindings) {
		return 1
	}

	return 2
}

func printError(err error) {
	if errors.Is(err, errFindings) {
		return
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
}

// ruleFlags holds the inspector flags of one command, bound after settings are loaded.
type ruleFlags struct {
	fs *flag.FlagSet
}

// addRuleFlags registers the per-rule flags of an inspector on cmd.
func addRuleFlags(cmd *cobra.Command) *ruleFlags {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	xunitguard.New().RegisterFlags(fs)
	cmd.Flags().AddGoFlagSet(fs)

	return &ruleFlags{fs: fs}
}

// options returns the changed command line flags as options.
func (r *ruleFlags) options(cmd *cobra.Command) ([]xunitguard.Option, error) {
	var opts []xunitguard.Option

	var err error

	r.fs.VisitAll(func(f *flag.Flag) {
		if err != nil || !cmd.Flags().Changed(f.Name) {
			return
		}

		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}

		switch v := g.Get().(type) {
		case bool:
			switch {
			case xunitguard.KnownRule(f.Name):
				opts = append(opts, xunitguard.WithRule(f.Name, v))
			case f.Name == "generated":
				opts = append(opts, xunitguard.WithGenerated(v))
			case f.Name == "suggest-fixes":
				opts = append(opts, xunitguard.WithSuggestedFixes(v))
			}

		case int:
			opts = append(opts, xunitguard.WithConcurrency(v))

		default:
			err = fmt.Errorf("unexpected flag type %T for %s", v, f.Name)
		}
	})

	return opts, err
}

// newInspector configures an inspector from the settings file, the command line and the logger.
func newInspector(cmd *cobra.Command, rf *ruleFlags, extra ...xunitguard.Option) (*xunitguard.Inspector, *slog.Logger, error) {
	flags := cmd.Root().PersistentFlags()

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, nil, err
	}

	if noColor {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var opts xunitguard.Options

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, nil, err
	}

	if configPath != "" {
		s, err := settings.Load(configPath)
		if err != nil {
			return nil, nil, err
		}

		fileOpts, err := s.Options()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", configPath, err)
		}

		opts = append(opts, fileOpts...)
	}

	flagOpts, err := rf.options(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts = append(opts, flagOpts...)
	opts = append(opts, extra...)
	opts = append(opts, xunitguard.WithLogger(logger))

	logger.Debug("Configured inspector", opts.LogAttr())

	return xunitguard.New(opts...), logger, nil
}
