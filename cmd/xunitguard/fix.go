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
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	xunitguard "fillmore-labs.com/xunitguard/analyzer"
)

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply suggested fixes to C# sources",
		Long:  "Inspect the C# files below the given paths and rewrite them with the suggested fixes of the diagnostics found.",
	}

	cmd.Flags().Bool("dry-run", false, "print the rewritten files instead of writing them")
	rf := addRuleFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		in, logger, err := newInspector(cmd, rf, xunitguard.WithSuggestedFixes(true))
		if err != nil {
			return err
		}

		sources, err := collectSources(args)
		if err != nil {
			return err
		}

		result, err := in.Check(cmd.Context(), sources)
		if err != nil {
			return err
		}

		fixed, err := result.Fixed()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		for _, name := range slices.Sorted(maps.Keys(fixed)) {
			if dryRun {
				fmt.Fprintf(out, "--- %s\n%s", name, fixed[name])

				continue
			}

			info, err := os.Stat(name)
			if err != nil {
				return err
			}

			if err := os.WriteFile(name, fixed[name], info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}

			logger.Info("Fixed file", "file", name)
		}

		return nil
	}

	return cmd
}
