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

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report diagnostics for C# sources",
		Long:  "Inspect the C# files below the given paths as one compilation and print the diagnostics found.",
	}

	cmd.Flags().Bool("json", false, "print diagnostics as JSON")
	rf := addRuleFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		in, logger, err := newInspector(cmd, rf)
		if err != nil {
			return err
		}

		sources, err := collectSources(args)
		if err != nil {
			return err
		}

		logger.Debug("Checking sources", "files", len(sources))

		result, err := in.Check(cmd.Context(), sources)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			err = result.WriteJSON(out)
		} else {
			err = result.WriteText(out)
		}

		if err != nil {
			return fmt.Errorf("writing diagnostics: %w", err)
		}

		if result.HasErrors() {
			return errFindings
		}

		return nil
	}

	return cmd
}
