// Copyright 2026 The Pairspec Authors
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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pairspec.dev/pairspec/internal/diagnostic"
)

// New creates the pairspec command. Unlike cmd/cue/cmd, there is a
// single pipeline (spec.md describes one, not a family of verbs), so
// the root command's RunE does the work directly rather than
// delegating to a subcommand tree.
func New(args []string) (*Command, error) {
	cobraCmd := &cobra.Command{
		Use:   "pairspec",
		Short: "generate a pairwise covering test suite from a specification",
		Long: `pairspec reads a category/value specification from stdin and emits
a test suite covering every legal pair of values from distinct
categories at least once, plus one vector per declared singleton.`,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: cobraCmd}
	cobraCmd.RunE = mkRunE(c, runGenerate)

	addGlobalFlags(cobraCmd.Flags())
	cobraCmd.InitDefaultHelpFlag()

	cobraCmd.SetArgs(args)
	return c, nil
}

type runFunction func(c *Command, args []string) error

// mkRunE wires a runFunction into cobra, matching cmd/cue/cmd/cmd.go's
// mkRunE shape: bind the active *cobra.Command onto c, build the debug
// tracer from -d/--debug, then hand off.
func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cobraCmd *cobra.Command, args []string) error {
		c.Command = cobraCmd

		if flagLicense.Bool(c) {
			fmt.Fprint(c.OutOrStdout(), license)
			return nil
		}

		c.trace = diagnostic.NewTracer(c.Stderr(), flagDebug.Bool(c))

		return f(c, args)
	}
}
