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

// Package cmd implements the pairspec command line tool (spec.md §6's
// "CLI surface"), structured the way cmd/cue/cmd structures the cue
// tool: a Command wraps *cobra.Command and carries the run's shared
// state (the debug tracer) across the one RunE this tool has.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pairspec.dev/pairspec/internal/diagnostic"
)

// Command is the active pairspec invocation: the root cobra command
// plus the tracer RunE and its helpers share. Unlike cmd/cue/cmd, there
// is exactly one command (no subcommand tree), so Command has no
// cmdCmd/root split.
type Command struct {
	*cobra.Command

	trace *diagnostic.Tracer
}

// Stderr returns the writer for warnings (spec.md §7's recoverable
// kinds) and tracing output. Unlike cmd/cue/cmd's errWriter, writing to
// it never changes the process exit code -- per spec.md §6, "Exit code
// 0 on successful completion; non-zero only on fatal I/O errors," so
// warnings must stay silent to the exit status.
func (c *Command) Stderr() io.Writer {
	return c.Command.ErrOrStderr()
}

// ErrPrintedError indicates the error has already been written to
// stderr and shouldn't be printed a second time by Main.
var ErrPrintedError = fmt.Errorf("terminating because of errors")

// Run executes the command against args already set on the underlying
// cobra command via New.
func (c *Command) Run(ctx context.Context) error {
	if err := c.Command.ExecuteContext(ctx); err != nil {
		return err
	}
	return nil
}

// Main runs pairspec and returns the process exit code, the same shape
// as cmd/cue/cmd.Main.
func Main() int {
	c, err := New(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.Run(context.Background()); err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
