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

package diagnostic

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	digest "github.com/opencontainers/go-digest"
)

// Tracer writes -d/--debug tracing to an arbitrary writer (stderr in the
// CLI). It replaces genpairs.py's module-level dbg/dbg_p functions, which
// wrote to stderr only when DBG was true; here the gate and the writer are
// both held explicitly rather than as package globals, per spec.md §9
// ("global mutable state → passed context").
type Tracer struct {
	w       io.Writer
	enabled bool
	runID   uuid.UUID
}

// NewTracer creates a tracer. enabled corresponds to -d/--debug; when
// false, Printf and Banner are no-ops.
func NewTracer(w io.Writer, enabled bool) *Tracer {
	return &Tracer{w: w, enabled: enabled, runID: uuid.New()}
}

// Enabled reports whether debug tracing is active.
func (t *Tracer) Enabled() bool { return t != nil && t.enabled }

// Printf writes a trace line if tracing is enabled.
func (t *Tracer) Printf(format string, args ...interface{}) {
	if !t.Enabled() {
		return
	}
	fmt.Fprintf(t.w, "[%s] "+format+"\n", append([]interface{}{t.runID.String()[:8]}, args...)...)
}

// Banner prints a one-time header identifying the run and the exact
// bytes of the specification that was parsed, so warnings from two
// concurrent debug logs (e.g. a generation run and a later --pairs-only
// run over the same file) can be told apart.
func (t *Tracer) Banner(rawSpec []byte) {
	if !t.Enabled() {
		return
	}
	d := digest.FromBytes(rawSpec)
	fmt.Fprintf(t.w, "--- pairspec run %s, spec %s ---\n", t.runID, d)
}
