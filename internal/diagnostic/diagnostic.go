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

// Package diagnostic collects the non-fatal warnings the generator emits
// (bad spec syntax, undefined properties, no-pair-possible vectors,
// schema mismatches in an initial suite) without aborting the run, and
// provides the debug tracer gated by -d/--debug.
package diagnostic

import (
	"fmt"
	"io"
	"strings"
)

// A Warning is one recoverable condition reported by spec.md §7: a
// syntax error, an undefined property reference, an empty slot, a
// no-pair-possible case, or an initial-suite schema mismatch.
type Warning struct {
	// Kind groups warnings for callers that want to count or filter them,
	// e.g. tests asserting "no-pair-possible" never fires for a given spec.
	Kind string
	// Message is the full human-readable text, already formatted.
	Message string
}

func (w *Warning) Error() string { return w.Message }

// List accumulates warnings in emission order. It is never fatal: the
// core never aborts because of what's in a List, it only appends to it
// and keeps going.
type List struct {
	items []*Warning
}

// Addf appends a formatted warning of the given kind.
func (l *List) Addf(kind, format string, args ...interface{}) {
	l.items = append(l.items, &Warning{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Len reports how many warnings have accumulated.
func (l *List) Len() int { return len(l.items) }

// Items returns the accumulated warnings in emission order.
func (l *List) Items() []*Warning { return l.items }

// CountKind reports how many warnings of the given kind were recorded.
func (l *List) CountKind(kind string) int {
	n := 0
	for _, w := range l.items {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Fprint writes every accumulated warning to w, one per line, prefixed
// "warning: ". It never returns an error worth acting on; a write
// failure to stderr isn't recoverable in a more useful way.
func (l *List) Fprint(w io.Writer) {
	for _, warn := range l.items {
		fmt.Fprintf(w, "warning: %s\n", warn.Message)
	}
}

// String joins all warnings for use in test assertions.
func (l *List) String() string {
	var b strings.Builder
	for _, warn := range l.items {
		b.WriteString(warn.Message)
		b.WriteByte('\n')
	}
	return b.String()
}

// Warning kinds, named after spec.md §7's numbered error kinds.
const (
	KindSyntax        = "syntax"         // 1: specification syntax error
	KindUndefinedProp = "undefined-prop" // 2: undefined property reference
	KindEmptySlot     = "empty-slot"     // 3: slot with no regular values
	KindNoPair        = "no-pair"        // 4: no-pair-possible during case build
	KindSchema        = "schema"         // 5: initial-suite schema mismatch
)
