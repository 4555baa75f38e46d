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

package suite

import (
	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/obligations"
	"pairspec.dev/pairspec/internal/schema"
)

// Table is a minimal tabular suite as read from CSV: a header row of
// column names and one row of values per test vector that was actually
// executed (spec.md §4.F). internal/csvio.Read produces one of these.
type Table struct {
	Header []string
	Rows   [][]string
}

// Absorb drains every obligation a previously-executed suite already
// covers (spec.md §4.F). Unknown header columns are warned about and
// ignored; rows whose length doesn't match the header are warned about
// and skipped. No validation against the exclusion set is performed --
// the caller is asserting these vectors were actually executed, per
// spec.md §4.F's closing note. It returns how many rows were absorbed
// (for -d/--debug summaries).
func Absorb(sc *schema.Schema, store *obligations.Store, t *Table, diags *diagnostic.List) int {
	colFor := make([]int, len(t.Header))
	for i, name := range t.Header {
		colFor[i] = -1
		for slot, c := range sc.Columns() {
			if c.Name == name {
				colFor[i] = slot
				break
			}
		}
		if colFor[i] == -1 {
			diags.Addf(diagnostic.KindSchema, "initial suite: column %q not in specification", name)
		}
	}

	absorbed := 0
	for _, row := range t.Rows {
		if len(row) != len(t.Header) {
			diags.Addf(diagnostic.KindSchema,
				"initial suite: expecting %d columns but saw %d; skipping row", len(t.Header), len(row))
			continue
		}
		vec := make(caseb.Vector, sc.NCol())
		for i := range vec {
			vec[i] = caseb.DontCare
		}
		for i, val := range row {
			if colFor[i] != -1 {
				vec[colFor[i]] = val
			}
		}
		store.Clear(vec, caseb.DontCare)
		absorbed++
	}
	return absorbed
}
