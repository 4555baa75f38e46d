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

// Package obligations maintains the outstanding-pair set described in
// spec.md §4.C: a map for O(1) membership, a shuffled seed queue with
// lazy tail-pop deletion, and a per-column index oriented so the column
// of interest always comes first. This is the heart of the "lazy
// bookkeeping" spec.md §2 calls out as a deliberately non-eager design:
// eager deletion from every per-column list on every Clear would be
// asymptotically worse and would also defeat the random seed ordering
// (spec.md §9, "Lazy deletion").
package obligations

import (
	"pairspec.dev/pairspec/internal/constraints"
	"pairspec.dev/pairspec/internal/random"
	"pairspec.dev/pairspec/internal/schema"
)

// Store holds the outstanding obligations for one generation run. It is
// populated once by Init and then only shrinks (spec.md §3, "Obligation
// store: populated once, then monotonically shrinks").
type Store struct {
	outstanding map[constraints.Pair]struct{}
	shuffled    []constraints.Pair   // seed queue, tail-pop
	byColumn    [][]constraints.Pair // byColumn[c][i] always has c's item as Low (reversed where c is the higher slot)
}

// Init enumerates all pairs of items drawn from multiple-value columns
// (spec.md §4.C "init()"): single-column items need no pair obligations
// since their value is forced into every vector. Pairs whose canonical
// or reversed form is excluded are skipped. The seed queue is shuffled
// using rng so the case builder's seed pop order isn't an artifact of declaration
// order (spec.md §4.D rationale (d)).
func Init(sc *schema.Schema, excl *constraints.Exclusions, rng *random.Source) *Store {
	s := &Store{
		outstanding: map[constraints.Pair]struct{}{},
		byColumn:    make([][]constraints.Pair, sc.NCol()),
	}
	multi := sc.MultipleColumns()
	for idx, i := range multi {
		for _, v1 := range sc.Column(i).Values {
			iItem := schema.Item{Slot: i, Value: v1}
			for _, j := range multi[idx+1:] {
				for _, v2 := range sc.Column(j).Values {
					jItem := schema.Item{Slot: j, Value: v2}
					if excl.Has(iItem, jItem) {
						continue
					}
					pair := constraints.Pair{Low: iItem, High: jItem}
					s.outstanding[pair] = struct{}{}
					s.shuffled = append(s.shuffled, pair)
					s.byColumn[i] = append(s.byColumn[i], pair)
					s.byColumn[j] = append(s.byColumn[j], pair.Reverse())
				}
			}
		}
	}
	rng.Shuffle(len(s.shuffled), func(a, b int) {
		s.shuffled[a], s.shuffled[b] = s.shuffled[b], s.shuffled[a]
	})
	return s
}

// Len reports how many obligations remain outstanding.
func (s *Store) Len() int { return len(s.outstanding) }

// OutstandingPairs returns every canonical pair still outstanding, in
// no particular order (it walks a map). Used by -p/--pairs reporting.
func (s *Store) OutstandingPairs() []constraints.Pair {
	out := make([]constraints.Pair, 0, len(s.outstanding))
	for p := range s.outstanding {
		out = append(out, p)
	}
	return out
}

// Has reports whether the canonical pair is still outstanding.
func (s *Store) Has(p constraints.Pair) bool {
	_, ok := s.outstanding[p]
	return ok
}

// PopSeed repeatedly pops the tail of the seed queue until it finds a
// pair still outstanding, discarding stale (already-covered) entries
// along the way; it returns ok=false once the queue is exhausted
// (spec.md §4.C "pop_seed()").
func (s *Store) PopSeed() (p constraints.Pair, ok bool) {
	for len(s.shuffled) > 0 {
		last := len(s.shuffled) - 1
		cand := s.shuffled[last]
		s.shuffled = s.shuffled[:last]
		if s.Has(cand) {
			return cand, true
		}
	}
	return constraints.Pair{}, false
}

// Clear removes the canonical pair for every pair of concrete positions
// in vector from the outstanding set (spec.md §4.C "clear(vector)"). It
// performs no compaction of byColumn/shuffled here; they self-heal when
// next visited. It returns how many previously-outstanding obligations
// this vector satisfied.
func (s *Store) Clear(vector []string, dontCare string) int {
	cleared := 0
	for i := range vector {
		if vector[i] == dontCare {
			continue
		}
		for j := i + 1; j < len(vector); j++ {
			if vector[j] == dontCare {
				continue
			}
			pair := constraints.Pair{
				Low:  schema.Item{Slot: i, Value: vector[i]},
				High: schema.Item{Slot: j, Value: vector[j]},
			}
			if _, ok := s.outstanding[pair]; ok {
				delete(s.outstanding, pair)
				cleared++
			}
		}
	}
	return cleared
}

// ColumnCandidates walks byColumn[col] from the front, lazily deleting
// (swap-with-tail) any entry whose pair (in either orientation) is no
// longer outstanding, and calling visit(pair) for each still-live
// entry. Live entries are oriented with col's item first (Low), the
// other item second (High), regardless of the two slots' numeric
// order, so callers never need to reorient. Walking stops once the
// column is exhausted or visit returns false, e.g. because the caller's
// maxCandidates budget (spec.md §4.D) is full -- this package has no
// opinion on that budget, it only knows how to walk and self-heal.
func (s *Store) ColumnCandidates(col int, visit func(p constraints.Pair) (more bool)) {
	list := s.byColumn[col]
	i := 0
	for i < len(list) {
		ob := list[i]
		if !s.Has(ob) && !s.Has(ob.Reverse()) {
			last := len(list) - 1
			list[i] = list[last]
			list = list[:last]
			continue
		}
		i++
		if !visit(ob) {
			break
		}
	}
	s.byColumn[col] = list
}
