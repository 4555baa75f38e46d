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

package caseb

import (
	"sort"
	"strings"

	"pairspec.dev/pairspec/internal/constraints"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/obligations"
	"pairspec.dev/pairspec/internal/random"
	"pairspec.dev/pairspec/internal/schema"
)

// maxCandidates bounds the per-column work the scorer does (spec.md §4.D,
// "a fixed tuning constant bounding per-step work"). It is never a flag:
// the spec is explicit that specifications with ~10^20 pair combinations
// complete in minutes with this fixed at 50, and exposing it would just
// invite chasing worse numbers for no documented benefit.
const maxCandidates = 50

// Builder constructs one test vector at a time against a shared schema,
// exclusion set, and obligation store (spec.md §4.D). It holds no state
// of its own between calls to BuildOne/BuildSingle beyond those shared
// references -- the "vector under construction" lives on the call
// stack of complete, not on the Builder.
type Builder struct {
	sc    *schema.Schema
	excl  *constraints.Exclusions
	store *obligations.Store
	rng   *random.Source
	diags *diagnostic.List
	trace *diagnostic.Tracer
}

// New creates a Builder over the given schema, exclusion set, and
// obligation store, using rng for seed and column-order randomization
// and appending any no-pair-possible warnings to diags.
func New(sc *schema.Schema, excl *constraints.Exclusions, store *obligations.Store, rng *random.Source, diags *diagnostic.List, trace *diagnostic.Tracer) *Builder {
	return &Builder{sc: sc, excl: excl, store: store, rng: rng, diags: diags, trace: trace}
}

// BuildOne attempts to build and accept one test vector seeded from an
// outstanding obligation (spec.md §4.D "Public operation"). more is
// false once the seed queue itself is exhausted, at which point the
// caller (internal/suite's pairs-phase loop) must stop: that is the
// termination condition of spec.md §4.E, not store.Len() reaching zero
// -- a seed whose extension fails leaves its obligation outstanding
// forever (consumed as a seed, per spec.md §4.D step 4) without
// shrinking the seed queue any further on its account.
func (b *Builder) BuildOne() (v Vector, built, more bool) {
	seed, ok := b.store.PopSeed()
	if !ok {
		return nil, false, false
	}
	vec := newVector(b.sc.NCol())
	vec[seed.Low.Slot] = seed.Low.Value
	vec[seed.High.Slot] = seed.High.Value
	for _, slot := range b.sc.SingleColumns() {
		vec[slot] = b.sc.Column(slot).Values[0]
	}
	b.trace.Printf("seeded with %s", formatVector(b.sc, vec))
	order := b.rng.Perm(b.sc.NCol())
	if b.complete(order, vec) {
		b.store.Clear(vec, DontCare)
		return vec, true, true
	}
	b.diags.Addf(diagnostic.KindNoPair, "no pair possible: %s", formatVector(b.sc, vec))
	return nil, false, true
}

// BuildSingle builds and completes a vector with slot forced to value,
// for the singles phase (spec.md §4.E). It never consumes a seed
// obligation -- by the time the singles phase runs the pairs phase has
// (usually) already drained the store, so extension typically falls
// through straight to the fallback branch of complete, exactly as
// spec.md's rationale predicts.
func (b *Builder) BuildSingle(slot int, value string) (Vector, bool) {
	vec := newVector(b.sc.NCol())
	vec[slot] = value
	order := b.rng.Perm(b.sc.NCol())
	if b.complete(order, vec) {
		return vec, true
	}
	b.diags.Addf(diagnostic.KindNoPair, "no pair possible: %s", formatVector(b.sc, vec))
	return nil, false
}

// complete is the recursive extension step (spec.md §4.D
// "complete(column_order, vector)"). It mutates vec in place and
// restores it on backtrack, matching spec.md §9's guidance that
// explicit mutation with save/restore is the faster, observed-tuned
// shape (vs. a persistent immutable structure per recursion level).
func (b *Builder) complete(order []int, vec Vector) bool {
	if len(order) == 0 {
		return true
	}
	col := order[0]
	rest := order[1:]
	if vec[col] != DontCare {
		return b.complete(rest, vec)
	}

	candidates := b.gatherCandidates(col, vec)
	for _, cand := range candidates {
		s1, v1 := cand.pair.Low.Slot, cand.pair.Low.Value
		s2, v2 := cand.pair.High.Slot, cand.pair.High.Value
		old1, old2 := vec[s1], vec[s2]
		vec[s1], vec[s2] = v1, v2
		if b.complete(rest, vec) {
			return true
		}
		vec[s1], vec[s2] = old1, old2
	}

	// Fallback: no obligation-derived candidate worked (or none existed);
	// try the column's regular values in declared order.
	for _, val := range b.sc.Column(col).Values {
		item := schema.Item{Slot: col, Value: val}
		if !b.compatible(item, vec) {
			continue
		}
		vec[col] = val
		if b.complete(rest, vec) {
			return true
		}
		vec[col] = DontCare
	}
	return false
}

type candidate struct {
	pair  constraints.Pair
	score int
}

// gatherCandidates implements spec.md §4.D's "gather candidates" and
// "Scoring" steps: walk byColumn[col] (lazily self-healing), keep only
// obligations compatible with vec, score each by *added* coverage, and
// return them sorted by descending score (ties keep list order, i.e.
// Go's stable sort preserves the walk order for equal scores).
func (b *Builder) gatherCandidates(col int, vec Vector) []candidate {
	var out []candidate
	b.store.ColumnCandidates(col, func(p constraints.Pair) bool {
		if len(out) >= maxCandidates {
			return false
		}
		if b.compatible(p.Low, vec) && b.compatible(p.High, vec) {
			out = append(out, candidate{pair: p, score: b.score(p, vec)})
		}
		return len(out) < maxCandidates
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

// score starts at 1 (for the seed obligation the candidate itself
// fulfills) and adds 1 for every additional outstanding pair a *new*
// end of the candidate would satisfy against every already-set
// position in vec -- checking both orientations, per spec.md §4.D
// "Scoring". An end that merely confirms an existing assignment (the
// slot is already set to that value) contributes nothing further,
// which is what prevents double-counting the obligation the candidate
// itself represents.
func (b *Builder) score(p constraints.Pair, vec Vector) int {
	score := 1
	if vec[p.Low.Slot] != p.Low.Value {
		score += b.addedCoverage(p.Low, vec)
	}
	if vec[p.High.Slot] != p.High.Value {
		score += b.addedCoverage(p.High, vec)
	}
	return score
}

func (b *Builder) addedCoverage(item schema.Item, vec Vector) int {
	n := 0
	for ccol, cval := range vec {
		if cval == DontCare {
			continue
		}
		other := schema.Item{Slot: ccol, Value: cval}
		if b.store.Has(constraints.Pair{Low: item, High: other}) {
			n++
		}
		if b.store.Has(constraints.Pair{Low: other, High: item}) {
			n++
		}
	}
	return n
}

// compatible reports whether (slot,value) can be placed into vec
// without conflicting with a position already set or an exclusion
// (spec.md §4.D "Compatibility check").
func (b *Builder) compatible(item schema.Item, vec Vector) bool {
	cur := vec[item.Slot]
	if cur != DontCare && cur != item.Value {
		return false
	}
	for tslot, tval := range vec {
		if tval == DontCare {
			continue
		}
		if b.excl.Has(item, schema.Item{Slot: tslot, Value: tval}) {
			return false
		}
	}
	return true
}

func formatVector(sc *schema.Schema, vec Vector) string {
	var parts []string
	for col, val := range vec {
		if val == DontCare {
			parts = append(parts, DontCare)
			continue
		}
		parts = append(parts, sc.Column(col).Name+"="+val)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
