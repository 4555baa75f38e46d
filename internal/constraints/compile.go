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

package constraints

import "pairspec.dev/pairspec/internal/schema"

// Exclusions is the compiled set of pairs that must never co-occur in
// any generated vector (spec.md §3, "Exclusion set"). It is built once
// and never mutated after Compile returns.
type Exclusions struct {
	set map[Pair]struct{}
}

// Has reports whether either orientation of (a,b) is excluded.
func (e *Exclusions) Has(a, b schema.Item) bool {
	return e.hasCanonical(Canonical(a, b))
}

// hasCanonical reports whether a pair, already in canonical order, is
// excluded in either orientation.
func (e *Exclusions) hasCanonical(p Pair) bool {
	_, f := e.set[p]
	_, r := e.set[p.Reverse()]
	return f || r
}

func (e *Exclusions) add(a, b schema.Item) {
	e.set[Canonical(a, b)] = struct{}{}
}

// Compile expands the `prop`/`if`/`except` declarations gathered by the
// parser into a flat exclusion set, following spec.md §4.B's algorithm
// exactly (this is a direct translation of genpairs.py's makeExcludes):
//
//   - for every `except C` on (s,v): for every slot s' carrying at least
//     one value tagged C, for every regular value v' of s' that *is*
//     tagged C, exclude (s,v)-(s',v').
//   - for every `if C` on (s,v): symmetrically, for every v' of such an
//     s' that is *not* tagged C, exclude (s,v)-(s',v').
//
// A property referenced by an if/except that no value anywhere declares
// yields an empty iteration -- schema.Builder.Build already recorded the
// warning for that; Compile just sees no slots to exclude against.
func Compile(b *schema.Builder, sc *schema.Schema) *Exclusions {
	ex := &Exclusions{set: map[Pair]struct{}{}}
	for _, ref := range b.Excepts() {
		for _, conflictSlot := range b.PropertySlots(ref.Prop) {
			for _, v := range sc.Column(conflictSlot).Values {
				other := schema.Item{Slot: conflictSlot, Value: v}
				if hasProp(b, other, ref.Prop) {
					ex.add(ref.Item, other)
				}
			}
		}
	}
	for _, ref := range b.Ifs() {
		for _, conflictSlot := range b.PropertySlots(ref.Prop) {
			for _, v := range sc.Column(conflictSlot).Values {
				other := schema.Item{Slot: conflictSlot, Value: v}
				if !hasProp(b, other, ref.Prop) {
					ex.add(ref.Item, other)
				}
			}
		}
	}
	return ex
}

func hasProp(b *schema.Builder, item schema.Item, prop string) bool {
	for _, p := range b.ValueProperties(item) {
		if p == prop {
			return true
		}
	}
	return false
}
