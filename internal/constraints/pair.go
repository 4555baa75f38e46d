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

// Package constraints compiles prop/if/except annotations into a flat
// pairwise-exclusion set (spec.md §4.B) and defines the canonical Pair
// representation shared with internal/obligations.
package constraints

import "pairspec.dev/pairspec/internal/schema"

// Pair is a canonically-ordered obligation or exclusion: Low.Slot <
// High.Slot always (spec.md §3, "Canonical ordering is mandatory").
type Pair struct {
	Low, High schema.Item
}

// MakePair builds a Pair from two items without enforcing order; callers
// that may receive either orientation should use Canonical instead.
func MakePair(a, b schema.Item) Pair { return Pair{Low: a, High: b} }

// Canonical returns the pair with Low.Slot < High.Slot, swapping if
// needed. Every exclusion and obligation is stored in exactly this
// orientation.
func Canonical(a, b schema.Item) Pair {
	if a.Slot < b.Slot {
		return Pair{Low: a, High: b}
	}
	return Pair{Low: b, High: a}
}

// Reverse returns the pair with its two items swapped. Lookups that
// might need the non-canonical orientation query this explicitly, per
// spec.md §3.
func (p Pair) Reverse() Pair { return Pair{Low: p.High, High: p.Low} }
