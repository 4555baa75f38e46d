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

// Package suite is the top-level driver (spec.md §4.E) plus the
// initial-suite absorber (spec.md §4.F): it runs the pairs phase and
// the singles phase over a shared case builder and obligation store,
// and can drain obligations from a previously executed suite before
// either phase starts.
package suite

import (
	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/obligations"
	"pairspec.dev/pairspec/internal/schema"
)

// Result holds the two suites a run can produce, kept separate per
// spec.md §4.E ("Two distinct singletons never appear together in one
// vector").
type Result struct {
	Pairs   []caseb.Vector
	Singles []caseb.Vector
}

// Driver orchestrates the pairs and singles phases over one schema.
type Driver struct {
	sc      *schema.Schema
	store   *obligations.Store
	builder *caseb.Builder
	diags   *diagnostic.List
}

// New creates a Driver. The obligation store and case builder must
// already be initialized over sc (internal/obligations.Init,
// internal/caseb.New) before constructing a Driver, since absorbing an
// initial suite (Absorb) typically needs to run between store Init and
// the first phase.
func New(sc *schema.Schema, store *obligations.Store, builder *caseb.Builder, diags *diagnostic.List) *Driver {
	return &Driver{sc: sc, store: store, builder: builder, diags: diags}
}

// RunPairs runs the pairs phase (spec.md §4.E): call BuildOne until the
// seed queue is exhausted, collecting every accepted vector. Each call
// either clears at least one obligation or discards its seed for
// good (emitting a no-pair-possible warning), so the loop always
// terminates.
func (d *Driver) RunPairs() []caseb.Vector {
	var out []caseb.Vector
	for {
		v, built, more := d.builder.BuildOne()
		if !more {
			return out
		}
		if built {
			out = append(out, v)
		}
	}
}

// RunSingles runs the singles phase (spec.md §4.E): one fresh vector
// per declared singleton, each forced to that singleton's value. Two
// distinct singletons are never combined in the same vector (spec.md
// §9's open question, explicitly preserved rather than "optimized
// away").
func (d *Driver) RunSingles() []caseb.Vector {
	var out []caseb.Vector
	for _, s := range d.sc.Singletons() {
		if v, ok := d.builder.BuildSingle(s.Slot, s.Value); ok {
			out = append(out, v)
		}
	}
	return out
}

// RequiredPairs reports the canonical pairs still outstanding -- used
// by -p/--pairs to list what an initial suite (if any) still lacks,
// matching spec.md §6's -p flag and genpairs.py's print_required_pairs.
func (d *Driver) RequiredPairs() []PairDescription {
	pairs := d.store.OutstandingPairs()
	out := make([]PairDescription, len(pairs))
	for i, p := range pairs {
		out[i] = PairDescription{
			Name1:  d.sc.Column(p.Low.Slot).Name,
			Value1: p.Low.Value,
			Name2:  d.sc.Column(p.High.Slot).Name,
			Value2: p.High.Value,
		}
	}
	return out
}

// PairDescription names an outstanding pair using slot names rather
// than indices, for human-readable -p output.
type PairDescription struct {
	Name1, Value1 string
	Name2, Value2 string
}
