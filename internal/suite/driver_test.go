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

package suite_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/constraints"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/obligations"
	"pairspec.dev/pairspec/internal/random"
	"pairspec.dev/pairspec/internal/schema"
	"pairspec.dev/pairspec/internal/suite"
)

// buildS4 builds scenario S4: A: a1 a2 a3(error) / B: b1 b2.
func buildS4() *schema.Builder {
	b := schema.NewBuilder()
	a := b.AddColumn("A")
	b.AddValue(a, "a1", nil)
	b.AddValue(a, "a2", nil)
	b.AddValue(a, "a3", []schema.Condition{{Kind: schema.CondError}})
	bcol := b.AddColumn("B")
	b.AddValue(bcol, "b1", nil)
	b.AddValue(bcol, "b2", nil)
	return b
}

func newDriver(b *schema.Builder, seed int64) (*suite.Driver, *schema.Schema, *obligations.Store) {
	sc := b.Build(&diagnostic.List{})
	excl := constraints.Compile(b, sc)
	rng := random.New(seed)
	store := obligations.Init(sc, excl, rng)
	diags := &diagnostic.List{}
	cb := caseb.New(sc, excl, store, rng, diags, diagnostic.NewTracer(nil, false))
	return suite.New(sc, store, cb, diags), sc, store
}

func TestRunSinglesEmitsOneVectorPerSingleton(t *testing.T) {
	d, _, _ := newDriver(buildS4(), 1)

	singles := d.RunSingles()
	qt.Assert(t, qt.Equals(len(singles), 1))
	qt.Assert(t, qt.Equals(singles[0][0], "a3"))
}

func TestRunPairsExcludesSingletonFromPairsPhase(t *testing.T) {
	d, sc, _ := newDriver(buildS4(), 2)

	pairs := d.RunPairs()
	qt.Assert(t, qt.IsTrue(len(pairs) > 0))
	for _, v := range pairs {
		qt.Assert(t, qt.IsTrue(v[0] != "a3"))
		_ = sc
	}
}

func TestAbsorbIdempotence(t *testing.T) {
	b := buildS4()
	d, sc, store := newDriver(b, 3)

	pairs := d.RunPairs()
	before := store.Len()
	qt.Assert(t, qt.Equals(before, 0))

	// Re-run from scratch and absorb the generated suite as an initial
	// suite (spec.md §8, "Idempotence of absorption"): it must drain
	// the obligation store to empty before any pairs-phase work.
	excl := constraints.Compile(b, sc)
	rng := random.New(3)
	fresh := obligations.Init(sc, excl, rng)

	table := &suite.Table{Header: columnNames(sc)}
	for _, v := range pairs {
		row := make([]string, len(v))
		copy(row, v)
		table.Rows = append(table.Rows, row)
	}
	diags := &diagnostic.List{}
	suite.Absorb(sc, fresh, table, diags)

	qt.Assert(t, qt.Equals(fresh.Len(), 0))
}

func columnNames(sc *schema.Schema) []string {
	names := make([]string, sc.NCol())
	for i, c := range sc.Columns() {
		names[i] = c.Name
	}
	return names
}
