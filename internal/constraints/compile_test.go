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

package constraints_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"pairspec.dev/pairspec/internal/constraints"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/schema"
)

// buildS3 builds scenario S3 from spec.md §8: A: a1 a2 / B: b1(prop p)
// b2 / C: c1(except p) c2.
func buildS3() (*schema.Builder, *schema.Schema) {
	b := schema.NewBuilder()
	a := b.AddColumn("A")
	b.AddValue(a, "a1", nil)
	b.AddValue(a, "a2", nil)

	bcol := b.AddColumn("B")
	b.AddValue(bcol, "b1", []schema.Condition{{Kind: schema.CondProp, Arg: "p"}})
	b.AddValue(bcol, "b2", nil)

	ccol := b.AddColumn("C")
	b.AddValue(ccol, "c1", []schema.Condition{{Kind: schema.CondExcept, Arg: "p"}})
	b.AddValue(ccol, "c2", nil)

	sc := b.Build(&diagnostic.List{})
	return b, sc
}

func TestCompileExceptExcludesTaggedPair(t *testing.T) {
	b, sc := buildS3()
	excl := constraints.Compile(b, sc)

	b1 := schema.Item{Slot: 1, Value: "b1"}
	c1 := schema.Item{Slot: 2, Value: "c1"}
	c2 := schema.Item{Slot: 2, Value: "c2"}
	b2 := schema.Item{Slot: 1, Value: "b2"}

	qt.Assert(t, qt.IsTrue(excl.Has(b1, c1)))
	qt.Assert(t, qt.IsTrue(excl.Has(c1, b1))) // orientation-independent
	qt.Assert(t, qt.IsFalse(excl.Has(b1, c2)))
	qt.Assert(t, qt.IsFalse(excl.Has(b2, c1)))
}

func TestCompileIfExcludesUntaggedPair(t *testing.T) {
	b := schema.NewBuilder()
	a := b.AddColumn("A")
	b.AddValue(a, "a1", []schema.Condition{{Kind: schema.CondIf, Arg: "p"}})
	b.AddValue(a, "a2", nil)
	bcol := b.AddColumn("B")
	b.AddValue(bcol, "b1", []schema.Condition{{Kind: schema.CondProp, Arg: "p"}})
	b.AddValue(bcol, "b2", nil)
	sc := b.Build(&diagnostic.List{})

	excl := constraints.Compile(b, sc)

	a1 := schema.Item{Slot: 0, Value: "a1"}
	bi1 := schema.Item{Slot: 1, Value: "b1"} // tagged p
	bi2 := schema.Item{Slot: 1, Value: "b2"} // not tagged p

	qt.Assert(t, qt.IsFalse(excl.Has(a1, bi1)))
	qt.Assert(t, qt.IsTrue(excl.Has(a1, bi2)))
}

func TestCanonicalOrdersBySlot(t *testing.T) {
	hi := schema.Item{Slot: 5, Value: "x"}
	lo := schema.Item{Slot: 1, Value: "y"}
	p := constraints.Canonical(hi, lo)
	qt.Assert(t, qt.Equals(p.Low.Slot, 1))
	qt.Assert(t, qt.Equals(p.High.Slot, 5))
	qt.Assert(t, qt.DeepEquals(p.Reverse(), constraints.Pair{Low: p.High, High: p.Low}))
}
