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

package schema

import (
	"github.com/mpvl/unique"

	"pairspec.dev/pairspec/internal/diagnostic"
)

// ConditionKind discriminates the tagged variants spec.md §9 calls for
// ("dynamic tagged tuples -> tagged variants"): the parser (package
// specfmt) emits these directly instead of ad hoc (kind, value) tuples.
type ConditionKind int

const (
	CondProp ConditionKind = iota
	CondIf
	CondExcept
	CondError
	CondSingle
)

// Condition is one `prop`/`if`/`except`/`error`/`single` annotation on a
// value, as produced by the parser.
type Condition struct {
	Kind ConditionKind
	Arg  string // property name; empty for CondError/CondSingle
}

// Builder accumulates categories and their values before Build() freezes
// them into a Schema plus the raw material the constraint compiler
// needs (PropsSlots/ValueProps/ValueIfs/ValueExcepts in the original).
type Builder struct {
	columns    []Column
	singletons []Singleton

	// propertySlots[prop] is the set of slot indices having at least one
	// value tagged with that property (original: PropsSlots).
	propertySlots map[string][]int
	// valueProps[(slot,value)] lists the properties tagged on that value
	// (original: ValueProps).
	valueProps map[Item][]string
	// ifs/excepts are (item, property) pairs awaiting compilation
	// (original: ValueIfs/ValueExcepts).
	ifs     []Ref
	excepts []Ref
}

// Ref is one (item, property) reference collected from an `if` or
// `except` clause during parsing.
type Ref struct {
	Item Item
	Prop string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		propertySlots: map[string][]int{},
		valueProps:    map[Item][]string{},
	}
}

// AddColumn declares a new category in the given slot order and returns
// its slot index.
func (b *Builder) AddColumn(name string) int {
	b.columns = append(b.columns, Column{Name: name})
	return len(b.columns) - 1
}

// AddValue adds a regular or singleton value to slot, applying its
// parsed conditions. This is the Go counterpart of parseSpec's per-value
// loop in genpairs.py.
func (b *Builder) AddValue(slot int, value string, conds []Condition) {
	item := Item{Slot: slot, Value: value}
	singleton := false
	var kind SingletonKind
	for _, c := range conds {
		switch c.Kind {
		case CondProp:
			b.valueProps[item] = append(b.valueProps[item], c.Arg)
			slots := append(b.propertySlots[c.Arg], slot)
			unique.Sort(intSliceOf(&slots))
			b.propertySlots[c.Arg] = slots
		case CondIf:
			b.ifs = append(b.ifs, Ref{Item: item, Prop: c.Arg})
		case CondExcept:
			b.excepts = append(b.excepts, Ref{Item: item, Prop: c.Arg})
		case CondError:
			singleton, kind = true, Error
		case CondSingle:
			singleton, kind = true, Single
		}
	}
	if singleton {
		b.singletons = append(b.singletons, Singleton{Slot: slot, Value: value, Kind: kind})
		return
	}
	b.columns[slot].Values = append(b.columns[slot].Values, value)
}

// Build freezes the accumulated columns into a Schema, recording which
// slots are single/empty (spec.md §3) and appending a diagnostic.Warning
// for every empty slot (spec.md §7 kind 3) and for every if/except whose
// property was never declared anywhere (spec.md §7 kind 2, §4.B "Error
// cases").
func (b *Builder) Build(diags *diagnostic.List) *Schema {
	cols := make([]Column, len(b.columns))
	copy(cols, b.columns)
	for i := range cols {
		switch len(cols[i].Values) {
		case 0:
			cols[i].Empty = true
			diags.Addf(diagnostic.KindEmptySlot,
				"no non-singular value choices for %q; pairs generation will fail for it", cols[i].Name)
		case 1:
			cols[i].Single = true
		}
	}
	for _, ref := range append(append([]Ref{}, b.ifs...), b.excepts...) {
		if _, ok := b.propertySlots[ref.Prop]; !ok {
			diags.Addf(diagnostic.KindUndefinedProp,
				"property %q referenced by %s has no values that declare it", ref.Prop, ref.Item)
		}
	}
	return &Schema{columns: cols, singletons: append([]Singleton{}, b.singletons...)}
}

// PropertySlots returns, for a property name, the sorted, deduplicated
// slot indices that have at least one value tagged with it. Used by the
// constraint compiler (internal/constraints).
func (b *Builder) PropertySlots(prop string) []int { return b.propertySlots[prop] }

// ValueProperties returns the properties tagged on (slot,value).
func (b *Builder) ValueProperties(item Item) []string { return b.valueProps[item] }

// Ifs returns every `if` condition reference collected during parsing.
func (b *Builder) Ifs() []Ref { return b.ifs }

// Excepts returns every `except` condition reference collected during parsing.
func (b *Builder) Excepts() []Ref { return b.excepts }

// intSlice adapts a []int for mpvl/unique.Sort, which requires
// sort.Interface plus Truncate; this keeps each property's slot list
// sorted and duplicate-free without a second map just to dedupe it.
type intSlice struct{ s *[]int }

func intSliceOf(s *[]int) intSlice { return intSlice{s} }
func (a intSlice) Len() int        { return len(*a.s) }
func (a intSlice) Less(i, j int) bool {
	return (*a.s)[i] < (*a.s)[j]
}
func (a intSlice) Swap(i, j int) { (*a.s)[i], (*a.s)[j] = (*a.s)[j], (*a.s)[i] }
func (a intSlice) Truncate(n int) {
	*a.s = (*a.s)[:n]
}
