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

package specfmt_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/specfmt"
)

func TestParseBasicSpec(t *testing.T) {
	src := `A: a1 a2 // comment
B: b1 b2
`
	diags := &diagnostic.List{}
	b, err := specfmt.Parse(strings.NewReader(src), diags)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(diags.Len(), 0))

	sc := b.Build(&diagnostic.List{})
	qt.Assert(t, qt.Equals(sc.NCol(), 2))
	qt.Assert(t, qt.DeepEquals(sc.Column(0).Values, []string{"a1", "a2"}))
	qt.Assert(t, qt.DeepEquals(sc.Column(1).Values, []string{"b1", "b2"}))
}

func TestParseConditions(t *testing.T) {
	src := `A: a1 error a2 single
B: b1 prop p
C: c1 if p c2 except p
`
	diags := &diagnostic.List{}
	b, err := specfmt.Parse(strings.NewReader(src), diags)
	qt.Assert(t, qt.IsNil(err))

	sc := b.Build(&diagnostic.List{})
	qt.Assert(t, qt.Equals(len(sc.Singletons()), 2))
	qt.Assert(t, qt.DeepEquals(b.PropertySlots("p"), []int{1}))
	qt.Assert(t, qt.Equals(len(b.Ifs()), 1))
	qt.Assert(t, qt.Equals(len(b.Excepts()), 1))
}

func TestParseSyntaxErrorRecoversToNextCategory(t *testing.T) {
	// A stray keyword at the top level (not trailing a value) is not a
	// category token, so parseSpec must warn and skip forward to "A:"
	// rather than aborting the parse.
	src := `if
A: a1 a2
B: b1 b2
`
	diags := &diagnostic.List{}
	b, err := specfmt.Parse(strings.NewReader(src), diags)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(diags.CountKind(diagnostic.KindSyntax), 1))

	sc := b.Build(&diagnostic.List{})
	qt.Assert(t, qt.Equals(sc.NCol(), 2))
	qt.Assert(t, qt.DeepEquals(sc.Column(0).Values, []string{"a1", "a2"}))
	qt.Assert(t, qt.DeepEquals(sc.Column(1).Values, []string{"b1", "b2"}))
}

func TestParseEmptySpec(t *testing.T) {
	diags := &diagnostic.List{}
	b, err := specfmt.Parse(strings.NewReader(""), diags)
	qt.Assert(t, qt.IsNil(err))
	sc := b.Build(&diagnostic.List{})
	qt.Assert(t, qt.Equals(sc.NCol(), 0))
}
