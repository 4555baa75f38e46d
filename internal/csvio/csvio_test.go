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

package csvio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/csvio"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/schema"
	"pairspec.dev/pairspec/internal/suite"
)

func buildAB() *schema.Schema {
	b := schema.NewBuilder()
	a := b.AddColumn("A")
	b.AddValue(a, "a1", nil)
	b.AddValue(a, "a2", nil)
	bcol := b.AddColumn("B")
	b.AddValue(bcol, "b1", nil)
	b.AddValue(bcol, "b2", nil)
	return b.Build(&diagnostic.List{})
}

func TestWriteTableThenRead(t *testing.T) {
	sc := buildAB()
	vectors := []caseb.Vector{{"a1", "b1"}, {"a2", "b2"}}

	var buf bytes.Buffer
	err := csvio.WriteTable(&buf, sc, []int{0, 1}, vectors)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.Equals(buf.String(), "A,B\na1,b1\na2,b2\n"))

	table, err := csvio.Read(strings.NewReader(buf.String()))
	qt.Assert(t, qt.IsNil(err))
	want := &suite.Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"a1", "b1"}, {"a2", "b2"}},
	}
	qt.Assert(t, qt.Equals(cmp.Diff(want, table), ""))
}

func TestWriteTableRestrictsColumns(t *testing.T) {
	sc := buildAB()
	vectors := []caseb.Vector{{"a1", "b1"}}

	var buf bytes.Buffer
	err := csvio.WriteTable(&buf, sc, []int{1}, vectors)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(buf.String(), "B\nb1\n"))
}

func TestReadEmptyInput(t *testing.T) {
	table, err := csvio.Read(strings.NewReader(""))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(table.Header), 0))
	qt.Assert(t, qt.Equals(len(table.Rows), 0))
}
