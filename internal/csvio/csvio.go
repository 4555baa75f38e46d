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

// Package csvio is the thin CSV adapter spec.md §6 scopes out of the
// core: excel-dialect comma-separated values, a header row of category
// names, one data row per test vector. It is a direct wrapper around
// encoding/csv -- no third-party CSV library appears anywhere in the
// reference pack this module was grounded on, so the standard library
// is the correct, idiomatic choice here (see DESIGN.md).
package csvio

import (
	"encoding/csv"
	"io"

	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/schema"
	"pairspec.dev/pairspec/internal/suite"
)

// Read parses r as an excel-dialect CSV table: first row is the header,
// every subsequent row is data. It performs no schema validation --
// that's internal/suite.Absorb's job.
func Read(r io.Reader) (*suite.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may mismatch length; Absorb reports that itself
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &suite.Table{}, nil
	}
	return &suite.Table{Header: records[0], Rows: records[1:]}, nil
}

// WriteTable writes columns (a subset of sc's slots, in the order
// given) as a CSV schema row followed by one row per vector in vectors,
// matching spec.md §6's CSV output: "Header row = category names in
// declaration order. Each data row = one test vector... in the same
// column order."
func WriteTable(w io.Writer, sc *schema.Schema, columns []int, vectors []caseb.Vector) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = sc.Column(c).Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, vec := range vectors {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = vec[c]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
