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

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/constraints"
	"pairspec.dev/pairspec/internal/csvio"
	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/obligations"
	"pairspec.dev/pairspec/internal/random"
	"pairspec.dev/pairspec/internal/report"
	"pairspec.dev/pairspec/internal/schema"
	"pairspec.dev/pairspec/internal/specfmt"
	"pairspec.dev/pairspec/internal/suite"
)

// runGenerate wires together every core package into the single
// pipeline spec.md §1-§4 describes: parse the specification from
// stdin, compile exclusions, absorb any initial suites, run the pairs
// and/or singles phases, then print the result. Only I/O failures
// (reading stdin or an -i file, writing CSV output) are fatal (spec.md
// §7 kind 6); every
// other recoverable condition is appended to diags and printed at the
// end without affecting the exit code.
func runGenerate(c *Command, args []string) error {
	diags := &diagnostic.List{}

	raw, err := io.ReadAll(c.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading specification: %w", err)
	}
	c.trace.Banner(raw)

	builder, err := specfmt.Parse(bytes.NewReader(raw), diags)
	if err != nil {
		return fmt.Errorf("reading specification: %w", err)
	}
	sc := builder.Build(diags)
	excl := constraints.Compile(builder, sc)

	rng := random.New(flagSeed.Int64(c))
	store := obligations.Init(sc, excl, rng)

	for _, path := range flagInitial.StringArray(c) {
		if err := absorbInitial(c, path, sc, store, diags); err != nil {
			return err
		}
	}

	cb := caseb.New(sc, excl, store, rng, diags, c.trace)
	driver := suite.New(sc, store, cb, diags)

	if flagPairs.Bool(c) {
		report.PrintRequiredPairs(c.OutOrStdout(), driver.RequiredPairs())
	}

	var vectors []caseb.Vector
	if !flagSingles.Bool(c) {
		vectors = append(vectors, driver.RunPairs()...)
	}
	if !flagOmitSingles.Bool(c) {
		vectors = append(vectors, driver.RunSingles()...)
	}

	columns := allColumns(sc)
	if flagVarying.Bool(c) {
		columns = sc.MultipleColumns()
	}

	if flagCSV.Bool(c) {
		if err := csvio.WriteTable(c.OutOrStdout(), sc, columns, vectors); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
	} else {
		report.PrintPlain(c.OutOrStdout(), sc, columns, "pairspec", vectors)
	}

	diags.Fprint(c.Stderr())
	return nil
}

func allColumns(sc *schema.Schema) []int {
	cols := make([]int, sc.NCol())
	for i := range cols {
		cols[i] = i
	}
	return cols
}

// absorbInitial reads one -i/--initial CSV file and drains the
// obligations it already covers. Failing to open or read the file is
// fatal, as is failing to read stdin or write CSV output (spec.md §7
// kind 6);
// everything about the file's *content* (unknown columns, short rows)
// is a warning via internal/suite.Absorb, never fatal.
func absorbInitial(c *Command, path string, sc *schema.Schema, store *obligations.Store, diags *diagnostic.List) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening initial suite %q: %w", path, err)
	}
	defer f.Close()

	table, err := csvio.Read(f)
	if err != nil {
		return fmt.Errorf("reading initial suite %q: %w", path, err)
	}
	n := suite.Absorb(sc, store, table, diags)
	c.trace.Printf("absorbed %d rows from %s", n, path)
	return nil
}
