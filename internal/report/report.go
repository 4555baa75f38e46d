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

// Package report is the textual report formatter spec.md §6 scopes out
// of the core ("textual report formatting... a thin adapter"): the
// plain tabular printer and the -p/--pairs listing.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"pairspec.dev/pairspec/internal/caseb"
	"pairspec.dev/pairspec/internal/schema"
	"pairspec.dev/pairspec/internal/suite"
)

// PrintPlain prints vectors as a fixed-width table restricted to
// columns, preceded by a descriptive title and vector count, matching
// genpairs.py's PrintAsText.
func PrintPlain(w io.Writer, sc *schema.Schema, columns []int, title string, vectors []caseb.Vector) {
	p := message.NewPrinter(message.MatchLanguage("en"))
	p.Fprintf(w, "%s: %d test vectors\n\n", title, len(vectors))
	for _, c := range columns {
		fmt.Fprintf(w, "%15s", sc.Column(c).Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, repeat('_', 60))
	for _, v := range vectors {
		for _, c := range columns {
			fmt.Fprintf(w, "%15s", v[c])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func repeat(b byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return string(buf)
}

// PrintRequiredPairs prints the pairs -p/--pairs reports as still
// missing, one per line, matching genpairs.py's print_required_pairs.
func PrintRequiredPairs(w io.Writer, pairs []suite.PairDescription) {
	fmt.Fprintln(w, "=== Pairs required for completion ===")
	for _, p := range pairs {
		fmt.Fprintf(w, "%s=%s, %s=%s\n", p.Name1, p.Value1, p.Name2, p.Value2)
	}
	fmt.Fprintln(w, "=====================================")
}
