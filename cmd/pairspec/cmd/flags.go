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
	"fmt"

	"github.com/spf13/pflag"
)

// Flags, one constant per spec.md §6 option, named the way
// cmd/cue/cmd/flags.go names its flagName constants.
const (
	flagDebug       flagName = "debug"
	flagLicense     flagName = "license"
	flagCSV         flagName = "csv"
	flagVarying     flagName = "varying"
	flagSingles     flagName = "singles"
	flagOmitSingles flagName = "omit-singles"
	flagInitial     flagName = "initial"
	flagPairs       flagName = "pairs"

	// flagSeed is supplemented (spec.md §5 flags the missing seed as
	// an open question); hidden like cmd/cue/cmd's --cpuprofile since
	// it's a debugging aid, not part of the day-to-day surface.
	flagSeed flagName = "seed"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagDebug), "d", false, "verbose tracing to stderr")
	f.BoolP(string(flagLicense), "l", false, "print license and exit")
	f.BoolP(string(flagCSV), "c", false, "output format CSV (default: plain tabular)")
	f.BoolP(string(flagVarying), "v", false, "output only multiple-value categories")
	f.BoolP(string(flagSingles), "s", false, "emit only single/error vectors (skip pairs phase)")
	f.BoolP(string(flagOmitSingles), "o", false, "skip the singles phase")
	f.StringArrayP(string(flagInitial), "i", nil, "read a prior CSV suite to drain obligations (repeatable)")
	f.BoolP(string(flagPairs), "p", false, "print the list of still-required pairs")

	f.Int64(string(flagSeed), 0, "seed the random source (0: draw from system entropy)")
	f.MarkHidden(string(flagSeed))
}

// flagName mirrors cmd/cue/cmd/flags.go: a typed flag key with
// ensureAdded-guarded typed accessors, so a flag can never be read
// under a name that was never registered.
type flagName string

func (f flagName) ensureAdded(cmd *Command) {
	if cmd.Flags().Lookup(string(f)) == nil {
		panic(fmt.Sprintf("cmd %q uses flag %q without adding it", cmd.Name(), f))
	}
}

func (f flagName) Bool(cmd *Command) bool {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) Int64(cmd *Command) int64 {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetInt64(string(f))
	return v
}

func (f flagName) StringArray(cmd *Command) []string {
	f.ensureAdded(cmd)
	v, _ := cmd.Flags().GetStringArray(string(f))
	return v
}
