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

// Command pairspec generates a pairwise covering test suite from a
// category/value specification read on stdin.
package main

import (
	"os"

	"pairspec.dev/pairspec/cmd/pairspec/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
