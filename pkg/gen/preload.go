// Copyright (c) 2026, the aza-pg authors.  All rights reserved.
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

package gen

import (
	"sort"
	"strings"

	"github.com/azadata/aza-pg/pkg/manifest"
)

// PreloadLibraries computes the shared_preload_libraries set for a mode as a
// sorted, deduplicated list of resolved library names.
//
// Default mode: sharedPreload && defaultEnable && enabled.
// Comprehensive mode additionally admits entries flagged
// preloadInComprehensiveTest, including disabled entries carrying the flag
// (the comprehensive image installs them via enabledInComprehensiveTest).
//
// The sort is plain byte-wise ascending, so uppercase names would sort before
// lowercase. That matches the established artifact output; do not "fix" it to
// a case-insensitive order without coordinating a regeneration of every
// checked-in artifact.
func PreloadLibraries(m *manifest.Manifest, mode Mode) []string {
	seen := make(map[string]bool)
	libs := make([]string, 0, len(m.Entries))

	for _, e := range m.Entries {
		r := e.Runtime
		if r == nil || !r.SharedPreload {
			continue
		}

		include := e.IsEnabled() && r.DefaultEnable
		if mode == ModeComprehensive && r.PreloadInComprehensiveTest {
			include = true
		}
		if !include {
			continue
		}

		name := e.PreloadName()
		if seen[name] {
			continue
		}
		seen[name] = true
		libs = append(libs, name)
	}

	sort.Strings(libs)
	return libs
}

// ProjectPreload renders the comma-joined shared_preload_libraries value for
// a mode. An empty projection yields an empty string, not an error.
func ProjectPreload(m *manifest.Manifest, mode Mode) string {
	return strings.Join(PreloadLibraries(m, mode), ",")
}
