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

package manifest

// pgxsFamily lists the build types handled by the PGXS-style build stage.
// cargo-pgrx has its own stage (Rust toolchain); the two sets must stay
// disjoint so no entry is built twice.
var pgxsFamily = map[BuildType]bool{
	BuildPGXS:        true,
	BuildAutotools:   true,
	BuildCMake:       true,
	BuildMeson:       true,
	BuildMake:        true,
	BuildTimescaleDB: true,
}

// Partition splits the manifest into the PGXS-family and Cargo-family
// sub-manifests consumed by the two build stages. Entry order and full entry
// content are preserved; entries without a build spec land in neither subset.
func Partition(m *Manifest) (pgxs, cargo *Manifest) {
	pgxs = &Manifest{Entries: []*Entry{}}
	cargo = &Manifest{Entries: []*Entry{}}

	for _, e := range m.Entries {
		if e.Build == nil {
			continue
		}
		switch {
		case pgxsFamily[e.Build.Type]:
			pgxs.Entries = append(pgxs.Entries, e)
		case e.Build.Type == BuildCargoPGRX:
			cargo.Entries = append(cargo.Entries, e)
		}
	}

	return pgxs, cargo
}
