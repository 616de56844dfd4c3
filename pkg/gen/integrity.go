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
	"fmt"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/manifest"
)

// Issue is one mapping-integrity finding, named so remediation is quick.
type Issue struct {
	Name    string `json:"name" yaml:"name"`
	Problem string `json:"problem" yaml:"problem"`
}

// String returns the human-readable form of the Issue.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Name, i.Problem)
}

// CheckMapping cross-references the manifest, the static package mapping
// table, and the pinned versions in both directions. This check lives outside
// the generator hot path: the generator fails fast on the first problem it
// trips over, while this reports every orphan at once for CI.
func CheckMapping(m *manifest.Manifest, defs *defaults.Defaults) []Issue {
	var issues []Issue

	// Every enabled PGDG manifest entry needs a mapping row.
	for _, e := range m.Entries {
		if e.InstallVia != manifest.InstallViaPGDG || !e.IsEnabled() {
			continue
		}
		if _, ok := MappingFor(e.Name); !ok {
			issues = append(issues, Issue{
				Name:    e.Name,
				Problem: "enabled pgdg entry has no package mapping",
			})
		}
	}

	// Every mapping row needs a manifest entry and a pinned version.
	for _, pm := range Mapping() {
		e := m.Lookup(pm.ManifestName)
		switch {
		case e == nil:
			issues = append(issues, Issue{
				Name:    pm.ManifestName,
				Problem: "package mapping has no manifest entry",
			})
		case e.InstallVia != manifest.InstallViaPGDG:
			issues = append(issues, Issue{
				Name:    pm.ManifestName,
				Problem: fmt.Sprintf("package mapping points at a non-pgdg entry (install_via=%q)", e.InstallVia),
			})
		}
		if _, ok := defs.VersionFor(pm.VersionKey); !ok {
			issues = append(issues, Issue{
				Name:    pm.ManifestName,
				Problem: fmt.Sprintf("no pinned version for key %q", pm.VersionKey),
			})
		}
	}

	return issues
}
