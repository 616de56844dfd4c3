// Copyright (c) 2026, the aza-pg authors. All rights reserved.
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

package stats

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/manifest"
)

// ComponentVersion is one row of the version inventory.
type ComponentVersion struct {
	Name       string `json:"name" yaml:"name"`
	Kind       string `json:"kind" yaml:"kind"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	InstallVia string `json:"installVia,omitempty" yaml:"installVia,omitempty"`
	Enabled    bool   `json:"enabled" yaml:"enabled"`
}

// VersionInfo is the machine-readable version inventory. It carries no
// timestamp or run identifier so its serialization is byte-stable across
// runs over the same inputs.
type VersionInfo struct {
	PGVersion       string             `json:"pgVersion" yaml:"pgVersion"`
	PGMajor         string             `json:"pgMajor" yaml:"pgMajor"`
	BaseImage       string             `json:"baseImage" yaml:"baseImage"`
	BaseImageDigest string             `json:"baseImageDigest" yaml:"baseImageDigest"`
	Components      []ComponentVersion `json:"components" yaml:"components"`
}

// BuildVersionInfo assembles the version inventory in manifest order.
func BuildVersionInfo(m *manifest.Manifest, defs *defaults.Defaults) *VersionInfo {
	vi := &VersionInfo{
		PGVersion:       defs.PGVersion,
		PGMajor:         defs.PGMajor(),
		BaseImage:       defs.BaseImage,
		BaseImageDigest: defs.BaseImageSha,
		Components:      make([]ComponentVersion, 0, len(m.Entries)),
	}
	for _, e := range m.Entries {
		vi.Components = append(vi.Components, ComponentVersion{
			Name:       e.Name,
			Kind:       e.Kind.String(),
			Version:    entryVersion(e, defs),
			InstallVia: string(e.InstallVia),
			Enabled:    e.IsEnabled(),
		})
	}
	return vi
}

// RenderVersionText renders the inventory as an aligned text table.
func RenderVersionText(vi *VersionInfo) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "PostgreSQL: %s (major %s)\n", vi.PGVersion, vi.PGMajor)
	fmt.Fprintf(b, "Base image: %s@%s\n\n", vi.BaseImage, vi.BaseImageDigest)

	tw := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVERSION\tVIA\tENABLED")
	for _, c := range vi.Components {
		version := c.Version
		if version == "" {
			version = "-"
		}
		via := c.InstallVia
		if via == "" {
			via = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", c.Name, c.Kind, version, via, c.Enabled)
	}
	tw.Flush() //nolint:errcheck // strings.Builder cannot fail

	return b.String()
}
