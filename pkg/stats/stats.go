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

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/gen"
	"github.com/azadata/aza-pg/pkg/manifest"
)

// Summary is the aggregate view of a manifest surfaced by the stats command.
type Summary struct {
	PGVersion            string                     `json:"pgVersion" yaml:"pgVersion"`
	BaseImage            string                     `json:"baseImage" yaml:"baseImage"`
	Entries              manifest.Counts            `json:"entries" yaml:"entries"`
	ByKind               map[string]manifest.Counts `json:"byKind" yaml:"byKind"`
	PGDGPackages         int                        `json:"pgdgPackages" yaml:"pgdgPackages"`
	PreloadDefault       []string                   `json:"preloadDefault" yaml:"preloadDefault"`
	PreloadComprehensive []string                   `json:"preloadComprehensive" yaml:"preloadComprehensive"`
}

// Summarize computes a Summary from the manifest and pinned defaults.
func Summarize(m *manifest.Manifest, defs *defaults.Defaults) (*Summary, error) {
	set, err := gen.InstallSet(m, defs, gen.ModeDefault)
	if err != nil {
		return nil, err
	}

	ref, err := defs.BaseImageRef()
	if err != nil {
		return nil, err
	}

	byKind := make(map[string]manifest.Counts)
	for kind, counts := range m.CountByKind() {
		byKind[kind.String()] = counts
	}

	return &Summary{
		PGVersion:            defs.PGVersion,
		BaseImage:            ref,
		Entries:              m.Count(),
		ByKind:               byKind,
		PGDGPackages:         len(set),
		PreloadDefault:       gen.PreloadLibraries(m, gen.ModeDefault),
		PreloadComprehensive: gen.PreloadLibraries(m, gen.ModeComprehensive),
	}, nil
}

var titler = cases.Title(language.English)

// RenderImageContents renders the human-readable inventory of everything the
// image ships, grouped by kind. Disabled entries are listed with their
// documented exclusion so the inventory reflects the whole catalog.
func RenderImageContents(m *manifest.Manifest, defs *defaults.Defaults) string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "PostgreSQL %s image contents\n", defs.PGVersion)
	fmt.Fprintf(b, "Base image: %s@%s\n", defs.BaseImage, defs.BaseImageSha)

	for _, kind := range manifest.Kinds() {
		var entries []*manifest.Entry
		for _, e := range m.Entries {
			if e.Kind == kind {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(b, "\n%ss (%d)\n", titler.String(kind.String()), len(entries))
		for _, e := range entries {
			fmt.Fprintf(b, "  %s", e.Name)
			if v := entryVersion(e, defs); v != "" {
				fmt.Fprintf(b, " %s", v)
			}
			if via := string(e.InstallVia); via != "" {
				fmt.Fprintf(b, " [%s]", via)
			}
			if !e.IsEnabled() {
				b.WriteString(" (disabled)")
			}
			if e.Runtime != nil && e.Runtime.SharedPreload {
				b.WriteString(" (preload)")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// entryVersion resolves the best version descriptor for an entry: the pinned
// PGDG version, the upstream tag or ref for source builds, empty otherwise.
func entryVersion(e *manifest.Entry, defs *defaults.Defaults) string {
	if e.InstallVia == manifest.InstallViaPGDG {
		if pm, ok := gen.MappingFor(e.Name); ok {
			if v, ok := defs.VersionFor(pm.VersionKey); ok {
				return v
			}
		}
		return ""
	}
	if e.Source == nil {
		return ""
	}
	if e.Source.Tag != "" {
		return e.Source.Tag
	}
	if e.Source.Ref != "" {
		return e.Source.Ref
	}
	return e.Source.Commit
}
