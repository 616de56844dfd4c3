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

package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/gen"
	"github.com/azadata/aza-pg/pkg/manifest"
	"github.com/azadata/aza-pg/pkg/provenance"
	"github.com/azadata/aza-pg/pkg/stats"
)

// Generated artifact names beyond the rendered templates.
const (
	ArtifactManifestPGXS  = "manifest.pgxs.json"
	ArtifactManifestCargo = "manifest.cargo.json"
	ArtifactImageContents = "IMAGE-CONTENTS.txt"
	ArtifactVersionText   = "version-info.txt"
	ArtifactVersionJSON   = "version-info.json"
)

// Generator runs the generation pipeline over one manifest.
type Generator struct {
	manifestPath string
	templatesDir string
	mode         gen.Mode
	toolVersion  string
	defaults     *defaults.Defaults
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTemplatesDir overrides the embedded templates with a directory of
// template files.
func WithTemplatesDir(dir string) GeneratorOption {
	return func(g *Generator) {
		g.templatesDir = dir
	}
}

// WithMode selects the generation mode.
func WithMode(mode gen.Mode) GeneratorOption {
	return func(g *Generator) {
		g.mode = mode
	}
}

// WithToolVersion sets the tool version recorded in provenance banners.
func WithToolVersion(version string) GeneratorOption {
	return func(g *Generator) {
		g.toolVersion = version
	}
}

// WithDefaults overrides the pinned defaults. Used by tests.
func WithDefaults(defs *defaults.Defaults) GeneratorOption {
	return func(g *Generator) {
		g.defaults = defs
	}
}

// NewGenerator creates a Generator for the given manifest path.
func NewGenerator(manifestPath string, opts ...GeneratorOption) *Generator {
	g := &Generator{
		manifestPath: manifestPath,
		mode:         gen.ModeDefault,
		toolVersion:  "dev",
		defaults:     defaults.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result holds one full artifact set, keyed by artifact file name. Content
// already carries the provenance banner where applicable.
type Result struct {
	Mode      gen.Mode
	Artifacts map[string]string
}

// Names returns the artifact names in sorted order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Artifacts))
	for name := range r.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate produces the complete artifact set in memory. The manifest is
// loaded and validated exactly once; every projection derives from that
// single parse.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := manifest.Load(g.manifestPath)
	if err != nil {
		return nil, err
	}
	if err := g.defaults.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("manifest loaded",
		"path", g.manifestPath,
		"entries", len(m.Entries),
		"mode", g.mode.String())

	placeholders, err := g.placeholders(m)
	if err != nil {
		return nil, err
	}

	templates, err := LoadTemplates(g.templatesDir)
	if err != nil {
		return nil, err
	}

	hdr := provenance.New(
		provenance.WithVersion(g.toolVersion),
		provenance.WithManifestPath(g.manifestPath),
	)

	artifacts := make(map[string]string, len(templates)+6)
	for name, tmpl := range templates {
		rendered, err := gen.Render(tmpl, placeholders)
		if err != nil {
			return nil, err
		}
		artifacts[name] = hdr.Annotate(rendered)
	}

	pgxs, cargo := manifest.Partition(m)
	for name, sub := range map[string]*manifest.Manifest{
		ArtifactManifestPGXS:  pgxs,
		ArtifactManifestCargo: cargo,
	} {
		data, err := json.MarshalIndent(sub, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, "failed to serialize sub-manifest", err)
		}
		artifacts[name] = string(data) + "\n"
	}

	artifacts[ArtifactImageContents] = hdr.Annotate(stats.RenderImageContents(m, g.defaults))

	vi := stats.BuildVersionInfo(m, g.defaults)
	artifacts[ArtifactVersionText] = hdr.Annotate(stats.RenderVersionText(vi))
	viData, err := json.MarshalIndent(vi, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to serialize version info", err)
	}
	artifacts[ArtifactVersionJSON] = string(viData) + "\n"

	artifacts[ArtifactChecksums] = Checksums(artifacts)

	return &Result{Mode: g.mode, Artifacts: artifacts}, nil
}

// Run generates the artifact set and writes it to outDir, creating the
// directory if needed.
func (g *Generator) Run(ctx context.Context, outDir string) (*Result, error) {
	res, err := g.Generate(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create output directory", err)
	}

	for name, content := range res.Artifacts {
		perm := os.FileMode(0o644)
		if name == ArtifactEntrypoint {
			perm = 0o755
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(content), perm); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInternal,
				"failed to write artifact", err,
				map[string]any{"artifact": name})
		}
		slog.Info("artifact written", "path", path, "bytes", len(content))
	}

	return res, nil
}

// placeholders builds the substitution map for the selected mode.
func (g *Generator) placeholders(m *manifest.Manifest) (map[string]string, error) {
	baseRef, err := g.defaults.BaseImageRef()
	if err != nil {
		return nil, err
	}

	install, err := gen.GenerateInstallScript(m, g.defaults, g.mode)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"PG_VERSION":               g.defaults.PGVersion,
		"PG_MAJOR":                 g.defaults.PGMajor(),
		"BASE_IMAGE":               baseRef,
		"PGDG_INSTALL":             install,
		"SHARED_PRELOAD_LIBRARIES": gen.ProjectPreload(m, g.mode),
	}, nil
}
