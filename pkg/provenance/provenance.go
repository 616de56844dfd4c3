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

// Package provenance renders the generation banner prepended to text
// artifacts. The banner is the only part of a generated artifact that may
// legitimately differ between two runs over identical inputs, so the drift
// check strips it with Strip before comparing.
package provenance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tool is the generator name recorded in every banner.
const Tool = "azapg"

const bannerPrefix = "# " + Tool + ":"

// Header identifies one generation run.
type Header struct {
	Version      string
	RunID        string
	GeneratedAt  time.Time
	ManifestPath string
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithVersion sets the tool version recorded in the banner.
func WithVersion(version string) Option {
	return func(h *Header) {
		h.Version = version
	}
}

// WithManifestPath sets the manifest source recorded in the banner.
func WithManifestPath(path string) Option {
	return func(h *Header) {
		h.ManifestPath = path
	}
}

// New creates a Header for the current run with a fresh run id.
func New(opts ...Option) *Header {
	h := &Header{
		Version:     "dev",
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Banner renders the provenance block for shell-style artifacts. Every line
// uses the "# azapg:" prefix recognized by Strip.
func (h *Header) Banner() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Code generated by %s. DO NOT EDIT.\n", Tool)
	fmt.Fprintf(&b, "%s version=%s run=%s\n", bannerPrefix, h.Version, h.RunID)
	fmt.Fprintf(&b, "%s generated=%s\n", bannerPrefix, h.GeneratedAt.Format(time.RFC3339))
	if h.ManifestPath != "" {
		fmt.Fprintf(&b, "%s manifest=%s\n", bannerPrefix, h.ManifestPath)
	}
	return b.String()
}

// Annotate prepends the banner to artifact content. Shell scripts keep their
// shebang on the first line; the banner slots in right after it.
func (h *Header) Annotate(content string) string {
	if !strings.HasPrefix(content, "#!") {
		return h.Banner() + content
	}
	// Cut tolerates a shebang-only script with no trailing newline; the
	// banner still lands after the shebang, where Strip looks for it.
	shebang, rest, _ := strings.Cut(content, "\n")
	return shebang + "\n" + h.Banner() + rest
}

func isBannerLine(line string) bool {
	return strings.HasPrefix(line, bannerPrefix) ||
		strings.HasPrefix(line, fmt.Sprintf("# Code generated by %s", Tool))
}

// Strip removes the provenance banner from artifact content, leaving
// everything else untouched. A leading shebang line is preserved. Content
// without a banner passes through as-is.
func Strip(content string) string {
	lines := strings.Split(content, "\n")

	keep := make([]string, 0, len(lines))
	i := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		keep = append(keep, lines[0])
		i = 1
	}
	for i < len(lines) && isBannerLine(lines[i]) {
		i++
	}
	keep = append(keep, lines[i:]...)
	return strings.Join(keep, "\n")
}
