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

package defaults

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"
	"github.com/opencontainers/go-digest"

	"github.com/azadata/aza-pg/pkg/errors"
)

// Defaults is the singleton record of pinned values. Loaded once at generator
// start and immutable thereafter; always passed explicitly, never looked up
// through a global.
type Defaults struct {
	// PGVersion is the pinned PostgreSQL version as MAJOR.MINOR.
	PGVersion string `json:"pgVersion" yaml:"pgVersion"`

	// BaseImage is the base image repository (without digest).
	BaseImage string `json:"baseImage" yaml:"baseImage"`

	// BaseImageSha is the pinned sha256 digest of the base image.
	BaseImageSha string `json:"baseImageSha" yaml:"baseImageSha"`

	// PGDGVersions maps a version key (the manifest entry name) to the pinned
	// Debian-style package version, e.g. "0.8.1-2.pgdg13+1".
	PGDGVersions map[string]string `json:"pgdgVersions" yaml:"pgdgVersions"`
}

// New returns the current hand-curated pins. Bump these together with the
// static package mapping when retargeting a new PGDG snapshot.
func New() *Defaults {
	return &Defaults{
		PGVersion:    "18.1",
		BaseImage:    "docker.io/library/debian",
		BaseImageSha: "sha256:e83913267c4f26e1f0676f53c5e1e3ecfe366cbe0b11eb087bc4ab57bbd3e166",
		PGDGVersions: map[string]string{
			"pgbackrest":   "2.56.0-1.pgdg13+1",
			"pgbouncer":    "1.24.1-1.pgdg13+1",
			"pg_repack":    "1.5.2-2.pgdg13+1",
			"pgaudit":      "18.0-1.pgdg13+1",
			"hypopg":       "1.4.2-1.pgdg13+1",
			"pg_hint_plan": "18.1.7.0-1.pgdg13+1",
			"orafce":       "4.14.4-1.pgdg13+1",
			"pgtap":        "1.3.3-2.pgdg13+1",
			"pg_cron":      "1.6.7-1.pgdg13+1",
			"pg_partman":   "5.2.4-1.pgdg13+1",
			"postgis":      "3.6.0+dfsg-1.pgdg13+1",
			"pldebugger":   "1.8-2.pgdg13+1",
			"pgvector":     "0.8.1-2.pgdg13+1",
			"timescaledb":  "2.23.0+dfsg-1.pgdg13+1",
		},
	}
}

// PGMajor returns the PostgreSQL major version, e.g. "18" for "18.1".
func (d *Defaults) PGMajor() string {
	major, _, _ := strings.Cut(d.PGVersion, ".")
	return major
}

// BaseImageRef returns the fully pinned base image reference
// (repository@sha256:...), validated with the distribution reference rules.
func (d *Defaults) BaseImageRef() (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	ref := fmt.Sprintf("%s@%s", d.BaseImage, d.BaseImageSha)
	if _, err := reference.ParseNormalizedNamed(ref); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid base image reference %q", ref), err)
	}
	return ref, nil
}

// Validate checks that the pinned values are internally consistent.
func (d *Defaults) Validate() error {
	if d.PGVersion == "" || d.PGMajor() == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "pgVersion must be MAJOR.MINOR")
	}
	if d.BaseImage == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "baseImage must not be empty")
	}
	if _, err := digest.Parse(d.BaseImageSha); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid base image digest %q", d.BaseImageSha), err)
	}
	for key, version := range d.PGDGVersions {
		if version == "" {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"empty pinned version", map[string]any{"key": key})
		}
	}
	return nil
}

// VersionFor returns the pinned PGDG version for a version key.
func (d *Defaults) VersionFor(key string) (string, bool) {
	v, ok := d.PGDGVersions[key]
	return v, ok
}
