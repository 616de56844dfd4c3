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

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/serializer"
)

// Load reads and parses the extensions manifest at path. JSON is the
// canonical format; a .yaml/.yml manifest is accepted and normalized to JSON
// before validation, so both forms go through the same schema check.
//
// The document is validated against the embedded JSON Schema before decoding,
// then checked structurally with Validate. Optional fields are preserved as
// unset rather than defaulted; consumers apply their own interpretation rules
// via the Entry helpers.
func Load(path string) (*Manifest, error) {
	doc, err := serializer.FromFile[any](path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeNotFound,
				fmt.Sprintf("manifest %q not found", path), err)
		}
		return nil, errors.Wrap(errors.ErrCodeParse,
			fmt.Sprintf("manifest %q not readable", path), err)
	}

	data, err := json.Marshal(*doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse,
			fmt.Sprintf("manifest %q does not normalize to JSON", path), err)
	}

	return Parse(data)
}

// Parse decodes and validates a manifest document from raw JSON bytes.
func Parse(data []byte) (*Manifest, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, "manifest decode failed", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate performs structural integrity checks that the schema cannot
// express: name uniqueness, valid enums, and the documented-disabled rule.
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest has no entries")
	}

	seen := make(map[string]bool, len(m.Entries))
	for i, e := range m.Entries {
		if e == nil {
			return errors.New(errors.ErrCodeInvalidManifest,
				fmt.Sprintf("entry at index %d is null", i))
		}
		if e.Name == "" {
			return errors.New(errors.ErrCodeInvalidManifest,
				fmt.Sprintf("entry at index %d has empty name", i))
		}
		if seen[e.Name] {
			return errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"duplicate entry name", map[string]any{"name": e.Name})
		}
		seen[e.Name] = true

		if !e.Kind.IsValid() {
			return errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"unknown kind", map[string]any{"name": e.Name, "kind": string(e.Kind)})
		}
		if e.Build != nil && !e.Build.Type.IsValid() {
			return errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"unknown build type", map[string]any{"name": e.Name, "type": string(e.Build.Type)})
		}

		// A disabled entry must document its comprehensive-test participation,
		// even when the answer is "no".
		if e.Enabled != nil && !*e.Enabled && e.EnabledInComprehensiveTest == nil {
			return errors.NewWithContext(errors.ErrCodeInvalidManifest,
				"disabled entry must set enabledInComprehensiveTest",
				map[string]any{"name": e.Name})
		}
	}

	return nil
}

// Counts aggregates manifest statistics used by the documentation artifacts
// and by the black-box harness as an independent oracle.
type Counts struct {
	Total    int `json:"total" yaml:"total"`
	Enabled  int `json:"enabled" yaml:"enabled"`
	Disabled int `json:"disabled" yaml:"disabled"`
}

// Count returns the overall entry totals.
func (m *Manifest) Count() Counts {
	var c Counts
	for _, e := range m.Entries {
		c.Total++
		if e.IsEnabled() {
			c.Enabled++
		} else {
			c.Disabled++
		}
	}
	return c
}

// CountByKind recomputes per-kind totals from scratch. Deliberately
// independent from the generators so drift between them is detectable.
func (m *Manifest) CountByKind() map[Kind]Counts {
	out := make(map[Kind]Counts, 4)
	for _, e := range m.Entries {
		c := out[e.Kind]
		c.Total++
		if e.IsEnabled() {
			c.Enabled++
		} else {
			c.Disabled++
		}
		out[e.Kind] = c
	}
	return out
}
