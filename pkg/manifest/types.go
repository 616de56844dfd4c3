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

// Kind classifies a manifest entry.
type Kind string

// Valid Kind constants.
const (
	KindExtension Kind = "extension"
	KindTool      Kind = "tool"
	KindBuiltin   Kind = "builtin"
	KindModule    Kind = "module"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindExtension, KindTool, KindBuiltin, KindModule:
		return true
	default:
		return false
	}
}

// Kinds returns all recognized kinds in rendering order.
func Kinds() []Kind {
	return []Kind{KindExtension, KindTool, KindBuiltin, KindModule}
}

// InstallVia identifies how an entry gets onto the image.
type InstallVia string

// Valid InstallVia constants.
const (
	// InstallViaPGDG means installed as an OS package from the PGDG apt repository.
	InstallViaPGDG InstallVia = "pgdg"
	// InstallViaSource means compiled from source during the image build.
	InstallViaSource InstallVia = "source"
	// InstallViaContrib means shipped with the PostgreSQL server packages.
	InstallViaContrib InstallVia = "contrib"
)

// BuildType identifies the build system used for source-built entries.
type BuildType string

// Valid BuildType constants.
const (
	BuildPGXS        BuildType = "pgxs"
	BuildAutotools   BuildType = "autotools"
	BuildCMake       BuildType = "cmake"
	BuildMeson       BuildType = "meson"
	BuildMake        BuildType = "make"
	BuildTimescaleDB BuildType = "timescaledb"
	BuildCargoPGRX   BuildType = "cargo-pgrx"
	BuildScript      BuildType = "script"
)

// IsValid checks if the BuildType is one of the recognized build systems.
func (b BuildType) IsValid() bool {
	switch b {
	case BuildPGXS, BuildAutotools, BuildCMake, BuildMeson, BuildMake,
		BuildTimescaleDB, BuildCargoPGRX, BuildScript:
		return true
	default:
		return false
	}
}

// Build describes how a source-built entry is compiled.
type Build struct {
	Type     BuildType `json:"type" yaml:"type"`
	Subdir   string    `json:"subdir,omitempty" yaml:"subdir,omitempty"`
	Features []string  `json:"features,omitempty" yaml:"features,omitempty"`
	Patches  []string  `json:"patches,omitempty" yaml:"patches,omitempty"`
}

// Runtime describes server-runtime behavior of an entry. A nil Runtime on an
// Entry means the entry never participates in preload projection or runtime
// classification; that is deliberately distinct from a Runtime with false flags.
type Runtime struct {
	SharedPreload              bool     `json:"sharedPreload,omitempty" yaml:"sharedPreload,omitempty"`
	DefaultEnable              bool     `json:"defaultEnable,omitempty" yaml:"defaultEnable,omitempty"`
	PreloadOnly                bool     `json:"preloadOnly,omitempty" yaml:"preloadOnly,omitempty"`
	PreloadInComprehensiveTest bool     `json:"preloadInComprehensiveTest,omitempty" yaml:"preloadInComprehensiveTest,omitempty"`
	PreloadLibraryName         string   `json:"preloadLibraryName,omitempty" yaml:"preloadLibraryName,omitempty"`
	Notes                      []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Source records upstream provenance. Generators in this pipeline do not
// consume it; it is carried for documentation and the image build.
type Source struct {
	Repo   string `json:"repo,omitempty" yaml:"repo,omitempty"`
	Tag    string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Ref    string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Commit string `json:"commit,omitempty" yaml:"commit,omitempty"`
}

// Entry is one row of the extensions manifest.
//
// Optional booleans are pointers so that "unset" survives parsing; each
// consumer applies its own default-interpretation rule through the helpers
// below instead of re-deriving it.
type Entry struct {
	Name                       string     `json:"name" yaml:"name"`
	Kind                       Kind       `json:"kind" yaml:"kind"`
	Enabled                    *bool      `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	EnabledInComprehensiveTest *bool      `json:"enabledInComprehensiveTest,omitempty" yaml:"enabledInComprehensiveTest,omitempty"`
	InstallVia                 InstallVia `json:"install_via,omitempty" yaml:"install_via,omitempty"`
	Build                      *Build     `json:"build,omitempty" yaml:"build,omitempty"`
	Runtime                    *Runtime   `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Source                     *Source    `json:"source,omitempty" yaml:"source,omitempty"`
}

// IsEnabled reports whether the entry is enabled. Absent means enabled; this
// is the single place that rule is encoded.
func (e *Entry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// InComprehensiveTest reports whether the entry participates in the
// comprehensive (regression) test image: enabled entries always do, disabled
// entries only when explicitly flagged back in.
func (e *Entry) InComprehensiveTest() bool {
	if e.IsEnabled() {
		return true
	}
	return e.EnabledInComprehensiveTest != nil && *e.EnabledInComprehensiveTest
}

// PreloadName resolves the shared_preload_libraries name for the entry:
// the runtime override when set and non-empty, otherwise the entry name.
func (e *Entry) PreloadName() string {
	if e.Runtime != nil && e.Runtime.PreloadLibraryName != "" {
		return e.Runtime.PreloadLibraryName
	}
	return e.Name
}

// Manifest is the top-level extensions catalog.
type Manifest struct {
	Entries []*Entry `json:"entries" yaml:"entries"`
}

// Lookup returns the entry with the given name, or nil.
func (m *Manifest) Lookup(name string) *Entry {
	for _, e := range m.Entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}
