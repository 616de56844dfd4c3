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
	"strings"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/manifest"
	"github.com/azadata/aza-pg/pkg/shellsafe"
)

// PackageInstall is one resolved package=version token of the install set.
type PackageInstall struct {
	ManifestName string
	Package      string
	Version      string
	Tier         PackageTier
}

// Token returns the apt-get install token, e.g.
// "postgresql-18-pgvector=0.8.1-2.pgdg13+1".
func (p PackageInstall) Token() string {
	return p.Package + "=" + p.Version
}

// InstallSet resolves the PGDG install set for a mode, in mapping (tier)
// order. Both the package name and the resolved version are passed through
// the shell-safety validator; a rejection aborts the whole generation run.
func InstallSet(m *manifest.Manifest, defs *defaults.Defaults, mode Mode) ([]PackageInstall, error) {
	set := make([]PackageInstall, 0, len(Mapping()))

	for _, pm := range Mapping() {
		e := m.Lookup(pm.ManifestName)
		if e == nil || e.InstallVia != manifest.InstallViaPGDG {
			continue
		}

		switch mode {
		case ModeComprehensive:
			if !e.InComprehensiveTest() {
				continue
			}
		default:
			if !e.IsEnabled() {
				continue
			}
		}

		version, ok := defs.VersionFor(pm.VersionKey)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeMappingOrphan,
				"mapped package has no pinned version",
				map[string]any{"name": pm.ManifestName, "versionKey": pm.VersionKey})
		}

		if err := shellsafe.Validate(pm.Package, "pgdg package name"); err != nil {
			return nil, err
		}
		if err := shellsafe.Validate(version, "pgdg package version"); err != nil {
			return nil, err
		}

		set = append(set, PackageInstall{
			ManifestName: pm.ManifestName,
			Package:      pm.Package,
			Version:      version,
			Tier:         pm.Tier,
		})
	}

	return set, nil
}

// GenerateInstallScript emits the shell fragment that installs the PGDG
// package set for the given mode.
//
// Default mode emits a single apt-get invocation followed by a post-install
// verification that counts installed packages and asserts at least the
// requested number (never fewer; extras from apt side effects are tolerated).
//
// Comprehensive mode installs package by package, logging and skipping
// failures: during pre-release windows not every package is published for
// every PostgreSQL major.
func GenerateInstallScript(m *manifest.Manifest, defs *defaults.Defaults, mode Mode) (string, error) {
	set, err := InstallSet(m, defs, mode)
	if err != nil {
		return "", err
	}
	if len(set) == 0 {
		return "", nil
	}

	if mode == ModeComprehensive {
		return comprehensiveFragment(set), nil
	}
	return defaultFragment(set, defs.PGMajor()), nil
}

func defaultFragment(set []PackageInstall, pgMajor string) string {
	var b strings.Builder

	b.WriteString("apt-get update -qq\n")
	b.WriteString("apt-get install -y --no-install-recommends \\\n")
	for i, p := range set {
		b.WriteString("    " + p.Token())
		if i < len(set)-1 {
			b.WriteString(" \\")
		}
		b.WriteString("\n")
	}

	prefix := "postgresql-" + pgMajor + "-"
	prefixed := 0
	var unprefixed []PackageInstall
	for _, p := range set {
		if strings.HasPrefix(p.Package, prefix) {
			prefixed++
		} else {
			unprefixed = append(unprefixed, p)
		}
	}

	// At-least, not exact-equal: apt may pull in additional packages matching
	// the prefix, but installing fewer than requested is always a failure.
	b.WriteString("\n")
	fmt.Fprintf(&b, "installed=\"$(dpkg-query -W -f '${Package}\\n' '%s*' 2>/dev/null | wc -l)\"\n", prefix)
	fmt.Fprintf(&b, "if [ \"${installed}\" -lt %d ]; then\n", prefixed)
	fmt.Fprintf(&b, "    echo \"ERROR: expected at least %d %s* packages, found ${installed}\" >&2\n", prefixed, prefix)
	b.WriteString("    exit 1\n")
	b.WriteString("fi\n")
	for _, p := range unprefixed {
		fmt.Fprintf(&b, "dpkg -s %s >/dev/null\n", p.Package)
	}

	return b.String()
}

func comprehensiveFragment(set []PackageInstall) string {
	var b strings.Builder

	b.WriteString("apt-get update -qq\n")
	b.WriteString("for pkg in \\\n")
	// Every token line continues, the last one included, so "; do" extends
	// the same command instead of starting a line with ";".
	for _, p := range set {
		b.WriteString("    " + p.Token() + " \\\n")
	}
	b.WriteString("; do\n")
	b.WriteString("    if apt-get install -y --no-install-recommends \"${pkg}\"; then\n")
	b.WriteString("        echo \"installed ${pkg}\"\n")
	b.WriteString("    else\n")
	b.WriteString("        echo \"WARNING: skipped ${pkg}\" >&2\n")
	b.WriteString("    fi\n")
	b.WriteString("done\n")

	return b.String()
}
