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

// PackageTier classifies how frequently a package's pinned version changes.
// Stable packages install in earlier image layers so that bumping a volatile
// pin only invalidates the tail of the apt layer cache.
type PackageTier int

// Tiers, ordered stable-first.
const (
	TierStable PackageTier = iota
	TierRegular
	TierVolatile
)

// String returns the string representation of the PackageTier.
func (t PackageTier) String() string {
	switch t {
	case TierStable:
		return "stable"
	case TierRegular:
		return "regular"
	case TierVolatile:
		return "volatile"
	default:
		return "unknown"
	}
}

// PackageMapping binds a manifest entry name to its PGDG package.
type PackageMapping struct {
	// ManifestName joins against manifest.Entry.Name.
	ManifestName string
	// Package is the Debian package name for the pinned PostgreSQL major.
	Package string
	// VersionKey looks up the pinned version in defaults.PGDGVersions.
	VersionKey string
	// Tier drives install-layer ordering.
	Tier PackageTier
}

// packageMappings is the hand-curated mapping table, ordered by tier
// (stable first). Kept separate from the manifest on purpose; the validate
// command cross-checks both directions and reports orphans by name.
var packageMappings = []PackageMapping{
	{ManifestName: "pgbackrest", Package: "pgbackrest", VersionKey: "pgbackrest", Tier: TierStable},
	{ManifestName: "pgbouncer", Package: "pgbouncer", VersionKey: "pgbouncer", Tier: TierStable},
	{ManifestName: "pg_repack", Package: "postgresql-18-repack", VersionKey: "pg_repack", Tier: TierStable},
	{ManifestName: "pgaudit", Package: "postgresql-18-pgaudit", VersionKey: "pgaudit", Tier: TierStable},
	{ManifestName: "hypopg", Package: "postgresql-18-hypopg", VersionKey: "hypopg", Tier: TierStable},
	{ManifestName: "pg_hint_plan", Package: "postgresql-18-pg-hint-plan", VersionKey: "pg_hint_plan", Tier: TierStable},
	{ManifestName: "orafce", Package: "postgresql-18-orafce", VersionKey: "orafce", Tier: TierStable},
	{ManifestName: "pgtap", Package: "postgresql-18-pgtap", VersionKey: "pgtap", Tier: TierRegular},
	{ManifestName: "pg_cron", Package: "postgresql-18-cron", VersionKey: "pg_cron", Tier: TierRegular},
	{ManifestName: "pg_partman", Package: "postgresql-18-partman", VersionKey: "pg_partman", Tier: TierRegular},
	{ManifestName: "postgis", Package: "postgresql-18-postgis-3", VersionKey: "postgis", Tier: TierRegular},
	{ManifestName: "pldebugger", Package: "postgresql-18-pldebugger", VersionKey: "pldebugger", Tier: TierRegular},
	{ManifestName: "pgvector", Package: "postgresql-18-pgvector", VersionKey: "pgvector", Tier: TierVolatile},
	{ManifestName: "timescaledb", Package: "timescaledb-2-postgresql-18", VersionKey: "timescaledb", Tier: TierVolatile},
}

// Mapping returns the static package mapping table in install order.
// Callers must treat the returned slice as read-only.
func Mapping() []PackageMapping {
	return packageMappings
}

// MappingFor returns the mapping row for a manifest name, if any.
func MappingFor(name string) (PackageMapping, bool) {
	for _, pm := range packageMappings {
		if pm.ManifestName == name {
			return pm, true
		}
	}
	return PackageMapping{}, false
}
