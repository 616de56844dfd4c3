package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/shellsafe"
)

func TestMappingIsTierOrdered(t *testing.T) {
	last := TierStable
	for _, pm := range Mapping() {
		if pm.Tier < last {
			t.Fatalf("mapping table not tier-ordered at %s", pm.ManifestName)
		}
		last = pm.Tier
	}
}

func TestMappingNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, pm := range Mapping() {
		assert.False(t, seen[pm.ManifestName], "duplicate mapping for %s", pm.ManifestName)
		seen[pm.ManifestName] = true
	}
}

func TestMappingPackagesAreShellSafe(t *testing.T) {
	for _, pm := range Mapping() {
		assert.NoError(t, shellsafe.Validate(pm.Package, "mapping table"), pm.ManifestName)
	}
}

func TestMappingVersionKeysArePinned(t *testing.T) {
	defs := defaults.New()
	for _, pm := range Mapping() {
		v, ok := defs.VersionFor(pm.VersionKey)
		require.True(t, ok, "no pin for %s", pm.VersionKey)
		assert.NoError(t, shellsafe.Validate(v, "pinned version"), pm.VersionKey)
	}
}

func TestMappingFor(t *testing.T) {
	pm, ok := MappingFor("pgvector")
	require.True(t, ok)
	assert.Equal(t, "postgresql-18-pgvector", pm.Package)

	_, ok = MappingFor("no_such_entry")
	assert.False(t, ok)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "stable", TierStable.String())
	assert.Equal(t, "regular", TierRegular.String())
	assert.Equal(t, "volatile", TierVolatile.String())
	assert.Equal(t, "unknown", PackageTier(42).String())
}

func TestModeIsValid(t *testing.T) {
	assert.True(t, ModeDefault.IsValid())
	assert.True(t, ModeComprehensive.IsValid())
	assert.False(t, Mode("exhaustive").IsValid())
}
