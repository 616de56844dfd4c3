package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsValid(t *testing.T) {
	d := New()
	require.NoError(t, d.Validate())
	assert.Equal(t, "18", d.PGMajor())

	ref, err := d.BaseImageRef()
	require.NoError(t, err)
	assert.Contains(t, ref, "@sha256:")
}

func TestValidateRejectsBadDigest(t *testing.T) {
	d := New()
	d.BaseImageSha = "sha256:notahash"
	assert.Error(t, d.Validate())

	d.BaseImageSha = "e83913267c4f"
	assert.Error(t, d.Validate())
}

func TestValidateRejectsEmptyPins(t *testing.T) {
	d := New()
	d.PGDGVersions["pgvector"] = ""
	assert.Error(t, d.Validate())

	d = New()
	d.PGVersion = ""
	assert.Error(t, d.Validate())
}

func TestVersionFor(t *testing.T) {
	d := New()

	v, ok := d.VersionFor("pgvector")
	require.True(t, ok)
	assert.Equal(t, "0.8.1-2.pgdg13+1", v)

	_, ok = d.VersionFor("no_such_extension")
	assert.False(t, ok)
}
