// Package defaults carries the pinned version and digest values consumed by
// the generation pipeline: the PostgreSQL version, the base image digest, and
// the Debian-style PGDG package versions.
//
// The values are hand-curated and compiled in. They are modeled as an explicit
// value handed to every generator rather than ambient state, so tests can run
// the pipeline against synthetic pins.
package defaults
