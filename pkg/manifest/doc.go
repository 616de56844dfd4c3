// Package manifest models the declarative extensions catalog that drives the
// aza-pg image build.
//
// The catalog is a single JSON document with one entry per extension, tool,
// builtin, or server module. Every downstream artifact (install fragments,
// preload lists, filtered build manifests, documentation) is a projection of
// this document, so the model preserves "unset" optional fields rather than
// defaulting them: each generator applies its own interpretation rule through
// the Entry helpers (IsEnabled, InComprehensiveTest, PreloadName).
package manifest
