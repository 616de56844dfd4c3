// Package gen contains the generators that expand the extensions manifest
// into build artifacts: the PGDG install-script fragments, the
// shared_preload_libraries projections, and the placeholder-based template
// renderer.
//
// All generators take the manifest and the pinned defaults as explicit
// arguments and are pure with respect to them: identical inputs produce
// identical output, which is what makes the drift check meaningful.
package gen
