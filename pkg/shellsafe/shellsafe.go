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

// Package shellsafe guards strings destined for generated shell command lines.
//
// Every package name and version string interpolated into a generated install
// fragment must pass Validate first. Rejection is fatal to the whole generation
// run: the manifest and version table are hand-curated, so an illegal character
// means either a mapping bug or attempted injection, and both warrant human
// review rather than silent sanitization.
package shellsafe

import (
	"regexp"

	"github.com/azadata/aza-pg/pkg/errors"
)

// Allow-list for shell-bound tokens. Covers Debian package names and
// versions like "postgresql-18-pgvector=0.8.1-2.pgdg13+1".
var safeToken = regexp.MustCompile(`^[A-Za-z0-9._+:=-]+$`)

// Validate checks token against the allow-list pattern. The context string
// names the call site (e.g. "pgdg package name") and is carried in the error
// for remediation.
func Validate(token, context string) error {
	if token == "" {
		return errors.NewWithContext(errors.ErrCodeUnsafeCharacters,
			"empty token is not allowed in a shell command line",
			map[string]any{"context": context})
	}
	if !safeToken.MatchString(token) {
		return errors.NewWithContext(errors.ErrCodeUnsafeCharacters,
			"token contains characters outside the shell-safe allow-list",
			map[string]any{"token": token, "context": context})
	}
	return nil
}
