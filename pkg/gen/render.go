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
	"regexp"
	"sort"
	"strings"

	"github.com/azadata/aza-pg/pkg/errors"
)

// Placeholders are literal {{NAME}} tokens. Deliberately find-and-replace
// rather than a template engine: the payloads are Dockerfiles and shell
// scripts whose own syntax must pass through byte-for-byte.
var placeholderPattern = regexp.MustCompile(`\{\{[A-Za-z0-9_]+\}\}`)

// Render substitutes every occurrence of each named placeholder in the
// template text. Substitution is global and order-independent across
// placeholder names. After substitution no {{...}} token may remain; a
// leftover means a generator/template mismatch and fails the run.
func Render(template string, placeholders map[string]string) (string, error) {
	out := template
	for name, value := range placeholders {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}

	if leftover := placeholderPattern.FindAllString(out, -1); len(leftover) > 0 {
		tokens := dedupeSorted(leftover)
		return "", errors.NewWithContext(errors.ErrCodeUnresolvedPlaceholder,
			"template contains unresolved placeholders",
			map[string]any{"tokens": strings.Join(tokens, ", ")})
	}

	return out, nil
}

func dedupeSorted(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
