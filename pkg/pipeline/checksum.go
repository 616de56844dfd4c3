// Copyright (c) 2026, the aza-pg authors. All rights reserved.
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

package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/azadata/aza-pg/pkg/provenance"
)

// ArtifactChecksums is the checksum manifest file name.
const ArtifactChecksums = "checksums.txt"

// Checksums renders a sha256sum-style listing of every artifact, one line
// each, sorted by name. Digests are computed over banner-stripped content so
// the listing is stable across runs over identical inputs.
func Checksums(artifacts map[string]string) string {
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	b := &strings.Builder{}
	for _, name := range names {
		sum := sha256.Sum256([]byte(provenance.Strip(artifacts[name])))
		fmt.Fprintf(b, "%x  %s\n", sum, name)
	}
	return b.String()
}
