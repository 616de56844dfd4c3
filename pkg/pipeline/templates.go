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
	"embed"
	"os"
	"path/filepath"

	"github.com/azadata/aza-pg/pkg/errors"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template output names and their template file names.
const (
	ArtifactDockerfile = "Dockerfile"
	ArtifactEntrypoint = "docker-entrypoint.sh"
)

var templateFiles = map[string]string{
	ArtifactDockerfile: "Dockerfile.tmpl",
	ArtifactEntrypoint: "docker-entrypoint.sh.tmpl",
}

// LoadTemplates returns template content keyed by output artifact name. An
// empty dir selects the embedded defaults; otherwise each template file is
// read from dir and must exist.
func LoadTemplates(dir string) (map[string]string, error) {
	out := make(map[string]string, len(templateFiles))
	for artifact, file := range templateFiles {
		var data []byte
		var err error
		if dir == "" {
			data, err = embeddedTemplates.ReadFile("templates/" + file)
		} else {
			data, err = os.ReadFile(filepath.Join(dir, file))
		}
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
				"failed to load template", err,
				map[string]any{"template": file, "dir": dir})
		}
		out[artifact] = string(data)
	}
	return out, nil
}
