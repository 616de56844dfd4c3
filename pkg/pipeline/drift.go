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
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/provenance"
)

// CheckDrift regenerates the artifact set and compares it against the
// checked-in copies in dir. The provenance banner is stripped from both
// sides before comparison; any other byte difference, or a missing file,
// counts as drift. Artifacts are diffed concurrently.
func CheckDrift(ctx context.Context, g *Generator, dir string) error {
	res, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	var drifted []string

	eg, ctx := errgroup.WithContext(ctx)
	for name, content := range res.Artifacts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(filepath.Join(dir, name))
			switch {
			case os.IsNotExist(err):
				mu.Lock()
				drifted = append(drifted, name)
				mu.Unlock()
				slog.Warn("artifact missing from checked-in set", "artifact", name)
				return nil
			case err != nil:
				return errors.WrapWithContext(errors.ErrCodeInternal,
					"failed to read checked-in artifact", err,
					map[string]any{"artifact": name})
			}

			if provenance.Strip(string(data)) != provenance.Strip(content) {
				mu.Lock()
				drifted = append(drifted, name)
				mu.Unlock()
				slog.Warn("artifact content drift", "artifact", name)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if len(drifted) == 0 {
		slog.Info("no drift detected", "artifacts", len(res.Artifacts), "dir", dir)
		return nil
	}

	sort.Strings(drifted)
	return errors.NewWithContext(errors.ErrCodeDriftDetected,
		"generated artifacts differ from checked-in copies, re-run generate and commit the result",
		map[string]any{"artifacts": strings.Join(drifted, ", ")})
}
