/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/azadata/aza-pg/pkg/gen"
	"github.com/azadata/aza-pg/pkg/pipeline"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Run the full generation pipeline",
		Description: `Run the generation pipeline over the extensions manifest and write the
complete artifact set:
  - Dockerfile and docker-entrypoint.sh rendered from templates
  - manifest.pgxs.json / manifest.cargo.json build-family sub-manifests
  - IMAGE-CONTENTS.txt, version-info.txt, version-info.json inventories
  - checksums.txt over the whole set

With --comprehensive, the install script and preload list cover the
regression-test superset: disabled entries explicitly flagged back in are
included, and package installs become install-or-skip.`,
		Flags: []cli.Flag{
			manifestFlag,
			templatesFlag,
			outDirFlag,
			comprehensiveFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			g := pipeline.NewGenerator(cmd.String("manifest"),
				pipeline.WithTemplatesDir(cmd.String("templates")),
				pipeline.WithMode(modeFromCmd(cmd)),
				pipeline.WithToolVersion(version),
			)

			res, err := g.Run(ctx, cmd.String("out"))
			if err != nil {
				return err
			}

			slog.Info("generation complete",
				"mode", res.Mode.String(),
				"artifacts", len(res.Artifacts),
				"dir", cmd.String("out"))
			return nil
		},
	}
}

func modeFromCmd(cmd *cli.Command) gen.Mode {
	if cmd.Bool("comprehensive") {
		return gen.ModeComprehensive
	}
	return gen.ModeDefault
}
