/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/azadata/aza-pg/pkg/pipeline"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Verify checked-in artifacts match a fresh generation",
		Description: `Regenerate the artifact set in memory and compare it against the
checked-in copies, ignoring provenance banners. Exits 3 when any artifact
differs or is missing, so CI can gate on stale generated output without
conflating drift with tool failures.`,
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
			return pipeline.CheckDrift(ctx, g, cmd.String("out"))
		},
	}
}
