/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/azadata/aza-pg/pkg/defaults"
	"github.com/azadata/aza-pg/pkg/manifest"
	"github.com/azadata/aza-pg/pkg/serializer"
	"github.com/azadata/aza-pg/pkg/stats"
)

func statsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "stats",
		EnableShellCompletion: true,
		Usage:                 "Summarize the manifest",
		Description: `Compute summary statistics over the extensions manifest: totals by kind,
enabled and disabled counts, PGDG package count, and both preload
projections. The summary is recomputed from the manifest directly, not
read from generated artifacts, so it doubles as an independent oracle.`,
		Flags: []cli.Flag{
			manifestFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			m, err := manifest.Load(cmd.String("manifest"))
			if err != nil {
				return err
			}

			summary, err := stats.Summarize(m, defaults.New())
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			return ser.Serialize(ctx, summary)
		},
	}
}
