/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/azadata/aza-pg/pkg/oci"
)

func publishCmd() *cli.Command {
	return &cli.Command{
		Name:                  "publish",
		EnableShellCompletion: true,
		Usage:                 "Push generated artifacts to an OCI registry",
		Description: `Package a generated artifact directory as a single reproducible tar layer
and push it to an OCI registry with ORAS. Credentials come from the Docker
credential store when configured.

# Examples

Publish to GitHub Container Registry:
  azapg publish --dir generated --registry ghcr.io --repository azadata/aza-pg --tag v1.0.0

Publish to a local registry over HTTP:
  azapg publish --dir generated --registry localhost:5000 --repository aza-pg --tag dev --plain-http`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   "generated",
				Usage:   "Artifact directory to publish",
			},
			&cli.StringFlag{
				Name:     "registry",
				Required: true,
				Usage:    "OCI registry host (e.g., ghcr.io, localhost:5000)",
			},
			&cli.StringFlag{
				Name:     "repository",
				Required: true,
				Usage:    "Repository path (e.g., azadata/aza-pg)",
			},
			&cli.StringFlag{
				Name:  "tag",
				Value: version,
				Usage: "Artifact tag",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the registry connection",
			},
			&cli.BoolFlag{
				Name:  "insecure",
				Usage: "Skip TLS certificate verification",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ref, err := oci.ParseReference(
				cmd.String("registry"),
				cmd.String("repository"),
				cmd.String("tag"),
			)
			if err != nil {
				return err
			}

			res, err := oci.Push(ctx, oci.PushOptions{
				SourceDir:   cmd.String("dir"),
				Reference:   ref,
				Version:     version,
				PlainHTTP:   cmd.Bool("plain-http"),
				InsecureTLS: cmd.Bool("insecure"),
			})
			if err != nil {
				return err
			}

			slog.Info("published", "reference", res.Reference, "digest", res.Digest)
			return nil
		},
	}
}
