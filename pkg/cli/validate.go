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
	apperrors "github.com/azadata/aza-pg/pkg/errors"
	"github.com/azadata/aza-pg/pkg/gen"
	"github.com/azadata/aza-pg/pkg/manifest"
	"github.com/azadata/aza-pg/pkg/serializer"
)

// ValidationReport is the serialized result of a validate run.
type ValidationReport struct {
	Valid   bool            `json:"valid" yaml:"valid"`
	Entries manifest.Counts `json:"entries" yaml:"entries"`
	Issues  []string        `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate manifest integrity",
		Description: `Validate the extensions manifest end to end:
  - JSON Schema conformance (unknown fields, enum values)
  - unique entry names
  - disabled entries must document their comprehensive-test participation
  - package-mapping orphans in both directions
  - every mapped package has a pinned version

The report lists every offending entry by name. A manifest with issues
exits non-zero.`,
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

			report := &ValidationReport{Valid: true, Entries: m.Count()}
			for _, issue := range gen.CheckMapping(m, defaults.New()) {
				report.Valid = false
				report.Issues = append(report.Issues, issue.String())
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			if err := ser.Serialize(ctx, report); err != nil {
				return err
			}

			if !report.Valid {
				return apperrors.NewWithContext(apperrors.ErrCodeMappingOrphan,
					"manifest has integrity issues",
					map[string]any{"issues": len(report.Issues)})
			}
			return nil
		},
	}
}
