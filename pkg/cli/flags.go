/*
Copyright (c) 2026, the aza-pg authors. All rights reserved.
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/azadata/aza-pg/pkg/serializer"
)

var manifestFlag = &cli.StringFlag{
	Name:    "manifest",
	Aliases: []string{"m"},
	Value:   "extensions.manifest.json",
	Usage:   "Path to the extensions manifest",
}

var templatesFlag = &cli.StringFlag{
	Name:    "templates",
	Aliases: []string{"t"},
	Usage:   "Directory of template files (default: embedded templates)",
}

var outDirFlag = &cli.StringFlag{
	Name:    "out",
	Aliases: []string{"o"},
	Value:   "generated",
	Usage:   "Artifact output directory",
}

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Value:   string(serializer.FormatJSON),
	Usage:   "Output format (json, yaml, table)",
}

var comprehensiveFlag = &cli.BoolFlag{
	Name:  "comprehensive",
	Usage: "Generate the comprehensive test variant (superset install and preload)",
}
