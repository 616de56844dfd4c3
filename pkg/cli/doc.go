// Package cli implements the command-line interface for the aza-pg generation
// pipeline.
//
// # Commands
//
// generate - run the full pipeline and write the artifact set:
//
//	azapg generate --manifest extensions.manifest.json --out generated/
//
// check - regenerate and diff against checked-in artifacts (CI drift gate):
//
//	azapg check --manifest extensions.manifest.json --out generated/
//
// validate - manifest integrity: schema, unique names, documented disables,
// package-mapping orphans in both directions:
//
//	azapg validate --manifest extensions.manifest.json
//
// stats - summary statistics in JSON, YAML, or table form:
//
//	azapg stats --manifest extensions.manifest.json --format table
//
// publish - push a generated artifact directory to an OCI registry:
//
//	azapg publish --dir generated/ --registry ghcr.io --repository azadata/aza-pg --tag v1.0.0
//
// # Exit Codes
//
//	0  Success
//	1  Fatal error (invalid arguments, generation failure)
//	3  Drift detected by check
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/azadata/aza-pg/pkg/cli.version=1.0.0'"
package cli
