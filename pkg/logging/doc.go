// Package logging provides structured logging utilities for the aza-pg tooling.
//
// # Overview
//
// This package wraps the standard library slog package with pipeline-specific
// defaults and conventions for consistent logging across all commands. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("azapg", version)
//	    slog.Info("generation started", "manifest", path)
//	}
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no explicit
// level is supplied:
//
//	LOG_LEVEL=debug azapg generate
//
// All logs are written to stderr in JSON format so that generated artifacts on
// stdout stay clean.
package logging
