// Package errors provides structured error types for better observability
// and programmatic error handling across the generation pipeline.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnsafeCharacters,
//	    "refusing to emit package token",
//	    cause,
//	    map[string]interface{}{
//	        "package": pkgName,
//	        "version": version,
//	    },
//	)
package errors
