// Copyright (c) 2026, the aza-pg authors.  All rights reserved.
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

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a required input file (manifest, template) was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeParse indicates malformed JSON or a document of the wrong shape.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeInvalidManifest indicates a manifest that parses but violates an
	// integrity rule (duplicate names, undocumented disabled entry, bad kind).
	ErrCodeInvalidManifest ErrorCode = "INVALID_MANIFEST"
	// ErrCodeUnsafeCharacters indicates a string destined for a shell command line
	// failed the allow-list check. Never sanitized, always fatal.
	ErrCodeUnsafeCharacters ErrorCode = "UNSAFE_CHARACTERS"
	// ErrCodeMappingOrphan indicates a PGDG manifest entry with no static package
	// mapping, or a mapping row with no manifest entry.
	ErrCodeMappingOrphan ErrorCode = "MAPPING_ORPHAN"
	// ErrCodeUnresolvedPlaceholder indicates a rendered template still contains
	// one or more {{...}} tokens.
	ErrCodeUnresolvedPlaceholder ErrorCode = "UNRESOLVED_PLACEHOLDER"
	// ErrCodeDriftDetected indicates regenerated output differs from the
	// checked-in artifacts. Not a crash; carries its own exit code.
	ErrCodeDriftDetected ErrorCode = "DRIFT_DETECTED"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	var se *StructuredError
	for stderrors.As(err, &se) {
		if se.Code == code {
			return true
		}
		err = se.Unwrap()
	}
	return false
}
