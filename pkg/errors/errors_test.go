package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "manifest not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "manifest not found" {
		t.Errorf("expected message 'manifest not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeParse, "manifest decode failed", cause)

	if err.Code != ErrCodeParse {
		t.Errorf("expected code %s, got %s", ErrCodeParse, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("illegal character")
	ctx := map[string]interface{}{
		"package": "postgresql-18-pgvector",
		"context": "pgdg install fragment",
	}

	err := WrapWithContext(ErrCodeUnsafeCharacters, "token rejected", cause, ctx)

	if err.Code != ErrCodeUnsafeCharacters {
		t.Errorf("expected code %s, got %s", ErrCodeUnsafeCharacters, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["package"] != "postgresql-18-pgvector" {
		t.Errorf("expected package to be postgresql-18-pgvector")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestHasCode(t *testing.T) {
	inner := New(ErrCodeUnsafeCharacters, "bad token")
	outer := Wrap(ErrCodeInternal, "generation failed", inner)

	if !HasCode(outer, ErrCodeUnsafeCharacters) {
		t.Errorf("expected UNSAFE_CHARACTERS to be found in chain")
	}
	if HasCode(outer, ErrCodeDriftDetected) {
		t.Errorf("did not expect DRIFT_DETECTED in chain")
	}
	if HasCode(errors.New("plain"), ErrCodeInternal) {
		t.Errorf("plain errors carry no code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeParse,
		ErrCodeInvalidManifest,
		ErrCodeUnsafeCharacters,
		ErrCodeMappingOrphan,
		ErrCodeUnresolvedPlaceholder,
		ErrCodeDriftDetected,
		ErrCodeInvalidRequest,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
