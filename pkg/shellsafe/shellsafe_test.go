package shellsafe

import (
	"testing"

	"github.com/azadata/aza-pg/pkg/errors"
)

func TestValidateAccepts(t *testing.T) {
	good := []string{
		"postgresql-18-pgvector=0.8.1-2.pgdg13+1",
		"pgbackrest",
		"pg_cron",
		"timescaledb-2-postgresql-18",
		"1:2.8.1-1.pgdg13+1",
		"libpq5=18.1-1.pgdg13+2",
	}

	for _, token := range good {
		if err := Validate(token, "test"); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", token, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	bad := []string{
		"bad-package;rm -rf",
		"package$(malicious)",
		"package`cmd`",
		"pkg && curl evil",
		"pkg|tee",
		"pkg\nver",
		"pkg ver",
		"pkg'quote'",
		`pkg"quote"`,
		"",
	}

	for _, token := range bad {
		err := Validate(token, "test")
		if err == nil {
			t.Errorf("Validate(%q) = nil, want error", token)
			continue
		}
		if !errors.HasCode(err, errors.ErrCodeUnsafeCharacters) {
			t.Errorf("Validate(%q) code = %v, want UNSAFE_CHARACTERS", token, err)
		}
	}
}

func TestValidateCarriesContext(t *testing.T) {
	err := Validate("evil;", "pgdg package name")
	se, ok := err.(*errors.StructuredError)
	if !ok {
		t.Fatalf("expected *errors.StructuredError, got %T", err)
	}
	if se.Context["context"] != "pgdg package name" {
		t.Errorf("expected call-site context in error, got %v", se.Context)
	}
	if se.Context["token"] != "evil;" {
		t.Errorf("expected offending token in error, got %v", se.Context)
	}
}
