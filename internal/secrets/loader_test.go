package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing secret: %v", err)
	}
	return path
}

func TestLoadPrefersFile(t *testing.T) {
	path := writeSecret(t, "  from-file \n")

	got, err := Load(Source{Name: "dsn", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected from-file, got %q", got)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := writeSecret(t, "from-env-file")
	t.Setenv("TEST_SECRET_FILE", path)

	got, err := Load(Source{Name: "dsn", Value: "inline", EnvFile: "TEST_SECRET_FILE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env-file" {
		t.Fatalf("expected from-env-file, got %q", got)
	}
}

func TestLoadFallsBackToValue(t *testing.T) {
	t.Setenv("TEST_SECRET_FILE", "")

	got, err := Load(Source{Name: "dsn", Value: " inline ", EnvFile: "TEST_SECRET_FILE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	empty := writeSecret(t, "   ")

	tests := []struct {
		name   string
		src    Source
		expect string
	}{
		{name: "nothing configured", src: Source{Name: "dsn"}, expect: "dsn is not configured"},
		{name: "default name", src: Source{}, expect: "secret is not configured"},
		{name: "empty file", src: Source{Name: "dsn", File: empty}, expect: "is empty"},
		{name: "missing file", src: Source{Name: "dsn", File: filepath.Join(t.TempDir(), "nope")}, expect: "reading dsn from file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.expect) {
				t.Fatalf("expected error containing %q, got %v", tt.expect, err)
			}
		})
	}
}
