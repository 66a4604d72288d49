package candidates

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestNewDefaultsToFixture(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*Config{nil, {}, {Source: " Fixture "}} {
		repo, err := New(context.Background(), cfg, zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pool, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(pool.IDs(), []string{"1", "2", "3", "4", "5"}) {
			t.Fatalf("unexpected fixture ids: %v", pool.IDs())
		}
		repo.Close()
	}
}

func TestNewRejectsUnknownSource(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &Config{Source: "dynamo"}, nil)
	if !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestNewRequiresFilePath(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &Config{Source: SourceFile}, nil)
	if err == nil || !strings.Contains(err.Error(), "candidates.file") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}

func TestNewPostgresRequiresDSN(t *testing.T) {
	t.Setenv(dsnEnvFile, "")

	_, err := New(context.Background(), &Config{Source: SourcePostgres}, nil)
	if err == nil || !strings.Contains(err.Error(), "postgres dsn is not configured") {
		t.Fatalf("expected dsn error, got %v", err)
	}
}

func TestStaticListReturnsCopy(t *testing.T) {
	t.Parallel()

	repo, err := New(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := repo.List(context.Background())
	first.Exclude([]string{"1"})

	second, _ := repo.List(context.Background())
	if second.Len() != 5 {
		t.Fatalf("expected repository pool to stay intact, got %d", second.Len())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "candidates.yaml", `
candidates:
  - id: 10
    job-target: Stripe L2
    timezone: UTC-5
    availability: [Monday, Friday]
  - id: "7"
    job-target: Meta L4
    timezone: UTC-8
    availability:
      - Sunday
`)

	pool, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(pool.IDs(), []string{"10", "7"}) {
		t.Fatalf("expected document order [10 7], got %v", pool.IDs())
	}

	first := pool.Items[0]
	if first.JobTarget != "Stripe L2" || first.Timezone != "UTC-5" {
		t.Fatalf("unexpected candidate: %+v", first)
	}
	if !reflect.DeepEqual(first.Availability, []string{"Monday", "Friday"}) {
		t.Fatalf("unexpected availability: %v", first.Availability)
	}
}

func TestLoadFileJSONThroughNew(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "candidates.json", `{"candidates": [{"id": "a", "job-target": "X", "timezone": "UTC+0", "availability": ["Tuesday"]}]}`)

	repo, err := New(context.Background(), &Config{Source: SourceFile, File: path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Len() != 1 || pool.Items[0].ID != "a" {
		t.Fatalf("unexpected pool: %+v", pool.Items)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		expect  string
	}{
		{name: "missing list", file: "a.yaml", content: "other: 1\n", expect: "has no"},
		{name: "missing id", file: "b.yaml", content: "candidates:\n  - job-target: X\n", expect: "has no id"},
		{name: "duplicate id", file: "c.yaml", content: "candidates:\n  - id: 1\n  - id: 1\n", expect: "duplicate candidate id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFile(writeFile(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.expect) {
				t.Fatalf("expected error containing %q, got %v", tt.expect, err)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
