package filtering

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/peer-interview/internal/candidates"
	"github.com/spigell/peer-interview/internal/interview"
)

type excludeFileFilter struct {
	path     string
	disabled bool
	reason   string
}

// NewExcludeFile creates a filter that removes candidates listed in the exclude file.
func NewExcludeFile(path string) Filter {
	f := &excludeFileFilter{path: strings.TrimSpace(path)}
	if f.path == "" {
		f.Disable("exclude file is not set")
	}
	return f
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Apply(_ context.Context, _ interview.Preferences, pool *interview.Candidates) (*interview.Candidates, Step, error) {
	initial := pool.Len()

	excluded, err := candidates.ReadExcludedFile(f.path)
	if err != nil {
		return pool, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	removed := pool.Exclude(excluded.IDs())

	return pool, Step{Initial: initial, Dropped: len(removed), Left: pool.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
