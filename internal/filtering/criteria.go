package filtering

import (
	"context"

	"github.com/spigell/peer-interview/internal/interview"
)

type criterionFilter struct {
	name string
	keep func(interview.Preferences, interview.Candidate) bool
}

// Criteria returns one filter per matching rule. Together they retain exactly
// the candidates interview.Matches accepts.
func Criteria() []Filter {
	return []Filter{
		NewJobTarget(),
		NewTimezone(),
		NewAvailability(),
	}
}

// NewJobTarget keeps candidates with the requested job target.
func NewJobTarget() Filter {
	return &criterionFilter{name: "job_target", keep: interview.SameJobTarget}
}

// NewTimezone keeps candidates in the requested timezone.
func NewTimezone() Filter {
	return &criterionFilter{name: "timezone", keep: interview.SameTimezone}
}

// NewAvailability keeps candidates whose every available day is covered by the requester.
func NewAvailability() Filter {
	return &criterionFilter{name: "availability", keep: interview.CoversAvailability}
}

func (f *criterionFilter) Name() string { return f.name }

// Matching rules cannot be switched off.
func (f *criterionFilter) Disable(string) {}

func (f *criterionFilter) IsEnabled() bool { return true }

func (f *criterionFilter) Apply(_ context.Context, prefs interview.Preferences, pool *interview.Candidates) (*interview.Candidates, Step, error) {
	initial := pool.Len()
	dropped := pool.Keep(func(c interview.Candidate) bool {
		return f.keep(prefs, c)
	})

	return pool, Step{Initial: initial, Dropped: len(dropped), Left: pool.Len()}, nil
}

func (f *criterionFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}
