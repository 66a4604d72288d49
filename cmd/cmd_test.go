package cmd

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/session"
)

func newMatchFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "match"}
	cmd.Flags().String("job-target", "", "")
	cmd.Flags().String("timezone", "", "")
	cmd.Flags().StringSlice("day", nil, "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return cmd
}

func TestPreferencesFromFlags(t *testing.T) {
	t.Parallel()

	cmd := newMatchFlags(t, "--job-target", "Meta L4", "--timezone", "UTC-8", "--day", "mon,wed", "--day", "Friday")

	prefs, err := preferencesFromFlags(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := interview.Preferences{
		JobTarget:    "Meta L4",
		Timezone:     "UTC-8",
		Availability: []string{"Monday", "Wednesday", "Friday"},
	}
	if !reflect.DeepEqual(prefs, expected) {
		t.Fatalf("expected %+v, got %+v", expected, prefs)
	}
}

func TestPreferencesFromFlagsRejectsUnknownDay(t *testing.T) {
	t.Parallel()

	if _, err := preferencesFromFlags(newMatchFlags(t, "--day", "someday")); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestOrderDays(t *testing.T) {
	t.Parallel()

	got := orderDays([]string{"Sunday", "Monday", "Friday"})
	if !reflect.DeepEqual(got, []string{"Monday", "Friday", "Sunday"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestRenderState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		state  session.State
		expect []string
	}{
		{
			name: "found",
			state: session.State{
				Status: session.StatusFound,
				Match: interview.NewMatch("s1", interview.Preferences{}, interview.Candidate{
					ID: "1", JobTarget: "Meta L4", Timezone: "UTC-8", Availability: []string{"Monday", "Wednesday"},
				}),
			},
			expect: []string{matchFoundTitle, "Job Target: Meta L4", "Pacific Time (UTC-8)", "Availability: Monday, Wednesday"},
		},
		{
			name:   "not found",
			state:  session.State{Status: session.StatusNotFound},
			expect: []string{noMatchTitle, noMatchDescription},
		},
		{
			name:   "failed",
			state:  session.State{Status: session.StatusFailed, Error: "boom"},
			expect: []string{"Lookup failed: boom"},
		},
		{
			name:   "searching",
			state:  session.State{Status: session.StatusSearching},
			expect: []string{searchingMessage},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			renderState(&buf, tt.state)
			for _, want := range tt.expect {
				if !strings.Contains(buf.String(), want) {
					t.Fatalf("expected output to contain %q, got %q", want, buf.String())
				}
			}
		})
	}
}
