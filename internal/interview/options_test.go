package interview

import (
	"reflect"
	"testing"
)

func TestParseDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		expect  string
		wantErr bool
	}{
		{input: "Monday", expect: Monday},
		{input: "  friday ", expect: Friday},
		{input: "SUN", expect: Sunday},
		{input: "wed", expect: Wednesday},
		{input: "mo", wantErr: true},
		{input: "funday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParseDaysDropsDuplicates(t *testing.T) {
	t.Parallel()

	days, err := ParseDays([]string{"fri", "Mon", "friday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(days, []string{Friday, Monday}) {
		t.Fatalf("expected [Friday Monday], got %v", days)
	}

	if _, err := ParseDays([]string{"mon", "nope"}); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestToggleDay(t *testing.T) {
	t.Parallel()

	days := ToggleDay(nil, Monday)
	days = ToggleDay(days, Friday)
	days = ToggleDay(days, Monday)

	if !reflect.DeepEqual(days, []string{Friday}) {
		t.Fatalf("expected [Friday], got %v", days)
	}
}

func TestTimezoneLabel(t *testing.T) {
	t.Parallel()

	if got := TimezoneLabel("UTC-5"); got != "Eastern Time (UTC-5)" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := TimezoneLabel("UTC+3"); got != "UTC+3" {
		t.Fatalf("expected raw value for unknown timezone, got %q", got)
	}
}
