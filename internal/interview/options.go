package interview

import (
	"fmt"
	"strings"
)

const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
	Sunday    = "Sunday"
)

// Weekdays lists the day labels in display order.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimezoneOption is a selectable timezone offered to users.
type TimezoneOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Timezones = []TimezoneOption{
	{Value: "UTC-8", Label: "Pacific Time (UTC-8)"},
	{Value: "UTC-5", Label: "Eastern Time (UTC-5)"},
	{Value: "UTC+0", Label: "UTC"},
	{Value: "UTC+1", Label: "Central European Time (UTC+1)"},
	{Value: "UTC+8", Label: "China Standard Time (UTC+8)"},
}

// ParseDay canonicalizes user input such as "mon" or "MONDAY" into a weekday label.
func ParseDay(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for _, day := range Weekdays {
			lower := strings.ToLower(day)
			if s == lower || s == lower[:3] {
				return day, nil
			}
		}
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// ParseDays canonicalizes a list of days, dropping duplicates and keeping first-seen order.
func ParseDays(in []string) ([]string, error) {
	days := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, raw := range in {
		day, err := ParseDay(raw)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}

// ToggleDay adds day to days or removes it when already present.
func ToggleDay(days []string, day string) []string {
	out := make([]string, 0, len(days)+1)
	found := false
	for _, d := range days {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, day)
	}
	return out
}

// TimezoneLabel returns the display label of a known timezone value, or the value itself.
func TimezoneLabel(value string) string {
	for _, tz := range Timezones {
		if tz.Value == value {
			return tz.Label
		}
	}
	return value
}
