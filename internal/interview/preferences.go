package interview

import "slices"

// Preferences describe what the searching user is looking for.
type Preferences struct {
	JobTarget    string   `json:"jobTarget" mapstructure:"job-target"`
	Timezone     string   `json:"timezone" mapstructure:"timezone"`
	Availability []string `json:"availability" mapstructure:"availability"`
}

// Available reports whether the day is among the stated availability.
// Labels are compared as-is.
func (p Preferences) Available(day string) bool {
	return slices.Contains(p.Availability, day)
}

// Clone returns a copy that shares no memory with p.
func (p Preferences) Clone() Preferences {
	p.Availability = slices.Clone(p.Availability)
	return p
}
