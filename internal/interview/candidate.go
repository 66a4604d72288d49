package interview

import "slices"

// Candidate is a pre-existing peer that can be matched.
type Candidate struct {
	ID           string   `json:"id" mapstructure:"id"`
	JobTarget    string   `json:"jobTarget" mapstructure:"job-target"`
	Timezone     string   `json:"timezone" mapstructure:"timezone"`
	Availability []string `json:"availability" mapstructure:"availability"`
}

// Candidates is an ordered candidate pool. Order is the tie-break for matching.
type Candidates struct {
	Items []Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		ids = append(ids, candidate.ID)
	}
	return ids
}

func (c *Candidates) FindByID(id string) *Candidate {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// Keep removes every candidate for which keep returns false and returns the removed ids.
// Relative order of the remaining candidates is preserved.
func (c *Candidates) Keep(keep func(Candidate) bool) []string {
	var dropped []string
	kept := c.Items[:0:0]
	for _, candidate := range c.Items {
		if keep(candidate) {
			kept = append(kept, candidate)
			continue
		}
		dropped = append(dropped, candidate.ID)
	}
	c.Items = kept
	return dropped
}

// Exclude removes candidates with the given ids.
func (c *Candidates) Exclude(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	return c.Keep(func(candidate Candidate) bool {
		return !slices.Contains(ids, candidate.ID)
	})
}

func (c Candidate) Clone() Candidate {
	c.Availability = slices.Clone(c.Availability)
	return c
}

// Clone returns a copy of the pool that can be filtered without touching the original.
func (c *Candidates) Clone() *Candidates {
	return &Candidates{Items: slices.Clone(c.Items)}
}
