package interview

// DefaultCandidates returns the built-in candidate pool.
func DefaultCandidates() *Candidates {
	return &Candidates{Items: []Candidate{
		{ID: "1", JobTarget: "Meta L4", Timezone: "UTC-8", Availability: []string{Monday, Wednesday, Friday}},
		{ID: "2", JobTarget: "Google L3", Timezone: "UTC-5", Availability: []string{Tuesday, Thursday, Saturday}},
		{ID: "3", JobTarget: "Amazon SDE II", Timezone: "UTC+0", Availability: []string{Monday, Tuesday, Wednesday}},
		{ID: "4", JobTarget: "Microsoft SDE II", Timezone: "UTC+1", Availability: []string{Wednesday, Thursday, Friday}},
		{ID: "5", JobTarget: "Apple SDE III", Timezone: "UTC+8", Availability: []string{Saturday, Sunday}},
	}}
}
