package interview

// CurrentUserID is the synthetic id given to a requester outside of a session.
const CurrentUserID = "currentUser"

// Requester is the searching user's preferences tagged with an id.
type Requester struct {
	ID string `json:"id"`
	Preferences
}

// Match pairs the requester with a candidate satisfying every matching rule.
type Match struct {
	Requester Requester `json:"requester"`
	Candidate Candidate `json:"candidate"`
}

func NewMatch(requesterID string, prefs Preferences, candidate Candidate) *Match {
	return &Match{
		Requester: Requester{ID: requesterID, Preferences: prefs.Clone()},
		Candidate: candidate,
	}
}

// Clone returns a copy of m that shares no memory with it.
func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	return &Match{
		Requester: Requester{ID: m.Requester.ID, Preferences: m.Requester.Preferences.Clone()},
		Candidate: m.Candidate.Clone(),
	}
}

// SameJobTarget reports an exact job target match.
func SameJobTarget(p Preferences, c Candidate) bool {
	return p.JobTarget == c.JobTarget
}

// SameTimezone reports an exact timezone match.
func SameTimezone(p Preferences, c Candidate) bool {
	return p.Timezone == c.Timezone
}

// CoversAvailability reports whether every day the candidate offers is also offered by the requester.
// It is a subset test, not equality: the requester may offer more days.
func CoversAvailability(p Preferences, c Candidate) bool {
	for _, day := range c.Availability {
		if !p.Available(day) {
			return false
		}
	}
	return true
}

// Matches combines all matching rules.
func Matches(p Preferences, c Candidate) bool {
	return SameJobTarget(p, c) && SameTimezone(p, c) && CoversAvailability(p, c)
}

// FindMatch returns the first candidate in pool order that matches prefs, or nil.
func FindMatch(prefs Preferences, pool []Candidate) *Match {
	for _, candidate := range pool {
		if Matches(prefs, candidate) {
			return NewMatch(CurrentUserID, prefs, candidate)
		}
	}
	return nil
}
