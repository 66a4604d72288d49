package interview

import (
	"reflect"
	"testing"
)

func TestCandidatesKeepPreservesOrder(t *testing.T) {
	t.Parallel()

	pool := DefaultCandidates()
	dropped := pool.Keep(func(c Candidate) bool { return c.ID != "2" && c.ID != "4" })

	if !reflect.DeepEqual(dropped, []string{"2", "4"}) {
		t.Fatalf("expected dropped [2 4], got %v", dropped)
	}
	if !reflect.DeepEqual(pool.IDs(), []string{"1", "3", "5"}) {
		t.Fatalf("expected remaining [1 3 5], got %v", pool.IDs())
	}
}

func TestCandidatesExclude(t *testing.T) {
	t.Parallel()

	pool := DefaultCandidates()
	original := pool.Clone()

	removed := pool.Exclude([]string{"5", "1", "missing"})
	if !reflect.DeepEqual(removed, []string{"1", "5"}) {
		t.Fatalf("expected removed [1 5], got %v", removed)
	}
	if pool.Len() != 3 {
		t.Fatalf("expected 3 candidates left, got %d", pool.Len())
	}
	if original.Len() != 5 {
		t.Fatalf("expected clone to be untouched, got %d", original.Len())
	}
	if pool.Exclude(nil) != nil {
		t.Fatalf("expected nothing removed for empty ids")
	}
}

func TestCandidatesFindByID(t *testing.T) {
	t.Parallel()

	pool := DefaultCandidates()
	if c := pool.FindByID("3"); c == nil || c.JobTarget != "Amazon SDE II" {
		t.Fatalf("unexpected candidate: %+v", c)
	}
	if c := pool.FindByID("42"); c != nil {
		t.Fatalf("expected nil, got %+v", c)
	}
}
