package candidates

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ExcludedCandidates lists peers that must never be matched, e.g. already interviewed ones.
type ExcludedCandidates struct {
	Items []*ExcludedCandidate
}

type ExcludedCandidate struct {
	ID         string
	Reason     string `json:",omitempty"`
	ExcludedAt time.Time
}

// ReadExcludedFile decodes an exclude file. An empty file excludes nothing.
func ReadExcludedFile(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, fmt.Errorf("decoding exclude file %q: %w", path, err)
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, c := range e.Items {
		if c == nil {
			continue
		}
		ids = append(ids, c.ID)
	}
	return ids
}
