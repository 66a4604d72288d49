package candidates

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/peer-interview/internal/interview"
)

const fileKey = "candidates"

// LoadFile reads a candidate document (yaml, json or toml) with a top-level
// candidates list. Document order becomes pool order.
func LoadFile(path string) (*interview.Candidates, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading candidates file %q: %w", path, err)
	}

	raw := v.Get(fileKey)
	if raw == nil {
		return nil, fmt.Errorf("candidates file %q has no %q list", path, fileKey)
	}

	var items []interview.Candidate
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &items,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding candidates from %q: %w", path, err)
	}

	seen := make(map[string]bool, len(items))
	for i, c := range items {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return nil, fmt.Errorf("candidate #%d in %q has no id", i+1, path)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate candidate id %q in %q", id, path)
		}
		seen[id] = true
	}

	return &interview.Candidates{Items: items}, nil
}
