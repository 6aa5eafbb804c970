// Package results accumulates confirmed matches and writes the output file
package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akinloluwami/domains-lookup/pkg/domain"
)

// Collection groups matches by suffix. It preserves both the configured
// suffix order and the discovery order of matches within each suffix, and
// is only ever touched by the single scan goroutine.
type Collection struct {
	suffixes []string
	matches  map[string][]domain.Match
}

// New returns an empty collection keyed by the configured suffixes.
// A suffix configured more than once shares a single bucket.
func New(suffixes []string) *Collection {
	c := &Collection{matches: make(map[string][]domain.Match)}
	for _, s := range suffixes {
		if _, seen := c.matches[s]; seen {
			continue
		}
		c.suffixes = append(c.suffixes, s)
		c.matches[s] = []domain.Match{}
	}
	return c
}

// Add appends a match to the suffix's list in discovery order.
func (c *Collection) Add(suffix string, m domain.Match) {
	if _, seen := c.matches[suffix]; !seen {
		c.suffixes = append(c.suffixes, suffix)
	}
	c.matches[suffix] = append(c.matches[suffix], m)
}

// Matches returns the matches recorded so far for a suffix.
func (c *Collection) Matches(suffix string) []domain.Match {
	return c.matches[suffix]
}

// Total returns the number of matches recorded across all suffixes.
func (c *Collection) Total() int {
	n := 0
	for _, list := range c.matches {
		n += len(list)
	}
	return n
}

// MarshalJSON serializes the collection as an object whose keys appear in
// configured suffix order. encoding/json sorts map keys alphabetically,
// which would lose that ordering, so the object is assembled by hand.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range c.suffixes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		list, err := json.Marshal(c.matches[s])
		if err != nil {
			return nil, err
		}
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Save writes the collection to path, pretty-printed, replacing any
// previous content.
func (c *Collection) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	return nil
}
