// Package util provides utility functions for the application
package util

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Generator lazily yields every fixed-length combination of lowercase
// letters in lexicographic order, without ever materializing the full set.
// It works like a base-26 odometer: the rightmost position increments first
// and carries left on overflow. A fresh Generator restarts the sequence.
type Generator struct {
	counters []int
	done     bool
}

// NewGenerator returns a generator for combinations of the given length.
// The length must be validated (>= 1) by the caller.
func NewGenerator(length int) *Generator {
	return &Generator{counters: make([]int, length)}
}

// Next returns the next combination in the sequence. The second return
// value is false once all 26^N combinations have been produced.
func (g *Generator) Next() (string, bool) {
	if g.done {
		return "", false
	}

	buf := make([]byte, len(g.counters))
	for i, c := range g.counters {
		buf[i] = alphabet[c]
	}

	// Advance the odometer
	i := len(g.counters) - 1
	for i >= 0 {
		g.counters[i]++
		if g.counters[i] < len(alphabet) {
			break
		}
		g.counters[i] = 0
		i--
	}
	if i < 0 {
		g.done = true
	}

	return string(buf), true
}

// NextChunk pulls up to size candidates from the generator and returns them
// with the suffix appended, in generation order. The final chunk of a
// sequence may be smaller than size; an empty slice means the generator is
// exhausted.
func NextChunk(g *Generator, suffix string, size int) []string {
	chunk := make([]string, 0, size)
	for len(chunk) < size {
		name, ok := g.Next()
		if !ok {
			break
		}
		chunk = append(chunk, name+suffix)
	}
	return chunk
}
