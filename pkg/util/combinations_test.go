package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(g *Generator) []string {
	var out []string
	for {
		name, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, name)
	}
}

func TestGenerator_SingleLetter(t *testing.T) {
	got := collect(NewGenerator(1))

	require.Len(t, got, 26)
	require.Equal(t, "a", got[0])
	require.Equal(t, "z", got[25])
}

func TestGenerator_YieldsAllCombinationsInOrder(t *testing.T) {
	got := collect(NewGenerator(2))

	require.Len(t, got, 26*26)
	require.Equal(t, "aa", got[0])
	require.Equal(t, "ab", got[1])
	require.Equal(t, "ba", got[26])
	require.Equal(t, "zz", got[len(got)-1])

	require.True(t, sort.StringsAreSorted(got), "combinations must be lexicographically ordered")

	seen := make(map[string]bool, len(got))
	for _, name := range got {
		require.Len(t, name, 2)
		require.False(t, seen[name], "duplicate combination %q", name)
		seen[name] = true
	}
}

func TestGenerator_Restartable(t *testing.T) {
	first := collect(NewGenerator(2))
	second := collect(NewGenerator(2))

	require.Equal(t, first, second)
}

func TestGenerator_ExhaustedStaysExhausted(t *testing.T) {
	g := NewGenerator(1)
	collect(g)

	_, ok := g.Next()
	require.False(t, ok)
	_, ok = g.Next()
	require.False(t, ok)
}

func TestNextChunk_SplitsWithoutLoss(t *testing.T) {
	g := NewGenerator(2)

	var chunks [][]string
	for {
		chunk := NextChunk(g, ".com", 50)
		if len(chunk) == 0 {
			break
		}
		chunks = append(chunks, chunk)
	}

	// ceil(676/50) = 14 chunks: 13 full ones and a final partial of 26
	require.Len(t, chunks, 14)
	for i := 0; i < 13; i++ {
		require.Len(t, chunks[i], 50)
	}
	require.Len(t, chunks[13], 26)

	var flat []string
	for _, chunk := range chunks {
		flat = append(flat, chunk...)
	}
	want := collect(NewGenerator(2))
	require.Len(t, flat, len(want))
	for i, name := range want {
		require.Equal(t, name+".com", flat[i])
	}
}

func TestNextChunk_AppendsSuffix(t *testing.T) {
	g := NewGenerator(1)
	chunk := NextChunk(g, ".net", 3)

	require.Equal(t, []string{"a.net", "b.net", "c.net"}, chunk)
}
