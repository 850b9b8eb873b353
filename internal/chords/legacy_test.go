package chords

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidChordMatchesParse(t *testing.T) {
	inputs := []string{"C", "Am7", "Cmaj7", "Do", "H", "F#m", "C/E", "", "X", "C##", "Cmx", "  G  "}
	for _, input := range inputs {
		assert.Equal(t, Parse(input).IsValid, IsValidChord(input), "input %q", input)
	}
}

func TestParseChordMapShape(t *testing.T) {
	m := ParseChord("Cmaj7")
	require.Equal(t, true, m["is_valid"])
	assert.Equal(t, "Cmaj7", m["original"])
	assert.Equal(t, "Cmaj7", m["normalized"])
	assert.Equal(t, QualityMajor, m["quality"])
	assert.Empty(t, m["errors"])

	components, ok := m["components"].(map[string]any)
	require.True(t, ok, "components should be a nested map")
	assert.Equal(t, "C", components["root"])
	assert.Equal(t, "maj7", components["extension"])

	invalid := ParseChord("X")
	assert.Equal(t, false, invalid["is_valid"])
	assert.Nil(t, invalid["components"])
	assert.Equal(t, []string{errUnknownRoot}, invalid["errors"])
}

func TestParseChordsBatch(t *testing.T) {
	inputs := []string{"C", "X", "Am", "Do"}
	results := ParseChords(inputs)
	require.Len(t, results, len(inputs))

	for i, result := range results {
		assert.Equal(t, inputs[i], result.Original, "order must be preserved")
	}
	assert.True(t, results[0].IsValid)
	assert.False(t, results[1].IsValid)
	assert.True(t, results[2].IsValid)
	assert.Equal(t, "C", results[3].Components.Root)
}

func TestDefaultEngineMatchesFreshInstance(t *testing.T) {
	fresh := NewEngine()
	for _, input := range []string{"C", "Bbm7b5", "Sol", "C/E", "garbage"} {
		assert.Equal(t, fresh.Parse(input), Parse(input), "input %q", input)
	}
}

func TestConcurrentParsing(t *testing.T) {
	const goroutines = 16
	const iterations = 200

	inputs := []string{"C", "Am7", "Cmaj7#11", "Dom", "H", "X", "C/E", "Gsus4"}
	expected := make([]ParseResult, len(inputs))
	for i, input := range inputs {
		expected[i] = Parse(input)
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < iterations; n++ {
				for i, input := range inputs {
					result := Parse(input)
					if result.IsValid != expected[i].IsValid || result.Quality != expected[i].Quality {
						t.Errorf("concurrent parse of %q diverged: %+v", input, result)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
