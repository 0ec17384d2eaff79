/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: minimize_test.go
Description: Tests for DFA minimization. Covers language preservation,
idempotence, count aggregation and determinism of the output numbering.
*/

package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/sentra-automata/pkg/dataset"
)

// enumerateSequences yields every sequence over the alphabet up to maxLen.
func enumerateSequences(alphabet []string, maxLen int) [][]string {
	sequences := [][]string{{}}
	frontier := [][]string{{}}
	for depth := 0; depth < maxLen; depth++ {
		var next [][]string
		for _, seq := range frontier {
			for _, symbol := range alphabet {
				extended := append(append([]string(nil), seq...), symbol)
				next = append(next, extended)
				sequences = append(sequences, extended)
			}
		}
		frontier = next
	}
	return sequences
}

func TestMinimizePreservesLanguage(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a", "b"}, true),
		sample("s2", []string{"a", "c"}, false),
		sample("s3", []string{"d"}, true),
		sample("s4", []string{"d", "b"}, true),
	})
	minimized := dfa.Minimize()

	for _, seq := range enumerateSequences(dfa.Alphabet(), 4) {
		assert.Equal(t, dfa.Classify(seq), minimized.Classify(seq), "sequence %v", seq)
	}
}

func TestMinimizeReducesStates(t *testing.T) {
	// Two sequences with distinct symbols but identical accept behavior
	// collapse their interior states.
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a", "x"}, true),
		sample("s2", []string{"b", "x"}, true),
	})
	minimized := dfa.Minimize()

	assert.Less(t, len(minimized.States()), len(dfa.States()))
}

func TestMinimizeIdempotence(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a", "b"}, true),
		sample("s2", []string{"a", "c"}, false),
		sample("s3", []string{"d"}, true),
	})

	once := dfa.Minimize()
	twice := once.Minimize()
	assert.Equal(t, len(once.States()), len(twice.States()))
}

func TestMinimizeSumsCounts(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a"}, true),
		sample("s2", []string{"b"}, true),
	})
	minimized := dfa.Minimize()

	var totalPos, totalNeg int
	for _, state := range minimized.States() {
		totalPos += state.PositiveCount
		totalNeg += state.NegativeCount
	}
	var origPos, origNeg int
	for _, state := range dfa.States() {
		origPos += state.PositiveCount
		origNeg += state.NegativeCount
	}
	assert.Equal(t, origPos, totalPos)
	assert.Equal(t, origNeg, totalNeg)
}

func TestMinimizeDeterministicOutput(t *testing.T) {
	build := func() *DFA {
		return buildDFA(t, []dataset.LabeledSequence{
			sample("s1", []string{"a", "b"}, true),
			sample("s2", []string{"a", "c"}, false),
			sample("s3", []string{"d"}, true),
		}).Minimize()
	}

	first := build()
	second := build()
	require.Equal(t, len(first.States()), len(second.States()))
	assert.Equal(t, first.StartState(), second.StartState())
	assert.Equal(t, first.ToChomsky(), second.ToChomsky())
	assert.Equal(t, first.ToDOT(), second.ToDOT())
}

func TestMinimizeKeepsSinkMapped(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a"}, true),
	})
	minimized := dfa.Minimize()

	sink, ok := minimized.SinkState()
	require.True(t, ok)
	assert.False(t, minimized.States()[sink].Accepting)
}
