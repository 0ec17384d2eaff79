/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot_test.go
Description: Tests for the DFA DOT reloader. Covers the round-trip with the
DFA DOT exporter, accepting-state detection and start-state resolution.
*/

package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/sentra-automata/pkg/automata"
	"github.com/kleascm/sentra-automata/pkg/dataset"
)

func TestLoadDOTDFARoundTrip(t *testing.T) {
	pta := automata.NewPTA()
	pta.Build([]dataset.LabeledSequence{
		{ID: "s1", Symbols: []string{"a", "b"}, Label: true},
		{ID: "s2", Symbols: []string{"a", "c"}, Label: false},
		{ID: "s3", Symbols: []string{"d"}, Label: true},
	})
	dfa, err := automata.FromPTA(pta)
	require.NoError(t, err)
	dfa = dfa.Minimize()

	loaded, err := LoadDOTDFA(strings.NewReader(dfa.ToDOT()))
	require.NoError(t, err)

	sequences := [][]string{
		{}, {"a"}, {"d"}, {"a", "b"}, {"a", "c"}, {"a", "b", "d"}, {"unknown"},
	}
	for _, seq := range sequences {
		assert.Equal(t, dfa.Classify(seq), loaded.Classify(seq), "sequence %v", seq)
	}
}

func TestLoadDOTDFAStartEdge(t *testing.T) {
	input := `
digraph DFA {
  rankdir=LR;
  node [shape=circle];
  __start [shape=point];
  __start -> s1;
  s0 [label="s0\n+0 -1"];
  s1 [label="s1\n+1 -0", shape=doublecircle];
  s0 -> s1 [label="go"];
  s1 -> s0 [label="back"];
}
`
	loaded, err := LoadDOTDFA(strings.NewReader(input))
	require.NoError(t, err)

	idx, ok := loaded.StateIndex("s1")
	require.True(t, ok)
	assert.Equal(t, idx, loaded.StartState())
	assert.True(t, loaded.Accepting(idx))

	assert.True(t, loaded.Classify(nil))
	assert.False(t, loaded.Classify([]string{"back"}))
	assert.True(t, loaded.Classify([]string{"back", "go"}))
}

func TestLoadDOTDFAStartFallback(t *testing.T) {
	input := `
digraph DFA {
  q0 [label="q0"];
  q1 [label="q1", shape=doublecircle];
  q0 -> q1 [label="a"];
}
`
	loaded, err := LoadDOTDFA(strings.NewReader(input))
	require.NoError(t, err)

	// No __start edge and no S node: the first state seen is the start.
	assert.Equal(t, 0, loaded.StartState())
	assert.True(t, loaded.Classify([]string{"a"}))
}
