/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot_test.go
Description: Tests for the PDA DOT loader and exporter. Covers edge label
parsing, the bootstrap __start edge and the export round-trip.
*/

package pda

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdgeLabel(t *testing.T) {
	trans := parseEdgeLabel("a, A -> B A")
	assert.Equal(t, "a", trans.InputSymbol)
	assert.Equal(t, "A", trans.PopSymbol)
	assert.Equal(t, []string{"B", "A"}, trans.PushSymbols)

	trans = parseEdgeLabel("ε, Z0 -> ε")
	assert.Equal(t, Epsilon, trans.InputSymbol)
	assert.Equal(t, "Z0", trans.PopSymbol)
	assert.Empty(t, trans.PushSymbols)

	// A bare label is an input symbol with no stack effect.
	trans = parseEdgeLabel("x")
	assert.Equal(t, "x", trans.InputSymbol)
	assert.Equal(t, Epsilon, trans.PopSymbol)
	assert.Empty(t, trans.PushSymbols)
}

func TestLoadDOTBootstrapStart(t *testing.T) {
	input := `
digraph PDA {
  rankdir=LR;
  __start [shape=point];
  __start -> q0 [label="ε, ε -> Z0"];
  q0 [label="q0"];
  qf [label="qf", shape=doublecircle];
  q0 -> q0 [label="a, ε -> A"];
  q0 -> q0 [label="b, A -> ε"];
  q0 -> qf [label="ε, Z0 -> Z0"];
}
`
	p, err := LoadDOT(strings.NewReader(input))
	require.NoError(t, err)

	// The labeled __start edge creates a real bootstrap state.
	idx, ok := p.StateIndex("__start")
	require.True(t, ok)
	assert.Equal(t, idx, p.StartState())

	assert.True(t, p.Simulate([]string{"a", "b"}).OK)
	assert.True(t, p.Simulate(nil).OK)
	assert.False(t, p.Simulate([]string{"a"}).OK)
	assert.False(t, p.Simulate([]string{"b"}).OK)
}

func TestLoadDOTUnlabeledStart(t *testing.T) {
	input := `
digraph PDA {
  __start [shape=point];
  __start -> q1;
  q0 [label="q0"];
  q1 [label="q1", shape=doublecircle];
  q1 -> q0 [label="down, ε -> ε"];
  q0 -> q1 [label="up, ε -> ε"];
}
`
	p, err := LoadDOT(strings.NewReader(input))
	require.NoError(t, err)

	_, hasBootstrap := p.StateIndex("__start")
	assert.False(t, hasBootstrap)

	idx, ok := p.StateIndex("q1")
	require.True(t, ok)
	assert.Equal(t, idx, p.StartState())

	assert.True(t, p.Simulate(nil).OK)
	assert.True(t, p.Simulate([]string{"down", "up"}).OK)
	assert.False(t, p.Simulate([]string{"down"}).OK)
}

func TestDOTRoundTrip(t *testing.T) {
	original := balancedPDA()

	reloaded, err := LoadDOT(strings.NewReader(original.ToDOT()))
	require.NoError(t, err)

	inputs := [][]string{
		nil, {"a", "b"}, {"a", "a", "b", "b"}, {"a"}, {"b", "a"}, {"a", "b", "b"},
	}
	for _, input := range inputs {
		assert.Equal(t, original.Simulate(input).OK, reloaded.Simulate(input).OK, "input %v", input)
	}
}

func TestToDOTEmptyPDA(t *testing.T) {
	assert.Equal(t, "digraph PDA {\n}\n", New().ToDOT())
}

func TestEdgeLabelRendering(t *testing.T) {
	label := edgeLabel(Transition{InputSymbol: "a", PopSymbol: Epsilon, PushSymbols: []string{"X", "Y"}})
	assert.Equal(t, "a, ε -> X Y", label)

	label = edgeLabel(Transition{InputSymbol: Epsilon, PopSymbol: "X"})
	assert.Equal(t, "ε, X -> ε", label)
}
