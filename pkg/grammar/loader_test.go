/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader_test.go
Description: Tests for the CNF grammar loader and the reloaded transition
table. Covers the round-trip with the exporter, rejection reasons, malformed
line tolerance and quoting.
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

func trainGrammar(t *testing.T, samples []dataset.LabeledSequence) (*automata.DFA, *GrammarDFA) {
	t.Helper()
	pta := automata.NewPTA()
	pta.Build(samples)
	dfa, err := automata.FromPTA(pta)
	require.NoError(t, err)
	dfa = dfa.Minimize()

	loaded, err := LoadCNF(strings.NewReader(dfa.ToChomsky()))
	require.NoError(t, err)
	return dfa, loaded
}

func TestRoundTripClassification(t *testing.T) {
	samples := []dataset.LabeledSequence{
		{ID: "s1", Symbols: []string{"a", "b"}, Label: true},
		{ID: "s2", Symbols: []string{"a", "c"}, Label: false},
		{ID: "s3", Symbols: []string{"d"}, Label: true},
		{ID: "s4", Symbols: []string{"d", "b"}, Label: true},
	}
	dfa, loaded := trainGrammar(t, samples)

	sequences := [][]string{
		{}, {"a"}, {"b"}, {"c"}, {"d"},
		{"a", "b"}, {"a", "c"}, {"d", "b"}, {"a", "b", "c"},
		{"d", "d"}, {"b", "a"},
	}
	for _, seq := range sequences {
		assert.Equal(t, dfa.Classify(seq), loaded.Classify(seq), "sequence %v", seq)
	}
}

func TestRoundTripQuotedTerminals(t *testing.T) {
	samples := []dataset.LabeledSequence{
		{ID: "t1", Symbols: []string{"hello world"}, Label: true},
		{ID: "t2", Symbols: []string{`with "quote"`}, Label: true},
		{ID: "t3", Symbols: []string{"simple"}, Label: false},
	}
	dfa, loaded := trainGrammar(t, samples)

	for _, seq := range [][]string{{"hello world"}, {`with "quote"`}, {"simple"}} {
		assert.Equal(t, dfa.Classify(seq), loaded.Classify(seq), "sequence %v", seq)
	}
}

func TestRoundTripEpsilon(t *testing.T) {
	samples := []dataset.LabeledSequence{
		{ID: "empty", Symbols: nil, Label: true},
		{ID: "s1", Symbols: []string{"a"}, Label: false},
	}
	dfa, loaded := trainGrammar(t, samples)

	assert.True(t, dfa.Classify(nil))
	assert.True(t, loaded.Classify(nil))
}

func TestRoundTripEpsilonSymbol(t *testing.T) {
	// A training symbol spelled "ε" must stay a terminal, not become the
	// empty production.
	samples := []dataset.LabeledSequence{
		{ID: "m", Symbols: []string{"ε"}, Label: true},
		{ID: "b", Symbols: []string{"y"}, Label: false},
	}
	dfa, loaded := trainGrammar(t, samples)

	assert.Contains(t, dfa.ToChomsky(), `"ε"`)

	for _, seq := range [][]string{{"ε"}, {}, {"y"}, {"ε", "ε"}} {
		assert.Equal(t, dfa.Classify(seq), loaded.Classify(seq), "sequence %v", seq)
	}
	assert.True(t, loaded.Classify([]string{"ε"}))
	assert.False(t, loaded.Classify(nil))
}

func TestClassifyWithReasonMessages(t *testing.T) {
	input := `
T0 -> x
S -> T0 A0 | x
A0 -> T0 A0
`
	loaded, err := LoadCNF(strings.NewReader(input))
	require.NoError(t, err)

	accepted, reason := loaded.ClassifyWithReason([]string{"x"})
	assert.True(t, accepted)
	assert.Equal(t, "accepted", reason)

	accepted, reason = loaded.ClassifyWithReason([]string{"y"})
	assert.False(t, accepted)
	assert.Equal(t, "no transition on 'y' from state 'S' at position 0", reason)

	accepted, reason = loaded.ClassifyWithReason(nil)
	assert.False(t, accepted)
	assert.Equal(t, "ended in non-accepting state 'S'", reason)
}

func TestClassifyEmptyGrammar(t *testing.T) {
	loaded, err := LoadCNF(strings.NewReader(""))
	require.NoError(t, err)

	accepted, reason := loaded.ClassifyWithReason([]string{"x"})
	assert.False(t, accepted)
	assert.Equal(t, "empty grammar", reason)
}

func TestLoaderSkipsMalformedLines(t *testing.T) {
	input := `
# comment
Terminals: { a }
Nonterminals: { S, T0 }
Start: S

T0 -> a
S -> T0 S T0
S -> T0 S | a
garbage without arrow
S -> T9
`
	loaded, err := LoadCNF(strings.NewReader(input))
	require.NoError(t, err)

	// The well-formed alternatives still load.
	assert.True(t, loaded.Classify([]string{"a"}))
	assert.True(t, loaded.Classify([]string{"a", "a"}))
}

func TestLoaderStartFallback(t *testing.T) {
	input := `
T0 -> a
Q -> T0 Q | a
`
	loaded, err := LoadCNF(strings.NewReader(input))
	require.NoError(t, err)

	idx, ok := loaded.StateIndex("Q")
	require.True(t, ok)
	assert.Equal(t, idx, loaded.StartState())
	assert.True(t, loaded.Classify([]string{"a"}))
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "plain", Unquote("plain"))
	assert.Equal(t, "hello world", Unquote(`"hello world"`))
	assert.Equal(t, `say "hi"`, Unquote(`"say \"hi\""`))
	assert.Equal(t, `back\slash`, Unquote(`"back\\slash"`))
	assert.Equal(t, `"`, Unquote(`"`))
}
