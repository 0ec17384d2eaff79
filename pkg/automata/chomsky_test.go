/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: chomsky_test.go
Description: Tests for the CNF grammar export. Covers the header layout,
terminal helpers, binary and unit alternatives, epsilon and quoting.
*/

package automata

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/sentra-automata/pkg/dataset"
)

func TestToChomskyShape(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"x"}, true),
	})
	grammar := dfa.Minimize().ToChomsky()

	assert.Contains(t, grammar, "Start: S")
	assert.Contains(t, grammar, "T0 -> x")

	// A binary alternative of the form "Tn <Nonterminal>" must exist.
	binary := regexp.MustCompile(`T\d+ (S|A\d+)`)
	assert.True(t, binary.MatchString(grammar), "expected a binary alternative in:\n%s", grammar)

	// The terminal alternative for x on the start side.
	startRule := regexp.MustCompile(`(?m)^S -> .*\bx\b`)
	assert.True(t, startRule.MatchString(grammar), "expected unit terminal alternative in:\n%s", grammar)
}

func TestToChomskyEpsilon(t *testing.T) {
	accepting := buildDFA(t, []dataset.LabeledSequence{
		sample("empty", nil, true),
		sample("s1", []string{"a"}, false),
	})
	assert.Contains(t, accepting.Minimize().ToChomsky(), "S -> ε")

	rejecting := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a"}, true),
	})
	assert.NotContains(t, rejecting.Minimize().ToChomsky(), "S -> ε")
}

func TestToChomskyQuoting(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("t1", []string{"hello world"}, true),
		sample("t2", []string{"simple"}, false),
	})
	grammar := dfa.Minimize().ToChomsky()

	assert.Contains(t, grammar, `"hello world"`)
	assert.Contains(t, grammar, "simple")
	assert.NotContains(t, grammar, `"simple"`)
}

func TestToChomskyReservedEpsilonQuoted(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("t1", []string{"ε"}, true),
		sample("t2", []string{"y"}, false),
	})
	grammar := dfa.Minimize().ToChomsky()

	assert.Contains(t, grammar, `"ε"`)
	assert.NotContains(t, grammar, "S -> ε\n")
}

func TestToChomskyBranching(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a", "b"}, true),
		sample("s2", []string{"a", "c"}, false),
		sample("s3", []string{"d"}, true),
	})
	grammar := dfa.Minimize().ToChomsky()

	for _, symbol := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, grammar, symbol)
	}

	// Alphabet order a,b,c,d fixes helper numbering: Tb = T1, Tc = T2.
	assert.Contains(t, grammar, "T1 -> b")
	assert.Contains(t, grammar, "T2 -> c")
	usesHelper := regexp.MustCompile(`T1 (S|A\d+)`)
	assert.True(t, usesHelper.MatchString(grammar), "expected T1 used in a binary production:\n%s", grammar)
}

func TestToChomskyStableNaming(t *testing.T) {
	dfa := buildDFA(t, []dataset.LabeledSequence{
		sample("s1", []string{"a", "b"}, true),
		sample("s2", []string{"c"}, false),
	}).Minimize()

	grammar := dfa.ToChomsky()
	require.True(t, strings.HasPrefix(grammar, "#"))

	// Nonterminal names are S plus A0..Ak-1 in ascending state order.
	header := regexp.MustCompile(`Nonterminals: \{ (.+) \}`).FindStringSubmatch(grammar)
	require.NotNil(t, header)
	names := strings.Split(header[1], ", ")
	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], "duplicate nonterminal %s", name)
		seen[name] = true
	}
	assert.True(t, seen["S"])
}
