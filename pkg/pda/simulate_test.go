/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: simulate_test.go
Description: Tests for the PDA simulator. Covers acceptance of a balanced
language, trace consistency, push ordering, the step budget and the
best-progress trace on rejection.
*/

package pda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// balancedPDA accepts a^n b^n using a bottom-of-stack marker. The bootstrap
// state pushes Z0 so leftover 'a' pushes block the final Z0 check.
func balancedPDA() *PDA {
	p := New()
	p.SetStart("qs")
	p.AddTransition("qs", Transition{InputSymbol: Epsilon, PopSymbol: Epsilon, PushSymbols: []string{"Z0"}}, "q0")
	p.AddTransition("q0", Transition{InputSymbol: "a", PopSymbol: Epsilon, PushSymbols: []string{"A"}}, "q0")
	p.AddTransition("q0", Transition{InputSymbol: Epsilon, PopSymbol: Epsilon}, "q1")
	p.AddTransition("q1", Transition{InputSymbol: "b", PopSymbol: "A"}, "q1")
	p.AddTransition("q1", Transition{InputSymbol: Epsilon, PopSymbol: "Z0", PushSymbols: []string{"Z0"}}, "qf")
	p.SetAccepting("qf")
	return p
}

func repeat(symbol string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = symbol
	}
	return out
}

func TestSimulateBalancedLanguage(t *testing.T) {
	p := balancedPDA()

	for n := 0; n <= 4; n++ {
		input := append(repeat("a", n), repeat("b", n)...)
		assert.True(t, p.Simulate(input).OK, "a^%d b^%d must accept", n, n)
	}

	rejected := [][]string{
		{"a"}, {"b"}, {"a", "a", "b"}, {"a", "b", "b"}, {"b", "a"},
	}
	for _, input := range rejected {
		assert.False(t, p.Simulate(input).OK, "input %v must reject", input)
	}
}

func TestSimulateTraceConsistency(t *testing.T) {
	p := balancedPDA()
	result := p.Simulate([]string{"a", "a", "b", "b"})
	require.True(t, result.OK)
	require.NotEmpty(t, result.Steps)

	// The trace chains: each step leaves the state the next one enters.
	assert.Equal(t, "qs", result.Steps[0].CurrentState)
	for i := 1; i < len(result.Steps); i++ {
		assert.Equal(t, result.Steps[i-1].NextState, result.Steps[i].CurrentState, "step %d", i)
	}

	// Non-ε step symbols replay the input in order.
	var consumed []string
	for _, step := range result.Steps {
		if step.Symbol != Epsilon {
			consumed = append(consumed, step.Symbol)
		}
	}
	assert.Equal(t, []string{"a", "a", "b", "b"}, consumed)

	last := result.Steps[len(result.Steps)-1]
	assert.Equal(t, "qf", last.NextState)
	assert.Equal(t, []string{"Z0"}, last.StackAfter)
}

func TestSimulatePushOrder(t *testing.T) {
	p := New()
	p.SetStart("q0")
	p.AddTransition("q0", Transition{InputSymbol: "go", PopSymbol: Epsilon, PushSymbols: []string{"X", "Y"}}, "q1")
	p.AddTransition("q1", Transition{InputSymbol: Epsilon, PopSymbol: "X"}, "q2")
	p.SetAccepting("q2")

	result := p.Simulate([]string{"go"})
	require.True(t, result.OK, "the first listed push symbol must be on top")
	assert.Equal(t, []string{"Y", "X"}, result.Steps[0].StackAfter)
}

func TestSimulateStepBudget(t *testing.T) {
	p := New()
	p.SetStart("q0")
	p.AddTransition("q0", Transition{InputSymbol: Epsilon, PopSymbol: Epsilon, PushSymbols: []string{"X"}}, "q0")

	result := p.SimulateBudget([]string{"never"}, 100)
	assert.False(t, result.OK)
}

func TestSimulateBestProgressTrace(t *testing.T) {
	p := New()
	p.SetStart("q0")
	p.AddTransition("q0", Transition{InputSymbol: "a", PopSymbol: Epsilon}, "q1")
	p.AddTransition("q1", Transition{InputSymbol: "b", PopSymbol: Epsilon}, "q2")
	p.SetAccepting("q2")

	result := p.Simulate([]string{"a", "x"})
	assert.False(t, result.OK)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "a", result.Steps[0].Symbol)
	assert.Equal(t, "q1", result.Steps[0].NextState)
}

func TestSimulateEmptyPDA(t *testing.T) {
	p := New()
	result := p.Simulate([]string{"a"})
	assert.False(t, result.OK)
	assert.Empty(t, result.Steps)
}

func TestSimulateOpKinds(t *testing.T) {
	p := New()
	p.SetStart("q0")
	p.AddTransition("q0", Transition{InputSymbol: "push", PopSymbol: Epsilon, PushSymbols: []string{"X"}}, "q0")
	p.AddTransition("q0", Transition{InputSymbol: "pop", PopSymbol: "X"}, "q0")
	p.AddTransition("q0", Transition{InputSymbol: "skip", PopSymbol: Epsilon}, "q0")
	p.SetAccepting("q0")

	result := p.Simulate([]string{"push", "pop", "skip"})
	require.True(t, result.OK)
	require.Len(t, result.Steps, 3)
	assert.Equal(t, OpPush, result.Steps[0].Op)
	assert.Equal(t, OpPop, result.Steps[1].Op)
	assert.Equal(t, OpNoOp, result.Steps[2].Op)
}
