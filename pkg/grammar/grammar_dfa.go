/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar_dfa.go
Description: Transition table reconstructed from a CNF grammar file for the
Sentra automata engine. States carry human-readable nonterminal names and a
synthetic Accept state stands in for unit terminal productions. Classification
returns a structured rejection reason for the simulator's reporting layer.
*/

package grammar

import (
	"fmt"
)

// AcceptState is the name of the synthetic accepting state created during
// grammar loading. Unit terminal productions (A -> a) cannot be expressed in
// a state table without a dedicated target, so every such production becomes
// a transition into this state.
const AcceptState = "Accept"

// GrammarDFA is a name-indexed deterministic transition table rebuilt from a
// CNF grammar. It is operationally equivalent to a DFA for classification
// and immutable once loaded.
type GrammarDFA struct {
	names       []string
	index       map[string]int
	transitions []map[string]int
	accepting   []bool
	start       int
}

// NewGrammarDFA creates an empty grammar-backed transition table.
func NewGrammarDFA() *GrammarDFA {
	return &GrammarDFA{index: make(map[string]int)}
}

// AddStateIfMissing registers a state under the given name if it does not
// exist yet and returns its index.
func (g *GrammarDFA) AddStateIfMissing(name string) int {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = id
	g.transitions = append(g.transitions, make(map[string]int))
	g.accepting = append(g.accepting, false)
	return id
}

// SetStart marks the named state as the start state, creating it if needed.
func (g *GrammarDFA) SetStart(name string) {
	g.start = g.AddStateIfMissing(name)
}

// SetAccepting marks the named state accepting, creating it if needed.
func (g *GrammarDFA) SetAccepting(name string) {
	g.accepting[g.AddStateIfMissing(name)] = true
}

// AddTransition records from --on--> to, creating both states if needed.
func (g *GrammarDFA) AddTransition(from, on, to string) {
	fromIdx := g.AddStateIfMissing(from)
	toIdx := g.AddStateIfMissing(to)
	g.transitions[fromIdx][on] = toIdx
}

// Names returns the state names in index order.
func (g *GrammarDFA) Names() []string { return g.names }

// StartState returns the index of the start state.
func (g *GrammarDFA) StartState() int { return g.start }

// StateIndex returns the index of a named state.
func (g *GrammarDFA) StateIndex(name string) (int, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Accepting reports whether the state at the given index accepts.
func (g *GrammarDFA) Accepting(index int) bool {
	return index >= 0 && index < len(g.accepting) && g.accepting[index]
}

// Transitions returns the transition map of the state at the given index.
func (g *GrammarDFA) Transitions(index int) map[string]int {
	if index < 0 || index >= len(g.transitions) {
		return nil
	}
	return g.transitions[index]
}

// Classify reports whether the table accepts the sequence.
func (g *GrammarDFA) Classify(sequence []string) bool {
	accepted, _ := g.ClassifyWithReason(sequence)
	return accepted
}

// ClassifyWithReason walks the sequence and reports acceptance together with
// a structured reason: a missing transition names the symbol, state and
// position; completion in a non-accepting state names that state.
func (g *GrammarDFA) ClassifyWithReason(sequence []string) (bool, string) {
	if len(g.names) == 0 {
		return false, "empty grammar"
	}
	current := g.start
	for i, symbol := range sequence {
		target, ok := g.transitions[current][symbol]
		if !ok {
			return false, fmt.Sprintf("no transition on '%s' from state '%s' at position %d", symbol, g.names[current], i)
		}
		current = target
	}
	if g.accepting[current] {
		return true, "accepted"
	}
	return false, fmt.Sprintf("ended in non-accepting state '%s'", g.names[current])
}
