/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dfa.go
Description: Deterministic finite automaton for the Sentra automata engine.
Built from a PTA with majority-vote accepting labels, completed with a
non-accepting sink state so the transition function is total over the sorted
training alphabet, and classified against arbitrary symbol sequences.
*/

package automata

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidPTA is returned when a PTA transition target is out of bounds.
var ErrInvalidPTA = errors.New("invalid PTA")

// noSink marks the absence of a sink state.
const noSink = -1

// State is one DFA state: its outgoing transitions keyed by symbol, the
// accumulated training counts and the derived accepting flag.
type State struct {
	Transitions   map[string]int
	PositiveCount int
	NegativeCount int
	Accepting     bool
}

// DFA is a complete deterministic finite automaton over a sorted alphabet.
// Once minimized it is immutable and safe for concurrent readers.
type DFA struct {
	states   []State
	start    int
	alphabet []string
	sink     int
}

// FromPTA copies a PTA into a DFA, preserving node ids, deriving accepting
// flags by strict majority vote (ties reject), collecting the sorted alphabet
// from the observed transition labels and completing the transition function
// with a sink state when any (state, symbol) pair is missing.
func FromPTA(pta *PTA) (*DFA, error) {
	nodes := pta.Nodes()
	dfa := &DFA{
		states: make([]State, len(nodes)),
		start:  pta.StartState(),
		sink:   noSink,
	}

	alphabetSet := make(map[string]struct{})
	for _, node := range nodes {
		if node.ID < 0 || node.ID >= len(dfa.states) {
			return nil, fmt.Errorf("%w: node id %d out of bounds", ErrInvalidPTA, node.ID)
		}
		state := &dfa.states[node.ID]
		state.Transitions = make(map[string]int, len(node.Transitions))
		state.PositiveCount = node.PositiveCount
		state.NegativeCount = node.NegativeCount
		state.Accepting = state.PositiveCount > state.NegativeCount

		for symbol, target := range node.Transitions {
			if target < 0 || target >= len(dfa.states) {
				return nil, fmt.Errorf("%w: transition target %d out of bounds", ErrInvalidPTA, target)
			}
			state.Transitions[symbol] = target
			alphabetSet[symbol] = struct{}{}
		}
	}

	dfa.alphabet = make([]string, 0, len(alphabetSet))
	for symbol := range alphabetSet {
		dfa.alphabet = append(dfa.alphabet, symbol)
	}
	sort.Strings(dfa.alphabet)

	dfa.ensureCompleteTransitions()
	return dfa, nil
}

// ensureCompleteTransitions appends a non-accepting sink state and redirects
// every missing (state, symbol) pair to it. With an empty alphabet there is
// nothing to complete and no sink is created.
func (d *DFA) ensureCompleteTransitions() {
	if len(d.alphabet) == 0 {
		d.sink = noSink
		return
	}

	needsSink := false
	for i := range d.states {
		for _, symbol := range d.alphabet {
			if _, ok := d.states[i].Transitions[symbol]; !ok {
				needsSink = true
				break
			}
		}
		if needsSink {
			break
		}
	}

	if !needsSink {
		d.sink = noSink
		return
	}

	d.sink = len(d.states)
	sink := State{
		Transitions:   make(map[string]int, len(d.alphabet)),
		NegativeCount: 1,
	}
	for _, symbol := range d.alphabet {
		sink.Transitions[symbol] = d.sink
	}
	d.states = append(d.states, sink)

	for i := range d.states {
		for _, symbol := range d.alphabet {
			if _, ok := d.states[i].Transitions[symbol]; !ok {
				d.states[i].Transitions[symbol] = d.sink
			}
		}
	}
}

// Classify walks the sequence from the start state and reports whether the
// final state accepts. A symbol with no outgoing transition falls through to
// the sink when one exists and rejects otherwise. The empty sequence returns
// the accepting flag of the start state.
func (d *DFA) Classify(sequence []string) bool {
	if len(d.states) == 0 {
		return false
	}

	current := d.start
	if current < 0 || current >= len(d.states) {
		return false
	}

	for _, symbol := range sequence {
		target, ok := d.states[current].Transitions[symbol]
		if !ok {
			if d.sink >= 0 && d.sink < len(d.states) {
				current = d.sink
				continue
			}
			return false
		}
		current = target
	}

	return d.states[current].Accepting
}

// States returns the state table in id order.
func (d *DFA) States() []State { return d.states }

// StartState returns the id of the start state.
func (d *DFA) StartState() int { return d.start }

// Alphabet returns the sorted, unique training alphabet.
func (d *DFA) Alphabet() []string { return d.alphabet }

// SinkState returns the sink state id and whether a sink exists.
func (d *DFA) SinkState() (int, bool) {
	if d.sink >= 0 && d.sink < len(d.states) {
		return d.sink, true
	}
	return 0, false
}
