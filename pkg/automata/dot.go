/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT and formal-definition exports for the Sentra DFA.
Used by the visualization front-end and by the simulator's DOT reloading
path, so node naming, label layout and edge ordering are kept stable.
*/

package automata

import (
	"fmt"
	"sort"
	"strings"
)

// sortedSymbols returns the transition symbols of a state in lexicographic
// order so export output is deterministic.
func sortedSymbols(transitions map[string]int) []string {
	symbols := make([]string, 0, len(transitions))
	for symbol := range transitions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// ToDOT renders the DFA in Graphviz DOT format. Accepting states are drawn
// as double circles, the sink state dashed, and a synthetic __start point
// marks the start state.
func (d *DFA) ToDOT() string {
	var out strings.Builder
	out.WriteString("digraph DFA {\n")
	out.WriteString("  rankdir=LR;\n")
	out.WriteString("  node [shape=circle];\n")
	out.WriteString("  __start [shape=point];\n")
	out.WriteString(fmt.Sprintf("  __start -> s%d;\n", d.start))

	for i := range d.states {
		state := &d.states[i]
		out.WriteString(fmt.Sprintf("  s%d [label=\"s%d\\n+%d -%d\"", i, i, state.PositiveCount, state.NegativeCount))
		if state.Accepting {
			out.WriteString(", shape=doublecircle")
		}
		if d.sink == i {
			out.WriteString(", style=dashed")
		}
		out.WriteString("];\n")
	}

	for i := range d.states {
		for _, symbol := range sortedSymbols(d.states[i].Transitions) {
			out.WriteString(fmt.Sprintf("  s%d -> s%d [label=\"%s\"];\n", i, d.states[i].Transitions[symbol], symbol))
		}
	}

	out.WriteString("}\n")
	return out.String()
}

// ToDefinition renders the classic five-tuple definition of the DFA as
// human-readable text.
func (d *DFA) ToDefinition() string {
	var out strings.Builder
	out.WriteString("DFA Definition\n")
	out.WriteString("==============\n")

	out.WriteString("States (Q): {")
	for i := range d.states {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(fmt.Sprintf("s%d", i))
	}
	out.WriteString("}\n")

	out.WriteString("Alphabet (Σ): {")
	for i, symbol := range d.alphabet {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(symbol)
	}
	out.WriteString("}\n")

	out.WriteString(fmt.Sprintf("Start state (q0): s%d\n", d.start))

	out.WriteString("Accepting states (F): {")
	first := true
	for i := range d.states {
		if !d.states[i].Accepting {
			continue
		}
		if !first {
			out.WriteString(", ")
		}
		out.WriteString(fmt.Sprintf("s%d", i))
		first = false
	}
	if first {
		out.WriteString("∅")
	}
	out.WriteString("}\n")

	if sink, ok := d.SinkState(); ok {
		out.WriteString(fmt.Sprintf("Sink state: s%d\n", sink))
	}

	out.WriteString("Transitions (δ):\n")
	for i := range d.states {
		for _, symbol := range sortedSymbols(d.states[i].Transitions) {
			out.WriteString(fmt.Sprintf("  δ(s%d, %s) = s%d\n", i, symbol, d.states[i].Transitions[symbol]))
		}
	}

	return out.String()
}
