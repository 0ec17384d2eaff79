/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: chomsky.go
Description: Chomsky Normal Form export for the Sentra automata engine. Encodes
a minimized DFA as a CNF grammar: terminal helper nonterminals Tn -> a for
every alphabet symbol, binary productions X -> Tn Y for every transition, a
unit terminal alternative when the target state accepts, and S -> ε when the
start state itself accepts. Output naming is stable across runs.
*/

package automata

import (
	"fmt"
	"strings"
	"unicode"
)

// needsQuoting reports whether a terminal must be quoted in grammar output.
// The bare literal "ε" is reserved for the empty production, so a genuine
// training symbol with that spelling is always quoted.
func needsQuoting(terminal string) bool {
	if terminal == "ε" {
		return true
	}
	if strings.ContainsAny(terminal, "\"\\") {
		return true
	}
	return strings.IndexFunc(terminal, unicode.IsSpace) >= 0
}

// escapeTerminal renders a terminal atom for grammar output. Terminals
// containing whitespace, quotes or backslashes are double-quoted with
// backslash escapes; everything else is emitted verbatim.
func escapeTerminal(terminal string) string {
	if !needsQuoting(terminal) {
		return terminal
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range terminal {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// stateNames assigns grammar nonterminal names: the start state becomes S,
// the remaining states become A0, A1, ... in ascending state id order.
func (d *DFA) stateNames() []string {
	names := make([]string, len(d.states))
	next := 0
	for i := range d.states {
		if i == d.start {
			names[i] = "S"
			continue
		}
		names[i] = fmt.Sprintf("A%d", next)
		next++
	}
	return names
}

// ToChomsky renders the DFA as a textual CNF grammar. Informational
// Terminals/Nonterminals/Start headers precede the rules; rule alternatives
// for one left-hand side are deduplicated and joined with " | " in stable
// order. The S -> ε production is emitted on its own line when the start
// state accepts.
func (d *DFA) ToChomsky() string {
	names := d.stateNames()

	terminalIndex := make(map[string]int, len(d.alphabet))
	for i, symbol := range d.alphabet {
		terminalIndex[symbol] = i
	}

	var out strings.Builder
	out.WriteString("# Chomsky Normal Form grammar generated from minimized DFA\n")

	out.WriteString("Terminals: { ")
	for i, symbol := range d.alphabet {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(escapeTerminal(symbol))
	}
	out.WriteString(" }\n")

	out.WriteString("Nonterminals: { ")
	for i := range d.states {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(names[i])
	}
	for i := range d.alphabet {
		out.WriteString(fmt.Sprintf(", T%d", i))
	}
	out.WriteString(" }\n")

	out.WriteString("Start: S\n\n")

	for i, symbol := range d.alphabet {
		out.WriteString(fmt.Sprintf("T%d -> %s\n", i, escapeTerminal(symbol)))
	}

	for i := range d.states {
		state := &d.states[i]

		if i == d.start && state.Accepting {
			out.WriteString(fmt.Sprintf("%s -> ε\n", names[i]))
		}

		var alternatives []string
		seen := make(map[string]struct{})
		add := func(alt string) {
			if _, ok := seen[alt]; ok {
				return
			}
			seen[alt] = struct{}{}
			alternatives = append(alternatives, alt)
		}

		for _, symbol := range d.alphabet {
			target, ok := state.Transitions[symbol]
			if !ok {
				continue
			}
			add(fmt.Sprintf("T%d %s", terminalIndex[symbol], names[target]))
			if d.states[target].Accepting {
				add(escapeTerminal(symbol))
			}
		}

		if len(alternatives) > 0 {
			out.WriteString(fmt.Sprintf("%s -> %s\n", names[i], strings.Join(alternatives, " | ")))
		}
	}

	return out.String()
}
