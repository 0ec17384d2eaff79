/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: CNF grammar loader for the Sentra automata engine. Re-parses the
line-oriented grammar format emitted by the DFA exporter into a GrammarDFA
transition table. Terminal helper rules (Tn -> a) become a lookup table,
binary productions become labeled transitions, unit terminal productions
become transitions into the synthetic Accept state, and malformed rule lines
are logged and skipped rather than failing the load.
*/

package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// Epsilon is the reserved literal for the empty production.
const Epsilon = "ε"

// terminalHelperRe matches terminal helper nonterminals: T followed by digits.
var terminalHelperRe = regexp.MustCompile(`^T[0-9]+$`)

// Unquote strips a surrounding pair of double quotes and unescapes \" and \\
// inside them. Unquoted atoms are returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	escaped := false
	for _, r := range inner {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type terminalRule struct {
	lhs  string
	atom string
	// epsilon marks the bare ε alternative. A quoted "ε" atom is a genuine
	// terminal and keeps the flag unset.
	epsilon bool
}

type binaryRule struct {
	lhs    string
	first  string
	second string
}

// LoadCNFFile loads a CNF grammar file into a GrammarDFA.
func LoadCNFFile(path string) (*GrammarDFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grammar file: %w", err)
	}
	defer f.Close()
	return LoadCNF(f)
}

// LoadCNF parses CNF grammar text into a GrammarDFA. Blank lines, comments
// and the informational header lines are ignored. The start state is S when
// present, otherwise the first nonterminal seen.
func LoadCNF(r io.Reader) (*GrammarDFA, error) {
	helperTerminals := make(map[string]string)
	var terminalRules []terminalRule
	var binaryRules []binaryRule
	var nonterminals []string
	seenNonterminal := make(map[string]struct{})

	recordNonterminal := func(name string) {
		if _, ok := seenNonterminal[name]; ok {
			return
		}
		seenNonterminal[name] = struct{}{}
		nonterminals = append(nonterminals, name)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		arrow := strings.Index(line, "->")
		if arrow < 0 {
			continue // Terminals:/Nonterminals:/Start: headers and stray text
		}
		lhs := strings.TrimSpace(line[:arrow])
		rhs := strings.TrimSpace(line[arrow+2:])

		if terminalHelperRe.MatchString(lhs) {
			helperTerminals[lhs] = Unquote(rhs)
			continue
		}

		recordNonterminal(lhs)
		for _, alternative := range strings.Split(rhs, "|") {
			alternative = strings.TrimSpace(alternative)
			if alternative == Epsilon {
				terminalRules = append(terminalRules, terminalRule{lhs: lhs, epsilon: true})
				continue
			}
			tokens := strings.Fields(alternative)
			switch len(tokens) {
			case 1:
				atom := tokens[0]
				if terminalHelperRe.MatchString(atom) {
					terminalRules = append(terminalRules, terminalRule{lhs: lhs, atom: atom})
				} else {
					terminalRules = append(terminalRules, terminalRule{lhs: lhs, atom: Unquote(atom)})
				}
			case 2:
				binaryRules = append(binaryRules, binaryRule{lhs, tokens[0], tokens[1]})
			default:
				logrus.WithFields(logrus.Fields{
					"lhs":         lhs,
					"alternative": alternative,
				}).Warn("Skipping malformed grammar alternative")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grammar: %w", err)
	}

	out := NewGrammarDFA()
	if len(nonterminals) == 0 {
		return out, nil
	}
	for _, nt := range nonterminals {
		out.AddStateIfMissing(nt)
	}
	out.SetAccepting(AcceptState)

	if _, ok := out.StateIndex("S"); ok {
		out.SetStart("S")
	} else if len(out.Names()) > 0 {
		out.start = 0
	}

	for _, rule := range binaryRules {
		term := rule.first
		if terminalHelperRe.MatchString(rule.first) {
			if resolved, ok := helperTerminals[rule.first]; ok {
				term = resolved
			}
		} else {
			term = Unquote(rule.first)
		}
		out.AddTransition(rule.lhs, term, rule.second)
	}

	// Unit terminal alternatives are applied after the binary ones. When a
	// binary alternative already covers the same (state, terminal) pair the
	// unit alternative asserts that its target accepts, so the target state
	// is marked accepting instead of losing the transition to Accept.
	for _, rule := range terminalRules {
		if rule.epsilon {
			out.SetAccepting(rule.lhs)
			continue
		}
		term := rule.atom
		if terminalHelperRe.MatchString(rule.atom) {
			resolved, ok := helperTerminals[rule.atom]
			if !ok {
				logrus.WithField("helper", rule.atom).Warn("Skipping rule with unknown terminal helper")
				continue
			}
			term = resolved
		}
		fromIdx := out.AddStateIfMissing(rule.lhs)
		if target, ok := out.transitions[fromIdx][term]; ok {
			out.accepting[target] = true
			continue
		}
		out.AddTransition(rule.lhs, term, AcceptState)
	}

	return out, nil
}
