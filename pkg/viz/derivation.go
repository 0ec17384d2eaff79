/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: derivation.go
Description: Leftmost derivation reconstruction for the Sentra visualization
front-end. Loads the exported grammar into raw production lists and replays a
symbol sequence as a sequence of sentential forms, preferring terminating
productions on the last input symbol so regular-grammar runs end cleanly.
*/

package viz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// terminalLabelRe matches terminal helper nonterminals: T followed by digits.
var terminalLabelRe = regexp.MustCompile(`^T[0-9]+$`)

// Grammar holds the raw productions of an exported CNF grammar: terminal
// helpers resolved to their terminal, and per-nonterminal alternative lists
// in file order.
type Grammar struct {
	Terminals   map[string]string
	Productions map[string][][]string
}

// LoadGrammarFile loads a grammar file for derivation replay.
func LoadGrammarFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grammar file: %w", err)
	}
	defer f.Close()
	return LoadGrammar(f)
}

// LoadGrammar parses grammar text into raw production lists. Header lines
// without an arrow, blanks and comments are skipped.
func LoadGrammar(r io.Reader) (*Grammar, error) {
	g := &Grammar{
		Terminals:   make(map[string]string),
		Productions: make(map[string][][]string),
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
			continue
		}
		lhs := strings.TrimSpace(line[:arrow])
		rhs := strings.TrimSpace(line[arrow+2:])

		if terminalLabelRe.MatchString(lhs) {
			g.Terminals[lhs] = rhs
			continue
		}
		for _, alternative := range strings.Split(rhs, "|") {
			tokens := strings.Fields(strings.TrimSpace(alternative))
			g.Productions[lhs] = append(g.Productions[lhs], tokens)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grammar: %w", err)
	}
	return g, nil
}

type derivationCandidate struct {
	production []string
	nextNT     string
}

// matches reports whether a production's first token produces the symbol,
// either directly or through a terminal helper.
func (g *Grammar) matches(first, symbol string) bool {
	if terminal, ok := g.Terminals[first]; ok && strings.HasPrefix(first, "T") {
		return terminal == symbol
	}
	return first == symbol
}

// nextNonterminal returns the production token that is itself a nonterminal
// with productions, empty when the production terminates the derivation.
func (g *Grammar) nextNonterminal(production []string) string {
	next := ""
	for _, token := range production {
		if _, ok := g.Productions[token]; ok {
			next = token
		}
	}
	return next
}

// expand renders a production with terminal helpers resolved when resolve is
// set, prefixed by the already-derived terminals.
func (g *Grammar) expand(prefix string, production []string, resolve bool) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, token := range production {
		if i > 0 {
			b.WriteByte(' ')
		}
		if resolve {
			if terminal, ok := g.Terminals[token]; ok && strings.HasPrefix(token, "T") {
				b.WriteString(terminal)
				continue
			}
		}
		b.WriteString(token)
	}
	return b.String()
}

// Derive replays the symbol sequence as a leftmost derivation from S. Each
// consumed symbol contributes the sentential form with the helper visible and
// then with the helper resolved. On the last symbol a terminating production
// is preferred; mid-sequence a continuing one is. The derivation stops at the
// first symbol no production covers.
func (g *Grammar) Derive(sequence []string) []string {
	derivation := []string{"S"}
	prefix := ""
	currentNT := "S"

	for seqIdx, symbol := range sequence {
		productions, ok := g.Productions[currentNT]
		if !ok {
			break
		}
		isLast := seqIdx == len(sequence)-1

		var candidates []derivationCandidate
		for _, production := range productions {
			if len(production) == 0 || !g.matches(production[0], symbol) {
				continue
			}
			candidates = append(candidates, derivationCandidate{production, g.nextNonterminal(production)})
		}
		if len(candidates) == 0 {
			break
		}

		selected := candidates[0]
		for _, candidate := range candidates {
			if isLast == (candidate.nextNT == "") {
				selected = candidate
				break
			}
		}

		if strings.HasPrefix(selected.production[0], "T") {
			derivation = append(derivation, g.expand(prefix, selected.production, false))
		}
		resolved := g.expand(prefix, selected.production, true)
		if derivation[len(derivation)-1] != resolved {
			derivation = append(derivation, resolved)
		}

		prefix += symbol + " "
		currentNT = selected.nextNT
		if currentNT == "" && !isLast {
			break
		}
	}

	return derivation
}
