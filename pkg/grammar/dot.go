/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: DOT reloader for the Sentra automata engine. Rebuilds a
GrammarDFA transition table from a DFA DOT export so the visualization
front-end can step through an automaton without access to the original
training run.
*/

package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDOTDFAFile rebuilds a GrammarDFA from an exported DFA DOT file.
func LoadDOTDFAFile(path string) (*GrammarDFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOT file: %w", err)
	}
	defer f.Close()
	return LoadDOTDFA(f)
}

// dotEdge splits `src -> tgt [label="..."];` into its parts. Returns ok=false
// for lines that are not labeled edges.
func dotEdge(line string) (src, tgt, label string, ok bool) {
	arrow := strings.Index(line, "->")
	bracket := strings.Index(line, "[")
	labelPos := strings.Index(line, `label="`)
	if arrow < 0 || bracket < 0 || labelPos < 0 || bracket < arrow {
		return "", "", "", false
	}
	src = strings.TrimSpace(line[:arrow])
	tgt = strings.TrimSpace(line[arrow+2 : bracket])
	rest := line[labelPos+len(`label="`):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return "", "", "", false
	}
	return src, tgt, rest[:end], true
}

// LoadDOTDFA parses DFA DOT content. Node lines marked doublecircle become
// accepting states, labeled edges become transitions, and the __start edge
// fixes the start state.
func LoadDOTDFA(r io.Reader) (*GrammarDFA, error) {
	out := NewGrammarDFA()
	var startName string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "__start ->"):
			target := strings.TrimSuffix(strings.TrimSpace(line[len("__start ->"):]), ";")
			startName = strings.TrimSpace(target)

		case strings.Contains(line, "->"):
			if strings.HasPrefix(line, "__start") {
				continue
			}
			if src, tgt, label, ok := dotEdge(line); ok {
				out.AddTransition(src, label, tgt)
			}

		case strings.Contains(line, "[") && strings.Contains(line, "label="):
			if strings.HasPrefix(line, "__start") || strings.HasPrefix(line, "node [") {
				continue
			}
			id := strings.TrimSpace(line[:strings.Index(line, "[")])
			if strings.Contains(line, "doublecircle") {
				out.SetAccepting(id)
			} else {
				out.AddStateIfMissing(id)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read DOT: %w", err)
	}

	if startName != "" {
		out.SetStart(startName)
	} else if len(out.Names()) > 0 {
		if _, ok := out.StateIndex("S"); ok {
			out.SetStart("S")
		} else {
			out.start = 0
		}
	}

	return out, nil
}
