/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT loader and exporter for Sentra PDAs. Edge labels use
the "<input>, <pop> -> <push-or-ε>" layout. A labeled __start edge creates a
synthetic __start state whose bootstrap transition can seed the stack, for
example by pushing a bottom-of-stack marker.
*/

package pda

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// parseEdgeLabel splits "<input>, <pop> -> <push-or-ε>" into its parts. A
// label without the comma/arrow layout is treated as a bare input symbol with
// ε pop and no push.
func parseEdgeLabel(label string) Transition {
	t := Transition{InputSymbol: Epsilon, PopSymbol: Epsilon}
	comma := strings.Index(label, ",")
	arrow := strings.Index(label, "->")
	if comma < 0 || arrow < 0 {
		t.InputSymbol = strings.TrimSpace(label)
		return t
	}
	t.InputSymbol = strings.TrimSpace(label[:comma])
	t.PopSymbol = strings.TrimSpace(label[comma+1 : arrow])
	push := strings.TrimSpace(label[arrow+2:])
	if push != Epsilon {
		t.PushSymbols = strings.Fields(push)
	}
	return t
}

// edgeLabel renders a transition back into the DOT label layout.
func edgeLabel(t Transition) string {
	push := Epsilon
	if len(t.PushSymbols) > 0 {
		push = strings.Join(t.PushSymbols, " ")
	}
	return fmt.Sprintf("%s, %s -> %s", t.InputSymbol, t.PopSymbol, push)
}

// LoadDOTFile loads a PDA from a DOT file.
func LoadDOTFile(path string) (*PDA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOT file: %w", err)
	}
	defer f.Close()
	return LoadDOT(f)
}

// LoadDOT parses PDA DOT content. Node lines marked doublecircle become
// accepting states and labeled edges become transitions in file order. An
// unlabeled __start edge only fixes the start state; a labeled one creates
// the __start state itself with the label as its bootstrap transition.
func LoadDOT(r io.Reader) (*PDA, error) {
	out := New()
	var startNodeName string
	bootstrapped := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "__start ->"):
			rest := strings.TrimSpace(line[len("__start ->"):])
			bracket := strings.Index(rest, "[")
			target := rest
			if bracket >= 0 {
				target = rest[:bracket]
			}
			target = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(target), ";"))
			startNodeName = target

			labelPos := strings.Index(rest, `label="`)
			if bracket >= 0 && labelPos >= 0 {
				labelRest := rest[labelPos+len(`label="`):]
				if end := strings.Index(labelRest, `"`); end >= 0 {
					out.SetStart("__start")
					out.AddTransition("__start", parseEdgeLabel(labelRest[:end]), target)
					bootstrapped = true
				}
			}

		case strings.Contains(line, "->"):
			if strings.HasPrefix(line, "__start") {
				continue
			}
			arrow := strings.Index(line, "->")
			bracket := strings.Index(line, "[")
			labelPos := strings.Index(line, `label="`)
			if bracket < 0 || labelPos < 0 {
				continue
			}
			src := strings.TrimSpace(line[:arrow])
			tgt := strings.TrimSpace(line[arrow+2 : bracket])
			labelRest := line[labelPos+len(`label="`):]
			end := strings.Index(labelRest, `"`)
			if end < 0 {
				continue
			}
			out.AddTransition(src, parseEdgeLabel(labelRest[:end]), tgt)

		case strings.Contains(line, "[") && strings.Contains(line, "label="):
			if strings.HasPrefix(line, "__start") || strings.HasPrefix(line, "node [") {
				continue
			}
			id := strings.TrimSpace(line[:strings.Index(line, "[")])
			if strings.Contains(line, "doublecircle") {
				out.SetAccepting(id)
			} else {
				out.GetOrAddState(id)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read DOT: %w", err)
	}

	if startNodeName != "" && !bootstrapped {
		if _, ok := out.StateIndex(startNodeName); ok {
			out.SetStart(startNodeName)
		}
	}

	return out, nil
}

// ToDOT renders the PDA in Graphviz DOT format using the same edge label
// layout the loader understands.
func (p *PDA) ToDOT() string {
	var out strings.Builder
	out.WriteString("digraph PDA {\n")
	if len(p.states) == 0 {
		out.WriteString("}\n")
		return out.String()
	}
	out.WriteString("  rankdir=LR;\n")
	out.WriteString("  node [shape=circle];\n")
	out.WriteString("  __start [shape=point];\n")
	out.WriteString(fmt.Sprintf("  __start -> %s;\n", p.states[p.start].Name))

	for i := range p.states {
		state := &p.states[i]
		out.WriteString(fmt.Sprintf("  %s [label=\"%s\"", state.Name, state.Name))
		if state.Accepting {
			out.WriteString(", shape=doublecircle")
		}
		out.WriteString("];\n")
	}

	for i := range p.states {
		for _, trans := range p.states[i].Transitions {
			out.WriteString(fmt.Sprintf("  %s -> %s [label=\"%s\"];\n",
				p.states[i].Name, p.states[trans.NextState].Name, edgeLabel(trans)))
		}
	}

	out.WriteString("}\n")
	return out.String()
}
