/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: walk.go
Description: Step-by-step DFA walk for the Sentra visualization front-end.
Replays a symbol sequence over a reloaded automaton one transition at a time
so the UI can animate the run and show the final verdict.
*/

package viz

import (
	"fmt"

	"github.com/kleascm/sentra-automata/pkg/grammar"
)

// WalkStep is one animated transition of a DFA walk. A symbol without a
// transition leaves the automaton in place, so NextState repeats
// CurrentState.
type WalkStep struct {
	CurrentState string `json:"current_state"`
	Symbol       string `json:"symbol"`
	NextState    string `json:"next_state"`
}

// WalkResult is the full walk plus the final verdict.
type WalkResult struct {
	Steps      []WalkStep `json:"steps"`
	FinalState string     `json:"final_state"`
	Malicious  bool       `json:"is_malicious"`
	Label      string     `json:"label"`
}

// Walk replays the sequence over the automaton starting at the named state,
// or at the start state when startState is empty.
func Walk(g *grammar.GrammarDFA, startState string, sequence []string) (*WalkResult, error) {
	names := g.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("empty automaton")
	}

	current := g.StartState()
	if startState != "" {
		idx, ok := g.StateIndex(startState)
		if !ok {
			return nil, fmt.Errorf("unknown state: %s", startState)
		}
		current = idx
	}

	result := &WalkResult{Steps: make([]WalkStep, 0, len(sequence))}
	for _, symbol := range sequence {
		step := WalkStep{CurrentState: names[current], Symbol: symbol}
		if target, ok := g.Transitions(current)[symbol]; ok {
			current = target
		}
		step.NextState = names[current]
		result.Steps = append(result.Steps, step)
	}

	result.FinalState = names[current]
	result.Malicious = g.Accepting(current)
	result.Label = "Benign"
	if result.Malicious {
		result.Label = "Malicious"
	}
	return result, nil
}
