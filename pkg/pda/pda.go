/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pda.go
Description: Pushdown automaton model for the Sentra automata engine. States
carry an ordered transition list so simulation explores moves in declaration
order, which keeps traces deterministic across runs. The literal "ε" stands
for the empty symbol in input and pop positions and for an empty push list.
*/

package pda

// Epsilon is the reserved literal for the empty symbol.
const Epsilon = "ε"

// Step operation kinds recorded in a simulation trace.
const (
	OpPush     = "PUSH"
	OpPop      = "POP"
	OpNoOp     = "NO_OP"
	OpPopError = "POP_ERROR"
)

// Transition is one move of a PDA state: consume InputSymbol (or ε), pop
// PopSymbol (or ε), push PushSymbols with the first listed symbol ending up
// on top, and move to the state at index NextState.
type Transition struct {
	InputSymbol string   `json:"input_symbol"`
	PopSymbol   string   `json:"pop_symbol"`
	PushSymbols []string `json:"push_symbols"`
	NextState   int      `json:"next_state"`
}

// State is a named PDA control state with an ordered transition list.
type State struct {
	Name        string       `json:"name"`
	Accepting   bool         `json:"accepting"`
	Transitions []Transition `json:"transitions"`
}

// Step records one transition taken during simulation: the operation kind,
// the consumed input symbol (or ε), the stack snapshot after the move, and
// the source and destination control-state names.
type Step struct {
	Op           string   `json:"op"`
	Symbol       string   `json:"symbol"`
	StackAfter   []string `json:"stack_after"`
	CurrentState string   `json:"current_state"`
	NextState    string   `json:"next_state"`
}

// PDA is an immutable-after-load pushdown automaton.
type PDA struct {
	states   []State
	start    int
	stateMap map[string]int
}

// New creates an empty PDA.
func New() *PDA {
	return &PDA{stateMap: make(map[string]int)}
}

// GetOrAddState returns the index of the named state, creating it if needed.
func (p *PDA) GetOrAddState(name string) int {
	if idx, ok := p.stateMap[name]; ok {
		return idx
	}
	idx := len(p.states)
	p.states = append(p.states, State{Name: name})
	p.stateMap[name] = idx
	return idx
}

// SetStart marks the named state as the start state, creating it if needed.
func (p *PDA) SetStart(name string) {
	p.start = p.GetOrAddState(name)
}

// SetAccepting marks the named state accepting, creating it if needed.
func (p *PDA) SetAccepting(name string) {
	p.states[p.GetOrAddState(name)].Accepting = true
}

// AddTransition appends a transition to the named source state in declaration
// order, creating both endpoint states if needed.
func (p *PDA) AddTransition(from string, t Transition, to string) {
	fromIdx := p.GetOrAddState(from)
	t.NextState = p.GetOrAddState(to)
	p.states[fromIdx].Transitions = append(p.states[fromIdx].Transitions, t)
}

// States returns the state slice in index order.
func (p *PDA) States() []State { return p.states }

// StartState returns the index of the start state.
func (p *PDA) StartState() int { return p.start }

// StateIndex returns the index of a named state.
func (p *PDA) StateIndex(name string) (int, bool) {
	idx, ok := p.stateMap[name]
	return idx, ok
}
