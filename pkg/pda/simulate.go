/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: simulate.go
Description: Non-deterministic PDA simulation for the Sentra automata engine.
Breadth-first search over (control state, input position, stack)
configurations with a hard step budget so pathological ε-cycles terminate.
When no accepting run exists the trace of the configuration that consumed
the most input is returned as a debugging aid.
*/

package pda

// DefaultStepBudget bounds the number of configurations dequeued during one
// simulation. ε-cycles can otherwise grow the frontier without consuming
// input.
const DefaultStepBudget = 50000

// TraceResult is the outcome of a simulation: whether an accepting run was
// found and either that run's trace or the best-progress trace.
type TraceResult struct {
	OK    bool   `json:"ok"`
	Steps []Step `json:"steps"`
}

type configuration struct {
	stateIdx int
	inputIdx int
	stack    []string
	trace    []Step
}

// Simulate runs the PDA on the input with the default step budget.
func (p *PDA) Simulate(input []string) TraceResult {
	return p.SimulateBudget(input, DefaultStepBudget)
}

// SimulateBudget runs a breadth-first search over PDA configurations.
// Acceptance requires the full input consumed in an accepting control state;
// the stack contents do not matter. Transitions are explored in declaration
// order so the returned trace is deterministic.
func (p *PDA) SimulateBudget(input []string, stepBudget int) TraceResult {
	if len(p.states) == 0 {
		return TraceResult{}
	}

	queue := []configuration{{stateIdx: p.start}}

	steps := 0
	bestConsumed := 0
	var bestTrace []Step

	for len(queue) > 0 {
		if steps++; steps > stepBudget {
			break
		}

		current := queue[0]
		queue = queue[1:]

		if current.inputIdx > bestConsumed {
			bestConsumed = current.inputIdx
			bestTrace = current.trace
		}

		if current.inputIdx == len(input) && p.states[current.stateIdx].Accepting {
			return TraceResult{OK: true, Steps: current.trace}
		}

		state := &p.states[current.stateIdx]
		for _, trans := range state.Transitions {
			consumes := false
			switch {
			case trans.InputSymbol == Epsilon:
			case current.inputIdx < len(input) && trans.InputSymbol == input[current.inputIdx]:
				consumes = true
			default:
				continue
			}

			if trans.PopSymbol != Epsilon {
				if len(current.stack) == 0 || current.stack[len(current.stack)-1] != trans.PopSymbol {
					continue
				}
			}

			next := configuration{stateIdx: trans.NextState, inputIdx: current.inputIdx}
			if consumes {
				next.inputIdx++
			}

			stack := make([]string, len(current.stack), len(current.stack)+len(trans.PushSymbols))
			copy(stack, current.stack)
			if trans.PopSymbol != Epsilon {
				stack = stack[:len(stack)-1]
			}
			// Pushed in reverse so the first listed symbol becomes the top.
			for i := len(trans.PushSymbols) - 1; i >= 0; i-- {
				stack = append(stack, trans.PushSymbols[i])
			}
			next.stack = stack

			step := Step{
				CurrentState: state.Name,
				NextState:    p.states[trans.NextState].Name,
				Symbol:       Epsilon,
				StackAfter:   stack,
			}
			if consumes {
				step.Symbol = input[current.inputIdx]
			}
			switch {
			case len(trans.PushSymbols) > 0:
				step.Op = OpPush
			case trans.PopSymbol != Epsilon:
				step.Op = OpPop
			default:
				step.Op = OpNoOp
			}

			next.trace = make([]Step, len(current.trace), len(current.trace)+1)
			copy(next.trace, current.trace)
			next.trace = append(next.trace, step)

			queue = append(queue, next)
		}
	}

	return TraceResult{OK: false, Steps: bestTrace}
}
