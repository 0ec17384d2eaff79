/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: minimize.go
Description: Hopcroft-style DFA minimization for the Sentra automata engine.
Partition refinement over index arrays with an explicit work queue. Blocks
are kept in creation order and the representative of a block is its first
member, which fixes the output state numbering and keeps the CNF exporter
deterministic across runs.
*/

package automata

// refinementTask is one pending (partition, symbol) split check.
type refinementTask struct {
	partition int
	symbol    string
}

// Minimize returns an equivalent DFA with a minimum number of states. The
// initial partition separates accepting from non-accepting states; the queue
// is seeded with every (partition, symbol) pair and each pop splits every
// block against the preimage of the popped partition under the popped
// symbol. Counts are summed per block and accepting flags re-derived from
// the summed counts, so the majority-vote invariant survives minimization.
func (d *DFA) Minimize() *DFA {
	if len(d.states) == 0 {
		return d.clone()
	}

	n := len(d.states)
	var partitions [][]int
	statePartition := make([]int, n)
	for i := range statePartition {
		statePartition[i] = -1
	}

	var accepting, rejecting []int
	for i := 0; i < n; i++ {
		if d.states[i].Accepting {
			accepting = append(accepting, i)
		} else {
			rejecting = append(rejecting, i)
		}
	}

	assign := func(block []int) {
		partitions = append(partitions, block)
		for _, state := range block {
			statePartition[state] = len(partitions) - 1
		}
	}
	if len(accepting) > 0 {
		assign(accepting)
	}
	if len(rejecting) > 0 {
		assign(rejecting)
	}
	if len(partitions) == 0 {
		assign([]int{0})
	}

	var work []refinementTask
	for idx := range partitions {
		for _, symbol := range d.alphabet {
			work = append(work, refinementTask{idx, symbol})
		}
	}

	involved := make([]bool, n)
	touched := make([]int, 0, n)

	for len(work) > 0 {
		task := work[0]
		work = work[1:]

		// Mark states whose transition on the symbol leads into the popped
		// partition.
		for s := 0; s < n; s++ {
			target, ok := d.states[s].Transitions[task.symbol]
			if ok && statePartition[target] == task.partition {
				if !involved[s] {
					involved[s] = true
					touched = append(touched, s)
				}
			}
		}

		for idx := 0; idx < len(partitions); idx++ {
			block := partitions[idx]
			subset := make([]int, 0, len(block))
			remainder := make([]int, 0, len(block))
			for _, state := range block {
				if involved[state] {
					subset = append(subset, state)
				} else {
					remainder = append(remainder, state)
				}
			}

			if len(subset) == 0 || len(remainder) == 0 {
				continue
			}

			partitions[idx] = subset
			newIndex := len(partitions)
			partitions = append(partitions, remainder)

			for _, state := range subset {
				statePartition[state] = idx
			}
			for _, state := range remainder {
				statePartition[state] = newIndex
			}

			for _, symbol := range d.alphabet {
				work = append(work, refinementTask{idx, symbol})
				work = append(work, refinementTask{newIndex, symbol})
			}
		}

		for _, state := range touched {
			involved[state] = false
		}
		touched = touched[:0]
	}

	minimized := &DFA{
		states:   make([]State, len(partitions)),
		start:    statePartition[d.start],
		alphabet: append([]string(nil), d.alphabet...),
		sink:     noSink,
	}

	for idx, block := range partitions {
		newState := &minimized.states[idx]
		for _, state := range block {
			newState.PositiveCount += d.states[state].PositiveCount
			newState.NegativeCount += d.states[state].NegativeCount
		}
		newState.Accepting = newState.PositiveCount > newState.NegativeCount

		representative := block[0]
		newState.Transitions = make(map[string]int, len(d.states[representative].Transitions))
		for symbol, target := range d.states[representative].Transitions {
			newState.Transitions[symbol] = statePartition[target]
		}
	}

	if d.sink >= 0 && d.sink < len(d.states) {
		minimized.sink = statePartition[d.sink]
	}

	return minimized
}

// clone makes a deep copy of the DFA.
func (d *DFA) clone() *DFA {
	out := &DFA{
		states:   make([]State, len(d.states)),
		start:    d.start,
		alphabet: append([]string(nil), d.alphabet...),
		sink:     d.sink,
	}
	for i, state := range d.states {
		copied := state
		copied.Transitions = make(map[string]int, len(state.Transitions))
		for symbol, target := range state.Transitions {
			copied.Transitions[symbol] = target
		}
		out.states[i] = copied
	}
	return out
}
