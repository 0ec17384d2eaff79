/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: balance.go
Description: Linear stack-balance validator for connection-state sequences.
Pushes on the configured open token and pops on the configured close token;
a pop on an empty stack and unmatched pushes at the end are both rejections.
The traced variant overlays a coarse protocol control state so the simulator
can render the run as a PDA walk.
*/

package pda

import (
	"fmt"
	"strings"
)

// Default open/close tokens for Zeek connection-state sequences. state=S0 is
// a connection attempt, state=SF its normal completion.
const (
	DefaultOpenToken  = "state=S0"
	DefaultCloseToken = "state=SF"
)

// BalanceResult is the outcome of a linear balance check.
type BalanceResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

// ValidateBalance checks that open and close tokens in the sequence are
// balanced: every close token must have a prior unmatched open token and no
// open token may remain unmatched at the end. Other symbols are ignored.
func ValidateBalance(sequence []string, openToken, closeToken string) BalanceResult {
	depth := 0
	for i, symbol := range sequence {
		switch symbol {
		case openToken:
			depth++
		case closeToken:
			if depth == 0 {
				return BalanceResult{OK: false, Reason: fmt.Sprintf("pop without matching push at position %d", i)}
			}
			depth--
		}
	}
	if depth != 0 {
		return BalanceResult{OK: false, Reason: fmt.Sprintf("final stack not empty (%d unmatched pushes)", depth)}
	}
	return BalanceResult{OK: true, Reason: "accepted"}
}

// ValidateConnStates runs the balance check with the default Zeek tokens.
func ValidateConnStates(sequence []string) BalanceResult {
	return ValidateBalance(sequence, DefaultOpenToken, DefaultCloseToken)
}

// controlStateFor maps a symbol to the coarse protocol control state used by
// the trace overlay. Non-protocol symbols keep the current state.
func controlStateFor(symbol, current string) string {
	if !strings.HasPrefix(symbol, "proto=") {
		return current
	}
	switch strings.TrimPrefix(symbol, "proto=") {
	case "tcp":
		return "TCP"
	case "udp":
		return "UDP"
	default:
		return "OTHER"
	}
}

// ValidateConnStatesWithTrace runs the balance check and records one step per
// input symbol. The control state starts at Start and switches to TCP, UDP or
// OTHER on proto= symbols. A pop on an empty stack produces a terminal
// POP_ERROR step.
func ValidateConnStatesWithTrace(sequence []string) TraceResult {
	var stack []string
	result := TraceResult{OK: true}

	controlState := "Start"
	for _, symbol := range sequence {
		step := Step{
			Op:           OpNoOp,
			Symbol:       symbol,
			CurrentState: controlState,
		}
		nextControl := controlStateFor(symbol, controlState)

		switch symbol {
		case DefaultOpenToken:
			stack = append(stack, symbol)
			step.Op = OpPush
		case DefaultCloseToken:
			if len(stack) == 0 {
				step.Op = OpPopError
				step.StackAfter = append([]string(nil), stack...)
				step.NextState = nextControl
				result.Steps = append(result.Steps, step)
				result.OK = false
				return result
			}
			stack = stack[:len(stack)-1]
			step.Op = OpPop
		}

		step.StackAfter = append([]string(nil), stack...)
		step.NextState = nextControl
		controlState = nextControl
		result.Steps = append(result.Steps, step)
	}

	if len(stack) != 0 {
		result.OK = false
	}
	return result
}
