/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inspect.go
Description: Inspect command implementation for the Sentra automata engine.
Serves the visualization front-end: graph extraction from DOT exports,
derivation and DFA walk replay over a symbol sequence, and full PDA
simulation traces. All output is JSON on stdout.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/sentra-automata/pkg/grammar"
	"github.com/kleascm/sentra-automata/pkg/pda"
	"github.com/kleascm/sentra-automata/pkg/viz"
)

// derivationOutput is the JSON shape of derivation mode.
type derivationOutput struct {
	Steps []string `json:"steps"`
}

// pdaOutput is the JSON shape of pda mode.
type pdaOutput struct {
	OK    bool       `json:"ok"`
	Steps []pda.Step `json:"steps"`
}

// RunInspect executes one inspection mode and prints JSON
func RunInspect(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	mode := viper.GetString("inspect.mode")
	input := viper.GetString("inspect.input")

	switch mode {
	case "graph":
		graph, err := viz.LoadGraphFile(viper.GetString("inspect.dot"))
		if err != nil {
			return err
		}
		return printJSON(graph)

	case "derivation":
		g, err := viz.LoadGrammarFile(viper.GetString("inspect.grammar"))
		if err != nil {
			return err
		}
		return printJSON(derivationOutput{Steps: g.Derive(splitSymbols(input, ","))})

	case "dfa":
		gdfa, err := grammar.LoadDOTDFAFile(viper.GetString("inspect.dot"))
		if err != nil {
			return err
		}
		walk, err := viz.Walk(gdfa, viper.GetString("inspect.state"), splitSymbols(input, ","))
		if err != nil {
			return err
		}
		return printJSON(walk)

	case "pda":
		machine, err := pda.LoadDOTFile(viper.GetString("inspect.dot"))
		if err != nil {
			return err
		}
		result := machine.SimulateBudget(splitSymbols(input, " "), viper.GetInt("inspect.budget"))
		steps := result.Steps
		if steps == nil {
			steps = []pda.Step{}
		}
		return printJSON(pdaOutput{OK: result.OK, Steps: steps})

	default:
		return fmt.Errorf("unknown inspect mode: %s", mode)
	}
}

// printJSON writes a value as JSON to stdout.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	return encoder.Encode(v)
}
