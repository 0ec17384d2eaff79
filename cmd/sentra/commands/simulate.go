/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: simulate.go
Description: Simulate command implementation for the Sentra automata engine.
Replays a traffic dataset against a trained grammar, aggregates verdicts per
host, validates connection-state balance, and reports block decisions.
*/

package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/sentra-automata/pkg/analysis"
	"github.com/kleascm/sentra-automata/pkg/dataset"
	"github.com/kleascm/sentra-automata/pkg/grammar"
)

// detailLimit caps per-sample detail lines printed per host.
const detailLimit = 10

// RunSimulate executes the traffic simulation
func RunSimulate(cmd *cobra.Command, args []string) error {
	fmt.Println("🛰️  Sentra - Traffic Simulation")
	fmt.Println("==============================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupEngineLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	gdfa, err := grammar.LoadCNFFile(viper.GetString("simulate.grammar"))
	if err != nil {
		return fmt.Errorf("failed to load grammar: %w", err)
	}

	inputPath := viper.GetString("simulate.input")
	samples, err := dataset.LoadIoTCSV(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples loaded from %s", inputPath)
	}

	aggregator := analysis.NewAggregator(gdfa, viper.GetString("simulate.aggregate"), viper.GetInt("simulate.threshold"))
	if thresholdFile := viper.GetString("simulate.threshold_file"); thresholdFile != "" {
		if err := aggregator.LoadThresholdFile(thresholdFile); err != nil {
			logrus.WithError(err).Warn("Failed to load threshold file")
		}
	}

	report := aggregator.Run(samples)
	printDetails := viper.GetBool("simulate.details")

	for _, hr := range report.Hosts {
		if engineLogger != nil {
			engineLogger.LogBlockDecision(hr.Host, hr.Status, hr.MaliciousCount, hr.Threshold, nil)
		}
		switch hr.Status {
		case analysis.StatusBlocked:
			fmt.Printf("%s: BLOCKED (%d malicious sequences)\n", hr.Host, hr.MaliciousCount)
			if printDetails {
				printAcceptedSamples(hr)
			}
		case analysis.StatusPDARejected:
			fmt.Printf("%s: PDA_REJECTED (%s)\n", hr.Host, hr.PDAResult.Reason)
			if printDetails {
				fmt.Printf("    malicious_count=%d\n", hr.MaliciousCount)
				for i, sr := range hr.SampleReasons {
					if i >= detailLimit {
						break
					}
					fmt.Printf("    sample %s: %s\n", sr.SampleID, sr.Reason)
				}
			}
		default:
			fmt.Printf("%s: OK", hr.Host)
			if hr.MaliciousCount > 0 {
				fmt.Printf(" (%d suspicious sequences)", hr.MaliciousCount)
			}
			fmt.Println()
			if printDetails && hr.MaliciousCount > 0 {
				printAcceptedSamples(hr)
			}
		}
	}

	if outputPath := viper.GetString("simulate.output"); outputPath != "" {
		if err := report.WriteCSV(outputPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("\n📄 Report %s written to %s\n", report.ID, outputPath)
	}

	return nil
}

// printAcceptedSamples prints the first few grammar-accepted samples of a host.
func printAcceptedSamples(hr analysis.HostReport) {
	shown := 0
	for _, sr := range hr.SampleReasons {
		if sr.Reason != "accepted" {
			continue
		}
		fmt.Printf("    sample %s: accepted by DFA\n", sr.SampleID)
		if shown++; shown >= detailLimit {
			break
		}
	}
}
