/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Sentra automata engine.
Provides comprehensive command-line options, configuration management, and
beautiful user interface for grammar training, traffic simulation and
automaton inspection with advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/sentra-automata/cmd/sentra/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Training configuration
	trainInputs     []string
	trainTests      []string
	trainFull       bool
	trainMalware    bool
	trainRatio      float64
	trainSeed       int64
	grammarOut      string
	dotOut          string
	definitionOut   string
	printDefinition bool
	writeMetrics    bool
	skipMinimize    bool

	// Simulation configuration
	simGrammar       string
	simInput         string
	simThreshold     int
	simThresholdFile string
	simAggregate     string
	simOutput        string
	simDetails       bool

	// Inspection configuration
	inspectMode    string
	inspectInput   string
	inspectState   string
	inspectGrammar string
	inspectDot     string
	inspectBudget  int

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "sentra",
		Short: "Sentra - Grammar inference and traffic sequence analysis engine",
		Long: `Sentra is a grammar inference engine for network flow analysis. It learns a
deterministic automaton from labeled IoT traffic sequences, minimizes it,
exports it as a Chomsky Normal Form grammar, and replays live traffic against
the learned grammar with per-host block decisions and PDA-based validation of
connection-state sequences.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add train command
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train a grammar from labeled traffic sequences",
		Long: `Train the classification pipeline on a labeled dataset. Builds a prefix tree
acceptor from the samples, folds it into a complete DFA, minimizes it, and
exports the result as a CNF grammar together with DOT and formal-definition
renderings. Evaluation metrics are computed on the held-out test split.`,
		RunE: commands.RunTrain,
	}

	// Add train command flags
	trainCmd.Flags().StringSliceVar(&trainInputs, "input", nil, "Path to labeled dataset CSV (repeatable, required)")
	trainCmd.Flags().StringSliceVar(&trainTests, "test", nil, "Separate labeled test dataset CSV (repeatable)")
	trainCmd.Flags().BoolVar(&trainFull, "train-full", false, "Train on the full dataset without holding out a test split")
	trainCmd.Flags().BoolVar(&trainMalware, "malware", false, "Parse the dataset as a malware hash/t_n CSV")
	trainCmd.Flags().Float64Var(&trainRatio, "ratio", 0.7, "Train/test split ratio")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 42, "Random seed for the dataset shuffle")
	trainCmd.Flags().StringVar(&grammarOut, "grammar", "grammar.txt", "Output path for the CNF grammar")
	trainCmd.Flags().StringVar(&dotOut, "dot", "", "Output path for the DFA DOT rendering")
	trainCmd.Flags().StringVar(&definitionOut, "definition", "", "Output path for the formal DFA definition")
	trainCmd.Flags().BoolVar(&printDefinition, "print-definition", false, "Print the formal DFA definition to stdout")
	trainCmd.Flags().BoolVar(&writeMetrics, "metrics", false, "Write evaluation metrics to the metrics directory")
	trainCmd.Flags().BoolVar(&skipMinimize, "no-minimize", false, "Skip DFA minimization")

	// Mark required flags
	trainCmd.MarkFlagRequired("input")

	// Bind flags to viper
	viper.BindPFlag("train.input", trainCmd.Flags().Lookup("input"))
	viper.BindPFlag("train.test", trainCmd.Flags().Lookup("test"))
	viper.BindPFlag("train.train_full", trainCmd.Flags().Lookup("train-full"))
	viper.BindPFlag("train.malware", trainCmd.Flags().Lookup("malware"))
	viper.BindPFlag("train.ratio", trainCmd.Flags().Lookup("ratio"))
	viper.BindPFlag("train.seed", trainCmd.Flags().Lookup("seed"))
	viper.BindPFlag("train.grammar", trainCmd.Flags().Lookup("grammar"))
	viper.BindPFlag("train.dot", trainCmd.Flags().Lookup("dot"))
	viper.BindPFlag("train.definition", trainCmd.Flags().Lookup("definition"))
	viper.BindPFlag("train.print_definition", trainCmd.Flags().Lookup("print-definition"))
	viper.BindPFlag("train.metrics", trainCmd.Flags().Lookup("metrics"))
	viper.BindPFlag("train.no_minimize", trainCmd.Flags().Lookup("no-minimize"))

	rootCmd.AddCommand(trainCmd)

	// Add simulate command
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay traffic against a trained grammar with per-host verdicts",
		Long: `Replay a traffic dataset against a previously exported grammar. Samples are
aggregated per host, classified one by one, and each host's connection-state
sequence is validated for balance. Hosts whose malicious count reaches the
threshold are reported as BLOCKED.`,
		RunE: commands.RunSimulate,
	}

	// Add simulate command flags
	simulateCmd.Flags().StringVar(&simGrammar, "grammar", "grammar.txt", "Path to the trained grammar file")
	simulateCmd.Flags().StringVar(&simInput, "input", "", "Path to the traffic dataset CSV (required)")
	simulateCmd.Flags().IntVar(&simThreshold, "threshold", 5, "Malicious sequence count that blocks a host")
	simulateCmd.Flags().StringVar(&simThresholdFile, "threshold-file", "", "Per-host threshold override file")
	simulateCmd.Flags().StringVar(&simAggregate, "aggregate", "orig", "Aggregation mode (orig, resp, union, uid)")
	simulateCmd.Flags().StringVar(&simOutput, "output", "", "Output path for the CSV report")
	simulateCmd.Flags().BoolVar(&simDetails, "details", false, "Print per-sample classification details")

	// Mark required flags
	simulateCmd.MarkFlagRequired("input")

	// Bind flags to viper
	viper.BindPFlag("simulate.grammar", simulateCmd.Flags().Lookup("grammar"))
	viper.BindPFlag("simulate.input", simulateCmd.Flags().Lookup("input"))
	viper.BindPFlag("simulate.threshold", simulateCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("simulate.threshold_file", simulateCmd.Flags().Lookup("threshold-file"))
	viper.BindPFlag("simulate.aggregate", simulateCmd.Flags().Lookup("aggregate"))
	viper.BindPFlag("simulate.output", simulateCmd.Flags().Lookup("output"))
	viper.BindPFlag("simulate.details", simulateCmd.Flags().Lookup("details"))

	rootCmd.AddCommand(simulateCmd)

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect automata and replay sequences as JSON",
		Long: `Inspect exported automata for the visualization front-end. Supports graph
extraction from DOT files, step-by-step derivation and DFA walks over a
symbol sequence, and non-deterministic PDA simulation with a full trace.
All output is JSON on stdout.`,
		RunE: commands.RunInspect,
	}

	// Add inspect command flags
	inspectCmd.Flags().StringVar(&inspectMode, "mode", "", "Inspection mode (graph, derivation, dfa, pda) (required)")
	inspectCmd.Flags().StringVar(&inspectInput, "input", "", "Symbol sequence (comma separated; space separated for pda)")
	inspectCmd.Flags().StringVar(&inspectState, "state", "", "Start state override for dfa mode")
	inspectCmd.Flags().StringVar(&inspectGrammar, "grammar", "grammar.txt", "Path to the grammar file")
	inspectCmd.Flags().StringVar(&inspectDot, "dot", "automaton.dot", "Path to the DOT file")
	inspectCmd.Flags().IntVar(&inspectBudget, "budget", 50000, "Step budget for PDA simulation")

	// Mark required flags
	inspectCmd.MarkFlagRequired("mode")

	// Bind flags to viper
	viper.BindPFlag("inspect.mode", inspectCmd.Flags().Lookup("mode"))
	viper.BindPFlag("inspect.input", inspectCmd.Flags().Lookup("input"))
	viper.BindPFlag("inspect.state", inspectCmd.Flags().Lookup("state"))
	viper.BindPFlag("inspect.grammar", inspectCmd.Flags().Lookup("grammar"))
	viper.BindPFlag("inspect.dot", inspectCmd.Flags().Lookup("dot"))
	viper.BindPFlag("inspect.budget", inspectCmd.Flags().Lookup("budget"))

	rootCmd.AddCommand(inspectCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
