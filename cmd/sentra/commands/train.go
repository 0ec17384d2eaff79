/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: train.go
Description: Train command implementation for the Sentra automata engine.
Loads one or more labeled datasets, builds the prefix tree acceptor, folds it into a
complete DFA, minimizes it, evaluates it on the held-out split, and exports
the grammar, DOT and formal-definition artifacts.
*/

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/sentra-automata/pkg/analysis"
	"github.com/kleascm/sentra-automata/pkg/automata"
	"github.com/kleascm/sentra-automata/pkg/dataset"
	"github.com/kleascm/sentra-automata/pkg/utils"
)

// TrainingResult is the JSON shape written to the metrics directory.
type TrainingResult struct {
	Dataset      string           `json:"dataset"`
	Samples      int              `json:"samples"`
	TrainSamples int              `json:"train_samples"`
	TestSamples  int              `json:"test_samples"`
	Alphabet     []string         `json:"alphabet"`
	Metrics      analysis.Metrics `json:"metrics"`
}

// loadTrainingSamples loads and concatenates labeled samples from each dataset
// path in order.
func loadTrainingSamples(paths []string, malware bool) ([]dataset.LabeledSequence, error) {
	var samples []dataset.LabeledSequence
	for _, path := range paths {
		var loaded []dataset.LabeledSequence
		var err error
		if malware {
			loaded, err = dataset.LoadMalwareCSV(path)
		} else {
			loaded, err = dataset.LoadIoTCSV(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
		}
		samples = append(samples, loaded...)
	}
	return samples, nil
}

// RunTrain executes the training pipeline
func RunTrain(cmd *cobra.Command, args []string) error {
	fmt.Println("🧠 Sentra - Training Grammar")
	fmt.Println("============================")
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

	inputPaths := viper.GetStringSlice("train.input")
	inputLabel := strings.Join(inputPaths, ",")

	samples, err := loadTrainingSamples(inputPaths, viper.GetBool("train.malware"))
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples loaded from %s", inputLabel)
	}

	var split dataset.DatasetSplit
	if viper.GetBool("train.train_full") {
		split = dataset.DatasetSplit{Train: samples, Test: samples}
	} else {
		split, err = dataset.TrainTestSplit(samples, viper.GetFloat64("train.ratio"), viper.GetInt64("train.seed"))
		if err != nil {
			return fmt.Errorf("failed to split dataset: %w", err)
		}
	}
	if testPaths := viper.GetStringSlice("train.test"); len(testPaths) > 0 {
		testSamples, err := loadTrainingSamples(testPaths, false)
		if err != nil {
			return err
		}
		split.Test = testSamples
	}

	logrus.WithFields(logrus.Fields{
		"dataset": inputLabel,
		"samples": len(samples),
		"train":   len(split.Train),
		"test":    len(split.Test),
	}).Info("Dataset loaded")

	// Build PTA and fold into a complete DFA
	pta := automata.NewPTA()
	pta.Build(split.Train)

	dfa, err := automata.FromPTA(pta)
	if err != nil {
		return fmt.Errorf("failed to build DFA: %w", err)
	}
	if engineLogger != nil {
		engineLogger.LogTraining(inputLabel, len(split.Train), len(dfa.Alphabet()), nil)
	}

	var metrics analysis.Metrics
	if viper.GetBool("train.no_minimize") {
		metrics = analysis.Evaluate(dfa, split.Test)
		metrics.StatesBefore = len(dfa.States())
		metrics.StatesAfter = len(dfa.States())
	} else {
		dfa, metrics = analysis.MinimizeAndEvaluate(dfa, split.Test)
	}

	logrus.WithFields(logrus.Fields{
		"states_before":       metrics.StatesBefore,
		"states_after":        metrics.StatesAfter,
		"duration":            metrics.MinimizationDuration,
		"accuracy":            metrics.Accuracy,
		"false_positive_rate": metrics.FalsePositiveRate,
		"false_negative_rate": metrics.FalseNegativeRate,
	}).Info("DFA minimized")
	if engineLogger != nil {
		engineLogger.LogMinimization(metrics.StatesBefore, metrics.StatesAfter, metrics.MinimizationDuration, nil)
		engineLogger.LogEvaluation(metrics.Accuracy, metrics.FalsePositiveRate, metrics.FalseNegativeRate, nil)
	}

	// Export artifacts
	grammarPath := viper.GetString("train.grammar")
	if grammarPath != "" {
		if err := os.WriteFile(grammarPath, []byte(dfa.ToChomsky()), 0644); err != nil {
			return fmt.Errorf("failed to write grammar: %w", err)
		}
		fmt.Printf("📜 Grammar written to %s\n", grammarPath)
	}
	if dotPath := viper.GetString("train.dot"); dotPath != "" {
		if err := os.WriteFile(dotPath, []byte(dfa.ToDOT()), 0644); err != nil {
			return fmt.Errorf("failed to write DOT file: %w", err)
		}
		fmt.Printf("🗺️  DOT rendering written to %s\n", dotPath)
	}
	if defPath := viper.GetString("train.definition"); defPath != "" {
		if err := os.WriteFile(defPath, []byte(dfa.ToDefinition()), 0644); err != nil {
			return fmt.Errorf("failed to write DFA definition: %w", err)
		}
		fmt.Printf("📐 DFA definition written to %s\n", defPath)
	}
	if viper.GetBool("train.print_definition") {
		fmt.Println()
		fmt.Print(dfa.ToDefinition())
	}

	// Write metrics result if requested
	if viper.GetBool("train.metrics") {
		result := TrainingResult{
			Dataset:      inputLabel,
			Samples:      len(samples),
			TrainSamples: len(split.Train),
			TestSamples:  len(split.Test),
			Alphabet:     dfa.Alphabet(),
			Metrics:      metrics,
		}
		path, err := utils.WriteMetricsResult("training", "1.0.0", result)
		if err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		fmt.Printf("📊 Metrics written to %s\n", path)
	}

	fmt.Println()
	fmt.Printf("✨ Training completed: %d → %d states, accuracy %.4f\n",
		metrics.StatesBefore, metrics.StatesAfter, metrics.Accuracy)
	return nil
}
