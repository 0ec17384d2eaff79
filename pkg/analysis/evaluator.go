/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluator.go
Description: Confusion-matrix evaluation for the Sentra automata engine.
Computes accuracy and false positive/negative rates of a classifier over a
labeled test set, and records state counts and wall time around DFA
minimization for the training report.
*/

package analysis

import (
	"time"

	"github.com/kleascm/sentra-automata/pkg/automata"
	"github.com/kleascm/sentra-automata/pkg/dataset"
)

// Classifier is anything that can label a symbol sequence. Both the trained
// DFA and a reloaded grammar table satisfy it.
type Classifier interface {
	Classify(sequence []string) bool
}

// Metrics is the evaluation result for one classifier and test set. Rates
// with a zero denominator are reported as 0 rather than NaN.
type Metrics struct {
	Accuracy             float64       `json:"accuracy"`
	FalsePositiveRate    float64       `json:"false_positive_rate"`
	FalseNegativeRate    float64       `json:"false_negative_rate"`
	StatesBefore         int           `json:"states_before"`
	StatesAfter          int           `json:"states_after"`
	MinimizationDuration time.Duration `json:"minimization_duration_ns"`
}

// Evaluate classifies every test sample and folds the confusion counts into
// accuracy, FPR and FNR. An empty test set yields zeroed metrics.
func Evaluate(classifier Classifier, testSet []dataset.LabeledSequence) Metrics {
	var metrics Metrics
	if len(testSet) == 0 {
		return metrics
	}

	var truePositive, trueNegative, falsePositive, falseNegative int
	for _, sample := range testSet {
		predicted := classifier.Classify(sample.Symbols)
		switch {
		case predicted && sample.Label:
			truePositive++
		case !predicted && !sample.Label:
			trueNegative++
		case predicted && !sample.Label:
			falsePositive++
		default:
			falseNegative++
		}
	}

	metrics.Accuracy = float64(truePositive+trueNegative) / float64(len(testSet))
	if denom := falsePositive + trueNegative; denom > 0 {
		metrics.FalsePositiveRate = float64(falsePositive) / float64(denom)
	}
	if denom := falseNegative + truePositive; denom > 0 {
		metrics.FalseNegativeRate = float64(falseNegative) / float64(denom)
	}
	return metrics
}

// MinimizeAndEvaluate minimizes the DFA, evaluates the result on the test
// set, and fills in the state counts and minimization wall time. The minimized
// DFA is returned alongside the metrics.
func MinimizeAndEvaluate(d *automata.DFA, testSet []dataset.LabeledSequence) (*automata.DFA, Metrics) {
	before := len(d.States())
	start := time.Now()
	minimized := d.Minimize()
	elapsed := time.Since(start)

	metrics := Evaluate(minimized, testSet)
	metrics.StatesBefore = before
	metrics.StatesAfter = len(minimized.States())
	metrics.MinimizationDuration = elapsed
	return minimized, metrics
}
