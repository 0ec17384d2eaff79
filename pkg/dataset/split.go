/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: split.go
Description: Seeded train/test splitting for labeled sequence datasets.
Shuffles deterministically for a given seed and clamps the partition so both
sides are non-empty whenever the input has at least two samples.
*/

package dataset

import (
	"errors"
	"math/rand"
)

// ErrInvalidRatio is returned when the requested train ratio is outside (0, 1).
var ErrInvalidRatio = errors.New("train ratio must be in (0, 1)")

// TrainTestSplit shuffles the samples with a seeded PRNG and cuts them into a
// train and a test partition. The ratio is the fraction assigned to training.
// The cut is clamped so that neither side is empty when len(data) >= 2.
func TrainTestSplit(data []LabeledSequence, trainRatio float64, seed int64) (DatasetSplit, error) {
	if trainRatio <= 0.0 || trainRatio >= 1.0 {
		return DatasetSplit{}, ErrInvalidRatio
	}
	if len(data) == 0 {
		return DatasetSplit{}, nil
	}

	shuffled := make([]LabeledSequence, len(data))
	copy(shuffled, data)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	trainCount := int(float64(len(shuffled)) * trainRatio)
	if trainCount == 0 {
		trainCount = 1
	} else if trainCount == len(shuffled) {
		trainCount = len(shuffled) - 1
	}

	return DatasetSplit{
		Train: shuffled[:trainCount],
		Test:  shuffled[trainCount:],
	}, nil
}
