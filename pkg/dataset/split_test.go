/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: split_test.go
Description: Tests for the seeded train/test split. Covers ratio validation,
seed determinism and the non-empty partition clamp.
*/

package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequences(n int) []LabeledSequence {
	out := make([]LabeledSequence, n)
	for i := range out {
		out[i] = LabeledSequence{ID: fmt.Sprintf("s%d", i), Symbols: []string{fmt.Sprintf("sym%d", i)}}
	}
	return out
}

func TestTrainTestSplitInvalidRatio(t *testing.T) {
	for _, ratio := range []float64{0.0, 1.0, -0.5, 1.5} {
		_, err := TrainTestSplit(sequences(10), ratio, 42)
		assert.ErrorIs(t, err, ErrInvalidRatio, "ratio %v", ratio)
	}
}

func TestTrainTestSplitPartition(t *testing.T) {
	data := sequences(10)
	split, err := TrainTestSplit(data, 0.7, 42)
	require.NoError(t, err)

	assert.Len(t, split.Train, 7)
	assert.Len(t, split.Test, 3)

	seen := make(map[string]int)
	for _, s := range append(append([]LabeledSequence(nil), split.Train...), split.Test...) {
		seen[s.ID]++
	}
	for _, s := range data {
		assert.Equal(t, 1, seen[s.ID], "sample %s", s.ID)
	}
}

func TestTrainTestSplitSeedDeterminism(t *testing.T) {
	data := sequences(20)

	first, err := TrainTestSplit(data, 0.5, 7)
	require.NoError(t, err)
	second, err := TrainTestSplit(data, 0.5, 7)
	require.NoError(t, err)
	assert.Equal(t, first.Train, second.Train)
	assert.Equal(t, first.Test, second.Test)

	other, err := TrainTestSplit(data, 0.5, 8)
	require.NoError(t, err)
	assert.NotEqual(t, first.Train, other.Train)
}

func TestTrainTestSplitClamp(t *testing.T) {
	// An extreme ratio still leaves both partitions non-empty.
	split, err := TrainTestSplit(sequences(2), 0.99, 42)
	require.NoError(t, err)
	assert.Len(t, split.Train, 1)
	assert.Len(t, split.Test, 1)

	split, err = TrainTestSplit(sequences(3), 0.01, 42)
	require.NoError(t, err)
	assert.Len(t, split.Train, 1)
	assert.Len(t, split.Test, 2)
}

func TestTrainTestSplitEmpty(t *testing.T) {
	split, err := TrainTestSplit(nil, 0.5, 42)
	require.NoError(t, err)
	assert.Empty(t, split.Train)
	assert.Empty(t, split.Test)
}
