/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pta_test.go
Description: Tests for the prefix tree acceptor. Covers branching structure,
insertion-order independence, empty sequences and count aggregation.
*/

package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/sentra-automata/pkg/dataset"
)

func sample(id string, symbols []string, label bool) dataset.LabeledSequence {
	return dataset.LabeledSequence{ID: id, Symbols: symbols, Label: label}
}

func TestPTABranching(t *testing.T) {
	pta := NewPTA()
	pta.Build([]dataset.LabeledSequence{
		sample("s1", []string{"a", "b"}, true),
		sample("s2", []string{"a", "c"}, false),
	})

	nodes := pta.Nodes()
	require.GreaterOrEqual(t, len(nodes), 3)

	root := nodes[pta.StartState()]
	_, ok := root.Transitions["a"]
	assert.True(t, ok, "root must branch on 'a'")

	// Shared prefix "a" must lead to a single node with two children.
	mid := nodes[root.Transitions["a"]]
	assert.Len(t, mid.Transitions, 2)
}

func TestPTADenseIDs(t *testing.T) {
	pta := NewPTA()
	pta.Build([]dataset.LabeledSequence{
		sample("s1", []string{"a", "b", "c"}, true),
		sample("s2", []string{"d"}, false),
	})

	for i, node := range pta.Nodes() {
		assert.Equal(t, i, node.ID)
	}
}

func TestPTAInsertionOrderIndependence(t *testing.T) {
	samples := []dataset.LabeledSequence{
		sample("s1", []string{"a", "b"}, true),
		sample("s2", []string{"a", "c"}, false),
		sample("s3", []string{"d"}, true),
	}
	reversed := []dataset.LabeledSequence{samples[2], samples[1], samples[0]}

	first := NewPTA()
	first.Build(samples)
	second := NewPTA()
	second.Build(reversed)

	require.Equal(t, len(first.Nodes()), len(second.Nodes()))

	// Same leaf counts when walking the same sequences through both trees.
	walk := func(p *PTA, symbols []string) PTANode {
		current := p.StartState()
		for _, symbol := range symbols {
			next, ok := p.Nodes()[current].Transitions[symbol]
			require.True(t, ok)
			current = next
		}
		return p.Nodes()[current]
	}
	for _, s := range samples {
		a := walk(first, s.Symbols)
		b := walk(second, s.Symbols)
		assert.Equal(t, a.PositiveCount, b.PositiveCount)
		assert.Equal(t, a.NegativeCount, b.NegativeCount)
	}
}

func TestPTAEmptySequenceUpdatesRoot(t *testing.T) {
	pta := NewPTA()
	pta.Build([]dataset.LabeledSequence{
		sample("empty", nil, true),
		sample("empty2", []string{}, true),
	})

	root := pta.Nodes()[pta.StartState()]
	assert.Equal(t, 2, root.PositiveCount)
	assert.Equal(t, 0, root.NegativeCount)
	assert.Len(t, pta.Nodes(), 1)
}

func TestPTADuplicateSequencesAggregate(t *testing.T) {
	pta := NewPTA()
	pta.Build([]dataset.LabeledSequence{
		sample("s1", []string{"a"}, true),
		sample("s2", []string{"a"}, true),
		sample("s3", []string{"a"}, false),
	})

	require.Len(t, pta.Nodes(), 2)
	leaf := pta.Nodes()[1]
	assert.Equal(t, 2, leaf.PositiveCount)
	assert.Equal(t, 1, leaf.NegativeCount)
}
