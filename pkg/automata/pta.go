/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pta.go
Description: Prefix Tree Acceptor for the Sentra automata engine. Inserts
labeled symbol sequences into an arena-backed trie and accumulates positive
and negative counts at the node reached by each full sequence. The PTA is the
intermediate structure between the raw dataset and the DFA constructor.
*/

package automata

import (
	"github.com/kleascm/sentra-automata/pkg/dataset"
)

// PTANode is a single trie node. Child references are dense indices into the
// owning PTA's node arena rather than pointers, which keeps copies and
// equality checks trivial.
type PTANode struct {
	ID            int
	Transitions   map[string]int
	PositiveCount int
	NegativeCount int
}

// PTA is a prefix tree acceptor: a rooted trie of training sequences with
// per-leaf label counts. The root always has id 0.
type PTA struct {
	nodes []PTANode
	start int
}

// NewPTA creates an empty PTA containing only the root node.
func NewPTA() *PTA {
	p := &PTA{}
	p.ensureRoot()
	return p
}

func (p *PTA) ensureRoot() int {
	if len(p.nodes) == 0 {
		p.nodes = append(p.nodes, PTANode{ID: 0, Transitions: make(map[string]int)})
	}
	p.start = 0
	return p.start
}

func (p *PTA) addNode() int {
	id := len(p.nodes)
	p.nodes = append(p.nodes, PTANode{ID: id, Transitions: make(map[string]int)})
	return id
}

// Build resets the trie and inserts every sample. For each sample it walks
// from the root, allocating a fresh node whenever the current node has no
// outgoing edge on the next symbol, then bumps the label count of the node
// reached after the final symbol. An empty symbol sequence updates the root
// counts directly. Insertion order does not affect the final tree shape.
func (p *PTA) Build(samples []dataset.LabeledSequence) {
	p.nodes = p.nodes[:0]
	p.ensureRoot()

	for _, sample := range samples {
		current := p.start
		for _, symbol := range sample.Symbols {
			child, ok := p.nodes[current].Transitions[symbol]
			if !ok {
				child = p.addNode()
				p.nodes[current].Transitions[symbol] = child
			}
			current = child
		}

		if sample.Label {
			p.nodes[current].PositiveCount++
		} else {
			p.nodes[current].NegativeCount++
		}
	}
}

// Nodes returns the node arena. Node ids are dense in [0, len(Nodes())).
func (p *PTA) Nodes() []PTANode { return p.nodes }

// StartState returns the id of the root node.
func (p *PTA) StartState() int { return p.start }
