/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dataset.go
Description: Core dataset types for the Sentra automata engine. Defines labeled
symbol sequences drawn from network flow logs, together with the provenance
fields used by per-host aggregation and the train/test split container.
*/

package dataset

// LabeledSequence is a single training or evaluation sample: an ordered
// sequence of symbols over a finite alphabet together with its supervised
// label. Provenance fields are optional and only used by the aggregator;
// they never enter the symbol sequence.
type LabeledSequence struct {
	ID       string   `json:"id"`
	Host     string   `json:"host,omitempty"`      // originating host (id.orig_h) when available
	RespHost string   `json:"resp_host,omitempty"` // responder host (id.resp_h) when available
	UID      string   `json:"uid,omitempty"`       // connection/session uid when available
	Ts       float64  `json:"ts,omitempty"`        // timestamp (seconds since epoch) when available
	Symbols  []string `json:"symbols"`
	Label    bool     `json:"label"` // true = malicious, false = benign
}

// DatasetSplit holds the outcome of a train/test partition.
type DatasetSplit struct {
	Train []LabeledSequence
	Test  []LabeledSequence
}
