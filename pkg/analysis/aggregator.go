/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: aggregator.go
Description: Per-host aggregation and block decisions for the Sentra
simulator. Samples are grouped by origin host, responder host, both, or
connection uid, ordered by timestamp, classified against the loaded grammar,
and each host's connection-state subsequence is balance-checked. Hosts whose
malicious count reaches their threshold are blocked.
*/

package analysis

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/sentra-automata/pkg/dataset"
	"github.com/kleascm/sentra-automata/pkg/grammar"
	"github.com/kleascm/sentra-automata/pkg/pda"
)

// Aggregation modes.
const (
	AggregateOrig  = "orig"
	AggregateResp  = "resp"
	AggregateUnion = "union"
	AggregateUID   = "uid"
)

// Host statuses.
const (
	StatusBlocked     = "BLOCKED"
	StatusPDARejected = "PDA_REJECTED"
	StatusOK          = "OK"
)

// DefaultThreshold is the malicious-sequence count at which a host is
// blocked unless overridden per host.
const DefaultThreshold = 5

// SampleReason pairs a sample id with its classification reason.
type SampleReason struct {
	SampleID string `json:"sample_id"`
	Reason   string `json:"reason"`
}

// HostReport is the per-host outcome of one simulation run.
type HostReport struct {
	Host           string            `json:"host"`
	Status         string            `json:"status"`
	MaliciousCount int               `json:"malicious_count"`
	Threshold      int               `json:"threshold"`
	Blocked        bool              `json:"blocked"`
	PDAResult      pda.BalanceResult `json:"pda_result"`
	SampleReasons  []SampleReason    `json:"sample_reasons"`
}

// SimulationReport is the outcome of one full simulation run over a dataset.
type SimulationReport struct {
	ID    string       `json:"id"`
	Mode  string       `json:"aggregate_mode"`
	Hosts []HostReport `json:"hosts"`
}

// Aggregator groups labeled sequences per host and decides block status.
type Aggregator struct {
	grammar       *grammar.GrammarDFA
	mode          string
	threshold     int
	hostThreshold map[string]int
}

// NewAggregator creates an aggregator over a loaded grammar. An unknown mode
// falls back to origin-host grouping.
func NewAggregator(g *grammar.GrammarDFA, mode string, threshold int) *Aggregator {
	return &Aggregator{
		grammar:       g,
		mode:          mode,
		threshold:     threshold,
		hostThreshold: make(map[string]int),
	}
}

// SetHostThreshold overrides the blocking threshold for one host.
func (a *Aggregator) SetHostThreshold(host string, threshold int) {
	a.hostThreshold[host] = threshold
}

// LoadThresholdFile reads per-host threshold overrides. Lines are
// "host,threshold" or "host threshold"; blanks and # comments are skipped and
// unparsable thresholds are logged and ignored.
func (a *Aggregator) LoadThresholdFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open threshold file: %w", err)
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var host, raw string
		if comma := strings.Index(line, ","); comma >= 0 {
			host = strings.TrimSpace(line[:comma])
			raw = strings.TrimSpace(line[comma+1:])
		} else {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				host, raw = fields[0], fields[1]
			}
		}
		if host == "" || raw == "" {
			continue
		}
		threshold, err := strconv.Atoi(raw)
		if err != nil || threshold < 0 {
			logrus.WithFields(logrus.Fields{
				"host":  host,
				"value": raw,
			}).Warn("Invalid threshold for host in threshold file")
			continue
		}
		a.hostThreshold[host] = threshold
	}
	return nil
}

// hostKeys returns the grouping keys for one sample under the configured
// aggregation mode. Missing provenance falls back to the origin host and
// finally the sample id so no sample is dropped.
func (a *Aggregator) hostKeys(s *dataset.LabeledSequence) []string {
	origin := s.Host
	if origin == "" {
		origin = s.ID
	}
	switch a.mode {
	case AggregateResp:
		if s.RespHost != "" {
			return []string{s.RespHost}
		}
		return []string{origin}
	case AggregateUnion:
		if s.RespHost != "" && s.RespHost != origin {
			return []string{origin, s.RespHost}
		}
		return []string{origin}
	case AggregateUID:
		if s.UID != "" {
			return []string{s.UID}
		}
		return []string{origin}
	default:
		return []string{origin}
	}
}

// Run classifies every sample, groups them per host in timestamp order, and
// produces the block decision for each host. Host reports are sorted by host
// name so output is deterministic.
func (a *Aggregator) Run(samples []dataset.LabeledSequence) SimulationReport {
	report := SimulationReport{
		ID:   uuid.New().String(),
		Mode: a.mode,
	}

	hostSamples := make(map[string][]int)
	for i := range samples {
		for _, key := range a.hostKeys(&samples[i]) {
			hostSamples[key] = append(hostSamples[key], i)
		}
	}

	hosts := make([]string, 0, len(hostSamples))
	for host := range hostSamples {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	for _, host := range hosts {
		indexes := hostSamples[host]
		sort.SliceStable(indexes, func(x, y int) bool {
			return samples[indexes[x]].Ts < samples[indexes[y]].Ts
		})

		hr := HostReport{Host: host, Threshold: a.threshold}
		if override, ok := a.hostThreshold[host]; ok {
			hr.Threshold = override
		}

		var connSeq []string
		for _, idx := range indexes {
			sample := &samples[idx]
			accepted, reason := a.grammar.ClassifyWithReason(sample.Symbols)
			if accepted {
				hr.MaliciousCount++
			}
			hr.SampleReasons = append(hr.SampleReasons, SampleReason{SampleID: sample.ID, Reason: reason})
			for _, symbol := range sample.Symbols {
				if strings.HasPrefix(symbol, "state=") {
					connSeq = append(connSeq, symbol)
				}
			}
		}
		hr.PDAResult = pda.ValidateConnStates(connSeq)

		switch {
		case hr.MaliciousCount >= hr.Threshold:
			hr.Status = StatusBlocked
			hr.Blocked = true
		case !hr.PDAResult.OK:
			hr.Status = StatusPDARejected
		default:
			hr.Status = StatusOK
		}

		logrus.WithFields(logrus.Fields{
			"host":            host,
			"status":          hr.Status,
			"malicious_count": hr.MaliciousCount,
			"threshold":       hr.Threshold,
		}).Debug("Host verdict computed")

		report.Hosts = append(report.Hosts, hr)
	}

	return report
}

// WriteCSV writes the per-host report as CSV with a fixed header.
func (r *SimulationReport) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"host", "status", "malicious_count", "blocked", "pda_ok", "pda_reason"}); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, hr := range r.Hosts {
		record := []string{
			hr.Host,
			hr.Status,
			strconv.Itoa(hr.MaliciousCount),
			strconv.FormatBool(hr.Blocked),
			strconv.FormatBool(hr.PDAResult.OK),
			hr.PDAResult.Reason,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
