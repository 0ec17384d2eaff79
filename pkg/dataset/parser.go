/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: CSV loaders for the Sentra automata engine. Parses labeled IoT
connection logs (Zeek-style, pipe or comma delimited, hash comments) and
malware trace datasets into labeled symbol sequences. Feature columns are
mapped to prefixed symbols so the alphabet stays self-describing.
*/

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrMissingColumns is returned when a dataset header lacks a required column.
var ErrMissingColumns = errors.New("dataset missing required columns")

// isTrueLabel normalizes the many label spellings found in the datasets.
// "1", "true" and "malware" are malicious; "0", "false" and "benign" are
// benign; anything containing "malic" (Malicious, PartOfAHorizontalPortScan
// variants, ...) is malicious.
func isTrueLabel(value string) bool {
	lower := strings.ToLower(value)
	switch lower {
	case "1", "true", "malware":
		return true
	case "0", "false", "benign":
		return false
	}
	return strings.Contains(lower, "malic")
}

// headerIndex maps trimmed column names to their positions.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

func field(tokens []string, col int) string {
	if col < 0 || col >= len(tokens) {
		return ""
	}
	return strings.TrimSpace(tokens[col])
}

// LoadIoTCSV loads a labeled IoT connection log. The delimiter is sniffed
// from the header line: `|` when present, `,` otherwise. Lines starting with
// `#` and blank lines are skipped. Each row yields one LabeledSequence whose
// symbols are built from the proto, conn_state and service columns; rows
// with no usable feature columns receive the sentinel symbol.
func LoadIoTCSV(path string) ([]LabeledSequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open IoT dataset: %w", err)
	}
	return ParseIoT(data)
}

// ParseIoT parses IoT connection log content. See LoadIoTCSV.
func ParseIoT(data []byte) ([]LabeledSequence, error) {
	header, ok := sniffHeader(data)
	if !ok {
		return nil, nil
	}
	delimiter := byte(',')
	if strings.ContainsRune(header, '|') {
		delimiter = '|'
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = rune(delimiter)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headerTokens, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read IoT header: %w", err)
	}
	index := headerIndex(headerTokens)

	labelCol, ok := index["label"]
	if !ok {
		return nil, fmt.Errorf("%w: IoT dataset needs 'label'", ErrMissingColumns)
	}

	colOrDefault := func(name string) int {
		if col, ok := index[name]; ok {
			return col
		}
		return -1
	}
	protoCol := colOrDefault("proto")
	connStateCol := colOrDefault("conn_state")
	serviceCol := colOrDefault("service")
	origHostCol := colOrDefault("id.orig_h")
	respHostCol := colOrDefault("id.resp_h")
	uidCol := colOrDefault("uid")
	tsCol := colOrDefault("ts")

	var samples []LabeledSequence
	for {
		tokens, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read IoT row: %w", err)
		}
		if len(tokens) <= labelCol {
			line, _ := reader.FieldPos(0)
			logrus.WithFields(logrus.Fields{
				"line":   line,
				"fields": len(tokens),
			}).Warn("Skipping IoT row without a label column")
			continue
		}
		lineNumber, _ := reader.FieldPos(0)

		sample := LabeledSequence{
			ID:       fmt.Sprintf("iot_line_%d", lineNumber),
			Label:    isTrueLabel(field(tokens, labelCol)),
			Host:     field(tokens, origHostCol),
			RespHost: field(tokens, respHostCol),
			UID:      field(tokens, uidCol),
		}
		if ts := field(tokens, tsCol); ts != "" && ts != "-" {
			if parsed, err := strconv.ParseFloat(ts, 64); err == nil {
				sample.Ts = parsed
			}
		}

		addSymbol := func(col int, prefix string) {
			value := field(tokens, col)
			if value != "" && value != "-" {
				sample.Symbols = append(sample.Symbols, prefix+value)
			}
		}
		addSymbol(protoCol, "proto=")
		addSymbol(connStateCol, "state=")
		addSymbol(serviceCol, "service=")

		if len(sample.Symbols) == 0 {
			sample.Symbols = append(sample.Symbols, "symbol=unknown")
		}

		samples = append(samples, sample)
	}

	return samples, nil
}

// sniffHeader finds the first non-blank, non-comment line of the input.
func sniffHeader(data []byte) (string, bool) {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return trimmed, true
	}
	return "", false
}

// LoadMalwareCSV loads a malware trace dataset. Required columns are `hash`
// (sample id) and `malware` (label); every `t_<n>` column contributes its
// non-empty value as a symbol, in ascending column order. Samples whose
// symbol sequence ends up empty are dropped.
func LoadMalwareCSV(path string) ([]LabeledSequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open malware dataset: %w", err)
	}
	defer f.Close()
	return ParseMalware(f)
}

// ParseMalware parses malware trace CSV content. See LoadMalwareCSV.
func ParseMalware(r io.Reader) ([]LabeledSequence, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headerTokens, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read malware header: %w", err)
	}
	index := headerIndex(headerTokens)

	idCol, idOK := index["hash"]
	labelCol, labelOK := index["malware"]
	if !idOK || !labelOK {
		return nil, fmt.Errorf("%w: malware dataset needs 'hash' and 'malware'", ErrMissingColumns)
	}

	var sequenceColumns []int
	for name, col := range index {
		if strings.HasPrefix(name, "t_") && len(name) > 2 {
			sequenceColumns = append(sequenceColumns, col)
		}
	}
	sort.Ints(sequenceColumns)

	var samples []LabeledSequence
	for {
		tokens, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read malware row: %w", err)
		}
		if len(tokens) <= labelCol {
			line, _ := reader.FieldPos(0)
			logrus.WithFields(logrus.Fields{
				"line":   line,
				"fields": len(tokens),
			}).Warn("Skipping malware row without a label column")
			continue
		}

		sample := LabeledSequence{
			ID:    field(tokens, idCol),
			Label: isTrueLabel(field(tokens, labelCol)),
		}
		for _, col := range sequenceColumns {
			if value := field(tokens, col); value != "" {
				sample.Symbols = append(sample.Symbols, value)
			}
		}
		if len(sample.Symbols) == 0 {
			continue
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
