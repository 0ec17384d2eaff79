/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: train_test.go
Description: Tests for the training command helpers. Covers concatenated
loading of repeated dataset paths.
*/

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTrainingSamplesConcatenates(t *testing.T) {
	first := writeDataset(t, "first.csv", `proto,conn_state,label
tcp,SF,0
udp,S0,1
`)
	second := writeDataset(t, "second.csv", `proto,conn_state,label
icmp,OTH,0
`)

	samples, err := loadTrainingSamples([]string{first, second}, false)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// Order follows the path order.
	assert.Equal(t, []string{"proto=tcp", "state=SF"}, samples[0].Symbols)
	assert.Equal(t, []string{"proto=icmp", "state=OTH"}, samples[2].Symbols)
}

func TestLoadTrainingSamplesMissingFile(t *testing.T) {
	existing := writeDataset(t, "ok.csv", `proto,label
tcp,1
`)

	_, err := loadTrainingSamples([]string{existing, filepath.Join(t.TempDir(), "missing.csv")}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}
