/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for logger configuration validation and the async logger
lifecycle.
*/

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(dir string) *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: dir,
		MaxFiles:  3,
		MaxSize:   1024 * 1024,
		Timestamp: true,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	require.NoError(t, validConfig("./logs").Validate())

	missing := validConfig("")
	assert.Error(t, missing.Validate())

	badFiles := validConfig("./logs")
	badFiles.MaxFiles = 0
	assert.Error(t, badFiles.Validate())

	badSize := validConfig("./logs")
	badSize.MaxSize = 0
	assert.Error(t, badSize.Validate())

	badFormat := validConfig("./logs")
	badFormat.Format = "xml"
	assert.Error(t, badFormat.Validate())

	badLevel := validConfig("./logs")
	badLevel.Level = "verbose"
	assert.Error(t, badLevel.Validate())
}

func TestLoggerLifecycle(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(validConfig(dir))
	require.NoError(t, err)

	logger.LogTraining("dataset.csv", 100, 12, nil)
	logger.LogMinimization(40, 9, 0, nil)
	logger.LogClassification("iot_line_7", true, "accepted", nil)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "sentra_*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
