/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Sentra commands. Provides common
configuration loading, logging setup, and utility functions used across all
command implementations.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kleascm/sentra-automata/pkg/logging"
)

// Engine logger shared by the commands. Set up once per invocation.
var engineLogger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SENTRA")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	logLevel := viper.GetString("log_level")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logrus.SetLevel(level)
	if viper.GetBool("json_logs") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return nil
}

// SetupEngineLogging configures logging plus the file-backed engine logger.
// Inspect mode stays on SetupLogging alone so its stdout remains pure JSON.
func SetupEngineLogging() error {
	if err := SetupLogging(); err != nil {
		return err
	}

	logDir := viper.GetString("log_dir")
	if logDir == "" {
		return nil
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: logDir,
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Colors:    !viper.GetBool("json_logs"),
		Compress:  viper.GetBool("log_compress"),
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create engine logger: %w", err)
	}
	engineLogger = logger
	return nil
}

// CloseLogging flushes and closes the engine logger.
func CloseLogging() {
	if engineLogger != nil {
		engineLogger.Close()
		engineLogger = nil
	}
}

// splitSymbols splits a flag value into a symbol sequence on the given
// separator, dropping empty entries.
func splitSymbols(input, separator string) []string {
	var symbols []string
	for _, part := range strings.Split(input, separator) {
		part = strings.TrimSpace(part)
		if part != "" {
			symbols = append(symbols, part)
		}
	}
	return symbols
}
