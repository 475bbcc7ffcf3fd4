package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// LogConf configures the diagnostics logger of the CLI
type LogConf struct {
	Level LogLevel
	// File receives the diagnostics instead of stderr when set
	File       string
	MaxSizeMB  int `validate:"gte=0"`
	MaxBackups int `validate:"gte=0"`
	MaxAgeDays int `validate:"gte=0"`
}

// LogLevel is a pflag.Value holding a zerolog level
type LogLevel struct {
	Level zerolog.Level
}

// String returns log level as string
func (l *LogLevel) String() string {
	return l.Level.String()
}

// Set validates and sets the log level from string
func (l *LogLevel) Set(value string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		return fmt.Errorf("invalid log level: %v", err)
	}
	l.Level = level
	return nil
}

// Type names the flag value in usage output
func (l *LogLevel) Type() string {
	return "level"
}
