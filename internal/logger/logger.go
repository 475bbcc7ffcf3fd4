package logger

import (
	"io"
	"os"
	"time"

	logconf "github.com/ar4ie13/tsconsole/internal/logger/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

// Logger wraps a zerolog.Logger for type safety and extensibility
type Logger struct {
	zerolog.Logger
}

// NewLogger creates a new Logger writing human readable lines to out
func NewLogger(level zerolog.Level, out io.Writer) *Logger {
	return &Logger{
		Logger: zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(level),
	}
}

// NewFromConf creates a Logger for conf. Diagnostics go to stderr so they
// never mix with the timestamped stdout stream, or to a rotated file.
// A nil stderr means os.Stderr.
func NewFromConf(conf logconf.LogConf, stderr io.Writer) *Logger {
	if conf.File == "" {
		if stderr == nil {
			stderr = os.Stderr
		}
		return NewLogger(conf.Level.Level, stderr)
	}

	w := &lumberjack.Logger{
		Filename:   conf.File,
		MaxSize:    conf.MaxSizeMB,
		MaxBackups: conf.MaxBackups,
		MaxAge:     conf.MaxAgeDays,
	}
	if w.MaxSize == 0 {
		w.MaxSize = defaultMaxSizeMB
	}
	if w.MaxBackups == 0 {
		w.MaxBackups = defaultMaxBackups
	}
	if w.MaxAge == 0 {
		w.MaxAge = defaultMaxAgeDays
	}

	return &Logger{
		Logger: zerolog.New(w).With().Timestamp().Logger().Level(conf.Level.Level),
	}
}
