package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// newRunLogger builds a logger that writes to the console and to a
// timestamped per-run file under logDir. The returned cleanup closes
// the file.
func newRunLogger(logDir, name string, debug bool) (zerolog.Logger, func(), error) {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	writers := []io.Writer{console}
	cleanup := func() {}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("create log dir: %w", err)
		}
		path := filepath.Join(logDir, fmt.Sprintf("%s_%s.log", name, time.Now().Format("20060102_150405")))
		f, err := os.Create(path)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("create log file: %w", err)
		}
		writers = append(writers, f)
		cleanup = func() { f.Close() }
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return log, cleanup, nil
}

// consoleLogger is the lightweight logger for CRUD commands that do not
// warrant a log file.
func consoleLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}
