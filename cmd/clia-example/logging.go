package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type logRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

var defaultLogRotation = logRotation{
	MaxSize:    128,
	MaxBackups: 5,
	MaxAge:     16,
	Compress:   false,
}

// newLogger returns a text logger writing to stderr and, if cfg.LogFile is set, to the rotated file.
// Warnings and errors are logged by default, everything with cfg.Verbose.
// The returned func closes the log file
func newLogger(cfg logConfig, stderr io.Writer) (*slog.Logger, func() error) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	writers := []io.Writer{stderr}
	closeLog := func() error { return nil }
	if cfg.LogFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    defaultLogRotation.MaxSize,
			MaxBackups: defaultLogRotation.MaxBackups,
			MaxAge:     defaultLogRotation.MaxAge,
			Compress:   defaultLogRotation.Compress,
		}
		writers = append(writers, fileWriter)
		closeLog = fileWriter.Close
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog
}
