// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package logging wraps go.uber.org/zap for every background task and
// transport call in the controller facade.
package logging

import "go.uber.org/zap"

// Logger is the shared structured logger passed into every background
// task and transport client.
type Logger struct {
	*zap.SugaredLogger
}

// New builds a production zap logger (JSON encoding, Info level).
func New() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: z.Sugar()}, nil
}

// NewDevelopment builds a development zap logger (console encoding,
// Debug level, stack traces on Warn+).
func NewDevelopment() (*Logger, error) {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: z.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used by tests and by
// callers who haven't configured logging.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Named returns a child logger with name appended to the logger's name
// chain, for tagging per-task log lines (e.g. "refresh", "wsevents").
func (l *Logger) Named(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name)}
}
