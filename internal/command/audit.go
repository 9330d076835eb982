// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package command

import (
	"github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/logging"
)

// Severity names the level an executed command's outcome is logged at.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Logger is the processor's audit trail: one structured line per executed
// command naming what ran, its outcome, and, on failure, why.
type Logger struct {
	log *logging.Logger
}

// NewLogger builds a Logger writing through log.
func NewLogger(log *logging.Logger) *Logger {
	if log == nil {
		log = logging.NewNop()
	}
	return &Logger{log: log.Named("audit")}
}

// Log records the outcome of one dispatched command. A transient error
// (rate limiting, connection loss) logs as a warning since the caller or
// a retry may still succeed; anything else logs as an error.
func (l *Logger) Log(cmd Command, err error) {
	name := cmd.commandName()
	if err == nil {
		l.log.Infow("command executed", "command", name, "severity", SeverityInfo)
		return
	}
	if errors.IsTransient(err) {
		l.log.Warnw("command failed transiently", "command", name, "severity", SeverityWarn, "error", err)
		return
	}
	l.log.Errorw("command failed", "command", name, "severity", SeverityError, "error", err)
}
