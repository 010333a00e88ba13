// Copyright 2015 The Vanadium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vlog

import (
	"github.com/cosmosnicolaou/llog"
)

const stackSkip = 1

type logger struct {
	log *llog.Log
}

// Log is the default logger. Package diag writes every primitive's
// diagnostics to it.
var Log *logger

func init() {
	Log = &logger{log: llog.NewLogger("kernel-synch", stackSkip)}
}

// NewLogger creates a logger independent of the package default, for a
// scenario runner that wants its own log stream. The primitives' own
// diagnostics (such as the "no waiters" trace) always go to Log, not to a
// logger created here.
func NewLogger(name string) Logger {
	return &logger{log: llog.NewLogger(name, stackSkip)}
}

// Info logs to the INFO log.
func (l *logger) Info(args ...interface{}) {
	l.log.Print(llog.InfoLog, args...)
}

// Infof logs to the INFO log.
func (l *logger) Infof(format string, args ...interface{}) {
	l.log.Printf(llog.InfoLog, format, args...)
}

// Error logs to the ERROR and INFO logs.
func (l *logger) Error(args ...interface{}) {
	l.log.Print(llog.ErrorLog, args...)
}

// Errorf logs to the ERROR and INFO logs.
func (l *logger) Errorf(format string, args ...interface{}) {
	l.log.Printf(llog.ErrorLog, format, args...)
}

// Fatal logs to the FATAL, ERROR and INFO logs. See the warning on the
// Logger interface: prefer package diag for assertion failures that need to
// remain recoverable by a caller's defer/recover.
func (l *logger) Fatal(args ...interface{}) {
	l.log.Print(llog.FatalLog, args...)
}

// Fatalf logs to the FATAL, ERROR and INFO logs.
func (l *logger) Fatalf(format string, args ...interface{}) {
	l.log.Printf(llog.FatalLog, format, args...)
}

// FlushLog flushes all pending log I/O.
func (l *logger) FlushLog() {
	l.log.Flush()
}
