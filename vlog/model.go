// Package vlog is the leveled logging sink used by every synchronization
// primitive in this kernel for diagnostic output: the "called with no
// waiters" trace on an empty Signal/Broadcast, and the textual record of
// an assertion failure before the caller panics. It wraps
// github.com/cosmosnicolaou/llog, a dependency-free, glog-style leveled
// logger, rather than writing straight to stderr, so that scenario runners
// can redirect or silence kernel diagnostics the same way a real kernel's
// log ring buffer can be filtered.
package vlog

import (
	"github.com/cosmosnicolaou/llog"
)

// InfoLog is the subset of Logger used for informational, non-fatal traces.
type InfoLog interface {
	// Info logs to the INFO log. Arguments are handled as with fmt.Print;
	// a newline is appended if missing.
	Info(args ...interface{})

	// Infof logs to the INFO log. Arguments are handled as with fmt.Printf;
	// a newline is appended if missing.
	Infof(format string, args ...interface{})
}

// Logger is implemented by every instance returned by NewLogger, and by the
// package-level default Log.
type Logger interface {
	InfoLog

	// Error logs to the ERROR and INFO logs.
	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	// Fatal logs to the FATAL, ERROR and INFO logs and, like llog's own
	// Fatal, may terminate the process. Kernel invariant violations that a
	// scenario runner needs to recover() from should go through package
	// diag instead, which logs at ERROR and panics rather than exiting.
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})

	// FlushLog flushes all pending log I/O.
	FlushLog()
}
