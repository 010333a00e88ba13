// Package diag implements the assertion and tracing discipline shared by
// every synchronization primitive in this module: every primitive carries a
// debug name fixed at construction (synch.NewLock("fileTableLock"), and so
// on), and every invariant violation aborts with that name and the violated
// predicate rather than returning an error, matching the pedagogical,
// fail-fast style of the kernel this module implements.
//
// Violation panics instead of calling os.Exit so that a scenario runner (or
// a test) can recover() around a single misbehaving scenario without taking
// down the whole harness, while an uncaught Violation still crashes the
// program exactly as a C-style assert() would.
package diag

import (
	"fmt"

	"github.com/steveyoo/threads/vlog"
)

// Violation records a fatal invariant violation against the named primitive
// and panics. format/args describe the violated predicate.
func Violation(name, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	vlog.Log.Errorf("%s: %s", name, msg)
	panic(fmt.Sprintf("%s: %s", name, msg))
}

// Assert calls Violation unless cond holds.
func Assert(cond bool, name, format string, args ...interface{}) {
	if !cond {
		Violation(name, format, args...)
	}
}

// NoWaiters emits the informational, non-fatal trace required when Signal
// or Broadcast is called on a condition variable with no waiters (§4.E,
// §7 kind 4): this is diagnostic only and must never abort.
func NoWaiters(name, op string) {
	vlog.Log.Infof("%s: %s called with no waiters", name, op)
}
