// Package scheduler implements the ready list and preemption policy of
// §4.F: when a thread becomes runnable, ReadyToRun decides whether it
// should preempt whoever is currently running, or simply wait its turn.
//
// This module does not attempt to replace the Go runtime's own
// (preemptive, multi-core) goroutine scheduler with a real dispatcher —
// doing so would mean reimplementing context switching, which Go gives
// every goroutine for free. ReadyToRun is therefore kept as the pure
// decision policy the original kernel documents: it consults only the
// two threads' priorities and never touches any wait queue. Actual
// suspension and wakeup between goroutines is handled entirely by
// thread.Thread's own wake channel (Sleep/Wake); a thread woken by a V,
// Release, or Signal becomes runnable the moment Wake is called, not by
// being inserted into some list this package drains.
//
// ReadyList remains as a standalone priority-ordered list for callers
// that want one explicitly — a scenario that forks a batch of threads
// and drains them in priority order, for instance. Package synch never
// touches a ReadyList: every primitive calls only the free functions
// ReadyToRun and Yield.
package scheduler

import (
	"sync"

	"github.com/steveyoo/threads/queue"
	"github.com/steveyoo/threads/thread"
)

// ReadyList is a priority-ordered list of threads that are runnable but
// not currently running, guarded by its own gate (§4.A).
type ReadyList struct {
	gate sync.Mutex
	q    *queue.Queue
}

// NewReadyList creates an empty ready list.
func NewReadyList(name string) *ReadyList {
	return &ReadyList{q: queue.New(name)}
}

// Put inserts t into the ready list in priority order, after any queued
// threads of equal priority.
func (r *ReadyList) Put(t *thread.Thread) {
	r.gate.Lock()
	defer r.gate.Unlock()
	r.q.Insert(t)
}

// Next removes and returns the next thread to run, or nil if the ready
// list is empty.
func (r *ReadyList) Next() *thread.Thread {
	r.gate.Lock()
	defer r.gate.Unlock()
	return r.q.RemoveFront()
}

// Len reports how many threads are waiting to run.
func (r *ReadyList) Len() int {
	r.gate.Lock()
	defer r.gate.Unlock()
	return r.q.Len()
}

// ReadyToRun reports whether current — the thread asking the question,
// typically the one that just woke t via a V, Release, or Signal —
// should yield to t.
//
// The policy (§4.F): t preempts current when t's priority is greater than
// or equal to current's. This includes the equal-priority case
// deliberately: a freshly-woken thread of the same priority as the
// runner that woke it should still get a chance to run before the runner
// continues, matching testContextSwitchCaseThree. ReadyToRun is a pure
// comparison and never enqueues t anywhere: by the time a caller asks
// this question, t has already been dequeued from whatever wait queue it
// was blocking on (via RemoveFront) and is about to be made runnable
// directly by Wake. There is no ready list in that path for this
// function to insert t onto or for anything else to drain.
func ReadyToRun(current, t *thread.Thread) (preemptCurrent bool) {
	if current == nil {
		return false
	}
	return t.Priority() >= current.Priority()
}

// Yield cooperatively gives up the CPU when preempt is true — the
// outcome of a prior ReadyToRun call reporting that the thread just
// woken should run ahead of current. It does not enqueue current
// anywhere first: current was never taken off a run queue to begin
// with, so yielding here only asks the Go runtime for a reschedule,
// exactly the hint thread.Thread.Yield gives via runtime.Gosched.
func Yield(current *thread.Thread, preempt bool) {
	if !preempt {
		return
	}
	current.Yield()
}
