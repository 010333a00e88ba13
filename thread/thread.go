// Package thread is the minimal stand-in for the kernel's thread object:
// a stack, saved registers, and the Fork/Yield/Sleep/Finish/Join contract
// that the rest of this module treats as an external collaborator (§1, §6).
// None of the scheduling or dispatch machinery a real kernel would need
// lives here; a goroutine already has its own stack and its own scheduler,
// so Thread only needs to supply what the synchronization primitives
// actually touch: a debug name, a priority, and the one true suspension
// point, Sleep, through which every blocking primitive in this module
// parks and wakes threads.
//
// Every operation in package synch takes the calling Thread as an explicit
// first argument rather than consulting a hidden "currentThread" global:
// Go has no goroutine-local storage, and threading the caller through
// explicitly is both the idiomatic and the only race-free option.
package thread

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Thread is a cooperatively-scheduled unit of execution hosted on a
// goroutine. The zero value is not usable; construct one with New or Fork.
type Thread struct {
	Name string

	priority atomic.Int64

	// wake is the binary semaphore a thread parks on inside Sleep, and
	// that some other thread signals via Wake once it has been dequeued
	// from a wait list and handed to the scheduler (ReadyToRun). A
	// buffered channel of size 1 plays the same role as the
	// waiter.sem binary semaphore used by nsync's Mu/CV (v.io/x/lib/nsync):
	// Wake never blocks, and a Wake that arrives before the matching Sleep
	// is not lost.
	wake chan struct{}

	// queuedOn records, by identity, which wait queue this thread is
	// currently linked into, or nil if none. It enforces I-Q1 ("a thread
	// is on at most one wait queue at a time") across every Semaphore,
	// Lock, Condition and the ready list, all of which share package
	// queue's implementation.
	queuedMu sync.Mutex
	queuedOn interface{}

	done chan struct{}
}

// New returns a new, un-forked Thread with the given debug name and
// priority. Most callers want Fork instead.
func New(name string, priority int) *Thread {
	t := &Thread{
		Name: name,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	t.priority.Store(int64(priority))
	return t
}

// Fork creates a new Thread and starts entry running on it, on its own
// goroutine, returning immediately to the caller — exactly as Nachos'
// Thread::Fork hands a freshly allocated stack to the scheduler without
// waiting for it to run (§6).
func Fork(name string, priority int, entry func(self *Thread)) *Thread {
	t := New(name, priority)
	go func() {
		entry(t)
		t.Finish()
	}()
	return t
}

// Priority returns the thread's current priority. Larger is more urgent.
func (t *Thread) Priority() int {
	return int(t.priority.Load())
}

// SetPriority changes the thread's priority. Per §4.F (testNoSort), this
// does not reorder any wait queue the thread is already enqueued on — each
// queue snapshots a thread's priority at the moment of Insert.
func (t *Thread) SetPriority(p int) {
	t.priority.Store(int64(p))
}

func (t *Thread) String() string { return t.Name }

// Sleep is the single documented suspension point (§5): the caller must
// already hold gate, the mutex guarding the primitive the thread just
// enqueued itself on. Sleep releases gate, blocks until some other thread
// calls Wake, and reacquires gate before returning — the goroutine-hosted
// equivalent of "Sleep assumes interrupts are disabled, and returns with
// them still disabled".
func (t *Thread) Sleep(gate *sync.Mutex) {
	gate.Unlock()
	<-t.wake
	gate.Lock()
}

// Wake makes t runnable. It is called by whichever thread dequeued t from
// a wait list and handed it to the scheduler (scheduler.ReadyToRun); it
// never blocks, since wake is a single-slot binary semaphore and a thread
// can only ever be woken once between sleeps.
func (t *Thread) Wake() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

// Yield voluntarily gives up the CPU so another runnable thread may run.
// On a real uniprocessor kernel this re-enters the dispatcher; here it
// simply asks the Go runtime to reschedule goroutines.
func (t *Thread) Yield() {
	runtime.Gosched()
}

// Finish marks the thread as exited, releasing anyone blocked in Join.
// It is idempotent.
func (t *Thread) Finish() {
	select {
	case <-t.done:
	default:
		close(t.done)
	}
}

// Join blocks until t has Finished.
func (t *Thread) Join() {
	<-t.done
}

// MarkQueued records that t has been linked onto the wait queue identified
// by owner (typically a *queue.Queue, passed as any to avoid an import
// cycle between packages thread and queue). It reports false — a
// diagnosable I-Q1 violation — if t was already linked onto some queue.
func (t *Thread) MarkQueued(owner interface{}) bool {
	t.queuedMu.Lock()
	defer t.queuedMu.Unlock()
	if t.queuedOn != nil {
		return false
	}
	t.queuedOn = owner
	return true
}

// MarkDequeued clears the bookkeeping set by MarkQueued.
func (t *Thread) MarkDequeued() {
	t.queuedMu.Lock()
	defer t.queuedMu.Unlock()
	t.queuedOn = nil
}
