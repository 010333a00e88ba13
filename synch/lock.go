package synch

import (
	"github.com/steveyoo/threads/diag"
	"github.com/steveyoo/threads/queue"
	"github.com/steveyoo/threads/scheduler"
	"github.com/steveyoo/threads/thread"
)

// Lock is an owner-tracked mutual-exclusion lock (§3, §4.D). It is not
// reentrant: a thread that already holds the lock and calls Acquire again
// deadlocks itself by contract (§7 kind 3), and that bug is caught up
// front rather than allowed to hang silently.
type Lock struct {
	Name string

	gate    gate
	held    bool
	owner   *thread.Thread
	waiters *queue.Queue
}

// NewLock constructs a free lock with the given debug name.
func NewLock(name string) *Lock {
	return &Lock{Name: name, waiters: queue.New(name + ".waiters")}
}

// Acquire blocks self until the lock is free, then takes it.
func (l *Lock) Acquire(self *thread.Thread) {
	l.gate.Lock()
	defer l.gate.Unlock()

	diag.Assert(!(l.held && l.owner == self), l.Name, "Acquire called by %s, which already holds this lock", self.Name)

	for l.held {
		l.waiters.Insert(self)
		self.Sleep(&l.gate)
	}
	l.held = true
	l.owner = self
}

// Release gives up the lock, which self must currently hold (I-L1, §7
// kind 1 and kind 5). If a thread is waiting, it is handed to the
// scheduler; it will re-contend for the lock via the same loop in
// Acquire, not be handed ownership directly.
func (l *Lock) Release(self *thread.Thread) {
	l.gate.Lock()

	diag.Assert(l.held && l.owner == self, l.Name, "Release called by %s, which does not hold this lock", self.Name)

	w := l.waiters.RemoveFront()
	l.owner = nil
	l.held = false

	var preempt bool
	if w != nil {
		preempt = scheduler.ReadyToRun(self, w)
		w.Wake()
	}
	l.gate.Unlock()
	scheduler.Yield(self, preempt)
}

// IsHeldByCurrentThread reports whether self currently owns the lock.
func (l *Lock) IsHeldByCurrentThread(self *thread.Thread) bool {
	l.gate.Lock()
	defer l.gate.Unlock()
	return l.held && l.owner == self
}

// Destroy asserts I-L2: a lock may only be torn down when free and with
// no pending waiters.
func (l *Lock) Destroy() {
	l.gate.Lock()
	defer l.gate.Unlock()
	diag.Assert(!l.held, l.Name, "destroyed while held by %s", l.owner)
	diag.Assert(l.waiters.IsEmpty(), l.Name, "destroyed with %d thread(s) still waiting", l.waiters.Len())
}
