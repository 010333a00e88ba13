package synch

import (
	"github.com/steveyoo/threads/diag"
	"github.com/steveyoo/threads/queue"
	"github.com/steveyoo/threads/scheduler"
	"github.com/steveyoo/threads/thread"
)

// Condition is a Mesa-style condition variable (§3, §4.E): Signal makes a
// waiter runnable but does not transfer the lock or guarantee it runs
// before some other thread reacquires the lock first. Callers of Wait
// must therefore re-check their predicate in a loop; that contract binds
// the caller, not this type.
//
// A Condition is not bound to a Lock at construction; every Wait names
// the Lock it is waiting with respect to, and all concurrent waiters on a
// given Condition must name the same Lock (I-C1) — Wait/Signal/Broadcast
// do not check this across calls, since doing so would require tracking
// lock identity across waiters for no benefit the caller doesn't already
// provide by construction.
type Condition struct {
	Name string

	gate    gate
	waiters *queue.Queue
}

// NewCondition constructs an empty condition variable with the given
// debug name.
func NewCondition(name string) *Condition {
	return &Condition{Name: name, waiters: queue.New(name + ".waiters")}
}

// Wait releases l, blocks self until signaled, and reacquires l before
// returning (I-C3: l must be held by self on entry). The lock is held
// across the suspension boundary from the caller's point of view: by the
// time Wait returns, l is held again, even though it was released for the
// duration of the sleep.
func (c *Condition) Wait(self *thread.Thread, l *Lock) {
	diag.Assert(l.IsHeldByCurrentThread(self), c.Name, "Wait called by %s without holding %s", self.Name, l.Name)

	c.gate.Lock()
	l.Release(self)
	c.waiters.Insert(self)
	self.Sleep(&c.gate)
	c.gate.Unlock()

	l.Acquire(self)
}

// Signal wakes the single highest-priority waiter, if any. A Signal on an
// empty Condition is not a caller bug (§7 kind 4): it emits an
// informational trace and returns, and does not require l to be held.
func (c *Condition) Signal(self *thread.Thread, l *Lock) {
	c.gate.Lock()

	if c.waiters.IsEmpty() {
		c.gate.Unlock()
		diag.NoWaiters(c.Name, "Signal")
		return
	}

	diag.Assert(l.IsHeldByCurrentThread(self), c.Name, "Signal called by %s without holding %s", self.Name, l.Name)

	w := c.waiters.RemoveFront()
	preempt := scheduler.ReadyToRun(self, w)
	w.Wake()
	c.gate.Unlock()
	scheduler.Yield(self, preempt)
}

// Broadcast wakes every waiter, highest priority first. Like Signal, a
// Broadcast on an empty Condition is diagnostic-only, not a caller bug.
func (c *Condition) Broadcast(self *thread.Thread, l *Lock) {
	c.gate.Lock()

	if c.waiters.IsEmpty() {
		c.gate.Unlock()
		diag.NoWaiters(c.Name, "Broadcast")
		return
	}

	diag.Assert(l.IsHeldByCurrentThread(self), c.Name, "Broadcast called by %s without holding %s", self.Name, l.Name)

	preempt := false
	for {
		w := c.waiters.RemoveFront()
		if w == nil {
			break
		}
		if scheduler.ReadyToRun(self, w) {
			preempt = true
		}
		w.Wake()
	}
	c.gate.Unlock()
	scheduler.Yield(self, preempt)
}

// Destroy asserts I-C2: a condition variable may only be torn down with no
// pending waiters.
func (c *Condition) Destroy() {
	c.gate.Lock()
	defer c.gate.Unlock()
	diag.Assert(c.waiters.IsEmpty(), c.Name, "destroyed with %d thread(s) still waiting", c.waiters.Len())
}
