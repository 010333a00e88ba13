package synch

import (
	"github.com/steveyoo/threads/diag"
	"github.com/steveyoo/threads/queue"
	"github.com/steveyoo/threads/scheduler"
	"github.com/steveyoo/threads/thread"
)

// Semaphore is a nonnegative counter with a blocking decrement (§3, §4.C).
type Semaphore struct {
	Name string

	gate    gate
	value   int
	waiters *queue.Queue
}

// NewSemaphore constructs a semaphore with the given debug name and
// initial value, which must be nonnegative.
func NewSemaphore(name string, initial int) *Semaphore {
	diag.Assert(initial >= 0, name, "semaphore constructed with negative initial value %d", initial)
	return &Semaphore{
		Name:    name,
		value:   initial,
		waiters: queue.New(name + ".waiters"),
	}
}

// P (acquire) blocks self until the semaphore's value is positive, then
// decrements it. Spurious wakeups cannot occur in this model, but the
// loop structure matches Lock.Acquire (§4.C).
func (s *Semaphore) P(self *thread.Thread) {
	s.gate.Lock()
	for s.value == 0 {
		s.waiters.Insert(self)
		self.Sleep(&s.gate)
	}
	s.value--
	s.gate.Unlock()
}

// V (release) increments the semaphore's value and, if a thread is
// waiting, hands it to the scheduler as runnable (§4.C). The woken thread
// consumes the increment on its own next loop iteration of P, so value is
// incremented unconditionally here regardless of whether a waiter was
// present.
func (s *Semaphore) V(self *thread.Thread) {
	s.gate.Lock()
	w := s.waiters.RemoveFront()
	s.value++
	var preempt bool
	if w != nil {
		preempt = scheduler.ReadyToRun(self, w)
		w.Wake()
	}
	s.gate.Unlock()
	scheduler.Yield(self, preempt)
}

// Value returns the semaphore's current count. Exposed for diagnostics and
// tests; the kernel proper only ever reads value() at a quiescent point.
func (s *Semaphore) Value() int {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.value
}

// Destroy asserts I-S1: a semaphore may only be torn down with no pending
// waiters.
func (s *Semaphore) Destroy() {
	s.gate.Lock()
	defer s.gate.Unlock()
	diag.Assert(s.waiters.IsEmpty(), s.Name, "destroyed with %d thread(s) still waiting", s.waiters.Len())
}
