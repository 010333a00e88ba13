package synch

import "github.com/steveyoo/threads/thread"

// Mailbox is a synchronous, zero-capacity rendezvous between senders and
// receivers (§3, §4.G): Send blocks until some Receive is ready to accept
// exactly the sent value, and vice versa. No message is ever buffered
// across a quiescent point (I-M1).
//
// The protocol below is the corrected variant from §4.G. The original
// Nachos Mailbox::Receive calls Wait a second time if no sender has yet
// arrived, after already having been signaled by a sender and having
// woken from its own Wait — under this protocol that second Wait is dead
// code that deadlocks if ever reached, since no corresponding Signal for
// it will come. It is deliberately not reproduced here.
type Mailbox struct {
	Name string

	gate           *Lock
	sendersReady   *Condition
	receiversReady *Condition

	pending        []int
	sendersCount   int
	receiversCount int
}

// NewMailbox constructs an empty mailbox with the given debug name.
func NewMailbox(name string) *Mailbox {
	return &Mailbox{
		Name:           name,
		gate:           NewLock(name + ".gate"),
		sendersReady:   NewCondition(name + ".sendersReady"),
		receiversReady: NewCondition(name + ".receiversReady"),
	}
}

// Send blocks self until a Receive accepts msg.
func (m *Mailbox) Send(self *thread.Thread, msg int) {
	m.gate.Acquire(self)
	m.sendersCount++
	for m.receiversCount == 0 {
		m.sendersReady.Wait(self, m.gate)
	}
	m.receiversCount--
	m.pending = append(m.pending, msg)
	m.receiversReady.Signal(self, m.gate)
	m.gate.Release(self)
}

// Receive blocks self until a Send offers a value, and returns it.
func (m *Mailbox) Receive(self *thread.Thread) int {
	m.gate.Acquire(self)
	m.receiversCount++
	m.sendersReady.Signal(self, m.gate)
	m.receiversReady.Wait(self, m.gate)
	m.sendersCount--
	out := m.pending[0]
	m.pending = m.pending[1:]
	m.gate.Release(self)
	return out
}

// Destroy tears the mailbox down. Calling it while any thread is inside
// Send or Receive is a program bug (§4.G); the underlying Lock and
// Condition destructors surface it via their own assertions.
func (m *Mailbox) Destroy() {
	m.sendersReady.Destroy()
	m.receiversReady.Destroy()
	m.gate.Destroy()
}
