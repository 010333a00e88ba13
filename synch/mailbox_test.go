package synch

import (
	"testing"
	"time"

	"github.com/steveyoo/threads/thread"
)

// Scenario 4, §8: Send-then-receive. A sends 12; B receives and observes
// 12; the mailbox ends quiescent.
func TestMailboxSendThenReceive(t *testing.T) {
	m := NewMailbox("m")
	a := thread.New("A", 2)
	b := thread.New("B", 1)

	go m.Send(a, 12)
	time.Sleep(10 * time.Millisecond)

	got := make(chan int, 1)
	go func() { got <- m.Receive(b) }()

	select {
	case v := <-got:
		if v != 12 {
			t.Fatalf("Receive() = %d, want 12", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("Receive never returned")
	}

	if len(m.pending) != 0 {
		t.Fatalf("mailbox not quiescent: pending = %v", m.pending)
	}
}

// Scenario 5, §8: Receive-then-send. A receives first and blocks; B
// sends 24; A resumes with 24.
func TestMailboxReceiveThenSend(t *testing.T) {
	m := NewMailbox("m")
	a := thread.New("A", 2)
	b := thread.New("B", 1)

	got := make(chan int, 1)
	go func() { got <- m.Receive(a) }()
	time.Sleep(10 * time.Millisecond)

	m.Send(b, 24)

	select {
	case v := <-got:
		if v != 24 {
			t.Fatalf("Receive() = %d, want 24", v)
		}
	case <-time.After(time.Second):
		t.Fatalf("Receive never returned")
	}
}

// Law, §8: mailbox pairing. With S senders and R receivers (R < S), R
// distinct sent values are delivered, one per receiver. The senders start
// concurrently, so their send order is not fixed and is not checked here.
func TestMailboxPairing(t *testing.T) {
	m := NewMailbox("m")
	const s, r = 5, 3

	for i := 0; i < s; i++ {
		v := i
		go m.Send(thread.New("sender", 1), v)
	}

	results := make(chan int, r)
	for i := 0; i < r; i++ {
		go func() {
			results <- m.Receive(thread.New("receiver", 1))
		}()
	}

	seen := map[int]bool{}
	for i := 0; i < r; i++ {
		select {
		case v := <-results:
			if v < 0 || v >= s {
				t.Fatalf("received out-of-range value %d", v)
			}
			if seen[v] {
				t.Fatalf("value %d delivered twice", v)
			}
			seen[v] = true
		case <-time.After(time.Second):
			t.Fatalf("not all receivers completed")
		}
	}
	if len(seen) != r {
		t.Fatalf("delivered %d distinct messages, want %d", len(seen), r)
	}
}
