package synch

import (
	"testing"
	"time"

	"github.com/steveyoo/threads/thread"
)

// Scenario 1, §8: semaphore ping-pong. A calls P, B calls V; A resumes and
// the semaphore is quiescent at 0 afterwards.
func TestSemaphorePingPong(t *testing.T) {
	s := NewSemaphore("s", 0)
	a := thread.New("A", 1)
	b := thread.New("B", 1)

	resumed := make(chan struct{})
	go func() {
		s.P(a)
		close(resumed)
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-resumed:
		t.Fatalf("A should still be blocked before B's V")
	default:
	}

	s.V(b)

	select {
	case <-resumed:
	case <-time.After(time.Second):
		t.Fatalf("A never resumed after V")
	}

	if got := s.Value(); got != 0 {
		t.Fatalf("s.Value() = %d, want 0", got)
	}
}

// Law, §8: semaphore counting. k Vs and j Ps with k >= j on a semaphore
// starting at 0 with no external waiters leaves value == k - j, and every
// P returns.
func TestSemaphoreCounting(t *testing.T) {
	s := NewSemaphore("s", 0)
	self := thread.New("t", 1)

	const k, j = 7, 4
	for i := 0; i < k; i++ {
		s.V(self)
	}
	for i := 0; i < j; i++ {
		s.P(self)
	}
	if got := s.Value(); got != k-j {
		t.Fatalf("s.Value() = %d, want %d", got, k-j)
	}
}

func TestSemaphoreDestroyWithWaitersPanics(t *testing.T) {
	s := NewSemaphore("s", 0)
	a := thread.New("A", 1)
	go s.P(a)
	time.Sleep(10 * time.Millisecond)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic destroying a semaphore with a waiter")
		}
	}()
	s.Destroy()
}

func TestSemaphoreRejectsNegativeInitialValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic constructing a semaphore with a negative initial value")
		}
	}()
	NewSemaphore("s", -1)
}
