package scheduler

import (
	"testing"

	"github.com/steveyoo/threads/thread"
)

// testContextSwitchCaseThree: a thread woken at a priority equal to the
// currently running thread preempts it; the preempted thread, once put
// back on the ready list, runs ahead of any same-priority thread that
// arrives afterward (§4.F).
func TestContextSwitchCaseThree(t *testing.T) {
	r := NewReadyList("ready")
	current := thread.New("current", 5)
	woken := thread.New("woken", 5)

	preempt := ReadyToRun(current, woken)
	if !preempt {
		t.Fatalf("equal-priority wakeup should preempt the running thread")
	}
	r.Put(current)

	late := thread.New("late", 5)
	r.Put(late)

	if got := r.Next(); got != current {
		t.Fatalf("Next() = %s, want current (preempted thread runs ahead of later same-priority arrivals)", got.Name)
	}
	if got := r.Next(); got != late {
		t.Fatalf("Next() = %s, want late", got.Name)
	}
}

func TestHigherPriorityPreempts(t *testing.T) {
	current := thread.New("current", 3)
	urgent := thread.New("urgent", 9)

	if !ReadyToRun(current, urgent) {
		t.Fatalf("strictly-higher-priority wakeup must preempt")
	}
}

func TestLowerPriorityDoesNotPreempt(t *testing.T) {
	current := thread.New("current", 9)
	lazy := thread.New("lazy", 1)

	if ReadyToRun(current, lazy) {
		t.Fatalf("strictly-lower-priority wakeup must not preempt")
	}
}

func TestNilCurrentNeverPreempts(t *testing.T) {
	woken := thread.New("woken", 100)
	if ReadyToRun(nil, woken) {
		t.Fatalf("with no current thread there is nothing to preempt")
	}
}

// testNoSort: a priority change on a thread already sitting on the ready
// list does not move it; the new priority only takes effect the next time
// the thread is inserted (§4.F).
func TestNoSort(t *testing.T) {
	r := NewReadyList("ready")
	first := thread.New("first", 2)
	second := thread.New("second", 2)
	r.Put(first)
	r.Put(second)

	second.SetPriority(50)

	if got := r.Next(); got != first {
		t.Fatalf("Next() = %s, want first (already-queued priority change must not reorder)", got.Name)
	}
	if got := r.Next(); got != second {
		t.Fatalf("Next() = %s, want second", got.Name)
	}
}
