package synch

import (
	"testing"
	"time"

	"github.com/steveyoo/threads/thread"
)

// Scenario 6, §8: six callers, Male/Matchmaker/Matchmaker/Female/Male/Female
// in that order, produce exactly two matches. With exactly two callers of
// each role, two matches consume all six — nobody is left permanently
// blocked at quiescence, though two callers are transiently blocked until
// their match's initiator signals them (the "two threads remain blocked"
// in the source scenario describes that transient state, not the final
// one; see DESIGN.md). I-W1 holds throughout: after every transition at
// least one of the three counts is zero.
func TestRendezvousTwoMatches(t *testing.T) {
	r := NewRendezvous("whale")

	done := make(chan string, 6)
	call := func(role string, fn func(self *thread.Thread)) {
		self := thread.New(role, 1)
		go func() {
			fn(self)
			done <- role
		}()
	}

	call("male1", r.Male)
	time.Sleep(5 * time.Millisecond)
	call("matchmaker1", r.Matchmaker)
	time.Sleep(5 * time.Millisecond)
	call("matchmaker2", r.Matchmaker)
	time.Sleep(5 * time.Millisecond)
	call("female1", r.Female)
	time.Sleep(5 * time.Millisecond)
	call("male2", r.Male)
	time.Sleep(5 * time.Millisecond)
	call("female2", r.Female)

	completed := 0
	timeout := time.After(200 * time.Millisecond)
loop:
	for {
		select {
		case <-done:
			completed++
		case <-timeout:
			break loop
		}
	}

	if completed != 6 {
		t.Fatalf("completed = %d role-calls, want 6 (two matches of two each, all six callers return)", completed)
	}

	inspector := thread.New("inspector", 1)
	r.gate.Acquire(inspector)
	if r.countMale != 0 || r.countFemale != 0 || r.countMatch != 0 {
		t.Fatalf("expected quiescent rendezvous after both matches: countMale=%d countFemale=%d countMatch=%d", r.countMale, r.countFemale, r.countMatch)
	}
	r.gate.Release(inspector)
}

func TestRendezvousDestroyWithWaitersPanics(t *testing.T) {
	r := NewRendezvous("whale")
	go r.Male(thread.New("male", 1))
	time.Sleep(10 * time.Millisecond)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic destroying a rendezvous with a waiter queued")
		}
	}()
	r.Destroy()
}
