package thread

import (
	"sync"
	"testing"
	"time"
)

func TestSleepWake(t *testing.T) {
	th := New("t", 1)
	var gate sync.Mutex

	woken := make(chan struct{})
	gate.Lock()
	go func() {
		th.Sleep(&gate)
		close(woken)
	}()

	time.Sleep(10 * time.Millisecond)
	select {
	case <-woken:
		t.Fatalf("thread should still be asleep")
	default:
	}

	th.Wake()
	select {
	case <-woken:
	case <-time.After(time.Second):
		t.Fatalf("thread never woke")
	}
	gate.Unlock()
}

func TestPriority(t *testing.T) {
	th := New("t", 5)
	if th.Priority() != 5 {
		t.Fatalf("Priority() = %d, want 5", th.Priority())
	}
	th.SetPriority(9)
	if th.Priority() != 9 {
		t.Fatalf("Priority() = %d, want 9", th.Priority())
	}
}

func TestForkAndJoin(t *testing.T) {
	ran := false
	th := Fork("worker", 1, func(self *Thread) {
		ran = true
	})
	th.Join()
	if !ran {
		t.Fatalf("forked entry never ran")
	}
}

func TestMarkQueuedEnforcesI_Q1(t *testing.T) {
	th := New("t", 1)
	if !th.MarkQueued("queueA") {
		t.Fatalf("first MarkQueued should succeed")
	}
	if th.MarkQueued("queueB") {
		t.Fatalf("second MarkQueued before a MarkDequeued should fail (I-Q1)")
	}
	th.MarkDequeued()
	if !th.MarkQueued("queueB") {
		t.Fatalf("MarkQueued after MarkDequeued should succeed")
	}
}
