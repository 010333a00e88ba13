// Package queue implements the priority-ordered wait list shared by every
// blocking primitive in this module (semaphores, locks, condition
// variables, mailboxes, and the scheduler's own ready list, §4.B). It is
// grounded on the container/heap priority queue pattern used for
// weight-ordered waiters elsewhere in the corpus (a semaphore.priorityQueue
// of *request entries, ordered by weight with a heap index field for
// bookkeeping), adapted here to hold *thread.Thread entries ordered by
// priority-then-arrival.
//
// A thread's priority is captured at Insert time and never revisited: a
// later SetPriority on a thread already sitting in the queue does not
// reorder it (§4.F, testNoSort). Within equal priority, FIFO order among
// arrivals is preserved by a monotonically increasing sequence number,
// exactly as Nachos' SortedList breaks ties on insertion order.
package queue

import (
	"container/heap"
	"sync"

	"github.com/steveyoo/threads/diag"
	"github.com/steveyoo/threads/thread"
)

// entry is one waiter linked into the queue: the thread itself plus the
// priority and arrival sequence snapshotted when it was inserted.
type entry struct {
	t        *thread.Thread
	priority int
	seq      uint64
	index    int // heap bookkeeping, maintained by container/heap
}

// heapSlice implements heap.Interface over entries, higher priority first,
// and lower sequence number (earlier arrival) breaking ties.
type heapSlice []*entry

func (h heapSlice) Len() int { return len(h) }

func (h heapSlice) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h heapSlice) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *heapSlice) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is a priority-ordered FIFO-within-priority wait list. It is not
// itself safe for concurrent use across goroutines without an external
// gate: callers hold the owning primitive's gate mutex around every
// Insert/RemoveFront/Len/IsEmpty, exactly as they hold it around
// every other mutation of the primitive's state (§4.A).
type Queue struct {
	Name string

	h    heapSlice
	next uint64

	// Insert passes the *Queue itself to thread.MarkQueued as this queue's
	// identity; an I-Q1 violation is reported under the Name of the queue
	// being inserted into.
}

// New creates an empty, named wait queue. name is used only for
// diagnostics (violated invariants, logging).
func New(name string) *Queue {
	return &Queue{Name: name}
}

// Len reports the number of waiters currently queued.
func (q *Queue) Len() int { return len(q.h) }

// IsEmpty reports whether the queue has no waiters.
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }

// Insert links t onto the queue at a position determined by t's priority
// at this moment and arrival order, enforcing I-Q1: a thread already
// linked onto some wait queue may not be inserted onto another (or the
// same) queue concurrently.
func (q *Queue) Insert(t *thread.Thread) {
	diag.Assert(t.MarkQueued(q), q.Name, "thread %s inserted while already on a wait queue", t.Name)
	e := &entry{t: t, priority: t.Priority(), seq: q.next}
	q.next++
	heap.Push(&q.h, e)
}

// RemoveFront removes and returns the highest-priority (earliest-arrived,
// among ties) waiter, or nil if the queue is empty.
func (q *Queue) RemoveFront() *thread.Thread {
	if q.IsEmpty() {
		return nil
	}
	e := heap.Pop(&q.h).(*entry)
	e.t.MarkDequeued()
	return e.t
}

// Gate is a convenience alias documenting that callers are expected to
// hold a *sync.Mutex (the owning primitive's gate, §4.A) around every
// Queue method call; Queue itself holds no lock.
type Gate = sync.Mutex
