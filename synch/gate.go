// Package synch implements the synchronization primitives proper: the
// counting semaphore, the owner-tracked lock, the Mesa-style condition
// variable, the synchronous mailbox, and the three-party rendezvous
// (§4.C–§4.H). Every primitive follows the same shape: a debug name fixed
// at construction, a gate guarding its metadata, and a priority wait queue
// (package queue) of blocked threads.
package synch

import "sync"

// gate is the concrete, goroutine-hosted stand-in for "mask preemption"
// (§4.A, §5's port note): the reference kernel has exactly one atomic
// primitive, a global interrupt mask, which every primitive operation
// takes for its entire body. On a preemptively multithreaded host that
// mask is replaced by a per-primitive spinlock covering the same
// regions — here, an ordinary *sync.Mutex — and thread.Sleep plays the
// role of "park with the gate held, released across the park".
//
// The one operation that does not hold a single gate for its entire body
// is Condition.Wait, which must release a second primitive's gate (the
// associated Lock) before blocking; see cond.go.
type gate = sync.Mutex
