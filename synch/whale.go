package synch

import "github.com/steveyoo/threads/thread"

// Rendezvous is the three-party "whale mating" barrier (§3, §4.H): a
// match requires exactly one Male, one Female, and one Matchmaker caller
// present at the same time. Whichever of the three arrives last performs
// all of the accounting and wakes the other two; the two it wakes must
// not re-check or re-decrement anything on the way out, since the
// arriving thread already consumed the match on their behalf. Getting
// this asymmetry backwards is the most common bug in a rendezvous of this
// shape.
type Rendezvous struct {
	Name string

	gate       *Lock
	waitMale   *Condition
	waitFemale *Condition
	waitMatch  *Condition

	countMale   int
	countFemale int
	countMatch  int
}

// NewRendezvous constructs an empty three-party rendezvous with the given
// debug name.
func NewRendezvous(name string) *Rendezvous {
	return &Rendezvous{
		Name:       name,
		gate:       NewLock(name + ".gate"),
		waitMale:   NewCondition(name + ".waitMale"),
		waitFemale: NewCondition(name + ".waitFemale"),
		waitMatch:  NewCondition(name + ".waitMatch"),
	}
}

// Male blocks self until paired with one Female and one Matchmaker.
func (r *Rendezvous) Male(self *thread.Thread) {
	r.gate.Acquire(self)
	r.countMale++
	if r.countFemale > 0 && r.countMatch > 0 {
		r.countMale--
		r.countFemale--
		r.countMatch--
		r.waitFemale.Signal(self, r.gate)
		r.waitMatch.Signal(self, r.gate)
	} else {
		r.waitMale.Wait(self, r.gate)
	}
	r.gate.Release(self)
}

// Female blocks self until paired with one Male and one Matchmaker.
func (r *Rendezvous) Female(self *thread.Thread) {
	r.gate.Acquire(self)
	r.countFemale++
	if r.countMale > 0 && r.countMatch > 0 {
		r.countFemale--
		r.countMale--
		r.countMatch--
		r.waitMale.Signal(self, r.gate)
		r.waitMatch.Signal(self, r.gate)
	} else {
		r.waitFemale.Wait(self, r.gate)
	}
	r.gate.Release(self)
}

// Matchmaker blocks self until paired with one Male and one Female.
func (r *Rendezvous) Matchmaker(self *thread.Thread) {
	r.gate.Acquire(self)
	r.countMatch++
	if r.countMale > 0 && r.countFemale > 0 {
		r.countMatch--
		r.countMale--
		r.countFemale--
		r.waitMale.Signal(self, r.gate)
		r.waitFemale.Signal(self, r.gate)
	} else {
		r.waitMatch.Wait(self, r.gate)
	}
	r.gate.Release(self)
}

// Destroy tears the rendezvous down; the underlying Lock and Condition
// destructors assert that no thread is still waiting.
func (r *Rendezvous) Destroy() {
	r.waitMale.Destroy()
	r.waitFemale.Destroy()
	r.waitMatch.Destroy()
	r.gate.Destroy()
}
