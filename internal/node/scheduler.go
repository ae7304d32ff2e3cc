package node

import (
	"container/heap"
	"time"
)

// ScheduledEvent runs Fire once the scheduler clock reaches At and Guard
// still holds. When the guard fails Else runs instead, if set.
type ScheduledEvent struct {
	At    time.Duration
	Name  string
	Guard func() bool
	Fire  func()
	Else  func()

	seq uint64
}

type eventQueue []*ScheduledEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].At != q[j].At {
		return q[i].At < q[j].At
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) {
	*q = append(*q, x.(*ScheduledEvent))
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Scheduler is a queue of delayed events driven by an explicit clock.
// The clock only moves on Advance, so a caller that stops advancing
// (a paused game) postpones everything pending.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue eventQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{queue: make(eventQueue, 0)}
}

func (s *Scheduler) Now() time.Duration {
	return s.now
}

func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After queues fire to run delay from now. guard may be nil.
func (s *Scheduler) After(delay time.Duration, name string, guard func() bool, fire func()) *ScheduledEvent {
	ev := &ScheduledEvent{At: s.now + delay, Name: name, Guard: guard, Fire: fire}
	s.Schedule(ev)
	return ev
}

func (s *Scheduler) Schedule(ev *ScheduledEvent) {
	s.seq++
	ev.seq = s.seq
	heap.Push(&s.queue, ev)
}

// Advance moves the clock by d and runs every due event in order. While an
// event runs the clock reads its due time, so delays chained from it are
// relative to that.
// It returns the names of the events whose Fire ran.
func (s *Scheduler) Advance(d time.Duration) []string {
	target := s.now + d
	defer func() { s.now = target }()

	fired := make([]string, 0)
	for len(s.queue) > 0 && s.queue[0].At <= target {
		ev := heap.Pop(&s.queue).(*ScheduledEvent)
		if ev.At > s.now {
			s.now = ev.At
		}
		if ev.Guard == nil || ev.Guard() {
			if ev.Fire != nil {
				ev.Fire()
			}
			fired = append(fired, ev.Name)
			continue
		}
		if ev.Else != nil {
			ev.Else()
		}
	}
	return fired
}

// Clear drops every pending event and rewinds the clock.
func (s *Scheduler) Clear() {
	s.queue = make(eventQueue, 0)
	s.now = 0
}
