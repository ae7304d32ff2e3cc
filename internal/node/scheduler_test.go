package node

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	record := func(name string) func() { return func() { order = append(order, name) } }

	s.After(3*time.Second, "c", nil, record("c"))
	s.After(1*time.Second, "a", nil, record("a"))
	s.After(2*time.Second, "b1", nil, record("b1"))
	s.After(2*time.Second, "b2", nil, record("b2"))

	if fired := s.Advance(500 * time.Millisecond); len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}
	fired := s.Advance(2 * time.Second)
	if want := []string{"a", "b1", "b2"}; !reflect.DeepEqual(fired, want) || !reflect.DeepEqual(order, want) {
		t.Fatalf("fired %v order %v, want %v", fired, order, want)
	}
	if s.Pending() != 1 {
		t.Errorf("pending = %d", s.Pending())
	}
	s.Advance(time.Second)
	if len(order) != 4 || order[3] != "c" {
		t.Errorf("order = %v", order)
	}
}

func TestSchedulerGuard(t *testing.T) {
	s := NewScheduler()
	allowed := false
	fired, skipped := 0, 0

	s.Schedule(&ScheduledEvent{
		At:    time.Second,
		Name:  "guarded",
		Guard: func() bool { return allowed },
		Fire:  func() { fired++ },
		Else:  func() { skipped++ },
	})
	s.Advance(2 * time.Second)

	if fired != 0 || skipped != 1 {
		t.Fatalf("fired=%d skipped=%d", fired, skipped)
	}
	if s.Pending() != 0 {
		t.Error("a failed guard should drop the event")
	}

	allowed = true
	s.After(time.Second, "guarded", func() bool { return allowed }, func() { fired++ })
	s.Advance(time.Second)
	if fired != 1 {
		t.Errorf("fired=%d", fired)
	}
}

func TestSchedulerChaining(t *testing.T) {
	s := NewScheduler()
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			s.After(time.Second, "again", nil, again)
		}
	}
	s.After(time.Second, "again", nil, again)

	s.Advance(10 * time.Second)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	ran := false
	s.After(time.Second, "x", nil, func() { ran = true })
	s.Advance(500 * time.Millisecond)
	s.Clear()

	if s.Pending() != 0 || s.Now() != 0 {
		t.Fatalf("pending=%d now=%v", s.Pending(), s.Now())
	}
	s.Advance(5 * time.Second)
	if ran {
		t.Error("cleared event ran")
	}
}
