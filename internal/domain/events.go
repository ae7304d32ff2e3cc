package domain

type EventType int

const (
	EventDeath EventType = iota
	EventScore
	EventWin
)

func (t EventType) String() string {
	switch t {
	case EventDeath:
		return "death"
	case EventScore:
		return "score"
	case EventWin:
		return "win"
	}
	return "unknown"
}

// Event is one thing that happened to a snake during a tick.
type Event struct {
	Type    EventType
	SnakeID int32
	Score   int
	Cause   CellKind
}

type TickResult struct {
	Tick   int64
	Events []Event
	// Eaten holds consumed pellets, Spawned their replacements.
	Eaten   []Coord
	Spawned []Coord
}

func (r *TickResult) Deaths() []int32 {
	return r.ids(EventDeath)
}

func (r *TickResult) Winners() []int32 {
	return r.ids(EventWin)
}

func (r *TickResult) ScoreChanges() map[int32]int {
	changes := make(map[int32]int)
	for _, e := range r.Events {
		if e.Type == EventScore {
			changes[e.SnakeID] = e.Score
		}
	}
	return changes
}

func (r *TickResult) ids(t EventType) []int32 {
	out := make([]int32, 0)
	for _, e := range r.Events {
		if e.Type == t {
			out = append(out, e.SnakeID)
		}
	}
	return out
}
