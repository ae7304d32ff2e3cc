package node

import (
	"snakebattle/internal/domain"
)

type EventType int

const (
	EventStateUpdated EventType = iota
	EventPhaseChanged
	EventSnakeDied
	EventScored
	EventWin
	EventRespawned
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventStateUpdated:
		return "state_updated"
	case EventPhaseChanged:
		return "phase_changed"
	case EventSnakeDied:
		return "snake_died"
	case EventScored:
		return "scored"
	case EventWin:
		return "win"
	case EventRespawned:
		return "respawned"
	case EventError:
		return "error"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Payload interface{}
}

type PhasePayload struct {
	From Phase
	To   Phase
	// Winner is the snake that ended the round, -1 if none.
	Winner int32
}

type SnakePayload struct {
	SnakeID int32
	Player  bool
	Score   int
	Cause   domain.CellKind
}

type ErrorPayload struct {
	Message string
}
