package domain

import (
	"github.com/go-kit/log/level"
)

type plannedMove struct {
	snake *Snake
	head  Coord
	kind  CellKind
}

// Tick advances the simulation by one step. playerDir is the buffered
// input for the player snake; DirectionNone keeps its heading.
//
// Every living snake decides and is classified against the board as it
// was when the tick started. Moves are then applied in id order.
func (s *SimulationState) Tick(playerDir Direction) *TickResult {
	s.TickCount++
	result := &TickResult{
		Tick:    s.TickCount,
		Events:  make([]Event, 0),
		Eaten:   make([]Coord, 0),
		Spawned: make([]Coord, 0),
	}

	if player := s.Player(); player != nil && player.Alive && playerDir != DirectionNone {
		player.SetDirection(playerDir)
	}

	resolver := NewCollisionResolver(s.Field, s.Snakes, s.Foods, s.Walls)
	mistake := s.Settings.Profile().MistakeChance

	for _, snake := range s.Snakes {
		if !snake.Alive || snake.IsPlayer() {
			continue
		}
		snake.SetDirection(s.ai.ChooseDirection(s.Field, snake, s.Foods, resolver, mistake))
	}

	plans := make([]plannedMove, 0, len(s.Snakes))
	for _, snake := range s.Snakes {
		if !snake.Alive {
			continue
		}
		head := s.Field.Move(snake.Head(), snake.Direction)
		plans = append(plans, plannedMove{snake: snake, head: head, kind: resolver.Classify(head)})
	}

	for _, p := range plans {
		switch {
		case p.kind.Fatal():
			p.snake.Alive = false
			result.Events = append(result.Events, Event{
				Type:    EventDeath,
				SnakeID: p.snake.ID,
				Score:   s.Score(p.snake.ID),
				Cause:   p.kind,
			})

		case p.kind == CellFood && s.RemoveFood(p.head):
			p.snake.Advance(p.head, true)
			result.Eaten = append(result.Eaten, p.head)
			s.scored(p.snake.ID, result)

		default:
			// An earlier snake may have taken the pellet this tick.
			p.snake.Advance(p.head, false)
		}
	}

	for range result.Eaten {
		c, err := s.AddFood()
		if err != nil {
			level.Warn(s.logger).Log("msg", "pellet not replaced", "tick", s.TickCount, "err", err)
			continue
		}
		result.Spawned = append(result.Spawned, c)
	}

	return result
}

func (s *SimulationState) scored(id int32, result *TickResult) {
	before := s.Scores[id]
	s.Scores[id]++
	result.Events = append(result.Events, Event{Type: EventScore, SnakeID: id, Score: s.Scores[id]})

	if before < s.Settings.WinScore && s.Scores[id] >= s.Settings.WinScore {
		result.Events = append(result.Events, Event{Type: EventWin, SnakeID: id, Score: s.Scores[id]})
	}
}
