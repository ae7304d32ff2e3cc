package domain

import "testing"

func testSettings() *Settings {
	s := DefaultSettings()
	s.Seed = 7
	return s
}

// emptyState is a 30x25 board with nothing on it.
func emptyState(t *testing.T) *SimulationState {
	t.Helper()
	return NewEmptyState(testSettings(), NewRand(42), nil)
}

func addSnake(s *SimulationState, owner Owner, dir Direction, body ...Coord) *Snake {
	snake := &Snake{
		ID:        int32(len(s.Snakes)),
		Owner:     owner,
		Body:      body,
		Direction: dir,
		Alive:     true,
	}
	s.Snakes = append(s.Snakes, snake)
	s.Scores = append(s.Scores, 0)
	return snake
}

func assertContiguous(t *testing.T, snake *Snake) {
	t.Helper()
	seen := make(map[Coord]bool, len(snake.Body))
	for i, c := range snake.Body {
		if seen[c] {
			t.Fatalf("snake %d overlaps itself at %v: %v", snake.ID, c, snake.Body)
		}
		seen[c] = true
		if i > 0 && snake.Body[i-1].Manhattan(c) != 1 {
			t.Fatalf("snake %d has a gap between %v and %v", snake.ID, snake.Body[i-1], c)
		}
	}
}

// greedy makes AI snakes in s skip random mistakes.
func greedy(s *SimulationState) {
	s.Settings.Custom = &DifficultyProfile{TickRate: 7.5, FoodCount: 1, MistakeChance: 0}
}
