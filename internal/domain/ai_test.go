package domain

import "testing"

func TestNearestFoodFirstMinimumWins(t *testing.T) {
	foods := []Coord{{10, 10}, {7, 5}, {3, 5}, {5, 7}}
	got, ok := NearestFood(Coord{5, 5}, foods)
	if !ok {
		t.Fatal("expected a pellet")
	}
	// (7,5), (3,5) and (5,7) are all two away; the first one listed wins.
	if got != (Coord{7, 5}) {
		t.Errorf("NearestFood = %v, want (7,5)", got)
	}

	if _, ok := NearestFood(Coord{0, 0}, nil); ok {
		t.Error("expected no pellet for an empty list")
	}
}

func TestCandidatesExcludeReverse(t *testing.T) {
	for _, dir := range Directions {
		cands := Candidates(dir)
		if len(cands) != 3 {
			t.Fatalf("%v: %d candidates", dir, len(cands))
		}
		for _, c := range cands {
			if c == dir.Opposite() {
				t.Fatalf("%v: reverse %v offered", dir, c)
			}
		}
	}
}

func TestChooseDirectionGreedy(t *testing.T) {
	field := NewFieldFromCanvas(600, 500, 20)
	tests := []struct {
		name string
		head Coord
		dir  Direction
		food Coord
		want Direction
	}{
		{"food right ahead", Coord{5, 5}, DirectionRight, Coord{9, 5}, DirectionRight},
		{"food below", Coord{5, 5}, DirectionRight, Coord{5, 10}, DirectionDown},
		{"food above", Coord{5, 5}, DirectionLeft, Coord{5, 1}, DirectionUp},
		{"food behind ties to first candidate", Coord{5, 5}, DirectionRight, Coord{1, 5}, DirectionRight},
		{"food behind and above", Coord{5, 5}, DirectionRight, Coord{1, 3}, DirectionUp},
		{"food diagonal ties to first", Coord{5, 5}, DirectionUp, Coord{8, 2}, DirectionRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := NewSnake(1, OwnerAI, tt.head, tt.dir)
			foods := []Coord{tt.food}
			resolver := NewCollisionResolver(field, []*Snake{snake}, foods, nil)
			ai := NewAIController(NewRand(9))

			for i := 0; i < 20; i++ {
				if got := ai.ChooseDirection(field, snake, foods, resolver, 0); got != tt.want {
					t.Fatalf("ChooseDirection = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestChooseDirectionAvoidsFatalMoves(t *testing.T) {
	field := NewField(10, 10, 1)
	// Food is straight ahead but a wall blocks the way.
	snake := NewSnake(1, OwnerAI, Coord{5, 5}, DirectionRight)
	walls := NewWallSet([]Wall{StraightWall{Origin: Coord{6, 5}, Length: 2}})
	foods := []Coord{{8, 5}}
	resolver := NewCollisionResolver(field, []*Snake{snake}, foods, walls)

	got := NewAIController(NewRand(1)).ChooseDirection(field, snake, foods, resolver, 0)
	if got != DirectionDown && got != DirectionUp {
		t.Fatalf("expected a turn around the wall, got %v", got)
	}
	if got != DirectionDown {
		t.Errorf("Down is enumerated before Up and ties, got %v", got)
	}
}

func TestChooseDirectionAllFatalStillMoves(t *testing.T) {
	field := NewField(10, 10, 1)
	snake := NewSnake(1, OwnerAI, Coord{0, 0}, DirectionLeft)
	walls := NewWallSet([]Wall{StraightWall{Origin: Coord{0, 1}, Length: 2}})
	foods := []Coord{{5, 5}}
	resolver := NewCollisionResolver(field, []*Snake{snake}, foods, walls)
	ai := NewAIController(NewRand(4))

	seen := make(map[Direction]bool)
	for i := 0; i < 200; i++ {
		got := ai.ChooseDirection(field, snake, foods, resolver, 0)
		if got == DirectionRight {
			t.Fatal("picked the reverse move")
		}
		seen[got] = true
	}
	if len(seen) < 2 {
		t.Errorf("blind pick should vary, saw %v", seen)
	}
}

func TestChooseDirectionMistakes(t *testing.T) {
	field := NewFieldFromCanvas(600, 500, 20)
	snake := NewSnake(1, OwnerAI, Coord{10, 10}, DirectionRight)
	foods := []Coord{{20, 10}}
	resolver := NewCollisionResolver(field, []*Snake{snake}, foods, nil)
	ai := NewAIController(NewRand(11))

	off := 0
	const runs = 2000
	for i := 0; i < runs; i++ {
		got := ai.ChooseDirection(field, snake, foods, resolver, 1)
		if got == DirectionLeft {
			t.Fatal("mistake picked the reverse move")
		}
		if got != DirectionRight {
			off++
		}
	}
	// Always mistaking picks uniformly, so about two thirds leave the greedy path.
	if off < runs/2 || off > runs*5/6 {
		t.Errorf("unexpected mistake rate: %d of %d", off, runs)
	}
}

func TestChooseDirectionWithoutFood(t *testing.T) {
	field := NewField(10, 10, 1)
	snake := NewSnake(1, OwnerAI, Coord{5, 5}, DirectionUp)
	resolver := NewCollisionResolver(field, []*Snake{snake}, nil, nil)
	if got := NewAIController(NewRand(1)).ChooseDirection(field, snake, nil, resolver, 0); got != DirectionUp {
		t.Errorf("expected heading kept, got %v", got)
	}
}
