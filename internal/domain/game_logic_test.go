package domain

import (
	"testing"
)

func TestTickEatsFood(t *testing.T) {
	s := emptyState(t)
	head := s.Field.ToCell(100, 100)
	food := s.Field.ToCell(120, 100)
	player := addSnake(s, OwnerPlayer, DirectionRight, head)
	s.Foods = []Coord{food}

	result := s.Tick(DirectionNone)

	if player.Head() != food {
		t.Fatalf("head at %v, want %v", player.Head(), food)
	}
	if player.Length() != 2 {
		t.Errorf("length %d, want 2", player.Length())
	}
	if s.Score(0) != 1 {
		t.Errorf("score %d, want 1", s.Score(0))
	}
	if len(s.Foods) != 1 {
		t.Fatalf("expected one replacement pellet, have %v", s.Foods)
	}
	if s.Foods[0] == food || player.Occupies(s.Foods[0]) {
		t.Errorf("replacement pellet %v lands on old pellet or snake", s.Foods[0])
	}
	if len(result.Eaten) != 1 || len(result.Spawned) != 1 {
		t.Errorf("eaten=%v spawned=%v", result.Eaten, result.Spawned)
	}
	if got := result.ScoreChanges(); got[0] != 1 || len(got) != 1 {
		t.Errorf("score changes %v", got)
	}
	if len(result.Winners()) != 0 || len(result.Deaths()) != 0 {
		t.Errorf("unexpected events %v", result.Events)
	}
}

func TestTickMovesWithoutGrowing(t *testing.T) {
	s := emptyState(t)
	player := addSnake(s, OwnerPlayer, DirectionDown, Coord{5, 5}, Coord{5, 4}, Coord{5, 3})
	s.Foods = []Coord{{20, 20}}

	s.Tick(DirectionNone)

	if player.Length() != 3 {
		t.Fatalf("length %d, want 3", player.Length())
	}
	if player.Head() != (Coord{5, 6}) || player.Body[2] != (Coord{5, 4}) {
		t.Errorf("unexpected body %v", player.Body)
	}
	if s.Score(0) != 0 {
		t.Errorf("score changed without food")
	}
}

func TestTickBoundaryDeathOnce(t *testing.T) {
	s := emptyState(t)
	head := s.Field.ToCell(580, 100)
	player := addSnake(s, OwnerPlayer, DirectionRight, head)
	s.Foods = []Coord{{1, 1}}

	if x, _ := s.Field.ToPixel(s.Field.Move(head, DirectionRight)); x != 600 {
		t.Fatalf("setup: next x = %d", x)
	}

	result := s.Tick(DirectionNone)
	deaths := result.Deaths()
	if len(deaths) != 1 || deaths[0] != 0 {
		t.Fatalf("deaths = %v", deaths)
	}
	if result.Events[0].Cause != CellBoundary {
		t.Errorf("cause = %v", result.Events[0].Cause)
	}
	if player.Alive {
		t.Fatal("player still alive")
	}
	if player.Head() != head {
		t.Errorf("dead snake moved to %v", player.Head())
	}

	for i := 0; i < 3; i++ {
		if r := s.Tick(DirectionUp); len(r.Deaths()) != 0 {
			t.Fatalf("death emitted again on tick %d", r.Tick)
		}
	}
	if player.Head() != head {
		t.Errorf("dead snake moved to %v", player.Head())
	}
}

func TestTickWallAndSelfCollision(t *testing.T) {
	s := emptyState(t)
	s.Walls = NewWallSet([]Wall{StraightWall{Origin: Coord{6, 5}, Length: 2, Orientation: Vertical}})
	walled := addSnake(s, OwnerPlayer, DirectionRight, Coord{5, 5})
	curled := addSnake(s, OwnerAI, DirectionUp, Coord{10, 10}, Coord{11, 10}, Coord{11, 9}, Coord{10, 9}, Coord{9, 9})
	greedy(s)
	s.Foods = []Coord{{10, 1}}

	result := s.Tick(DirectionNone)

	if walled.Alive {
		t.Error("snake driving into a wall survived")
	}
	causes := map[int32]CellKind{}
	for _, e := range result.Events {
		if e.Type == EventDeath {
			causes[e.SnakeID] = e.Cause
		}
	}
	if causes[0] != CellWall {
		t.Errorf("player death cause %v", causes[0])
	}
	// Up and right run into its own body, only left is open.
	if !curled.Alive {
		t.Errorf("AI should have turned away from its body, died with %v", causes[1])
	}
}

func TestTickUsesStartOfTickSnapshot(t *testing.T) {
	s := emptyState(t)
	greedy(s)
	player := addSnake(s, OwnerPlayer, DirectionRight, Coord{5, 5})
	// The AI leaves (6,5) this tick, but the player still sees it occupied.
	ai := addSnake(s, OwnerAI, DirectionUp, Coord{6, 4}, Coord{6, 5})
	s.Foods = []Coord{{6, 0}}

	result := s.Tick(DirectionNone)

	if !ai.Alive || ai.Head() != (Coord{6, 3}) {
		t.Fatalf("AI should have moved up, body %v alive %v", ai.Body, ai.Alive)
	}
	if player.Alive {
		t.Fatal("player should collide with the AI tail from the start of the tick")
	}
	if deaths := result.Deaths(); len(deaths) != 1 || deaths[0] != 0 {
		t.Errorf("deaths = %v", deaths)
	}
}

func TestTickNoPhantomHeadCollision(t *testing.T) {
	s := emptyState(t)
	greedy(s)
	player := addSnake(s, OwnerPlayer, DirectionRight, Coord{5, 5})
	ai := addSnake(s, OwnerAI, DirectionLeft, Coord{7, 5}, Coord{8, 5})
	s.Foods = []Coord{{0, 5}}

	s.Tick(DirectionNone)

	if !player.Alive || !ai.Alive {
		t.Fatalf("neither snake sees the other's new head: player %v ai %v", player.Alive, ai.Alive)
	}
	if player.Head() != (Coord{6, 5}) || ai.Head() != (Coord{6, 5}) {
		t.Errorf("heads at %v and %v", player.Head(), ai.Head())
	}
}

func TestTickSharedPelletGoesToFirstSnake(t *testing.T) {
	s := emptyState(t)
	greedy(s)
	player := addSnake(s, OwnerPlayer, DirectionRight, Coord{5, 5})
	ai := addSnake(s, OwnerAI, DirectionLeft, Coord{7, 5}, Coord{8, 5})
	s.Foods = []Coord{{6, 5}}

	result := s.Tick(DirectionNone)

	if s.Score(0) != 1 || s.Score(1) != 0 {
		t.Fatalf("scores %v", s.Scores)
	}
	if player.Length() != 2 || ai.Length() != 2 {
		t.Errorf("lengths %d/%d", player.Length(), ai.Length())
	}
	if len(result.Eaten) != 1 || len(s.Foods) != 1 {
		t.Errorf("eaten %v foods %v", result.Eaten, s.Foods)
	}
}

func TestTickPlayerInput(t *testing.T) {
	s := emptyState(t)
	player := addSnake(s, OwnerPlayer, DirectionRight, Coord{5, 5}, Coord{4, 5})
	s.Foods = []Coord{{20, 20}}

	s.Tick(DirectionLeft)
	if player.Direction != DirectionRight || player.Head() != (Coord{6, 5}) {
		t.Fatalf("reverse input applied: dir %v body %v", player.Direction, player.Body)
	}

	s.Tick(DirectionDown)
	if player.Direction != DirectionDown || player.Head() != (Coord{6, 6}) {
		t.Fatalf("turn not applied: dir %v body %v", player.Direction, player.Body)
	}
}

func TestTickWinEvent(t *testing.T) {
	s := emptyState(t)
	greedy(s)
	s.Settings.WinScore = 25
	addSnake(s, OwnerPlayer, DirectionRight, Coord{5, 5})
	ai := addSnake(s, OwnerAI, DirectionDown, Coord{15, 10})
	s.Scores[0] = 24
	s.Foods = []Coord{{6, 5}, {15, 20}}

	result := s.Tick(DirectionNone)

	winners := result.Winners()
	if len(winners) != 1 || winners[0] != 0 {
		t.Fatalf("winners = %v", winners)
	}
	if s.Score(0) != 25 || !s.ReachedWinScore(0) {
		t.Errorf("score %d", s.Score(0))
	}
	if ai.Head() != (Coord{15, 11}) {
		t.Errorf("other snakes must still move on the winning tick, AI at %v", ai.Head())
	}

	// Passing the threshold again does not repeat the event.
	s.Foods = []Coord{{7, 5}}
	if r := s.Tick(DirectionNone); len(r.Winners()) != 0 {
		t.Errorf("win emitted twice")
	}
}

func TestRespawnReplacesSnake(t *testing.T) {
	s := emptyState(t)
	player := addSnake(s, OwnerPlayer, DirectionUp, Coord{5, 5}, Coord{5, 6})
	other := addSnake(s, OwnerAI, DirectionLeft, Coord{10, 10}, Coord{11, 10}, Coord{12, 10})
	player.Alive = false
	s.Scores[0] = 7
	s.Foods = []Coord{{3, 3}, {8, 8}}

	fresh, err := s.Respawn(0)
	if err != nil {
		t.Fatalf("Respawn: %v", err)
	}
	if fresh == player || s.Snake(0) != fresh {
		t.Fatal("respawn should install a new snake value")
	}
	if !fresh.Alive || fresh.Length() != 1 || fresh.Direction != DirectionRight {
		t.Errorf("fresh snake %+v", fresh)
	}
	if s.Score(0) != 0 {
		t.Errorf("score not reset: %d", s.Score(0))
	}
	if other.Occupies(fresh.Head()) || s.HasFood(fresh.Head()) {
		t.Errorf("respawned on an occupied cell %v", fresh.Head())
	}

	if _, err := s.Respawn(9); err == nil {
		t.Error("expected an error for an unknown snake")
	}
}

func TestNewSimulationStateLayout(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		settings := testSettings()
		settings.Difficulty = d
		s, err := NewSimulationState(settings, nil)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		p := Profile(d)
		if len(s.Snakes) != 2 || !s.Snakes[0].IsPlayer() || s.Snakes[1].IsPlayer() {
			t.Fatalf("%v: unexpected snakes", d)
		}
		if s.Snakes[0].Direction != DirectionRight {
			t.Errorf("%v: player should start heading right", d)
		}
		if len(s.Foods) != p.FoodCount {
			t.Errorf("%v: %d pellets, want %d", d, len(s.Foods), p.FoodCount)
		}
		if s.Walls.Len() != p.WallCount+p.LShapeCount {
			t.Errorf("%v: %d walls, want %d", d, s.Walls.Len(), p.WallCount+p.LShapeCount)
		}
		for _, f := range s.Foods {
			if s.Walls.Contains(f) {
				t.Errorf("%v: pellet on wall %v", d, f)
			}
		}
	}
}

func TestNewSimulationStateRejectsBadSettings(t *testing.T) {
	settings := testSettings()
	settings.CellSize = 7
	if _, err := NewSimulationState(settings, nil); err == nil {
		t.Fatal("expected an error for a canvas that is not a multiple of the cell size")
	}
}

func TestCopyIsDeep(t *testing.T) {
	s, err := NewSimulationState(testSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	c := s.Copy()
	c.Snakes[0].Body[0] = Coord{-5, -5}
	c.Foods[0] = Coord{-5, -5}
	c.Scores[0] = 99

	if s.Snakes[0].Head() == (Coord{-5, -5}) || s.Foods[0] == (Coord{-5, -5}) || s.Scores[0] == 99 {
		t.Error("copy shares state with the original")
	}
	if c.Walls.Len() != s.Walls.Len() {
		t.Error("walls not copied")
	}
}

// TestTickInvariants runs whole games and checks the per-tick rules.
func TestTickInvariants(t *testing.T) {
	inputs := []Direction{DirectionNone, DirectionUp, DirectionLeft, DirectionDown, DirectionRight}

	for seed := uint64(1); seed <= 10; seed++ {
		settings := testSettings()
		settings.Seed = seed
		settings.WinScore = 1000
		s, err := NewSimulationState(settings, nil)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		want := s.Settings.Profile().FoodCount
		inputRng := NewRand(seed + 100)

		for tick := 0; tick < 400; tick++ {
			before := make([]Direction, len(s.Snakes))
			scores := make([]int, len(s.Scores))
			copy(scores, s.Scores)
			foods := make(map[Coord]bool)
			for _, f := range s.Foods {
				foods[f] = true
			}
			for i, snake := range s.Snakes {
				before[i] = snake.Direction
			}

			result := s.Tick(inputs[inputRng.Intn(len(inputs))])

			changes := result.ScoreChanges()
			claimed := make(map[Coord]bool)
			for i, snake := range s.Snakes {
				if snake.Direction == before[i].Opposite() {
					t.Fatalf("seed %d tick %d: snake %d reversed", seed, tick, i)
				}
				if !snake.Alive {
					continue
				}
				assertContiguous(t, snake)

				ate := foods[snake.Head()] && !claimed[snake.Head()]
				if ate {
					claimed[snake.Head()] = true
				}
				if ate != (s.Scores[i] == scores[i]+1) {
					t.Fatalf("seed %d tick %d: snake %d ate=%v score %d->%d", seed, tick, i, ate, scores[i], s.Scores[i])
				}
				if ate && changes[int32(i)] != s.Scores[i] {
					t.Fatalf("seed %d tick %d: missing score event", seed, tick)
				}
			}
			if len(s.Foods) != want {
				t.Fatalf("seed %d tick %d: %d pellets, want %d", seed, tick, len(s.Foods), want)
			}

			for _, id := range result.Deaths() {
				if _, err := s.Respawn(id); err != nil {
					t.Fatalf("seed %d: respawn %d: %v", seed, id, err)
				}
			}
		}
	}
}
