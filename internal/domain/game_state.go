package domain

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/rand"
)

// SimulationState owns everything the engine mutates. Snake ids are
// their index in Snakes; index 0 is the player.
type SimulationState struct {
	TickCount int64
	Field     *Field
	Settings  *Settings
	Snakes    []*Snake
	Foods     []Coord
	Walls     *WallSet
	Scores    []int

	rng    *rand.Rand
	foods  *FoodSpawner
	walls  *WallGenerator
	ai     *AIController
	logger log.Logger
}

// NewSimulationState validates settings and lays out a fresh round.
func NewSimulationState(settings *Settings, logger log.Logger) (*SimulationState, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	s := NewEmptyState(settings, NewRand(settings.Seed), logger)
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmptyState builds a state with no snakes, food or walls. Callers
// populate it by hand or call Reset.
func NewEmptyState(settings *Settings, rng *rand.Rand, logger log.Logger) *SimulationState {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	field := settings.Field()
	return &SimulationState{
		Field:    field,
		Settings: settings.Copy(),
		Snakes:   make([]*Snake, 0),
		Foods:    make([]Coord, 0),
		Walls:    NewWallSet(nil),
		Scores:   make([]int, 0),
		rng:      rng,
		foods:    NewFoodSpawner(field, rng, logger),
		walls:    NewWallGenerator(field, rng, logger),
		ai:       NewAIController(rng),
		logger:   logger,
	}
}

// Reset spawns the snakes, then the walls, then the food.
func (s *SimulationState) Reset() error {
	profile := s.Settings.Profile()

	s.TickCount = 0
	s.Snakes = make([]*Snake, 0, s.Settings.SnakeCount)
	s.Foods = make([]Coord, 0, profile.FoodCount)
	s.Walls = NewWallSet(nil)
	s.Scores = make([]int, s.Settings.SnakeCount)

	for i := 0; i < s.Settings.SnakeCount; i++ {
		owner := OwnerAI
		dir := randomDirection(s.rng)
		if i == 0 {
			owner = OwnerPlayer
			dir = DirectionRight
		}
		head, err := SpawnCell(s.Field, s.rng, s.Snakes, nil, nil)
		if err != nil {
			return err
		}
		s.Snakes = append(s.Snakes, NewSnake(int32(i), owner, head, dir))
	}

	walls, report := s.walls.Generate(profile.WallCount, profile.LShapeCount, s.Snakes, nil)
	s.Walls = NewWallSet(walls)

	foods, err := s.foods.PlaceMany(profile.FoodCount, s.Snakes, nil, s.Walls)
	s.Foods = append(s.Foods, foods...)
	if err != nil {
		level.Warn(s.logger).Log("msg", "round started with fewer pellets", "want", profile.FoodCount, "got", len(foods), "err", err)
	}

	level.Debug(s.logger).Log(
		"msg", "round laid out",
		"snakes", len(s.Snakes),
		"walls", report.Placed,
		"walls_relaxed", report.Relaxed,
		"walls_skipped", report.Skipped,
		"foods", len(s.Foods),
	)
	return nil
}

func (s *SimulationState) Rand() *rand.Rand {
	return s.rng
}

func (s *SimulationState) Snake(id int32) *Snake {
	if id < 0 || int(id) >= len(s.Snakes) {
		return nil
	}
	return s.Snakes[id]
}

func (s *SimulationState) Player() *Snake {
	for _, snake := range s.Snakes {
		if snake.IsPlayer() {
			return snake
		}
	}
	return nil
}

func (s *SimulationState) Score(id int32) int {
	if id < 0 || int(id) >= len(s.Scores) {
		return 0
	}
	return s.Scores[id]
}

// Opponents returns every snake other than id.
func (s *SimulationState) Opponents(id int32) []*Snake {
	out := make([]*Snake, 0, len(s.Snakes))
	for _, snake := range s.Snakes {
		if snake.ID != id {
			out = append(out, snake)
		}
	}
	return out
}

func (s *SimulationState) ReachedWinScore(id int32) bool {
	return s.Score(id) >= s.Settings.WinScore
}

func (s *SimulationState) HasFood(c Coord) bool {
	return indexOf(s.Foods, c) >= 0
}

// RemoveFood deletes a pellet keeping the order of the rest.
func (s *SimulationState) RemoveFood(c Coord) bool {
	i := indexOf(s.Foods, c)
	if i < 0 {
		return false
	}
	s.Foods = append(s.Foods[:i], s.Foods[i+1:]...)
	return true
}

// AddFood places one pellet on a free cell.
func (s *SimulationState) AddFood() (Coord, error) {
	c, err := s.foods.PlaceOne(s.Snakes, s.Foods, s.Walls)
	if err != nil {
		return Coord{}, err
	}
	s.Foods = append(s.Foods, c)
	return c, nil
}

// RegenerateWalls throws away the current walls and places new ones.
func (s *SimulationState) RegenerateWalls() WallReport {
	profile := s.Settings.Profile()
	walls, report := s.walls.Generate(profile.WallCount, profile.LShapeCount, s.Snakes, s.Foods)
	s.Walls = NewWallSet(walls)
	return report
}

// Respawn replaces snake id by a fresh length one snake and zeroes its score.
func (s *SimulationState) Respawn(id int32) (*Snake, error) {
	old := s.Snake(id)
	if old == nil {
		return nil, fmt.Errorf("respawn snake %d: no such snake", id)
	}
	head, err := SpawnCell(s.Field, s.rng, s.Opponents(id), s.Foods, s.Walls)
	if err != nil {
		return nil, fmt.Errorf("respawn snake %d: %w", id, err)
	}
	dir := DirectionRight
	if !old.IsPlayer() {
		dir = randomDirection(s.rng)
	}
	snake := NewSnake(id, old.Owner, head, dir)
	s.Snakes[id] = snake
	s.Scores[id] = 0
	return snake, nil
}

// Copy is a deep copy for readers. It shares no mutable state and cannot Tick.
func (s *SimulationState) Copy() *SimulationState {
	snakes := make([]*Snake, len(s.Snakes))
	for i, snake := range s.Snakes {
		snakes[i] = snake.Copy()
	}
	foods := make([]Coord, len(s.Foods))
	copy(foods, s.Foods)
	scores := make([]int, len(s.Scores))
	copy(scores, s.Scores)

	return &SimulationState{
		TickCount: s.TickCount,
		Field:     NewField(s.Field.Width, s.Field.Height, s.Field.CellSize),
		Settings:  s.Settings.Copy(),
		Snakes:    snakes,
		Foods:     foods,
		Walls:     s.Walls.Copy(),
		Scores:    scores,
		logger:    log.NewNopLogger(),
	}
}

func indexOf(cells []Coord, c Coord) int {
	for i, cell := range cells {
		if cell == c {
			return i
		}
	}
	return -1
}
