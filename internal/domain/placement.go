package domain

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/rand"
)

var (
	ErrNoFreeCell    = errors.New("no free cell")
	ErrWallPlacement = errors.New("wall could not be placed")
)

const (
	MaxPlacementAttempts = 1000
	MaxWallAttempts      = 500

	// WallBuffer is the minimum Chebyshev distance between cells of two walls.
	WallBuffer = 2

	foodInset  = 1
	spawnInset = 2
)

// occupancy is the set of cells a new entity must avoid.
type occupancy map[Coord]struct{}

func newOccupancy(snakes []*Snake, foods []Coord, walls *WallSet) occupancy {
	occ := make(occupancy)
	for _, snake := range snakes {
		if snake == nil {
			continue
		}
		for _, cell := range snake.Body {
			occ[cell] = struct{}{}
		}
	}
	for _, food := range foods {
		occ[food] = struct{}{}
	}
	if walls != nil {
		for _, w := range walls.Walls {
			for _, cell := range w.Cells() {
				occ[cell] = struct{}{}
			}
		}
	}
	return occ
}

func (o occupancy) has(c Coord) bool {
	_, ok := o[c]
	return ok
}

// findFreeCell samples the inset box, then falls back to scanning it.
func findFreeCell(field *Field, rng *rand.Rand, occ occupancy, inset int32) (Coord, int, error) {
	minX, minY := inset, inset
	maxX, maxY := field.Width-inset, field.Height-inset
	if maxX <= minX || maxY <= minY {
		return Coord{}, 0, ErrNoFreeCell
	}

	for attempt := 1; attempt <= MaxPlacementAttempts; attempt++ {
		c := randomCellIn(rng, minX, minY, maxX, maxY)
		if !occ.has(c) {
			return c, attempt, nil
		}
	}

	free := make([]Coord, 0)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			c := Coord{X: x, Y: y}
			if !occ.has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, MaxPlacementAttempts, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], MaxPlacementAttempts, nil
}

// FoodSpawner places pellets inside a one cell inset of the field.
type FoodSpawner struct {
	field  *Field
	rng    *rand.Rand
	logger log.Logger
}

func NewFoodSpawner(field *Field, rng *rand.Rand, logger log.Logger) *FoodSpawner {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &FoodSpawner{field: field, rng: rng, logger: logger}
}

// PlaceOne picks a cell that is not on a wall, a snake or an existing pellet.
func (fs *FoodSpawner) PlaceOne(snakes []*Snake, foods []Coord, walls *WallSet) (Coord, error) {
	c, attempts, err := findFreeCell(fs.field, fs.rng, newOccupancy(snakes, foods, walls), foodInset)
	if err != nil {
		level.Warn(fs.logger).Log("msg", "food placement skipped", "entity", "food", "attempts", attempts, "err", err)
		return Coord{}, fmt.Errorf("place food: %w", err)
	}
	if attempts >= MaxPlacementAttempts {
		level.Warn(fs.logger).Log("msg", "food placed by scan", "entity", "food", "attempts", attempts, "fallback", "scan")
	}
	return c, nil
}

// PlaceMany places n pellets one after another so later ones see earlier ones.
// On failure it returns what was placed so far.
func (fs *FoodSpawner) PlaceMany(n int, snakes []*Snake, foods []Coord, walls *WallSet) ([]Coord, error) {
	all := make([]Coord, len(foods), len(foods)+n)
	copy(all, foods)
	placed := make([]Coord, 0, n)

	for i := 0; i < n; i++ {
		c, err := fs.PlaceOne(snakes, all, walls)
		if err != nil {
			return placed, err
		}
		all = append(all, c)
		placed = append(placed, c)
	}
	return placed, nil
}

// SpawnCell finds a start cell for a snake, inset two cells from the edges.
func SpawnCell(field *Field, rng *rand.Rand, snakes []*Snake, foods []Coord, walls *WallSet) (Coord, error) {
	c, _, err := findFreeCell(field, rng, newOccupancy(snakes, foods, walls), spawnInset)
	if err != nil {
		return Coord{}, fmt.Errorf("spawn snake: %w", err)
	}
	return c, nil
}

// WallReport summarises one Generate call.
type WallReport struct {
	Placed  int
	Relaxed int
	Skipped int
}

// WallGenerator places straight and L-shaped obstacles.
type WallGenerator struct {
	field  *Field
	rng    *rand.Rand
	logger log.Logger
}

func NewWallGenerator(field *Field, rng *rand.Rand, logger log.Logger) *WallGenerator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &WallGenerator{field: field, rng: rng, logger: logger}
}

// Generate places wallCount straight walls and then lShapeCount L walls.
// A wall that cannot keep the buffer is retried without it and skipped
// if even that fails.
func (g *WallGenerator) Generate(wallCount, lShapeCount int, snakes []*Snake, foods []Coord) ([]Wall, WallReport) {
	blocked := newOccupancy(snakes, foods, nil)
	placed := NewWallSet(nil)
	var report WallReport

	kinds := make([]WallKind, 0, wallCount+lShapeCount)
	for i := 0; i < wallCount; i++ {
		kinds = append(kinds, WallStraight)
	}
	for i := 0; i < lShapeCount; i++ {
		kinds = append(kinds, WallL)
	}

	for _, kind := range kinds {
		w, err := g.place(kind, blocked, placed, WallBuffer)
		if err == nil {
			placed.Add(w)
			report.Placed++
			continue
		}

		w, err = g.place(kind, blocked, placed, 0)
		if err == nil {
			level.Warn(g.logger).Log("msg", "wall placed without spacing", "entity", "wall", "kind", kind, "attempts", MaxWallAttempts, "fallback", "relaxed")
			placed.Add(w)
			report.Placed++
			report.Relaxed++
			continue
		}

		level.Warn(g.logger).Log("msg", "wall skipped", "entity", "wall", "kind", kind, "attempts", 2*MaxWallAttempts, "fallback", "skip", "err", err)
		report.Skipped++
	}

	return placed.Walls, report
}

func (g *WallGenerator) place(kind WallKind, blocked occupancy, placed *WallSet, buffer int32) (Wall, error) {
	for attempt := 0; attempt < MaxWallAttempts; attempt++ {
		w := g.candidate(kind)
		if g.valid(w, blocked, placed, buffer) {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%s wall: %w", kind, ErrWallPlacement)
}

func (g *WallGenerator) candidate(kind WallKind) Wall {
	origin := randomCellIn(g.rng, 0, 0, g.field.Width, g.field.Height)
	if kind == WallL {
		return LWall{
			Corner:        origin,
			HorizontalLen: 2 + g.rng.Int31n(2),
			VerticalLen:   2 + g.rng.Int31n(2),
			HorizontalDir: g.sign(),
			VerticalDir:   g.sign(),
		}
	}
	orientation := Horizontal
	if g.rng.Intn(2) == 1 {
		orientation = Vertical
	}
	return StraightWall{
		Origin:      origin,
		Length:      2 + g.rng.Int31n(3),
		Orientation: orientation,
	}
}

func (g *WallGenerator) sign() int32 {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (g *WallGenerator) valid(w Wall, blocked occupancy, placed *WallSet, buffer int32) bool {
	cells := w.Cells()
	for _, c := range cells {
		if !g.field.InBounds(c) || blocked.has(c) || placed.Contains(c) {
			return false
		}
	}
	if buffer <= 0 {
		return true
	}
	for _, other := range placed.Walls {
		if WallDistance(cells, other.Cells()) < buffer {
			return false
		}
	}
	return true
}

// WallDistance is the smallest Chebyshev distance between two cell sets.
func WallDistance(a, b []Coord) int32 {
	best := int32(-1)
	for _, ca := range a {
		for _, cb := range b {
			d := ca.Chebyshev(cb)
			if best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}
