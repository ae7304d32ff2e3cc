package domain

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns the generator a SimulationState draws from.
// A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func randomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// randomCellIn samples a cell with minX <= X < maxX and minY <= Y < maxY.
func randomCellIn(rng *rand.Rand, minX, minY, maxX, maxY int32) Coord {
	return Coord{
		X: minX + rng.Int31n(maxX-minX),
		Y: minY + rng.Int31n(maxY-minY),
	}
}
