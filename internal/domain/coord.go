package domain

// Coord is a cell position on the grid, in columns and rows.
type Coord struct {
	X int32
	Y int32
}

func (c Coord) Add(other Coord) Coord {
	return Coord{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Manhattan returns |dx| + |dy| between two cells.
func (c Coord) Manhattan(other Coord) int32 {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// Chebyshev returns max(|dx|, |dy|) between two cells.
func (c Coord) Chebyshev(other Coord) int32 {
	dx := abs(c.X - other.X)
	dy := abs(c.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
