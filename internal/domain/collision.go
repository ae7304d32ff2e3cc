package domain

// CellKind classifies what a snake head would meet on a cell.
type CellKind int

const (
	CellFree CellKind = iota
	CellFood
	CellWall
	CellBody
	CellBoundary
)

func (k CellKind) String() string {
	switch k {
	case CellFree:
		return "free"
	case CellFood:
		return "food"
	case CellWall:
		return "wall"
	case CellBody:
		return "body"
	case CellBoundary:
		return "boundary"
	}
	return "unknown"
}

// Fatal reports whether entering the cell kills the snake.
func (k CellKind) Fatal() bool {
	return k == CellWall || k == CellBody || k == CellBoundary
}

// CollisionResolver answers classification queries against a frozen view
// of the board. Mutating snakes or food afterwards does not affect it.
type CollisionResolver struct {
	field  *Field
	walls  *WallSet
	bodies map[Coord]int32
	foods  map[Coord]struct{}
}

func NewCollisionResolver(field *Field, snakes []*Snake, foods []Coord, walls *WallSet) *CollisionResolver {
	r := &CollisionResolver{
		field:  field,
		walls:  walls,
		bodies: make(map[Coord]int32),
		foods:  make(map[Coord]struct{}, len(foods)),
	}
	// Dead snakes keep their bodies on the board until they respawn.
	for _, snake := range snakes {
		if snake == nil {
			continue
		}
		for _, cell := range snake.Body {
			if _, taken := r.bodies[cell]; !taken {
				r.bodies[cell] = snake.ID
			}
		}
	}
	for _, food := range foods {
		r.foods[food] = struct{}{}
	}
	return r
}

// Classify checks boundary, then walls, then every snake body including the
// mover's own, then food.
func (r *CollisionResolver) Classify(c Coord) CellKind {
	if !r.field.InBounds(c) {
		return CellBoundary
	}
	if r.walls.Contains(c) {
		return CellWall
	}
	if _, ok := r.bodies[c]; ok {
		return CellBody
	}
	if _, ok := r.foods[c]; ok {
		return CellFood
	}
	return CellFree
}

// BodyOwner returns the id of the snake occupying c, if any.
func (r *CollisionResolver) BodyOwner(c Coord) (int32, bool) {
	id, ok := r.bodies[c]
	return id, ok
}

// Classify is a one-shot form of CollisionResolver.Classify.
func Classify(c Coord, field *Field, snakes []*Snake, foods []Coord, walls *WallSet) CellKind {
	return NewCollisionResolver(field, snakes, foods, walls).Classify(c)
}
