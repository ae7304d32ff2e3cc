package domain

type WallKind int

const (
	WallStraight WallKind = iota
	WallL
)

func (k WallKind) String() string {
	if k == WallL {
		return "l-shape"
	}
	return "straight"
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Wall is a static obstacle. StraightWall and LWall are the only variants.
type Wall interface {
	Kind() WallKind
	// Cells lists every occupied cell, origin first.
	Cells() []Coord
	isWall()
}

// StraightWall runs Length cells from Origin towards +X or +Y.
type StraightWall struct {
	Origin      Coord
	Length      int32
	Orientation Orientation
}

func (w StraightWall) Kind() WallKind { return WallStraight }

func (w StraightWall) Cells() []Coord {
	step := Coord{X: 1}
	if w.Orientation == Vertical {
		step = Coord{Y: 1}
	}
	cells := make([]Coord, 0, w.Length)
	cur := w.Origin
	for i := int32(0); i < w.Length; i++ {
		cells = append(cells, cur)
		cur = cur.Add(step)
	}
	return cells
}

func (StraightWall) isWall() {}

// LWall has two perpendicular arms meeting at Corner. Each arm length
// counts the corner cell.
type LWall struct {
	Corner        Coord
	HorizontalLen int32
	VerticalLen   int32
	// HorizontalDir is -1 or +1 along X, VerticalDir -1 or +1 along Y.
	HorizontalDir int32
	VerticalDir   int32
}

func (w LWall) Kind() WallKind { return WallL }

func (w LWall) Cells() []Coord {
	cells := make([]Coord, 0, w.HorizontalLen+w.VerticalLen-1)
	cells = append(cells, w.Corner)
	for i := int32(1); i < w.HorizontalLen; i++ {
		cells = append(cells, Coord{X: w.Corner.X + i*w.HorizontalDir, Y: w.Corner.Y})
	}
	for j := int32(1); j < w.VerticalLen; j++ {
		cells = append(cells, Coord{X: w.Corner.X, Y: w.Corner.Y + j*w.VerticalDir})
	}
	return cells
}

func (LWall) isWall() {}

// WallSet indexes the occupied cells of a list of walls.
type WallSet struct {
	Walls []Wall
	cells map[Coord]struct{}
}

func NewWallSet(walls []Wall) *WallSet {
	ws := &WallSet{cells: make(map[Coord]struct{})}
	for _, w := range walls {
		ws.Add(w)
	}
	return ws
}

func (ws *WallSet) Add(w Wall) {
	if ws.cells == nil {
		ws.cells = make(map[Coord]struct{})
	}
	ws.Walls = append(ws.Walls, w)
	for _, c := range w.Cells() {
		ws.cells[c] = struct{}{}
	}
}

func (ws *WallSet) Contains(c Coord) bool {
	if ws == nil {
		return false
	}
	_, ok := ws.cells[c]
	return ok
}

func (ws *WallSet) Len() int {
	if ws == nil {
		return 0
	}
	return len(ws.Walls)
}

func (ws *WallSet) CellCount() int {
	if ws == nil {
		return 0
	}
	return len(ws.cells)
}

// Copy shares the wall values, which are immutable.
func (ws *WallSet) Copy() *WallSet {
	if ws == nil {
		return NewWallSet(nil)
	}
	walls := make([]Wall, len(ws.Walls))
	copy(walls, ws.Walls)
	return NewWallSet(walls)
}
