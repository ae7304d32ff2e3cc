package domain

// Field maps the pixel canvas onto a grid of CellSize squares.
// Width and Height are counted in cells.
type Field struct {
	Width    int32
	Height   int32
	CellSize int32
}

func NewField(width, height, cellSize int32) *Field {
	return &Field{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

// NewFieldFromCanvas builds a field from canvas dimensions in pixels.
// The canvas is expected to be a multiple of cellSize.
func NewFieldFromCanvas(canvasWidth, canvasHeight, cellSize int32) *Field {
	return NewField(canvasWidth/cellSize, canvasHeight/cellSize, cellSize)
}

func (f *Field) ToCell(pixelX, pixelY int32) Coord {
	return Coord{X: floorDiv(pixelX, f.CellSize), Y: floorDiv(pixelY, f.CellSize)}
}

func (f *Field) ToPixel(c Coord) (int32, int32) {
	return c.X * f.CellSize, c.Y * f.CellSize
}

func (f *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Move steps one cell in d. The result may lie outside the field.
func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}

func (f *Field) CellCount() int {
	return int(f.Width) * int(f.Height)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
