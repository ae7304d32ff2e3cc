package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snakebattle/internal/domain"
	"snakebattle/internal/ui/types"
)

// FieldRenderer draws the board in a box of the window, scaling the
// grid to whole pixel cells.
type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: domain.DefaultCellSize,
		OffsetX:  20,
		OffsetY:  50,
	}
}

// CalculateLayout fits field into the window minus the scoreboard column.
func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, field *domain.Field) {
	if field == nil {
		return
	}

	availableWidth := screenWidth - 260
	availableHeight := screenHeight - 90

	fr.CellSize = availableWidth / int(field.Width)
	if cellH := availableHeight / int(field.Height); cellH < fr.CellSize {
		fr.CellSize = cellH
	}
	if fr.CellSize < 6 {
		fr.CellSize = 6
	}
	if fr.CellSize > 32 {
		fr.CellSize = 32
	}

	fr.OffsetX = (availableWidth-fr.CellSize*int(field.Width))/2 + 20
	fr.OffsetY = (availableHeight-fr.CellSize*int(field.Height))/2 + 50
}

func (fr *FieldRenderer) cell(c domain.Coord) (float32, float32) {
	return float32(fr.OffsetX + int(c.X)*fr.CellSize), float32(fr.OffsetY + int(c.Y)*fr.CellSize)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field *domain.Field) {
	if field == nil {
		return
	}

	w := float32(int(field.Width) * fr.CellSize)
	h := float32(int(field.Height) * fr.CellSize)
	ox, oy := float32(fr.OffsetX), float32(fr.OffsetY)

	vector.DrawFilledRect(screen, ox, oy, w, h, types.ColorFieldBg, false)

	for x := int32(0); x <= field.Width; x++ {
		x1 := ox + float32(int(x)*fr.CellSize)
		vector.StrokeLine(screen, x1, oy, x1, oy+h, 1, types.ColorGrid, false)
	}
	for y := int32(0); y <= field.Height; y++ {
		y1 := oy + float32(int(y)*fr.CellSize)
		vector.StrokeLine(screen, ox, y1, ox+w, y1, 1, types.ColorGrid, false)
	}
	vector.StrokeRect(screen, ox, oy, w, h, 2, types.ColorInputBorder, false)
}

func (fr *FieldRenderer) DrawWalls(screen *ebiten.Image, walls *domain.WallSet) {
	if walls == nil {
		return
	}
	size := float32(fr.CellSize)
	for _, w := range walls.Walls {
		for _, c := range w.Cells() {
			x, y := fr.cell(c)
			vector.DrawFilledRect(screen, x, y, size, size, types.ColorWall, false)
			vector.StrokeRect(screen, x, y, size, size, 1, types.Scale(types.ColorWall, 0.6), false)
		}
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, foods []domain.Coord) {
	r := float32(fr.CellSize) / 3
	for _, food := range foods {
		x, y := fr.cell(food)
		half := float32(fr.CellSize) / 2
		vector.DrawFilledCircle(screen, x+half, y+half, r, types.ColorFood, true)
	}
}

// DrawSnake dims dead snakes and marks the head with an eye pointing
// along the heading.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snake *domain.Snake) {
	if snake == nil || len(snake.Body) == 0 {
		return
	}

	base := types.SnakeColor(snake.ID)
	if !snake.Alive {
		base = types.Scale(base, 0.4)
	}
	size := float32(fr.CellSize - 2)

	for i := len(snake.Body) - 1; i >= 0; i-- {
		x, y := fr.cell(snake.Body[i])
		c := base
		if i == 0 {
			c = types.Scale(base, 1.2)
		}
		vector.DrawFilledRect(screen, x+1, y+1, size, size, c, false)
	}

	x, y := fr.cell(snake.Head())
	half := float32(fr.CellSize) / 2
	d := snake.Direction.Delta()
	ex := x + half + float32(d.X)*half/2
	ey := y + half + float32(d.Y)*half/2
	vector.DrawFilledCircle(screen, ex, ey, float32(fr.CellSize)/8+1, types.ColorBackground, true)

	if snake.IsPlayer() && snake.Alive {
		vector.StrokeRect(screen, x, y, size+2, size+2, 2, types.ColorTextHighlight, false)
	}
}
