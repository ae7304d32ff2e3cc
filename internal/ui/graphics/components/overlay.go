package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snakebattle/internal/ui/types"
)

// Overlay is a dimmed panel over the board with a title and up to a few
// stacked buttons.
type Overlay struct {
	Title      string
	TitleColor color.RGBA
	Lines      []string
	Buttons    []*Button
}

func NewOverlay(title string, buttons ...*Button) *Overlay {
	return &Overlay{Title: title, TitleColor: types.ColorTextHighlight, Buttons: buttons}
}

// Update lays the buttons out around the centre of the window and
// returns the index of a clicked button, or -1.
func (o *Overlay) Update(w, h int) int {
	y := h/2 + 10
	clicked := -1
	for i, b := range o.Buttons {
		b.SetPosition(w/2-b.Width/2, y)
		y += b.Height + 10
		if b.Update() && clicked < 0 {
			clicked = i
		}
	}
	return clicked
}

func (o *Overlay) Draw(screen *ebiten.Image, w, h int) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), types.ColorOverlay, false)

	fonts := types.GetFonts()
	y := h/2 - 60 - 18*len(o.Lines)
	types.DrawBold(screen, o.Title, fonts.Normal, w/2, y, o.TitleColor)
	y += 30
	for _, line := range o.Lines {
		types.DrawCentered(screen, line, fonts.Normal, w/2, y, types.ColorText)
		y += 18
	}
	for _, b := range o.Buttons {
		b.Draw(screen)
	}
}
