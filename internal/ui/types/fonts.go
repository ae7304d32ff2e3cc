package types

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts = &Fonts{
	Normal: basicfont.Face7x13,
	Small:  basicfont.Face7x13,
}

func GetFonts() *Fonts {
	return defaultFonts
}

// DrawCentered draws s horizontally centred on cx with its baseline at y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}

// DrawBold fakes a heavier weight by drawing s around its position.
func DrawBold(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			DrawCentered(screen, s, face, cx+dx, y+dy, clr)
		}
	}
}
