package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snakebattle/internal/ui/types"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Enabled       bool
	// Selected marks the active choice in a group of presets.
	Selected bool
	hovered  bool
	pressed  bool
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Enabled: true,
	}
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Update reports a click: press and release inside the button.
func (b *Button) Update() bool {
	if !b.Enabled {
		b.hovered, b.pressed = false, false
		return false
	}

	b.hovered = b.Contains(ebiten.CursorPosition())

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bg color.RGBA
	switch {
	case !b.Enabled:
		bg = types.Scale(types.ColorButton, 0.5)
	case b.pressed:
		bg = types.Scale(types.ColorButtonHover, 0.8)
	case b.Selected:
		bg = types.ColorButtonActive
	case b.hovered:
		bg = types.ColorButtonHover
	default:
		bg = types.ColorButton
	}

	x, y := float32(b.X), float32(b.Y)
	w, h := float32(b.Width), float32(b.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	border := types.ColorInputBorder
	if b.Selected {
		border = types.ColorInputFocused
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)

	textColor := types.ColorButtonText
	if !b.Enabled {
		textColor = types.ColorTextDim
	}
	types.DrawCentered(screen, b.Text, types.GetFonts().Normal, b.X+b.Width/2, b.Y+b.Height/2+5, textColor)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
