package components

import (
	"fmt"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snakebattle/internal/ui/types"
)

const nameLimit = 16

// NameField edits a short display name. Edits are only reported once
// committed with Enter or by leaving the field.
type NameField struct {
	X, Y          int
	Width, Height int
	Text          string
	Placeholder   string
	Focused       bool

	dirty bool
	frame int
}

func NewNameField(width, height int, placeholder string) *NameField {
	return &NameField{Width: width, Height: height, Placeholder: placeholder}
}

func (f *NameField) Contains(x, y int) bool {
	return x >= f.X && x < f.X+f.Width && y >= f.Y && y < f.Y+f.Height
}

// SetFocus moves focus and reports whether a pending edit got committed.
func (f *NameField) SetFocus(focused bool) bool {
	if f.Focused == focused {
		return false
	}
	f.Focused = focused
	f.frame = 0
	if !focused && f.dirty {
		f.dirty = false
		return true
	}
	return false
}

// Update returns true when an edit was committed this frame.
func (f *NameField) Update() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if f.SetFocus(f.Contains(ebiten.CursorPosition())) {
			return true
		}
	}
	if !f.Focused {
		return false
	}
	f.frame++

	name := []rune(f.Text)
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(name) >= nameLimit || !allowedInName(r) {
			continue
		}
		name = append(name, r)
		f.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(name) > 0 {
		name = name[:len(name)-1]
		f.dirty = true
	}
	f.Text = string(name)

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		f.dirty = true
		return f.SetFocus(false)
	}
	return false
}

func allowedInName(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_'
}

func (f *NameField) Draw(screen *ebiten.Image) {
	x, y := float32(f.X), float32(f.Y)
	w, h := float32(f.Width), float32(f.Height)

	vector.DrawFilledRect(screen, x, y, w, h, types.ColorInputBg, false)
	border := types.ColorInputBorder
	if f.Focused {
		border = types.ColorInputFocused
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	fonts := types.GetFonts()
	baseline := f.Y + f.Height/2 + 4

	label, clr := f.Text, types.ColorText
	if label == "" && !f.Focused {
		label, clr = f.Placeholder, types.ColorTextDim
	}
	text.Draw(screen, label, fonts.Normal, f.X+8, baseline, clr)

	counter := fmt.Sprintf("%d/%d", len([]rune(f.Text)), nameLimit)
	cw := text.BoundString(fonts.Small, counter).Dx()
	text.Draw(screen, counter, fonts.Small, f.X+f.Width-cw-8, baseline, types.ColorTextDim)

	if f.Focused && f.frame/30%2 == 0 {
		cx := float32(f.X + 10 + text.BoundString(fonts.Normal, f.Text).Dx())
		vector.StrokeLine(screen, cx, y+6, cx, y+h-6, 2, types.ColorText, false)
	}
}
