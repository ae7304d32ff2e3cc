package types

import "image/color"

var (
	ColorBackground    = color.RGBA{24, 26, 30, 255}
	ColorFieldBg       = color.RGBA{36, 40, 46, 255}
	ColorGrid          = color.RGBA{50, 54, 62, 255}
	ColorWall          = color.RGBA{120, 120, 130, 255}
	ColorFood          = color.RGBA{240, 70, 70, 255}
	ColorOverlay       = color.RGBA{0, 0, 0, 170}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{140, 145, 150, 255}
	ColorTextHighlight = color.RGBA{250, 220, 90, 255}
	ColorButton        = color.RGBA{64, 68, 80, 255}
	ColorButtonHover   = color.RGBA{86, 90, 104, 255}
	ColorButtonActive  = color.RGBA{60, 110, 170, 255}
	ColorButtonText    = color.RGBA{225, 225, 225, 255}
	ColorInputBg       = color.RGBA{46, 50, 56, 255}
	ColorInputBorder   = color.RGBA{96, 100, 110, 255}
	ColorInputFocused  = color.RGBA{100, 150, 200, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
)

var (
	playerColor = color.RGBA{90, 200, 100, 255}
	aiColors    = []color.RGBA{
		{90, 140, 250, 255},
		{250, 170, 70, 255},
		{190, 100, 240, 255},
	}
)

// SnakeColor gives the player green and cycles the AI palette for the rest.
func SnakeColor(id int32) color.RGBA {
	if id <= 0 {
		return playerColor
	}
	return aiColors[int(id-1)%len(aiColors)]
}

// Scale multiplies every channel by f, saturating at 255.
func Scale(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(max(0, min(255, float64(v)*f)))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
