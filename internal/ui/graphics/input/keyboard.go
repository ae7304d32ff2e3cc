package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snakebattle/internal/domain"
)

type binding struct {
	keys []ebiten.Key
	dir  domain.Direction
}

var steering = []binding{
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, domain.DirectionUp},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, domain.DirectionDown},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, domain.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, domain.DirectionRight},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction pressed this frame, DirectionNone if none.
func (kh *KeyboardHandler) Update() domain.Direction {
	for _, b := range steering {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				return b.dir
			}
		}
	}
	return domain.DirectionNone
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsSpacePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// IsPausePressed covers both Space and P.
func IsPausePressed() bool {
	return IsSpacePressed() || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func IsMutePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}
