package types

import (
	"github.com/hajimehoshi/ebiten/v2"

	"snakebattle/internal/node"
)

type ScreenType int

const (
	ScreenMenu ScreenType = iota
	ScreenSettings
	ScreenGame
)

// ScreenFor maps a session phase to the screen that shows it.
func ScreenFor(p node.Phase) ScreenType {
	switch p {
	case node.PhaseMenu:
		return ScreenMenu
	case node.PhaseSettings:
		return ScreenSettings
	}
	return ScreenGame
}

type Screen interface {
	Update() UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	Snapshot() node.Snapshot
}
