package types

import (
	"snakebattle/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStart
	UIEventTogglePause
	UIEventOpenSettings
	UIEventCloseSettings
	UIEventToMenu
	UIEventSteer
	UIEventSetDifficulty
	UIEventSetWinScore
	UIEventSetPlayerName
	UIEventQuit
)

type SteerData struct {
	Direction domain.Direction
}

var none = UIEvent{Type: UIEventNone}

// None is the event a screen returns when nothing happened.
func None() UIEvent {
	return none
}
