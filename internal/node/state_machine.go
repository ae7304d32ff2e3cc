package node

import "fmt"

// Phase is the session level state the simulation runs under.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseSettings
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseSettings:
		return "settings"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Configurable reports whether difficulty and win score may change.
func (p Phase) Configurable() bool {
	return p == PhaseMenu || p == PhaseSettings
}

// Finished reports whether the round is over.
func (p Phase) Finished() bool {
	return p == PhaseGameOver || p == PhaseWin
}

type Command int

const (
	CommandStart Command = iota
	CommandTogglePause
	CommandOpenSettings
	CommandCloseSettings
	CommandToMenu

	// issued by the driver itself
	commandGameOver
	commandWin
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandTogglePause:
		return "toggle_pause"
	case CommandOpenSettings:
		return "open_settings"
	case CommandCloseSettings:
		return "close_settings"
	case CommandToMenu:
		return "to_menu"
	case commandGameOver:
		return "game_over"
	case commandWin:
		return "win"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

var transitions = map[Phase]map[Command]Phase{
	PhaseMenu: {
		CommandStart:        PhasePlaying,
		CommandOpenSettings: PhaseSettings,
	},
	PhaseSettings: {
		CommandCloseSettings: PhaseMenu,
	},
	PhasePlaying: {
		CommandTogglePause: PhasePaused,
		commandGameOver:    PhaseGameOver,
		commandWin:         PhaseWin,
	},
	PhasePaused: {
		CommandTogglePause: PhasePlaying,
		CommandToMenu:      PhaseMenu,
	},
	PhaseGameOver: {
		CommandStart:  PhasePlaying,
		CommandToMenu: PhaseMenu,
	},
	PhaseWin: {
		CommandStart:  PhasePlaying,
		CommandToMenu: PhaseMenu,
	},
}

// StateMachine tracks the session phase. It is not safe for concurrent
// use; Driver serialises access.
type StateMachine struct {
	phase Phase
}

func NewStateMachine() *StateMachine {
	return &StateMachine{phase: PhaseMenu}
}

func (sm *StateMachine) Phase() Phase {
	return sm.phase
}

// Can reports whether cmd is valid in the current phase.
func (sm *StateMachine) Can(cmd Command) bool {
	_, ok := transitions[sm.phase][cmd]
	return ok
}

// Apply performs cmd. An invalid command changes nothing and returns false.
func (sm *StateMachine) Apply(cmd Command) (from, to Phase, ok bool) {
	from = sm.phase
	to, ok = transitions[from][cmd]
	if !ok {
		return from, from, false
	}
	sm.phase = to
	return from, to, true
}
