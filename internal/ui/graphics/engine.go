package graphics

import (
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"

	"snakebattle/internal/node"
	"snakebattle/internal/ui/audio"
	"snakebattle/internal/ui/graphics/input"
	"snakebattle/internal/ui/types"
)

const (
	DefaultWidth  = 880
	DefaultHeight = 600
)

// Engine is the ebiten game. The screen follows the session phase of
// the latest snapshot; setters are safe to call from other goroutines.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	snap     node.Snapshot
	messages []string
	errors   []string
	cues     []audio.Cue
	quit     bool
	dataMu   sync.Mutex

	sound   *audio.Cues
	eventCh chan types.UIEvent
	logger  log.Logger
}

func NewEngine(sound *audio.Cues, logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		sound:         sound,
		eventCh:       make(chan types.UIEvent, 100),
		logger:        log.With(logger, "component", "ui"),
	}
}

func (e *Engine) RegisterScreens(menu, settings, game types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenSettings] = settings
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Snake vs AI")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	e.dataMu.Lock()
	phase := e.snap.Phase
	messages, errs, cues, quit := e.messages, e.errors, e.cues, e.quit
	e.messages, e.errors, e.cues = nil, nil, nil
	e.dataMu.Unlock()

	if quit {
		return ebiten.Termination
	}

	e.SetScreen(types.ScreenFor(phase))
	for _, msg := range messages {
		if s, ok := e.screenMap[e.currentScreen].(MessageSetter); ok {
			s.SetMessage(msg)
		}
	}
	for _, err := range errs {
		if s, ok := e.screenMap[e.currentScreen].(ErrorSetter); ok {
			s.SetError(err)
		}
	}
	if e.sound != nil && e.currentScreen != types.ScreenSettings && input.IsMutePressed() {
		e.sound.SetMuted(!e.sound.Muted())
	}
	for _, cue := range cues {
		e.sound.Play(cue)
	}

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	e.handleEvent(screen.Update())
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.Draw(screen)
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) Snapshot() node.Snapshot {
	e.dataMu.Lock()
	defer e.dataMu.Unlock()
	return e.snap
}

func (e *Engine) SetSnapshot(snap node.Snapshot) {
	e.dataMu.Lock()
	e.snap = snap
	e.dataMu.Unlock()
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen == screen {
		return
	}
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnExit()
	}
	e.currentScreen = screen
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}
}

func (e *Engine) SetError(err string) {
	e.dataMu.Lock()
	e.errors = append(e.errors, err)
	e.dataMu.Unlock()
}

func (e *Engine) SetMessage(msg string) {
	e.dataMu.Lock()
	e.messages = append(e.messages, msg)
	e.dataMu.Unlock()
}

func (e *Engine) PlayCue(cue audio.Cue) {
	e.dataMu.Lock()
	e.cues = append(e.cues, cue)
	e.dataMu.Unlock()
}

// Quit ends the ebiten loop on the next frame.
func (e *Engine) Quit() {
	e.dataMu.Lock()
	e.quit = true
	e.dataMu.Unlock()
}

func (e *Engine) handleEvent(event types.UIEvent) {
	if event.Type == types.UIEventNone {
		return
	}
	select {
	case e.eventCh <- event:
	default:
		level.Warn(e.logger).Log("msg", "ui event channel full, dropping event", "type", int(event.Type))
	}
}

type ErrorSetter interface {
	SetError(err string)
}

type MessageSetter interface {
	SetMessage(msg string)
}
