package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"snakebattle/internal/node"
	"snakebattle/internal/ui/graphics/components"
	"snakebattle/internal/ui/graphics/input"
	"snakebattle/internal/ui/types"
)

// messageFrames is how long a transient message stays up at 60 fps.
const messageFrames = 120

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	btnPause *components.Button
	paused   *components.Overlay
	finished *components.Overlay

	message     string
	messageLeft int
	errorMsg    string
	snap        node.Snapshot
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(0, 0, 220, 400),
		keyboard:      input.NewKeyboardHandler(),
		btnPause:      components.NewButton(0, 0, 90, 28, "Pause"),
		paused: components.NewOverlay("PAUSED",
			components.NewButton(0, 0, 200, 40, "Resume"),
			components.NewButton(0, 0, 200, 40, "Main Menu"),
		),
		finished: components.NewOverlay("GAME OVER",
			components.NewButton(0, 0, 200, 40, "Play Again"),
			components.NewButton(0, 0, 200, 40, "Main Menu"),
		),
	}
}

func (s *GameScreen) Update() types.UIEvent {
	if s.messageLeft > 0 {
		s.messageLeft--
	}

	s.snap = s.ctx.Snapshot()
	w, h := s.ctx.Size()

	switch s.snap.Phase {
	case node.PhasePlaying:
		s.btnPause.SetPosition(w-250, 12)
		if s.btnPause.Update() || input.IsPausePressed() || input.IsEscapePressed() {
			return types.UIEvent{Type: types.UIEventTogglePause}
		}
		if dir := s.keyboard.Update(); dir.Valid() {
			return types.UIEvent{Type: types.UIEventSteer, Payload: types.SteerData{Direction: dir}}
		}

	case node.PhasePaused:
		switch s.paused.Update(w, h) {
		case 0:
			return types.UIEvent{Type: types.UIEventTogglePause}
		case 1:
			return types.UIEvent{Type: types.UIEventToMenu}
		}
		if input.IsPausePressed() {
			return types.UIEvent{Type: types.UIEventTogglePause}
		}
		if input.IsEscapePressed() {
			return types.UIEvent{Type: types.UIEventToMenu}
		}

	case node.PhaseGameOver, node.PhaseWin:
		s.describeResult()
		switch s.finished.Update(w, h) {
		case 0:
			return types.UIEvent{Type: types.UIEventStart}
		case 1:
			return types.UIEvent{Type: types.UIEventToMenu}
		}
		if input.IsEnterPressed() || input.IsSpacePressed() {
			return types.UIEvent{Type: types.UIEventStart}
		}
		if input.IsEscapePressed() {
			return types.UIEvent{Type: types.UIEventToMenu}
		}
	}
	return types.None()
}

func (s *GameScreen) describeResult() {
	state := s.snap.State
	if state == nil {
		return
	}
	name := ""
	if s.snap.Settings != nil {
		name = s.snap.Settings.PlayerName
	}

	s.finished.Lines = s.finished.Lines[:0]
	for _, snake := range state.Snakes {
		s.finished.Lines = append(s.finished.Lines,
			fmt.Sprintf("%s: %d", components.Name(snake, name), state.Score(snake.ID)))
	}

	if s.snap.Phase == node.PhaseGameOver {
		s.finished.Title = "GAME OVER"
		s.finished.TitleColor = types.ColorError
		return
	}
	winner := state.Snake(s.snap.Winner)
	if winner == nil {
		s.finished.Title = "ROUND OVER"
		s.finished.TitleColor = types.ColorTextHighlight
		return
	}
	if winner.IsPlayer() {
		s.finished.Title = "YOU WIN!"
	} else {
		s.finished.Title = components.Name(winner, name) + " WINS!"
	}
	s.finished.TitleColor = types.SnakeColor(winner.ID)
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()
	state := s.snap.State

	if state == nil {
		types.DrawCentered(screen, "Laying out the board...", fonts.Normal, w/2, h/2, types.ColorTextDim)
		return
	}

	s.fieldRenderer.CalculateLayout(w, h, state.Field)
	s.fieldRenderer.DrawField(screen, state.Field)
	s.fieldRenderer.DrawWalls(screen, state.Walls)
	s.fieldRenderer.DrawFood(screen, state.Foods)
	for _, snake := range state.Snakes {
		s.fieldRenderer.DrawSnake(screen, snake)
	}

	name := ""
	if s.snap.Settings != nil {
		name = s.snap.Settings.PlayerName
	}
	s.scoreboard.X = w - 240
	s.scoreboard.Y = 50
	s.scoreboard.Height = h - 100
	s.scoreboard.Draw(screen, state, name)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)

	switch s.snap.Phase {
	case node.PhasePaused:
		s.paused.Draw(screen, w, h)
	case node.PhaseGameOver, node.PhaseWin:
		s.finished.Draw(screen, w, h)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()
	state := s.snap.State

	info := fmt.Sprintf("Tick %d  |  %s  |  Food: %d", state.TickCount, state.Settings.Difficulty, len(state.Foods))
	if state.Settings.Custom != nil {
		info = fmt.Sprintf("Tick %d  |  custom  |  Food: %d", state.TickCount, len(state.Foods))
	}
	text.Draw(screen, info, fonts.Normal, 20, 30, types.ColorText)

	if s.snap.Phase == node.PhasePlaying {
		s.btnPause.Draw(screen)
	}

	scoreText := fmt.Sprintf("Score: %d", state.Score(0))
	bounds := text.BoundString(fonts.Normal, scoreText)
	text.Draw(screen, scoreText, fonts.Normal, w-bounds.Dx()-20, 30, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	text.Draw(screen, "W/A/S/D or Arrows to move  |  SPACE or ESC to pause  |  M to mute", fonts.Small, 20, h-15, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-15, types.ColorError)
	}
	if s.messageLeft > 0 && s.message != "" {
		types.DrawBold(screen, s.message, fonts.Normal, (w-240)/2, h/2, types.Scale(types.ColorBackground, 0.5))
		types.DrawCentered(screen, s.message, fonts.Normal, (w-240)/2, h/2, types.ColorTextHighlight)
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
	s.message = ""
	s.messageLeft = 0
	s.snap = s.ctx.Snapshot()
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

// SetMessage shows msg over the board for a couple of seconds.
func (s *GameScreen) SetMessage(msg string) {
	s.message = msg
	s.messageLeft = messageFrames
}
