package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"snakebattle/internal/ui/graphics/components"
	"snakebattle/internal/ui/graphics/input"
	"snakebattle/internal/ui/types"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnStart    *components.Button
	btnSettings *components.Button
	btnQuit     *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:         ctx,
		btnStart:    components.NewButton(0, 0, 250, 50, "Start Game"),
		btnSettings: components.NewButton(0, 0, 250, 50, "Settings"),
		btnQuit:     components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnStart.SetPosition(centerX-125, centerY-60)
	s.btnSettings.SetPosition(centerX-125, centerY)
	s.btnQuit.SetPosition(centerX-125, centerY+60)

	if s.btnStart.Update() || input.IsEnterPressed() || input.IsSpacePressed() {
		return types.UIEvent{Type: types.UIEventStart}
	}
	if s.btnSettings.Update() {
		return types.UIEvent{Type: types.UIEventOpenSettings}
	}
	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}
	return types.None()
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	types.DrawBold(screen, "SNAKE vs AI", fonts.Normal, w/2, 100, types.ColorTextHighlight)
	types.DrawCentered(screen, "Outgrow the computer before it outgrows you", fonts.Normal, w/2, 130, types.ColorTextDim)

	snap := s.ctx.Snapshot()
	if snap.Settings != nil {
		info := fmt.Sprintf("First to reach %d points wins!  |  Difficulty: %s",
			snap.Settings.WinScore, snap.Settings.Difficulty)
		types.DrawCentered(screen, info, fonts.Normal, w/2, h/2-90, types.ColorText)
	}

	s.btnStart.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnQuit.Draw(screen)

	types.DrawCentered(screen, "ENTER to start  |  Arrows or WASD to steer  |  SPACE to pause  |  ESC to quit",
		fonts.Small, w/2, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
