package screens

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"snakebattle/internal/domain"
	"snakebattle/internal/ui/graphics/components"
	"snakebattle/internal/ui/graphics/input"
	"snakebattle/internal/ui/types"
)

var (
	difficulties     = []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}
	difficultyLabels = []string{"Easy", "Medium", "Hard"}
)

type SettingsScreen struct {
	ctx types.ScreenContext

	btnWin        []*components.Button
	btnDifficulty []*components.Button
	inputName     *components.NameField
	btnBack       *components.Button
}

func NewSettingsScreen(ctx types.ScreenContext) *SettingsScreen {
	s := &SettingsScreen{
		ctx:       ctx,
		inputName: components.NewNameField(300, 35, "Your name"),
		btnBack:   components.NewButton(0, 0, 140, 45, "Back"),
	}
	for _, score := range domain.WinScorePresets {
		s.btnWin = append(s.btnWin, components.NewButton(0, 0, 66, 40, strconv.Itoa(score)))
	}
	for _, label := range difficultyLabels {
		s.btnDifficulty = append(s.btnDifficulty, components.NewButton(0, 0, 92, 40, label))
	}
	return s
}

func (s *SettingsScreen) layout() {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 130

	for i, b := range s.btnWin {
		b.SetPosition(centerX-150+i*78, startY)
	}
	for i, b := range s.btnDifficulty {
		b.SetPosition(centerX-150+i*104, startY+90)
	}
	s.inputName.X, s.inputName.Y = centerX-150, startY+180
	s.btnBack.SetPosition(centerX-70, startY+250)
}

func (s *SettingsScreen) Update() types.UIEvent {
	s.layout()

	if settings := s.ctx.Snapshot().Settings; settings != nil {
		for i, b := range s.btnWin {
			b.Selected = domain.WinScorePresets[i] == settings.WinScore
		}
		for i, b := range s.btnDifficulty {
			b.Selected = difficulties[i] == settings.Difficulty
		}
	}

	if s.inputName.Update() {
		return s.commitName()
	}
	if s.inputName.Focused {
		if input.IsEscapePressed() || input.IsTabPressed() {
			if s.inputName.SetFocus(false) {
				return s.commitName()
			}
		}
		return types.None()
	}
	for i, b := range s.btnWin {
		if b.Update() {
			return types.UIEvent{Type: types.UIEventSetWinScore, Payload: domain.WinScorePresets[i]}
		}
	}
	for i, b := range s.btnDifficulty {
		if b.Update() {
			return types.UIEvent{Type: types.UIEventSetDifficulty, Payload: difficulties[i]}
		}
	}

	if s.btnBack.Update() || input.IsEscapePressed() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventCloseSettings}
	}
	if input.IsTabPressed() {
		s.inputName.SetFocus(true)
	}
	return types.None()
}

func (s *SettingsScreen) commitName() types.UIEvent {
	return types.UIEvent{Type: types.UIEventSetPlayerName, Payload: strings.TrimSpace(s.inputName.Text)}
}

func (s *SettingsScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := 130

	types.DrawBold(screen, "SETTINGS", fonts.Normal, w/2, 60, types.ColorTextHighlight)

	text.Draw(screen, "Points to win:", fonts.Normal, centerX-150, startY-15, types.ColorText)
	text.Draw(screen, "Difficulty:", fonts.Normal, centerX-150, startY+75, types.ColorText)
	text.Draw(screen, "Player name:", fonts.Normal, centerX-150, startY+165, types.ColorText)

	for _, b := range s.btnWin {
		b.Draw(screen)
	}
	for _, b := range s.btnDifficulty {
		b.Draw(screen)
	}
	s.inputName.Draw(screen)
	s.btnBack.Draw(screen)

	if settings := s.ctx.Snapshot().Settings; settings != nil {
		p := settings.Profile()
		info := "Speed " + strconv.FormatFloat(p.TickRate, 'f', 1, 64) + " moves/s  |  " +
			strconv.Itoa(p.WallCount+p.LShapeCount) + " walls  |  " +
			strconv.Itoa(p.FoodCount) + " pellets"
		types.DrawCentered(screen, info, fonts.Normal, w/2, startY+140, types.ColorTextDim)
	}

	types.DrawCentered(screen, "Click to choose  |  TAB to edit name, ENTER to save  |  ESC to go back",
		fonts.Small, w/2, h-30, types.ColorTextDim)
}

func (s *SettingsScreen) OnEnter() {
	if settings := s.ctx.Snapshot().Settings; settings != nil {
		s.inputName.Text = settings.PlayerName
	}
	s.inputName.SetFocus(false)
}

func (s *SettingsScreen) OnExit() {
	s.inputName.SetFocus(false)
}
