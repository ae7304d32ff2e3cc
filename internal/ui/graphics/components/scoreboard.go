package components

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snakebattle/internal/domain"
	"snakebattle/internal/ui/types"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Name is what the scoreboard shows for a snake.
func Name(snake *domain.Snake, playerName string) string {
	if snake.IsPlayer() {
		if playerName == "" {
			return "You"
		}
		return playerName
	}
	return fmt.Sprintf("AI %d", snake.ID)
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, state *domain.SimulationState, playerName string) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Scale(types.ColorFieldBg, 0.8), false)
	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()
	text.Draw(screen, "SCORES", fonts.Normal, sb.X+10, sb.Y+20, types.ColorTextHighlight)
	if state == nil {
		return
	}

	target := fmt.Sprintf("first to %d", state.Settings.WinScore)
	text.Draw(screen, target, fonts.Small, sb.X+sb.Width-len(target)*7-10, sb.Y+20, types.ColorTextDim)

	snakes := make([]*domain.Snake, len(state.Snakes))
	copy(snakes, state.Snakes)
	sort.SliceStable(snakes, func(i, j int) bool {
		si, sj := state.Score(snakes[i].ID), state.Score(snakes[j].ID)
		if si != sj {
			return si > sj
		}
		return snakes[i].ID < snakes[j].ID
	})

	y := sb.Y + 45
	for i, snake := range snakes {
		if y > sb.Y+sb.Height-20 {
			break
		}

		vector.DrawFilledRect(screen, float32(sb.X+10), float32(y-10), 12, 12, types.SnakeColor(snake.ID), false)

		name := Name(snake, playerName)
		if len(name) > 12 {
			name = name[:12] + "..."
		}
		textColor := types.ColorText
		if snake.IsPlayer() {
			textColor = types.ColorTextHighlight
		}
		if !snake.Alive {
			textColor = types.ColorTextDim
		}

		line := fmt.Sprintf("%d. %s: %d", i+1, name, state.Score(snake.ID))
		text.Draw(screen, line, fonts.Normal, sb.X+28, y, textColor)
		if !snake.Alive {
			text.Draw(screen, "[dead]", fonts.Small, sb.X+sb.Width-52, y, types.ColorError)
		}

		y += 22
	}
}
