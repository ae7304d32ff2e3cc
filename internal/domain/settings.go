package domain

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyProfile bundles everything a tier changes.
type DifficultyProfile struct {
	Difficulty    Difficulty
	TickRate      float64
	WallCount     int
	LShapeCount   int
	FoodCount     int
	MistakeChance float64
}

var profiles = map[Difficulty]DifficultyProfile{
	DifficultyEasy: {
		Difficulty:    DifficultyEasy,
		TickRate:      6,
		WallCount:     3,
		LShapeCount:   1,
		FoodCount:     12,
		MistakeChance: 0.30,
	},
	DifficultyMedium: {
		Difficulty:    DifficultyMedium,
		TickRate:      7.5,
		WallCount:     5,
		LShapeCount:   2,
		FoodCount:     10,
		MistakeChance: 0.15,
	},
	DifficultyHard: {
		Difficulty:    DifficultyHard,
		TickRate:      10,
		WallCount:     8,
		LShapeCount:   3,
		FoodCount:     8,
		MistakeChance: 0.05,
	},
}

func Profile(d Difficulty) DifficultyProfile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyMedium]
}

func (p DifficultyProfile) Validate() error {
	if p.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %v", p.TickRate)
	}
	if p.WallCount < 0 || p.LShapeCount < 0 || p.FoodCount < 0 {
		return fmt.Errorf("counts must not be negative")
	}
	if p.MistakeChance < 0 || p.MistakeChance > 1 {
		return fmt.Errorf("mistake chance must be within [0,1], got %v", p.MistakeChance)
	}
	return nil
}

// TickInterval converts the tick rate into the clock period.
func (p DifficultyProfile) TickInterval() time.Duration {
	if p.TickRate <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / p.TickRate)
}

// WinScorePresets are the selectable win thresholds.
var WinScorePresets = []int{10, 25, 50, 100}

const (
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 500
	DefaultCellSize     = 20
	DefaultSnakeCount   = 2
	DefaultWinScore     = 25

	PlayerRespawnDelay = 2 * time.Second
	AIRespawnDelay     = 3 * time.Second
	RoundEndDelay      = 1 * time.Second
)

// Settings is the whole configuration surface of a game.
type Settings struct {
	CanvasWidth  int32
	CanvasHeight int32
	CellSize     int32
	SnakeCount   int
	WinScore     int
	Difficulty   Difficulty
	Seed         uint64
	PlayerName   string

	// Custom replaces the tier profile when set.
	Custom *DifficultyProfile
}

func DefaultSettings() *Settings {
	return &Settings{
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		CellSize:     DefaultCellSize,
		SnakeCount:   DefaultSnakeCount,
		WinScore:     DefaultWinScore,
		Difficulty:   DifficultyMedium,
		PlayerName:   "You",
	}
}

func (s *Settings) Profile() DifficultyProfile {
	if s.Custom != nil {
		return *s.Custom
	}
	return Profile(s.Difficulty)
}

func (s *Settings) Field() *Field {
	return NewFieldFromCanvas(s.CanvasWidth, s.CanvasHeight, s.CellSize)
}

func (s *Settings) Validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", s.CellSize)
	}
	if s.CanvasWidth%s.CellSize != 0 || s.CanvasHeight%s.CellSize != 0 {
		return fmt.Errorf("canvas %dx%d is not a multiple of cell size %d", s.CanvasWidth, s.CanvasHeight, s.CellSize)
	}
	if s.CanvasWidth/s.CellSize < 6 || s.CanvasHeight/s.CellSize < 6 {
		return fmt.Errorf("grid %dx%d is too small", s.CanvasWidth/s.CellSize, s.CanvasHeight/s.CellSize)
	}
	if s.SnakeCount < 1 || s.SnakeCount > 8 {
		return fmt.Errorf("snake count must be 1-8, got %d", s.SnakeCount)
	}
	if s.WinScore <= 0 {
		return fmt.Errorf("win score must be positive, got %d", s.WinScore)
	}
	if _, ok := profiles[s.Difficulty]; !ok {
		return fmt.Errorf("unknown difficulty %d", int(s.Difficulty))
	}
	if s.Custom != nil {
		if err := s.Custom.Validate(); err != nil {
			return fmt.Errorf("custom profile: %w", err)
		}
	}
	return nil
}

func (s *Settings) Copy() *Settings {
	c := *s
	if s.Custom != nil {
		p := *s.Custom
		c.Custom = &p
	}
	return &c
}
