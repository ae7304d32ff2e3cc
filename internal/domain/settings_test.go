package domain

import (
	"testing"
	"time"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"", DifficultyMedium, false},
		{"MEDIUM", DifficultyMedium, false},
		{"nightmare", DifficultyMedium, true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProfilesGetHarder(t *testing.T) {
	easy, medium, hard := Profile(DifficultyEasy), Profile(DifficultyMedium), Profile(DifficultyHard)
	if !(easy.TickRate < medium.TickRate && medium.TickRate < hard.TickRate) {
		t.Error("tick rate should increase with difficulty")
	}
	if !(easy.MistakeChance > medium.MistakeChance && medium.MistakeChance > hard.MistakeChance) {
		t.Error("mistake chance should decrease with difficulty")
	}
	if !(easy.FoodCount > hard.FoodCount && easy.WallCount < hard.WallCount) {
		t.Error("hard should have less food and more walls")
	}
	if got := hard.TickInterval(); got != 100*time.Millisecond {
		t.Errorf("hard interval = %v", got)
	}
	if got := Profile(Difficulty(42)); got.Difficulty != DifficultyMedium {
		t.Errorf("unknown tier should fall back to medium, got %v", got.Difficulty)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero cell", func(s *Settings) { s.CellSize = 0 }, true},
		{"ragged canvas", func(s *Settings) { s.CanvasWidth = 610 }, true},
		{"tiny grid", func(s *Settings) { s.CanvasWidth, s.CanvasHeight = 100, 100 }, true},
		{"no snakes", func(s *Settings) { s.SnakeCount = 0 }, true},
		{"crowd", func(s *Settings) { s.SnakeCount = 9 }, true},
		{"zero win", func(s *Settings) { s.WinScore = 0 }, true},
		{"bad tier", func(s *Settings) { s.Difficulty = Difficulty(7) }, true},
		{"custom ok", func(s *Settings) { s.Custom = &DifficultyProfile{TickRate: 5} }, false},
		{"custom no rate", func(s *Settings) { s.Custom = &DifficultyProfile{} }, true},
		{"custom odds", func(s *Settings) { s.Custom = &DifficultyProfile{TickRate: 5, MistakeChance: 1.5} }, true},
		{"custom negative", func(s *Settings) { s.Custom = &DifficultyProfile{TickRate: 5, FoodCount: -1} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettingsProfileAndCopy(t *testing.T) {
	s := DefaultSettings()
	s.Difficulty = DifficultyHard
	if s.Profile() != Profile(DifficultyHard) {
		t.Fatal("profile should follow the tier")
	}

	s.Custom = &DifficultyProfile{TickRate: 3, FoodCount: 2}
	c := s.Copy()
	c.Custom.FoodCount = 9
	c.WinScore = 1

	if s.Profile().FoodCount != 2 {
		t.Error("copy shares the custom profile")
	}
	if s.WinScore != DefaultWinScore {
		t.Error("copy shares fields")
	}
	if f := s.Field(); f.Width != 30 || f.Height != 25 {
		t.Errorf("field %dx%d", f.Width, f.Height)
	}
}
