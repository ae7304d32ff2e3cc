// Package audio plays short synthesised beeps for game events.
package audio

import (
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type Cue int

const (
	CueScore Cue = iota
	CueDeath
	CueRespawn
	CueWin
	CueGameOver
)

type tone struct {
	freq float64
	dur  float64
}

var tones = map[Cue]tone{
	CueScore:    {880, 0.08},
	CueDeath:    {196, 0.30},
	CueRespawn:  {660, 0.12},
	CueWin:      {1320, 0.40},
	CueGameOver: {147, 0.60},
}

// Cues owns the process wide audio context. Create it once.
type Cues struct {
	players map[Cue]*audio.Player
	muted   bool
	logger  log.Logger
}

func NewCues(logger log.Logger) *Cues {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	ctx := audio.NewContext(sampleRate)
	c := &Cues{players: make(map[Cue]*audio.Player, len(tones)), logger: logger}
	for cue, t := range tones {
		c.players[cue] = ctx.NewPlayerFromBytes(beep(t.freq, t.dur))
	}
	return c
}

func (c *Cues) SetMuted(m bool) {
	c.muted = m
}

func (c *Cues) Muted() bool {
	return c.muted
}

func (c *Cues) Play(cue Cue) {
	if c == nil || c.muted {
		return
	}
	p, ok := c.players[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		level.Debug(c.logger).Log("msg", "rewind failed", "cue", int(cue), "err", err)
		return
	}
	p.Play()
}

// beep is a decaying sine as 16 bit little endian stereo PCM.
func beep(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * 6000 * math.Exp(-4*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
