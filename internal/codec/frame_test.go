package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"snakebattle/internal/domain"
)

func testState(t *testing.T) *domain.SimulationState {
	t.Helper()
	settings := domain.DefaultSettings()
	settings.Seed = 3
	s, err := domain.NewSimulationState(settings, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFrameRoundTrip(t *testing.T) {
	s := testState(t)
	id := uuid.New()
	result := s.Tick(domain.DirectionDown)
	// Negative and dead values have to survive too.
	s.Snakes[1].Alive = false
	s.Snakes[1].Body = append(s.Snakes[1].Body, domain.Coord{X: -1, Y: 0})
	result.Events = append(result.Events, domain.Event{Type: domain.EventDeath, SnakeID: 1, Score: 3, Cause: domain.CellBoundary})

	want := NewFrame(id, result, s)
	got, err := DecodeFrame(EncodeFrame(want))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\n got %+v\nwant %+v", got, want)
	}
	if got.GameID != id || got.Tick != 1 || len(got.Walls) != s.Walls.Len() {
		t.Errorf("header %v %d walls %d", got.GameID, got.Tick, len(got.Walls))
	}
}

func TestNewFrameDoesNotAlias(t *testing.T) {
	s := testState(t)
	f := NewFrame(uuid.New(), nil, s)
	s.Snakes[0].Body[0] = domain.Coord{X: 99, Y: 99}
	s.Foods[0] = domain.Coord{X: 99, Y: 99}
	if f.Snakes[0].Body[0] == (domain.Coord{X: 99, Y: 99}) || f.Foods[0] == (domain.Coord{X: 99, Y: 99}) {
		t.Error("frame shares memory with the state")
	}
}

func TestDecodeFrameRejectsGarbage(t *testing.T) {
	tests := map[string][]byte{
		"truncated tag":    {0x80},
		"short bytes":      {0x0a, 0x10, 0x01},
		"bad game id":      {0x0a, 0x02, 0x01, 0x02},
		"wrong wire type":  {0x10 | 0x02, 0x00},
		"truncated varint": {0x10, 0xff},
	}
	for name, b := range tests {
		if _, err := DecodeFrame(b); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestDecodeFrameSkipsUnknownFields(t *testing.T) {
	b := EncodeFrame(&Frame{Tick: 4})
	b = append(b, 0x78, 0x05) // field 15, varint
	f, err := DecodeFrame(b)
	if err != nil {
		t.Fatal(err)
	}
	if f.Tick != 4 {
		t.Errorf("tick = %d", f.Tick)
	}
}

func TestStream(t *testing.T) {
	s := testState(t)
	id := uuid.New()
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for i := 0; i < 5; i++ {
		r := s.Tick(domain.DirectionNone)
		if err := w.Write(NewFrame(id, r, s)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if w.Count() != 5 {
		t.Errorf("count = %d", w.Count())
	}

	frames, err := ReadAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 5 {
		t.Fatalf("read %d frames", len(frames))
	}
	for i, f := range frames {
		if f.Tick != int64(i+1) || f.GameID != id {
			t.Errorf("frame %d: tick %d id %v", i, f.Tick, f.GameID)
		}
	}

	cut := buf.Bytes()[:buf.Len()-1]
	if _, err := ReadAll(bytes.NewReader(cut)); !errors.Is(err, ErrMalformed) {
		t.Errorf("truncated stream err = %v", err)
	}
}
