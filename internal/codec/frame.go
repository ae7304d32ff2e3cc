// Package codec writes per tick snapshots in protobuf wire format.
//
// The layout, in .proto terms:
//
//	message Frame {
//	  bytes  game_id = 1;
//	  int64  tick    = 2;
//	  repeated Snake snakes = 3;
//	  repeated Coord foods  = 4;
//	  repeated Wall  walls  = 5;
//	  repeated int32 scores = 6 [packed = true];
//	  repeated Event events = 7;
//	}
//	message Coord { sint32 x = 1; sint32 y = 2; }
//	message Snake { int32 id = 1; int32 owner = 2; int32 direction = 3; bool alive = 4; repeated Coord body = 5; }
//	message Wall  { int32 kind = 1; repeated Coord cells = 2; }
//	message Event { int32 type = 1; int32 snake_id = 2; int32 score = 3; int32 cause = 4; }
package codec

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"

	"snakebattle/internal/domain"
)

var ErrMalformed = errors.New("malformed frame")

// WallCells is a wall flattened to its cells.
type WallCells struct {
	Kind  domain.WallKind
	Cells []domain.Coord
}

type Frame struct {
	GameID uuid.UUID
	Tick   int64
	Snakes []domain.Snake
	Foods  []domain.Coord
	Walls  []WallCells
	Scores []int
	Events []domain.Event
}

// NewFrame captures state after result. Nothing in the frame aliases state.
func NewFrame(gameID uuid.UUID, result *domain.TickResult, state *domain.SimulationState) *Frame {
	f := &Frame{
		GameID: gameID,
		Tick:   state.TickCount,
		Snakes: make([]domain.Snake, 0, len(state.Snakes)),
		Foods:  append([]domain.Coord(nil), state.Foods...),
		Walls:  make([]WallCells, 0),
		Scores: append([]int(nil), state.Scores...),
		Events: make([]domain.Event, 0),
	}
	for _, s := range state.Snakes {
		f.Snakes = append(f.Snakes, *s.Copy())
	}
	if state.Walls != nil {
		for _, w := range state.Walls.Walls {
			f.Walls = append(f.Walls, WallCells{Kind: w.Kind(), Cells: w.Cells()})
		}
	}
	if result != nil {
		f.Events = append(f.Events, result.Events...)
	}
	return f
}

const (
	fieldGameID = 1
	fieldTick   = 2
	fieldSnakes = 3
	fieldFoods  = 4
	fieldWalls  = 5
	fieldScores = 6
	fieldEvents = 7
)

func EncodeFrame(f *Frame) []byte {
	b := make([]byte, 0, 256)
	b = protowire.AppendTag(b, fieldGameID, protowire.BytesType)
	b = protowire.AppendBytes(b, f.GameID[:])
	b = protowire.AppendTag(b, fieldTick, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(f.Tick))

	for i := range f.Snakes {
		b = appendMessage(b, fieldSnakes, encodeSnake(&f.Snakes[i]))
	}
	for _, c := range f.Foods {
		b = appendMessage(b, fieldFoods, encodeCoord(c))
	}
	for _, w := range f.Walls {
		b = appendMessage(b, fieldWalls, encodeWall(w))
	}
	if len(f.Scores) > 0 {
		packed := make([]byte, 0, len(f.Scores))
		for _, s := range f.Scores {
			packed = protowire.AppendVarint(packed, uint64(int64(s)))
		}
		b = appendMessage(b, fieldScores, packed)
	}
	for _, e := range f.Events {
		b = appendMessage(b, fieldEvents, encodeEvent(e))
	}
	return b
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func encodeCoord(c domain.Coord) []byte {
	b := make([]byte, 0, 8)
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(c.X)))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(c.Y)))
}

func encodeSnake(s *domain.Snake) []byte {
	b := make([]byte, 0, 16+4*len(s.Body))
	b = appendInt(b, 1, int64(s.ID))
	b = appendInt(b, 2, int64(s.Owner))
	b = appendInt(b, 3, int64(s.Direction))
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(s.Alive))
	for _, c := range s.Body {
		b = appendMessage(b, 5, encodeCoord(c))
	}
	return b
}

func encodeWall(w WallCells) []byte {
	b := appendInt(nil, 1, int64(w.Kind))
	for _, c := range w.Cells {
		b = appendMessage(b, 2, encodeCoord(c))
	}
	return b
}

func encodeEvent(e domain.Event) []byte {
	b := appendInt(nil, 1, int64(e.Type))
	b = appendInt(b, 2, int64(e.SnakeID))
	b = appendInt(b, 3, int64(e.Score))
	return appendInt(b, 4, int64(e.Cause))
}

// fieldFunc handles one field of a message. Unknown fields are skipped by walk.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func walk(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		m, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func wantType(num protowire.Number, got, want protowire.Type) error {
	if got != want {
		return fmt.Errorf("%w: field %d has wire type %d, want %d", ErrMalformed, num, got, want)
	}
	return nil
}

func consumeVarint(num protowire.Number, typ protowire.Type, b []byte) (uint64, int, error) {
	if err := wantType(num, typ, protowire.VarintType); err != nil {
		return 0, 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
	}
	return v, n, nil
}

func consumeBytes(num protowire.Number, typ protowire.Type, b []byte) ([]byte, int, error) {
	if err := wantType(num, typ, protowire.BytesType); err != nil {
		return nil, 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(n))
	}
	return v, n, nil
}

func DecodeFrame(b []byte) (*Frame, error) {
	f := &Frame{
		Snakes: make([]domain.Snake, 0),
		Foods:  make([]domain.Coord, 0),
		Walls:  make([]WallCells, 0),
		Scores: make([]int, 0),
		Events: make([]domain.Event, 0),
	}
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case fieldGameID:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return 0, fmt.Errorf("%w: game id: %v", ErrMalformed, err)
			}
			f.GameID = id
			return n, nil

		case fieldTick:
			v, n, err := consumeVarint(num, typ, b)
			f.Tick = int64(v)
			return n, err

		case fieldSnakes:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			s, err := decodeSnake(v)
			if err != nil {
				return 0, err
			}
			f.Snakes = append(f.Snakes, s)
			return n, nil

		case fieldFoods:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			c, err := decodeCoord(v)
			if err != nil {
				return 0, err
			}
			f.Foods = append(f.Foods, c)
			return n, nil

		case fieldWalls:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			w, err := decodeWall(v)
			if err != nil {
				return 0, err
			}
			f.Walls = append(f.Walls, w)
			return n, nil

		case fieldScores:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			for len(v) > 0 {
				s, m := protowire.ConsumeVarint(v)
				if m < 0 {
					return 0, fmt.Errorf("%w: scores: %v", ErrMalformed, protowire.ParseError(m))
				}
				f.Scores = append(f.Scores, int(int64(s)))
				v = v[m:]
			}
			return n, nil

		case fieldEvents:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			e, err := decodeEvent(v)
			if err != nil {
				return 0, err
			}
			f.Events = append(f.Events, e)
			return n, nil
		}
		return 0, nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func decodeCoord(b []byte) (domain.Coord, error) {
	var c domain.Coord
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 && num != 2 {
			return 0, nil
		}
		v, n, err := consumeVarint(num, typ, b)
		if err != nil {
			return 0, err
		}
		if num == 1 {
			c.X = int32(protowire.DecodeZigZag(v))
		} else {
			c.Y = int32(protowire.DecodeZigZag(v))
		}
		return n, nil
	})
	return c, err
}

func decodeSnake(b []byte) (domain.Snake, error) {
	s := domain.Snake{Body: make([]domain.Coord, 0)}
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2, 3, 4:
			v, n, err := consumeVarint(num, typ, b)
			if err != nil {
				return 0, err
			}
			switch num {
			case 1:
				s.ID = int32(v)
			case 2:
				s.Owner = domain.Owner(v)
			case 3:
				s.Direction = domain.Direction(v)
			case 4:
				s.Alive = protowire.DecodeBool(v)
			}
			return n, nil
		case 5:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			c, err := decodeCoord(v)
			if err != nil {
				return 0, err
			}
			s.Body = append(s.Body, c)
			return n, nil
		}
		return 0, nil
	})
	return s, err
}

func decodeWall(b []byte) (WallCells, error) {
	w := WallCells{Cells: make([]domain.Coord, 0)}
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(num, typ, b)
			w.Kind = domain.WallKind(v)
			return n, err
		case 2:
			v, n, err := consumeBytes(num, typ, b)
			if err != nil {
				return 0, err
			}
			c, err := decodeCoord(v)
			if err != nil {
				return 0, err
			}
			w.Cells = append(w.Cells, c)
			return n, nil
		}
		return 0, nil
	})
	return w, err
}

func decodeEvent(b []byte) (domain.Event, error) {
	var e domain.Event
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num < 1 || num > 4 {
			return 0, nil
		}
		v, n, err := consumeVarint(num, typ, b)
		if err != nil {
			return 0, err
		}
		switch num {
		case 1:
			e.Type = domain.EventType(v)
		case 2:
			e.SnakeID = int32(v)
		case 3:
			e.Score = int(int64(v))
		case 4:
			e.Cause = domain.CellKind(v)
		}
		return n, nil
	})
	return e, err
}
