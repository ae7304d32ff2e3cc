package domain

type Owner int

const (
	OwnerPlayer Owner = 0
	OwnerAI     Owner = 1
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "ai"
}

// Snake body is head first. A respawn replaces the whole value.
type Snake struct {
	ID        int32
	Owner     Owner
	Body      []Coord
	Direction Direction
	Alive     bool
}

func NewSnake(id int32, owner Owner, head Coord, dir Direction) *Snake {
	return &Snake{
		ID:        id,
		Owner:     owner,
		Body:      []Coord{head},
		Direction: dir,
		Alive:     true,
	}
}

func (s *Snake) IsPlayer() bool {
	return s.Owner == OwnerPlayer
}

func (s *Snake) Head() Coord {
	if len(s.Body) == 0 {
		return Coord{}
	}
	return s.Body[0]
}

func (s *Snake) Length() int {
	return len(s.Body)
}

// SetDirection refuses the exact reverse of the current heading.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.Valid() || dir.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = dir
	return true
}

// Advance prepends newHead and drops the tail unless the snake grows.
func (s *Snake) Advance(newHead Coord, grow bool) {
	body := make([]Coord, 0, len(s.Body)+1)
	body = append(body, newHead)
	body = append(body, s.Body...)
	if !grow {
		body = body[:len(body)-1]
	}
	s.Body = body
}

func (s *Snake) Occupies(c Coord) bool {
	for _, cell := range s.Body {
		if cell == c {
			return true
		}
	}
	return false
}

func (s *Snake) Copy() *Snake {
	body := make([]Coord, len(s.Body))
	copy(body, s.Body)
	return &Snake{
		ID:        s.ID,
		Owner:     s.Owner,
		Body:      body,
		Direction: s.Direction,
		Alive:     s.Alive,
	}
}
