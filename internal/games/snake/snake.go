package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Unit movement vectors. The zero vector means "not moving yet".
var (
	DirUp    = core.Point{X: 0, Y: -1}
	DirDown  = core.Point{X: 0, Y: 1}
	DirLeft  = core.Point{X: -1, Y: 0}
	DirRight = core.Point{X: 1, Y: 0}
)

// Snake is the body model: an ordered list of segments with the head at
// index 0, a committed direction, a buffered next direction and a growth flag.
type Snake struct {
	origin    core.Point
	body      []core.Point // Head at index 0
	direction core.Point   // Applied on the current step
	nextDir   core.Point   // Buffered input, committed by the next Step
	growing   bool         // If true, keep the tail on the next Step
}

// NewSnake creates a one-segment snake at origin.
func NewSnake(origin core.Point) *Snake {
	s := &Snake{origin: origin}
	s.Reset()
	return s
}

// Reset puts a single head segment back at the origin, not moving.
func (s *Snake) Reset() {
	s.body = []core.Point{s.origin}
	s.direction = core.Point{}
	s.nextDir = core.Point{}
	s.growing = false
}

// SetDirection buffers v for the next Step. Vectors that are not one of the
// four unit directions, and the exact opposite of the committed direction,
// are ignored.
func (s *Snake) SetDirection(v core.Point) {
	if !isUnit(v) {
		return
	}
	if isOpposite(v, s.direction) {
		return
	}
	s.nextDir = v
}

// Step commits the buffered direction and moves the head one cell.
// The tail is dropped unless growth was marked.
func (s *Snake) Step() {
	s.direction = s.nextDir

	head := s.body[0].Add(s.direction)
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// MarkGrowth makes the next Step keep the tail segment.
func (s *Snake) MarkGrowth() {
	s.growing = true
}

// Head returns the head segment.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed movement vector.
func (s *Snake) Direction() core.Point {
	return s.direction
}

// PendingDirection returns the buffered movement vector.
func (s *Snake) PendingDirection() core.Point {
	return s.nextDir
}

// Growing reports whether the next Step keeps the tail.
func (s *Snake) Growing() bool {
	return s.growing
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a cell with another segment.
func (s *Snake) HitsItself() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// isOpposite checks whether v reverses d. The zero vector has no opposite.
func isOpposite(v, d core.Point) bool {
	return (v.X != 0 && v.X == -d.X) || (v.Y != 0 && v.Y == -d.Y)
}

func isUnit(v core.Point) bool {
	return v == DirUp || v == DirDown || v == DirLeft || v == DirRight
}

// DirectionName returns a readable name for a movement vector.
func DirectionName(v core.Point) string {
	switch v {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case core.Point{}:
		return "none"
	default:
		return "unknown"
	}
}
