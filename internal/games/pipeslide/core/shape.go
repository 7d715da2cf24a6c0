package core

import "fmt"

// Kind is the pipe family.
type Kind uint8

const (
	KindStraight Kind = iota
	KindElbow
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindStraight:
		return "straight"
	case KindElbow:
		return "elbow"
	default:
		return "unknown"
	}
}

// Shape is a pipe shape: a family plus the direction that encodes its
// rotation state. Straight(Top) and Straight(Bottom) are geometrically the
// same vertical segment; they differ only in rotation state.
type Shape struct {
	Kind Kind
	Dir  Direction
}

// Straight returns a straight pipe in rotation state d.
func Straight(d Direction) Shape {
	return Shape{Kind: KindStraight, Dir: d}
}

// Elbow returns an elbow pipe in rotation state d.
func Elbow(d Direction) Shape {
	return Shape{Kind: KindElbow, Dir: d}
}

// AllShapes returns all 8 rotation states, straights first.
func AllShapes() []Shape {
	shapes := make([]Shape, 0, 8)
	for _, d := range Directions {
		shapes = append(shapes, Straight(d))
	}
	for _, d := range Directions {
		shapes = append(shapes, Elbow(d))
	}
	return shapes
}

// Points returns the two tile edges this pipe connects.
//
//	Straight(d) connects d and d.Opposite()
//	Elbow(d)    connects d and d.Clockwise()
func (s Shape) Points() [2]Direction {
	if s.Kind == KindElbow {
		return [2]Direction{s.Dir, s.Dir.Clockwise()}
	}
	return [2]Direction{s.Dir, s.Dir.Opposite()}
}

// Rotated returns the shape after one clockwise rotation step.
// Four rotations return the original shape.
func (s Shape) Rotated() Shape {
	return Shape{Kind: s.Kind, Dir: s.Dir.Clockwise()}
}

// Connects reports whether the pipe has an end at edge d.
func (s Shape) Connects(d Direction) bool {
	p := s.Points()
	return p[0] == d || p[1] == d
}

// Other returns the end opposite to d along the segment.
// The second result is false when the pipe has no end at d.
func (s Shape) Other(d Direction) (Direction, bool) {
	p := s.Points()
	switch d {
	case p[0]:
		return p[1], true
	case p[1]:
		return p[0], true
	default:
		return 0, false
	}
}

// Equivalent reports whether both shapes connect the same pair of edges.
func (s Shape) Equivalent(o Shape) bool {
	a, b := s.Points(), o.Points()
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

var dirTokens = [4]byte{'^', '>', 'v', '<'}

// String returns the compact token used in layout files, e.g. "S>" or "Ev".
func (s Shape) String() string {
	prefix := byte('S')
	if s.Kind == KindElbow {
		prefix = 'E'
	}
	if int(s.Dir) >= len(dirTokens) {
		return string(prefix) + "?"
	}
	return string([]byte{prefix, dirTokens[s.Dir]})
}

// ParseShape parses a token produced by Shape.String.
func ParseShape(token string) (Shape, error) {
	if len(token) != 2 {
		return Shape{}, fmt.Errorf("invalid shape token %q", token)
	}

	var kind Kind
	switch token[0] {
	case 'S', 's':
		kind = KindStraight
	case 'E', 'e':
		kind = KindElbow
	default:
		return Shape{}, fmt.Errorf("invalid shape kind in %q", token)
	}

	for i, t := range dirTokens {
		if token[1] == t {
			return Shape{Kind: kind, Dir: Direction(i)}, nil
		}
	}
	return Shape{}, fmt.Errorf("invalid shape direction in %q", token)
}
