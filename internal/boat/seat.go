package boat

import (
	"strings"
)

// Position is one of the three fixed seats, bow to stern.
type Position string

const (
	PositionFront  Position = "front"
	PositionMiddle Position = "middle"
	PositionBack   Position = "back"
)

// Positions returns every seat position in bow-to-stern order.
func Positions() []Position {
	return []Position{PositionFront, PositionMiddle, PositionBack}
}

func (p Position) Valid() bool {
	switch p {
	case PositionFront, PositionMiddle, PositionBack:
		return true
	default:
		return false
	}
}

func (p Position) String() string { return string(p) }

// ParsePosition maps a case-insensitive seat name to a Position.
func ParsePosition(raw string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", opError("ParsePosition", ErrInvalidPosition, "%q", raw)
	}
	return p, nil
}

type Rower struct {
	Name string
}

func (r Rower) normalized() Rower {
	return Rower{Name: strings.TrimSpace(r.Name)}
}

type Seat struct {
	Position Position
	Rower    *Rower
}

func (s Seat) Occupied() bool { return s.Rower != nil }

type Oar struct {
	ID    int
	InUse bool
}

type Anchor struct {
	Dropped bool
}
