package boat

import (
	"errors"
	"fmt"
)

var (
	ErrBoat            = errors.New("boat error")
	ErrSeatOccupied    = errors.New("seat occupied")
	ErrDuplicateRower  = errors.New("rower already aboard")
	ErrOarAssignment   = errors.New("oar assignment failed")
	ErrNoRowers        = errors.New("no rower holds the oars")
	ErrAnchorDropped   = errors.New("anchor dropped")
	ErrInvalidState    = errors.New("invalid boat state")
	ErrInvalidRower    = errors.New("invalid rower")
	ErrInvalidPosition = errors.New("invalid seat position")
)

// Error is returned by every boat operation. It unwraps to its Kind and also
// matches ErrBoat.
type Error struct {
	Op   string
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("boat.%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("boat.%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func (e *Error) Is(target error) bool { return target == ErrBoat }

func opError(op string, kind error, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
