package boat

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State is the boat's position in the idle/rowing/anchored machine.
type State string

const (
	StateIdle     State = "IDLE"
	StateRowing   State = "ROWING"
	StateAnchored State = "ANCHORED"
)

func (s State) String() string { return string(s) }

const requiredOars = 2

// Boat is the rowboat aggregate. It is not safe for concurrent use.
type Boat struct {
	id     string
	log    zerolog.Logger
	seats  []Seat
	oars   []Oar
	anchor Anchor
	state  State
	holder *Rower
}

type Option func(*Boat)

// WithLogger sets the logger the boat derives its boat_id-tagged logger from.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Boat) { b.log = logger }
}

// WithID replaces the generated boat id. Blank ids are ignored.
func WithID(id string) Option {
	return func(b *Boat) {
		if v := strings.TrimSpace(id); v != "" {
			b.id = v
		}
	}
}

// New returns an idle boat with three empty seats, two free oars and the anchor
// raised.
func New(opts ...Option) *Boat {
	positions := Positions()
	b := &Boat{
		id:    uuid.NewString(),
		log:   log.Logger,
		seats: make([]Seat, 0, len(positions)),
		oars:  []Oar{{ID: 1}, {ID: 2}},
		state: StateIdle,
	}
	for _, pos := range positions {
		b.seats = append(b.seats, Seat{Position: pos})
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	b.log = b.log.With().Str("boat_id", b.id).Logger()
	return b
}

func (b *Boat) ID() string          { return b.id }
func (b *Boat) State() State        { return b.state }
func (b *Boat) IsMoving() bool      { return b.state == StateRowing }
func (b *Boat) AnchorDropped() bool { return b.anchor.Dropped }

// RowerWithOars returns the current oar-holder, if any.
func (b *Boat) RowerWithOars() (Rower, bool) {
	if b.holder == nil {
		return Rower{}, false
	}
	return *b.holder, true
}

// Oars returns a copy of the boat's oars.
func (b *Boat) Oars() []Oar {
	out := make([]Oar, len(b.oars))
	copy(out, b.oars)
	return out
}

// AddRower seats r at pos. Seating is refused while rowing.
func (b *Boat) AddRower(r Rower, pos Position) error {
	const op = "AddRower"
	if b.state == StateRowing {
		return b.reject(op, opError(op, ErrInvalidState, "cannot seat a rower while %s", b.state))
	}
	r = r.normalized()
	if r.Name == "" {
		return b.reject(op, opError(op, ErrInvalidRower, "name is required"))
	}
	if !pos.Valid() {
		return b.reject(op, opError(op, ErrInvalidPosition, "%q", string(pos)))
	}
	if at, ok := b.seatOf(r.Name); ok {
		return b.reject(op, opError(op, ErrDuplicateRower, "%q already sits at %s", r.Name, at))
	}
	seat := b.seat(pos)
	if seat.Occupied() {
		return b.reject(op, opError(op, ErrSeatOccupied, "%s seat holds %q", pos, seat.Rower.Name))
	}

	seat.Rower = &r
	b.log.Info().Str("op", op).Str("rower", r.Name).Stringer("seat", pos).Msg("rower seated")
	return nil
}

// AssignOars hands both oars to the middle-seat rower.
func (b *Boat) AssignOars() error {
	const op = "AssignOars"
	if b.state != StateIdle {
		return b.reject(op, opError(op, ErrInvalidState, "cannot assign oars while %s", b.state))
	}
	middle := b.seat(PositionMiddle)
	if !middle.Occupied() {
		return b.reject(op, opError(op, ErrOarAssignment, "middle seat is empty"))
	}
	if b.holder != nil {
		return b.reject(op, opError(op, ErrOarAssignment, "oars already assigned to %q", b.holder.Name))
	}
	if len(b.oars) < requiredOars {
		return b.reject(op, opError(op, ErrOarAssignment, "need %d oars, have %d", requiredOars, len(b.oars)))
	}

	for i := range b.oars {
		b.oars[i].InUse = true
	}
	holder := *middle.Rower
	b.holder = &holder
	b.log.Info().Str("op", op).Str("rower", holder.Name).Msg("oars assigned")
	return nil
}

// Row starts rowing. Calling it while already rowing does nothing.
func (b *Boat) Row() error {
	const op = "Row"
	if b.state == StateRowing {
		return nil
	}
	if b.anchor.Dropped {
		return b.reject(op, opError(op, ErrAnchorDropped, "raise the anchor first"))
	}
	if b.holder == nil {
		return b.reject(op, opError(op, ErrNoRowers, "oars are not assigned"))
	}
	middle := b.seat(PositionMiddle)
	if !middle.Occupied() || middle.Rower.Name != b.holder.Name {
		return b.reject(op, opError(op, ErrNoRowers, "oar-holder %q is not in the middle seat", b.holder.Name))
	}

	b.transition(op, StateRowing)
	return nil
}

// StopRowing returns a rowing boat to idle and releases the oars. It does
// nothing in any other state.
func (b *Boat) StopRowing() error {
	if b.state != StateRowing {
		return nil
	}
	b.releaseOars()
	b.transition("StopRowing", StateIdle)
	return nil
}

// DropAnchor stops the boat, releases the oars and anchors it.
func (b *Boat) DropAnchor() error {
	const op = "DropAnchor"
	if b.state == StateAnchored {
		return nil
	}
	if b.state == StateRowing {
		if err := b.StopRowing(); err != nil {
			return err
		}
	}
	b.releaseOars()
	b.anchor.Dropped = true
	b.transition(op, StateAnchored)
	return nil
}

// RaiseAnchor returns an anchored boat to idle. It does nothing otherwise.
func (b *Boat) RaiseAnchor() error {
	if b.state != StateAnchored {
		return nil
	}
	b.anchor.Dropped = false
	b.transition("RaiseAnchor", StateIdle)
	return nil
}

func (b *Boat) seat(pos Position) *Seat {
	for i := range b.seats {
		if b.seats[i].Position == pos {
			return &b.seats[i]
		}
	}
	// seats are built from Positions() and pos is validated by callers
	panic("boat: missing seat " + string(pos))
}

func (b *Boat) seatOf(name string) (Position, bool) {
	for _, s := range b.seats {
		if s.Occupied() && s.Rower.Name == name {
			return s.Position, true
		}
	}
	return "", false
}

func (b *Boat) releaseOars() {
	for i := range b.oars {
		b.oars[i].InUse = false
	}
	b.holder = nil
}

func (b *Boat) transition(op string, to State) {
	from := b.state
	b.state = to
	b.log.Info().
		Str("op", op).
		Stringer("from", from).
		Stringer("to", to).
		Msg("boat state transition")
}

func (b *Boat) reject(op string, err error) error {
	b.log.Debug().Str("op", op).Stringer("state", b.state).Err(err).Msg("boat operation rejected")
	return err
}
