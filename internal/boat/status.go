package boat

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Status is a read-only snapshot of a boat. Empty names mean the seat or the
// oars are free.
type Status struct {
	State         State               `json:"state"`
	IsMoving      bool                `json:"is_moving"`
	AnchorDropped bool                `json:"anchor_dropped"`
	Seats         map[Position]string `json:"seats"`
	RowerWithOars string              `json:"rower_with_oars"`
}

func (b *Boat) Status() Status {
	seats := make(map[Position]string, len(b.seats))
	for _, s := range b.seats {
		name := ""
		if s.Occupied() {
			name = s.Rower.Name
		}
		seats[s.Position] = name
	}
	holder := ""
	if b.holder != nil {
		holder = b.holder.Name
	}
	return Status{
		State:         b.state,
		IsMoving:      b.IsMoving(),
		AnchorDropped: b.anchor.Dropped,
		Seats:         seats,
		RowerWithOars: holder,
	}
}

// Occupant returns the rower seated at pos.
func (s Status) Occupant(pos Position) (string, bool) {
	name := s.Seats[pos]
	return name, name != ""
}

func (s Status) HasOarHolder() bool { return s.RowerWithOars != "" }

// MarshalJSON renders free seats and a free oar pair as null.
func (s Status) MarshalJSON() ([]byte, error) {
	seats := make(map[Position]*string, len(s.Seats))
	for _, pos := range Positions() {
		if name, ok := s.Occupant(pos); ok {
			seats[pos] = &name
		} else {
			seats[pos] = nil
		}
	}
	var holder *string
	if s.HasOarHolder() {
		h := s.RowerWithOars
		holder = &h
	}
	return json.Marshal(struct {
		State         State                `json:"state"`
		IsMoving      bool                 `json:"is_moving"`
		AnchorDropped bool                 `json:"anchor_dropped"`
		Seats         map[Position]*string `json:"seats"`
		RowerWithOars *string              `json:"rower_with_oars"`
	}{
		State:         s.State,
		IsMoving:      s.IsMoving,
		AnchorDropped: s.AnchorDropped,
		Seats:         seats,
		RowerWithOars: holder,
	})
}

func (s Status) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("state", s.State).
		Bool("is_moving", s.IsMoving).
		Bool("anchor_dropped", s.AnchorDropped)
	for _, pos := range Positions() {
		e.Str("seat_"+string(pos), s.Seats[pos])
	}
	e.Str("rower_with_oars", s.RowerWithOars)
}
