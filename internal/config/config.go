package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/rowboat/internal/boat"
)

// BoatConfig is a crew manifest: who sits where and how the boat starts out.
type BoatConfig struct {
	ID         string
	Crew       []CrewConfig
	AssignOars bool
	Anchored   bool
}

type CrewConfig struct {
	Name string `toml:"name"`
	Seat string `toml:"seat"`
}

type fileConfig struct {
	ID         string       `toml:"id"`
	Crew       []CrewConfig `toml:"crew"`
	AssignOars bool         `toml:"assign_oars"`
	Anchored   bool         `toml:"anchored"`
}

func DefaultBoatConfig() BoatConfig {
	return BoatConfig{Crew: []CrewConfig{}}
}

func LoadBoatConfig(path string) (BoatConfig, error) {
	cfg := DefaultBoatConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return BoatConfig{}, fmt.Errorf("load boat config (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return BoatConfig{}, fmt.Errorf("load boat config (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("id") {
		cfg.ID = strings.TrimSpace(raw.ID)
	}
	if meta.IsDefined("crew") {
		cfg.Crew = normalizeCrew(raw.Crew)
	}
	if meta.IsDefined("assign_oars") {
		cfg.AssignOars = raw.AssignOars
	}
	if meta.IsDefined("anchored") {
		cfg.Anchored = raw.Anchored
	}

	if err := ValidateBoatConfig(cfg); err != nil {
		return BoatConfig{}, err
	}
	return cfg, nil
}

func ValidateBoatConfig(cfg BoatConfig) error {
	names := make(map[string]int, len(cfg.Crew))
	seats := make(map[boat.Position]int, len(cfg.Crew))
	for i, member := range cfg.Crew {
		if err := ValidateCrewEntry(member); err != nil {
			return fmt.Errorf("crew[%d] invalid: %w", i, err)
		}
		name := strings.TrimSpace(member.Name)
		if j, ok := names[name]; ok {
			return fmt.Errorf("crew[%d] invalid: %w: %q also listed at crew[%d]", i, boat.ErrDuplicateRower, name, j)
		}
		names[name] = i
		pos, _ := boat.ParsePosition(member.Seat)
		if j, ok := seats[pos]; ok {
			return fmt.Errorf("crew[%d] invalid: %w: %s also assigned at crew[%d]", i, boat.ErrSeatOccupied, pos, j)
		}
		seats[pos] = i
	}
	if cfg.AssignOars {
		if _, ok := seats[boat.PositionMiddle]; !ok {
			return fmt.Errorf("assign_oars requires a middle-seat rower: %w", boat.ErrOarAssignment)
		}
	}
	return nil
}

func ValidateCrewEntry(cfg CrewConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("name is required: %w", boat.ErrInvalidRower)
	}
	if _, err := boat.ParsePosition(cfg.Seat); err != nil {
		return err
	}
	return nil
}

// Build creates a boat and applies the manifest through the boat's own
// operations: seat the crew, assign oars, then drop the anchor.
func Build(cfg BoatConfig, opts ...boat.Option) (*boat.Boat, error) {
	if err := ValidateBoatConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.ID != "" {
		opts = append(opts, boat.WithID(cfg.ID))
	}
	b := boat.New(opts...)

	for i, member := range cfg.Crew {
		pos, err := boat.ParsePosition(member.Seat)
		if err != nil {
			return nil, fmt.Errorf("crew[%d]: %w", i, err)
		}
		if err := b.AddRower(boat.Rower{Name: member.Name}, pos); err != nil {
			return nil, fmt.Errorf("crew[%d]: %w", i, err)
		}
	}
	if cfg.AssignOars {
		if err := b.AssignOars(); err != nil {
			return nil, fmt.Errorf("assign oars: %w", err)
		}
	}
	if cfg.Anchored {
		if err := b.DropAnchor(); err != nil {
			return nil, fmt.Errorf("drop anchor: %w", err)
		}
	}
	return b, nil
}

func normalizeCrew(in []CrewConfig) []CrewConfig {
	out := make([]CrewConfig, 0, len(in))
	for _, member := range in {
		out = append(out, CrewConfig{
			Name: strings.TrimSpace(member.Name),
			Seat: strings.TrimSpace(member.Seat),
		})
	}
	return out
}
