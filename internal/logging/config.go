package logging

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel     = "ROWBOAT_LOG_LEVEL"
	EnvLogTimestamp = "ROWBOAT_LOG_TIMESTAMP"
	EnvLogNoColor   = "ROWBOAT_LOG_NOCOLOR"
	EnvLogBypass    = "ROWBOAT_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup for a profile.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Bypass    bool
}

// envOverrides holds raw values so a malformed variable falls back to the
// profile default instead of failing startup.
type envOverrides struct {
	Level     string `env:"ROWBOAT_LOG_LEVEL"`
	Timestamp string `env:"ROWBOAT_LOG_TIMESTAMP"`
	NoColor   string `env:"ROWBOAT_LOG_NOCOLOR"`
	Bypass    string `env:"ROWBOAT_LOG_BYPASS"`
}

var configureOnce sync.Once

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the global logger for profile. Only the first call has
// any effect.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg, err := Resolve(profile)
		install(cfg)
		if err != nil {
			l := Component("logging")
			l.Warn().Err(err).Msg("env overrides ignored")
		}
	})
}

// Resolve returns the profile defaults with env overrides applied.
func Resolve(profile Profile) (Config, error) {
	cfg := defaultConfig(profile)
	var raw envOverrides
	if err := env.Parse(&raw); err != nil {
		return cfg, fmt.Errorf("parse log env: %w", err)
	}
	applyEnvOverrides(&cfg, raw)
	return cfg, nil
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Config, raw envOverrides) {
	if lvl, ok := parseLevel(raw.Level); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(raw.Timestamp); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(raw.NoColor); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(raw.Bypass); ok {
		cfg.Bypass = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
