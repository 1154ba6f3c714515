package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/abhisek/focusclock/internal/accrual"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MemoryJournal keeps the transition journal in process memory only.
const MemoryJournal = ":memory:"

// Config holds all runtime settings.
type Config struct {
	// DefaultSubject is restored when leaving rest before any subject was chosen.
	DefaultSubject string

	// TickInterval is the nominal period between clock ticks.
	TickInterval time.Duration

	// MaxTickGap is the exclusive ceiling on a single tick's delta.
	MaxTickGap time.Duration

	// Journal is the SQLite DSN for the transition journal.
	Journal string

	Debug   bool
	LogFile string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultSubject: accrual.Math.String(),
		TickInterval:   time.Second,
		MaxTickGap:     accrual.DefaultMaxTickGap,
		Journal:        MemoryJournal,
	}
}

// Load builds a Config from defaults, the JSON config file at path, and
// FOCUSCLOCK_* environment variables, in increasing priority. An empty path
// means the default location, which may be absent.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	optional := false
	if path == "" {
		path = os.Getenv("FOCUSCLOCK_CONFIG")
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path, optional = p, true
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = applyFile(cfg, data); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && optional:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	return ApplyEnv(cfg)
}

// ApplyEnv overrides cfg with FOCUSCLOCK_* environment variables.
func ApplyEnv(cfg Config) (Config, error) {
	if s := os.Getenv("FOCUSCLOCK_SUBJECT"); s != "" {
		cfg.DefaultSubject = s
	}
	if v := os.Getenv("FOCUSCLOCK_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: FOCUSCLOCK_TICK_MS: %v", ErrInvalidConfig, err)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("FOCUSCLOCK_MAX_GAP_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: FOCUSCLOCK_MAX_GAP_MS: %v", ErrInvalidConfig, err)
		}
		cfg.MaxTickGap = time.Duration(ms) * time.Millisecond
	}
	if j := os.Getenv("FOCUSCLOCK_JOURNAL"); j != "" {
		cfg.Journal = j
	}
	if os.Getenv("FOCUSCLOCK_DEBUG") == "1" {
		cfg.Debug = true
	}
	if f := os.Getenv("FOCUSCLOCK_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}
	return cfg, nil
}

// Validate checks that the settings can drive the engine.
func (c Config) Validate() error {
	if _, err := accrual.ParseSubject(c.DefaultSubject); err != nil {
		return fmt.Errorf("%w: default subject: %v", ErrInvalidConfig, err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	}
	if c.MaxTickGap <= c.TickInterval {
		return fmt.Errorf("%w: max tick gap %v must exceed tick interval %v", ErrInvalidConfig, c.MaxTickGap, c.TickInterval)
	}
	if c.Journal == "" {
		return fmt.Errorf("%w: journal DSN is empty", ErrInvalidConfig)
	}
	return nil
}

// Subject returns the parsed default subject.
func (c Config) Subject() accrual.Subject {
	s, err := accrual.ParseSubject(c.DefaultSubject)
	if err != nil {
		return accrual.Math
	}
	return s
}

// DefaultPath resolves the config file path:
// 1. $XDG_CONFIG_HOME/focusclock/config.json
// 2. ~/.config/focusclock/config.json
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "focusclock", "config.json"), nil
}

// DefaultLogPath resolves where debug logs go when no log file is set:
// $XDG_STATE_HOME/focusclock/focusclock.log, else ~/.local/state/...
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "focusclock", "focusclock.log"), nil
}
