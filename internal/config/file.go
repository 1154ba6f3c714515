package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://focusclock-config.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// fileConfig mirrors the on-disk format; nil fields keep their defaults.
type fileConfig struct {
	DefaultSubject *string `json:"default_subject"`
	TickIntervalMs *int    `json:"tick_interval_ms"`
	MaxTickGapMs   *int    `json:"max_tick_gap_ms"`
	Journal        *string `json:"journal"`
	Debug          *bool   `json:"debug"`
	LogFile        *string `json:"log_file,omitempty"`
}

// applyFile validates raw against the embedded schema and merges it into cfg.
func applyFile(cfg Config, raw []byte) (Config, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return cfg, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidConfig, err)
	}

	sch, err := getSchema()
	if err != nil {
		return cfg, fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if fc.DefaultSubject != nil {
		cfg.DefaultSubject = *fc.DefaultSubject
	}
	if fc.TickIntervalMs != nil {
		cfg.TickInterval = time.Duration(*fc.TickIntervalMs) * time.Millisecond
	}
	if fc.MaxTickGapMs != nil {
		cfg.MaxTickGap = time.Duration(*fc.MaxTickGapMs) * time.Millisecond
	}
	if fc.Journal != nil {
		cfg.Journal = *fc.Journal
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	return cfg, nil
}

func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// MarshalJSON writes cfg in the config file format, so the output of
// `focusclock config` can be saved and loaded back.
func (c Config) MarshalJSON() ([]byte, error) {
	tick := int(c.TickInterval / time.Millisecond)
	gap := int(c.MaxTickGap / time.Millisecond)
	fc := fileConfig{
		DefaultSubject: &c.DefaultSubject,
		TickIntervalMs: &tick,
		MaxTickGapMs:   &gap,
		Journal:        &c.Journal,
		Debug:          &c.Debug,
	}
	if c.LogFile != "" {
		fc.LogFile = &c.LogFile
	}
	return json.Marshal(fc)
}
