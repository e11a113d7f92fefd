package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-bajo/instrument/fingering"
	"github.com/RyanBlaney/sonido-bajo/instrument/tuning"
	"github.com/RyanBlaney/sonido-bajo/logging"
)

var ErrInvalidConfig = errors.New("invalid config")

// ModePolicy decides what an unknown fingering mode name does
type ModePolicy string

const (
	PolicyFallback ModePolicy = "fallback" // use FallbackMode and warn
	PolicyStrict   ModePolicy = "strict"   // return an empty pattern and warn
)

// Environment overrides applied by Load
const (
	EnvDefaultTuning = "BAJO_DEFAULT_TUNING"
	EnvLogLevel      = "BAJO_LOG_LEVEL"
	EnvReferenceFret = "BAJO_REFERENCE_FRET"
)

// EngineConfig configures the engine and the CLI
type EngineConfig struct {
	DefaultTuning string     `json:"default_tuning" yaml:"default_tuning"`
	ModePolicy    ModePolicy `json:"mode_policy" yaml:"mode_policy"`
	FallbackMode  string     `json:"fallback_mode" yaml:"fallback_mode"`

	// Fingering
	ReferenceFret int                          `json:"reference_fret" yaml:"reference_fret"` // -1 derives it from the first pick
	MatchOctave   bool                         `json:"match_octave" yaml:"match_octave"`     // exact pitch instead of pitch class
	Weights       map[string]fingering.Weights `json:"weights,omitempty" yaml:"weights,omitempty"`

	// User tunings, added to the presets
	Tunings []tuning.Tuning `json:"tunings,omitempty" yaml:"tunings,omitempty"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultEngineConfig returns sensible defaults
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		DefaultTuning: tuning.DefaultKey,
		ModePolicy:    PolicyFallback,
		FallbackMode:  fingering.Shortest.String(),
		ReferenceFret: -1,
		MatchOctave:   false,
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*EngineConfig, error) {
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultEngineConfig()
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	return cfg, err
}

// LoadFile is Load for a file that must exist
func LoadFile(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *EngineConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *EngineConfig) applyEnvOverrides() {
	if name := os.Getenv(EnvDefaultTuning); name != "" {
		c.DefaultTuning = name
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if fret := os.Getenv(EnvReferenceFret); fret != "" {
		if n, err := strconv.Atoi(fret); err == nil {
			c.ReferenceFret = n
		}
	}
}

// Validate checks every field and reports the first problem
func (c *EngineConfig) Validate() error {
	registry := tuning.NewRegistry()
	for _, t := range c.Tunings {
		if err := registry.Register(t); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := registry.Lookup(c.DefaultTuning); err != nil {
		return fmt.Errorf("%w: default_tuning: %v", ErrInvalidConfig, err)
	}

	switch c.ModePolicy {
	case PolicyFallback, PolicyStrict:
	default:
		return fmt.Errorf("%w: mode_policy must be %q or %q, got %q",
			ErrInvalidConfig, PolicyFallback, PolicyStrict, c.ModePolicy)
	}

	if _, err := fingering.ParseMode(c.FallbackMode); err != nil {
		return fmt.Errorf("%w: fallback_mode: %v", ErrInvalidConfig, err)
	}

	if c.ReferenceFret < -1 {
		return fmt.Errorf("%w: reference_fret must be -1 or a fret, got %d", ErrInvalidConfig, c.ReferenceFret)
	}

	if _, err := c.ModeWeights(); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ModeWeights converts the weight overrides to fingering modes
func (c *EngineConfig) ModeWeights() (map[fingering.Mode]fingering.Weights, error) {
	out := make(map[fingering.Mode]fingering.Weights, len(c.Weights))
	for name, w := range c.Weights {
		m, err := fingering.ParseMode(name)
		if err != nil {
			return nil, fmt.Errorf("%w: weights: %v", ErrInvalidConfig, err)
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("%w: weights %s: %v", ErrInvalidConfig, name, err)
		}
		out[m] = w
	}
	return out, nil
}

// FingeringOptions derives the fingering engine options
func (c *EngineConfig) FingeringOptions() (fingering.Options, error) {
	weights, err := c.ModeWeights()
	if err != nil {
		return fingering.Options{}, err
	}
	return fingering.Options{
		Weights:       weights,
		ReferenceFret: c.ReferenceFret,
		MatchOctave:   c.MatchOctave,
	}, nil
}
