package engine

import (
	"fmt"

	"github.com/RyanBlaney/sonido-bajo/config"
	"github.com/RyanBlaney/sonido-bajo/instrument/fingering"
	"github.com/RyanBlaney/sonido-bajo/instrument/tuning"
	"github.com/RyanBlaney/sonido-bajo/logging"
)

// Engine is the call boundary used by notation front ends. Every method
// is total: bad input yields a documented sentinel instead of an error.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	cfg       config.EngineConfig
	tunings   *tuning.Registry
	fingering map[string]*fingering.Engine
	fallback  fingering.Mode
	logger    logging.Logger
}

// New builds an engine from a validated copy of cfg. A nil cfg uses
// DefaultEngineConfig.
func New(cfg *config.EngineConfig) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := tuning.NewRegistry()
	for _, t := range cfg.Tunings {
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("failed to register tuning %q: %w", t.Name, err)
		}
	}

	opts, err := cfg.FingeringOptions()
	if err != nil {
		return nil, err
	}

	engines := make(map[string]*fingering.Engine)
	for _, t := range registry.List() {
		fe, err := fingering.NewEngine(t, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to build fingering engine for %q: %w", t.Name, err)
		}
		engines[t.Name] = fe
	}

	fallback, err := fingering.ParseMode(cfg.FallbackMode)
	if err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{"component": "engine"})
	logger.Debug("Engine ready", logging.Fields{
		"default_tuning": cfg.DefaultTuning,
		"tunings":        len(engines),
		"mode_policy":    string(cfg.ModePolicy),
	})

	c := *cfg
	c.Tunings = nil
	return &Engine{
		cfg:       c,
		tunings:   registry,
		fingering: engines,
		fallback:  fallback,
		logger:    logger,
	}, nil
}

// Default returns an engine with the built-in configuration
func Default() *Engine {
	e, err := New(config.DefaultEngineConfig())
	if err != nil {
		panic(fmt.Sprintf("default engine config rejected: %v", err))
	}
	return e
}

// DefaultTuning names the tuning used when a call does not pick one
func (e *Engine) DefaultTuning() string {
	return e.cfg.DefaultTuning
}

// reject logs a rejected boundary call. Rejections are expected input
// errors, so they stay at debug level.
func (e *Engine) reject(op string, err error, fields logging.Fields) {
	f := logging.Fields{"op": op, "error": err.Error()}
	for k, v := range fields {
		f[k] = v
	}
	e.logger.Debug("Rejected input", f)
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
