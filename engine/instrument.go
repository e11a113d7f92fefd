package engine

import (
	"github.com/RyanBlaney/sonido-bajo/config"
	"github.com/RyanBlaney/sonido-bajo/instrument/fingering"
	"github.com/RyanBlaney/sonido-bajo/instrument/fretboard"
	"github.com/RyanBlaney/sonido-bajo/instrument/tuning"
	"github.com/RyanBlaney/sonido-bajo/logging"
)

// ListTunings returns every known tuning, presets first
func (e *Engine) ListTunings() []tuning.Tuning {
	return e.tunings.List()
}

// TuningInfo returns a tuning by name, the zero Tuning when unknown
func (e *Engine) TuningInfo(name string) tuning.Tuning {
	t, err := e.tunings.Lookup(name)
	if err != nil {
		e.reject("get_tuning_info", err, logging.Fields{"tuning": name})
		return tuning.Tuning{}
	}
	return t
}

// ChordPositions maps a chord onto the default tuning
func (e *Engine) ChordPositions(name string) []fretboard.Position {
	return e.ChordPositionsWithTuning(name, e.cfg.DefaultTuning)
}

// ChordPositionsWithTuning maps a chord onto a named tuning, empty when
// either is unknown
func (e *Engine) ChordPositionsWithTuning(name, tuningName string) []fretboard.Position {
	t, err := e.tunings.Lookup(tuningName)
	if err != nil {
		e.reject("get_chord_positions_with_tuning", err, logging.Fields{"chord": name, "tuning": tuningName})
		return []fretboard.Position{}
	}
	return orEmpty(fretboard.ChordPositions(name, t))
}

// CalculateFingering lays pitches (semitones above E1) out on the
// default tuning
func (e *Engine) CalculateFingering(pitches []int, mode string) fingering.Pattern {
	return e.CalculateFingeringWithTuning(pitches, mode, e.cfg.DefaultTuning)
}

// CalculateFingeringWithTuning lays pitches out on a named tuning. An
// unknown tuning, or an unknown mode under the strict policy, yields an
// empty pattern.
func (e *Engine) CalculateFingeringWithTuning(pitches []int, mode, tuningName string) fingering.Pattern {
	fe, ok := e.fingering[tuningName]
	if !ok {
		e.reject("calculate_fingering", tuning.ErrUnknownTuning, logging.Fields{"tuning": tuningName})
		return emptyPattern()
	}

	m, ok := e.resolveMode(mode)
	if !ok {
		return emptyPattern()
	}
	return fe.Calculate(pitches, m)
}

func (e *Engine) resolveMode(name string) (fingering.Mode, bool) {
	m, err := fingering.ParseMode(name)
	if err == nil {
		return m, true
	}

	if e.cfg.ModePolicy == config.PolicyStrict {
		e.logger.Warn("Unknown fingering mode", logging.Fields{"mode": name, "policy": string(e.cfg.ModePolicy)})
		return 0, false
	}
	e.logger.Warn("Unknown fingering mode, falling back", logging.Fields{
		"mode":     name,
		"fallback": e.fallback.String(),
	})
	return e.fallback, true
}

func emptyPattern() fingering.Pattern {
	return fingering.Pattern{Positions: []fingering.FretPosition{}}
}
