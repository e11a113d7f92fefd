package fingering

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/instrument/fretboard"
	"github.com/RyanBlaney/sonido-bajo/instrument/tuning"
	"github.com/RyanBlaney/sonido-bajo/logging"
)

// Options tunes an Engine
type Options struct {
	Weights       map[Mode]Weights // per-mode overrides of DefaultWeights
	ReferenceFret int              // anchor fret; negative derives it from the first pick
	MatchOctave   bool             // match requested pitches exactly instead of by class
}

// DefaultOptions returns options using the built-in weights
func DefaultOptions() Options {
	return Options{ReferenceFret: -1}
}

// Engine lays pitch sequences out on one tuning. It holds no per-call
// state and is safe for concurrent use.
type Engine struct {
	tuning     tuning.Tuning
	strategies map[Mode]Strategy
	reference  int
	exact      bool
	logger     logging.Logger
}

// NewEngine builds an engine for a tuning. Overrides with negative
// weights are rejected.
func NewEngine(t tuning.Tuning, opts Options) (*Engine, error) {
	weights := make(map[Mode]Weights, len(modeNames))
	for _, m := range Modes() {
		weights[m] = DefaultWeights(m)
		if w, ok := opts.Weights[m]; ok {
			weights[m] = w
		}
	}

	strategies := make(map[Mode]Strategy, len(weights))
	var members []Strategy
	for _, m := range []Mode{Shortest, PositionStable, StringPriority, OpenString} {
		s, err := NewStrategy(m, weights[m])
		if err != nil {
			return nil, err
		}
		strategies[m] = s
		members = append(members, s)
	}
	if err := weights[Balanced].Validate(); err != nil {
		return nil, err
	}
	strategies[Balanced] = NewBalanced(weights[Balanced], members...)

	return &Engine{
		tuning:     t.Clone(),
		strategies: strategies,
		reference:  opts.ReferenceFret,
		exact:      opts.MatchOctave,
		logger: logging.WithFields(logging.Fields{
			"component": "fingering_engine",
			"tuning":    t.Name,
		}),
	}, nil
}

// Tuning returns a copy of the engine's tuning
func (e *Engine) Tuning() tuning.Tuning {
	return e.tuning.Clone()
}

// Strategy returns the strategy the engine uses for a mode
func (e *Engine) Strategy(m Mode) (Strategy, bool) {
	s, ok := e.strategies[m]
	return s, ok
}

// Calculate lays out pitches, given in semitones above E1. The pattern
// always has one position per pitch; pitches with no candidate get a
// placeholder on string 0.
func (e *Engine) Calculate(pitches []int, m Mode) Pattern {
	s, ok := e.strategies[m]
	if !ok {
		e.logger.Warn("Unknown fingering mode, using shortest", logging.Fields{"mode": int(m)})
		s = e.strategies[Shortest]
	}

	steps := e.candidates(pitches)
	pattern := Run(s, steps, e.reference)

	e.logger.Debug("Calculated fingering", logging.Fields{
		"mode":    pattern.Algorithm,
		"winner":  pattern.Winner,
		"pitches": len(pitches),
		"score":   pattern.Score,
	})
	return pattern
}

func (e *Engine) candidates(pitches []int) [][]FretPosition {
	steps := make([][]FretPosition, len(pitches))
	for i, p := range pitches {
		found := fretboard.Candidates(p, e.tuning, e.exact)
		steps[i] = make([]FretPosition, len(found))
		for j, c := range found {
			steps[i][j] = FretPosition{String: c.String, Fret: c.Fret}
		}
	}
	return steps
}

// Run walks a strategy over per-step candidates. A reference below zero
// is derived from the first chosen fret. Composite strategies run each
// member concurrently, rescore the results under their own weights and
// keep the lowest, the earliest member on ties. A member that panics is
// logged and left out; with no member left the composite walks itself.
func Run(s Strategy, steps [][]FretPosition, reference int) Pattern {
	c, ok := s.(composite)
	if !ok {
		return walk(s, steps, reference)
	}

	members := c.Members()
	if len(members) == 0 {
		return walk(s, steps, reference)
	}

	patterns := make([]Pattern, len(members))
	scores := make([]float64, len(members))
	var g errgroup.Group
	for i, m := range members {
		i, m := i, m
		scores[i] = math.Inf(1)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("member %d (%T) failed: %v", i, m, r)
				}
			}()
			p := Run(m, steps, reference)
			patterns[i] = p
			scores[i] = Score(p.Positions, s.Weights(), reference)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Warn("Fingering strategy member skipped", logging.Fields{
			"mode":  s.Mode().String(),
			"error": err.Error(),
		})
	}

	best := common.ArgMin(scores)
	if math.IsInf(scores[best], 1) {
		return walk(s, steps, reference)
	}
	winner := patterns[best]
	winner.Winner = winner.Algorithm
	winner.Algorithm = s.Mode().String()
	winner.Score = scores[best]
	return winner
}

func walk(s Strategy, steps [][]FretPosition, reference int) Pattern {
	state := newState(reference)
	positions := make([]FretPosition, len(steps))
	costs := make([]float64, 0, len(steps))

	for i, candidates := range steps {
		if len(candidates) == 0 {
			positions[i] = FretPosition{}
			continue
		}
		p, cost := s.Choose(candidates, state)
		positions[i] = p
		costs = append(costs, cost)
		state.advance(p)
	}

	return Pattern{
		Positions: positions,
		Score:     common.Sum(costs),
		Algorithm: s.Mode().String(),
	}
}

// Score replays positions under w, skipping placeholders
func Score(positions []FretPosition, w Weights, reference int) float64 {
	state := newState(reference)
	costs := make([]float64, 0, len(positions))
	for _, p := range positions {
		if !p.Playable() {
			continue
		}
		costs = append(costs, w.StepCost(p, state))
		state.advance(p)
	}
	return common.Sum(costs)
}

func newState(reference int) State {
	if reference < 0 {
		return State{}
	}
	return State{Reference: reference, HasReference: true}
}
