package fingering

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("unknown fingering mode")

// Mode selects the cost strategy
type Mode int

const (
	Shortest Mode = iota
	PositionStable
	StringPriority
	OpenString
	Balanced
)

var modeNames = [...]string{
	Shortest:       "shortest",
	PositionStable: "position-stable",
	StringPriority: "string-priority",
	OpenString:     "open-string",
	Balanced:       "balanced",
}

// short forms accepted on input
var modeAliases = map[string]Mode{
	"position": PositionStable,
	"string":   StringPriority,
	"open":     OpenString,
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// MarshalText encodes the mode by name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name or short form
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Modes returns every mode in declaration order
func Modes() []Mode {
	return []Mode{Shortest, PositionStable, StringPriority, OpenString, Balanced}
}

// ParseMode resolves a mode name or one of its short forms
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	if m, ok := modeAliases[name]; ok {
		return m, nil
	}
	return Shortest, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Weights scales the four terms of the step cost. All weights are
// non-negative; the open-string term itself is negative, so a larger
// OpenString weight rewards open strings more.
type Weights struct {
	Movement     float64 `json:"movement" yaml:"movement"`           // per fret plus per string crossed
	Position     float64 `json:"position" yaml:"position"`           // per fret away from the reference
	OpenString   float64 `json:"open_string" yaml:"open_string"`     // bonus for fret 0
	StringChange float64 `json:"string_change" yaml:"string_change"` // flat penalty for leaving a string
}

// DefaultWeights returns the built-in weights of a mode
func DefaultWeights(m Mode) Weights {
	switch m {
	case Shortest:
		return Weights{Movement: 1}
	case PositionStable:
		return Weights{Movement: 1, Position: 10, StringChange: 0.5}
	case StringPriority:
		return Weights{Movement: 1, StringChange: 10}
	case OpenString:
		return Weights{Movement: 1, OpenString: 5, StringChange: 0.3}
	default:
		return Weights{Movement: 1, Position: 2, OpenString: 1, StringChange: 0.5}
	}
}

// Validate rejects negative weights
func (w Weights) Validate() error {
	if w.Movement < 0 || w.Position < 0 || w.OpenString < 0 || w.StringChange < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	return nil
}

// State is what a strategy knows when choosing the next position
type State struct {
	Prev         FretPosition
	HasPrev      bool
	Reference    int // fret the hand is anchored to
	HasReference bool
}

// advance records a chosen position. The first choice anchors the
// reference fret unless the caller supplied one.
func (s *State) advance(p FretPosition) {
	s.Prev = p
	s.HasPrev = true
	if !s.HasReference {
		s.Reference = p.Fret
		s.HasReference = true
	}
}

// StepCost scores moving to p. Lower is better.
func (w Weights) StepCost(p FretPosition, s State) float64 {
	cost := 0.0
	if s.HasPrev {
		cost += w.Movement * float64(abs(p.Fret-s.Prev.Fret)+abs(p.String-s.Prev.String))
		if p.String != s.Prev.String {
			cost += w.StringChange
		}
	}
	if s.HasReference {
		cost += w.Position * float64(abs(p.Fret-s.Reference))
	}
	if p.Fret == 0 {
		cost -= w.OpenString
	}
	return cost
}
