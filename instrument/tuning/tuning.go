package tuning

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
)

// DefaultMaxFret is the fret count of every preset
const DefaultMaxFret = 24

// Preset names
const (
	Bass4      = "bass_4"
	Bass5      = "bass_5"
	Bass6      = "bass_6"
	BassDropD  = "bass_drop_d"
	Bass4Eb    = "bass_4_eb"
	DefaultKey = Bass4
)

var (
	ErrUnknownTuning = errors.New("unknown tuning")
	ErrInvalidTuning = errors.New("invalid tuning")
)

// StringDef is one open string. Offset is in semitones relative to the
// low E of a standard four-string bass (E1), so B0 is -5.
type StringDef struct {
	OpenNote string `json:"open_note" yaml:"open_note"`
	Offset   int    `json:"offset" yaml:"offset"`
}

// Tuning lists strings from lowest to highest. String numbers count the
// other way: string 1 is the highest.
type Tuning struct {
	Name    string      `json:"name" yaml:"name"`
	Strings []StringDef `json:"strings" yaml:"strings"`
	MaxFret int         `json:"max_fret" yaml:"max_fret"`
}

// Clone returns a deep copy
func (t Tuning) Clone() Tuning {
	t.Strings = append([]StringDef(nil), t.Strings...)
	return t
}

// StringNumber converts an index into Strings to a string number
func (t Tuning) StringNumber(index int) int {
	return len(t.Strings) - index
}

// StringIndex converts a string number back to an index into Strings
func (t Tuning) StringIndex(number int) int {
	return len(t.Strings) - number
}

// Lowest returns the smallest open-string offset
func (t Tuning) Lowest() int {
	lowest := 0
	for i, s := range t.Strings {
		if i == 0 || s.Offset < lowest {
			lowest = s.Offset
		}
	}
	return lowest
}

// Highest returns the highest playable offset
func (t Tuning) Highest() int {
	highest := 0
	for i, s := range t.Strings {
		if i == 0 || s.Offset > highest {
			highest = s.Offset
		}
	}
	return highest + t.MaxFret
}

// Validate checks that the tuning is playable and that each open note
// agrees with its offset.
func (t Tuning) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTuning)
	}
	if len(t.Strings) == 0 {
		return fmt.Errorf("%w: %s has no strings", ErrInvalidTuning, t.Name)
	}
	if t.MaxFret <= 0 {
		return fmt.Errorf("%w: %s max fret must be positive", ErrInvalidTuning, t.Name)
	}
	for i, s := range t.Strings {
		class, err := pitch.NoteToSemitone(s.OpenNote)
		if err != nil {
			return fmt.Errorf("%w: %s string %d: %v", ErrInvalidTuning, t.Name, i, err)
		}
		if common.PitchClass(s.Offset+pitch.ReferenceClass) != class {
			return fmt.Errorf("%w: %s string %d: %s does not sound at offset %d",
				ErrInvalidTuning, t.Name, i, s.OpenNote, s.Offset)
		}
	}
	return nil
}

func preset(name string, max int, strings ...StringDef) Tuning {
	return Tuning{Name: name, Strings: strings, MaxFret: max}
}

var presets = []Tuning{
	preset(Bass4, DefaultMaxFret,
		StringDef{"E", 0}, StringDef{"A", 5}, StringDef{"D", 10}, StringDef{"G", 15}),
	preset(Bass5, DefaultMaxFret,
		StringDef{"B", -5}, StringDef{"E", 0}, StringDef{"A", 5}, StringDef{"D", 10}, StringDef{"G", 15}),
	preset(Bass6, DefaultMaxFret,
		StringDef{"B", -5}, StringDef{"E", 0}, StringDef{"A", 5}, StringDef{"D", 10}, StringDef{"G", 15}, StringDef{"C", 20}),
	preset(BassDropD, DefaultMaxFret,
		StringDef{"D", -2}, StringDef{"A", 5}, StringDef{"D", 10}, StringDef{"G", 15}),
	preset(Bass4Eb, DefaultMaxFret,
		StringDef{"E♭", -1}, StringDef{"A♭", 4}, StringDef{"D♭", 9}, StringDef{"G♭", 14}),
}

// Presets returns copies of the built-in tunings in declaration order
func Presets() []Tuning {
	out := make([]Tuning, len(presets))
	for i, t := range presets {
		out[i] = t.Clone()
	}
	return out
}

// Registry resolves tuning names. It starts with the presets and accepts
// user tunings, which may replace a preset of the same name. Safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	tunings map[string]Tuning
	order   []string
}

// NewRegistry creates a registry holding the presets
func NewRegistry() *Registry {
	r := &Registry{tunings: make(map[string]Tuning)}
	for _, t := range presets {
		r.tunings[t.Name] = t.Clone()
		r.order = append(r.order, t.Name)
	}
	return r
}

// Register validates and adds a tuning
func (r *Registry) Register(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tunings[t.Name]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.tunings[t.Name] = t.Clone()
	return nil
}

// Lookup returns a copy of the named tuning
func (r *Registry) Lookup(name string) (Tuning, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tunings[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
	}
	return t.Clone(), nil
}

// List returns copies of every tuning, presets first, then user tunings
// in registration order.
func (r *Registry) List() []Tuning {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tuning, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tunings[name].Clone())
	}
	return out
}

// Names returns the registered names sorted alphabetically
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Lookup resolves a name against the presets
func Lookup(name string) (Tuning, error) {
	return defaultRegistry.Lookup(name)
}
