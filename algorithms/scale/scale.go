package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
)

var ErrUnknownScale = errors.New("unknown scale")

// Type is a scale family
type Type int

const (
	Ionian Type = iota
	Aeolian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Locrian
	HarmonicMinor
	MelodicMinor
	MajorPentatonic
	MinorPentatonic
	Blues
)

type typeInfo struct {
	id      string
	aliases []string
	title   string
	pattern []int // semitones above the root, ascending
	parent  Type  // seven-note scale whose key signature guides spelling
}

var types = [...]typeInfo{
	Ionian:          {"ionian", []string{"", "major", "maj"}, "Major", []int{0, 2, 4, 5, 7, 9, 11}, Ionian},
	Aeolian:         {"aeolian", []string{"m", "minor", "min"}, "Minor", []int{0, 2, 3, 5, 7, 8, 10}, Aeolian},
	Dorian:          {"dorian", nil, "Dorian", []int{0, 2, 3, 5, 7, 9, 10}, Dorian},
	Phrygian:        {"phrygian", nil, "Phrygian", []int{0, 1, 3, 5, 7, 8, 10}, Phrygian},
	Lydian:          {"lydian", nil, "Lydian", []int{0, 2, 4, 6, 7, 9, 11}, Lydian},
	Mixolydian:      {"mixolydian", nil, "Mixolydian", []int{0, 2, 4, 5, 7, 9, 10}, Mixolydian},
	Locrian:         {"locrian", nil, "Locrian", []int{0, 1, 3, 5, 6, 8, 10}, Locrian},
	HarmonicMinor:   {"harm_minor", []string{"harmonic_minor"}, "Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11}, HarmonicMinor},
	MelodicMinor:    {"melo_minor", []string{"melodic_minor"}, "Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11}, MelodicMinor},
	MajorPentatonic: {"penta", []string{"major_pentatonic", "pentatonic"}, "Major Pentatonic", []int{0, 2, 4, 7, 9}, Ionian},
	MinorPentatonic: {"m_penta", []string{"minor_pentatonic"}, "Minor Pentatonic", []int{0, 3, 5, 7, 10}, Aeolian},
	Blues:           {"blues", nil, "Blues", []int{0, 3, 5, 6, 7, 10}, Aeolian},
}

var byName = func() map[string]Type {
	m := make(map[string]Type)
	for t := range types {
		m[types[t].id] = Type(t)
		for _, a := range types[t].aliases {
			m[a] = Type(t)
		}
	}
	return m
}()

func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return types[t].id
}

// MarshalText encodes the type as its identifier
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Valid reports whether t is a known scale type
func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(types)
}

// Title returns the English name of the scale family, e.g. "Harmonic Minor"
func (t Type) Title() string {
	if !t.Valid() {
		return ""
	}
	return types[t].title
}

// Pattern returns a copy of the semitone offsets of the scale
func (t Type) Pattern() []int {
	if !t.Valid() {
		return nil
	}
	return append([]int(nil), types[t].pattern...)
}

// Heptatonic reports whether the scale has seven notes
func (t Type) Heptatonic() bool {
	return t.Valid() && len(types[t].pattern) == 7
}

// Types lists every scale type in declaration order
func Types() []Type {
	out := make([]Type, len(types))
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType resolves a scale identifier or alias. Matching is case
// sensitive since "m" is minor.
func ParseType(name string) (Type, bool) {
	t, ok := byName[strings.TrimSpace(name)]
	return t, ok
}

// Key is a scale rooted on a spelled note
type Key struct {
	Root pitch.Pitch `json:"root"`
	Type Type        `json:"type"`
}

// ParseKey reads a scale key: "C" (major), "Am" (natural minor) or
// "<root>_<type>" such as "C_dorian" or "E♭_m_penta".
func ParseKey(key string) (Key, error) {
	text := pitch.Normalize(key)

	var rootText, typeText string
	if i := strings.Index(text, "_"); i >= 0 {
		rootText, typeText = text[:i], text[i+1:]
	} else {
		_, rest, err := pitch.ReadNote(text)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %q: %v", ErrUnknownScale, key, err)
		}
		rootText, typeText = text[:len(text)-len(rest)], rest
	}

	root, err := pitch.ParseNote(rootText)
	if err != nil || root.HasOctave {
		return Key{}, fmt.Errorf("%w: bad root in %q", ErrUnknownScale, key)
	}
	t, ok := ParseType(typeText)
	if !ok {
		return Key{}, fmt.Errorf("%w: unknown type %q", ErrUnknownScale, typeText)
	}
	k := Key{Root: root, Type: t}
	if !k.Spellable() {
		return Key{}, fmt.Errorf("%w: %q needs more than %d accidentals", ErrUnknownScale, key, pitch.MaxAccidental)
	}
	return k, nil
}

// Spellable reports whether every note of the key fits within double
// sharps and double flats
func (k Key) Spellable() bool {
	spelled := k.Spell()
	if spelled == nil {
		return false
	}
	for _, p := range spelled {
		if common.AbsInt(p.Accidental) > pitch.MaxAccidental {
			return false
		}
	}
	return true
}

// Name renders the key the way ParseKey reads it
func (k Key) Name() string {
	switch k.Type {
	case Ionian:
		return k.Root.Name()
	case Aeolian:
		return k.Root.Name() + "m"
	}
	return k.Root.Name() + "_" + k.Type.String()
}

// Text returns the English title, e.g. "C Dorian Scale"
func (k Key) Text() string {
	return fmt.Sprintf("%s %s Scale", k.Root.Name(), k.Type.Title())
}

// Spell returns the scale's notes, one per pattern entry, each on its own
// letter in ascending letter order from the root.
func (k Key) Spell() []pitch.Pitch {
	if !k.Type.Valid() {
		return nil
	}
	pattern := types[k.Type].pattern
	steps := k.letterSteps()

	out := make([]pitch.Pitch, len(pattern))
	for i, offset := range pattern {
		letter := k.Root.Letter.Step(steps[i])
		out[i] = pitch.Pitch{
			Letter:     letter,
			Accidental: pitch.AccidentalFor(letter, k.Root.Class()+offset),
		}
	}
	return out
}

// Notes renders Spell as note names
func (k Key) Notes() []string {
	spelled := k.Spell()
	out := make([]string, len(spelled))
	for i, p := range spelled {
		out[i] = p.Name()
	}
	return out
}

// Classes returns the pitch class of every scale note
func (k Key) Classes() []int {
	pattern := k.Type.Pattern()
	for i := range pattern {
		pattern[i] = common.PitchClass(k.Root.Class() + pattern[i])
	}
	return pattern
}

// letterSteps picks the letter step (0-6 above the root letter) for each
// pattern entry. Seven-note scales take every letter in turn. Shorter
// scales try every strictly increasing choice and keep the one closest
// to the parent scale's key signature.
func (k Key) letterSteps() []int {
	pattern := types[k.Type].pattern
	if len(pattern) == 7 {
		return []int{0, 1, 2, 3, 4, 5, 6}
	}

	signature := make([]int, 7)
	for i, p := range (Key{Root: k.Root, Type: types[k.Type].parent}).Spell() {
		signature[i] = p.Accidental
	}

	var best []int
	var bestCost spellingCost
	current := make([]int, len(pattern))

	var walk func(pos, from int)
	walk = func(pos, from int) {
		if pos == len(pattern) {
			cost := k.costOf(current, signature)
			if best == nil || cost.less(bestCost) {
				best = append([]int(nil), current...)
				bestCost = cost
			}
			return
		}
		for s := from; s <= 7-(len(pattern)-pos); s++ {
			current[pos] = s
			walk(pos+1, s+1)
		}
	}
	current[0] = 0
	walk(1, 1)
	return best
}

type spellingCost struct {
	overflow  int // notes beyond double accidentals
	deviation int // distance from the parent key signature
	magnitude int // total accidentals
	direction int // sum of accidentals, higher leans sharp
}

func (c spellingCost) less(o spellingCost) bool {
	if c.overflow != o.overflow {
		return c.overflow < o.overflow
	}
	if c.deviation != o.deviation {
		return c.deviation < o.deviation
	}
	if c.magnitude != o.magnitude {
		return c.magnitude < o.magnitude
	}
	return c.direction > o.direction
}

func (k Key) costOf(steps, signature []int) spellingCost {
	var c spellingCost
	for i, offset := range types[k.Type].pattern {
		letter := k.Root.Letter.Step(steps[i])
		acc := pitch.AccidentalFor(letter, k.Root.Class()+offset)
		if common.AbsInt(acc) > pitch.MaxAccidental {
			c.overflow++
		}
		c.deviation += common.AbsInt(acc - signature[steps[i]])
		c.magnitude += common.AbsInt(acc)
		c.direction += acc
	}
	return c
}

// ComputeNotes spells a scale from a root name and scale type
func ComputeNotes(root string, t Type) ([]string, error) {
	p, err := pitch.ParseNote(root)
	if err != nil {
		return nil, err
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: type %d", ErrUnknownScale, int(t))
	}
	k := Key{Root: p, Type: t}
	if !k.Spellable() {
		return nil, fmt.Errorf("%w: %s %s needs more than %d accidentals", ErrUnknownScale, p.Name(), t, pitch.MaxAccidental)
	}
	return k.Notes(), nil
}

// NoteNames spells the scale named by a key such as "C_dorian"
func NoteNames(key string) ([]string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return k.Notes(), nil
}

// Text returns the English title of a scale key
func Text(key string) (string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return k.Text(), nil
}
