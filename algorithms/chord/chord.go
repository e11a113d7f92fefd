package chord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
)

// NotAChordTone is returned by DetectInversion when the bass note is not
// a member of the chord
const NotAChordTone = -1

var ErrUnknownRoot = errors.New("unknown chord root")

// Chord is a parsed chord name
type Chord struct {
	Root       pitch.Pitch  `json:"root"`
	Type       Type         `json:"type"`
	Bass       *pitch.Pitch `json:"bass,omitempty"` // slash bass, e.g. the E of C/E
	Suffix     string       `json:"suffix"`         // suffix as written after the root
	Recognized bool         `json:"recognized"`     // false when the suffix fell back to major
}

// Parse splits a chord name into root, type and optional slash bass. The
// type is the longest known suffix the remainder ends with; a remainder
// that matches nothing is read as a major triad.
func Parse(name string) (Chord, error) {
	text := pitch.Normalize(name)

	var bass *pitch.Pitch
	if i := strings.LastIndex(text, "/"); i > 0 {
		if b, err := pitch.ParseNote(text[i+1:]); err == nil && !b.HasOctave {
			bass = &b
			text = text[:i]
		}
	}

	root, rest, err := pitch.ReadNote(text)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownRoot, name)
	}

	t, matched := matchSuffix(rest)
	return Chord{
		Root:       root,
		Type:       t,
		Bass:       bass,
		Suffix:     rest,
		Recognized: matched == len(rest),
	}, nil
}

func matchSuffix(rest string) (Type, int) {
	best, bestLen := Major, 0
	for s, t := range suffixes {
		if len(s) > bestLen && strings.HasSuffix(rest, s) {
			best, bestLen = t, len(s)
		}
	}
	return best, bestLen
}

// RootName renders the root with canonical accidental glyphs
func (c Chord) RootName() string {
	return c.Root.Name()
}

// Name renders the chord with its preferred suffix spelling
func (c Chord) Name() string {
	name := c.Root.Name() + c.Type.Suffix()
	if c.Bass != nil {
		name += "/" + c.Bass.Name()
	}
	return name
}

// Tones returns the chord's tones
func (c Chord) Tones() []ChordTone {
	return c.Type.Tones()
}

// Classes returns the pitch class of every tone
func (c Chord) Classes() []int {
	tones := c.Tones()
	out := make([]int, len(tones))
	for i, tone := range tones {
		out[i] = common.PitchClass(c.Root.Class() + tone.Semitones)
	}
	return out
}

// Degree returns the scale degree number of the tone label, e.g. 3 for "♭3"
func (ct ChordTone) Degree() int {
	label := strings.TrimLeft(ct.Interval, pitch.FlatSign+pitch.SharpSign)
	n, err := strconv.Atoi(label)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// SpellTone returns the correctly lettered note for a tone above root
func SpellTone(root pitch.Pitch, tone ChordTone) pitch.Pitch {
	letter := root.Letter.Step(tone.Degree() - 1)
	return pitch.Pitch{
		Letter:     letter,
		Accidental: pitch.AccidentalFor(letter, root.Class()+tone.Semitones),
	}
}

// SpellTones renders every tone of the chord, lettered by degree, so
// C dim7 yields C E♭ G♭ B♭♭.
func SpellTones(name string) ([]string, error) {
	c, err := Parse(name)
	if err != nil {
		return nil, err
	}
	tones := c.Tones()
	out := make([]string, len(tones))
	for i, tone := range tones {
		out[i] = SpellTone(c.Root, tone).Name()
	}
	return out, nil
}

// RootNote returns the rendered root of a chord name
func RootNote(name string) (string, error) {
	c, err := Parse(name)
	if err != nil {
		return "", err
	}
	return c.RootName(), nil
}

// DetectInversion returns the index of the bass note within the chord's
// tone list: 0 for root position, 1 for first inversion and so on. The
// bass may carry an octave, which is ignored.
func DetectInversion(name, bass string) (int, error) {
	c, err := Parse(name)
	if err != nil {
		return NotAChordTone, err
	}
	b, err := pitch.ParseNote(bass)
	if err != nil {
		return NotAChordTone, err
	}

	offset := common.PitchClass(b.Class() - c.Root.Class())
	for i, tone := range c.Tones() {
		if common.PitchClass(tone.Semitones) == offset {
			return i, nil
		}
	}
	return NotAChordTone, nil
}

// IntervalLabel names the distance of a pitch above the chord root
// ("1", "♭3", "＃4/♭5", ...), regardless of chord membership.
func IntervalLabel(name, target string) (string, error) {
	c, err := Parse(name)
	if err != nil {
		return "", err
	}
	p, err := pitch.ParseNote(target)
	if err != nil {
		return "", err
	}
	return chromaticLabels[common.PitchClass(p.Class()-c.Root.Class())], nil
}

// NameAliases lists the alternative spellings of a chord name. A name
// whose suffix is not recognized is returned unchanged.
func NameAliases(name string) []string {
	c, err := Parse(name)
	if err != nil || !c.Recognized {
		return []string{name}
	}

	slash := ""
	if c.Bass != nil {
		slash = "/" + c.Bass.Name()
	}

	spellings := c.Type.Spellings()
	out := make([]string, 0, len(spellings))
	for _, s := range spellings {
		out = append(out, c.RootName()+s+slash)
	}
	return out
}
