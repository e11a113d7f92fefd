package chord

import (
	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
)

// Type is the quality of a chord
type Type int

const (
	Major Type = iota
	Minor
	Diminished
	Augmented
	Sus4
	Sus2
	Dominant7
	Minor7
	Major7
	MinorMajor7
	Diminished7
	HalfDiminished7
	Augmented7
	AugmentedMajor7
	Dominant7Sus4
	Sixth
	MinorSixth
	Dominant9
	Minor9
	Major9
	Add9
	Dominant7Flat9
	Dominant7Sharp9
	Power
	Octave
)

// ChordTone is one member of a chord, labelled by its scale degree
type ChordTone struct {
	Interval  string `json:"interval"`  // degree label, e.g. "1", "♭3", "＃5"
	Semitones int    `json:"semitones"` // distance above the root
}

type typeInfo struct {
	id        string   // canonical identifier
	spellings []string // written suffixes, the first is used for rendering
	tones     []ChordTone
}

var (
	unison     = ChordTone{"1", 0}
	second     = ChordTone{"2", 2}
	minThird   = ChordTone{"♭3", 3}
	majThird   = ChordTone{"3", 4}
	fourth     = ChordTone{"4", 5}
	flatFifth  = ChordTone{"♭5", 6}
	fifth      = ChordTone{"5", 7}
	augFifth   = ChordTone{"＃5", 8}
	sixth      = ChordTone{"6", 9}
	dimSeventh = ChordTone{"♭♭7", 9}
	minSeventh = ChordTone{"♭7", 10}
	majSeventh = ChordTone{"7", 11}
	octave     = ChordTone{"8", 12}
	flatNinth  = ChordTone{"♭9", 13}
	ninth      = ChordTone{"9", 14}
	sharpNinth = ChordTone{"＃9", 15}
)

// types is indexed by Type and never mutated
var types = [...]typeInfo{
	Major:           {"", []string{"", "maj", "M"}, []ChordTone{unison, majThird, fifth}},
	Minor:           {"m", []string{"m", "min", "-"}, []ChordTone{unison, minThird, fifth}},
	Diminished:      {"dim", []string{"dim", "o", "°"}, []ChordTone{unison, minThird, flatFifth}},
	Augmented:       {"aug", []string{"aug", "+"}, []ChordTone{unison, majThird, augFifth}},
	Sus4:            {"sus4", []string{"sus4", "sus"}, []ChordTone{unison, fourth, fifth}},
	Sus2:            {"sus2", []string{"sus2"}, []ChordTone{unison, second, fifth}},
	Dominant7:       {"7", []string{"7", "dom7"}, []ChordTone{unison, majThird, fifth, minSeventh}},
	Minor7:          {"m7", []string{"m7", "min7", "-7"}, []ChordTone{unison, minThird, fifth, minSeventh}},
	Major7:          {"maj7", []string{"maj7", "M7", "△7", "Δ7"}, []ChordTone{unison, majThird, fifth, majSeventh}},
	MinorMajor7:     {"m_maj7", []string{"m(maj7)", "mM7", "-M7", "mmaj7"}, []ChordTone{unison, minThird, fifth, majSeventh}},
	Diminished7:     {"dim7", []string{"dim7", "o7", "°7"}, []ChordTone{unison, minThird, flatFifth, dimSeventh}},
	HalfDiminished7: {"m7b5", []string{"m7♭5", "m7b5", "ø", "ø7", "m7-5"}, []ChordTone{unison, minThird, flatFifth, minSeventh}},
	Augmented7:      {"aug7", []string{"aug7", "+7", "7＃5"}, []ChordTone{unison, majThird, augFifth, minSeventh}},
	AugmentedMajor7: {"aug_maj7", []string{"aug(maj7)", "+M7", "maj7＃5"}, []ChordTone{unison, majThird, augFifth, majSeventh}},
	Dominant7Sus4:   {"7sus4", []string{"7sus4", "7sus"}, []ChordTone{unison, fourth, fifth, minSeventh}},
	Sixth:           {"6", []string{"6"}, []ChordTone{unison, majThird, fifth, sixth}},
	MinorSixth:      {"m6", []string{"m6", "-6"}, []ChordTone{unison, minThird, fifth, sixth}},
	Dominant9:       {"9", []string{"9"}, []ChordTone{unison, majThird, fifth, minSeventh, ninth}},
	Minor9:          {"m9", []string{"m9", "min9", "-9"}, []ChordTone{unison, minThird, fifth, minSeventh, ninth}},
	Major9:          {"maj9", []string{"maj9", "M9", "△9"}, []ChordTone{unison, majThird, fifth, majSeventh, ninth}},
	Add9:            {"add9", []string{"add9"}, []ChordTone{unison, majThird, fifth, ninth}},
	Dominant7Flat9:  {"7b9", []string{"7♭9", "7b9"}, []ChordTone{unison, majThird, fifth, minSeventh, flatNinth}},
	Dominant7Sharp9: {"7#9", []string{"7＃9"}, []ChordTone{unison, majThird, fifth, minSeventh, sharpNinth}},
	Power:           {"5", []string{"5"}, []ChordTone{unison, fifth}},
	Octave:          {"8", []string{"8"}, []ChordTone{unison, octave}},
}

// suffixes maps every normalized identifier and spelling to its type
var suffixes = buildSuffixes()

func buildSuffixes() map[string]Type {
	m := make(map[string]Type)
	for t := range types {
		info := types[t]
		m[pitch.Normalize(info.id)] = Type(t)
		for _, s := range info.spellings {
			m[pitch.Normalize(s)] = Type(t)
		}
	}
	return m
}

// chromaticLabels names each semitone above a chord root
var chromaticLabels = [12]string{"1", "♭2", "2", "♭3", "3", "4", "＃4/♭5", "5", "＃5", "6", "♭7", "7"}

// String returns the canonical identifier of the type
func (t Type) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return types[t].id
}

// Suffix returns the written suffix used when rendering chord names
func (t Type) Suffix() string {
	if !t.Valid() {
		return ""
	}
	return types[t].spellings[0]
}

// Spellings returns every written suffix accepted for the type
func (t Type) Spellings() []string {
	if !t.Valid() {
		return nil
	}
	return append([]string(nil), types[t].spellings...)
}

// Valid reports whether t is a known chord type
func (t Type) Valid() bool {
	return t >= 0 && int(t) < len(types)
}

// Tones returns a copy of the tone list for t. Unknown types yield the
// major triad.
func (t Type) Tones() []ChordTone {
	if !t.Valid() {
		t = Major
	}
	return append([]ChordTone(nil), types[t].tones...)
}

// Types lists every chord type in declaration order
func Types() []Type {
	out := make([]Type, len(types))
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType resolves a canonical identifier or alias to its type
func ParseType(suffix string) (Type, bool) {
	t, ok := suffixes[pitch.Normalize(suffix)]
	return t, ok
}

// Tones returns the tones for a type suffix, falling back to the major
// triad for anything unrecognized.
func Tones(suffix string) []ChordTone {
	t, ok := ParseType(suffix)
	if !ok {
		t = Major
	}
	return t.Tones()
}

// IsDominantSeventhShape reports whether tones reduce to root, major
// third, perfect fifth and minor seventh.
func IsDominantSeventhShape(tones []ChordTone) bool {
	want := map[int]bool{0: true, 4: true, 7: true, 10: true}
	got := make(map[int]bool, len(tones))
	for _, tone := range tones {
		got[common.PitchClass(tone.Semitones)] = true
	}
	if len(got) != len(want) {
		return false
	}
	for class := range want {
		if !got[class] {
			return false
		}
	}
	return true
}

// MarshalText encodes the type as its canonical identifier
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
