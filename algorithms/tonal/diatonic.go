package tonal

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-bajo/algorithms/chord"
	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/scale"
)

// Functional areas of a scale degree
const (
	Tonic       = "Tonic"
	Subdominant = "Subdominant"
	Dominant    = "Dominant"
)

var (
	triadShapes   = []chord.Type{chord.Major, chord.Minor, chord.Diminished, chord.Augmented}
	seventhShapes = []chord.Type{
		chord.Major7, chord.Minor7, chord.Dominant7, chord.HalfDiminished7,
		chord.Diminished7, chord.MinorMajor7, chord.AugmentedMajor7, chord.Augmented7,
	}
)

// qualities holds the chord type built on each degree of every
// seven-note scale, stacked in thirds. Computed once, read only.
var (
	triadQualities   = buildQualities(3)
	seventhQualities = buildQualities(4)
)

func buildQualities(size int) map[scale.Type][7]chord.Type {
	shapes := triadShapes
	if size == 4 {
		shapes = seventhShapes
	}

	out := make(map[scale.Type][7]chord.Type)
	for _, t := range scale.Types() {
		if !t.Heptatonic() {
			continue
		}
		pattern := t.Pattern()

		var row [7]chord.Type
		for degree := 0; degree < 7; degree++ {
			stack := make([]int, size)
			for i := range stack {
				stack[i] = common.PitchClass(pattern[(degree+2*i)%7] - pattern[degree])
			}
			row[degree] = matchShape(stack, shapes)
		}
		out[t] = row
	}
	return out
}

func matchShape(stack []int, shapes []chord.Type) chord.Type {
	for _, t := range shapes {
		tones := t.Tones()
		if len(tones) != len(stack) {
			continue
		}
		match := true
		for i, tone := range tones {
			if common.PitchClass(tone.Semitones) != stack[i] {
				match = false
				break
			}
		}
		if match {
			return t
		}
	}
	// stacked thirds of a seven-note scale always land on a listed shape
	panic(fmt.Sprintf("tonal: no chord shape for stacked thirds %v", stack))
}

// Diatonic returns the chords built on each degree of the key, as triads
// or seventh chords. Scales without seven notes have no diatonic chords.
func Diatonic(k scale.Key, sevenths bool) []chord.Chord {
	table := triadQualities
	if sevenths {
		table = seventhQualities
	}
	row, ok := table[k.Type]
	if !ok {
		return nil
	}

	notes := k.Spell()
	out := make([]chord.Chord, len(notes))
	for i, root := range notes {
		out[i] = chord.Chord{Root: root, Type: row[i], Recognized: true}
	}
	return out
}

// DiatonicChords names the diatonic triads of a scale key
func DiatonicChords(key string) ([]string, error) {
	return diatonicNames(key, false)
}

// DiatonicSevenths names the diatonic seventh chords of a scale key
func DiatonicSevenths(key string) ([]string, error) {
	return diatonicNames(key, true)
}

func diatonicNames(key string, sevenths bool) ([]string, error) {
	k, err := scale.ParseKey(key)
	if err != nil {
		return nil, err
	}
	chords := Diatonic(k, sevenths)
	out := make([]string, len(chords))
	for i, c := range chords {
		out[i] = c.Name()
	}
	return out, nil
}

func sameChord(a, b chord.Chord) bool {
	return a.Root.Letter == b.Root.Letter &&
		a.Root.Accidental == b.Root.Accidental &&
		a.Type == b.Type
}

// Degree returns the 1-based degree of c among the key's diatonic triads,
// then among its seventh chords; seventh reports which list matched.
// Roots must be spelled as in the scale. Returns 0 for non-diatonic chords.
func Degree(k scale.Key, c chord.Chord) (degree int, seventh bool) {
	for i, d := range Diatonic(k, false) {
		if sameChord(d, c) {
			return i + 1, false
		}
	}
	for i, d := range Diatonic(k, true) {
		if sameChord(d, c) {
			return i + 1, true
		}
	}
	return 0, false
}

// FunctionalHarmony returns the degree of a chord among the diatonic
// triads of a scale key, or 0 when it is not one of them.
func FunctionalHarmony(key, name string) (int, error) {
	k, err := scale.ParseKey(key)
	if err != nil {
		return 0, err
	}
	c, err := chord.Parse(name)
	if err != nil {
		return 0, err
	}
	for i, d := range Diatonic(k, false) {
		if sameChord(d, c) {
			return i + 1, nil
		}
	}
	return 0, nil
}

// FunctionalArea groups a degree into Tonic (I, iii, vi), Subdominant
// (ii, IV) or Dominant (V, vii). Other values yield "".
func FunctionalArea(degree int) string {
	switch degree {
	case 1, 3, 6:
		return Tonic
	case 2, 4:
		return Subdominant
	case 5, 7:
		return Dominant
	}
	return ""
}

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Numeral renders a degree as a roman numeral cased by chord quality:
// upper case for major and augmented, lower case for minor and diminished.
func Numeral(degree int, quality chord.Type) string {
	if degree < 1 || degree > 7 {
		return ""
	}
	upper := numerals[degree-1]
	lower := strings.ToLower(upper)

	switch quality {
	case chord.Major:
		return upper
	case chord.Minor:
		return lower
	case chord.Diminished:
		return lower + "°"
	case chord.Augmented:
		return upper + "+"
	case chord.Major7:
		return upper + "maj7"
	case chord.Dominant7:
		return upper + "7"
	case chord.Minor7:
		return lower + "7"
	case chord.HalfDiminished7:
		return lower + "ø7"
	case chord.Diminished7:
		return lower + "°7"
	case chord.MinorMajor7:
		return lower + "(maj7)"
	case chord.AugmentedMajor7:
		return upper + "+maj7"
	case chord.Augmented7:
		return upper + "+7"
	}
	return upper
}

// RomanNumeral renders the numeral of a degree of the key
func RomanNumeral(k scale.Key, degree int, seventh bool) string {
	table := triadQualities
	if seventh {
		table = seventhQualities
	}
	row, ok := table[k.Type]
	if !ok || degree < 1 || degree > 7 {
		return ""
	}
	return Numeral(degree, row[degree-1])
}

var degreeNames = [7]string{
	"Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "Leading Tone",
}

var degreeGlyphs = [7]string{"Ⅰ", "Ⅱ", "Ⅲ", "Ⅳ", "Ⅴ", "Ⅵ", "Ⅶ"}

var degreeMoods = [7]string{
	"stable, at rest",
	"expectant, questioning",
	"calm, in between",
	"opening, setting out",
	"tense, driving forward",
	"fragile, wistful",
	"unsettled, unresolved",
}

// HarmonyInfo describes a scale degree
type HarmonyInfo struct {
	Roman string `json:"roman"`
	Desc  string `json:"desc"`
}

// FunctionalHarmonyText names a scale degree, e.g. "Ⅴ Dominant"
func FunctionalHarmonyText(degree int) string {
	if degree < 1 || degree > 7 {
		return ""
	}
	return degreeGlyphs[degree-1] + " " + degreeNames[degree-1]
}

// FunctionalHarmonyInfo returns the numeral and a short description of
// the character of a scale degree.
func FunctionalHarmonyInfo(degree int) HarmonyInfo {
	if degree < 1 || degree > 7 {
		return HarmonyInfo{}
	}
	return HarmonyInfo{
		Roman: degreeGlyphs[degree-1],
		Desc:  degreeNames[degree-1] + ": " + degreeMoods[degree-1],
	}
}

// ChordToneLabel names the scale degree a pitch stands on when it is the
// root of a diatonic chord, e.g. "Dominant Note" for G under G in C.
// Any other pitch, or a non-diatonic chord, yields "".
func ChordToneLabel(key, name, target string) (string, error) {
	label, err := chord.IntervalLabel(name, target)
	if err != nil || label != "1" {
		return "", err
	}
	degree, err := FunctionalHarmony(key, name)
	if err != nil || degree == 0 {
		return "", err
	}
	return degreeNames[degree-1] + " Note", nil
}
