package pitch

import (
	"fmt"

	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
)

// ReferenceClass is the pitch class of the lowest open string of a
// standard bass (E). Fret offsets are measured from it.
const ReferenceClass = 4

// intervalNames covers P1 through M13
var intervalNames = []string{
	"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7",
	"P8", "m9", "M9", "m10", "M10", "P11", "A11", "P12", "m13", "M13",
}

// chromaticBoth lists each pitch class with both enharmonic spellings
var chromaticBoth = []string{
	"C", "C＃/D♭", "D", "D＃/E♭", "E", "F", "F＃/G♭", "G", "G＃/A♭", "A", "A＃/B♭", "B",
}

// SemitoneDistance returns the signed distance from a to b in semitones
func SemitoneDistance(a, b string) (int, error) {
	from, err := AbsoluteSemitone(a)
	if err != nil {
		return 0, fmt.Errorf("from pitch: %w", err)
	}
	to, err := AbsoluteSemitone(b)
	if err != nil {
		return 0, fmt.Errorf("to pitch: %w", err)
	}
	return to - from, nil
}

// IntervalName names a semitone count. Negative counts are prefixed with
// '-', and counts past a major thirteenth fall back to "<n>st".
func IntervalName(semitones int) string {
	if semitones < 0 {
		return "-" + IntervalName(-semitones)
	}
	if semitones < len(intervalNames) {
		return intervalNames[semitones]
	}
	return fmt.Sprintf("%dst", semitones)
}

// IsChromaticNote reports whether two pitches are exactly one semitone
// apart. Empty or invalid input yields false.
func IsChromaticNote(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	d, err := SemitoneDistance(a, b)
	if err != nil {
		return false
	}
	return common.AbsInt(d) == 1
}

// FretOffset returns the fret at which root sounds on an E string, 0-11.
// An octave suffix on root is ignored.
func FretOffset(root string) (int, error) {
	p, err := ParseNote(root)
	if err != nil {
		return 0, err
	}
	return common.PitchClass(p.Class() - ReferenceClass), nil
}

// PitchMapForRoot returns the twelve chromatic names starting at root,
// each ambiguous class carrying both spellings ("C＃/D♭").
func PitchMapForRoot(root string) ([]string, error) {
	p, err := ParseNote(root)
	if err != nil {
		return nil, err
	}
	out := make([]string, 12)
	for i := range out {
		out[i] = chromaticBoth[common.PitchClass(p.Class()+i)]
	}
	return out, nil
}

// ClassName returns the dual-spelled name of a pitch class
func ClassName(class int) string {
	return chromaticBoth[common.PitchClass(class)]
}
