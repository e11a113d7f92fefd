package tonal

import (
	"github.com/RyanBlaney/sonido-bajo/algorithms/chord"
	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/scale"
)

// ProgressionEntry is the analysis of one chord within a progression
type ProgressionEntry struct {
	Degree              int    `json:"degree"`                // 1-7, 0 when non-diatonic
	Roman               string `json:"roman"`                 // numeral cased by quality
	Function            string `json:"function"`              // Tonic, Subdominant or Dominant
	Cadence             string `json:"cadence"`               // cadence closing on this chord
	IsSecondaryDominant bool   `json:"is_secondary_dominant"` // dominant seventh of a diatonic chord
	SecondaryTarget     string `json:"secondary_target"`      // e.g. "V/ii"
}

// AnalyzeProgression analyzes a chord sequence in the given scale key
func AnalyzeProgression(key string, chords []string) ([]ProgressionEntry, error) {
	k, err := scale.ParseKey(key)
	if err != nil {
		return nil, err
	}
	return Analyze(k, chords), nil
}

// Analyze returns one entry per chord. Cadences look back one and two
// chords; a recognized three-chord cadence takes precedence. Chord names
// that do not parse produce an empty entry so positions stay aligned.
func Analyze(k scale.Key, chords []string) []ProgressionEntry {
	entries := make([]ProgressionEntry, len(chords))
	degrees := make([]int, len(chords))

	for i, name := range chords {
		c, err := chord.Parse(name)
		if err != nil {
			continue
		}

		degree, seventh := Degree(k, c)
		degrees[i] = degree

		entry := ProgressionEntry{
			Degree:   degree,
			Roman:    RomanNumeral(k, degree, seventh),
			Function: FunctionalArea(degree),
		}

		cadence := CadenceNone
		if i >= 2 {
			cadence = DetectCadenceExtended(degrees[i-2], degrees[i-1], degree)
		}
		if cadence == CadenceNone && i >= 1 {
			cadence = DetectCadence(degrees[i-1], degree)
		}
		entry.Cadence = cadence.String()

		if degree == 0 {
			if target, ok := SecondaryTarget(k, c); ok {
				entry.IsSecondaryDominant = true
				entry.SecondaryTarget = target
			}
		}

		entries[i] = entry
	}
	return entries
}

// SecondaryTarget reports whether c is a dominant seventh resolving a
// fifth down onto a diatonic triad of k, and if so returns its label,
// e.g. "V/ii" for A7 in C. Diatonic membership is left to the caller.
func SecondaryTarget(k scale.Key, c chord.Chord) (string, bool) {
	if !chord.IsDominantSeventhShape(c.Tones()) {
		return "", false
	}

	target := common.PitchClass(c.Root.Class() - 7)
	for i, d := range Diatonic(k, false) {
		if d.Root.Class() == target {
			return "V/" + Numeral(i+1, d.Type), true
		}
	}
	return "", false
}
