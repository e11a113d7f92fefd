package fretboard

import (
	"github.com/RyanBlaney/sonido-bajo/algorithms/chord"
	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
	"github.com/RyanBlaney/sonido-bajo/instrument/tuning"
)

// Pseudo chord names that map whole pitch collections rooted on C
const (
	AllKeys   = "ALL_KEYS"
	WhiteKeys = "WHITE_KEYS"
)

// lowE is the absolute semitone of E1, the zero of string offsets
const lowE = 1*12 + pitch.ReferenceClass

var (
	chromaticTones = []chord.ChordTone{
		{Interval: "1", Semitones: 0}, {Interval: "♭2", Semitones: 1},
		{Interval: "2", Semitones: 2}, {Interval: "♭3", Semitones: 3},
		{Interval: "3", Semitones: 4}, {Interval: "4", Semitones: 5},
		{Interval: "♭5", Semitones: 6}, {Interval: "5", Semitones: 7},
		{Interval: "＃5", Semitones: 8}, {Interval: "6", Semitones: 9},
		{Interval: "♭7", Semitones: 10}, {Interval: "7", Semitones: 11},
	}
	whiteKeyTones = []chord.ChordTone{
		{Interval: "1", Semitones: 0}, {Interval: "2", Semitones: 2},
		{Interval: "3", Semitones: 4}, {Interval: "4", Semitones: 5},
		{Interval: "5", Semitones: 7}, {Interval: "6", Semitones: 9},
		{Interval: "7", Semitones: 11},
	}
)

// Position is one playable spot on the neck
type Position struct {
	String   int    `json:"string"`   // 1 = highest string
	Fret     int    `json:"fret"`     // 0 = open
	Pitch    string `json:"pitch"`    // spelled note with octave, e.g. "E♭2"
	Interval string `json:"interval"` // degree label relative to the chord root
}

// ChordPositions lists every position sounding a tone of the chord. Tones
// are taken in chord order; within a tone, positions ascend in pitch and
// then run from the lowest string up. Tones sharing a pitch class with an
// earlier tone are skipped. Returns nil for an unparseable name.
func ChordPositions(name string, t tuning.Tuning) []Position {
	root, tones, ok := resolve(name)
	if !ok || len(t.Strings) == 0 {
		return nil
	}

	var out []Position
	seen := make(map[int]bool, len(tones))
	for _, tone := range tones {
		class := common.PitchClass(root.Class() + tone.Semitones)
		if seen[class] {
			continue
		}
		seen[class] = true

		spelled := chord.SpellTone(root, tone)
		for abs := t.Lowest(); abs <= t.Highest(); abs++ {
			if common.PitchClass(abs+lowE) != class {
				continue
			}
			name := withOctave(spelled, abs)
			for i, s := range t.Strings {
				fret := abs - s.Offset
				if fret < 0 || fret > t.MaxFret {
					continue
				}
				out = append(out, Position{
					String:   t.StringNumber(i),
					Fret:     fret,
					Pitch:    name,
					Interval: tone.Interval,
				})
			}
		}
	}
	return out
}

// Candidates lists the positions for one requested pitch, given in
// semitones above E1. By default any octave of the pitch class matches;
// with exact set only the same absolute pitch does. Strings run low to
// high, frets ascending within a string.
func Candidates(target int, t tuning.Tuning, exact bool) []Position {
	class := common.PitchClass(target + lowE)
	spelled := spellClass(class)

	var out []Position
	for i, s := range t.Strings {
		for fret := 0; fret <= t.MaxFret; fret++ {
			abs := s.Offset + fret
			if exact && abs != target {
				continue
			}
			if common.PitchClass(abs+lowE) != class {
				continue
			}
			out = append(out, Position{
				String: t.StringNumber(i),
				Fret:   fret,
				Pitch:  withOctave(spelled, abs),
			})
		}
	}
	return out
}

// PitchAt returns the offset above E1 sounding at a string number and
// fret, or false when the string does not exist or the fret is off the
// neck.
func PitchAt(t tuning.Tuning, stringNumber, fret int) (int, bool) {
	i := t.StringIndex(stringNumber)
	if i < 0 || i >= len(t.Strings) || fret < 0 || fret > t.MaxFret {
		return 0, false
	}
	return t.Strings[i].Offset + fret, true
}

func resolve(name string) (pitch.Pitch, []chord.ChordTone, bool) {
	switch name {
	case AllKeys:
		return pitch.Pitch{Letter: pitch.C}, chromaticTones, true
	case WhiteKeys:
		return pitch.Pitch{Letter: pitch.C}, whiteKeyTones, true
	}
	c, err := chord.Parse(name)
	if err != nil {
		return pitch.Pitch{}, nil, false
	}
	return c.Root, c.Tones(), true
}

// spellClass picks the plain spelling of a bare pitch class: naturals as
// is, black keys as sharps.
func spellClass(class int) pitch.Pitch {
	for l := pitch.C; l <= pitch.B; l++ {
		if l.Natural() == class {
			return pitch.Pitch{Letter: l}
		}
	}
	for l := pitch.C; l <= pitch.B; l++ {
		if l.Natural()+1 == class {
			return pitch.Pitch{Letter: l, Accidental: 1}
		}
	}
	return pitch.Pitch{}
}

// withOctave pins a spelled note to the octave that makes it sound at abs
// semitones above E1, so B＃ an octave above C1 renders as B＃1.
func withOctave(p pitch.Pitch, abs int) string {
	sounding := abs + lowE
	base := p.Letter.Natural() + p.Accidental
	p.Octave = floorDiv(sounding-base, 12)
	p.HasOctave = true
	return p.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
