package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
)

// Accidental glyphs used for every rendered note name. The notation
// front end draws sharps with the full-width sign.
const (
	SharpSign = "＃"
	FlatSign  = "♭"
)

// MaxAccidental bounds the accidental count accepted on input
const MaxAccidental = 2

var (
	ErrUnknownNote = errors.New("unknown note name")
	ErrNoOctave    = errors.New("pitch has no octave")
)

// Letter is a natural note letter, C through B
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// natural pitch classes for C D E F G A B
var naturalClasses = [7]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) String() string {
	return letterNames[common.Mod(int(l), 7)]
}

// Natural returns the pitch class of the unaltered letter
func (l Letter) Natural() int {
	return naturalClasses[common.Mod(int(l), 7)]
}

// Step returns the letter n diatonic steps above l, wrapping after B
func (l Letter) Step(n int) Letter {
	return Letter(common.Mod(int(l)+n, 7))
}

// ParseLetter maps an upper-case letter to its Letter
func ParseLetter(r byte) (Letter, bool) {
	switch r {
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'E':
		return E, true
	case 'F':
		return F, true
	case 'G':
		return G, true
	case 'A':
		return A, true
	case 'B':
		return B, true
	}
	return 0, false
}

// Pitch is a spelled note, optionally pinned to an octave
type Pitch struct {
	Letter     Letter `json:"letter"`
	Accidental int    `json:"accidental"` // -2 (double flat) .. +2 (double sharp)
	Octave     int    `json:"octave"`
	HasOctave  bool   `json:"has_octave"`
}

// Class returns the pitch class 0-11 with C = 0
func (p Pitch) Class() int {
	return common.PitchClass(p.Letter.Natural() + p.Accidental)
}

// Absolute returns octave*12 + class
func (p Pitch) Absolute() int {
	return p.Octave*12 + p.Class()
}

// Name renders the note name without octave
func (p Pitch) Name() string {
	return FormatNote(p.Letter, p.Accidental)
}

func (p Pitch) String() string {
	if !p.HasOctave {
		return p.Name()
	}
	return p.Name() + strconv.Itoa(p.Octave)
}

// FormatAccidental renders an accidental count as repeated sharp or flat glyphs
func FormatAccidental(accidental int) string {
	switch {
	case accidental > 0:
		return strings.Repeat(SharpSign, accidental)
	case accidental < 0:
		return strings.Repeat(FlatSign, -accidental)
	}
	return ""
}

// FormatNote renders a letter and accidental as a note name
func FormatNote(l Letter, accidental int) string {
	return l.String() + FormatAccidental(accidental)
}

// Normalize folds full-width characters to their narrow forms and maps
// the music sharp sign to '#', so all accepted spellings parse the same.
func Normalize(text string) string {
	s := width.Narrow.String(strings.TrimSpace(text))
	return strings.ReplaceAll(s, "♯", "#")
}

// ReadNote consumes a letter and its accidentals from the front of text
// and returns the parsed pitch (no octave) and the unconsumed remainder.
// The text is expected to be normalized.
func ReadNote(text string) (Pitch, string, error) {
	if text == "" {
		return Pitch{}, "", fmt.Errorf("%w: empty", ErrUnknownNote)
	}
	letter, ok := ParseLetter(text[0])
	if !ok {
		return Pitch{}, "", fmt.Errorf("%w: %q", ErrUnknownNote, text)
	}

	rest := text[1:]
	sharps, flats := 0, 0
	for {
		switch {
		case strings.HasPrefix(rest, "#"):
			sharps++
			rest = rest[1:]
			continue
		case strings.HasPrefix(rest, FlatSign):
			flats++
			rest = rest[len(FlatSign):]
			continue
		case strings.HasPrefix(rest, "b"):
			flats++
			rest = rest[1:]
			continue
		}
		break
	}

	if sharps > 0 && flats > 0 {
		return Pitch{}, "", fmt.Errorf("%w: mixed accidentals in %q", ErrUnknownNote, text)
	}
	if sharps > MaxAccidental || flats > MaxAccidental {
		return Pitch{}, "", fmt.Errorf("%w: too many accidentals in %q", ErrUnknownNote, text)
	}

	return Pitch{Letter: letter, Accidental: sharps - flats}, rest, nil
}

// ParseNote parses a note name with an optional trailing octave number,
// e.g. "E", "B♭", "C＃2" or "B-1".
func ParseNote(text string) (Pitch, error) {
	p, rest, err := ReadNote(Normalize(text))
	if err != nil {
		return Pitch{}, err
	}
	if rest == "" {
		return p, nil
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrUnknownNote, text)
	}
	p.Octave = octave
	p.HasOctave = true
	return p, nil
}

// ParsePitch parses a note name that must carry an octave
func ParsePitch(text string) (Pitch, error) {
	p, err := ParseNote(text)
	if err != nil {
		return Pitch{}, err
	}
	if !p.HasOctave {
		return Pitch{}, fmt.Errorf("%w: %q", ErrNoOctave, text)
	}
	return p, nil
}

// NoteToSemitone returns the pitch class of a bare note name
func NoteToSemitone(name string) (int, error) {
	p, err := ParseNote(name)
	if err != nil {
		return 0, err
	}
	if p.HasOctave {
		return 0, fmt.Errorf("%w: %q carries an octave", ErrUnknownNote, name)
	}
	return p.Class(), nil
}

// AbsoluteSemitone returns octave*12 + class for a pitch with octave
func AbsoluteSemitone(text string) (int, error) {
	p, err := ParsePitch(text)
	if err != nil {
		return 0, err
	}
	return p.Absolute(), nil
}

// ComparePitch reports whether two pitches sound the same in the same
// octave. Spelling is ignored, so C＃2 equals D♭2. Unparseable input is
// never equal to anything.
func ComparePitch(a, b string) bool {
	pa, err := ParsePitch(a)
	if err != nil {
		return false
	}
	pb, err := ParsePitch(b)
	if err != nil {
		return false
	}
	return pa.Octave == pb.Octave && pa.Class() == pb.Class()
}

// AccidentalFor returns the accidental that makes letter l sound as the
// given pitch class, normalized into (-6, +6]. An exact tritone resolves
// to the sharp side.
func AccidentalFor(l Letter, class int) int {
	d := common.PitchClass(class - l.Natural())
	if d > 6 {
		d -= 12
	}
	return d
}
