package pitch

// Bass clef staff lines, counted in diatonic steps from E1.
const (
	staffLowest  = 0.0  // E1
	staffHighest = 23.0 // G4
	staffOrigin  = 1*7 + 2
)

// StaffLine returns the vertical staff position of a pitch, one unit per
// diatonic step with E1 at 0. A sharp raises the position by half a step
// and a flat lowers it, except E＃, B＃, F♭ and C♭ which sit on their
// enharmonic letter. Pitches outside E1..G4, double accidentals and
// unparseable input report false.
func StaffLine(text string) (float64, bool) {
	p, err := ParsePitch(text)
	if err != nil {
		return 0, false
	}

	step := int(p.Letter)
	octave := p.Octave
	shift := 0.0

	switch {
	case p.Accidental == 0:
	case p.Accidental == 1 && p.Letter == E:
		step = int(F)
	case p.Accidental == 1 && p.Letter == B:
		step, octave = int(C), octave+1
	case p.Accidental == -1 && p.Letter == F:
		step = int(E)
	case p.Accidental == -1 && p.Letter == C:
		step, octave = int(B), octave-1
	case p.Accidental == 1:
		shift = 0.5
	case p.Accidental == -1:
		shift = -0.5
	default:
		return 0, false
	}

	line := float64(octave*7+step-staffOrigin) + shift
	if line < staffLowest || line > staffHighest {
		return 0, false
	}
	return line, true
}
