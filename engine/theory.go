package engine

import (
	"github.com/RyanBlaney/sonido-bajo/algorithms/chord"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
	"github.com/RyanBlaney/sonido-bajo/algorithms/scale"
	"github.com/RyanBlaney/sonido-bajo/algorithms/tonal"
	"github.com/RyanBlaney/sonido-bajo/logging"
)

// FretOffset returns the fret of root on an E string, -1 when invalid
func (e *Engine) FretOffset(root string) int {
	n, err := pitch.FretOffset(root)
	if err != nil {
		e.reject("fret_offset", err, logging.Fields{"root": root})
		return -1
	}
	return n
}

// ComparePitch reports whether two pitches with octave sound the same
func (e *Engine) ComparePitch(a, b string) bool {
	return pitch.ComparePitch(a, b)
}

// RootNote returns the root of a chord name, "" when invalid
func (e *Engine) RootNote(name string) string {
	root, err := chord.RootNote(name)
	if err != nil {
		e.reject("get_root_note", err, logging.Fields{"chord": name})
		return ""
	}
	return root
}

// SemitoneDistance returns b minus a in semitones, 0 when either is invalid
func (e *Engine) SemitoneDistance(a, b string) int {
	n, err := pitch.SemitoneDistance(a, b)
	if err != nil {
		e.reject("semitone_distance", err, logging.Fields{"from": a, "to": b})
		return 0
	}
	return n
}

// IntervalName names a semitone distance
func (e *Engine) IntervalName(semitones int) string {
	return pitch.IntervalName(semitones)
}

// DetectInversion returns the inversion of chord over bass, -1 when the
// bass is not a chord tone or either name is invalid
func (e *Engine) DetectInversion(name, bass string) int {
	n, err := chord.DetectInversion(name, bass)
	if err != nil {
		e.reject("detect_inversion", err, logging.Fields{"chord": name, "bass": bass})
		return chord.NotAChordTone
	}
	return n
}

// SpellChord returns the lettered tones of a chord
func (e *Engine) SpellChord(name string) []string {
	tones, err := chord.SpellTones(name)
	if err != nil {
		e.reject("spell_chord", err, logging.Fields{"chord": name})
	}
	return orEmpty(tones)
}

// ChordNameAliases lists alternative spellings of a chord name
func (e *Engine) ChordNameAliases(name string) []string {
	return chord.NameAliases(name)
}

// IsChromaticNote reports whether two note names differ by a semitone
func (e *Engine) IsChromaticNote(a, b string) bool {
	return pitch.IsChromaticNote(a, b)
}

// IntervalLabel labels target relative to the chord root, "" when invalid
func (e *Engine) IntervalLabel(name, target string) string {
	label, err := chord.IntervalLabel(name, target)
	if err != nil {
		e.reject("get_interval", err, logging.Fields{"chord": name, "pitch": target})
		return ""
	}
	return label
}

// StaffLine places a pitch on the bass staff
func (e *Engine) StaffLine(text string) (float64, bool) {
	return pitch.StaffLine(text)
}

// ScaleNoteNames spells the notes of a scale key
func (e *Engine) ScaleNoteNames(key string) []string {
	notes, err := scale.NoteNames(key)
	if err != nil {
		e.reject("get_scale_note_names", err, logging.Fields{"scale": key})
	}
	return orEmpty(notes)
}

// ScaleText renders a scale key for display, "" when invalid
func (e *Engine) ScaleText(key string) string {
	text, err := scale.Text(key)
	if err != nil {
		e.reject("scale_text", err, logging.Fields{"scale": key})
		return ""
	}
	return text
}

// DiatonicChords lists the diatonic triads of a scale key
func (e *Engine) DiatonicChords(key string) []string {
	chords, err := tonal.DiatonicChords(key)
	if err != nil {
		e.reject("get_scale_diatonic_chords", err, logging.Fields{"scale": key})
	}
	return orEmpty(chords)
}

// DiatonicChordsWith7th lists the diatonic seventh chords of a scale key
func (e *Engine) DiatonicChordsWith7th(key string) []string {
	chords, err := tonal.DiatonicSevenths(key)
	if err != nil {
		e.reject("get_scale_diatonic_chords_with_7th", err, logging.Fields{"scale": key})
	}
	return orEmpty(chords)
}

// FunctionalHarmony returns the degree of a triad in a key, 0 when it is
// not diatonic or either name is invalid
func (e *Engine) FunctionalHarmony(key, name string) int {
	degree, err := tonal.FunctionalHarmony(key, name)
	if err != nil {
		e.reject("get_functional_harmony", err, logging.Fields{"scale": key, "chord": name})
		return 0
	}
	return degree
}

// CadenceText names the cadence formed by two degrees, "" when none
func (e *Engine) CadenceText(prev, cur int) string {
	return tonal.CadenceText(prev, cur)
}

// CadenceTextExtended names a three-degree cadence, "" when none
func (e *Engine) CadenceTextExtended(prev2, prev, cur int) string {
	return tonal.CadenceTextExtended(prev2, prev, cur)
}

// FunctionalArea returns Tonic, Subdominant or Dominant for a degree
func (e *Engine) FunctionalArea(degree int) string {
	return tonal.FunctionalArea(degree)
}

// FunctionalHarmonyText renders a degree as numeral and function name
func (e *Engine) FunctionalHarmonyText(degree int) string {
	return tonal.FunctionalHarmonyText(degree)
}

// AnalyzeProgression analyzes chords in a scale key, empty when the key
// is invalid
func (e *Engine) AnalyzeProgression(key string, chords []string) []tonal.ProgressionEntry {
	entries, err := tonal.AnalyzeProgression(key, chords)
	if err != nil {
		e.reject("analyze_progression", err, logging.Fields{"scale": key, "chords": len(chords)})
	}
	return orEmpty(entries)
}

// KeyPosition locates a key on the circle of fifths
func (e *Engine) KeyPosition(key string) tonal.KeyPosition {
	return tonal.GetKeyPosition(key)
}

// ChordToneLabel describes the harmonic role of a pitch in a chord
// within a key, "" when it has none
func (e *Engine) ChordToneLabel(key, name, target string) string {
	label, err := tonal.ChordToneLabel(key, name, target)
	if err != nil {
		e.reject("get_chord_tone_label", err, logging.Fields{"scale": key, "chord": name, "pitch": target})
		return ""
	}
	return label
}

// RelatedKeys lists the relative, parallel, dominant and subdominant keys
// of a major or minor key, all empty otherwise
func (e *Engine) RelatedKeys(key string) tonal.KeyRelations {
	r, err := tonal.RelatedKeys(key)
	if err != nil {
		e.reject("related_keys", err, logging.Fields{"scale": key})
		return tonal.KeyRelations{}
	}
	return r
}

// IsKeyCompatible reports whether two keys are the same or closely related
func (e *Engine) IsKeyCompatible(a, b string) bool {
	ka, err := scale.ParseKey(a)
	if err != nil {
		return false
	}
	kb, err := scale.ParseKey(b)
	if err != nil {
		return false
	}
	return tonal.IsKeyCompatible(ka, kb)
}
