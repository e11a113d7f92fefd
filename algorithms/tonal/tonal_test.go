package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-bajo/algorithms/chord"
	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
	"github.com/RyanBlaney/sonido-bajo/algorithms/scale"
)

func TestDiatonicChords(t *testing.T) {
	tests := map[string][]string{
		"C":            {"C", "Dm", "Em", "F", "G", "Am", "Bdim"},
		"Am":           {"Am", "Bdim", "C", "Dm", "Em", "F", "G"},
		"C_dorian":     {"Cm", "Dm", "E♭", "F", "Gm", "Adim", "B♭"},
		"C_phrygian":   {"Cm", "D♭", "E♭", "Fm", "Gdim", "A♭", "B♭m"},
		"C_lydian":     {"C", "D", "Em", "F＃dim", "G", "Am", "Bm"},
		"C_mixolydian": {"C", "Dm", "Edim", "F", "Gm", "Am", "B♭"},
		"C_locrian":    {"Cdim", "D♭", "E♭m", "Fm", "G♭", "A♭", "B♭m"},
		"C_harm_minor": {"Cm", "Ddim", "E♭aug", "Fm", "G", "A♭", "Bdim"},
		"C_melo_minor": {"Cm", "Dm", "E♭aug", "F", "G", "Adim", "Bdim"},
		"F＃":           {"F＃", "G＃m", "A＃m", "B", "C＃", "D＃m", "E＃dim"},
	}

	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			got, err := DiatonicChords(key)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDiatonicSevenths(t *testing.T) {
	got, err := DiatonicSevenths("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cmaj7", "Dm7", "Em7", "Fmaj7", "G7", "Am7", "Bm7♭5"}, got)

	got, err = DiatonicSevenths("C_harm_minor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cm(maj7)", "Dm7♭5", "E♭aug(maj7)", "Fm7", "G7", "A♭maj7", "Bdim7"}, got)

	got, err = DiatonicSevenths("C_melo_minor")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cm(maj7)", "Dm7", "E♭aug(maj7)", "F7", "G7", "Am7♭5", "Bm7♭5"}, got)
}

func TestDiatonicChordsOfShortScalesAreEmpty(t *testing.T) {
	for _, key := range []string{"C_penta", "A_m_penta", "E_blues"} {
		got, err := DiatonicChords(key)
		require.NoError(t, err)
		assert.Empty(t, got, key)
	}

	_, err := DiatonicChords("C_nonsense")
	assert.ErrorIs(t, err, scale.ErrUnknownScale)
}

func TestTriadQualitiesMatchReferenceTable(t *testing.T) {
	M, m, d, a := chord.Major, chord.Minor, chord.Diminished, chord.Augmented
	want := map[scale.Type][7]chord.Type{
		scale.Ionian:        {M, m, m, M, M, m, d},
		scale.Aeolian:       {m, d, M, m, m, M, M},
		scale.Dorian:        {m, m, M, M, m, d, M},
		scale.Phrygian:      {m, M, M, m, d, M, m},
		scale.Lydian:        {M, M, m, d, M, m, m},
		scale.Mixolydian:    {M, m, d, M, m, m, M},
		scale.Locrian:       {d, M, m, m, M, M, m},
		scale.HarmonicMinor: {m, d, a, m, M, M, d},
		scale.MelodicMinor:  {m, m, a, M, M, d, d},
	}
	assert.Equal(t, want, triadQualities)
}

func TestFunctionalHarmony(t *testing.T) {
	tests := []struct {
		key, chord string
		want       int
	}{
		{"C", "C", 1},
		{"C", "Am", 6},
		{"C", "A-", 6},
		{"C", "Bdim", 7},
		{"C", "B°", 7},
		{"C", "A7", 0},
		{"C", "Gm", 0},
		{"Am", "E", 0},
		{"C_harm_minor", "G", 5},
		{"F＃", "E#dim", 7},
	}
	for _, tt := range tests {
		got, err := FunctionalHarmony(tt.key, tt.chord)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s in %s", tt.chord, tt.key)
	}

	_, err := FunctionalHarmony("Q", "C")
	assert.Error(t, err)
}

func TestDegreeRoundTrip(t *testing.T) {
	for _, typ := range scale.Types() {
		if !typ.Heptatonic() {
			continue
		}
		for l := pitch.C; l <= pitch.B; l++ {
			for acc := -pitch.MaxAccidental; acc <= pitch.MaxAccidental; acc++ {
				k := scale.Key{Root: pitch.Pitch{Letter: l, Accidental: acc}, Type: typ}
				if !k.Spellable() {
					_, err := DiatonicChords(k.Name())
					assert.ErrorIs(t, err, scale.ErrUnknownScale, k.Name())
					continue
				}

				triads, err := DiatonicChords(k.Name())
				require.NoError(t, err, k.Name())
				for i, name := range triads {
					got, err := FunctionalHarmony(k.Name(), name)
					require.NoError(t, err)
					assert.Equal(t, i+1, got, "%s in %s", name, k.Name())
				}

				for i, c := range Diatonic(k, true) {
					parsed, err := chord.Parse(c.Name())
					require.NoError(t, err)
					degree, seventh := Degree(k, parsed)
					assert.Equal(t, i+1, degree, "%s in %s", c.Name(), k.Name())
					assert.True(t, seventh)
				}
			}
		}
	}
}

func TestRomanNumeral(t *testing.T) {
	major, err := scale.ParseKey("C")
	require.NoError(t, err)
	harm, err := scale.ParseKey("C_harm_minor")
	require.NoError(t, err)

	var got []string
	for d := 1; d <= 7; d++ {
		got = append(got, RomanNumeral(major, d, false))
	}
	assert.Equal(t, []string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}, got)

	got = got[:0]
	for d := 1; d <= 7; d++ {
		got = append(got, RomanNumeral(harm, d, false))
	}
	assert.Equal(t, []string{"i", "ii°", "III+", "iv", "V", "VI", "vii°"}, got)

	got = got[:0]
	for d := 1; d <= 7; d++ {
		got = append(got, RomanNumeral(major, d, true))
	}
	assert.Equal(t, []string{"Imaj7", "ii7", "iii7", "IVmaj7", "V7", "vi7", "viiø7"}, got)

	assert.Equal(t, "", RomanNumeral(major, 0, false))
	assert.Equal(t, "", RomanNumeral(major, 8, false))
}

func TestFunctionalArea(t *testing.T) {
	want := map[int]string{
		0: "", 1: Tonic, 2: Subdominant, 3: Tonic, 4: Subdominant, 5: Dominant, 6: Tonic, 7: Dominant, 8: "",
	}
	for degree, area := range want {
		assert.Equal(t, area, FunctionalArea(degree), degree)
	}
}

func TestCadenceText(t *testing.T) {
	tests := []struct {
		prev, cur int
		want      string
	}{
		{5, 1, "Perfect Cadence"},
		{4, 1, "Plagal Cadence"},
		{7, 1, "Leading-tone Cadence"},
		{5, 6, "Deceptive Cadence"},
		{5, 4, "Interrupted Cadence"},
		{1, 5, "Half Cadence"},
		{5, 5, "Half Cadence"},
		{0, 5, "Half Cadence"},
		{2, 7, "Phrygian Cadence"},
		{1, 2, ""},
		{6, 1, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CadenceText(tt.prev, tt.cur), "%d->%d", tt.prev, tt.cur)
	}

	assert.Equal(t, "ii-V-I Cadence", CadenceTextExtended(2, 5, 1))
	assert.Equal(t, "", CadenceTextExtended(4, 5, 1))
	assert.Equal(t, "", CadenceTextExtended(2, 5, 6))
}

func TestAnalyzeProgression(t *testing.T) {
	got, err := AnalyzeProgression("C", []string{"C", "Am", "F", "G"})
	require.NoError(t, err)
	require.Len(t, got, 4)

	degrees := []int{got[0].Degree, got[1].Degree, got[2].Degree, got[3].Degree}
	assert.Equal(t, []int{1, 6, 4, 5}, degrees)
	assert.Equal(t, []string{"I", "vi", "IV", "V"}, []string{got[0].Roman, got[1].Roman, got[2].Roman, got[3].Roman})
	assert.Equal(t, []string{Tonic, Tonic, Subdominant, Dominant},
		[]string{got[0].Function, got[1].Function, got[2].Function, got[3].Function})
	assert.Equal(t, "", got[0].Cadence)
	assert.Equal(t, "Half Cadence", got[3].Cadence)

	got, err = AnalyzeProgression("C", []string{"G", "C"})
	require.NoError(t, err)
	assert.Equal(t, "Perfect Cadence", got[1].Cadence)
}

func TestAnalyzeProgressionPrefersThreeChordCadence(t *testing.T) {
	got, err := AnalyzeProgression("C", []string{"Dm7", "G7", "Cmaj7"})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"ii7", "V7", "Imaj7"}, []string{got[0].Roman, got[1].Roman, got[2].Roman})
	assert.Equal(t, "Half Cadence", got[1].Cadence)
	assert.Equal(t, "ii-V-I Cadence", got[2].Cadence)
	assert.False(t, got[1].IsSecondaryDominant)
}

func TestSecondaryDominants(t *testing.T) {
	got, err := AnalyzeProgression("C", []string{"C", "A7", "Dm", "D7", "G"})
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, 0, got[1].Degree)
	assert.True(t, got[1].IsSecondaryDominant)
	assert.Equal(t, "V/ii", got[1].SecondaryTarget)

	assert.True(t, got[3].IsSecondaryDominant)
	assert.Equal(t, "V/V", got[3].SecondaryTarget)
	assert.Equal(t, "Half Cadence", got[4].Cadence)

	assert.False(t, got[0].IsSecondaryDominant)
	assert.False(t, got[2].IsSecondaryDominant)
}

func TestAnalyzeProgressionKeepsUnparseableChords(t *testing.T) {
	got, err := AnalyzeProgression("C", []string{"C", "??", "G"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ProgressionEntry{}, got[1])
	assert.Equal(t, "Half Cadence", got[2].Cadence)

	_, err = AnalyzeProgression("nope", []string{"C"})
	assert.Error(t, err)
}

func TestKeyPosition(t *testing.T) {
	tests := map[string]KeyPosition{
		"C":        {CircleOuter, 0},
		"G":        {CircleOuter, 1},
		"F":        {CircleOuter, 11},
		"D♭":       {CircleOuter, 7},
		"C＃":       {CircleOuter, 7},
		"Am":       {CircleInner, 0},
		"Dm":       {CircleInner, 11},
		"F＃m":      {CircleInner, 3},
		"B♭m":      {CircleInner, 7},
		"C_dorian": {CircleNone, -1},
		"bogus":    {CircleNone, -1},
	}
	for key, want := range tests {
		assert.Equal(t, want, GetKeyPosition(key), key)
	}
}

func TestChordToneLabel(t *testing.T) {
	got, err := ChordToneLabel("C", "G", "G1")
	require.NoError(t, err)
	assert.Equal(t, "Dominant Note", got)

	got, err = ChordToneLabel("C", "G", "B1")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = ChordToneLabel("C", "A7", "A")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFunctionalHarmonyText(t *testing.T) {
	assert.Equal(t, "Ⅰ Tonic", FunctionalHarmonyText(1))
	assert.Equal(t, "Ⅶ Leading Tone", FunctionalHarmonyText(7))
	assert.Equal(t, "", FunctionalHarmonyText(0))

	info := FunctionalHarmonyInfo(5)
	assert.Equal(t, "Ⅴ", info.Roman)
	assert.Contains(t, info.Desc, "Dominant")
	assert.Equal(t, HarmonyInfo{}, FunctionalHarmonyInfo(9))
}
