package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
)

func semitones(tones []ChordTone) []int {
	out := make([]int, len(tones))
	for i, tone := range tones {
		out[i] = tone.Semitones
	}
	return out
}

func TestTones(t *testing.T) {
	tests := []struct {
		suffix string
		want   []int
	}{
		{"", []int{0, 4, 7}},
		{"maj", []int{0, 4, 7}},
		{"m", []int{0, 3, 7}},
		{"dim", []int{0, 3, 6}},
		{"aug", []int{0, 4, 8}},
		{"sus4", []int{0, 5, 7}},
		{"sus2", []int{0, 2, 7}},
		{"7", []int{0, 4, 7, 10}},
		{"maj7", []int{0, 4, 7, 11}},
		{"M7", []int{0, 4, 7, 11}},
		{"m_maj7", []int{0, 3, 7, 11}},
		{"dim7", []int{0, 3, 6, 9}},
		{"ø", []int{0, 3, 6, 10}},
		{"aug(maj7)", []int{0, 4, 8, 11}},
		{"7sus", []int{0, 5, 7, 10}},
		{"m6", []int{0, 3, 7, 9}},
		{"9", []int{0, 4, 7, 10, 14}},
		{"add9", []int{0, 4, 7, 14}},
		{"7b9", []int{0, 4, 7, 10, 13}},
		{"7＃9", []int{0, 4, 7, 10, 15}},
		{"7#9", []int{0, 4, 7, 10, 15}},
		{"5", []int{0, 7}},
		{"8", []int{0, 12}},
		{"13", []int{0, 4, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.suffix, func(t *testing.T) {
			assert.Equal(t, tt.want, semitones(Tones(tt.suffix)))
		})
	}
}

func TestTonesReturnsCopy(t *testing.T) {
	tones := Tones("m")
	tones[1].Semitones = 99
	assert.Equal(t, 3, Tones("m")[1].Semitones)
}

func TestEverySpellingResolvesToItsType(t *testing.T) {
	for _, typ := range Types() {
		for _, s := range typ.Spellings() {
			c, err := Parse("C" + s)
			require.NoError(t, err)
			assert.Equal(t, typ, c.Type, "C%s", s)
			assert.True(t, c.Recognized, "C%s", s)
		}

		got, ok := ParseType(typ.String())
		require.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("B♭m7")
	require.NoError(t, err)
	assert.Equal(t, pitch.B, c.Root.Letter)
	assert.Equal(t, -1, c.Root.Accidental)
	assert.Equal(t, Minor7, c.Type)
	assert.Equal(t, "B♭m7", c.Name())

	c, err = Parse("Bbm7b5")
	require.NoError(t, err)
	assert.Equal(t, HalfDiminished7, c.Type)
	assert.Equal(t, "B♭m7♭5", c.Name())

	c, err = Parse("F#maj7")
	require.NoError(t, err)
	assert.Equal(t, "F＃maj7", c.Name())

	c, err = Parse("C/E")
	require.NoError(t, err)
	require.NotNil(t, c.Bass)
	assert.Equal(t, "E", c.Bass.Name())
	assert.Equal(t, Major, c.Type)
	assert.Equal(t, "C/E", c.Name())

	c, err = Parse("Cxyz")
	require.NoError(t, err)
	assert.Equal(t, Major, c.Type)
	assert.False(t, c.Recognized)

	_, err = Parse("Hm")
	assert.ErrorIs(t, err, ErrUnknownRoot)
	_, err = Parse("")
	assert.ErrorIs(t, err, ErrUnknownRoot)
}

func TestRootNote(t *testing.T) {
	tests := map[string]string{
		"C": "C", "Am7": "A", "E♭maj7": "E♭", "F＃m": "F＃", "Db7": "D♭", "G/B": "G",
	}
	for name, want := range tests {
		got, err := RootNote(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := RootNote("xyz")
	assert.Error(t, err)
}

func TestDetectInversion(t *testing.T) {
	tests := []struct {
		chord, bass string
		want        int
	}{
		{"C", "C1", 0},
		{"C", "E1", 1},
		{"C", "G1", 2},
		{"Cmaj7", "B2", 3},
		{"C", "F1", NotAChordTone},
		{"Am", "C", 1},
		{"G7", "F2", 3},
		{"C8", "C", 0},
	}

	for _, tt := range tests {
		t.Run(tt.chord+"_"+tt.bass, func(t *testing.T) {
			got, err := DetectInversion(tt.chord, tt.bass)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DetectInversion("C", "nope")
	assert.Error(t, err)
}

func TestIntervalLabel(t *testing.T) {
	tests := []struct {
		chord, target, want string
	}{
		{"C", "C1", "1"},
		{"C", "E♭1", "♭3"},
		{"C", "F＃", "＃4/♭5"},
		{"A", "G", "♭7"},
		{"E", "D＃2", "7"},
	}
	for _, tt := range tests {
		got, err := IntervalLabel(tt.chord, tt.target)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.chord+"/"+tt.target)
	}
}

func TestSpellTones(t *testing.T) {
	tests := map[string][]string{
		"C":      {"C", "E", "G"},
		"Cdim7":  {"C", "E♭", "G♭", "B♭♭"},
		"E♭maj7": {"E♭", "G", "B♭", "D"},
		"F＃7":    {"F＃", "A＃", "C＃", "E"},
		"C9":     {"C", "E", "G", "B♭", "D"},
		"Gaug":   {"G", "B", "D＃"},
		"A5":     {"A", "E"},
	}
	for name, want := range tests {
		got, err := SpellTones(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestNameAliases(t *testing.T) {
	assert.Equal(t, []string{"Cmaj7", "CM7", "C△7", "CΔ7"}, NameAliases("Cmaj7"))
	assert.Equal(t, []string{"Am", "Amin", "A-"}, NameAliases("A-"))
	assert.Equal(t, []string{"G7", "Gdom7"}, NameAliases("G7"))
	assert.Equal(t, []string{"Cxyz"}, NameAliases("Cxyz"))
	assert.Equal(t, []string{"???"}, NameAliases("???"))
}

func TestIsDominantSeventhShape(t *testing.T) {
	assert.True(t, IsDominantSeventhShape(Tones("7")))
	assert.True(t, IsDominantSeventhShape(Tones("dom7")))
	assert.False(t, IsDominantSeventhShape(Tones("9")))
	assert.False(t, IsDominantSeventhShape(Tones("maj7")))
	assert.False(t, IsDominantSeventhShape(Tones("")))
}
