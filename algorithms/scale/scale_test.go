package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-bajo/algorithms/pitch"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key      string
		root     string
		typ      Type
		rendered string
	}{
		{"C", "C", Ionian, "C"},
		{"Am", "A", Aeolian, "Am"},
		{"C_dorian", "C", Dorian, "C_dorian"},
		{"E♭_m_penta", "E♭", MinorPentatonic, "E♭_m_penta"},
		{"F#_lydian", "F＃", Lydian, "F＃_lydian"},
		{"Bbm", "B♭", Aeolian, "B♭m"},
		{"G_major", "G", Ionian, "G"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k, err := ParseKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.root, k.Root.Name())
			assert.Equal(t, tt.typ, k.Type)
			assert.Equal(t, tt.rendered, k.Name())
		})
	}
}

func TestParseKeyRejectsUnknown(t *testing.T) {
	for _, key := range []string{"", "H", "C_bebop", "Cxyz", "C2", "CM"} {
		_, err := ParseKey(key)
		assert.ErrorIs(t, err, ErrUnknownScale, key)
	}
}

func TestParseKeyDoubleAccidentalRoots(t *testing.T) {
	k, err := ParseKey("B♭♭")
	require.NoError(t, err)
	assert.Equal(t, []string{"B♭♭", "C♭", "D♭", "E♭♭", "F♭", "G♭", "A♭"}, k.Notes())

	for _, key := range []string{"G＃＃", "F♭♭_locrian", "B##_lydian"} {
		_, err := ParseKey(key)
		assert.ErrorIs(t, err, ErrUnknownScale, key)
	}

	_, err = ComputeNotes("G##", Ionian)
	assert.ErrorIs(t, err, ErrUnknownScale)
}

func TestSpellableMatchesParseKey(t *testing.T) {
	for _, typ := range Types() {
		for l := pitch.C; l <= pitch.B; l++ {
			for acc := -pitch.MaxAccidental; acc <= pitch.MaxAccidental; acc++ {
				k := Key{Root: pitch.Pitch{Letter: l, Accidental: acc}, Type: typ}
				_, err := ParseKey(k.Name())
				if !k.Spellable() {
					assert.ErrorIs(t, err, ErrUnknownScale, k.Name())
					continue
				}
				require.NoError(t, err, k.Name())
				for _, p := range k.Spell() {
					assert.LessOrEqual(t, p.Accidental, pitch.MaxAccidental, k.Name())
					assert.GreaterOrEqual(t, p.Accidental, -pitch.MaxAccidental, k.Name())
				}
			}
		}
	}
}

func TestComputeNotes(t *testing.T) {
	tests := []struct {
		root string
		typ  Type
		want []string
	}{
		{"C", Ionian, []string{"C", "D", "E", "F", "G", "A", "B"}},
		{"C", Dorian, []string{"C", "D", "E♭", "F", "G", "A", "B♭"}},
		{"G", Mixolydian, []string{"G", "A", "B", "C", "D", "E", "F"}},
		{"A", MinorPentatonic, []string{"A", "C", "D", "E", "G"}},
		{"C", MajorPentatonic, []string{"C", "D", "E", "G", "A"}},
		{"F＃", Ionian, []string{"F＃", "G＃", "A＃", "B", "C＃", "D＃", "E＃"}},
		{"F＃", MajorPentatonic, []string{"F＃", "G＃", "A＃", "C＃", "D＃"}},
		{"E♭", MinorPentatonic, []string{"E♭", "G♭", "A♭", "B♭", "D♭"}},
		{"C", Blues, []string{"C", "E♭", "F", "G♭", "A♭♭", "B♭"}},
		{"C", HarmonicMinor, []string{"C", "D", "E♭", "F", "G", "A♭", "B"}},
		{"C", Locrian, []string{"C", "D♭", "E♭", "F", "G♭", "A♭", "B♭"}},
	}

	for _, tt := range tests {
		t.Run(tt.root+"_"+tt.typ.String(), func(t *testing.T) {
			got, err := ComputeNotes(tt.root, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ComputeNotes("Q", Ionian)
	assert.Error(t, err)
	_, err = ComputeNotes("C", Type(99))
	assert.ErrorIs(t, err, ErrUnknownScale)
}

func allRoots() []pitch.Pitch {
	var roots []pitch.Pitch
	for l := pitch.C; l <= pitch.B; l++ {
		for acc := -1; acc <= 1; acc++ {
			roots = append(roots, pitch.Pitch{Letter: l, Accidental: acc})
		}
	}
	return roots
}

func TestSpellingUsesEachLetterOnce(t *testing.T) {
	for _, typ := range Types() {
		if !typ.Heptatonic() {
			continue
		}
		for _, root := range allRoots() {
			k := Key{Root: root, Type: typ}
			spelled := k.Spell()
			require.Len(t, spelled, 7, k.Name())

			for i, p := range spelled {
				assert.Equal(t, root.Letter.Step(i), p.Letter, k.Name())
				assert.Equal(t, (p.Class()-root.Class()+12)%12, typ.Pattern()[i], k.Name())
			}
		}
	}
}

func TestSpellingOfShortScalesAscendsWithoutReuse(t *testing.T) {
	for _, typ := range []Type{MajorPentatonic, MinorPentatonic, Blues} {
		for _, root := range allRoots() {
			k := Key{Root: root, Type: typ}
			spelled := k.Spell()
			require.Len(t, spelled, len(typ.Pattern()), k.Name())
			assert.Equal(t, root.Letter, spelled[0].Letter, k.Name())

			prev := -1
			for i, p := range spelled {
				step := (int(p.Letter) - int(root.Letter) + 7) % 7
				assert.Greater(t, step, prev, "letters must ascend in %s", k.Name())
				prev = step
				assert.Equal(t, (p.Class()-root.Class()+12)%12, typ.Pattern()[i], k.Name())
			}
		}
	}
}

func TestNoteNames(t *testing.T) {
	got, err := NoteNames("C_dorian")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D", "E♭", "F", "G", "A", "B♭"}, got)

	got, err = NoteNames("Am")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, got)

	_, err = NoteNames("nope")
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	tests := map[string]string{
		"C":            "C Major Scale",
		"Am":           "A Minor Scale",
		"C_dorian":     "C Dorian Scale",
		"A_blues":      "A Blues Scale",
		"E_penta":      "E Major Pentatonic Scale",
		"D_harm_minor": "D Harmonic Minor Scale",
	}
	for key, want := range tests {
		got, err := Text(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got)
	}
}

func TestPatternReturnsCopy(t *testing.T) {
	p := Ionian.Pattern()
	p[1] = 42
	assert.Equal(t, 2, Ionian.Pattern()[1])
}
