package tuning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsValidate(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			require.NoError(t, p.Validate())
			assert.Equal(t, DefaultMaxFret, p.MaxFret)
		})
	}
}

func TestPresetNames(t *testing.T) {
	r := NewRegistry()
	var names []string
	for _, tn := range r.List() {
		names = append(names, tn.Name)
	}
	assert.Equal(t, []string{Bass4, Bass5, Bass6, BassDropD, Bass4Eb}, names)
}

func TestStringNumbering(t *testing.T) {
	bass, err := Lookup(Bass4)
	require.NoError(t, err)

	assert.Equal(t, 4, bass.StringNumber(0), "lowest string is the highest number")
	assert.Equal(t, 1, bass.StringNumber(3))
	assert.Equal(t, 0, bass.StringIndex(4))
	assert.Equal(t, "G", bass.Strings[bass.StringIndex(1)].OpenNote)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name    string
		lowest  int
		highest int
	}{
		{Bass4, 0, 39},
		{Bass5, -5, 39},
		{Bass6, -5, 44},
		{BassDropD, -2, 39},
		{Bass4Eb, -1, 38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.lowest, tn.Lowest())
			assert.Equal(t, tt.highest, tn.Highest())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("ukulele")
	assert.ErrorIs(t, err, ErrUnknownTuning)
}

func TestLookupReturnsCopy(t *testing.T) {
	r := NewRegistry()
	first, err := r.Lookup(Bass4)
	require.NoError(t, err)
	first.Strings[0].OpenNote = "X"
	first.Strings = first.Strings[:1]

	second, err := r.Lookup(Bass4)
	require.NoError(t, err)
	assert.Len(t, second.Strings, 4)
	assert.Equal(t, "E", second.Strings[0].OpenNote)
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	custom := Tuning{
		Name:    "bass_4_c",
		MaxFret: 21,
		Strings: []StringDef{{"C", -4}, {"F", 1}, {"B♭", 6}, {"E♭", 11}},
	}
	require.NoError(t, r.Register(custom))

	got, err := r.Lookup("bass_4_c")
	require.NoError(t, err)
	assert.Equal(t, custom, got)

	list := r.List()
	assert.Equal(t, "bass_4_c", list[len(list)-1].Name)
	assert.Contains(t, r.Names(), "bass_4_c")

	custom.Strings[0].OpenNote = "D"
	got, err = r.Lookup("bass_4_c")
	require.NoError(t, err)
	assert.Equal(t, "C", got.Strings[0].OpenNote, "registry keeps its own copy")
}

func TestRegisterReplacesPreset(t *testing.T) {
	r := NewRegistry()
	short := Tuning{
		Name:    Bass4,
		MaxFret: 20,
		Strings: []StringDef{{"E", 0}, {"A", 5}, {"D", 10}, {"G", 15}},
	}
	require.NoError(t, r.Register(short))

	got, err := r.Lookup(Bass4)
	require.NoError(t, err)
	assert.Equal(t, 20, got.MaxFret)
	assert.Len(t, r.List(), len(Presets()))
}

func TestRegisterRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		tuning Tuning
	}{
		{"no name", Tuning{MaxFret: 24, Strings: []StringDef{{"E", 0}}}},
		{"no strings", Tuning{Name: "empty", MaxFret: 24}},
		{"no frets", Tuning{Name: "fretless", Strings: []StringDef{{"E", 0}}}},
		{"bad note", Tuning{Name: "bad", MaxFret: 24, Strings: []StringDef{{"H", 0}}}},
		{"note disagrees with offset", Tuning{Name: "off", MaxFret: 24, Strings: []StringDef{{"E", 1}}}},
	}
	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Register(tt.tuning), ErrInvalidTuning)
		})
	}
	assert.Len(t, r.List(), len(Presets()))
}
