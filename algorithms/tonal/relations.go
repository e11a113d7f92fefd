package tonal

import (
	"fmt"

	"github.com/RyanBlaney/sonido-bajo/algorithms/scale"
)

// KeyRelations lists the closely related keys of a major or natural minor
// key, spelled from the key's own scale
type KeyRelations struct {
	Relative    string `json:"relative"`
	Parallel    string `json:"parallel"`
	Dominant    string `json:"dominant"`
	Subdominant string `json:"subdominant"`
}

// relativeDegree is the 0-based scale step holding the relative tonic
var relativeDegree = map[scale.Type]int{
	scale.Ionian:  5, // vi
	scale.Aeolian: 2, // III
}

func other(t scale.Type) scale.Type {
	if t == scale.Ionian {
		return scale.Aeolian
	}
	return scale.Ionian
}

// Relations returns the related keys of k. Only major and natural minor
// keys have them.
func Relations(k scale.Key) (KeyRelations, bool) {
	rel, ok := relativeDegree[k.Type]
	if !ok {
		return KeyRelations{}, false
	}
	notes := k.Spell()
	return KeyRelations{
		Relative:    scale.Key{Root: notes[rel], Type: other(k.Type)}.Name(),
		Parallel:    scale.Key{Root: k.Root, Type: other(k.Type)}.Name(),
		Dominant:    scale.Key{Root: notes[4], Type: k.Type}.Name(),
		Subdominant: scale.Key{Root: notes[3], Type: k.Type}.Name(),
	}, true
}

// RelatedKeys parses a key and returns its relations
func RelatedKeys(key string) (KeyRelations, error) {
	k, err := scale.ParseKey(key)
	if err != nil {
		return KeyRelations{}, err
	}
	r, ok := Relations(k)
	if !ok {
		return KeyRelations{}, fmt.Errorf("%s has no relative keys", k.Name())
	}
	return r, nil
}

// IsKeyCompatible reports whether b is a, or its relative, parallel,
// dominant or subdominant key. Enharmonic spellings match.
func IsKeyCompatible(a, b scale.Key) bool {
	same := func(root scale.Key) bool {
		return root.Type == b.Type && root.Root.Class() == b.Root.Class()
	}
	if same(a) {
		return true
	}
	rel, ok := relativeDegree[a.Type]
	if !ok {
		return false
	}
	notes := a.Spell()
	for _, candidate := range []scale.Key{
		{Root: notes[rel], Type: other(a.Type)},
		{Root: a.Root, Type: other(a.Type)},
		{Root: notes[4], Type: a.Type},
		{Root: notes[3], Type: a.Type},
	} {
		if same(candidate) {
			return true
		}
	}
	return false
}
