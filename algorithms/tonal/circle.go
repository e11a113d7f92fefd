package tonal

import (
	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
	"github.com/RyanBlaney/sonido-bajo/algorithms/scale"
)

// Circle of fifths rings
const (
	CircleOuter = "outer" // major keys
	CircleInner = "inner" // relative minors
	CircleNone  = "none"
)

// KeyPosition locates a key on the circle of fifths, C / Am at index 0
// and each step clockwise adding a sharp.
type KeyPosition struct {
	Circle string `json:"circle"`
	Index  int    `json:"index"`
}

// 7 is its own inverse mod 12, so multiplying a pitch class by 7 counts
// fifths from C.
const fifthsPerSemitone = 7

// PositionOf returns the circle position of a major or natural minor
// key. Enharmonic keys share a slot. Modes and other scales are not on
// the circle.
func PositionOf(k scale.Key) KeyPosition {
	switch k.Type {
	case scale.Ionian:
		return KeyPosition{CircleOuter, common.PitchClass(k.Root.Class() * fifthsPerSemitone)}
	case scale.Aeolian:
		relative := k.Root.Class() + 3
		return KeyPosition{CircleInner, common.PitchClass(relative * fifthsPerSemitone)}
	}
	return KeyPosition{CircleNone, -1}
}

// GetKeyPosition parses a scale key and locates it on the circle
func GetKeyPosition(key string) KeyPosition {
	k, err := scale.ParseKey(key)
	if err != nil {
		return KeyPosition{CircleNone, -1}
	}
	return PositionOf(k)
}
