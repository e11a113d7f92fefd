package common

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Small numeric helpers shared by the theory and instrument packages.
// Float aggregates go through gonum so scoring stays consistent everywhere.

// Mod returns a modulo m normalized into [0, m)
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// PitchClass reduces a semitone count to 0-11
func PitchClass(semitones int) int {
	return Mod(semitones, 12)
}

// AbsInt returns the absolute value of an int
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sum returns the sum of the values using gonum
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Sum(data)
}

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// ArgMin returns the index of the smallest value, the first one on ties.
// Returns -1 for an empty slice.
func ArgMin(data []float64) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MinIdx(data)
}
