package fingering

import (
	"github.com/RyanBlaney/sonido-bajo/algorithms/common"
)

// FretPosition is one chosen spot for a requested pitch. String 0 marks
// a pitch that could not be placed on the neck.
type FretPosition struct {
	String int  `json:"string"`           // 1 = highest string
	Fret   int  `json:"fret"`             // 0 = open
	Finger *int `json:"finger,omitempty"` // 1-4, never assigned here
}

// Playable reports whether the position is on a string
func (p FretPosition) Playable() bool {
	return p.String > 0
}

// HandPosition returns the four-fret box the fret falls in (1, 5, 9, ...),
// or 0 for an open string.
func HandPosition(fret int) int {
	if fret <= 0 {
		return 0
	}
	return ((fret-1)/4)*4 + 1
}

// Pattern is a fingering for a pitch sequence
type Pattern struct {
	Positions []FretPosition `json:"positions"`        // one per requested pitch
	Score     float64        `json:"score"`            // lower is better
	Algorithm string         `json:"algorithm"`        // mode that produced it
	Winner    string         `json:"winner,omitempty"` // balanced only: the member strategy chosen
}

func (p Pattern) playable() []FretPosition {
	out := make([]FretPosition, 0, len(p.Positions))
	for _, pos := range p.Positions {
		if pos.Playable() {
			out = append(out, pos)
		}
	}
	return out
}

// TotalMovement sums frets and strings crossed between consecutive
// playable positions
func (p Pattern) TotalMovement() int {
	positions := p.playable()
	total := 0
	for i := 1; i < len(positions); i++ {
		total += abs(positions[i].Fret-positions[i-1].Fret) + abs(positions[i].String-positions[i-1].String)
	}
	return total
}

// StringChanges counts moves to a different string
func (p Pattern) StringChanges() int {
	positions := p.playable()
	changes := 0
	for i := 1; i < len(positions); i++ {
		if positions[i].String != positions[i-1].String {
			changes++
		}
	}
	return changes
}

// OpenStringCount counts open-string positions
func (p Pattern) OpenStringCount() int {
	count := 0
	for _, pos := range p.playable() {
		if pos.Fret == 0 {
			count++
		}
	}
	return count
}

// PositionChanges counts hand shifts between fretted boxes. Open strings
// never count as a shift.
func (p Pattern) PositionChanges() int {
	positions := p.playable()
	changes := 0
	for i := 1; i < len(positions); i++ {
		prev, cur := HandPosition(positions[i-1].Fret), HandPosition(positions[i].Fret)
		if prev != 0 && cur != 0 && prev != cur {
			changes++
		}
	}
	return changes
}

// AverageFret is the mean fret of the playable positions
func (p Pattern) AverageFret() float64 {
	positions := p.playable()
	frets := make([]float64, len(positions))
	for i, pos := range positions {
		frets[i] = float64(pos.Fret)
	}
	return common.Mean(frets)
}

func abs(x int) int {
	return common.AbsInt(x)
}
