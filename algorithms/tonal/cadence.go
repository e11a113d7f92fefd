package tonal

// Cadence is a recognized closing progression
type Cadence int

const (
	CadenceNone Cadence = iota
	CadencePerfect
	CadencePlagal
	CadenceLeadingTone
	CadenceDeceptive
	CadenceInterrupted
	CadenceHalf
	CadencePhrygian
	CadenceTwoFiveOne
)

// AnyDegree matches every previous degree in a cadence rule
const AnyDegree = -1

var cadenceLabels = map[Cadence]string{
	CadencePerfect:     "Perfect",
	CadencePlagal:      "Plagal",
	CadenceLeadingTone: "Leading-tone",
	CadenceDeceptive:   "Deceptive",
	CadenceInterrupted: "Interrupted",
	CadenceHalf:        "Half",
	CadencePhrygian:    "Phrygian",
	CadenceTwoFiveOne:  "ii-V-I",
}

// String returns the label, e.g. "Perfect Cadence", or "" for none
func (c Cadence) String() string {
	label, ok := cadenceLabels[c]
	if !ok {
		return ""
	}
	return label + " Cadence"
}

// MarshalText encodes the cadence as its label
func (c Cadence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type cadenceRule struct {
	prev, cur int
	cadence   Cadence
}

// cadenceRules is checked in order, specific pairs before wildcards
var cadenceRules = []cadenceRule{
	{5, 1, CadencePerfect},
	{4, 1, CadencePlagal},
	{7, 1, CadenceLeadingTone},
	{5, 6, CadenceDeceptive},
	{5, 4, CadenceInterrupted},
	{AnyDegree, 5, CadenceHalf},
	{AnyDegree, 7, CadencePhrygian},
}

// DetectCadence classifies the move from prev to cur
func DetectCadence(prev, cur int) Cadence {
	for _, r := range cadenceRules {
		if (r.prev == AnyDegree || r.prev == prev) && r.cur == cur {
			return r.cadence
		}
	}
	return CadenceNone
}

// DetectCadenceExtended recognizes three-chord cadences. Only ii-V-I is
// known.
func DetectCadenceExtended(prev2, prev, cur int) Cadence {
	if prev2 == 2 && prev == 5 && cur == 1 {
		return CadenceTwoFiveOne
	}
	return CadenceNone
}

// CadenceText labels the move between two degrees, "" when none applies
func CadenceText(prev, cur int) string {
	return DetectCadence(prev, cur).String()
}

// CadenceTextExtended labels a three-degree sequence, "" when none applies
func CadenceTextExtended(prev2, prev, cur int) string {
	return DetectCadenceExtended(prev2, prev, cur).String()
}
