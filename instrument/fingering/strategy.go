package fingering

// Strategy picks one position per step from the candidates of a pitch
type Strategy interface {
	Mode() Mode
	Weights() Weights
	// Choose returns the selected candidate and its step cost. candidates
	// is never empty.
	Choose(candidates []FretPosition, s State) (FretPosition, float64)
}

// composite strategies compare whole patterns from member strategies
// instead of choosing step by step
type composite interface {
	Members() []Strategy
}

type weighted struct {
	w Weights
}

func (b weighted) Weights() Weights { return b.w }

// pick returns the cheapest candidate, breaking ties by lower fret and
// then lower string number.
func (b weighted) pick(candidates []FretPosition, s State) (FretPosition, float64) {
	best := candidates[0]
	bestCost := b.w.StepCost(best, s)
	for _, c := range candidates[1:] {
		cost := b.w.StepCost(c, s)
		if cost < bestCost ||
			(cost == bestCost && (c.Fret < best.Fret || (c.Fret == best.Fret && c.String < best.String))) {
			best, bestCost = c, cost
		}
	}
	return best, bestCost
}

type shortestStrategy struct{ weighted }

func (shortestStrategy) Mode() Mode { return Shortest }

func (s shortestStrategy) Choose(candidates []FretPosition, st State) (FretPosition, float64) {
	return s.pick(candidates, st)
}

type positionStableStrategy struct{ weighted }

func (positionStableStrategy) Mode() Mode { return PositionStable }

func (s positionStableStrategy) Choose(candidates []FretPosition, st State) (FretPosition, float64) {
	return s.pick(candidates, st)
}

type stringPriorityStrategy struct{ weighted }

func (stringPriorityStrategy) Mode() Mode { return StringPriority }

func (s stringPriorityStrategy) Choose(candidates []FretPosition, st State) (FretPosition, float64) {
	return s.pick(candidates, st)
}

// openStringStrategy takes an open string whenever the pitch has one
type openStringStrategy struct{ weighted }

func (openStringStrategy) Mode() Mode { return OpenString }

func (s openStringStrategy) Choose(candidates []FretPosition, st State) (FretPosition, float64) {
	var open []FretPosition
	for _, c := range candidates {
		if c.Fret == 0 {
			open = append(open, c)
		}
	}
	if len(open) > 0 {
		return s.pick(open, st)
	}
	return s.pick(candidates, st)
}

// balancedStrategy runs its members and keeps the pattern scoring lowest
// under its own weights. Walked directly it behaves like a greedy pass
// under those weights.
type balancedStrategy struct {
	weighted
	members []Strategy
}

func (balancedStrategy) Mode() Mode { return Balanced }

func (s balancedStrategy) Choose(candidates []FretPosition, st State) (FretPosition, float64) {
	return s.pick(candidates, st)
}

func (s balancedStrategy) Members() []Strategy {
	return append([]Strategy(nil), s.members...)
}

// NewStrategy builds the strategy for a mode with the given weights. The
// balanced strategy gets members with their default weights.
func NewStrategy(m Mode, w Weights) (Strategy, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	base := weighted{w: w}
	switch m {
	case Shortest:
		return shortestStrategy{base}, nil
	case PositionStable:
		return positionStableStrategy{base}, nil
	case StringPriority:
		return stringPriorityStrategy{base}, nil
	case OpenString:
		return openStringStrategy{base}, nil
	case Balanced:
		var members []Strategy
		for _, mode := range []Mode{Shortest, PositionStable, StringPriority, OpenString} {
			s, _ := NewStrategy(mode, DefaultWeights(mode))
			members = append(members, s)
		}
		return NewBalanced(w, members...), nil
	}
	return nil, ErrUnknownMode
}

// NewBalanced builds a balanced strategy over explicit members. Ties
// between members keep the earlier one.
func NewBalanced(w Weights, members ...Strategy) Strategy {
	return balancedStrategy{weighted: weighted{w: w}, members: members}
}
