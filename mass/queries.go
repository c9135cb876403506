package mass

import "fmt"

// Mass returns the mass currently assigned to e (0 if e is not a focal
// element). e must be compatible with mf's frame.
func (mf *MassFunction[E]) Mass(e E) (float64, error) {
	if err := mf.checkCompatible(e); err != nil {
		return 0, fmt.Errorf("mass.Mass: %w", err)
	}
	if f := mf.lookup(e); f != nil {
		return f.mass, nil
	}
	return 0, nil
}

// Belief returns Σ m(f) for every focal f ⊆ e, f != ∅.
func (mf *MassFunction[E]) Belief(e E) (float64, error) {
	if err := mf.checkCompatible(e); err != nil {
		return 0, fmt.Errorf("mass.Belief: %w", err)
	}
	var sum float64
	for _, f := range mf.focalList() {
		if f.elem.Cardinality() == 0 {
			continue
		}
		sub, err := f.elem.IsSubsetOf(e)
		if err != nil {
			return 0, fmt.Errorf("mass.Belief: %w", err)
		}
		if sub {
			sum += f.mass
		}
	}
	return sum, nil
}

// Plausibility returns Σ m(f) for every focal f with f ∩ e != ∅.
func (mf *MassFunction[E]) Plausibility(e E) (float64, error) {
	if err := mf.checkCompatible(e); err != nil {
		return 0, fmt.Errorf("mass.Plausibility: %w", err)
	}
	var sum float64
	for _, f := range mf.focalList() {
		inter, err := f.elem.Intersection(e)
		if err != nil {
			return 0, fmt.Errorf("mass.Plausibility: %w", err)
		}
		if inter.Cardinality() > 0 {
			sum += f.mass
		}
	}
	return sum, nil
}

// Commonality returns Σ m(f) for every focal f ⊇ e.
func (mf *MassFunction[E]) Commonality(e E) (float64, error) {
	if err := mf.checkCompatible(e); err != nil {
		return 0, fmt.Errorf("mass.Commonality: %w", err)
	}
	var sum float64
	for _, f := range mf.focalList() {
		sup, err := e.IsSubsetOf(f.elem)
		if err != nil {
			return 0, fmt.Errorf("mass.Commonality: %w", err)
		}
		if sup {
			sum += f.mass
		}
	}
	return sum, nil
}

// BetP returns the pignistic probability of e: for every non-empty focal
// f, m(f) is distributed uniformly across f's atoms via the identity
// BetP(e) = Σ_f m(f)·|f∩e|/|f| (equivalent to, but not requiring, an
// explicit atom enumeration — only intersection and cardinality, so it
// holds for any Element implementation, not just discrete bit-vectors).
// If mf carries mass on ∅, the result is scaled by 1/(1-m(∅)).
func (mf *MassFunction[E]) BetP(e E) (float64, error) {
	if err := mf.checkCompatible(e); err != nil {
		return 0, fmt.Errorf("mass.BetP: %w", err)
	}
	var sum, conflict float64
	for _, f := range mf.focalList() {
		card := f.elem.Cardinality()
		if card == 0 {
			conflict = f.mass
			continue
		}
		inter, err := f.elem.Intersection(e)
		if err != nil {
			return 0, fmt.Errorf("mass.BetP: %w", err)
		}
		if ic := inter.Cardinality(); ic > 0 {
			sum += f.mass * float64(ic) / float64(card)
		}
	}
	denom := 1 - conflict
	if denom < massEpsilon {
		return 0, fmt.Errorf("mass.BetP: %w", ErrEmptyMassFunction)
	}
	return clamp(sum / denom), nil
}

// ConflictMass returns m(∅).
func (mf *MassFunction[E]) ConflictMass() float64 {
	if f := mf.lookup(mf.empty); f != nil {
		return f.mass
	}
	return 0
}

// SelfConflict returns the mass that would fall on ∅ if mf were
// conjunctively combined with itself under Smets' rule — an
// internal-conflict score.
func (mf *MassFunction[E]) SelfConflict() (float64, error) {
	combined, err := mf.Smets(mf)
	if err != nil {
		return 0, fmt.Errorf("mass.SelfConflict: %w", err)
	}
	return combined.ConflictMass(), nil
}

// IsNormal reports whether mf carries no mass on ∅ (within massEpsilon).
func (mf *MassFunction[E]) IsNormal() bool {
	return mf.ConflictMass() < massEpsilon
}

// IsSubnormal reports whether mf carries positive mass on ∅.
func (mf *MassFunction[E]) IsSubnormal() bool {
	return !mf.IsNormal()
}

// IsDogmatic reports whether mf carries no mass on the full frame.
func (mf *MassFunction[E]) IsDogmatic() bool {
	if f := mf.lookup(mf.full); f != nil {
		return f.mass < massEpsilon
	}
	return true
}

// IsVacuous reports whether all of mf's mass sits on the full frame.
func (mf *MassFunction[E]) IsVacuous() bool {
	list := mf.focalList()
	if len(list) != 1 {
		return false
	}
	return list[0].elem.Equal(mf.full) && list[0].mass > 1-massEpsilon
}

// IsCategorical reports whether mf has exactly one focal element.
func (mf *MassFunction[E]) IsCategorical() bool {
	return len(mf.focalList()) == 1
}

// IsSimple reports whether mf has at most two focal elements, one of
// which is the full frame.
func (mf *MassFunction[E]) IsSimple() bool {
	list := mf.focalList()
	if len(list) > 2 {
		return false
	}
	for _, f := range list {
		if f.elem.Equal(mf.full) {
			return true
		}
	}
	return false
}

// IsBayesian reports whether every focal element of mf is an atom
// (cardinality 1).
func (mf *MassFunction[E]) IsBayesian() bool {
	list := mf.focalList()
	if len(list) == 0 {
		return false
	}
	for _, f := range list {
		if f.elem.Cardinality() != 1 {
			return false
		}
	}
	return true
}

// Specificity returns Σ m(f)/|f| over non-empty focals. It fails with
// ErrEmptyElement if mf carries positive mass on ∅.
func (mf *MassFunction[E]) Specificity() (float64, error) {
	if mf.ConflictMass() >= massEpsilon {
		return 0, fmt.Errorf("mass.Specificity: %w", ErrEmptyElement)
	}
	var sum float64
	for _, f := range mf.focalList() {
		card := f.elem.Cardinality()
		if card == 0 {
			continue
		}
		sum += f.mass / float64(card)
	}
	return sum, nil
}

// MaxKind selects which induced measure Max searches for its arg-max.
type MaxKind int

const (
	MaxBelief MaxKind = iota
	MaxPlausibility
	MaxCommonality
	MaxMass
	MaxBetP
)

// Max returns the focal element maximising the chosen measure, breaking
// ties by cardinality ascending, then by bit-vector value ascending
// (Element.Compare). It searches only mf's current focal set, never the
// full power set.
func (mf *MassFunction[E]) Max(kind MaxKind) (E, float64, error) {
	var zero E
	list := mf.focalList()
	if len(list) == 0 {
		return zero, 0, fmt.Errorf("mass.Max: %w", ErrEmptyMassFunction)
	}

	var bestElem E
	var bestVal float64
	first := true

	for _, f := range list {
		var val float64
		var err error
		switch kind {
		case MaxBelief:
			val, err = mf.Belief(f.elem)
		case MaxPlausibility:
			val, err = mf.Plausibility(f.elem)
		case MaxCommonality:
			val, err = mf.Commonality(f.elem)
		case MaxMass:
			val = f.mass
		case MaxBetP:
			val, err = mf.BetP(f.elem)
		}
		if err != nil {
			return zero, 0, fmt.Errorf("mass.Max: %w", err)
		}

		if first || better(val, f.elem, bestVal, bestElem) {
			bestElem, bestVal = f.elem, val
			first = false
		}
	}
	return bestElem, bestVal, nil
}

func better[E Element[E]](val float64, elem E, bestVal float64, bestElem E) bool {
	if val > bestVal+massEpsilon {
		return true
	}
	if val < bestVal-massEpsilon {
		return false
	}
	if c, bc := elem.Cardinality(), bestElem.Cardinality(); c != bc {
		return c < bc
	}
	return elem.Compare(bestElem) < 0
}
