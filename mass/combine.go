package mass

import "fmt"

// Rule selects the combination law used by Combine's n-ary reduction.
type Rule int

const (
	RuleDempster Rule = iota
	RuleSmets
	RuleYager
	RuleDisjunctive
	RuleAveraging
)

func (mf *MassFunction[E]) checkSameFrame(other *MassFunction[E]) error {
	if mf.n != other.n {
		return ErrIncompatibleMassFunction
	}
	return nil
}

// conjunctivePairs folds the Cartesian product of mf's and other's focal
// sets through op (intersection for the conjunctive rules, union for the
// disjunctive rule), accumulating mass(a)*mass(b) onto op(a,b) in a fresh
// MassFunction. This is the only place a binary rule touches the focal
// sets directly: combination never enumerates the full 2^n power set.
func (mf *MassFunction[E]) conjunctivePairs(other *MassFunction[E], op func(a, b E) (E, error)) (*MassFunction[E], error) {
	listA := mf.focalList()
	listB := other.focalList()
	out := mf.clone()
	for _, a := range listA {
		for _, b := range listB {
			combined, err := op(a.elem, b.elem)
			if err != nil {
				return nil, err
			}
			out.put(combined, a.mass*b.mass)
		}
	}
	return out, nil
}

// Dempster is the normalised conjunctive rule (⊕): focal set
// {a∩b : a∈mf, b∈other}, mass accumulated over pairs whose intersection
// matches; the mass accumulating on ∅ (the conflict K) is dropped and the
// remainder rescaled by 1/(1-K). Fails with ErrCombinationUndefined when
// K == 1 (total conflict).
func (mf *MassFunction[E]) Dempster(other *MassFunction[E]) (*MassFunction[E], error) {
	if err := mf.checkSameFrame(other); err != nil {
		return nil, fmt.Errorf("mass.Dempster: %w", err)
	}
	raw, err := mf.conjunctivePairs(other, func(a, b E) (E, error) { return a.Intersection(b) })
	if err != nil {
		return nil, fmt.Errorf("mass.Dempster: %w", err)
	}
	k := raw.ConflictMass()
	if 1-k < massEpsilon {
		return nil, fmt.Errorf("mass.Dempster: %w", ErrCombinationUndefined)
	}
	_ = raw.RemoveMass(raw.empty)
	if err := raw.Normalise(); err != nil {
		return nil, fmt.Errorf("mass.Dempster: %w", err)
	}
	return raw, nil
}

// Smets is the unnormalised conjunctive rule: identical to Dempster but
// the mass on ∅ is kept rather than dropped, and the result is never
// rescaled — the transferable-belief-model reading of combination.
func (mf *MassFunction[E]) Smets(other *MassFunction[E]) (*MassFunction[E], error) {
	if err := mf.checkSameFrame(other); err != nil {
		return nil, fmt.Errorf("mass.Smets: %w", err)
	}
	raw, err := mf.conjunctivePairs(other, func(a, b E) (E, error) { return a.Intersection(b) })
	if err != nil {
		return nil, fmt.Errorf("mass.Smets: %w", err)
	}
	return raw, nil
}

// Yager combines as Smets does, then moves the entire ∅-mass onto the
// full frame instead of discarding or keeping it separately.
func (mf *MassFunction[E]) Yager(other *MassFunction[E]) (*MassFunction[E], error) {
	if err := mf.checkSameFrame(other); err != nil {
		return nil, fmt.Errorf("mass.Yager: %w", err)
	}
	raw, err := mf.Smets(other)
	if err != nil {
		return nil, fmt.Errorf("mass.Yager: %w", err)
	}
	k := raw.ConflictMass()
	if k > 0 {
		_ = raw.RemoveMass(raw.empty)
		raw.put(raw.full, k)
	}
	return raw, nil
}

// Disjunctive is the union-based dual of the conjunctive rules: focal set
// {a∪b : a∈mf, b∈other}. It never produces mass on ∅ unless both
// operands already carried some, and it is never renormalised.
func (mf *MassFunction[E]) Disjunctive(other *MassFunction[E]) (*MassFunction[E], error) {
	if err := mf.checkSameFrame(other); err != nil {
		return nil, fmt.Errorf("mass.Disjunctive: %w", err)
	}
	raw, err := mf.conjunctivePairs(other, func(a, b E) (E, error) { return a.Union(b) })
	if err != nil {
		return nil, fmt.Errorf("mass.Disjunctive: %w", err)
	}
	return raw, nil
}

// Averaging returns the pointwise arithmetic mean of mf's and other's
// masses across the union of their focal supports.
func (mf *MassFunction[E]) Averaging(other *MassFunction[E]) (*MassFunction[E], error) {
	if err := mf.checkSameFrame(other); err != nil {
		return nil, fmt.Errorf("mass.Averaging: %w", err)
	}
	return averageAll([]*MassFunction[E]{mf, other})
}

// averageAll computes the pointwise arithmetic mean of list's masses in a
// single pass over the union of their focal supports, not an iterated
// pairwise fold.
func averageAll[E Element[E]](list []*MassFunction[E]) (*MassFunction[E], error) {
	out := list[0].clone()
	for _, mf := range list {
		for _, f := range mf.focalList() {
			out.put(f.elem, f.mass/float64(len(list)))
		}
	}
	return out, nil
}

// Combine reduces list via rule: a left fold of the pairwise operator for
// Dempster/Smets/Yager/Disjunctive, or a single averaging pass across all
// operands for RuleAveraging. It fails with ErrNotEnoughMassFunctions
// when len(list) < 2.
func Combine[E Element[E]](list []*MassFunction[E], rule Rule) (*MassFunction[E], error) {
	if len(list) < 2 {
		return nil, fmt.Errorf("mass.Combine: %w", ErrNotEnoughMassFunctions)
	}
	for _, mf := range list[1:] {
		if err := list[0].checkSameFrame(mf); err != nil {
			return nil, fmt.Errorf("mass.Combine: %w", err)
		}
	}

	if rule == RuleAveraging {
		return averageAll(list)
	}

	acc := list[0]
	for _, next := range list[1:] {
		var err error
		switch rule {
		case RuleDempster:
			acc, err = acc.Dempster(next)
		case RuleSmets:
			acc, err = acc.Smets(next)
		case RuleYager:
			acc, err = acc.Yager(next)
		case RuleDisjunctive:
			acc, err = acc.Disjunctive(next)
		default:
			return nil, fmt.Errorf("mass.Combine: unknown rule %d", rule)
		}
		if err != nil {
			return nil, fmt.Errorf("mass.Combine: %w", err)
		}
	}
	return acc, nil
}
