package mass

import (
	"fmt"
	"math"
)

// AddMass adds m to the mass already carried by e (0 if e is not yet a
// focal element). m must be finite and non-negative; e must be
// compatible with mf's frame. Zero masses are stored; Normalise is what
// prunes them.
//
// Complexity: O(1) amortised.
func (mf *MassFunction[E]) AddMass(e E, m float64) error {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("mass.AddMass: %w", ErrNonFiniteMass)
	}
	if m < 0 {
		return fmt.Errorf("mass.AddMass: %w", ErrNegativeMass)
	}
	if err := mf.checkCompatible(e); err != nil {
		return fmt.Errorf("mass.AddMass: %w", err)
	}
	mf.put(e, m)
	return nil
}

// RemoveMass deletes e's focal entry entirely, failing with
// ErrIncompatiblePowerSet if e is not built against mf's frame, or with
// ErrFocalNotFound if e does not currently carry mass.
//
// Complexity: O(count(mf)) to re-index the remaining focals.
func (mf *MassFunction[E]) RemoveMass(e E) error {
	if err := mf.checkCompatible(e); err != nil {
		return fmt.Errorf("mass.RemoveMass: %w", err)
	}
	f := mf.lookup(e)
	if f == nil {
		return fmt.Errorf("mass.RemoveMass: %w", ErrFocalNotFound)
	}
	key := e.Key()
	chain := mf.focals[key]
	for i, c := range chain {
		if c == f {
			chain = append(chain[:i], chain[i+1:]...)
			break
		}
	}
	if len(chain) == 0 {
		delete(mf.focals, key)
		for i, k := range mf.order {
			if k == key {
				mf.order = append(mf.order[:i], mf.order[i+1:]...)
				break
			}
		}
	} else {
		mf.focals[key] = chain
	}
	return nil
}

// Normalise drops focal elements whose mass is below normaliseEpsilon,
// then rescales the remaining masses to sum to 1. It fails with
// ErrEmptyMassFunction if the total pre-scale mass is itself below
// normaliseEpsilon.
//
// Complexity: O(count(mf)).
func (mf *MassFunction[E]) Normalise() error {
	var total float64
	for _, f := range mf.focalList() {
		if f.mass >= normaliseEpsilon {
			total += f.mass
		}
	}
	if total < normaliseEpsilon {
		return fmt.Errorf("mass.Normalise: %w", ErrEmptyMassFunction)
	}

	cleaned := make(map[uint64][]*focal[E], len(mf.focals))
	order := make([]uint64, 0, len(mf.order))
	for _, key := range mf.order {
		var kept []*focal[E]
		for _, f := range mf.focals[key] {
			if f.mass < normaliseEpsilon {
				continue
			}
			f.mass = clamp(f.mass / total)
			kept = append(kept, f)
		}
		if len(kept) > 0 {
			cleaned[key] = kept
			order = append(order, key)
		}
	}
	mf.focals = cleaned
	mf.order = order
	return nil
}
