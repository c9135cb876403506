package mass

import "fmt"

func validAlpha(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return ErrInvalidDiscountFactor
	}
	return nil
}

// discountLike implements the shared shape of Discount and Weaken: every
// original focal is scaled by (1-alpha), and alpha mass is added to the
// full frame. The two names describe the same canonical definition; this
// library keeps them both since callers reach for either term.
func (mf *MassFunction[E]) discountLike(alpha float64) (*MassFunction[E], error) {
	if err := validAlpha(alpha); err != nil {
		return nil, err
	}
	out := mf.clone()
	for _, f := range mf.focalList() {
		out.put(f.elem, f.mass*(1-alpha))
	}
	out.put(mf.full, alpha)
	return out, nil
}

// Discount scales every focal by (1-alpha) and adds alpha mass to the
// full frame, modelling a source whose reliability is alpha-discounted.
func (mf *MassFunction[E]) Discount(alpha float64) (*MassFunction[E], error) {
	out, err := mf.discountLike(alpha)
	if err != nil {
		return nil, fmt.Errorf("mass.Discount: %w", err)
	}
	return out, nil
}

// Weaken is Discount's twin under the canonical weakening definition,
// kept as a separate name since it reads more naturally at call sites
// that model an unreliable rather than a discounted source.
func (mf *MassFunction[E]) Weaken(alpha float64) (*MassFunction[E], error) {
	out, err := mf.discountLike(alpha)
	if err != nil {
		return nil, fmt.Errorf("mass.Weaken: %w", err)
	}
	return out, nil
}

// Condition applies Dempster's conditioning on a non-empty element e: the
// Dempster combination of mf with the categorical mass function placing
// 1.0 on e.
func (mf *MassFunction[E]) Condition(e E) (*MassFunction[E], error) {
	if e.Cardinality() == 0 {
		return nil, fmt.Errorf("mass.Condition: %w", ErrInvalidConditionElement)
	}
	if err := mf.checkCompatible(e); err != nil {
		return nil, fmt.Errorf("mass.Condition: %w", err)
	}
	categorical := mf.clone()
	categorical.put(e, 1.0)
	out, err := mf.Dempster(categorical)
	if err != nil {
		return nil, fmt.Errorf("mass.Condition: %w", err)
	}
	return out, nil
}

// Decondition is Condition's inverse: mf is assumed to be defined on e
// (every focal f ⊆ e); each focal f is mapped to f ∪ ¬e, with mass
// preserved, producing a mass function on the whole frame whose
// Condition(e) returns mf. Fails with ErrCombinationUndefined if e is ∅.
func (mf *MassFunction[E]) Decondition(e E) (*MassFunction[E], error) {
	if e.Cardinality() == 0 {
		return nil, fmt.Errorf("mass.Decondition: %w", ErrCombinationUndefined)
	}
	if err := mf.checkCompatible(e); err != nil {
		return nil, fmt.Errorf("mass.Decondition: %w", err)
	}
	notE := e.Complement()
	out := mf.clone()
	for _, f := range mf.focalList() {
		mapped, err := f.elem.Union(notE)
		if err != nil {
			return nil, fmt.Errorf("mass.Decondition: %w", err)
		}
		out.put(mapped, f.mass)
	}
	return out, nil
}
