package transform

import (
	"fmt"
	"sort"

	"github.com/bpietropaoli/thegame/element"
	"github.com/bpietropaoli/thegame/frame"
	"github.com/bpietropaoli/thegame/mass"
)

// BeliefTransformer propagates named mass functions from their source
// frames onto a single destination frame, and back, via a library of
// Refinements loaded by name.
type BeliefTransformer struct {
	dest        frame.ReferenceList
	refinements map[string]Refinement
	order       []string
}

// Option configures a BeliefTransformer at construction time.
type Option func(*BeliefTransformer)

// WithRefinement preloads a named refinement, equivalent to calling
// LoadRefinement immediately after New. A refinement that fails to load
// this way is silently skipped; callers that need the error should use
// LoadRefinement directly.
func WithRefinement(name string, r Refinement) Option {
	return func(t *BeliefTransformer) {
		_ = t.LoadRefinement(name, r)
	}
}

// New constructs a BeliefTransformer targeting the given destination
// frame.
func New(dest frame.ReferenceList, opts ...Option) *BeliefTransformer {
	t := &BeliefTransformer{
		dest:        dest,
		refinements: make(map[string]Refinement),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// LoadRefinement registers r under name, replacing any existing
// refinement of the same name. It rejects r outright if its shape (image
// count, per-image frame size, non-empty images) does not match the
// transformer's destination frame; coverage and disjointness are checked
// by IsValid, not here, so a library can be built up incrementally.
func (t *BeliefTransformer) LoadRefinement(name string, r Refinement) error {
	if err := r.shape(t.dest.Size()); err != nil {
		return fmt.Errorf("transform.LoadRefinement: %q: %w", name, err)
	}
	if _, seen := t.refinements[name]; !seen {
		t.order = append(t.order, name)
	}
	t.refinements[name] = r
	return nil
}

// IsValid walks every loaded refinement, in load order, and reports the
// first one that fails its coverage (and, for strict refinements,
// disjointness) condition.
func (t *BeliefTransformer) IsValid() error {
	for _, name := range t.order {
		if err := t.refinements[name].validate(t.dest.Size()); err != nil {
			return fmt.Errorf("transform.IsValid: %q: %w", name, err)
		}
	}
	return nil
}

// extend vacuously extends m (defined over r's source frame) onto the
// destination frame: every source focal f is replaced by the union of
// r's images over the worlds in f, with mass preserved.
func (t *BeliefTransformer) extend(r Refinement, m *mass.MassFunction[*element.DiscreteElement]) (*mass.MassFunction[*element.DiscreteElement], error) {
	destSize := t.dest.Size()
	out, err := mass.New[*element.DiscreteElement](destSize, element.Empty(destSize), element.Complete(destSize))
	if err != nil {
		return nil, err
	}
	for _, pair := range m.Pairs() {
		destElem := element.Empty(destSize)
		for k := 0; k < r.Source.Size(); k++ {
			if !pair.Elem.Contains(k) {
				continue
			}
			destElem, err = element.Union(destElem, r.Images[k])
			if err != nil {
				return nil, err
			}
		}
		if err := out.AddMass(destElem, pair.Mass); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Transform looks up each named input's refinement (failing with
// ErrModelDoesNotExist if one is missing), vacuously extends every input
// onto the destination frame, and — when more than one input is given —
// conjunctively (Dempster) combines the extensions into a single
// destination mass function.
func (t *BeliefTransformer) Transform(named map[string]*mass.MassFunction[*element.DiscreteElement]) (*mass.MassFunction[*element.DiscreteElement], error) {
	if len(named) == 0 {
		return nil, fmt.Errorf("transform.Transform: %w", ErrNoInputs)
	}

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	extended := make([]*mass.MassFunction[*element.DiscreteElement], 0, len(names))
	for _, name := range names {
		r, ok := t.refinements[name]
		if !ok {
			return nil, fmt.Errorf("transform.Transform: %q: %w", name, ErrModelDoesNotExist)
		}
		ext, err := t.extend(r, named[name])
		if err != nil {
			return nil, fmt.Errorf("transform.Transform: %q: %w", name, err)
		}
		extended = append(extended, ext)
	}

	if len(extended) == 1 {
		return extended[0], nil
	}
	combined, err := mass.Combine(extended, mass.RuleDempster)
	if err != nil {
		return nil, fmt.Errorf("transform.Transform: %w", err)
	}
	return combined, nil
}

// Marginalise is Transform's inverse direction for a single named source:
// given a destination-frame mass function, it maps each destination focal
// to the union of source worlds whose image intersects it (a source world
// k contributes whenever r.Images[k] ∩ f != ∅, which may assign several
// source worlds to one destination focal when the refinement is not
// strict), preserving mass.
func (t *BeliefTransformer) Marginalise(name string, m *mass.MassFunction[*element.DiscreteElement]) (*mass.MassFunction[*element.DiscreteElement], error) {
	r, ok := t.refinements[name]
	if !ok {
		return nil, fmt.Errorf("transform.Marginalise: %q: %w", name, ErrModelDoesNotExist)
	}

	n := r.Source.Size()
	out, err := mass.New[*element.DiscreteElement](n, element.Empty(n), element.Complete(n))
	if err != nil {
		return nil, fmt.Errorf("transform.Marginalise: %w", err)
	}

	for _, pair := range m.Pairs() {
		srcElem := element.Empty(n)
		for k := 0; k < n; k++ {
			inter, err := element.Intersection(r.Images[k], pair.Elem)
			if err != nil {
				return nil, fmt.Errorf("transform.Marginalise: %w", err)
			}
			if inter.Cardinality() == 0 {
				continue
			}
			atomK, err := element.Atom(n, k)
			if err != nil {
				return nil, fmt.Errorf("transform.Marginalise: %w", err)
			}
			srcElem, err = element.Union(srcElem, atomK)
			if err != nil {
				return nil, fmt.Errorf("transform.Marginalise: %w", err)
			}
		}
		if err := out.AddMass(srcElem, pair.Mass); err != nil {
			return nil, fmt.Errorf("transform.Marginalise: %w", err)
		}
	}
	return out, nil
}
