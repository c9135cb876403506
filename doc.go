// Package thegame is a library for Dempster-Shafer evidence theory.
//
// It represents mass functions over a finite frame of discernment and
// combines, discounts, conditions and transforms them with the classical
// operators of belief-function theory, deriving the induced measures
// (belief, plausibility, commonality, pignistic probability) along the
// way.
//
// Everything is organized under five subpackages:
//
//	frame/     — ReferenceList, the ordered naming of a frame's worlds
//	element/   — DiscreteElement (bit-packed subsets) and DiscreteSet
//	mass/      — MassFunction, generic over element type, and its operators
//	transform/ — BeliefTransformer, propagation across frames via refinements
//	boundary/  — persistence/sensor/generator contracts consumed by callers
//
// Quick example, the vacuous mass function over a two-world frame:
//
//	refs, _ := frame.New("Yes", "No")
//	empty, full := element.Empty(refs.Size()), element.Complete(refs.Size())
//	m, _ := mass.New[*element.DiscreteElement](refs.Size(), empty, full)
//	_ = m.AddMass(full, 1.0)
//	yes, _ := element.Atom(refs.Size(), refs.IndexOf("Yes"))
//	bel, _ := m.Belief(yes)  // 0
//	pl, _ := m.Plausibility(yes) // 1
//
// See DESIGN.md in the repository root for the design notes and the
// provenance of each component.
package thegame
