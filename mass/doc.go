// Package mass implements MassFunction, a sparse map from focal elements
// to masses in (0,1] (plus, in the Smets transferable-belief-model
// variant, a mass on the empty set), together with the combinatorial
// algorithms of Dempster-Shafer theory: combination (Dempster, Smets,
// Yager, disjunctive, averaging), discounting, weakening, conditioning,
// deconditioning, and the induced measures (belief, plausibility,
// commonality, pignistic probability).
//
// MassFunction is generic over the element type it ranges over, via the
// Element capability interface: union, intersection, difference,
// complement, subset-test, cardinality, equality, a bit-vector total
// order, a hash accelerator.
// element.DiscreteElement is the one concrete instantiation shipped in
// this module; an interval-valued specialisation could share every
// algorithm in this package without modification, by implementing the
// same interface.
//
// A MassFunction is created empty and mutated via AddMass/RemoveMass/
// Normalise during construction; once passed to a combination operator it
// should be treated as frozen — operators never mutate their inputs, they
// allocate and return fresh functions. All masses are IEEE-754 doubles;
// operators compare them against an epsilon, never with ==.
package mass
