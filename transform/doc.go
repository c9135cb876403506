// Package transform implements belief propagation between frames of
// discernment via refinement mappings: vacuous extension onto a
// destination frame, conjunctive combination of several named inputs, and
// (optionally) marginalisation back onto a source frame.
//
// A BeliefTransformer is configured once with a destination
// frame.ReferenceList and a library of named Refinements, one per
// admissible source frame. Transform then accepts a batch of named mass
// functions, each defined over its own source frame, and produces a
// single mass function on the destination frame.
package transform
