// Package element implements DiscreteElement, a subset of a finite frame
// of discernment represented as a bit-packed vector with a cached
// cardinality, and DiscreteSet, an unordered duplicate-free collection of
// DiscreteElements sharing a frame.
//
// Frames of at most 64 worlds are stored in a single uint64 word for
// branch-free set algebra; wider frames fall back transparently to
// github.com/bits-and-blooms/bitset, so the set algebra imposes no hard
// cap on frame size. The exceptions are the integer-bitmap accessors
// (FromBits, Bits), limited to n <= 32, and GeneratePowerSet, which is
// exponential in n by construction and rejects n > 64; SupersetsOf and
// SubsetsOf build on it and share both properties (see their doc
// comments).
//
// Two DiscreteElements are compatible iff they were built against the
// same frame size n; every binary operation that receives incompatible
// operands returns ErrIncompatibleFrameSize rather than panicking.
package element
