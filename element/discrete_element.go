package element

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"github.com/bpietropaoli/thegame/frame"
	"golang.org/x/crypto/sha3"
)

// wordBits is the machine word width used for the fast single-word path.
const wordBits = 64

// maxIntBitmap is the widest frame for which the integer-bitmap
// representation (Bits/FromBits) is canonical.
const maxIntBitmap = 32

// cardUnknown is the sentinel stored in DiscreteElement.card before the
// cardinality has been computed.
const cardUnknown = -1

// DiscreteElement is an immutable subset of a frame of discernment of
// size n, represented as a packed bit-vector. Frames with n <= 64 are
// stored inline in a single uint64 (fast); wider frames fall back to a
// *bitset.BitSet (big). Exactly one of the two representations is in use
// for a given instance, selected once at construction from n.
//
// The cached cardinality is the only mutable state; it is written at
// most once via atomic.Int64 so concurrent readers either observe the
// "unknown" sentinel or the final value, never a torn write.
type DiscreteElement struct {
	n    int
	fast uint64
	big  *bitset.BitSet
	card atomic.Int64
}

func wordMask(n int) uint64 {
	if n >= wordBits {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

func newFast(n int, bits uint64) *DiscreteElement {
	e := &DiscreteElement{n: n, fast: bits & wordMask(n)}
	e.card.Store(cardUnknown)
	return e
}

func newBig(n int, b *bitset.BitSet) *DiscreteElement {
	e := &DiscreteElement{n: n, big: b}
	e.card.Store(cardUnknown)
	return e
}

// Empty returns the empty subset of an n-world frame.
func Empty(n int) *DiscreteElement {
	if n > wordBits {
		return newBig(n, bitset.New(uint(n)))
	}
	return newFast(n, 0)
}

// Complete returns the subset containing every world of an n-world frame.
func Complete(n int) *DiscreteElement {
	if n > wordBits {
		b := bitset.New(uint(n))
		for k := 0; k < n; k++ {
			b.Set(uint(k))
		}
		return newBig(n, b)
	}
	return newFast(n, wordMask(n))
}

// Atom returns the singleton subset {k} of an n-world frame.
func Atom(n, k int) (*DiscreteElement, error) {
	if n <= 0 {
		return nil, fmt.Errorf("element.Atom: %w", ErrBadFrameSize)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("element.Atom: index %d: %w", k, ErrIndexOutOfRange)
	}
	if n > wordBits {
		b := bitset.New(uint(n))
		b.Set(uint(k))
		return newBig(n, b), nil
	}
	return newFast(n, uint64(1)<<uint(k)), nil
}

// FromBits constructs a DiscreteElement on an n-world frame (n <= 32, the
// canonical integer-bitmap width) from an integer bitmap. It fails if n
// is too wide for the integer representation, or if bits has any bit set
// at or beyond position n.
func FromBits(n int, raw uint64) (*DiscreteElement, error) {
	if n <= 0 {
		return nil, fmt.Errorf("element.FromBits: %w", ErrBadFrameSize)
	}
	if n > maxIntBitmap {
		return nil, fmt.Errorf("element.FromBits: n=%d: %w", n, ErrElementTooBigForInteger)
	}
	if raw&^wordMask(n) != 0 {
		return nil, fmt.Errorf("element.FromBits: %w", ErrBitsOutOfRange)
	}
	return newFast(n, raw), nil
}

// Bits returns e's bit-vector as a uint64, when e's frame is within the
// canonical 32-bit integer-bitmap width. Wider frames return
// ErrElementTooBigForInteger.
func (e *DiscreteElement) Bits() (uint64, error) {
	if e.n > maxIntBitmap {
		return 0, fmt.Errorf("element.Bits: n=%d: %w", e.n, ErrElementTooBigForInteger)
	}
	return e.fast, nil
}

// N returns the frame size e was built against.
func (e *DiscreteElement) N() int { return e.n }

// Contains reports whether world k is a member of e.
func (e *DiscreteElement) Contains(k int) bool {
	if k < 0 || k >= e.n {
		return false
	}
	if e.big != nil {
		return e.big.Test(uint(k))
	}
	return e.fast&(uint64(1)<<uint(k)) != 0
}

func compatible(a, b *DiscreteElement) error {
	if a.n != b.n {
		return fmt.Errorf("element: n=%d vs n=%d: %w", a.n, b.n, ErrIncompatibleFrameSize)
	}
	return nil
}

// Union returns a ∪ b. Both operands must share the same frame size.
func Union(a, b *DiscreteElement) (*DiscreteElement, error) {
	if err := compatible(a, b); err != nil {
		return nil, fmt.Errorf("element.Union: %w", err)
	}
	if a.big != nil {
		return newBig(a.n, a.big.Union(b.big)), nil
	}
	return newFast(a.n, a.fast|b.fast), nil
}

// Intersection returns a ∩ b. Both operands must share the same frame size.
func Intersection(a, b *DiscreteElement) (*DiscreteElement, error) {
	if err := compatible(a, b); err != nil {
		return nil, fmt.Errorf("element.Intersection: %w", err)
	}
	if a.big != nil {
		return newBig(a.n, a.big.Intersection(b.big)), nil
	}
	return newFast(a.n, a.fast&b.fast), nil
}

// Difference returns a \ b (worlds in a but not in b). Both operands must
// share the same frame size.
func Difference(a, b *DiscreteElement) (*DiscreteElement, error) {
	if err := compatible(a, b); err != nil {
		return nil, fmt.Errorf("element.Difference: %w", err)
	}
	if a.big != nil {
		return newBig(a.n, a.big.Difference(b.big)), nil
	}
	return newFast(a.n, a.fast&^b.fast), nil
}

// Complement returns the complement of a relative to its own frame.
func Complement(a *DiscreteElement) *DiscreteElement {
	if a.big != nil {
		// bitset.Complement() complements relative to b.Len(); a.big was
		// always constructed with Len() == a.n, so no extra masking.
		return newBig(a.n, a.big.Complement())
	}
	return newFast(a.n, ^a.fast&wordMask(a.n))
}

// IsSubsetOf reports whether a ⊆ b, i.e. a ∧ ¬b == ∅. Both operands must
// share the same frame size.
func IsSubsetOf(a, b *DiscreteElement) (bool, error) {
	if err := compatible(a, b); err != nil {
		return false, fmt.Errorf("element.IsSubsetOf: %w", err)
	}
	if a.big != nil {
		diff := a.big.Difference(b.big)
		return diff.None(), nil
	}
	return a.fast&^b.fast == 0, nil
}

// IsProperSubsetOf reports whether a ⊊ b: a ⊆ b and a != b.
func IsProperSubsetOf(a, b *DiscreteElement) (bool, error) {
	sub, err := IsSubsetOf(a, b)
	if err != nil {
		return false, fmt.Errorf("element.IsProperSubsetOf: %w", err)
	}
	return sub && !a.Equal(b), nil
}

// Cardinality returns |e|, the number of worlds in e, memoising the
// result on first read.
func (e *DiscreteElement) Cardinality() int {
	if c := e.card.Load(); c != cardUnknown {
		return int(c)
	}
	var c int
	if e.big != nil {
		c = int(e.big.Count())
	} else {
		c = bits.OnesCount64(e.fast)
	}
	e.card.Store(int64(c))
	return c
}

// Equal reports bitwise equality of e and other's bit-vectors (not of
// their cardinalities). Elements on different frame sizes are never
// equal.
func (e *DiscreteElement) Equal(other *DiscreteElement) bool {
	if other == nil || e.n != other.n {
		return false
	}
	if e.big != nil {
		return e.big.Equal(other.big)
	}
	return e.fast == other.fast
}

// Compare orders e against other by bit-vector value, reading the
// bit-vector as an unsigned integer (world 0 is the least significant
// bit): -1 if e < other, 0 if equal, +1 if e > other. It is the
// tie-break order used by mass.Max and holds for any frame width, unlike
// Key, which coincides with the bit-vector value only on single-word
// frames.
func (e *DiscreteElement) Compare(other *DiscreteElement) int {
	a, b := e.words(), other.words()
	if len(a) != len(b) {
		// Differing word counts only arise across frame sizes; order by
		// width so the result is still total.
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// words returns the canonical little-endian word sequence backing e's
// bit-vector, used by Key, Hash and Compare.
func (e *DiscreteElement) words() []uint64 {
	if e.big != nil {
		return e.big.Bytes()
	}
	return []uint64{e.fast}
}

// Key returns a 64-bit fold of e's bit-vector, suitable as a map key
// accelerator (DiscreteSet, mass.MassFunction); collisions are resolved
// by a subsequent Equal check, never treated as identity on their own.
func (e *DiscreteElement) Key() uint64 {
	if e.big == nil {
		return e.fast
	}
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	for _, w := range e.words() {
		h ^= w
		h *= 1099511628211 // FNV-1a prime
	}
	return h
}

// Hash returns a stable SHA3-256-derived digest of e's bit-vector,
// independent of process and machine word size — unlike Key, which is a
// cheap accelerator only. Use Hash when a canonical identity must survive
// serialization or cross-process comparison (e.g. persistence round-trip
// checks); use Key for in-memory indexing.
func (e *DiscreteElement) Hash() uint64 {
	words := e.words()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	digest := sha3.Sum256(buf)
	return binary.LittleEndian.Uint64(digest[:8])
}

// String renders e as "{name_i, name_j, ...}" with worlds in ascending
// index order, "∅" for the empty set, or "Ω" followed by the
// parenthesised reference list for the complete set, e.g. "Ω(A, B, C)". refs must name the same frame size as e.
func (e *DiscreteElement) String(refs frame.ReferenceList) (string, error) {
	if refs.Size() != e.n {
		return "", fmt.Errorf("element.String: %w", ErrIncompatibleReferenceList)
	}
	if e.Cardinality() == 0 {
		return "∅", nil
	}
	if e.Cardinality() == e.n {
		return "Ω" + refs.String(), nil
	}
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k := 0; k < e.n; k++ {
		if !e.Contains(k) {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(refs.Name(k))
	}
	sb.WriteByte('}')
	return sb.String(), nil
}

// Union is e ∪ other, delegating to the package-level Union. It exists
// so *DiscreteElement satisfies mass.Element[*DiscreteElement].
func (e *DiscreteElement) Union(other *DiscreteElement) (*DiscreteElement, error) {
	return Union(e, other)
}

// Intersection is e ∩ other, delegating to the package-level Intersection.
func (e *DiscreteElement) Intersection(other *DiscreteElement) (*DiscreteElement, error) {
	return Intersection(e, other)
}

// Difference is e \ other, delegating to the package-level Difference.
func (e *DiscreteElement) Difference(other *DiscreteElement) (*DiscreteElement, error) {
	return Difference(e, other)
}

// Complement delegates to the package-level Complement.
func (e *DiscreteElement) Complement() *DiscreteElement {
	return Complement(e)
}

// IsSubsetOf delegates to the package-level IsSubsetOf.
func (e *DiscreteElement) IsSubsetOf(other *DiscreteElement) (bool, error) {
	return IsSubsetOf(e, other)
}
