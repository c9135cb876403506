package element

import "fmt"

// DiscreteSet is an unordered, duplicate-free collection of
// DiscreteElements sharing a common frame size n. Enumeration order
// (Elements) is unspecified but does not change between calls unless the
// set is mutated.
type DiscreteSet struct {
	n     int
	elems []*DiscreteElement
	index map[uint64][]int // key() -> indices into elems, collisions chained
}

// NewSet returns an empty DiscreteSet over an n-world frame.
func NewSet(n int) *DiscreteSet {
	return &DiscreteSet{n: n, index: make(map[uint64][]int)}
}

// key indexes an element for s: the raw bit-vector for single-word
// frames, the sha3-backed Hash for wider frames, where Key's FNV fold
// would cluster on sparse word patterns. Collisions are resolved by
// Equal in find either way.
func (s *DiscreteSet) key(e *DiscreteElement) uint64 {
	if s.n > wordBits {
		return e.Hash()
	}
	return e.Key()
}

func (s *DiscreteSet) find(e *DiscreteElement) int {
	for _, i := range s.index[s.key(e)] {
		if s.elems[i].Equal(e) {
			return i
		}
	}
	return -1
}

// Add inserts e into s. It fails with ErrIncompatibleFrameSize if e's
// frame differs from s's, or ErrDuplicateElement if an equal element is
// already present.
//
// Complexity: O(1) amortised (hash-accelerated duplicate check).
func (s *DiscreteSet) Add(e *DiscreteElement) error {
	if e.n != s.n {
		return fmt.Errorf("element.DiscreteSet.Add: %w", ErrIncompatibleFrameSize)
	}
	if s.find(e) != -1 {
		return fmt.Errorf("element.DiscreteSet.Add: %w", ErrDuplicateElement)
	}
	idx := len(s.elems)
	s.elems = append(s.elems, e)
	key := s.key(e)
	s.index[key] = append(s.index[key], idx)
	return nil
}

// Remove deletes e from s, failing with ErrElementNotFound if absent.
//
// Complexity: O(count(s)) to re-index the remaining elements.
func (s *DiscreteSet) Remove(e *DiscreteElement) error {
	i := s.find(e)
	if i == -1 {
		return fmt.Errorf("element.DiscreteSet.Remove: %w", ErrElementNotFound)
	}
	s.elems = append(s.elems[:i], s.elems[i+1:]...)
	s.index = make(map[uint64][]int, len(s.elems))
	for j, el := range s.elems {
		key := s.key(el)
		s.index[key] = append(s.index[key], j)
	}
	return nil
}

// Contains reports whether an element equal to e is present in s.
func (s *DiscreteSet) Contains(e *DiscreteElement) bool {
	return e.n == s.n && s.find(e) != -1
}

// Cardinality returns the number of elements currently in s.
func (s *DiscreteSet) Cardinality() int {
	return len(s.elems)
}

// Elements returns a defensive copy of s's elements, in an order stable
// for the lifetime of this instance between mutations.
func (s *DiscreteSet) Elements() []*DiscreteElement {
	cp := make([]*DiscreteElement, len(s.elems))
	copy(cp, s.elems)
	return cp
}

// GenerateAtoms returns the n singleton subsets {0}, {1}, ..., {n-1} of
// an n-world frame.
func GenerateAtoms(n int) (*DiscreteSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("element.GenerateAtoms: %w", ErrBadFrameSize)
	}
	s := NewSet(n)
	for k := 0; k < n; k++ {
		a, err := Atom(n, k)
		if err != nil {
			return nil, fmt.Errorf("element.GenerateAtoms: %w", err)
		}
		// Atoms are pairwise distinct by construction; Add cannot fail.
		_ = s.Add(a)
	}
	return s, nil
}

// GeneratePowerSet returns all 2^n subsets of an n-world frame. It is
// exponential in n by nature: the caller is responsible
// for keeping n small enough to be practical (n beyond ~20 allocates
// millions of elements). The only hard limit enforced here is n <=
// machine word width (64); wider frames are rejected rather than
// silently iterated forever.
func GeneratePowerSet(n int) (*DiscreteSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("element.GeneratePowerSet: %w", ErrBadFrameSize)
	}
	if n > wordBits {
		return nil, fmt.Errorf("element.GeneratePowerSet: n=%d exceeds machine word width: %w", n, ErrElementTooBigForInteger)
	}
	s := NewSet(n)
	if n == wordBits {
		// 1<<64 overflows uint64; walk the full range explicitly.
		i := uint64(0)
		for {
			_ = s.Add(newFast(n, i))
			if i == ^uint64(0) {
				break
			}
			i++
		}
		return s, nil
	}
	total := uint64(1) << uint(n)
	for i := uint64(0); i < total; i++ {
		_ = s.Add(newFast(n, i))
	}
	return s, nil
}

// SupersetsOf returns every element of the power set of e's frame that is
// a superset of e (including e itself).
//
// Complexity: O(2^n); iterates the full power set and filters.
func SupersetsOf(e *DiscreteElement) (*DiscreteSet, error) {
	full, err := GeneratePowerSet(e.n)
	if err != nil {
		return nil, fmt.Errorf("element.SupersetsOf: %w", err)
	}
	out := NewSet(e.n)
	for _, cand := range full.Elements() {
		if ok, _ := IsSubsetOf(e, cand); ok {
			_ = out.Add(cand)
		}
	}
	return out, nil
}

// SubsetsOf returns every element of the power set of e's frame that is a
// subset of e (including e itself).
//
// Complexity: O(2^n); iterates the full power set and filters.
func SubsetsOf(e *DiscreteElement) (*DiscreteSet, error) {
	full, err := GeneratePowerSet(e.n)
	if err != nil {
		return nil, fmt.Errorf("element.SubsetsOf: %w", err)
	}
	out := NewSet(e.n)
	for _, cand := range full.Elements() {
		if ok, _ := IsSubsetOf(cand, e); ok {
			_ = out.Add(cand)
		}
	}
	return out, nil
}
