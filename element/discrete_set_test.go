package element_test

import (
	"testing"

	"github.com/bpietropaoli/thegame/element"
	"github.com/stretchr/testify/require"
)

func TestDiscreteSet_AddRemoveContains(t *testing.T) {
	t.Parallel()

	s := element.NewSet(4)
	a, _ := element.Atom(4, 0)
	b, _ := element.Atom(4, 1)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.Equal(t, 2, s.Cardinality())
	require.True(t, s.Contains(a))

	err := s.Add(a)
	require.ErrorIs(t, err, element.ErrDuplicateElement)

	wrongFrame := element.Empty(5)
	err = s.Add(wrongFrame)
	require.ErrorIs(t, err, element.ErrIncompatibleFrameSize)

	require.NoError(t, s.Remove(a))
	require.False(t, s.Contains(a))
	require.Equal(t, 1, s.Cardinality())

	err = s.Remove(a)
	require.ErrorIs(t, err, element.ErrElementNotFound)
}

func TestDiscreteSet_WideFrame(t *testing.T) {
	t.Parallel()

	// Frames beyond the machine word are indexed by Hash rather than the
	// raw bit-vector; the set behaves identically.
	n := 130
	s := element.NewSet(n)
	a, err := element.Atom(n, 3)
	require.NoError(t, err)
	b, err := element.Atom(n, 129)
	require.NoError(t, err)

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))
	require.Equal(t, 2, s.Cardinality())
	require.True(t, s.Contains(a))
	require.True(t, s.Contains(b))

	dup, err := element.Atom(n, 3)
	require.NoError(t, err)
	require.ErrorIs(t, s.Add(dup), element.ErrDuplicateElement)

	require.NoError(t, s.Remove(a))
	require.False(t, s.Contains(a))
	require.Equal(t, 1, s.Cardinality())
}

func TestGenerateAtoms(t *testing.T) {
	t.Parallel()

	atoms, err := element.GenerateAtoms(6)
	require.NoError(t, err)
	require.Equal(t, 6, atoms.Cardinality())

	for _, a := range atoms.Elements() {
		require.Equal(t, 1, a.Cardinality())
	}
}

// Property: |GeneratePowerSet(n)| == 2^n, all elements distinct.
func TestGeneratePowerSetSize(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 8; n++ {
		ps, err := element.GeneratePowerSet(n)
		require.NoError(t, err)
		require.Equal(t, 1<<uint(n), ps.Cardinality())
	}
}

func TestGeneratePowerSetRejectsTooWide(t *testing.T) {
	t.Parallel()

	_, err := element.GeneratePowerSet(65)
	require.Error(t, err)
}

func TestSupersetsAndSubsetsOf(t *testing.T) {
	t.Parallel()

	n := 4
	e, _ := element.FromBits(n, 0b0011)

	subs, err := element.SubsetsOf(e)
	require.NoError(t, err)
	// subsets of a 2-element set: 2^2 = 4
	require.Equal(t, 4, subs.Cardinality())

	supers, err := element.SupersetsOf(e)
	require.NoError(t, err)
	// supersets of a 2-element set in a 4-world frame: 2^(4-2) = 4
	require.Equal(t, 4, supers.Cardinality())

	for _, s := range subs.Elements() {
		ok, _ := element.IsSubsetOf(s, e)
		require.True(t, ok)
	}
	for _, s := range supers.Elements() {
		ok, _ := element.IsSubsetOf(e, s)
		require.True(t, ok)
	}
}
