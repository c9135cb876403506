package transform_test

import (
	"testing"

	"github.com/bpietropaoli/thegame/element"
	"github.com/bpietropaoli/thegame/frame"
	"github.com/bpietropaoli/thegame/mass"
	"github.com/bpietropaoli/thegame/transform"
	"github.com/stretchr/testify/require"
)

func atomD(t *testing.T, n, k int) *element.DiscreteElement {
	t.Helper()
	e, err := element.Atom(n, k)
	require.NoError(t, err)
	return e
}

func bitsD(t *testing.T, n int, raw uint64) *element.DiscreteElement {
	t.Helper()
	e, err := element.FromBits(n, raw)
	require.NoError(t, err)
	return e
}

// Scenario: source {sitting, standing}, destination
// {low, mid, high}; refinement sitting->{low,mid}, standing->{high}.
// Source mass {{sitting}: 0.8, {sitting,standing}: 0.2} extends to
// destination mass {{low,mid}: 0.8, {low,mid,high}: 0.2}.
func TestPostureRefinement_Extend(t *testing.T) {
	t.Parallel()

	source, err := frame.New("sitting", "standing")
	require.NoError(t, err)
	dest, err := frame.New("low", "mid", "high")
	require.NoError(t, err)

	r := transform.Refinement{
		Source: source,
		Images: []*element.DiscreteElement{
			bitsD(t, 3, 0b011), // sitting -> {low, mid}
			bitsD(t, 3, 0b100), // standing -> {high}
		},
		Strict: true,
	}

	bt := transform.New(dest)
	require.NoError(t, bt.LoadRefinement("posture", r))
	require.NoError(t, bt.IsValid())

	src := newSourceMass(t, source.Size())
	require.NoError(t, src.AddMass(atomD(t, 2, 0), 0.8))
	require.NoError(t, src.AddMass(element.Complete(2), 0.2))

	out, err := bt.Transform(map[string]*mass.MassFunction[*element.DiscreteElement]{"posture": src})
	require.NoError(t, err)

	lowMid := bitsD(t, 3, 0b011)
	full := element.Complete(3)

	mLowMid, err := out.Mass(lowMid)
	require.NoError(t, err)
	mFull, err := out.Mass(full)
	require.NoError(t, err)
	require.InDelta(t, 0.8, mLowMid, 1e-9)
	require.InDelta(t, 0.2, mFull, 1e-9)
}

func newSourceMass(t *testing.T, n int) *mass.MassFunction[*element.DiscreteElement] {
	t.Helper()
	mf, err := mass.New[*element.DiscreteElement](n, element.Empty(n), element.Complete(n))
	require.NoError(t, err)
	return mf
}

// Refinement round-trip: vacuous-extending a
// mass over a source frame then marginalising through the same strict
// refinement returns the original mass.
func TestRefinementRoundTrip(t *testing.T) {
	t.Parallel()

	source, err := frame.New("sitting", "standing")
	require.NoError(t, err)
	dest, err := frame.New("low", "mid", "high")
	require.NoError(t, err)

	r := transform.Refinement{
		Source: source,
		Images: []*element.DiscreteElement{
			bitsD(t, 3, 0b011),
			bitsD(t, 3, 0b100),
		},
		Strict: true,
	}

	bt := transform.New(dest)
	require.NoError(t, bt.LoadRefinement("posture", r))

	src := newSourceMass(t, source.Size())
	require.NoError(t, src.AddMass(atomD(t, 2, 0), 0.8))
	require.NoError(t, src.AddMass(element.Complete(2), 0.2))

	extended, err := bt.Transform(map[string]*mass.MassFunction[*element.DiscreteElement]{"posture": src})
	require.NoError(t, err)

	back, err := bt.Marginalise("posture", extended)
	require.NoError(t, err)

	ps, err := element.GeneratePowerSet(2)
	require.NoError(t, err)
	for _, e := range ps.Elements() {
		before, _ := src.Mass(e)
		after, _ := back.Mass(e)
		require.InDelta(t, before, after, 1e-9)
	}
}

func TestTransform_UnknownModel(t *testing.T) {
	t.Parallel()

	dest, err := frame.New("x", "y")
	require.NoError(t, err)
	bt := transform.New(dest)

	src := newSourceMass(t, 2)
	require.NoError(t, src.AddMass(element.Complete(2), 1.0))

	_, err = bt.Transform(map[string]*mass.MassFunction[*element.DiscreteElement]{"missing": src})
	require.ErrorIs(t, err, transform.ErrModelDoesNotExist)
}

func TestTransform_NoInputs(t *testing.T) {
	t.Parallel()

	dest, err := frame.New("x", "y")
	require.NoError(t, err)
	bt := transform.New(dest)

	_, err = bt.Transform(map[string]*mass.MassFunction[*element.DiscreteElement]{})
	require.ErrorIs(t, err, transform.ErrNoInputs)
}

func TestLoadRefinement_RejectsBadShape(t *testing.T) {
	t.Parallel()

	source, err := frame.New("a", "b")
	require.NoError(t, err)
	dest, err := frame.New("x", "y")
	require.NoError(t, err)
	bt := transform.New(dest)

	badShape := transform.Refinement{
		Source: source,
		Images: []*element.DiscreteElement{bitsD(t, 2, 0b01)}, // 1 image for a 2-world source
	}
	err = bt.LoadRefinement("bad", badShape)
	require.ErrorIs(t, err, transform.ErrInvalidBeliefModel)
}

func TestIsValid_RejectsIncompleteCoverage(t *testing.T) {
	t.Parallel()

	source, err := frame.New("a", "b")
	require.NoError(t, err)
	dest, err := frame.New("x", "y")
	require.NoError(t, err)
	bt := transform.New(dest)

	r := transform.Refinement{
		Source: source,
		Images: []*element.DiscreteElement{
			bitsD(t, 2, 0b01),
			bitsD(t, 2, 0b01), // never covers "y"
		},
	}
	require.NoError(t, bt.LoadRefinement("incomplete", r))
	err = bt.IsValid()
	require.ErrorIs(t, err, transform.ErrInvalidBeliefModel)
}

func TestIsValid_RejectsOverlapWhenStrict(t *testing.T) {
	t.Parallel()

	source, err := frame.New("a", "b")
	require.NoError(t, err)
	dest, err := frame.New("x", "y")
	require.NoError(t, err)
	bt := transform.New(dest)

	r := transform.Refinement{
		Source: source,
		Images: []*element.DiscreteElement{
			element.Complete(2),
			element.Complete(2),
		},
		Strict: true,
	}
	require.NoError(t, bt.LoadRefinement("overlap", r))
	err = bt.IsValid()
	require.ErrorIs(t, err, transform.ErrInvalidBeliefModel)
}

// Two inputs sharing a destination frame are Dempster-combined after
// vacuous extension.
func TestTransform_CombinesMultipleInputs(t *testing.T) {
	t.Parallel()

	sourceA, err := frame.New("a0", "a1")
	require.NoError(t, err)
	sourceB, err := frame.New("b0", "b1")
	require.NoError(t, err)
	dest, err := frame.New("x", "y")
	require.NoError(t, err)

	bt := transform.New(dest)
	require.NoError(t, bt.LoadRefinement("A", transform.Refinement{
		Source: sourceA,
		Images: []*element.DiscreteElement{bitsD(t, 2, 0b01), bitsD(t, 2, 0b10)},
		Strict: true,
	}))
	require.NoError(t, bt.LoadRefinement("B", transform.Refinement{
		Source: sourceB,
		Images: []*element.DiscreteElement{bitsD(t, 2, 0b01), bitsD(t, 2, 0b10)},
		Strict: true,
	}))
	require.NoError(t, bt.IsValid())

	mA := newSourceMass(t, 2)
	require.NoError(t, mA.AddMass(atomD(t, 2, 0), 1.0))
	mB := newSourceMass(t, 2)
	require.NoError(t, mB.AddMass(element.Complete(2), 1.0))

	out, err := bt.Transform(map[string]*mass.MassFunction[*element.DiscreteElement]{"A": mA, "B": mB})
	require.NoError(t, err)

	x := bitsD(t, 2, 0b01)
	m, err := out.Mass(x)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m, 1e-9)
}
