package mass

import "errors"

// Sentinel errors for the mass package. Callers MUST use errors.Is.
var (
	// ErrBadFrameSize indicates New received n <= 0.
	ErrBadFrameSize = errors.New("mass: frame size must be positive")

	// ErrInvalidEmptyElement indicates New's empty argument is not
	// actually the empty set (cardinality != 0).
	ErrInvalidEmptyElement = errors.New("mass: empty element is not the empty set")

	// ErrInvalidFullElement indicates New's full argument does not have
	// cardinality n.
	ErrInvalidFullElement = errors.New("mass: full element does not span the frame")

	// ErrIncompatiblePowerSet indicates a MassFunction received a focal
	// element (AddMass, RemoveMass, or a query argument) built against a
	// different frame than the one it was constructed with.
	ErrIncompatiblePowerSet = errors.New("mass: focal element from a different frame")

	// ErrIncompatibleMassFunction indicates a pair combination (Dempster,
	// Smets, Yager, Disjunctive, Averaging) was attempted between mass
	// functions on different frames.
	ErrIncompatibleMassFunction = errors.New("mass: mass functions on different frames")

	// ErrNonFiniteMass indicates AddMass received a NaN or infinite mass.
	ErrNonFiniteMass = errors.New("mass: mass is not finite")

	// ErrNegativeMass indicates AddMass received a mass below zero.
	ErrNegativeMass = errors.New("mass: mass is negative")

	// ErrFocalNotFound indicates RemoveMass targeted an element absent
	// from the mass function.
	ErrFocalNotFound = errors.New("mass: focal element not found")

	// ErrEmptyMassFunction indicates Normalise, Max, BetP, or another
	// operation that requires positive total mass was invoked on a mass
	// function with no usable focal mass.
	ErrEmptyMassFunction = errors.New("mass: mass function carries no usable mass")

	// ErrEmptyElement indicates Specificity (or another operation that
	// rejects the empty set) was invoked on a mass function carrying
	// positive mass on the empty focal.
	ErrEmptyElement = errors.New("mass: operation rejects mass on the empty set")

	// ErrCombinationUndefined indicates Dempster's rule hit total
	// conflict (K == 1), or Decondition was asked to decondition on the
	// empty element.
	ErrCombinationUndefined = errors.New("mass: combination is undefined")

	// ErrNotEnoughMassFunctions indicates Combine received fewer than two
	// operands.
	ErrNotEnoughMassFunctions = errors.New("mass: need at least two mass functions")

	// ErrInvalidDiscountFactor indicates Discount or Weaken received an
	// alpha outside [0,1].
	ErrInvalidDiscountFactor = errors.New("mass: discount factor out of [0,1]")

	// ErrInvalidConditionElement indicates Condition received the empty
	// element. (Decondition reports that case as ErrCombinationUndefined.)
	ErrInvalidConditionElement = errors.New("mass: conditioning element is empty")
)
