package transform

import "errors"

var (
	// ErrInvalidBeliefModel is returned when a refinement fails the
	// coverage or (strict) disjointness check, or when a loaded
	// refinement's shape does not match its declared source frame.
	ErrInvalidBeliefModel = errors.New("transform: invalid belief model")

	// ErrModelDoesNotExist is returned when Transform or Marginalise is
	// invoked with a name that has no loaded refinement.
	ErrModelDoesNotExist = errors.New("transform: model does not exist")

	// ErrNoInputs is returned when Transform is called with an empty
	// input batch.
	ErrNoInputs = errors.New("transform: no inputs given")
)
