package boundary

import "errors"

var (
	// ErrUnknownFormat is returned by a Store implementation asked to
	// Load or Save with a Format it does not recognise.
	ErrUnknownFormat = errors.New("boundary: unknown format")

	// ErrInvalidBeliefConstructor is returned by a Generator when asked
	// for more focal elements than a frame of n worlds can hold
	// (k > 2^n - 1, excluding the empty set).
	ErrInvalidBeliefConstructor = errors.New("boundary: invalid belief constructor request")

	// ErrSnapshotShapeMismatch is returned when a Snapshot's Focals and
	// Masses slices disagree in length, or N does not match the
	// destination frame a caller is reconstructing against.
	ErrSnapshotShapeMismatch = errors.New("boundary: snapshot shape mismatch")
)
