package element

import "errors"

// Sentinel errors for the element package.
var (
	// ErrIncompatibleFrameSize indicates a binary operation received
	// DiscreteElements built against different frame sizes.
	ErrIncompatibleFrameSize = errors.New("element: incompatible frame size")

	// ErrIncompatibleReferenceList indicates String was called with a
	// frame.ReferenceList whose size does not match the element's frame.
	ErrIncompatibleReferenceList = errors.New("element: reference list does not match frame size")

	// ErrIndexOutOfRange indicates Atom received a world index outside
	// [0, n). (Contains reports false for such an index instead.)
	ErrIndexOutOfRange = errors.New("element: world index out of range")

	// ErrBadFrameSize indicates a constructor received n <= 0.
	ErrBadFrameSize = errors.New("element: frame size must be positive")

	// ErrBitsOutOfRange indicates FromBits received a bitmap with bits
	// set at or beyond position n.
	ErrBitsOutOfRange = errors.New("element: bitmap has bits set beyond frame size")

	// ErrElementTooBigForInteger indicates the integer-bitmap accessor
	// (Bits, FromBits) was used on a frame wider than the canonical
	// 32-bit integer representation.
	ErrElementTooBigForInteger = errors.New("element: frame too wide for integer bitmap representation")

	// ErrEmptyElement indicates an operation that explicitly rejects the
	// empty set was handed one. No function in this package returns it;
	// mass.Specificity reports the same condition with mass.ErrEmptyElement.
	ErrEmptyElement = errors.New("element: element is empty")

	// ErrDuplicateElement indicates DiscreteSet.Add received an element
	// already present in the set.
	ErrDuplicateElement = errors.New("element: duplicate element in set")

	// ErrElementNotFound indicates DiscreteSet.Remove received an element
	// absent from the set.
	ErrElementNotFound = errors.New("element: element not found in set")
)
