package frame

import "errors"

// Sentinel errors for the frame package.
//
// Callers MUST use errors.Is to branch on semantics; messages are never
// meant to be parsed.
var (
	// ErrEmptyName indicates a world name was the empty string.
	ErrEmptyName = errors.New("frame: world name is empty")

	// ErrDuplicateName indicates the same world name was given twice.
	ErrDuplicateName = errors.New("frame: duplicate world name")

	// ErrIncompatibleReferenceList indicates two ReferenceLists were
	// compared or used together but do not name the same frame (differing
	// length, or differing names in order).
	ErrIncompatibleReferenceList = errors.New("frame: incompatible reference list")
)
