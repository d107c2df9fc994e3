package sequence

import "errors"

// NotFound is the index returned by the searches when target is absent.
const NotFound = -1

var (
	// ErrEmptySequence indicates MaxOf or MinOf was given no elements.
	ErrEmptySequence = errors.New("sequence: empty sequence")

	// ErrNotSorted indicates the input of BinarySearchChecked is not non-decreasing.
	ErrNotSorted = errors.New("sequence: sequence is not sorted in non-decreasing order")
)
