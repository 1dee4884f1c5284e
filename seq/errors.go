package seq

import "errors"

// Sentinel errors returned by seq operations.
var (
	// ErrEmptySequence is returned by FoldOrFail when the input has no
	// first element to seed the accumulator.
	ErrEmptySequence = errors.New("seq: fold over empty sequence")

	// ErrNoMatch is returned by Seq.FirstOrFail when no element satisfies
	// the predicate.
	ErrNoMatch = errors.New("seq: no element matches the given predicate")
)
