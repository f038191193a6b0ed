package qs

import "errors"

// Sentinel errors for query-string parsing.
var (
	// ErrInvalidKey reports a malformed bracket structure in a key,
	// e.g. an unterminated "[" or characters after the final "]".
	ErrInvalidKey = errors.New("qs: invalid key")

	// ErrEmptySegment reports an empty bracket segment ("a[]").
	ErrEmptySegment = errors.New("qs: empty key segment")

	// ErrDepthExceeded reports nesting deeper than the configured limit.
	ErrDepthExceeded = errors.New("qs: nesting depth exceeded")

	// ErrSparseIndex reports a gap in list indices, e.g. [0] and [2]
	// with no [1]. Sparse submissions are rejected rather than silently
	// re-packed, since reordering would corrupt list contents.
	ErrSparseIndex = errors.New("qs: sparse list index")

	// ErrKeyConflict reports a key used both as a scalar and as a
	// container, e.g. "a=1&a[b]=2".
	ErrKeyConflict = errors.New("qs: conflicting key usage")
)
