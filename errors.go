package pixl

import "errors"

var (
	// ErrOutOfRange reports a coordinate or index outside the valid bounds.
	// Buffer writes swallow the condition silently instead; only reads and
	// cursor/index setters surface it to the caller.
	ErrOutOfRange = errors.New("pixl: out of range")

	// ErrInvalidCursor reports access to a document with no layers. A
	// document is bootstrapped with a default layer, so hitting this error
	// indicates a broken invariant rather than a user facing condition.
	ErrInvalidCursor = errors.New("pixl: invalid cursor")
)
