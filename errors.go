package roamterrain

import "errors"

// Sentinel errors for caller contract violations. These are
// returned, never panicked, from the lifecycle entry points so a host can
// log and recover instead of crashing a frame loop.
var (
	// ErrInvalidSize is returned by New when size is not a power of two,
	// or is smaller than 2.
	ErrInvalidSize = errors.New("roamterrain: size must be a power of two >= 2")

	// ErrInvalidConfig is returned by New when Config fields are out of range.
	ErrInvalidConfig = errors.New("roamterrain: invalid config")

	// ErrMissingCallback is returned by Init when a required callback in
	// Callbacks has not been registered.
	ErrMissingCallback = errors.New("roamterrain: required callback not registered")

	// ErrNotInitialized is returned by Update and Draw when called before
	// a successful Init.
	ErrNotInitialized = errors.New("roamterrain: Init must be called before Update/Draw")
)
