package perspective

import "errors"

// Configuration errors are returned by the setters and by Apply. A rejected
// call never mutates the renderer.
var (
	ErrEmptyMap              = errors.New("height map is empty")
	ErrRaggedMap             = errors.New("height map rows differ in length")
	ErrNegativeHeight        = errors.New("height map contains a negative height")
	ErrInvalidUnitSize       = errors.New("unit size must be positive and finite")
	ErrInvalidDepthFactor    = errors.New("depth factor must be non-negative and finite")
	ErrInvalidVanishingPoint = errors.New("vanishing point must be finite")
	ErrInvalidMode           = errors.New("unknown projection mode")
)

// Frame errors abort a single frame; the next frame starts from clean state.
var (
	ErrNoMap              = errors.New("no height map configured")
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")
	ErrInvariant          = errors.New("render invariant violated")
)
