package core

import "errors"

// Construction errors.
var (
	ErrInvalidDimensions = errors.New("pipeslide: rows and cols must be positive")
	ErrGapOutOfRange     = errors.New("pipeslide: gap index out of range")
	ErrOriginIsGap       = errors.New("pipeslide: origin tile cannot be a gap")
	ErrMissingShape      = errors.New("pipeslide: occupied tile has no shape")
	ErrOriginExit        = errors.New("pipeslide: origin pipe has no exit onto the board")
)

// Consistency errors. These indicate a broken invariant and are never
// expected at runtime.
var (
	ErrNoGaps           = errors.New("pipeslide: board has no gaps")
	ErrActiveOnGap      = errors.New("pipeslide: active tile is a gap")
	ErrActiveOutOfRange = errors.New("pipeslide: active tile out of range")
	ErrWaterOutOfRange  = errors.New("pipeslide: water index out of range")
)
