package roundshape

import (
	"errors"
	"fmt"
)

// Error taxonomy for construction-time validation. Every other operation
// (evaluation, interpolation, bounds) is total and never returns an error.
var (
	// ErrInvalidArgument is returned when caller-supplied construction
	// parameters are out of range: vertex count too small, mismatched
	// per-vertex rounding length, negative radius, smoothing outside
	// [0,1], a progress value outside [0,1), progresses too close or
	// wrapping more than once, a non-continuous feature chain, an empty
	// feature, or an unclosed polygon feature chain.
	ErrInvalidArgument = errors.New("roundshape: invalid argument")

	// ErrInvalidState signals an internal post-condition violation (a
	// library bug or a faulty Measurer) rather than a caller error: a
	// measured-cubic segment that could not be located during cutAndShift,
	// or a negative measured length.
	ErrInvalidState = errors.New("roundshape: invalid state")
)

// wrapInvalidArgument formats detail and wraps it around ErrInvalidArgument
// so callers can test with errors.Is(err, ErrInvalidArgument).
func wrapInvalidArgument(format string, args ...any) error {
	return fmt.Errorf("roundshape: %s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// wrapInvalidState formats detail and wraps it around ErrInvalidState.
func wrapInvalidState(format string, args ...any) error {
	return fmt.Errorf("roundshape: %s: %w", fmt.Sprintf(format, args...), ErrInvalidState)
}
