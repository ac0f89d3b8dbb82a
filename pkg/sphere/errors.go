package sphere

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when the slice or stack count cannot
// describe a closed sphere. Callers should test for it with errors.Is.
var ErrInvalidParameters = errors.New("sphere: invalid parameters")

const (
	// MinSlices is the smallest longitude division count (a triangular
	// cross-section).
	MinSlices = 3
	// MinStacks is the smallest latitude division count (one cap per pole).
	MinStacks = 2
)

// Validate reports whether slices and stacks describe a valid sphere.
func Validate(slices, stacks int) error {
	if slices < MinSlices {
		return fmt.Errorf("%w: slices must be >= %d, got %d", ErrInvalidParameters, MinSlices, slices)
	}
	if stacks < MinStacks {
		return fmt.Errorf("%w: stacks must be >= %d, got %d", ErrInvalidParameters, MinStacks, stacks)
	}
	return nil
}
