package window

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow reports an envelope that cannot be built or applied.
var ErrInvalidWindow = errors.New("window: invalid window")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: length must be > 0: %d", ErrInvalidWindow, size)
	}
	return nil
}

func validateBeta(beta float64) error {
	if !(beta >= 0 && beta <= 1) {
		return fmt.Errorf("%w: beta must be in [0,1]: %f", ErrInvalidWindow, beta)
	}
	return nil
}

func validateFit(size, bufLen int) error {
	if 2*size > bufLen {
		return fmt.Errorf("%w: window of %d samples exceeds half of %d", ErrInvalidWindow, size, bufLen)
	}
	return nil
}
