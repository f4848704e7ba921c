package spectrum

import "errors"

var (
	// ErrInvalidRange reports bin arithmetic outside 0 <= low <= high <= Nyquist.
	ErrInvalidRange = errors.New("invalid bin range")
	// ErrNotSymmetric reports a spectrum whose mirrored half does not match
	// its basis.
	ErrNotSymmetric = errors.New("spectrum is not conjugate-symmetric")
)
