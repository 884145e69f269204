package euui

import "errors"

var (
	// ErrInvalidFormat indicates that the EUUI string format is invalid
	ErrInvalidFormat = errors.New("euui: invalid EUUI format")

	// ErrInvalidLength indicates that the EUUI byte slice has incorrect length
	ErrInvalidLength = errors.New("euui: invalid EUUI length (expected 64 bytes)")

	// ErrInvalidPosition indicates that a segment position is not in [0, 4)
	ErrInvalidPosition = errors.New("euui: invalid segment position (expected 0 to 3)")
)
