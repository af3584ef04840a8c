package strs

import "errors"

var (
	// ErrInvalidGroupSize is returned when the license-key group size is not positive.
	ErrInvalidGroupSize = errors.New("strs: group size must be positive")

	// ErrUnrecognizedPII is returned when MaskPII cannot classify its input.
	ErrUnrecognizedPII = errors.New("strs: input is neither an email nor a phone number")
)
