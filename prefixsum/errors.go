package prefixsum

import "errors"

// ErrInvalidModulus is returned when the divisor p is not positive.
var ErrInvalidModulus = errors.New("prefixsum: modulus must be positive")
