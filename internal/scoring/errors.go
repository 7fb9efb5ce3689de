package scoring

import "errors"

// ErrInvalidInput is returned for inputs outside a scorer's domain:
// non-positive weight, negative quantities, non-finite numbers or an
// empty sequence of daily scores.
var ErrInvalidInput = errors.New("invalid input")
