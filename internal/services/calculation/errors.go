package calculation

import "errors"

// ErrCalculationNotFound means the requested stored calculation id does
// not exist.
var ErrCalculationNotFound = errors.New("calculation not found")
