package tariff

import "errors"

var (
	// ErrUnknownCategory means a category with no bracket ladder was
	// requested. This is a deployment defect, not a user input error.
	ErrUnknownCategory = errors.New("unknown tariff category")

	// ErrMalformedTable means the bracket ladder has a gap, an overlap,
	// or a bracket without exactly one fee rule.
	ErrMalformedTable = errors.New("malformed tariff table")
)
