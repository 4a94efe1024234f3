package feecalc

import "errors"

// ErrNoBracket means the subject value fell outside every bracket of its
// category. A well-formed table ends in an unbounded bracket, so this has
// the same severity as a malformed table.
var ErrNoBracket = errors.New("no tariff bracket matches subject value")
