// Package builder: sentinel errors.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// Implementations attach context via %w wrapping, never by stringifying
// parameters into the sentinel itself.
package builder

import "errors"

// ErrTooFewNodes indicates a node-count parameter below the minimum the
// requested shape needs (a line needs 2, a ring needs 3, and so on).
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1], from RandomSparse.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNilConstructor indicates a nil Constructor was passed to Build.
var ErrNilConstructor = errors.New("builder: nil constructor")
