// Package matrix: sentinel error set. Algorithms return these sentinels
// and tests match them via errors.Is; no operation panics on
// user-supplied shapes.
package matrix

import "errors"

// ErrDimensionMismatch indicates incompatible dimensions between
// operands, e.g. Multiply where cols(a) != rows(b).
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
