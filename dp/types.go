// Package dp declares the error sentinels shared by the routines.
package dp

import "errors"

// ErrEmptyInput indicates an input slice that must be non-empty was
// empty. MaxSubarray rejects it rather than inventing an answer of 0,
// which would be indistinguishable from a real zero-sum result.
var ErrEmptyInput = errors.New("dp: input must be non-empty")
