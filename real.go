//go:build !glue_double

package glue

import "math"

// Real is the engine's floating-point scalar (real_t). It is float32 unless
// the module is built with the glue_double tag.
type Real = float32

// hashReal folds -0 onto +0 so that equal values hash equally.
func hashReal(r Real) uint32 {
	if r == 0 {
		return 0
	}
	return math.Float32bits(r)
}
