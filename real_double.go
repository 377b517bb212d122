//go:build glue_double

package glue

import "math"

// Real is the engine's floating-point scalar (real_t), widened to float64
// by the glue_double build tag.
type Real = float64

func hashReal(r Real) uint32 {
	if r == 0 {
		return 0
	}
	b := math.Float64bits(r)
	return uint32(b) ^ uint32(b>>32)
}
