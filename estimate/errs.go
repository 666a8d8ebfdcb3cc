package estimate

import (
	"golang.org/x/exp/constraints"

	"github.com/yuhangwang/statistics/confidence"
)

// NormalErr is a symmetric 1-sigma error magnitude. The value is
// conventionally non-negative; this is not validated.
type NormalErr[A constraints.Float] struct {
	Err A `json:"err"`
}

// Scale multiplies the magnitude by |a|; the sign of the factor never flips
// a magnitude-only error.
func (e NormalErr[A]) Scale(a A) NormalErr[A] {
	if a < 0 {
		a = -a
	}
	return NormalErr[A]{Err: a * e.Err}
}

// ConfInt is an asymmetric confidence interval around a point estimate,
// stored as distances below and above it, plus the level the interval was
// computed at. The distances are conventionally non-negative; this is not
// validated.
type ConfInt[A constraints.Float] struct {
	Lower A                `json:"l"`
	Upper A                `json:"u"`
	CL    confidence.CL[A] `json:"cl"`
}

// Scale multiplies both distances. A negative factor flips the point
// estimate, so the below/above sides swap.
func (c ConfInt[A]) Scale(a A) ConfInt[A] {
	if a < 0 {
		return ConfInt[A]{Lower: -a * c.Upper, Upper: -a * c.Lower, CL: c.CL}
	}
	return ConfInt[A]{Lower: a * c.Lower, Upper: a * c.Upper, CL: c.CL}
}
