package estimate

import (
	"golang.org/x/exp/constraints"

	"github.com/yuhangwang/statistics/confidence"
)

// UpperLimit is a one-sided bound for a quantity with no meaningful
// two-sided estimate, e.g. one consistent with zero.
type UpperLimit[A constraints.Float] struct {
	Bound A                `json:"bound"`
	CL    confidence.CL[A] `json:"cl"`
}

// LowerLimit is the one-sided counterpart of UpperLimit for quantities too
// large to measure directly.
type LowerLimit[A constraints.Float] struct {
	Bound A                `json:"bound"`
	CL    confidence.CL[A] `json:"cl"`
}

func NewUpperLimit[A constraints.Float](bound A, cl confidence.CL[A]) UpperLimit[A] {
	return UpperLimit[A]{Bound: bound, CL: cl}
}

func NewLowerLimit[A constraints.Float](bound A, cl confidence.CL[A]) LowerLimit[A] {
	return LowerLimit[A]{Bound: bound, CL: cl}
}
