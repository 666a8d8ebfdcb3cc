package confidence

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/yuhangwang/statistics/common"
)

// CL represents a confidence level or, equivalently, a p-value. The wrapped
// value is always stored in "1 - confidence" form, so the two readings are
// complementary views of the same number.
//
// Ordering is inverted relative to the wrapped value: a smaller wrapped
// p-value means higher confidence and compares as greater.
type CL[A constraints.Float] struct {
	p A
}

// ConfLevel builds a CL from a confidence, e.g. 0.90 for "90% CL".
func ConfLevel[A constraints.Float](p A) (CL[A], error) {
	if p < 0 || p > 1 {
		return CL[A]{}, fmt.Errorf("confidence level %v outside [0, 1]: %w", p, common.ErrorInvalidValue)
	}
	return CL[A]{p: 1 - p}, nil
}

// PValue builds a CL from a p-value, e.g. 0.05 for "95% CL".
func PValue[A constraints.Float](p A) (CL[A], error) {
	if p < 0 || p > 1 {
		return CL[A]{}, fmt.Errorf("p-value %v outside [0, 1]: %w", p, common.ErrorInvalidValue)
	}
	return CL[A]{p: p}, nil
}

// Confidence returns the confidence-level reading, 1 - PValue().
func (c CL[A]) Confidence() A {
	return 1 - c.p
}

// PValue returns the p-value reading.
func (c CL[A]) PValue() A {
	return c.p
}

// Less reports whether c is a weaker level than o. Higher confidence means a
// smaller wrapped value, so the wrapped comparison is reversed.
func (c CL[A]) Less(o CL[A]) bool {
	return c.p > o.p
}

func (c CL[A]) Greater(o CL[A]) bool {
	return c.p < o.p
}

func (c CL[A]) Equal(o CL[A]) bool {
	return c.p == o.p
}

// Max returns the stronger of the two levels, the one with the smaller
// wrapped value.
func Max[A constraints.Float](c1, c2 CL[A]) CL[A] {
	if c1.p <= c2.p {
		return c1
	}
	return c2
}

// Min returns the weaker of the two levels.
func Min[A constraints.Float](c1, c2 CL[A]) CL[A] {
	if c1.p >= c2.p {
		return c1
	}
	return c2
}
