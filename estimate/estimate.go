package estimate

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/yuhangwang/statistics/confidence"
	"github.com/yuhangwang/statistics/utils"
)

// Estimate pairs a point value with one error representation. Values are
// immutable once built; Scale returns a new estimate.
type Estimate[A constraints.Float, E Scaler[A, E]] struct {
	X  A `json:"x"`
	Dx E `json:"dx"`
}

// Scale multiplies the underlying quantity by a: the point scales linearly,
// the error representation scales by its own rule.
func (e Estimate[A, E]) Scale(a A) Estimate[A, E] {
	return Estimate[A, E]{X: a * e.X, Dx: e.Dx.Scale(a)}
}

func (e Estimate[A, E]) DebugString() string {
	return fmt.Sprintf("x: %v, dx: %+v", utils.FormatFloat(float64(e.X), 3), e.Dx)
}

// PlusMinus builds "x +- dx" with a symmetric normal error.
func PlusMinus[A constraints.Float](x, dx A) Estimate[A, NormalErr[A]] {
	return Estimate[A, NormalErr[A]]{X: x, Dx: NormalErr[A]{Err: dx}}
}

// FromErrs builds an estimate from the distances below and above the point.
func FromErrs[A constraints.Float](x, lower, upper A, cl confidence.CL[A]) Estimate[A, ConfInt[A]] {
	return Estimate[A, ConfInt[A]]{X: x, Dx: ConfInt[A]{Lower: lower, Upper: upper, CL: cl}}
}

// FromInterval builds an estimate from the absolute interval endpoints.
func FromInterval[A constraints.Float](x, low, high A, cl confidence.CL[A]) Estimate[A, ConfInt[A]] {
	return FromErrs(x, x-low, high-x, cl)
}

// ConfidenceInterval returns the absolute interval endpoints, the inverse of
// FromInterval.
func ConfidenceInterval[A constraints.Float](e Estimate[A, ConfInt[A]]) (A, A) {
	return e.X - e.Dx.Lower, e.X + e.Dx.Upper
}

// AsymErrors returns the distances below and above the point.
func AsymErrors[A constraints.Float](e Estimate[A, ConfInt[A]]) (A, A) {
	return e.Dx.Lower, e.Dx.Upper
}
