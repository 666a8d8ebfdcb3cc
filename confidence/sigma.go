package confidence

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/yuhangwang/statistics/common"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NSigma builds the CL whose p-value is the two-tailed probability of a
// standard normal lying outside +-n standard deviations.
func NSigma[A constraints.Float](n A) (CL[A], error) {
	if n <= 0 {
		return CL[A]{}, fmt.Errorf("sigma count %v must be positive: %w", n, common.ErrorInvalidValue)
	}
	return CL[A]{p: A(2 * stdNormal.CDF(float64(-n)))}, nil
}

// NSigma1 is the one-tailed variant of NSigma.
func NSigma1[A constraints.Float](n A) (CL[A], error) {
	if n <= 0 {
		return CL[A]{}, fmt.Errorf("sigma count %v must be positive: %w", n, common.ErrorInvalidValue)
	}
	return CL[A]{p: A(stdNormal.CDF(float64(-n)))}, nil
}

// NSigma returns the two-tailed sigma count of the level, the inverse of the
// NSigma constructor.
func (c CL[A]) NSigma() A {
	return A(-stdNormal.Quantile(float64(c.p) / 2))
}

// NSigma1 returns the one-tailed sigma count.
func (c CL[A]) NSigma1() A {
	return A(-stdNormal.Quantile(float64(c.p)))
}
