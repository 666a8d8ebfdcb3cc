package estimate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yuhangwang/statistics/common"
	"github.com/yuhangwang/statistics/confidence"
	"github.com/yuhangwang/statistics/model"
	"github.com/yuhangwang/statistics/utils"
)

// Interval is the float64 instantiation used at the batch boundary.
type Interval = Estimate[float64, ConfInt[float64]]

// FromQuantileInterval reframes a pre-computed quantile interval as a
// confidence-interval estimate around x. The bounds must arrive already
// computed; nothing is estimated here.
func FromQuantileInterval(ctx context.Context, x float64, interval *model.QuantileInterval,
	cl confidence.CL[float64]) (Interval, error) {
	logger := utils.GetLogger(ctx)

	if !interval.Valid() {
		logger.Error("invalid quantile interval", zap.Any("interval", interval))
		return Interval{}, common.ErrorInvalidValue
	}

	return FromInterval(x, interval.Lower.Value, interval.Upper.Value, cl), nil
}

// IntervalEstimates reframes a batch of pre-computed quantile intervals,
// skipping invalid records instead of failing the whole batch.
func IntervalEstimates(ctx context.Context, points []float64, intervals []*model.QuantileInterval,
	cl confidence.CL[float64]) ([]Interval, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("IntervalEstimates recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()))
		}
	}()

	if len(points) != len(intervals) {
		logger.Error("point and interval count mismatch",
			zap.Int("pointCnt", len(points)), zap.Int("intervalCnt", len(intervals)))
		return nil, common.ErrorInvalidValue
	}

	res := make([]Interval, 0, len(points))
	skipped := 0
	for i := range points {
		if !intervals[i].Valid() {
			skipped++
			continue
		}
		res = append(res, FromInterval(points[i], intervals[i].Lower.Value, intervals[i].Upper.Value, cl))
	}

	if skipped > 0 {
		logger.Info(fmt.Sprintf("skipped %v invalid intervals", skipped))
	}

	return res, nil
}
