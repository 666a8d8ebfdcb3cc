package model

type QuantileValue struct {
	Value    float64 `json:"v"`
	Quantile float64 `json:"q"`
}

// QuantileInterval is a pair of pre-computed quantile bounds around some
// point, e.g. the 0.05 and 0.95 quantiles of a fitted distribution.
type QuantileInterval struct {
	Lower *QuantileValue `json:"l"`
	Upper *QuantileValue `json:"u"`
}

func (q *QuantileInterval) Valid() bool {
	if q == nil || q.Lower == nil || q.Upper == nil {
		return false
	}
	return q.Lower.Value <= q.Upper.Value
}
