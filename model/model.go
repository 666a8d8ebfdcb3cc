package model

import "gonum.org/v1/gonum/floats"

// Sample is an opaque sequence of observations. This package attaches no
// statistical meaning to it beyond ordering.
type Sample []float64

// Weights holds per-observation weights, parallel to a Sample.
type Weights []float64

// WeightedSample pairs observations with their weights.
type WeightedSample struct {
	Xs      Sample  `json:"xs"`
	Weights Weights `json:"weights"`
}

func (s Sample) IsEmpty() bool {
	return len(s) == 0
}

// Scale returns a copy of the sample with every observation multiplied by a.
func (s Sample) Scale(a float64) Sample {
	res := make(Sample, len(s))
	copy(res, s)
	floats.Scale(a, res)
	return res
}

// Normalize returns a copy of the weights scaled to sum to 1.
// Weights summing to zero are returned as an all-zero copy.
func (w Weights) Normalize() Weights {
	res := make(Weights, len(w))
	sum := floats.Sum(w)
	if sum == 0 {
		return res
	}
	for i := range w {
		res[i] = w[i] / sum
	}
	return res
}

func (ws *WeightedSample) IsEmpty() bool {
	if ws == nil {
		return true
	}
	return len(ws.Xs) == 0
}
