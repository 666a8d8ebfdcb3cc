package estimate

import "golang.org/x/exp/constraints"

// Scaler is implemented by every error representation: multiplying the
// underlying quantity by an exactly known factor yields a value of the same
// representation. The self-referential parameter keeps dispatch static, so
// each Estimate instantiation resolves Scale at compile time.
type Scaler[A constraints.Float, E any] interface {
	Scale(a A) E
}
