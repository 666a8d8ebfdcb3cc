package confidence

// Common levels, stored in p-value form.
var (
	CL90 = CL[float64]{p: 0.10}
	CL95 = CL[float64]{p: 0.05}
	CL99 = CL[float64]{p: 0.01}
)
