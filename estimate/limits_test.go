package estimate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuhangwang/statistics/confidence"
)

func TestLimits_HoldBoundAndLevel(t *testing.T) {
	ul := NewUpperLimit(1e-9, confidence.CL95)
	require.Equal(t, 1e-9, ul.Bound)
	require.True(t, ul.CL.Equal(confidence.CL95))

	ll := NewLowerLimit(1e12, confidence.CL90)
	require.Equal(t, 1e12, ll.Bound)
	require.True(t, ll.CL.Equal(confidence.CL90))
}

func TestUpperLimit_JSONRoundTrip(t *testing.T) {
	ul := NewUpperLimit(0.5, confidence.CL99)

	data, err := json.Marshal(ul)
	require.NoError(t, err)

	var decoded UpperLimit[float64]
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, ul, decoded)
}
