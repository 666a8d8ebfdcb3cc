package confidence

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuhangwang/statistics/common"
)

func TestNSigma_KnownValues(t *testing.T) {
	// two-tailed probability outside +-1 sigma
	cl, err := NSigma(1.0)
	require.NoError(t, err)
	require.InDelta(t, 0.3173105078629141, cl.PValue(), 1e-12)

	// "2 sigma" is roughly 95% confidence
	cl, err = NSigma(2.0)
	require.NoError(t, err)
	require.InDelta(t, 0.9544997361036416, cl.Confidence(), 1e-12)
}

func TestNSigma1_KnownValue(t *testing.T) {
	cl, err := NSigma1(1.0)
	require.NoError(t, err)
	require.InDelta(t, 0.15865525393145705, cl.PValue(), 1e-12)
}

func TestNSigma_RoundTrip(t *testing.T) {
	for _, n := range []float64{0.5, 1, 1.96, 3, 5} {
		cl, err := NSigma(n)
		require.NoError(t, err)
		require.InDelta(t, n, cl.NSigma(), 1e-9)

		cl, err = NSigma1(n)
		require.NoError(t, err)
		require.InDelta(t, n, cl.NSigma1(), 1e-9)
	}
}

func TestNSigma_NonPositive(t *testing.T) {
	for _, n := range []float64{0, -1} {
		_, err := NSigma(n)
		require.ErrorIs(t, err, common.ErrorInvalidValue)

		_, err = NSigma1(n)
		require.ErrorIs(t, err, common.ErrorInvalidValue)
	}
}

func TestNSigma_OfCL95(t *testing.T) {
	require.InDelta(t, 1.959963984540054, CL95.NSigma(), 1e-12)
	require.InDelta(t, 1.6448536269514729, CL95.NSigma1(), 1e-12)
}
