package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	require.Equal(t, 1.235, FormatFloat(1.23456, 3))
	require.Equal(t, 1.2, FormatFloat(1.23456, 1))
	require.True(t, math.IsNaN(FormatFloat(math.NaN(), 3)))
	require.True(t, math.IsInf(FormatFloat(math.Inf(-1), 3), -1))
}
