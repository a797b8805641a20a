package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/apperror"
)

func TestSizeEstimator_UnderLimit(t *testing.T) {
	e := NewSizeEstimator(1024)
	require.NoError(t, e.Check(validReportData()))
}

func TestSizeEstimator_OverLimit(t *testing.T) {
	e := NewSizeEstimator(10)

	err := e.Check(validReportData())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeReportTooLarge, appErr.Code)
}

func TestSizeEstimator_ScalesPayloadLength(t *testing.T) {
	e := NewSizeEstimator(DefaultMaxReportSize)

	// {"a":"b"} is 9 bytes, scaled by the structural overhead factor.
	size := e.Estimate(map[string]string{"a": "b"})
	assert.InDelta(t, 9*1.5, size, 0.001)
}

func TestSizeEstimator_MonotonicInPayloadSize(t *testing.T) {
	e := NewSizeEstimator(DefaultMaxReportSize)

	small := validReportData()
	large := validReportData()
	large.Orders = append(large.Orders, small.Orders...)

	assert.GreaterOrEqual(t, e.Estimate(large), e.Estimate(small))
}

func TestSizeEstimator_UnencodableInput(t *testing.T) {
	e := NewSizeEstimator(DefaultMaxReportSize)

	// Channels cannot be JSON-encoded; the estimate pins to +Inf so the
	// limit check rejects the payload regardless of the ceiling.
	assert.True(t, math.IsInf(e.Estimate(make(chan int)), 1))

	err := e.Check(make(chan int))
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeReportTooLarge, appErr.Code)
}

func TestSizeEstimator_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultMaxReportSize, NewSizeEstimator(0).Limit())
	assert.Equal(t, DefaultMaxReportSize, NewSizeEstimator(-5).Limit())
	assert.Equal(t, int64(2048), NewSizeEstimator(2048).Limit())
}
