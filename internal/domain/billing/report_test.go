package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/id"
	"warebill/internal/core/types"
)

func TestBillingReport_DataRoundTrip(t *testing.T) {
	r := NewBillingReport(
		id.New(),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		FormatCSV,
	)

	data := validReportData()
	require.NoError(t, r.SetData(data))

	got, err := r.GetData()
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestBillingReport_GetDataEmpty(t *testing.T) {
	r := NewBillingReport(id.New(), time.Now(), time.Now(), FormatPreview)

	got, err := r.GetData()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBillingReport_Validate(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid report passes", func(t *testing.T) {
		r := NewBillingReport(id.New(), start, end, FormatCSV)
		r.Date = time.Now()
		require.NoError(t, r.Validate(ctx))
	})

	t.Run("customer required", func(t *testing.T) {
		r := NewBillingReport(id.Nil(), start, end, FormatCSV)
		r.Date = time.Now()
		assert.Error(t, r.Validate(ctx))
	})

	t.Run("period end before start rejected", func(t *testing.T) {
		r := NewBillingReport(id.New(), end, start, FormatCSV)
		r.Date = time.Now()
		assert.Error(t, r.Validate(ctx))
	})

	t.Run("negative total rejected", func(t *testing.T) {
		r := NewBillingReport(id.New(), start, end, FormatCSV)
		r.Date = time.Now()
		r.TotalAmount = types.MustMoney("-5.00")
		assert.Error(t, r.Validate(ctx))
	})
}
