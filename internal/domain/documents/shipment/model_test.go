package shipment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/id"
)

func validShipment() *Shipment {
	s := NewShipment(id.New(), "DHL")
	s.Date = time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	s.WeightKg = 2.4
	return s
}

func TestNewShipment_Defaults(t *testing.T) {
	s := NewShipment(id.New(), "DHL")
	assert.Equal(t, "DHL", s.Carrier)
	assert.False(t, s.ShippedAt.IsZero())
	assert.Nil(t, s.TrackingNumber)
	assert.Nil(t, s.MaterialID)
}

func TestShipment_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid shipment passes", func(t *testing.T) {
		require.NoError(t, validShipment().Validate(ctx))
	})

	t.Run("order required", func(t *testing.T) {
		s := validShipment()
		s.OrderID = id.Nil()
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("carrier required", func(t *testing.T) {
		s := validShipment()
		s.Carrier = ""
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		s := validShipment()
		s.WeightKg = -0.5
		assert.Error(t, s.Validate(ctx))
	})

	t.Run("shipped date required", func(t *testing.T) {
		s := validShipment()
		s.ShippedAt = time.Time{}
		assert.Error(t, s.Validate(ctx))
	})
}
