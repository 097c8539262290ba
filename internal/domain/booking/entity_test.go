//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bakehouse/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() booking.NewBookingParams {
	start := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)
	return booking.NewBookingParams{
		TenantID:      uuid.New(),
		BookingTypeID: uuid.New(),
		CustomerName:  "Grace Hopper",
		CustomerEmail: "grace@example.com",
		CustomerPhone: "555-0100",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		Notes:         "first consultation",
	}
}

func paramsOf(b *booking.Booking) booking.NewBookingParams {
	return booking.NewBookingParams{
		TenantID:      b.TenantID(),
		BookingTypeID: b.BookingTypeID(),
		CustomerName:  b.CustomerName(),
		CustomerEmail: b.CustomerEmail(),
		CustomerPhone: b.CustomerPhone(),
		StartTime:     b.StartTime(),
		EndTime:       b.EndTime(),
		Notes:         b.Notes(),
	}
}

func TestNewBooking(t *testing.T) {
	t.Parallel()

	t.Run("success: contact fields are trimmed and everything else survives as given", func(t *testing.T) {
		params := validParams()
		params.CustomerName = "  Grace Hopper  "
		params.CustomerEmail = " grace@example.com "

		b, err := booking.NewBooking(params, false)
		require.NoError(t, err)

		expected := validParams()
		expected.TenantID = params.TenantID
		expected.BookingTypeID = params.BookingTypeID
		if diff := cmp.Diff(expected, paramsOf(b)); diff != "" {
			t.Errorf("Booking mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("success: approval-gated types start pending", func(t *testing.T) {
		b, err := booking.NewBooking(validParams(), true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	testCases := []struct {
		name   string
		mutate func(*booking.NewBookingParams)
		errIs  error
	}{
		{
			name:   "error: blank name",
			mutate: func(p *booking.NewBookingParams) { p.CustomerName = "   " },
			errIs:  booking.ErrMissingContact,
		},
		{
			name:   "error: blank email",
			mutate: func(p *booking.NewBookingParams) { p.CustomerEmail = "" },
			errIs:  booking.ErrMissingContact,
		},
		{
			name:   "error: zero-length interval",
			mutate: func(p *booking.NewBookingParams) { p.EndTime = p.StartTime },
			errIs:  booking.ErrInvalidInterval,
		},
		{
			name:   "error: inverted interval",
			mutate: func(p *booking.NewBookingParams) { p.EndTime = p.StartTime.Add(-time.Minute) },
			errIs:  booking.ErrInvalidInterval,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)

			_, err := booking.NewBooking(params, false)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBooking_Lifecycle(t *testing.T) {
	t.Parallel()

	t.Run("pending bookings confirm once", func(t *testing.T) {
		b, err := booking.NewBooking(validParams(), true)
		require.NoError(t, err)

		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.ErrorIs(t, b.Confirm(), booking.ErrNotPending)
	})

	t.Run("any live booking can be cancelled, but only once", func(t *testing.T) {
		b, err := booking.NewBooking(validParams(), false)
		require.NoError(t, err)

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
	})
}

func TestStatus_ConsumesCapacity(t *testing.T) {
	t.Parallel()

	assert.True(t, booking.StatusConfirmed.ConsumesCapacity(false))
	assert.False(t, booking.StatusPending.ConsumesCapacity(false))
	assert.True(t, booking.StatusPending.ConsumesCapacity(true))
	assert.False(t, booking.StatusCancelled.ConsumesCapacity(true))
}
