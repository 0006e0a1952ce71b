//go:build unit

package booking_test

import (
	"testing"

	"fleet-rental/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	period := mustRange(t, "2025-12-24", "2025-12-27")
	total, err := booking.NewMoney(42000)
	require.NoError(t, err)

	b, err := booking.NewBooking(uuid.New(), uuid.New(), period, total, status)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("pending booking", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending)
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.True(t, b.IsBlocking())
		assert.Equal(t, int64(42000), b.TotalPrice().Cents())
	})

	t.Run("confirmed booking", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsBlocking())
	})

	t.Run("terminal statuses are not creatable", func(t *testing.T) {
		period := mustRange(t, "2025-12-24", "2025-12-27")
		total, err := booking.NewMoney(42000)
		require.NoError(t, err)

		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled, booking.Status("bogus")} {
			_, err := booking.NewBooking(uuid.New(), uuid.New(), period, total, status)
			assert.ErrorIs(t, err, booking.ErrInvalidStatus, "status=%s", status)
		}
	})

	t.Run("missing vehicle or user", func(t *testing.T) {
		period := mustRange(t, "2025-12-24", "2025-12-27")
		total, err := booking.NewMoney(42000)
		require.NoError(t, err)

		_, err = booking.NewBooking(uuid.Nil, uuid.New(), period, total, booking.StatusPending)
		assert.ErrorIs(t, err, booking.ErrMissingVehicle)

		_, err = booking.NewBooking(uuid.New(), uuid.Nil, period, total, booking.StatusPending)
		assert.ErrorIs(t, err, booking.ErrMissingUser)
	})
}

func TestBookingTransitions(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending)
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.IsBlocking())
	})

	t.Run("confirmed to completed", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed)
		require.NoError(t, b.Complete())
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.False(t, b.IsBlocking())
	})

	t.Run("confirmed to cancelled", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusConfirmed)
		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b := newTestBooking(t, booking.StatusPending)
		assert.ErrorIs(t, b.Complete(), booking.ErrInvalidTransition)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		cancelled := newTestBooking(t, booking.StatusPending)
		require.NoError(t, cancelled.Cancel())
		assert.ErrorIs(t, cancelled.Confirm(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, cancelled.Complete(), booking.ErrInvalidTransition)

		completed := newTestBooking(t, booking.StatusConfirmed)
		require.NoError(t, completed.Complete())
		assert.ErrorIs(t, completed.Cancel(), booking.ErrInvalidTransition)
		assert.ErrorIs(t, completed.Confirm(), booking.ErrInvalidTransition)
	})
}

func TestStatus(t *testing.T) {
	t.Run("blocking statuses", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]booking.Status{booking.StatusPending, booking.StatusConfirmed},
			booking.BlockingStatuses,
		)
	})

	t.Run("terminal detection", func(t *testing.T) {
		assert.False(t, booking.StatusPending.IsTerminal())
		assert.False(t, booking.StatusConfirmed.IsTerminal())
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
	})
}
