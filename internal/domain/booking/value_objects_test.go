//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleet-rental/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) booking.DateRange {
	t.Helper()
	r, err := booking.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestDateRange(t *testing.T) {
	t.Run("parse and normalize", func(t *testing.T) {
		r := mustRange(t, "2025-12-24", "2025-12-27")
		assert.Equal(t, time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2025, 12, 27, 0, 0, 0, 0, time.UTC), r.End())
		assert.Equal(t, 4, r.NumDays())
	})

	t.Run("single day range is valid", func(t *testing.T) {
		r := mustRange(t, "2025-12-24", "2025-12-24")
		assert.Equal(t, 1, r.NumDays())
		assert.Len(t, r.Days(), 1)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := booking.ParseDateRange("2025-12-27", "2025-12-24")
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		for _, bad := range []string{"2025/12/24", "24-12-2025", "2025-13-01", "not-a-date", ""} {
			_, err := booking.ParseDateRange(bad, "2025-12-27")
			assert.ErrorIs(t, err, booking.ErrMalformedDate, "start=%q", bad)
		}
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*3600)
		r, err := booking.NewDateRange(
			time.Date(2025, 12, 24, 23, 59, 59, 0, time.UTC),
			time.Date(2025, 12, 26, 9, 30, 0, 0, loc),
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC), r.Start())
		assert.Equal(t, time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC), r.End())
	})

	t.Run("days are ascending and inclusive", func(t *testing.T) {
		r := mustRange(t, "2025-12-24", "2025-12-27")
		days := r.Days()
		require.Len(t, days, 4)
		assert.Equal(t, "2025-12-24", days[0].Format(booking.DateLayout))
		assert.Equal(t, "2025-12-27", days[3].Format(booking.DateLayout))
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := "2025-12-10"
	baseEnd := "2025-12-15"

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical", "2025-12-10", "2025-12-15", true},
		{"contained", "2025-12-11", "2025-12-14", true},
		{"containing", "2025-12-09", "2025-12-16", true},
		{"partial front", "2025-12-08", "2025-12-10", true},
		{"partial back", "2025-12-15", "2025-12-18", true},
		{"shared boundary day only", "2025-12-15", "2025-12-15", true},
		{"adjacent before", "2025-12-08", "2025-12-09", false},
		{"adjacent after", "2025-12-16", "2025-12-18", false},
		{"disjoint", "2025-12-01", "2025-12-05", false},
	}

	r := mustRange(t, base, baseEnd)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.want, r.Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(r), "overlap must be symmetric")
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("add", func(t *testing.T) {
		a, err := booking.NewMoney(10000)
		require.NoError(t, err)
		b, err := booking.NewMoney(5000)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), a.Add(b).Cents())
	})
}
