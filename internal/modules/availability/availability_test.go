package availability

import (
	"testing"
	"time"

	"glamping/internal/domain"
	"glamping/internal/modules/rates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := rates.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stay(t *testing.T, checkIn, checkOut string, status domain.BookingStatus) domain.Booking {
	t.Helper()
	return domain.Booking{
		CheckIn:  date(t, checkIn),
		CheckOut: date(t, checkOut),
		Cabins:   1,
		Status:   status,
	}
}

func TestCheck_RejectsWhenCapacityReached(t *testing.T) {
	e := NewEngine(2)

	existing := []domain.Booking{
		stay(t, "2025-12-05", "2025-12-07", domain.BookingConfirmed),
		stay(t, "2025-12-05", "2025-12-06", domain.BookingConfirmed),
	}

	res := e.Check(existing, date(t, "2025-12-05"), date(t, "2025-12-06"), 1)

	assert.False(t, res.Available)
	assert.Equal(t, "2025-12-05", res.ConflictDate)
	assert.Equal(t, 2, res.BookedCabins)
	assert.Equal(t, 2, res.MaxCabins)
}

func TestCheck_CancelledBookingsDoNotOccupy(t *testing.T) {
	e := NewEngine(2)

	existing := []domain.Booking{
		stay(t, "2025-12-05", "2025-12-07", domain.BookingCancelled),
		stay(t, "2025-12-05", "2025-12-07", domain.BookingCancelled),
	}

	res := e.Check(existing, date(t, "2025-12-05"), date(t, "2025-12-07"), 1)

	assert.True(t, res.Available)
}

func TestCheck_PendingBookingsOccupy(t *testing.T) {
	e := NewEngine(2)

	existing := []domain.Booking{
		stay(t, "2025-12-05", "2025-12-06", domain.BookingPending),
		stay(t, "2025-12-05", "2025-12-06", domain.BookingConfirmed),
	}

	res := e.Check(existing, date(t, "2025-12-05"), date(t, "2025-12-06"), 1)

	assert.False(t, res.Available)
	assert.Equal(t, "2025-12-05", res.ConflictDate)
}

func TestCheck_CheckoutDayIsFreeForNewCheckIn(t *testing.T) {
	e := NewEngine(2)

	existing := []domain.Booking{
		stay(t, "2025-12-01", "2025-12-05", domain.BookingConfirmed),
		stay(t, "2025-12-01", "2025-12-05", domain.BookingConfirmed),
	}

	// the earlier stays check out on Dec 5, so that night is free
	res := e.Check(existing, date(t, "2025-12-05"), date(t, "2025-12-07"), 1)

	assert.True(t, res.Available)
}

func TestCheck_ReportsEarliestConflictNight(t *testing.T) {
	e := NewEngine(2)

	// capacity is reached only on Dec 6
	existing := []domain.Booking{
		stay(t, "2025-12-06", "2025-12-07", domain.BookingConfirmed),
		stay(t, "2025-12-06", "2025-12-07", domain.BookingPending),
	}

	res := e.Check(existing, date(t, "2025-12-04"), date(t, "2025-12-08"), 1)

	assert.False(t, res.Available)
	assert.Equal(t, "2025-12-06", res.ConflictDate)
	assert.Equal(t, 2, res.BookedCabins)
}

func TestCheck_PartialOverlapCountsOnlyRequestedNights(t *testing.T) {
	e := NewEngine(2)

	// one long stay plus one stay ending before the requested range
	existing := []domain.Booking{
		stay(t, "2025-12-01", "2025-12-10", domain.BookingConfirmed),
		stay(t, "2025-11-28", "2025-12-03", domain.BookingConfirmed),
	}

	res := e.Check(existing, date(t, "2025-12-04"), date(t, "2025-12-06"), 1)

	assert.True(t, res.Available)
}

func TestFullyBookedDates_ConfirmedOnly(t *testing.T) {
	e := NewEngine(2)

	bookings := []domain.Booking{
		stay(t, "2025-12-05", "2025-12-07", domain.BookingConfirmed),
		stay(t, "2025-12-05", "2025-12-06", domain.BookingConfirmed),
		// pending does not block the public calendar
		stay(t, "2025-12-06", "2025-12-07", domain.BookingPending),
	}

	full := e.FullyBookedDates(bookings, date(t, "2025-12-01"), date(t, "2025-12-31"))

	assert.Equal(t, []string{"2025-12-05"}, full)
}

func TestFullyBookedDates_SortedAndEmptyWhenFree(t *testing.T) {
	e := NewEngine(2)

	none := e.FullyBookedDates(nil, date(t, "2025-12-01"), date(t, "2025-12-31"))
	assert.Empty(t, none)
	assert.NotNil(t, none)

	bookings := []domain.Booking{
		stay(t, "2025-12-10", "2025-12-12", domain.BookingConfirmed),
		stay(t, "2025-12-10", "2025-12-12", domain.BookingConfirmed),
		stay(t, "2025-12-05", "2025-12-06", domain.BookingConfirmed),
		stay(t, "2025-12-05", "2025-12-06", domain.BookingConfirmed),
	}

	full := e.FullyBookedDates(bookings, date(t, "2025-12-01"), date(t, "2025-12-31"))
	assert.Equal(t, []string{"2025-12-05", "2025-12-10", "2025-12-11"}, full)
}

func TestFullyBookedDates_ClipsToRequestedWindow(t *testing.T) {
	e := NewEngine(2)

	bookings := []domain.Booking{
		stay(t, "2025-11-28", "2025-12-03", domain.BookingConfirmed),
		stay(t, "2025-11-28", "2025-12-03", domain.BookingConfirmed),
	}

	full := e.FullyBookedDates(bookings, date(t, "2025-12-01"), date(t, "2025-12-31"))

	assert.Equal(t, []string{"2025-12-01", "2025-12-02"}, full)
}
