package admin

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

func sampleBookings(t *testing.T) []domain.Booking {
	t.Helper()
	return []domain.Booking{
		{ID: 1, CheckIn: date(t, "2025-12-05"), CheckOut: date(t, "2025-12-07"), Status: domain.BookingPending},
		{ID: 2, CheckIn: date(t, "2025-12-10"), CheckOut: date(t, "2025-12-12"), Status: domain.BookingConfirmed},
		{ID: 3, CheckIn: date(t, "2025-12-20"), CheckOut: date(t, "2025-12-22"), Status: domain.BookingCancelled},
	}
}

func ids(list []domain.Booking) []int64 {
	out := make([]int64, 0, len(list))
	for _, b := range list {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterByStatus(t *testing.T) {
	list := sampleBookings(t)

	assert.Equal(t, []int64{2}, ids(FilterByStatus(list, "CONFIRMED")))
	assert.Equal(t, []int64{2}, ids(FilterByStatus(list, "confirmed")))
	assert.Equal(t, []int64{1, 2, 3}, ids(FilterByStatus(list, StatusAll)))
	assert.Equal(t, []int64{1, 2, 3}, ids(FilterByStatus(list, "")))
	assert.Empty(t, FilterByStatus(list, "NOPE"))
}

func TestFilterFrom_InclusiveBoundary(t *testing.T) {
	list := sampleBookings(t)

	assert.Equal(t, []int64{2, 3}, ids(FilterFrom(list, date(t, "2025-12-10"))))
	assert.Equal(t, []int64{1, 2, 3}, ids(FilterFrom(list, date(t, "2025-12-05"))))
}

func TestFilterTo_InclusiveBoundary(t *testing.T) {
	list := sampleBookings(t)

	assert.Equal(t, []int64{1, 2}, ids(FilterTo(list, date(t, "2025-12-12"))))
	assert.Equal(t, []int64{1}, ids(FilterTo(list, date(t, "2025-12-07"))))
}

func TestFilters_Combine(t *testing.T) {
	list := sampleBookings(t)

	filtered := FilterByStatus(list, "CONFIRMED")
	filtered = FilterFrom(filtered, date(t, "2025-12-01"))
	filtered = FilterTo(filtered, date(t, "2025-12-15"))

	assert.Equal(t, []int64{2}, ids(filtered))
}
