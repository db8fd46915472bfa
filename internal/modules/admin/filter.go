package admin

import (
	"strings"
	"time"

	"glamping/internal/domain"
)

// StatusAll is the pass-through filter value that keeps every status.
const StatusAll = "ALL"

// The filters below are pure and stateless: they operate on an
// already-fetched list, apply independently and combine in any order.

func FilterByStatus(in []domain.Booking, status string) []domain.Booking {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" || status == StatusAll {
		return in
	}

	out := make([]domain.Booking, 0, len(in))
	for _, b := range in {
		if string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out
}

// FilterFrom keeps bookings checking in on or after the given date.
func FilterFrom(in []domain.Booking, from time.Time) []domain.Booking {
	out := make([]domain.Booking, 0, len(in))
	for _, b := range in {
		if !b.CheckIn.Before(from) {
			out = append(out, b)
		}
	}
	return out
}

// FilterTo keeps bookings checking out on or before the given date.
func FilterTo(in []domain.Booking, to time.Time) []domain.Booking {
	out := make([]domain.Booking, 0, len(in))
	for _, b := range in {
		if !b.CheckOut.After(to) {
			out = append(out, b)
		}
	}
	return out
}
