package availability

import (
	"sort"
	"time"

	"glamping/internal/domain"
	"glamping/internal/modules/rates"
)

// DefaultMaxCabins is the total lodging capacity per night.
const DefaultMaxCabins = 2

// Result is the outcome of a capacity check. On rejection it carries the
// earliest conflicting night and the occupancy numbers for that night.
type Result struct {
	Available    bool   `json:"available"`
	ConflictDate string `json:"conflict_date,omitempty"`
	BookedCabins int    `json:"booked_cabins,omitempty"`
	MaxCabins    int    `json:"max_cabins,omitempty"`
}

type Engine struct {
	MaxCabins int
}

func NewEngine(maxCabins int) Engine {
	if maxCabins <= 0 {
		maxCabins = DefaultMaxCabins
	}
	return Engine{MaxCabins: maxCabins}
}

// occupancy sums cabins per night over [from, to), keyed by ISO date.
// Built fresh per call, never persisted or shared.
func occupancy(bookings []domain.Booking, from, to time.Time) map[string]int {
	cal := make(map[string]int)
	for _, b := range bookings {
		start, end := b.CheckIn, b.CheckOut
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		cabins := b.Cabins
		if cabins <= 0 {
			cabins = 1
		}
		for _, night := range rates.NightsBetween(start, end) {
			cal[rates.FormatDate(night)] += cabins
		}
	}
	return cal
}

// Check walks every night of [checkIn, checkOut) in chronological order and
// rejects on the first night where the extra cabins would exceed capacity.
// Cancelled bookings never occupy a cabin. Interval endpoints that merely
// touch do not overlap: a checkout day is free for a same-day check-in.
func (e Engine) Check(existing []domain.Booking, checkIn, checkOut time.Time, cabinsRequested int) Result {
	active := make([]domain.Booking, 0, len(existing))
	for _, b := range existing {
		if b.Status != domain.BookingCancelled {
			active = append(active, b)
		}
	}

	cal := occupancy(active, checkIn, checkOut)
	for _, night := range rates.NightsBetween(checkIn, checkOut) {
		day := rates.FormatDate(night)
		if cal[day]+cabinsRequested > e.MaxCabins {
			return Result{
				Available:    false,
				ConflictDate: day,
				BookedCabins: cal[day],
				MaxCabins:    e.MaxCabins,
			}
		}
	}

	return Result{Available: true}
}

// FullyBookedDates returns the sorted ISO dates in [from, to) where
// confirmed bookings alone already consume the whole capacity. Pending
// bookings do not block the public calendar; only confirmed ones do.
func (e Engine) FullyBookedDates(bookings []domain.Booking, from, to time.Time) []string {
	confirmed := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == domain.BookingConfirmed {
			confirmed = append(confirmed, b)
		}
	}

	cal := occupancy(confirmed, from, to)
	full := make([]string, 0)
	for day, count := range cal {
		if count >= e.MaxCabins {
			full = append(full, day)
		}
	}
	sort.Strings(full)
	return full
}
