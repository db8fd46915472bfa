package rates

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD calendar date (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// NightsBetween enumerates the stayed nights in [checkIn, checkOut),
// one entry per calendar date. Empty when checkOut <= checkIn.
func NightsBetween(checkIn, checkOut time.Time) []time.Time {
	var nights []time.Time
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}
