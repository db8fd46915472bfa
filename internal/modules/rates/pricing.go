package rates

import "time"

// Pricing holds the nightly and flat rates in whole COP.
type Pricing struct {
	StandardNight    int64
	HighNight        int64
	ExtraPersonNight int64
	DecorationFee    int64
}

func DefaultPricing() Pricing {
	return Pricing{
		StandardNight:    320000,
		HighNight:        395000,
		ExtraPersonNight: 90000,
		DecorationFee:    50000,
	}
}

// IsHighRateNight reports whether the night starting on the given date is
// charged the weekend rate: Friday and Saturday nights, plus the eve of a
// holiday (the guest sleeps into the rest day).
func IsHighRateNight(night time.Time) bool {
	wd := night.Weekday()
	if wd == time.Friday || wd == time.Saturday {
		return true
	}
	return IsHoliday(night.AddDate(0, 0, 1))
}

type Quote struct {
	Nights int   `json:"nights"`
	Total  int64 `json:"total"`
}

// Quote prices a stay over [checkIn, checkOut). An empty or inverted range
// yields the zero Quote; callers must treat zero nights as invalid input.
// The decoration fee is charged once per stay, not per night.
func (p Pricing) Quote(checkIn, checkOut time.Time, extraPerson, decoration bool) Quote {
	nights := NightsBetween(checkIn, checkOut)
	if len(nights) == 0 {
		return Quote{}
	}

	var total int64
	for _, night := range nights {
		if IsHighRateNight(night) {
			total += p.HighNight
		} else {
			total += p.StandardNight
		}
		if extraPerson {
			total += p.ExtraPersonNight
		}
	}
	if decoration {
		total += p.DecorationFee
	}

	return Quote{Nights: len(nights), Total: total}
}
