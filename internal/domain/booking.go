package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Valid reports whether s is one of the three known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is a reservation request for one cabin over [CheckIn, CheckOut).
// CheckOut is the departure date: it is never charged and never occupies
// a cabin, so a new stay may check in that same day.
type Booking struct {
	ID               int64         `json:"id" gorm:"primaryKey"`
	ClientName       string        `json:"client_name"`
	ClientEmail      string        `json:"client_email,omitempty"`
	ClientPhone      string        `json:"client_phone"`
	CheckIn          time.Time     `json:"check_in"`
	CheckOut         time.Time     `json:"check_out"`
	Guests           int           `json:"guests"`
	ExtraPerson      bool          `json:"extra_person"`
	Decoration       bool          `json:"decoration"`
	DecorationReason string        `json:"decoration_reason,omitempty" gorm:"type:text"`
	Cabins           int           `json:"cabins"`
	Extras           string        `json:"extras,omitempty" gorm:"type:text"`
	TotalPrice       int64         `json:"total_price"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}
