package booking

import (
	"time"

	"glamping/internal/domain"
	"glamping/internal/modules/rates"
)

type CreateBookingRequest struct {
	ClientName       string `json:"client_name" validate:"required"`
	ClientEmail      string `json:"client_email" validate:"omitempty,email"`
	ClientPhone      string `json:"client_phone" validate:"required"`
	CheckIn          string `json:"check_in" validate:"required"`
	CheckOut         string `json:"check_out" validate:"required"`
	ExtraPerson      bool   `json:"extra_person"`
	Decoration       bool   `json:"decoration"`
	DecorationReason string `json:"decoration_reason"`
	Extras           string `json:"extras"`
}

// BookingResponse is the wire shape of a booking; dates go out as YYYY-MM-DD.
type BookingResponse struct {
	ID               int64  `json:"id"`
	ClientName       string `json:"client_name"`
	ClientEmail      string `json:"client_email,omitempty"`
	ClientPhone      string `json:"client_phone"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Guests           int    `json:"guests"`
	ExtraPerson      bool   `json:"extra_person"`
	Decoration       bool   `json:"decoration"`
	DecorationReason string `json:"decoration_reason,omitempty"`
	Cabins           int    `json:"cabins"`
	Extras           string `json:"extras,omitempty"`
	TotalPrice       int64  `json:"total_price"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

func NewBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ClientName:       b.ClientName,
		ClientEmail:      b.ClientEmail,
		ClientPhone:      b.ClientPhone,
		CheckIn:          rates.FormatDate(b.CheckIn),
		CheckOut:         rates.FormatDate(b.CheckOut),
		Guests:           b.Guests,
		ExtraPerson:      b.ExtraPerson,
		Decoration:       b.Decoration,
		DecorationReason: b.DecorationReason,
		Cabins:           b.Cabins,
		Extras:           b.Extras,
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
