package admin

import (
	"context"

	"glamping/internal/domain"
)

// BookingRepository is the slice of the store the operator console needs.
type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}
