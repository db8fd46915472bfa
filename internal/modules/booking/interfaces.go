package booking

import (
	"context"
	"time"

	"glamping/internal/domain"
)

// BookingRepository is the slice of the store this module needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	ActiveInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	ConfirmedInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// NotificationSender delivers the best-effort client confirmation email.
type NotificationSender interface {
	SendBookingReceived(ctx context.Context, b *domain.Booking) error
}
