package notification

import (
	"context"
	"log"

	"glamping/internal/domain"
)

// Sender delivers the client-facing booking mail. Implementations are
// best-effort: callers log failures and move on.
type Sender interface {
	SendBookingReceived(ctx context.Context, b *domain.Booking) error
}

// ConsoleSender logs instead of sending, for local development.
type ConsoleSender struct {
	enabled bool
}

func NewConsoleSender(enabled bool) *ConsoleSender {
	return &ConsoleSender{enabled: enabled}
}

func (m *ConsoleSender) SendBookingReceived(_ context.Context, b *domain.Booking) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] booking received booking_id=%d email=%s total=%d", b.ID, b.ClientEmail, b.TotalPrice)
	}
	return nil
}
