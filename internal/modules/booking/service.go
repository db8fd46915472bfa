package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"glamping/internal/domain"
	"glamping/internal/modules/availability"
	"glamping/internal/modules/rates"
)

// cabinsPerBooking is fixed: every request takes exactly one cabin.
const cabinsPerBooking = 1

type Service struct {
	bookings BookingRepository
	engine   availability.Engine
	pricing  rates.Pricing
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	engine availability.Engine,
	pricing rates.Pricing,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		engine:   engine,
		pricing:  pricing,
		notifs:   notifs,
	}
}

// CreateBooking validates the request, checks capacity, prices the stay and
// persists a PENDING record. The availability check and the insert are two
// sequential operations without a spanning lock; two concurrent submissions
// for the last free cabin can both pass the check. Known limitation.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := rates.ParseDate(req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := rates.ParseDate(req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	if req.Decoration && strings.TrimSpace(req.DecorationReason) == "" {
		return nil, ErrValidation
	}

	existing, err := s.bookings.ActiveInRange(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	result := s.engine.Check(existing, checkIn, checkOut, cabinsPerBooking)
	if !result.Available {
		return nil, &ConflictError{
			Date:         result.ConflictDate,
			BookedCabins: result.BookedCabins,
			MaxCabins:    result.MaxCabins,
		}
	}

	quote := s.pricing.Quote(checkIn, checkOut, req.ExtraPerson, req.Decoration)

	guests := 2
	if req.ExtraPerson {
		guests = 3
	}

	b := &domain.Booking{
		ClientName:       strings.TrimSpace(req.ClientName),
		ClientEmail:      strings.TrimSpace(req.ClientEmail),
		ClientPhone:      strings.TrimSpace(req.ClientPhone),
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           guests,
		ExtraPerson:      req.ExtraPerson,
		Decoration:       req.Decoration,
		DecorationReason: strings.TrimSpace(req.DecorationReason),
		Cabins:           cabinsPerBooking,
		Extras:           strings.TrimSpace(req.Extras),
		TotalPrice:       quote.Total,
		Status:           domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	// best-effort confirmation mail; a send failure never fails the booking
	if s.notifs != nil && b.ClientEmail != "" {
		notified := *b
		go func() {
			if err := s.notifs.SendBookingReceived(context.Background(), &notified); err != nil {
				log.Printf("booking email failed booking_id=%d email=%s error=%v", notified.ID, notified.ClientEmail, err)
			}
		}()
	}

	return b, nil
}

// CheckAvailability is the public probe; it is advisory only, the
// authoritative check re-runs inside CreateBooking at submission time.
func (s *Service) CheckAvailability(ctx context.Context, fromStr, toStr string) (availability.Result, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return availability.Result{}, err
	}

	existing, err := s.bookings.ActiveInRange(ctx, from, to)
	if err != nil {
		return availability.Result{}, err
	}

	return s.engine.Check(existing, from, to, cabinsPerBooking), nil
}

// FullyBookedDates feeds the public calendar with dates confirmed bookings
// have filled completely.
func (s *Service) FullyBookedDates(ctx context.Context, fromStr, toStr string) ([]string, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	confirmed, err := s.bookings.ConfirmedInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return s.engine.FullyBookedDates(confirmed, from, to), nil
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := rates.ParseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	to, err := rates.ParseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return from, to, nil
}
