package repository

import (
	"context"
	"time"

	"glamping/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	ClientName       string    `gorm:"column:client_name"`
	ClientEmail      *string   `gorm:"column:client_email"`
	ClientPhone      string    `gorm:"column:client_phone"`
	CheckIn          time.Time `gorm:"column:check_in"`
	CheckOut         time.Time `gorm:"column:check_out"`
	Guests           int       `gorm:"column:guests"`
	ExtraPerson      bool      `gorm:"column:extra_person"`
	Decoration       bool      `gorm:"column:decoration"`
	DecorationReason *string   `gorm:"column:decoration_reason"`
	Cabins           int       `gorm:"column:cabins"`
	Extras           *string   `gorm:"column:extras"`
	TotalPrice       int64     `gorm:"column:total_price"`
	Status           string    `gorm:"column:status"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:               m.ID,
		ClientName:       m.ClientName,
		ClientEmail:      strVal(m.ClientEmail),
		ClientPhone:      m.ClientPhone,
		CheckIn:          m.CheckIn,
		CheckOut:         m.CheckOut,
		Guests:           m.Guests,
		ExtraPerson:      m.ExtraPerson,
		Decoration:       m.Decoration,
		DecorationReason: strVal(m.DecorationReason),
		Cabins:           m.Cabins,
		Extras:           strVal(m.Extras),
		TotalPrice:       m.TotalPrice,
		Status:           domain.BookingStatus(m.Status),
		CreatedAt:        m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:               b.ID,
		ClientName:       b.ClientName,
		ClientEmail:      strPtr(b.ClientEmail),
		ClientPhone:      b.ClientPhone,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Guests:           b.Guests,
		ExtraPerson:      b.ExtraPerson,
		Decoration:       b.Decoration,
		DecorationReason: strPtr(b.DecorationReason),
		Cabins:           b.Cabins,
		Extras:           strPtr(b.Extras),
		TotalPrice:       b.TotalPrice,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// List returns every booking, newest-created first.
func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ActiveInRange returns non-cancelled bookings whose [check_in, check_out)
// interval overlaps [from, to). Touching endpoints do not overlap.
func (r *BookingRepository) ActiveInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	return r.inRange(ctx, from, to, r.db.Where("status <> ?", string(domain.BookingCancelled)))
}

// ConfirmedInRange is ActiveInRange restricted to confirmed bookings.
func (r *BookingRepository) ConfirmedInRange(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	return r.inRange(ctx, from, to, r.db.Where("status = ?", string(domain.BookingConfirmed)))
}

func (r *BookingRepository) inRange(ctx context.Context, from, to time.Time, q *gorm.DB) ([]domain.Booking, error) {
	var models []bookingModel
	tx := q.WithContext(ctx).
		Where("NOT (check_out <= ? OR check_in >= ?)", from, to).
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the booking row for good. There is no soft delete.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
