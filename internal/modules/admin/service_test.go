package admin

import (
	"context"
	"testing"
	"time"

	"glamping/internal/domain"
	jwtsvc "glamping/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(t *testing.T, repo BookingRepository) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(repo, jwtsvc.New("test-secret", time.Hour), "admin", hash)
}

func TestService_Login(t *testing.T) {
	service := newTestService(t, new(MockBookingRepository))

	token, err := service.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login("intruder", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ListBookings_AppliesFilters(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything).Return(sampleBookings(t), nil)

	service := newTestService(t, repo)

	all, err := service.ListBookings(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	confirmed, err := service.ListBookings(context.Background(), "CONFIRMED", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(confirmed))

	windowed, err := service.ListBookings(context.Background(), "ALL", "2025-12-10", "2025-12-12")
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(windowed))
}

func TestService_ListBookings_BadFilterDate(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything).Return(sampleBookings(t), nil)

	service := newTestService(t, repo)

	_, err := service.ListBookings(context.Background(), "", "12/10/2025", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.BookingConfirmed).Return(nil)

	service := newTestService(t, repo)

	// the value is normalized before it reaches the store
	require.NoError(t, service.UpdateStatus(context.Background(), 5, "confirmed"))
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	repo := new(MockBookingRepository)
	service := newTestService(t, repo)

	err := service.UpdateStatus(context.Background(), 5, "APPROVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("UpdateStatus", mock.Anything, int64(404), domain.BookingCancelled).
		Return(gorm.ErrRecordNotFound)

	service := newTestService(t, repo)

	err := service.UpdateStatus(context.Background(), 404, "CANCELLED")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)
	repo.On("Delete", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	service := newTestService(t, repo)

	require.NoError(t, service.Delete(context.Background(), 5))
	assert.ErrorIs(t, service.Delete(context.Background(), 404), ErrNotFound)
}
