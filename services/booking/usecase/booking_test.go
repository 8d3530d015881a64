package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambunet/dispatch/internal/pkg/apperrors"
	"github.com/ambunet/dispatch/internal/pkg/models"
	"github.com/ambunet/dispatch/services/booking/mocks"
)

type testDeps struct {
	repo     *mocks.MockBookingRepo
	accounts *mocks.MockAccountStore
	gw       *mocks.MockBookingGW
}

func newTestUC(t *testing.T) (*testDeps, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		repo:     mocks.NewMockBookingRepo(ctrl),
		accounts: mocks.NewMockAccountStore(ctrl),
		gw:       mocks.NewMockBookingGW(ctrl),
	}
	return deps, ctrl
}

func testConfig() *models.Config {
	return &models.Config{
		Booking: models.BookingConfig{
			DefaultBaseFare: 500,
			MaxDiscountRate: 0.5,
		},
	}
}

func TestCreateBooking_AppliesOrganizationDiscount(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	userID := uuid.New()
	ambulanceID := uuid.New()

	deps.accounts.EXPECT().
		GetDiscountRate(gomock.Any(), userID).
		Return(0.2, nil)
	deps.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, 100.0, b.BaseFare)
			assert.Equal(t, 20.0, b.Discount)
			assert.Equal(t, 80.0, b.FinalFare)
			b.ID = uuid.New()
			b.Status = models.BookingStatusPending
			return nil
		})
	deps.gw.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	b, err := uc.CreateBooking(context.Background(), models.CreateBookingRequest{
		UserID:         userID,
		AmbulanceID:    ambulanceID,
		PickupLocation: "Dhanmondi 27",
		Destination:    "Square Hospital",
		BaseFare:       100,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, 80.0, b.FinalFare)
}

func TestCreateBooking_DefaultBaseFare(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	userID := uuid.New()

	deps.accounts.EXPECT().
		GetDiscountRate(gomock.Any(), userID).
		Return(0.0, nil)
	deps.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Booking) error {
			assert.Equal(t, 500.0, b.BaseFare)
			assert.Equal(t, 500.0, b.FinalFare)
			return nil
		})
	deps.gw.EXPECT().
		PublishBookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err = uc.CreateBooking(context.Background(), models.CreateBookingRequest{
		UserID:         userID,
		AmbulanceID:    uuid.New(),
		PickupLocation: "Uttara",
		Destination:    "Kurmitola General Hospital",
	})

	assert.NoError(t, err)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	_, err = uc.CreateBooking(context.Background(), models.CreateBookingRequest{
		UserID:      uuid.New(),
		AmbulanceID: uuid.New(),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCreateBooking_BusyAmbulanceConflict(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	userID := uuid.New()
	ambulanceID := uuid.New()

	deps.accounts.EXPECT().
		GetDiscountRate(gomock.Any(), userID).
		Return(0.0, nil)
	deps.repo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		Return(apperrors.Conflict("ambulance %s is busy", ambulanceID))

	_, err = uc.CreateBooking(context.Background(), models.CreateBookingRequest{
		UserID:         userID,
		AmbulanceID:    ambulanceID,
		PickupLocation: "Mirpur 10",
		Destination:    "National Heart Institute",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestAcceptBooking_Success(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	bookingID := uuid.New()
	driverID := uuid.New()

	accepted := &models.Booking{ID: bookingID, DriverID: &driverID, Status: models.BookingStatusAccepted}

	deps.repo.EXPECT().
		AcceptBooking(gomock.Any(), bookingID, driverID).
		Return(accepted, nil)
	deps.gw.EXPECT().
		PublishBookingAccepted(gomock.Any(), accepted).
		Return(nil)

	b, err := uc.AcceptBooking(context.Background(), bookingID, driverID)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, b.Status)
}

func TestAcceptBooking_AlreadyAccepted(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	bookingID := uuid.New()
	driverID := uuid.New()

	deps.repo.EXPECT().
		AcceptBooking(gomock.Any(), bookingID, driverID).
		Return(nil, apperrors.Conflict("booking %s is accepted", bookingID))

	_, err = uc.AcceptBooking(context.Background(), bookingID, driverID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestCompleteBooking_PublishFailureDoesNotFail(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	bookingID := uuid.New()
	completed := &models.Booking{ID: bookingID, Status: models.BookingStatusCompleted}

	deps.repo.EXPECT().
		CompleteBooking(gomock.Any(), bookingID).
		Return(completed, nil)
	deps.gw.EXPECT().
		PublishBookingCompleted(gomock.Any(), completed).
		Return(errors.New("nats unavailable"))

	b, err := uc.CompleteBooking(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, b.Status)
}

func TestCancelBooking_TerminalConflict(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	bookingID := uuid.New()

	deps.repo.EXPECT().
		CancelBooking(gomock.Any(), bookingID).
		Return(nil, apperrors.Conflict("booking %s is completed", bookingID))

	_, err = uc.CancelBooking(context.Background(), bookingID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestRecordReview_Success(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	userID := uuid.New()
	bookingID := uuid.New()

	deps.repo.EXPECT().
		CreateReview(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(_ context.Context, review *models.Review, _ uuid.UUID) error {
			assert.Equal(t, bookingID, review.BookingID)
			assert.Equal(t, 5, review.Rating)
			review.ID = uuid.New()
			return nil
		})
	deps.gw.EXPECT().
		PublishReviewRecorded(gomock.Any(), gomock.Any()).
		Return(nil)

	review, err := uc.RecordReview(context.Background(), userID, models.RecordReviewRequest{
		BookingID: bookingID,
		Rating:    5,
		Comment:   "fast response",
	})

	assert.NoError(t, err)
	assert.NotNil(t, review)
}

func TestRecordReview_RatingOutOfRange(t *testing.T) {
	deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	uc, err := NewBookingUC(testConfig(), deps.repo, deps.accounts, deps.gw)
	require.NoError(t, err)

	for _, rating := range []int{0, 6, -1} {
		_, err = uc.RecordReview(context.Background(), uuid.New(), models.RecordReviewRequest{
			BookingID: uuid.New(),
			Rating:    rating,
		})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}
}
