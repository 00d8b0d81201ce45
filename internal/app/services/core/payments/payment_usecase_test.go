package payments

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepository struct {
	payments map[string]models.Payment
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{payments: make(map[string]models.Payment)}
}

func (f *fakePaymentRepository) UpsertByTransactionID(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	if existing, ok := f.payments[payment.TransactionID]; ok {
		return &existing, nil
	}
	stored := *payment
	stored.ID = fmt.Sprintf("payment-%d", len(f.payments)+1)
	f.payments[payment.TransactionID] = stored
	return &stored, nil
}

type fakeBookingStore struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingStore) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	return "", nil
}

func (f *fakeBookingStore) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return f.bookings[bookingID], nil
}

func (f *fakeBookingStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) FindByTreatmentAndDate(ctx context.Context, treatment, date string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingStore) MarkPaid(ctx context.Context, bookingID, transactionID string) (bool, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return false, nil
	}
	if booking.PaymentStatus == constvars.PaymentStatusUnpaid || booking.TransactionID == transactionID {
		booking.PaymentStatus = constvars.PaymentStatusPaid
		booking.TransactionID = transactionID
		return true, nil
	}
	return false, nil
}

type fakeGateway struct {
	clientSecret string
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	f.lastAmount = amountMinorUnits
	f.lastCurrency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.clientSecret, nil
}

func testInternalConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.Stripe.Currency = "usd"
	return cfg
}

func TestCreatePaymentIntent(t *testing.T) {
	gateway := &fakeGateway{clientSecret: "pi_123_secret_456"}
	uc := NewPaymentUsecase(newFakePaymentRepository(), &fakeBookingStore{}, gateway, testInternalConfig(), zap.NewNop())

	intent, err := uc.CreatePaymentIntent(context.Background(), &requests.CreatePaymentIntent{Price: 50})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", intent.ClientSecret)
	assert.Equal(t, int64(5000), gateway.lastAmount)
	assert.Equal(t, "usd", gateway.lastCurrency)
}

func TestCreatePaymentIntentRejectsNonPositivePrice(t *testing.T) {
	uc := NewPaymentUsecase(newFakePaymentRepository(), &fakeBookingStore{}, &fakeGateway{}, testInternalConfig(), zap.NewNop())

	_, err := uc.CreatePaymentIntent(context.Background(), &requests.CreatePaymentIntent{Price: 0})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
}

func TestRecordPayment(t *testing.T) {
	validRequest := func() *requests.RecordPayment {
		return &requests.RecordPayment{
			BookingID:     "b1",
			Email:         "pat@example.com",
			Amount:        50,
			TransactionID: "txn_1",
		}
	}

	newBookingStore := func() *fakeBookingStore {
		return &fakeBookingStore{bookings: map[string]*models.Booking{
			"b1": {
				ID:              "b1",
				Email:           "pat@example.com",
				Treatment:       "Teeth Cleaning",
				AppointmentDate: "2026-09-10",
				Slot:            "08.00-09.00",
				PaymentStatus:   constvars.PaymentStatusUnpaid,
			},
		}}
	}

	t.Run("settles the booking and records the payment", func(t *testing.T) {
		bookingStore := newBookingStore()
		paymentRepo := newFakePaymentRepository()
		uc := NewPaymentUsecase(paymentRepo, bookingStore, &fakeGateway{}, testInternalConfig(), zap.NewNop())

		payment, err := uc.RecordPayment(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "txn_1", payment.TransactionID)
		assert.Equal(t, constvars.PaymentStatusPaid, bookingStore.bookings["b1"].PaymentStatus)
		assert.Len(t, paymentRepo.payments, 1)
	})

	t.Run("replaying the same transaction changes nothing", func(t *testing.T) {
		bookingStore := newBookingStore()
		paymentRepo := newFakePaymentRepository()
		uc := NewPaymentUsecase(paymentRepo, bookingStore, &fakeGateway{}, testInternalConfig(), zap.NewNop())

		first, err := uc.RecordPayment(context.Background(), validRequest())
		require.NoError(t, err)

		second, err := uc.RecordPayment(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, paymentRepo.payments, 1)
		assert.Equal(t, "txn_1", bookingStore.bookings["b1"].TransactionID)
	})

	t.Run("a different transaction cannot settle a paid booking", func(t *testing.T) {
		bookingStore := newBookingStore()
		paymentRepo := newFakePaymentRepository()
		uc := NewPaymentUsecase(paymentRepo, bookingStore, &fakeGateway{}, testInternalConfig(), zap.NewNop())

		_, err := uc.RecordPayment(context.Background(), validRequest())
		require.NoError(t, err)

		conflicting := validRequest()
		conflicting.TransactionID = "txn_2"
		_, err = uc.RecordPayment(context.Background(), conflicting)
		require.Error(t, err)
		assert.True(t, exceptions.IsConflict(err))
		assert.Len(t, paymentRepo.payments, 1)
		assert.Equal(t, "txn_1", bookingStore.bookings["b1"].TransactionID)
	})

	t.Run("missing booking writes no payment record", func(t *testing.T) {
		paymentRepo := newFakePaymentRepository()
		uc := NewPaymentUsecase(paymentRepo, &fakeBookingStore{bookings: map[string]*models.Booking{}}, &fakeGateway{}, testInternalConfig(), zap.NewNop())

		_, err := uc.RecordPayment(context.Background(), validRequest())
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
		assert.Empty(t, paymentRepo.payments)
	})

	t.Run("email must match the booking", func(t *testing.T) {
		bookingStore := newBookingStore()
		uc := NewPaymentUsecase(newFakePaymentRepository(), bookingStore, &fakeGateway{}, testInternalConfig(), zap.NewNop())

		mismatched := validRequest()
		mismatched.Email = "someone-else@example.com"
		_, err := uc.RecordPayment(context.Background(), mismatched)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, constvars.StatusForbidden))
		assert.Equal(t, constvars.PaymentStatusUnpaid, bookingStore.bookings["b1"].PaymentStatus)
	})
}
