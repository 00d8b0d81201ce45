package payments

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	BookingRepository contracts.BookingRepository
	PaymentGateway    contracts.PaymentGatewayService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGateway contracts.PaymentGatewayService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepository,
		BookingRepository: bookingRepository,
		PaymentGateway:    paymentGateway,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAmountKey, request.Price),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// Prices are stored in major units; the gateway bills in minor units.
	amountMinorUnits := request.Price * 100

	clientSecret, err := uc.PaymentGateway.CreateIntent(ctx, amountMinorUnits, uc.InternalConfig.Stripe.Currency)
	if err != nil {
		return nil, err
	}

	return &responses.PaymentIntent{ClientSecret: clientSecret}, nil
}

// RecordPayment settles a booking. The booking is flipped to paid by one
// conditional write that tolerates replays of the same transaction id, and the
// payment record is persisted through a transaction-id keyed upsert, so running
// the same confirmation twice changes nothing after the first run.
func (uc *paymentUsecase) RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		// No payment record is written for a booking that does not exist.
		return nil, exceptions.ErrBookingNotExist(fmt.Errorf("booking %s not found", request.BookingID))
	}
	if booking.Email != request.Email {
		return nil, exceptions.ErrEmailMismatch(fmt.Errorf("payment email does not match booking %s", request.BookingID))
	}

	matched, err := uc.BookingRepository.MarkPaid(ctx, request.BookingID, request.TransactionID)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, exceptions.ErrTransactionMismatch(fmt.Errorf("booking %s already settled by another transaction", request.BookingID))
	}

	now := time.Now().UTC()
	payment := &models.Payment{
		BookingID:     request.BookingID,
		Email:         request.Email,
		Amount:        request.Amount,
		TransactionID: request.TransactionID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	stored, err := uc.PaymentRepository.UpsertByTransactionID(ctx, payment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("paymentUsecase.RecordPayment settled booking",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	return buildPaymentResponse(stored), nil
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	return &responses.Payment{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Email:         payment.Email,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
	}
}
