package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	// UpsertByTransactionID inserts the payment unless one with the same
	// transaction id already exists, in which case the existing record is
	// returned untouched.
	UpsertByTransactionID(ctx context.Context, payment *models.Payment) (*models.Payment, error)
}

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	RecordPayment(ctx context.Context, request *requests.RecordPayment) (*responses.Payment, error)
}

// PaymentGatewayService is the external payment processor. CreateIntent is a
// synchronous pass-through that mutates nothing locally.
type PaymentGatewayService interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}
