package requests

type CreatePaymentIntent struct {
	// Price is the treatment price in major currency units; the usecase
	// converts it to minor units before calling the payment gateway.
	Price int64 `json:"price" validate:"required,gt=0"`
}

type RecordPayment struct {
	BookingID     string `json:"bookingId" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	TransactionID string `json:"transactionId" validate:"required"`
}
