package responses

type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

type Payment struct {
	ID            string `json:"id"`
	BookingID     string `json:"bookingId"`
	Email         string `json:"email"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transactionId"`
	CreatedAt     string `json:"createdAt"`
}
