package responses

type Booking struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
	Price           int64  `json:"price"`
	PaymentStatus   string `json:"paymentStatus"`
	TransactionID   string `json:"transactionId,omitempty"`
}

// BookingResult is the outcome of a booking submission. Exactly one of
// Booking or Message is meaningful: Acknowledged=false carries the
// duplicate-rejection explanation and no new record exists.
type BookingResult struct {
	Acknowledged bool     `json:"acknowledged"`
	Booking      *Booking `json:"booking,omitempty"`
	Message      string   `json:"message,omitempty"`
}
