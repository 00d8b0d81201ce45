package models

import "doctorsportal-service/internal/pkg/constvars"

// Booking is a patient's claim on one slot of one treatment on one date.
// Treatment references the catalog entry by name; the pair of unique compound
// indexes on the collection enforces the one-booking-per-(patient, treatment,
// date) and one-booking-per-(treatment, date, slot) rules at write time.
type Booking struct {
	ID              string `bson:"_id,omitempty"`
	Email           string `bson:"email"`
	Treatment       string `bson:"treatment"`
	AppointmentDate string `bson:"appointmentDate"`
	Slot            string `bson:"slot"`
	Price           int64  `bson:"price"`
	PaymentStatus   string `bson:"paymentStatus"`
	// TransactionID is set exactly once, when the booking transitions to paid.
	TransactionID string    `bson:"transactionId,omitempty"`
	TimeModel     `bson:",inline"`
}

func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == constvars.PaymentStatusPaid
}
