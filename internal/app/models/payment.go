package models

// Payment records a confirmed payment for a booking. Created once, immutable
// after creation; a unique index on TransactionID makes replayed writes
// collapse into the original record.
type Payment struct {
	ID            string `bson:"_id,omitempty"`
	BookingID     string `bson:"bookingId"`
	Email         string `bson:"email"`
	Amount        int64  `bson:"amount"`
	TransactionID string `bson:"transactionId"`
	TimeModel     `bson:",inline"`
}
