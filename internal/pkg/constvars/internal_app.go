package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
	CONTEXT_USER_EMAIL_KEY contextKey = "user_email"
)

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

const (
	// AppointmentDateLayout is the normalized calendar-date form used across
	// bookings and availability reads. No timezone arithmetic is performed on it.
	AppointmentDateLayout = "2006-01-02"

	StripeCurrencyUSD = "usd"
)

const (
	RedisKeyTreatmentCatalog        = "treatments:catalog"
	RedisTreatmentCatalogTTLMinutes = 10
)

const (
	MongoCollectionTreatments = "treatments"
	MongoCollectionBookings   = "bookings"
	MongoCollectionUsers      = "users"
	MongoCollectionDoctors    = "doctors"
	MongoCollectionPayments   = "payments"
)

const (
	// Index names are matched against duplicate-key write errors to tell a
	// duplicate booking apart from a taken slot.
	MongoIndexUniquePatientBooking = "unique_patient_treatment_date"
	MongoIndexUniqueSlotBooking    = "unique_treatment_date_slot"
	MongoIndexUniqueTransaction    = "unique_transaction_id"
	MongoIndexUniqueUserEmail      = "unique_user_email"
	MongoIndexUniqueTreatmentName  = "unique_treatment_name"
)
