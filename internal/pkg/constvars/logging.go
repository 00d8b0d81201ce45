package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingUserEmailKey     = "user_email"
	LoggingTreatmentKey     = "treatment"
	LoggingAppointmentDate  = "appointment_date"
	LoggingSlotKey          = "slot"
	LoggingBookingIDKey     = "booking_id"
	LoggingTransactionIDKey = "transaction_id"
	LoggingAmountKey        = "amount"
	LoggingUserIDKey        = "user_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingQueueKey         = "queue"
	LoggingRedisKey         = "redis_key"
	LoggingResponseCountKey = "response_count"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
)
