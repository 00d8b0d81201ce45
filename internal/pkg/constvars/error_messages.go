package constvars

// Client-facing messages. Kept stable; handlers and tests rely on them.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientTreatmentNotFound             = "The requested treatment does not exist"
	ErrClientSlotNotInCatalog              = "The requested slot is not offered for this treatment"
	ErrClientSlotAlreadyTaken              = "The requested slot has already been taken for that date"
	ErrClientAlreadyBookedFormat           = "You already have a booking on %s"
	ErrClientTreatmentAlreadyExists        = "A treatment with that name already exists"
	ErrClientBookingNotFound               = "The referenced booking does not exist"
	ErrClientUserNotFound                  = "The referenced user does not exist"
	ErrClientDoctorNotFound                = "The referenced doctor does not exist"
	ErrClientPaymentGatewayUnavailable     = "The payment provider is currently unavailable, please try again"
)

// Developer messages. Logged, never sent to clients in production.
const (
	ErrDevValidationFailed            = "request validation failed"
	ErrDevCannotParseJSON             = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON           = "failed to marshal JSON"
	ErrDevCannotParseDate             = "failed to parse appointment date"
	ErrDevAuthTokenMissing            = "authorization token missing from request"
	ErrDevAuthTokenInvalid            = "authorization token invalid or expired"
	ErrDevAuthGenerateToken           = "failed to sign access token"
	ErrDevAuthSigningMethod           = "unexpected token signing method"
	ErrDevAuthNotAdmin                = "subject does not hold the admin role"
	ErrDevAuthEmailMismatch           = "token subject does not match requested email"
	ErrDevURLParamIDValidationFailed  = "failed to validate URL param '%s'"
	ErrDevTreatmentNotExists          = "treatment does not exist"
	ErrDevTreatmentAlreadyExists      = "treatment name already present in catalog"
	ErrDevSlotNotInCatalog            = "slot label not present in treatment slot set"
	ErrDevBookingNotExists            = "booking does not exist"
	ErrDevUserNotExists               = "user does not exist"
	ErrDevDoctorNotExists             = "doctor does not exist"
	ErrDevDuplicateBooking            = "duplicate booking for (patient, treatment, date)"
	ErrDevSlotAlreadyBooked           = "slot already consumed for (treatment, date)"
	ErrDevTransactionMismatch         = "booking already paid with a different transaction id"
	ErrDevDBFailedToFindDocument      = "database failed to find document"
	ErrDevDBFailedToIterateDocuments  = "database failed to iterate documents"
	ErrDevDBFailedToInsertDocument    = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument    = "database failed to update document"
	ErrDevDBFailedToUpsertDocument    = "database failed to upsert document"
	ErrDevDBFailedToDeleteDocument    = "database failed to delete document"
	ErrDevDBStringNotObjectID         = "identifier is not a valid object id"
	ErrDevRedisFailedToSet            = "redis failed to set key"
	ErrDevRedisFailedToGet            = "redis failed to get key"
	ErrDevRedisFailedToDelete         = "redis failed to delete key"
	ErrDevQueueFailedToPublish        = "failed to publish message to queue"
	ErrDevSMTPFailedToSend            = "smtp failed to send email via host %s"
	ErrDevMinioFailedToCreateObject   = "minio failed to create object in bucket %s"
	ErrDevPaymentGatewayRequestFailed = "payment gateway request failed"
	ErrDevMissingRequestID            = "request id missing from context"
	ErrDevServerDeadlineExceeded      = "request deadline exceeded"
)
