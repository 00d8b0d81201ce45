package constvars

const (
	GetTreatmentsSuccessMessage     = "Successfully retrieved treatment availability"
	GetSpecialtiesSuccessMessage    = "Successfully retrieved treatment specialties"
	CreateTreatmentSuccessMessage   = "Successfully created treatment"
	GetBookingsSuccessMessage       = "Successfully retrieved bookings"
	GetBookingSuccessMessage        = "Successfully retrieved booking"
	CreateBookingSuccessMessage     = "Successfully created booking"
	CreatePaymentIntentSuccess      = "Successfully created payment intent"
	RecordPaymentSuccessMessage     = "Successfully recorded payment"
	IssueTokenSuccessMessage        = "Successfully issued access token"
	UpsertUserSuccessMessage        = "Successfully saved user"
	GetUsersSuccessMessage          = "Successfully retrieved users"
	CheckAdminSuccessMessage        = "Successfully checked admin role"
	GrantAdminSuccessMessage        = "Successfully granted admin role"
	GetDoctorsSuccessMessage        = "Successfully retrieved doctors"
	CreateDoctorSuccessMessage      = "Successfully created doctor"
	DeleteDoctorSuccessMessage      = "Successfully deleted doctor"
)
