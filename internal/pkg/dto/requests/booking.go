package requests

type CreateBooking struct {
	Email           string `json:"email" validate:"required,email"`
	Treatment       string `json:"treatment" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	Slot            string `json:"slot" validate:"required"`
}
