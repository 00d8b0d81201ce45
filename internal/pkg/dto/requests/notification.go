package requests

// BookingNotification is the payload published to the notification queue after
// a booking write commits.
type BookingNotification struct {
	Email           string `json:"email"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
}
