package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	// InsertBooking performs a single conditional insert. The collection's
	// unique compound indexes reject duplicate (patient, treatment, date)
	// bookings and double-booked (treatment, date, slot) combinations; the
	// implementation translates those rejections into conflict errors.
	InsertBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)

	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
	FindByTreatmentAndDate(ctx context.Context, treatment, appointmentDate string) ([]models.Booking, error)

	// MarkPaid transitions the booking to paid and sets its transaction id in
	// one conditional write. The filter matches an unpaid booking or a replay
	// carrying the same transaction id, so retries are idempotent and a
	// different transaction id never overwrites the recorded one. It reports
	// whether any document matched.
	MarkPaid(ctx context.Context, bookingID, transactionID string) (matched bool, err error)
}

type BookingUsecase interface {
	SubmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingResult, error)
	FindBookingsByPatient(ctx context.Context, email string) ([]responses.Booking, error)
	FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error)
}
