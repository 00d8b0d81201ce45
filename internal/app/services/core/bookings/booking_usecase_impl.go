package bookings

import (
	"context"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository     contracts.BookingRepository
	TreatmentRepository   contracts.TreatmentRepository
	NotificationPublisher contracts.NotificationPublisher
	Log                   *zap.Logger
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	treatmentRepository contracts.TreatmentRepository,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:     bookingRepository,
		TreatmentRepository:   treatmentRepository,
		NotificationPublisher: notificationPublisher,
		Log:                   logger,
	}
}

func (uc *bookingUsecase) SubmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingAppointmentDate, request.AppointmentDate),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	treatment, err := uc.TreatmentRepository.FindByName(ctx, request.Treatment)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, exceptions.ErrTreatmentNotExist(nil)
	}
	if !slotInCatalog(treatment, request.Slot) {
		return nil, exceptions.ErrSlotNotInCatalog(nil)
	}

	now := time.Now()
	booking := &models.Booking{
		Email:           request.Email,
		Treatment:       request.Treatment,
		AppointmentDate: request.AppointmentDate,
		Slot:            request.Slot,
		Price:           treatment.Price,
		PaymentStatus:   constvars.PaymentStatusUnpaid,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Uniqueness and slot consumption are decided by this one insert; see the
	// repository for the index-backed conflict translation.
	bookingID, err := uc.BookingRepository.InsertBooking(ctx, booking)
	if err != nil {
		if exceptions.IsDuplicateBooking(err) {
			customErr := err.(*exceptions.CustomError)
			uc.Log.Info("bookingUsecase.SubmitBooking rejected as duplicate",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserEmailKey, request.Email),
			)
			return &responses.BookingResult{
				Acknowledged: false,
				Message:      customErr.ClientMessage,
			}, nil
		}
		return nil, err
	}
	booking.ID = bookingID

	// Fire-and-forget: the booking stands regardless of what happens to the
	// confirmation email.
	uc.publishConfirmation(booking)

	uc.Log.Info("bookingUsecase.SubmitBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return &responses.BookingResult{
		Acknowledged: true,
		Booking:      buildBookingResponse(booking),
	}, nil
}

func (uc *bookingUsecase) publishConfirmation(booking *models.Booking) {
	notification := &requests.BookingNotification{
		Email:           booking.Email,
		Treatment:       booking.Treatment,
		AppointmentDate: booking.AppointmentDate,
		Slot:            booking.Slot,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := uc.NotificationPublisher.PublishBookingConfirmation(ctx, notification); err != nil {
			uc.Log.Error("bookingUsecase.publishConfirmation failed to enqueue notification",
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(err),
			)
		}
	}()
}

func (uc *bookingUsecase) FindBookingsByPatient(ctx context.Context, email string) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindBookingsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, email),
	)

	bookings, err := uc.BookingRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Booking, 0, len(bookings))
	for i := range bookings {
		response = append(response, *buildBookingResponse(&bookings[i]))
	}
	return response, nil
}

func (uc *bookingUsecase) FindBookingByID(ctx context.Context, bookingID string) (*responses.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	return buildBookingResponse(booking), nil
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		ID:              booking.ID,
		Email:           booking.Email,
		Treatment:       booking.Treatment,
		AppointmentDate: booking.AppointmentDate,
		Slot:            booking.Slot,
		Price:           booking.Price,
		PaymentStatus:   booking.PaymentStatus,
		TransactionID:   booking.TransactionID,
	}
}

func slotInCatalog(treatment *models.Treatment, slot string) bool {
	for _, catalogSlot := range treatment.Slots {
		if catalogSlot == slot {
			return true
		}
	}
	return false
}
