package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type TreatmentRepository interface {
	CreateTreatment(ctx context.Context, treatment *models.Treatment) (treatmentID string, err error)
	FindAll(ctx context.Context) ([]models.Treatment, error)
	FindByName(ctx context.Context, name string) (*models.Treatment, error)
	FindNames(ctx context.Context) ([]models.Treatment, error)
}

type TreatmentUsecase interface {
	// AvailableSlots returns the treatment's unbooked slots for the date in
	// catalog order. An unknown treatment yields an empty slice, not an error.
	AvailableSlots(ctx context.Context, treatmentName, date string) ([]string, error)

	// AvailableSlotsForAllTreatments computes remaining slots for every
	// catalog entry with a single bookings-on-date read.
	AvailableSlotsForAllTreatments(ctx context.Context, date string) ([]responses.TreatmentAvailability, error)

	FindSpecialties(ctx context.Context) ([]responses.TreatmentSpecialty, error)
	CreateTreatment(ctx context.Context, request *requests.CreateTreatment) (*responses.Treatment, error)
}
