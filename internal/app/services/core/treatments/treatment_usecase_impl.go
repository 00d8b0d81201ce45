package treatments

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type treatmentUsecase struct {
	TreatmentRepository contracts.TreatmentRepository
	BookingRepository   contracts.BookingRepository
	RedisRepository     contracts.RedisRepository
	Log                 *zap.Logger
}

func NewTreatmentUsecase(
	treatmentRepository contracts.TreatmentRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.TreatmentUsecase {
	return &treatmentUsecase{
		TreatmentRepository: treatmentRepository,
		BookingRepository:   bookingRepository,
		RedisRepository:     redisRepository,
		Log:                 logger,
	}
}

func (uc *treatmentUsecase) AvailableSlots(ctx context.Context, treatmentName, date string) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.AvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, treatmentName),
		zap.String(constvars.LoggingAppointmentDate, date),
	)

	treatment, err := uc.TreatmentRepository.FindByName(ctx, treatmentName)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		// Unknown treatments simply have no availability.
		return []string{}, nil
	}

	bookings, err := uc.BookingRepository.FindByTreatmentAndDate(ctx, treatmentName, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		booked[booking.Slot] = struct{}{}
	}

	return subtractSlots(treatment.Slots, booked), nil
}

func (uc *treatmentUsecase) AvailableSlotsForAllTreatments(ctx context.Context, date string) ([]responses.TreatmentAvailability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.AvailableSlotsForAllTreatments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDate, date),
	)

	treatments, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}

	// One bookings-on-date read, grouped by treatment in a single pass.
	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookedByTreatment := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		slots, ok := bookedByTreatment[booking.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedByTreatment[booking.Treatment] = slots
		}
		slots[booking.Slot] = struct{}{}
	}

	result := make([]responses.TreatmentAvailability, 0, len(treatments))
	for _, treatment := range treatments {
		result = append(result, responses.TreatmentAvailability{
			ID:    treatment.ID,
			Name:  treatment.Name,
			Price: treatment.Price,
			Slots: subtractSlots(treatment.Slots, bookedByTreatment[treatment.Name]),
		})
	}

	uc.Log.Info("treatmentUsecase.AvailableSlotsForAllTreatments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (uc *treatmentUsecase) FindSpecialties(ctx context.Context) ([]responses.TreatmentSpecialty, error) {
	treatments, err := uc.TreatmentRepository.FindNames(ctx)
	if err != nil {
		return nil, err
	}

	specialties := make([]responses.TreatmentSpecialty, 0, len(treatments))
	for _, treatment := range treatments {
		specialties = append(specialties, responses.TreatmentSpecialty{
			ID:   treatment.ID,
			Name: treatment.Name,
		})
	}
	return specialties, nil
}

func (uc *treatmentUsecase) CreateTreatment(ctx context.Context, request *requests.CreateTreatment) (*responses.Treatment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("treatmentUsecase.CreateTreatment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, request.Name),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	treatment := &models.Treatment{
		Name:  request.Name,
		Price: request.Price,
		Slots: request.Slots,
	}
	treatmentID, err := uc.TreatmentRepository.CreateTreatment(ctx, treatment)
	if err != nil {
		return nil, err
	}

	// The catalog changed; drop the cached copy so the next bulk read rebuilds it.
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyTreatmentCatalog); err != nil {
		uc.Log.Warn("treatmentUsecase.CreateTreatment failed to invalidate catalog cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.Treatment{
		ID:    treatmentID,
		Name:  treatment.Name,
		Price: treatment.Price,
		Slots: treatment.Slots,
	}, nil
}

// catalog returns the full treatment list, served from the Redis cache when
// fresh. Cache failures fall back to the store read.
func (uc *treatmentUsecase) catalog(ctx context.Context) ([]models.Treatment, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyTreatmentCatalog)
	if err == nil && cached != "" {
		var treatments []models.Treatment
		if err := json.Unmarshal([]byte(cached), &treatments); err == nil {
			return treatments, nil
		}
	}

	treatments, err := uc.TreatmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(constvars.RedisTreatmentCatalogTTLMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyTreatmentCatalog, treatments, ttl); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("treatmentUsecase.catalog failed to cache treatments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return treatments, nil
}

// subtractSlots removes booked labels from the catalog slot set, preserving
// the catalog's original ordering.
func subtractSlots(catalogSlots []string, booked map[string]struct{}) []string {
	remaining := make([]string, 0, len(catalogSlots))
	for _, slot := range catalogSlots {
		if _, taken := booked[slot]; !taken {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}
