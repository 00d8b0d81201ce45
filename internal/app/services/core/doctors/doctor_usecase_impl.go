package doctors

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
	"doctorsportal-service/internal/pkg/exceptions"
	"doctorsportal-service/internal/pkg/utils"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository    contracts.DoctorRepository
	TreatmentRepository contracts.TreatmentRepository
	Storage             contracts.Storage
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	treatmentRepository contracts.TreatmentRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:    doctorRepository,
		TreatmentRepository: treatmentRepository,
		Storage:             storage,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

// CreateDoctor registers a doctor under an existing treatment specialty. An
// optional base64 photo is decoded and stored in object storage first; the
// stored object name becomes the doctor's photo URL.
func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	specialty, err := uc.TreatmentRepository.FindByName(ctx, request.Specialty)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrTreatmentNotExist(fmt.Errorf("specialty %s is not in the treatment catalog", request.Specialty))
	}

	photoURL := ""
	if request.PhotoBase64 != "" {
		imageData, err := base64.StdEncoding.DecodeString(request.PhotoBase64)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}

		fileName := uuid.NewString() + request.PhotoExtension
		photoURL, err = uc.Storage.UploadBase64Image(ctx, imageData, uc.InternalConfig.App.DoctorPhotoBucket, fileName, request.PhotoExtension)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		PhotoURL:  photoURL,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID

	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) FindAllDoctors(ctx context.Context) ([]responses.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		response = append(response, *buildDoctorResponse(&doctors[i]))
	}
	return response, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	deleted, err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrDoctorNotExist(fmt.Errorf("doctor %s not found", doctorID))
	}
	return nil
}

func buildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Email:     doctor.Email,
		Specialty: doctor.Specialty,
		PhotoURL:  doctor.PhotoURL,
	}
}
