package contracts

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	DeleteByID(ctx context.Context, doctorID string) (deleted bool, err error)
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	FindAllDoctors(ctx context.Context) ([]responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}
