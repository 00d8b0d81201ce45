package doctors

import (
	"context"
	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/dto/requests"
	"doctorsportal-service/internal/pkg/exceptions"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors []models.Doctor
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	doctor.ID = fmt.Sprintf("doctor-%d", len(f.doctors)+1)
	f.doctors = append(f.doctors, *doctor)
	return doctor.ID, nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) (bool, error) {
	for i := range f.doctors {
		if f.doctors[i].ID == doctorID {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeTreatmentCatalog struct {
	treatments []models.Treatment
}

func (f *fakeTreatmentCatalog) CreateTreatment(ctx context.Context, treatment *models.Treatment) (string, error) {
	return "", nil
}

func (f *fakeTreatmentCatalog) FindAll(ctx context.Context) ([]models.Treatment, error) {
	return f.treatments, nil
}

func (f *fakeTreatmentCatalog) FindByName(ctx context.Context, name string) (*models.Treatment, error) {
	for i := range f.treatments {
		if f.treatments[i].Name == name {
			return &f.treatments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTreatmentCatalog) FindNames(ctx context.Context) ([]models.Treatment, error) {
	return f.treatments, nil
}

type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) UploadBase64Image(ctx context.Context, encodedImageData []byte, bucketName, fileName, fileExtension string) (string, error) {
	f.uploads[fileName] = encodedImageData
	return fileName, nil
}

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.App.DoctorPhotoBucket = "doctor-photos"
	return cfg
}

func TestCreateDoctor(t *testing.T) {
	catalog := &fakeTreatmentCatalog{
		treatments: []models.Treatment{
			{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08.00-09.00"}},
		},
	}

	t.Run("creates a doctor under an existing specialty", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		uc := NewDoctorUsecase(repo, catalog, newFakeStorage(), testConfig(), zap.NewNop())

		doctor, err := uc.CreateDoctor(context.Background(), &requests.CreateDoctor{
			Name:      "Dr. Smith",
			Email:     "smith@example.com",
			Specialty: "Teeth Cleaning",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, doctor.ID)
		assert.Empty(t, doctor.PhotoURL)
		assert.Len(t, repo.doctors, 1)
	})

	t.Run("unknown specialty is rejected", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		uc := NewDoctorUsecase(repo, catalog, newFakeStorage(), testConfig(), zap.NewNop())

		_, err := uc.CreateDoctor(context.Background(), &requests.CreateDoctor{
			Name:      "Dr. Smith",
			Email:     "smith@example.com",
			Specialty: "Cryotherapy",
		})
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
		assert.Empty(t, repo.doctors)
	})

	t.Run("photo is decoded and uploaded", func(t *testing.T) {
		storage := newFakeStorage()
		uc := NewDoctorUsecase(&fakeDoctorRepository{}, catalog, storage, testConfig(), zap.NewNop())

		imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
		doctor, err := uc.CreateDoctor(context.Background(), &requests.CreateDoctor{
			Name:           "Dr. Smith",
			Email:          "smith@example.com",
			Specialty:      "Teeth Cleaning",
			PhotoBase64:    base64.StdEncoding.EncodeToString(imageBytes),
			PhotoExtension: ".png",
		})
		require.NoError(t, err)
		require.NotEmpty(t, doctor.PhotoURL)
		assert.Equal(t, imageBytes, storage.uploads[doctor.PhotoURL])
	})

	t.Run("malformed photo payload is rejected", func(t *testing.T) {
		uc := NewDoctorUsecase(&fakeDoctorRepository{}, catalog, newFakeStorage(), testConfig(), zap.NewNop())

		_, err := uc.CreateDoctor(context.Background(), &requests.CreateDoctor{
			Name:           "Dr. Smith",
			Email:          "smith@example.com",
			Specialty:      "Teeth Cleaning",
			PhotoBase64:    "%%%not-base64%%%",
			PhotoExtension: ".png",
		})
		require.Error(t, err)
	})
}

func TestDeleteDoctor(t *testing.T) {
	repo := &fakeDoctorRepository{
		doctors: []models.Doctor{{ID: "d1", Name: "Dr. Smith", Email: "smith@example.com", Specialty: "Teeth Cleaning"}},
	}
	uc := NewDoctorUsecase(repo, &fakeTreatmentCatalog{}, newFakeStorage(), testConfig(), zap.NewNop())

	t.Run("deletes an existing doctor", func(t *testing.T) {
		err := uc.DeleteDoctor(context.Background(), "d1")
		require.NoError(t, err)
		assert.Empty(t, repo.doctors)
	})

	t.Run("missing doctor is not found", func(t *testing.T) {
		err := uc.DeleteDoctor(context.Background(), "d1")
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})
}
