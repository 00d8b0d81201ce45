package treatments

import (
	"context"
	"doctorsportal-service/internal/app/models"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTreatmentRepository struct {
	treatments   []models.Treatment
	findAllCalls int
}

func (f *fakeTreatmentRepository) CreateTreatment(ctx context.Context, treatment *models.Treatment) (string, error) {
	f.treatments = append(f.treatments, *treatment)
	return "generated-id", nil
}

func (f *fakeTreatmentRepository) FindAll(ctx context.Context) ([]models.Treatment, error) {
	f.findAllCalls++
	return f.treatments, nil
}

func (f *fakeTreatmentRepository) FindByName(ctx context.Context, name string) (*models.Treatment, error) {
	for i := range f.treatments {
		if f.treatments[i].Name == name {
			return &f.treatments[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTreatmentRepository) FindNames(ctx context.Context) ([]models.Treatment, error) {
	names := make([]models.Treatment, 0, len(f.treatments))
	for _, treatment := range f.treatments {
		names = append(names, models.Treatment{ID: treatment.ID, Name: treatment.Name})
	}
	return names, nil
}

type fakeBookingReader struct {
	bookings []models.Booking
}

func (f *fakeBookingReader) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	f.bookings = append(f.bookings, *booking)
	return "booking-id", nil
}

func (f *fakeBookingReader) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingReader) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingReader) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var matched []models.Booking
	for _, booking := range f.bookings {
		if booking.AppointmentDate == date {
			matched = append(matched, booking)
		}
	}
	return matched, nil
}

func (f *fakeBookingReader) FindByTreatmentAndDate(ctx context.Context, treatment, date string) ([]models.Booking, error) {
	var matched []models.Booking
	for _, booking := range f.bookings {
		if booking.Treatment == treatment && booking.AppointmentDate == date {
			matched = append(matched, booking)
		}
	}
	return matched, nil
}

func (f *fakeBookingReader) MarkPaid(ctx context.Context, bookingID, transactionID string) (bool, error) {
	return false, nil
}

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func TestAvailableSlots(t *testing.T) {
	treatmentRepo := &fakeTreatmentRepository{
		treatments: []models.Treatment{
			{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08.00-09.00", "09.00-10.00", "10.00-11.00"}},
		},
	}
	bookingRepo := &fakeBookingReader{}
	uc := NewTreatmentUsecase(treatmentRepo, bookingRepo, newFakeRedisRepository(), zap.NewNop())

	t.Run("all slots free", func(t *testing.T) {
		slots, err := uc.AvailableSlots(context.Background(), "Teeth Cleaning", "2026-09-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"08.00-09.00", "09.00-10.00", "10.00-11.00"}, slots)
	})

	t.Run("booked slot removed in catalog order", func(t *testing.T) {
		bookingRepo.bookings = []models.Booking{
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-10", Slot: "09.00-10.00"},
		}
		slots, err := uc.AvailableSlots(context.Background(), "Teeth Cleaning", "2026-09-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"08.00-09.00", "10.00-11.00"}, slots)
	})

	t.Run("bookings on another date do not count", func(t *testing.T) {
		slots, err := uc.AvailableSlots(context.Background(), "Teeth Cleaning", "2026-09-11")
		require.NoError(t, err)
		assert.Len(t, slots, 3)
	})

	t.Run("unknown treatment yields empty slice", func(t *testing.T) {
		slots, err := uc.AvailableSlots(context.Background(), "Cryotherapy", "2026-09-10")
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("fully booked date yields empty slice", func(t *testing.T) {
		bookingRepo.bookings = []models.Booking{
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-12", Slot: "08.00-09.00"},
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-12", Slot: "09.00-10.00"},
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-12", Slot: "10.00-11.00"},
		}
		slots, err := uc.AvailableSlots(context.Background(), "Teeth Cleaning", "2026-09-12")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestAvailableSlotsForAllTreatments(t *testing.T) {
	treatmentRepo := &fakeTreatmentRepository{
		treatments: []models.Treatment{
			{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08.00-09.00", "09.00-10.00"}},
			{ID: "t2", Name: "Cavity Protection", Price: 80, Slots: []string{"08.00-09.00", "09.00-10.00"}},
		},
	}
	bookingRepo := &fakeBookingReader{
		bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-10", Slot: "08.00-09.00"},
			{Treatment: "Cavity Protection", AppointmentDate: "2026-09-10", Slot: "09.00-10.00"},
		},
	}
	uc := NewTreatmentUsecase(treatmentRepo, bookingRepo, newFakeRedisRepository(), zap.NewNop())

	result, err := uc.AvailableSlotsForAllTreatments(context.Background(), "2026-09-10")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "Teeth Cleaning", result[0].Name)
	assert.Equal(t, []string{"09.00-10.00"}, result[0].Slots)
	assert.Equal(t, "Cavity Protection", result[1].Name)
	assert.Equal(t, []string{"08.00-09.00"}, result[1].Slots)
}

func TestAvailableSlotsForAllTreatmentsUsesCatalogCache(t *testing.T) {
	treatmentRepo := &fakeTreatmentRepository{
		treatments: []models.Treatment{
			{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08.00-09.00"}},
		},
	}
	redisRepo := newFakeRedisRepository()
	uc := NewTreatmentUsecase(treatmentRepo, &fakeBookingReader{}, redisRepo, zap.NewNop())

	_, err := uc.AvailableSlotsForAllTreatments(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, 1, treatmentRepo.findAllCalls)
	assert.Contains(t, redisRepo.store, constvars.RedisKeyTreatmentCatalog)

	// Second read is served from the cache.
	_, err = uc.AvailableSlotsForAllTreatments(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, 1, treatmentRepo.findAllCalls)
}

func TestFindSpecialties(t *testing.T) {
	treatmentRepo := &fakeTreatmentRepository{
		treatments: []models.Treatment{
			{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08.00-09.00"}},
			{ID: "t2", Name: "Teeth Orthodontics", Price: 120, Slots: []string{"08.00-09.00"}},
		},
	}
	uc := NewTreatmentUsecase(treatmentRepo, &fakeBookingReader{}, newFakeRedisRepository(), zap.NewNop())

	specialties, err := uc.FindSpecialties(context.Background())
	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "Teeth Cleaning", specialties[0].Name)
	assert.Equal(t, "t2", specialties[1].ID)
}

func TestCreateTreatmentInvalidatesCache(t *testing.T) {
	treatmentRepo := &fakeTreatmentRepository{}
	redisRepo := newFakeRedisRepository()
	redisRepo.store[constvars.RedisKeyTreatmentCatalog] = `[]`
	uc := NewTreatmentUsecase(treatmentRepo, &fakeBookingReader{}, redisRepo, zap.NewNop())

	created, err := uc.CreateTreatment(context.Background(), &requests.CreateTreatment{
		Name:  "Fluoride Treatment",
		Price: 60,
		Slots: []string{"08.00-09.00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", created.ID)
	assert.NotContains(t, redisRepo.store, constvars.RedisKeyTreatmentCatalog)
}
