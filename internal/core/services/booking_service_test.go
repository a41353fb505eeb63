package services

import (
	"context"
	"testing"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

func TestBookValidationFailureSkipsBackend(t *testing.T) {
	backend := &stubBackend{}
	svc := NewBookingService(backend, nil, nopLogger{})

	in := domain.BookingInput{
		SalonID:         uuid.New(),
		BarberID:        uuid.New(),
		BarberServiceID: uuid.New(),
		CustomerName:    "Marko",
		CustomerPhone:   "", // required
		StartAt:         time.Now().Add(24 * time.Hour),
	}

	_, err := svc.Book(context.Background(), in)
	if err == nil {
		t.Fatal("expected validation error for empty phone")
	}
	if backend.called("CreateAppointment") {
		t.Fatal("backend must not be called when validation fails")
	}
}

func TestBookForwardsValidInput(t *testing.T) {
	appointmentID := uuid.New()
	backend := &stubBackend{
		createAppointmentFn: func(ctx context.Context, auth domain.Credentials, in domain.BookingInput) (*domain.Appointment, error) {
			if !auth.IsZero() {
				t.Errorf("public booking must be anonymous, got token %q", auth.Token)
			}
			return &domain.Appointment{
				ID:       appointmentID,
				BarberID: in.BarberID,
				StartAt:  in.StartAt,
				Status:   domain.AppointmentStatusPending,
			}, nil
		},
	}
	svc := NewBookingService(backend, nil, nopLogger{})

	appointment, err := svc.Book(context.Background(), domain.BookingInput{
		SalonID:         uuid.New(),
		BarberID:        uuid.New(),
		BarberServiceID: uuid.New(),
		CustomerName:    "Marko",
		CustomerPhone:   "0641234567",
		StartAt:         time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.ID != appointmentID {
		t.Errorf("got appointment %s, want %s", appointment.ID, appointmentID)
	}
}

func TestSalonFetchesOnceWithCache(t *testing.T) {
	salonID := uuid.New()
	backend := &stubBackend{
		getSalonFn: func(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
			return &domain.Salon{ID: id, Name: "Figaro", Timezone: "Europe/Belgrade"}, nil
		},
	}
	svc := NewBookingService(backend, newMemoryCache(), nopLogger{})

	for i := 0; i < 3; i++ {
		salon, err := svc.Salon(context.Background(), salonID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if salon.Name != "Figaro" {
			t.Errorf("got salon %q", salon.Name)
		}
	}

	fetches := 0
	for _, call := range backend.calls {
		if call == "GetSalon" {
			fetches++
		}
	}
	if fetches != 1 {
		t.Errorf("backend fetched %d times, want 1", fetches)
	}
}

// memoryCache is a minimal out.CachePort for cache behavior tests.
type memoryCache struct {
	salons   map[uuid.UUID]domain.Salon
	barbers  map[uuid.UUID][]domain.Barber
	services map[uuid.UUID][]domain.BarberService
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		salons:   make(map[uuid.UUID]domain.Salon),
		barbers:  make(map[uuid.UUID][]domain.Barber),
		services: make(map[uuid.UUID][]domain.BarberService),
	}
}

func (c *memoryCache) GetSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, bool) {
	salon, ok := c.salons[salonID]
	if !ok {
		return nil, false
	}
	return &salon, true
}

func (c *memoryCache) StoreSalon(ctx context.Context, salon domain.Salon) {
	c.salons[salon.ID] = salon
}

func (c *memoryCache) GetSalonBarbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, bool) {
	barbers, ok := c.barbers[salonID]
	return barbers, ok
}

func (c *memoryCache) StoreSalonBarbers(ctx context.Context, salonID uuid.UUID, barbers []domain.Barber) {
	c.barbers[salonID] = barbers
}

func (c *memoryCache) GetBarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, bool) {
	services, ok := c.services[barberID]
	return services, ok
}

func (c *memoryCache) StoreBarberServices(ctx context.Context, barberID uuid.UUID, services []domain.BarberService) {
	c.services[barberID] = services
}

func (c *memoryCache) InvalidateSalon(ctx context.Context, salonID uuid.UUID) {
	delete(c.salons, salonID)
	delete(c.barbers, salonID)
}
