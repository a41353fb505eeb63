package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/json_types"
	"github.com/google/uuid"
)

// fixedSession is an in.AuthUseCase that always reports the same state.
type fixedSession struct {
	creds domain.Credentials
}

func (s *fixedSession) Restore(ctx context.Context) error { return nil }
func (s *fixedSession) Login(ctx context.Context, email, password string) error {
	return nil
}
func (s *fixedSession) Logout(ctx context.Context) error { return nil }
func (s *fixedSession) Credentials() (domain.Credentials, bool) {
	return s.creds, !s.creds.IsZero()
}

func authedSession() *fixedSession {
	return &fixedSession{creds: domain.Credentials{Token: "tok", TokenType: "Bearer"}}
}

func gridBackend(t *testing.T, date time.Time, appointments []domain.Appointment) *stubBackend {
	t.Helper()
	salonID := uuid.New()
	barberID := uuid.New()

	return &stubBackend{
		getBarberProfileFn: func(ctx context.Context, auth domain.Credentials) (*domain.Barber, error) {
			return &domain.Barber{ID: barberID, SalonID: salonID, SlotDurationMinutes: 30, Active: true}, nil
		},
		getSalonFn: func(ctx context.Context, id uuid.UUID) (*domain.Salon, error) {
			return &domain.Salon{ID: salonID, Name: "Figaro", Timezone: "UTC"}, nil
		},
		listWorkingHoursFn: func(ctx context.Context, auth domain.Credentials) ([]domain.WorkingHour, error) {
			return []domain.WorkingHour{{
				DayOfWeek: int(date.Weekday()),
				StartTime: json_types.NewTimeOfDay(9, 0),
				EndTime:   json_types.NewTimeOfDay(12, 0),
			}}, nil
		},
		listBreaksFn: func(ctx context.Context, auth domain.Credentials) ([]domain.Break, error) {
			return nil, nil
		},
		listAppointmentsFn: func(ctx context.Context, auth domain.Credentials, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
			return appointments, nil
		},
	}
}

func TestDayGridRequiresAuth(t *testing.T) {
	svc := NewBarberAreaService(&stubBackend{}, &fixedSession{}, nopLogger{})

	_, err := svc.DayGrid(context.Background(), time.Now())
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("got %v, want ErrNotAuthenticated", err)
	}
}

func TestDayGridBuildsFromFetchedState(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	apt := domain.Appointment{
		ID:      uuid.New(),
		StartAt: time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, time.September, 7, 10, 30, 0, 0, time.UTC),
		Status:  domain.AppointmentStatusConfirmed,
	}
	backend := gridBackend(t, date, []domain.Appointment{apt})
	svc := NewBarberAreaService(backend, authedSession(), nopLogger{})

	grid, err := svc.DayGrid(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:00-12:00 at 30 min is 6 slots.
	if len(grid) != 6 {
		t.Fatalf("got %d slots, want 6", len(grid))
	}
	for _, slot := range grid {
		switch slot.Label {
		case "10:00":
			if slot.Kind != domain.GridSlotOccupied {
				t.Errorf("10:00 should be occupied, got %s", slot.Kind)
			}
		case "10:30":
			if !slot.Free() {
				t.Errorf("10:30 should be free, got %s", slot.Kind)
			}
		}
	}
}

func TestBookSlotRejectsMissingCustomer(t *testing.T) {
	backend := &stubBackend{}
	svc := NewBarberAreaService(backend, authedSession(), nopLogger{})

	_, err := svc.BookSlot(context.Background(), time.Now(), 600, uuid.New(), domain.CustomerInfo{Name: "Marko"})
	if !errors.Is(err, ErrCustomerRequired) {
		t.Fatalf("got %v, want ErrCustomerRequired", err)
	}
	if len(backend.calls) != 0 {
		t.Errorf("backend must not be called, saw %v", backend.calls)
	}
}

func TestBookSlotRejectsOccupiedSlot(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	apt := domain.Appointment{
		ID:      uuid.New(),
		StartAt: time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, time.September, 7, 10, 30, 0, 0, time.UTC),
		Status:  domain.AppointmentStatusPending,
	}
	backend := gridBackend(t, date, []domain.Appointment{apt})
	svc := NewBarberAreaService(backend, authedSession(), nopLogger{})

	_, err := svc.BookSlot(context.Background(), date, 10*60, uuid.New(), domain.CustomerInfo{
		Name:  "Marko",
		Phone: "0641234567",
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("got %v, want ErrSlotTaken", err)
	}
	if backend.called("CreateAppointment") {
		t.Error("occupied slot must not reach the backend")
	}
}

func TestBookSlotCreatesAppointment(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	backend := gridBackend(t, date, nil)

	var booked domain.BookingInput
	backend.createAppointmentFn = func(ctx context.Context, auth domain.Credentials, in domain.BookingInput) (*domain.Appointment, error) {
		booked = in
		return &domain.Appointment{
			ID:           uuid.New(),
			ServiceName:  "Fade",
			CustomerName: in.CustomerName,
			StartAt:      in.StartAt,
			Status:       domain.AppointmentStatusConfirmed,
		}, nil
	}
	svc := NewBarberAreaService(backend, authedSession(), nopLogger{})

	serviceID := uuid.New()
	appointment, err := svc.BookSlot(context.Background(), date, 10*60, serviceID, domain.CustomerInfo{
		Name:  " Marko ",
		Phone: "0641234567",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booked.BarberServiceID != serviceID {
		t.Errorf("service %s, want %s", booked.BarberServiceID, serviceID)
	}
	if booked.CustomerName != "Marko" {
		t.Errorf("customer name %q, want trimmed", booked.CustomerName)
	}
	want := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)
	if !booked.StartAt.Equal(want) {
		t.Errorf("start %v, want %v", booked.StartAt, want)
	}
	if appointment.CustomerName != "Marko" {
		t.Errorf("appointment customer %q", appointment.CustomerName)
	}
}

func TestAddWorkingHourRejectsInvertedInterval(t *testing.T) {
	backend := &stubBackend{}
	svc := NewBarberAreaService(backend, authedSession(), nopLogger{})

	_, err := svc.AddWorkingHour(context.Background(), domain.WorkingHourInput{
		DayOfWeek: 1,
		StartTime: json_types.NewTimeOfDay(17, 0),
		EndTime:   json_types.NewTimeOfDay(9, 0),
	})
	if !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("got %v, want ErrInvalidInterval", err)
	}
	if len(backend.calls) != 0 {
		t.Errorf("backend must not be called, saw %v", backend.calls)
	}
}
