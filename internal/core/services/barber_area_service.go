package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/in"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/services/slotgrid"
	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidInterval  = errors.New("start time must be before end time")
	ErrInvalidRange     = errors.New("start must be before end")
	ErrSlotTaken        = errors.New("slot is not free")
	ErrCustomerRequired = errors.New("customer name and phone are required")
)

// BarberAreaService is the barber app's feature set over the backend API.
// The profile and salon are memoized after the first fetch, everything else
// is read fresh per operation.
type BarberAreaService struct {
	backend out.BackendPort
	session in.AuthUseCase
	logger  out.LoggerPort

	mu      sync.Mutex
	profile *domain.Barber
	salon   *domain.Salon
}

func NewBarberAreaService(backend out.BackendPort, session in.AuthUseCase, logger out.LoggerPort) *BarberAreaService {
	return &BarberAreaService{
		backend: backend,
		session: session,
		logger:  logger.WithModule("BarberAreaService"),
	}
}

func (s *BarberAreaService) auth() (domain.Credentials, error) {
	creds, ok := s.session.Credentials()
	if !ok {
		return domain.Credentials{}, ErrNotAuthenticated
	}
	return creds, nil
}

func (s *BarberAreaService) Profile(ctx context.Context) (*domain.Barber, error) {
	s.mu.Lock()
	if s.profile != nil {
		profile := s.profile
		s.mu.Unlock()
		return profile, nil
	}
	s.mu.Unlock()

	creds, err := s.auth()
	if err != nil {
		return nil, err
	}

	profile, err := s.backend.GetBarberProfile(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("barber.profile.fetch_failed: %w", err)
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return profile, nil
}

// ForgetProfile drops the memoized profile and salon, next reads refetch.
// Called on logout.
func (s *BarberAreaService) ForgetProfile() {
	s.mu.Lock()
	s.profile = nil
	s.salon = nil
	s.mu.Unlock()
}

func (s *BarberAreaService) salonProfile(ctx context.Context) (*domain.Salon, error) {
	s.mu.Lock()
	if s.salon != nil {
		salon := s.salon
		s.mu.Unlock()
		return salon, nil
	}
	s.mu.Unlock()

	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}

	salon, err := s.backend.GetSalon(ctx, profile.SalonID)
	if err != nil {
		return nil, fmt.Errorf("barber.salon.fetch_failed: %w", err)
	}

	s.mu.Lock()
	s.salon = salon
	s.mu.Unlock()
	return salon, nil
}

// ----- Services -----

func (s *BarberAreaService) Services(ctx context.Context) ([]domain.BarberService, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.ListServices(ctx, creds)
}

func (s *BarberAreaService) AddService(ctx context.Context, in domain.CreateServiceInput) (*domain.BarberService, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateService(ctx, creds, in)
}

func (s *BarberAreaService) EditService(ctx context.Context, serviceID uuid.UUID, in domain.UpdateServiceInput) (*domain.BarberService, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateService(ctx, creds, serviceID, in)
}

func (s *BarberAreaService) RemoveService(ctx context.Context, serviceID uuid.UUID) error {
	creds, err := s.auth()
	if err != nil {
		return err
	}
	return s.backend.DeleteService(ctx, creds, serviceID)
}

// ----- Working hours -----

func (s *BarberAreaService) WorkingHours(ctx context.Context) ([]domain.WorkingHour, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.ListWorkingHours(ctx, creds)
}

func (s *BarberAreaService) AddWorkingHour(ctx context.Context, in domain.WorkingHourInput) (*domain.WorkingHour, error) {
	if !in.Valid() {
		return nil, ErrInvalidInterval
	}
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateWorkingHour(ctx, creds, in)
}

func (s *BarberAreaService) EditWorkingHour(ctx context.Context, hourID uuid.UUID, in domain.WorkingHourInput) (*domain.WorkingHour, error) {
	if !in.Valid() {
		return nil, ErrInvalidInterval
	}
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateWorkingHour(ctx, creds, hourID, in)
}

func (s *BarberAreaService) RemoveWorkingHour(ctx context.Context, hourID uuid.UUID) error {
	creds, err := s.auth()
	if err != nil {
		return err
	}
	return s.backend.DeleteWorkingHour(ctx, creds, hourID)
}

// ----- Breaks -----

func (s *BarberAreaService) Breaks(ctx context.Context) ([]domain.Break, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.ListBreaks(ctx, creds)
}

func (s *BarberAreaService) AddBreak(ctx context.Context, in domain.WorkingHourInput) (*domain.Break, error) {
	if !in.Valid() {
		return nil, ErrInvalidInterval
	}
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateBreak(ctx, creds, in)
}

func (s *BarberAreaService) EditBreak(ctx context.Context, breakID uuid.UUID, in domain.WorkingHourInput) (*domain.Break, error) {
	if !in.Valid() {
		return nil, ErrInvalidInterval
	}
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateBreak(ctx, creds, breakID, in)
}

func (s *BarberAreaService) RemoveBreak(ctx context.Context, breakID uuid.UUID) error {
	creds, err := s.auth()
	if err != nil {
		return err
	}
	return s.backend.DeleteBreak(ctx, creds, breakID)
}

// ----- Time off -----

func (s *BarberAreaService) TimeOff(ctx context.Context) ([]domain.TimeOff, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.ListTimeOff(ctx, creds)
}

func (s *BarberAreaService) AddTimeOff(ctx context.Context, in domain.TimeOffInput) (*domain.TimeOff, error) {
	if !in.Valid() {
		return nil, ErrInvalidRange
	}
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.CreateTimeOff(ctx, creds, in)
}

func (s *BarberAreaService) EditTimeOff(ctx context.Context, timeOffID uuid.UUID, in domain.TimeOffInput) (*domain.TimeOff, error) {
	if !in.Valid() {
		return nil, ErrInvalidRange
	}
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.UpdateTimeOff(ctx, creds, timeOffID, in)
}

func (s *BarberAreaService) RemoveTimeOff(ctx context.Context, timeOffID uuid.UUID) error {
	creds, err := s.auth()
	if err != nil {
		return err
	}
	return s.backend.DeleteTimeOff(ctx, creds, timeOffID)
}

// ----- Appointments -----

func (s *BarberAreaService) Appointments(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.ListAppointments(ctx, creds, filter)
}

func (s *BarberAreaService) ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*domain.Appointment, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.ConfirmAppointment(ctx, creds, appointmentID)
}

func (s *BarberAreaService) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*domain.Appointment, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}
	return s.backend.CancelAppointment(ctx, creds, appointmentID)
}

func (s *BarberAreaService) RemoveAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	creds, err := s.auth()
	if err != nil {
		return err
	}
	return s.backend.DeleteAppointment(ctx, creds, appointmentID)
}

// ----- Day grid -----

// DayGrid fetches working hours, breaks and the day's appointments in
// parallel and tiles them into the slot grid, all in the salon's timezone.
func (s *BarberAreaService) DayGrid(ctx context.Context, date time.Time) ([]domain.GridSlot, error) {
	creds, err := s.auth()
	if err != nil {
		return nil, err
	}

	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	salon, err := s.salonProfile(ctx)
	if err != nil {
		return nil, err
	}

	loc := salon.Location()
	day := date.In(loc)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	var (
		hours        []domain.WorkingHour
		breaks       []domain.Break
		appointments []domain.Appointment

		mu       sync.Mutex
		wg       sync.WaitGroup
		fetchErr error
	)

	fail := func(err error) {
		mu.Lock()
		if fetchErr == nil {
			fetchErr = err
		}
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		res, err := s.backend.ListWorkingHours(ctx, creds)
		if err != nil {
			fail(fmt.Errorf("barber.day_grid.hours_failed: %w", err))
			return
		}
		mu.Lock()
		hours = res
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		res, err := s.backend.ListBreaks(ctx, creds)
		if err != nil {
			fail(fmt.Errorf("barber.day_grid.breaks_failed: %w", err))
			return
		}
		mu.Lock()
		breaks = res
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		res, err := s.backend.ListAppointments(ctx, creds, domain.AppointmentFilter{
			From: dayStart,
			To:   dayEnd,
		})
		if err != nil {
			fail(fmt.Errorf("barber.day_grid.appointments_failed: %w", err))
			return
		}
		mu.Lock()
		appointments = res
		mu.Unlock()
	}()
	wg.Wait()

	if fetchErr != nil {
		s.logger.Error("barber.day_grid.fetch_failed", out.LogFields{
			"date":  dayStart.Format("2006-01-02"),
			"error": fetchErr.Error(),
		})
		return nil, fetchErr
	}

	grid := slotgrid.BuildDayGrid(dayStart, loc, profile.SlotDurationMinutes, hours, breaks, appointments)

	s.logger.Debug("barber.day_grid.built", out.LogFields{
		"date":       dayStart.Format("2006-01-02"),
		"slotsCount": len(grid),
	})
	return grid, nil
}

// BookSlot creates an appointment from a free grid slot for a walk-in
// customer the barber adds by hand.
func (s *BarberAreaService) BookSlot(ctx context.Context, date time.Time, startMinute int, serviceID uuid.UUID, customer domain.CustomerInfo) (*domain.Appointment, error) {
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
		return nil, ErrCustomerRequired
	}

	creds, err := s.auth()
	if err != nil {
		return nil, err
	}

	grid, err := s.DayGrid(ctx, date)
	if err != nil {
		return nil, err
	}
	free := false
	for _, slot := range grid {
		if slot.StartMinute == startMinute && slot.Free() {
			free = true
			break
		}
	}
	if !free {
		return nil, ErrSlotTaken
	}

	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	salon, err := s.salonProfile(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := s.backend.CreateAppointment(ctx, creds, domain.BookingInput{
		SalonID:         salon.ID,
		BarberID:        profile.ID,
		BarberServiceID: serviceID,
		CustomerName:    strings.TrimSpace(customer.Name),
		CustomerPhone:   strings.TrimSpace(customer.Phone),
		CustomerEmail:   strings.TrimSpace(customer.Email),
		StartAt:         slotgrid.SlotStart(date, salon.Location(), startMinute),
		Notes:           customer.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("barber.book_slot.failed: %w", err)
	}

	s.logger.Info("barber.book_slot.success", out.LogFields{
		"appointmentId": appointment.ID,
		"startAt":       appointment.StartAt,
	})
	return appointment, nil
}
