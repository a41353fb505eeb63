package services

import (
	"context"
	"errors"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/google/uuid"
)

// stubBackend implements out.BackendPort with overridable function fields.
// Calls without an override fail loudly so tests notice unexpected traffic.
type stubBackend struct {
	calls []string

	barberLoginFn       func(ctx context.Context, email, password string) (domain.Credentials, error)
	getSalonFn          func(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error)
	listSalonBarbersFn  func(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error)
	getAvailabilityFn   func(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error)
	createAppointmentFn func(ctx context.Context, auth domain.Credentials, in domain.BookingInput) (*domain.Appointment, error)
	listWorkingHoursFn  func(ctx context.Context, auth domain.Credentials) ([]domain.WorkingHour, error)
	listBreaksFn        func(ctx context.Context, auth domain.Credentials) ([]domain.Break, error)
	listAppointmentsFn  func(ctx context.Context, auth domain.Credentials, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	getBarberProfileFn  func(ctx context.Context, auth domain.Credentials) (*domain.Barber, error)
}

var errStubNotWired = errors.New("stub method not wired")

func (s *stubBackend) record(name string) {
	s.calls = append(s.calls, name)
}

func (s *stubBackend) called(name string) bool {
	for _, call := range s.calls {
		if call == name {
			return true
		}
	}
	return false
}

func (s *stubBackend) BarberLogin(ctx context.Context, email, password string) (domain.Credentials, error) {
	s.record("BarberLogin")
	if s.barberLoginFn == nil {
		return domain.Credentials{}, errStubNotWired
	}
	return s.barberLoginFn(ctx, email, password)
}

func (s *stubBackend) OwnerLogin(ctx context.Context, email, password string) (domain.Credentials, error) {
	s.record("OwnerLogin")
	return domain.Credentials{}, errStubNotWired
}

func (s *stubBackend) GetBarberProfile(ctx context.Context, auth domain.Credentials) (*domain.Barber, error) {
	s.record("GetBarberProfile")
	if s.getBarberProfileFn == nil {
		return nil, errStubNotWired
	}
	return s.getBarberProfileFn(ctx, auth)
}

func (s *stubBackend) ListServices(ctx context.Context, auth domain.Credentials) ([]domain.BarberService, error) {
	s.record("ListServices")
	return nil, errStubNotWired
}

func (s *stubBackend) CreateService(ctx context.Context, auth domain.Credentials, in domain.CreateServiceInput) (*domain.BarberService, error) {
	s.record("CreateService")
	return nil, errStubNotWired
}

func (s *stubBackend) UpdateService(ctx context.Context, auth domain.Credentials, serviceID uuid.UUID, in domain.UpdateServiceInput) (*domain.BarberService, error) {
	s.record("UpdateService")
	return nil, errStubNotWired
}

func (s *stubBackend) DeleteService(ctx context.Context, auth domain.Credentials, serviceID uuid.UUID) error {
	s.record("DeleteService")
	return errStubNotWired
}

func (s *stubBackend) ListWorkingHours(ctx context.Context, auth domain.Credentials) ([]domain.WorkingHour, error) {
	s.record("ListWorkingHours")
	if s.listWorkingHoursFn == nil {
		return nil, errStubNotWired
	}
	return s.listWorkingHoursFn(ctx, auth)
}

func (s *stubBackend) CreateWorkingHour(ctx context.Context, auth domain.Credentials, in domain.WorkingHourInput) (*domain.WorkingHour, error) {
	s.record("CreateWorkingHour")
	return nil, errStubNotWired
}

func (s *stubBackend) UpdateWorkingHour(ctx context.Context, auth domain.Credentials, hourID uuid.UUID, in domain.WorkingHourInput) (*domain.WorkingHour, error) {
	s.record("UpdateWorkingHour")
	return nil, errStubNotWired
}

func (s *stubBackend) DeleteWorkingHour(ctx context.Context, auth domain.Credentials, hourID uuid.UUID) error {
	s.record("DeleteWorkingHour")
	return errStubNotWired
}

func (s *stubBackend) ListBreaks(ctx context.Context, auth domain.Credentials) ([]domain.Break, error) {
	s.record("ListBreaks")
	if s.listBreaksFn == nil {
		return nil, errStubNotWired
	}
	return s.listBreaksFn(ctx, auth)
}

func (s *stubBackend) CreateBreak(ctx context.Context, auth domain.Credentials, in domain.WorkingHourInput) (*domain.Break, error) {
	s.record("CreateBreak")
	return nil, errStubNotWired
}

func (s *stubBackend) UpdateBreak(ctx context.Context, auth domain.Credentials, breakID uuid.UUID, in domain.WorkingHourInput) (*domain.Break, error) {
	s.record("UpdateBreak")
	return nil, errStubNotWired
}

func (s *stubBackend) DeleteBreak(ctx context.Context, auth domain.Credentials, breakID uuid.UUID) error {
	s.record("DeleteBreak")
	return errStubNotWired
}

func (s *stubBackend) ListTimeOff(ctx context.Context, auth domain.Credentials) ([]domain.TimeOff, error) {
	s.record("ListTimeOff")
	return nil, errStubNotWired
}

func (s *stubBackend) CreateTimeOff(ctx context.Context, auth domain.Credentials, in domain.TimeOffInput) (*domain.TimeOff, error) {
	s.record("CreateTimeOff")
	return nil, errStubNotWired
}

func (s *stubBackend) UpdateTimeOff(ctx context.Context, auth domain.Credentials, timeOffID uuid.UUID, in domain.TimeOffInput) (*domain.TimeOff, error) {
	s.record("UpdateTimeOff")
	return nil, errStubNotWired
}

func (s *stubBackend) DeleteTimeOff(ctx context.Context, auth domain.Credentials, timeOffID uuid.UUID) error {
	s.record("DeleteTimeOff")
	return errStubNotWired
}

func (s *stubBackend) ListAppointments(ctx context.Context, auth domain.Credentials, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	s.record("ListAppointments")
	if s.listAppointmentsFn == nil {
		return nil, errStubNotWired
	}
	return s.listAppointmentsFn(ctx, auth, filter)
}

func (s *stubBackend) ConfirmAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) (*domain.Appointment, error) {
	s.record("ConfirmAppointment")
	return nil, errStubNotWired
}

func (s *stubBackend) CancelAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) (*domain.Appointment, error) {
	s.record("CancelAppointment")
	return nil, errStubNotWired
}

func (s *stubBackend) DeleteAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) error {
	s.record("DeleteAppointment")
	return errStubNotWired
}

func (s *stubBackend) GetSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error) {
	s.record("GetSalon")
	if s.getSalonFn == nil {
		return nil, errStubNotWired
	}
	return s.getSalonFn(ctx, salonID)
}

func (s *stubBackend) ListSalonBarbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error) {
	s.record("ListSalonBarbers")
	if s.listSalonBarbersFn == nil {
		return nil, errStubNotWired
	}
	return s.listSalonBarbersFn(ctx, salonID)
}

func (s *stubBackend) ListBarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, error) {
	s.record("ListBarberServices")
	return nil, errStubNotWired
}

func (s *stubBackend) GetAvailability(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error) {
	s.record("GetAvailability")
	if s.getAvailabilityFn == nil {
		return nil, errStubNotWired
	}
	return s.getAvailabilityFn(ctx, barberID, serviceID, date)
}

func (s *stubBackend) CreateAppointment(ctx context.Context, auth domain.Credentials, in domain.BookingInput) (*domain.Appointment, error) {
	s.record("CreateAppointment")
	if s.createAppointmentFn == nil {
		return nil, errStubNotWired
	}
	return s.createAppointmentFn(ctx, auth, in)
}

func (s *stubBackend) RegisterSalon(ctx context.Context, in domain.RegisterSalonInput) (*domain.Salon, error) {
	s.record("RegisterSalon")
	return nil, errStubNotWired
}

func (s *stubBackend) GetMySalon(ctx context.Context, auth domain.Credentials) (*domain.Salon, error) {
	s.record("GetMySalon")
	return nil, errStubNotWired
}

func (s *stubBackend) UpdateSalon(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.UpdateSalonInput) (*domain.Salon, error) {
	s.record("UpdateSalon")
	return nil, errStubNotWired
}

func (s *stubBackend) ListBarbers(ctx context.Context, auth domain.Credentials, salonID uuid.UUID) ([]domain.Barber, error) {
	s.record("ListBarbers")
	return nil, errStubNotWired
}

func (s *stubBackend) CreateBarber(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.CreateBarberInput) (*domain.Barber, error) {
	s.record("CreateBarber")
	return nil, errStubNotWired
}

func (s *stubBackend) UpdateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID, in domain.UpdateBarberInput) (*domain.Barber, error) {
	s.record("UpdateBarber")
	return nil, errStubNotWired
}

func (s *stubBackend) DeactivateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID) error {
	s.record("DeactivateBarber")
	return errStubNotWired
}

// stubTokenStore is an in-memory out.TokenStorePort.
type stubTokenStore struct {
	creds   domain.Credentials
	loadErr error
	saveErr error
}

func (s *stubTokenStore) Load(ctx context.Context) (domain.Credentials, error) {
	if s.loadErr != nil {
		return domain.Credentials{}, s.loadErr
	}
	return s.creds, nil
}

func (s *stubTokenStore) Save(ctx context.Context, creds domain.Credentials) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.creds = creds
	return nil
}

func (s *stubTokenStore) Clear(ctx context.Context) error {
	s.creds = domain.Credentials{}
	return nil
}

// nopLogger satisfies out.LoggerPort for tests.
type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}
func (nopLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return nopLogger{}
}
func (nopLogger) WithModule(module string) out.LoggerPort {
	return nopLogger{}
}
