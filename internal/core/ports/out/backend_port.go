package out

import (
	"context"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

// BackendPort is the full surface of the BarberBook REST API the apps
// consume. Authenticated calls take the credentials explicitly, there is
// no ambient token.
type BackendPort interface {
	// Auth
	BarberLogin(ctx context.Context, email, password string) (domain.Credentials, error)
	OwnerLogin(ctx context.Context, email, password string) (domain.Credentials, error)

	// Barber self area
	GetBarberProfile(ctx context.Context, auth domain.Credentials) (*domain.Barber, error)
	ListServices(ctx context.Context, auth domain.Credentials) ([]domain.BarberService, error)
	CreateService(ctx context.Context, auth domain.Credentials, in domain.CreateServiceInput) (*domain.BarberService, error)
	UpdateService(ctx context.Context, auth domain.Credentials, serviceID uuid.UUID, in domain.UpdateServiceInput) (*domain.BarberService, error)
	DeleteService(ctx context.Context, auth domain.Credentials, serviceID uuid.UUID) error

	ListWorkingHours(ctx context.Context, auth domain.Credentials) ([]domain.WorkingHour, error)
	CreateWorkingHour(ctx context.Context, auth domain.Credentials, in domain.WorkingHourInput) (*domain.WorkingHour, error)
	UpdateWorkingHour(ctx context.Context, auth domain.Credentials, hourID uuid.UUID, in domain.WorkingHourInput) (*domain.WorkingHour, error)
	DeleteWorkingHour(ctx context.Context, auth domain.Credentials, hourID uuid.UUID) error

	ListBreaks(ctx context.Context, auth domain.Credentials) ([]domain.Break, error)
	CreateBreak(ctx context.Context, auth domain.Credentials, in domain.WorkingHourInput) (*domain.Break, error)
	UpdateBreak(ctx context.Context, auth domain.Credentials, breakID uuid.UUID, in domain.WorkingHourInput) (*domain.Break, error)
	DeleteBreak(ctx context.Context, auth domain.Credentials, breakID uuid.UUID) error

	ListTimeOff(ctx context.Context, auth domain.Credentials) ([]domain.TimeOff, error)
	CreateTimeOff(ctx context.Context, auth domain.Credentials, in domain.TimeOffInput) (*domain.TimeOff, error)
	UpdateTimeOff(ctx context.Context, auth domain.Credentials, timeOffID uuid.UUID, in domain.TimeOffInput) (*domain.TimeOff, error)
	DeleteTimeOff(ctx context.Context, auth domain.Credentials, timeOffID uuid.UUID) error

	ListAppointments(ctx context.Context, auth domain.Credentials, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	ConfirmAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) error

	// Public booking
	GetSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error)
	ListSalonBarbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error)
	ListBarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, error)
	GetAvailability(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error)
	CreateAppointment(ctx context.Context, auth domain.Credentials, in domain.BookingInput) (*domain.Appointment, error)

	// Owner dashboard
	RegisterSalon(ctx context.Context, in domain.RegisterSalonInput) (*domain.Salon, error)
	GetMySalon(ctx context.Context, auth domain.Credentials) (*domain.Salon, error)
	UpdateSalon(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.UpdateSalonInput) (*domain.Salon, error)
	ListBarbers(ctx context.Context, auth domain.Credentials, salonID uuid.UUID) ([]domain.Barber, error)
	CreateBarber(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.CreateBarberInput) (*domain.Barber, error)
	UpdateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID, in domain.UpdateBarberInput) (*domain.Barber, error)
	DeactivateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID) error
}
