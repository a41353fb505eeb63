package in

import (
	"context"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

// BarberAreaUseCase is the barber app feature set: own catalog, weekly
// schedule, time off and the appointment book.
type BarberAreaUseCase interface {
	Profile(ctx context.Context) (*domain.Barber, error)

	// ForgetProfile drops memoized identity state, callers invoke it
	// on logout so the next session refetches.
	ForgetProfile()

	Services(ctx context.Context) ([]domain.BarberService, error)
	AddService(ctx context.Context, in domain.CreateServiceInput) (*domain.BarberService, error)
	EditService(ctx context.Context, serviceID uuid.UUID, in domain.UpdateServiceInput) (*domain.BarberService, error)
	RemoveService(ctx context.Context, serviceID uuid.UUID) error

	WorkingHours(ctx context.Context) ([]domain.WorkingHour, error)
	AddWorkingHour(ctx context.Context, in domain.WorkingHourInput) (*domain.WorkingHour, error)
	EditWorkingHour(ctx context.Context, hourID uuid.UUID, in domain.WorkingHourInput) (*domain.WorkingHour, error)
	RemoveWorkingHour(ctx context.Context, hourID uuid.UUID) error

	Breaks(ctx context.Context) ([]domain.Break, error)
	AddBreak(ctx context.Context, in domain.WorkingHourInput) (*domain.Break, error)
	EditBreak(ctx context.Context, breakID uuid.UUID, in domain.WorkingHourInput) (*domain.Break, error)
	RemoveBreak(ctx context.Context, breakID uuid.UUID) error

	TimeOff(ctx context.Context) ([]domain.TimeOff, error)
	AddTimeOff(ctx context.Context, in domain.TimeOffInput) (*domain.TimeOff, error)
	EditTimeOff(ctx context.Context, timeOffID uuid.UUID, in domain.TimeOffInput) (*domain.TimeOff, error)
	RemoveTimeOff(ctx context.Context, timeOffID uuid.UUID) error

	Appointments(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	ConfirmAppointment(ctx context.Context, appointmentID uuid.UUID) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) (*domain.Appointment, error)
	RemoveAppointment(ctx context.Context, appointmentID uuid.UUID) error

	// DayGrid assembles the slot grid for one calendar day from working
	// hours, breaks and appointments, in the salon's timezone.
	DayGrid(ctx context.Context, date time.Time) ([]domain.GridSlot, error)

	// BookSlot creates an appointment for a customer the barber adds by
	// hand from a free grid slot.
	BookSlot(ctx context.Context, date time.Time, startMinute int, serviceID uuid.UUID, customer domain.CustomerInfo) (*domain.Appointment, error)
}
