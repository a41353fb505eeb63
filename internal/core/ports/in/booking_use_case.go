package in

import (
	"context"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

// BookingUseCase is the public booking flow backing the customer page.
type BookingUseCase interface {
	Salon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error)
	Barbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error)
	BarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, error)
	Availability(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error)

	// Book validates the payload and creates the appointment,
	// nothing is sent when validation fails.
	Book(ctx context.Context, in domain.BookingInput) (*domain.Appointment, error)
}
