package in

import (
	"context"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

// OwnerUseCase backs the owner dashboard. The gateway keeps no session,
// credentials travel with every call.
type OwnerUseCase interface {
	Register(ctx context.Context, in domain.RegisterSalonInput) (*domain.Salon, error)
	Login(ctx context.Context, email, password string) (domain.Credentials, error)

	MySalon(ctx context.Context, auth domain.Credentials) (*domain.Salon, error)
	UpdateSalon(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.UpdateSalonInput) (*domain.Salon, error)

	Barbers(ctx context.Context, auth domain.Credentials, salonID uuid.UUID) ([]domain.Barber, error)
	AddBarber(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.CreateBarberInput) (*domain.Barber, error)
	EditBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID, in domain.UpdateBarberInput) (*domain.Barber, error)
	DeactivateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID) error
}
