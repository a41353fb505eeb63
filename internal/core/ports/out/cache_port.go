package out

import (
	"context"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

// CachePort caches public catalog reads for the booking flow. Appointments
// and availability are never cached, the backend owns those.
type CachePort interface {
	GetSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, bool)
	StoreSalon(ctx context.Context, salon domain.Salon)

	GetSalonBarbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, bool)
	StoreSalonBarbers(ctx context.Context, salonID uuid.UUID, barbers []domain.Barber)

	GetBarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, bool)
	StoreBarberServices(ctx context.Context, barberID uuid.UUID, services []domain.BarberService)

	InvalidateSalon(ctx context.Context, salonID uuid.UUID)
}
