package services

import (
	"context"
	"fmt"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BookingService backs the public booking page: catalog reads go through the
// cache when one is wired, availability and bookings always hit the backend.
type BookingService struct {
	backend  out.BackendPort
	cache    out.CachePort
	logger   out.LoggerPort
	validate *validator.Validate
}

func NewBookingService(backend out.BackendPort, cache out.CachePort, logger out.LoggerPort) *BookingService {
	return &BookingService{
		backend:  backend,
		cache:    cache,
		logger:   logger.WithModule("BookingService"),
		validate: validator.New(),
	}
}

func (s *BookingService) Salon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error) {
	if s.cache != nil {
		if salon, exists := s.cache.GetSalon(ctx, salonID); exists {
			s.logger.Debug("booking.salon.cache_hit", out.LogFields{
				"salonId": salonID,
			})
			return salon, nil
		}
	}

	salon, err := s.backend.GetSalon(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("booking.salon.fetch_failed: %w", err)
	}

	if s.cache != nil {
		s.cache.StoreSalon(ctx, *salon)
	}
	return salon, nil
}

func (s *BookingService) Barbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error) {
	if s.cache != nil {
		if barbers, exists := s.cache.GetSalonBarbers(ctx, salonID); exists {
			return barbers, nil
		}
	}

	barbers, err := s.backend.ListSalonBarbers(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("booking.barbers.fetch_failed: %w", err)
	}

	if s.cache != nil {
		s.cache.StoreSalonBarbers(ctx, salonID, barbers)
	}
	return barbers, nil
}

func (s *BookingService) BarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, error) {
	if s.cache != nil {
		if services, exists := s.cache.GetBarberServices(ctx, barberID); exists {
			return services, nil
		}
	}

	services, err := s.backend.ListBarberServices(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("booking.services.fetch_failed: %w", err)
	}

	if s.cache != nil {
		s.cache.StoreBarberServices(ctx, barberID, services)
	}
	return services, nil
}

func (s *BookingService) Availability(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error) {
	slots, err := s.backend.GetAvailability(ctx, barberID, serviceID, date)
	if err != nil {
		return nil, fmt.Errorf("booking.availability.fetch_failed: %w", err)
	}
	return slots, nil
}

func (s *BookingService) Book(ctx context.Context, in domain.BookingInput) (*domain.Appointment, error) {
	if err := s.validate.Struct(in); err != nil {
		s.logger.Debug("booking.book.validation_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("booking.book.validation_failed: %w", err)
	}

	appointment, err := s.backend.CreateAppointment(ctx, domain.Credentials{}, in)
	if err != nil {
		s.logger.Warn("booking.book.failed", out.LogFields{
			"barberId": in.BarberID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("booking.book.failed: %w", err)
	}

	s.logger.Info("booking.book.success", out.LogFields{
		"appointmentId": appointment.ID,
		"barberId":      appointment.BarberID,
		"startAt":       appointment.StartAt,
	})
	return appointment, nil
}
