package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OwnerService backs the owner dashboard. It is stateless, the web client
// keeps the token and sends it with every request.
type OwnerService struct {
	backend  out.BackendPort
	cache    out.CachePort
	logger   out.LoggerPort
	validate *validator.Validate
}

func NewOwnerService(backend out.BackendPort, cache out.CachePort, logger out.LoggerPort) *OwnerService {
	return &OwnerService{
		backend:  backend,
		cache:    cache,
		logger:   logger.WithModule("OwnerService"),
		validate: validator.New(),
	}
}

func (s *OwnerService) Register(ctx context.Context, in domain.RegisterSalonInput) (*domain.Salon, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("owner.register.validation_failed: %w", err)
	}

	salon, err := s.backend.RegisterSalon(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("owner.register.failed: %w", err)
	}

	s.logger.Info("owner.register.success", out.LogFields{
		"salonId": salon.ID,
	})
	return salon, nil
}

func (s *OwnerService) Login(ctx context.Context, email, password string) (domain.Credentials, error) {
	return s.backend.OwnerLogin(ctx, strings.ToLower(strings.TrimSpace(email)), password)
}

func (s *OwnerService) MySalon(ctx context.Context, auth domain.Credentials) (*domain.Salon, error) {
	return s.backend.GetMySalon(ctx, auth)
}

func (s *OwnerService) UpdateSalon(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.UpdateSalonInput) (*domain.Salon, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("owner.update_salon.validation_failed: %w", err)
	}

	salon, err := s.backend.UpdateSalon(ctx, auth, salonID, in)
	if err != nil {
		return nil, err
	}

	// The public page caches the salon profile, drop the stale copy.
	if s.cache != nil {
		s.cache.InvalidateSalon(ctx, salonID)
	}
	return salon, nil
}

func (s *OwnerService) Barbers(ctx context.Context, auth domain.Credentials, salonID uuid.UUID) ([]domain.Barber, error) {
	return s.backend.ListBarbers(ctx, auth, salonID)
}

func (s *OwnerService) AddBarber(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.CreateBarberInput) (*domain.Barber, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("owner.add_barber.validation_failed: %w", err)
	}

	barber, err := s.backend.CreateBarber(ctx, auth, salonID, in)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateSalon(ctx, salonID)
	}
	return barber, nil
}

func (s *OwnerService) EditBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID, in domain.UpdateBarberInput) (*domain.Barber, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("owner.edit_barber.validation_failed: %w", err)
	}

	barber, err := s.backend.UpdateBarber(ctx, auth, salonID, barberID, in)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.InvalidateSalon(ctx, salonID)
	}
	return barber, nil
}

func (s *OwnerService) DeactivateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID) error {
	if err := s.backend.DeactivateBarber(ctx, auth, salonID, barberID); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.InvalidateSalon(ctx, salonID)
	}
	return nil
}
