package services

import (
	"context"
	"strings"
	"sync"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
)

// AuthService holds the barber app's session: one token, restored from the
// token store on startup and replaced only by a successful login. Tokens are
// never refreshed, an expired one simply makes the next call fail with 401.
type AuthService struct {
	backend out.BackendPort
	store   out.TokenStorePort
	logger  out.LoggerPort

	mu    sync.RWMutex
	creds domain.Credentials
}

func NewAuthService(backend out.BackendPort, store out.TokenStorePort, logger out.LoggerPort) *AuthService {
	return &AuthService{
		backend: backend,
		store:   store,
		logger:  logger.WithModule("AuthService"),
	}
}

func (s *AuthService) Restore(ctx context.Context) error {
	creds, err := s.store.Load(ctx)
	if err != nil {
		// An unreadable store means a fresh session, not a failure.
		s.logger.Warn("auth.restore.load_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil
	}

	if creds.IsZero() {
		s.logger.Debug("auth.restore.anonymous", out.LogFields{})
		return nil
	}

	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()

	s.logger.Info("auth.restore.authenticated", out.LogFields{
		"tokenType": creds.TokenType,
	})
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))

	creds, err := s.backend.BarberLogin(ctx, normalized, password)
	if err != nil {
		s.logger.Warn("auth.login.failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	if err := s.store.Save(ctx, creds); err != nil {
		s.logger.Error("auth.login.persist_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()

	s.logger.Info("auth.login.success", out.LogFields{})
	return nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)

	s.mu.Lock()
	s.creds = domain.Credentials{}
	s.mu.Unlock()

	s.logger.Info("auth.logout", out.LogFields{})
	return err
}

func (s *AuthService) Credentials() (domain.Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds, !s.creds.IsZero()
}
