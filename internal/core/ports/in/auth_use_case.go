package in

import (
	"context"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
)

// AuthUseCase holds the barber app's login session.
type AuthUseCase interface {
	// Restore loads previously persisted credentials, if any.
	Restore(ctx context.Context) error

	// Login exchanges credentials for a token and persists it.
	// On failure the current session is left untouched.
	Login(ctx context.Context, email, password string) error

	Logout(ctx context.Context) error

	// Credentials returns the active token, ok is false when anonymous.
	Credentials() (domain.Credentials, bool)
}
