package out

import (
	"context"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
)

// TokenStorePort persists the bearer token between runs,
// the device-storage analog of the mobile app.
type TokenStorePort interface {
	Load(ctx context.Context) (domain.Credentials, error)
	Save(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}
