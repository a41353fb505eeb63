package cache

import (
	"context"
	"testing"

	"github.com/BirtasevicLazar/barberbook-go/internal/config"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}
func (nopLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return nopLogger{}
}
func (nopLogger) WithModule(module string) out.LoggerPort {
	return nopLogger{}
}

func testAdapter(t *testing.T) *CacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = false
	cfg.Cache.CatalogSize = 8

	adapter, err := NewCacheAdapter(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adapter == nil {
		t.Fatal("constructor must return a usable adapter regardless of the enabled flag")
	}
	return adapter
}

func TestCacheAdapterSalonRoundTrip(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()

	salon := domain.Salon{ID: uuid.New(), Name: "Figaro", Timezone: "Europe/Belgrade"}
	if _, exists := adapter.GetSalon(ctx, salon.ID); exists {
		t.Fatal("empty cache reported a hit")
	}

	adapter.StoreSalon(ctx, salon)
	got, exists := adapter.GetSalon(ctx, salon.ID)
	if !exists {
		t.Fatal("stored salon not found")
	}
	if got.Name != "Figaro" {
		t.Errorf("salon name %q", got.Name)
	}
}

func TestCacheAdapterInvalidateSalonDropsBarberServices(t *testing.T) {
	adapter := testAdapter(t)
	ctx := context.Background()

	salonID := uuid.New()
	barber := domain.Barber{ID: uuid.New(), SalonID: salonID}

	adapter.StoreSalon(ctx, domain.Salon{ID: salonID, Name: "Figaro"})
	adapter.StoreSalonBarbers(ctx, salonID, []domain.Barber{barber})
	adapter.StoreBarberServices(ctx, barber.ID, []domain.BarberService{{ID: uuid.New(), BarberID: barber.ID}})

	adapter.InvalidateSalon(ctx, salonID)

	if _, exists := adapter.GetSalon(ctx, salonID); exists {
		t.Error("salon survived invalidation")
	}
	if _, exists := adapter.GetSalonBarbers(ctx, salonID); exists {
		t.Error("roster survived invalidation")
	}
	if _, exists := adapter.GetBarberServices(ctx, barber.ID); exists {
		t.Error("barber services survived invalidation")
	}
}
