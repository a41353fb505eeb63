package cache

import (
	"context"
	"sync"

	"github.com/BirtasevicLazar/barberbook-go/internal/config"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheAdapter keeps the public catalog (salon profile, barber roster,
// per-barber services) in small LRU caches so the booking screens do not
// refetch it on every step. Entries never expire on their own, owner
// mutations call InvalidateSalon.
type CacheAdapter struct {
	salons   *lru.Cache[uuid.UUID, domain.Salon]
	barbers  *lru.Cache[uuid.UUID, []domain.Barber]
	services *lru.Cache[uuid.UUID, []domain.BarberService]
	mu       sync.RWMutex
	logger   out.LoggerPort
}

// NewCacheAdapter always constructs a usable cache, the enabled flag is
// the caller's concern.
func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	salons, err := lru.New[uuid.UUID, domain.Salon](cfg.Cache.CatalogSize)
	if err != nil {
		logger.Error("cache.salons.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.CatalogSize,
		})
		return nil, err
	}

	barbers, err := lru.New[uuid.UUID, []domain.Barber](cfg.Cache.CatalogSize)
	if err != nil {
		logger.Error("cache.barbers.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.CatalogSize,
		})
		return nil, err
	}

	services, err := lru.New[uuid.UUID, []domain.BarberService](cfg.Cache.CatalogSize)
	if err != nil {
		logger.Error("cache.services.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.CatalogSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		salons:   salons,
		barbers:  barbers,
		services: services,
		logger:   logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	salon, exists := c.salons.Get(salonID)
	if !exists {
		c.logger.Debug("cache.salon.get.miss", out.LogFields{
			"salonId": salonID,
		})
		return nil, false
	}

	c.logger.Debug("cache.salon.get.hit", out.LogFields{
		"salonId": salonID,
	})
	return &salon, true
}

func (c *CacheAdapter) StoreSalon(ctx context.Context, salon domain.Salon) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.salon.store", out.LogFields{
		"salonId": salon.ID,
	})
	c.salons.Add(salon.ID, salon)
}

func (c *CacheAdapter) GetSalonBarbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	barbers, exists := c.barbers.Get(salonID)
	if !exists {
		c.logger.Debug("cache.barbers.get.miss", out.LogFields{
			"salonId": salonID,
		})
		return nil, false
	}

	c.logger.Debug("cache.barbers.get.hit", out.LogFields{
		"salonId":      salonID,
		"barbersCount": len(barbers),
	})
	return barbers, true
}

func (c *CacheAdapter) StoreSalonBarbers(ctx context.Context, salonID uuid.UUID, barbers []domain.Barber) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.barbers.store", out.LogFields{
		"salonId":      salonID,
		"barbersCount": len(barbers),
	})
	c.barbers.Add(salonID, barbers)
}

func (c *CacheAdapter) GetBarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	services, exists := c.services.Get(barberID)
	if !exists {
		c.logger.Debug("cache.services.get.miss", out.LogFields{
			"barberId": barberID,
		})
		return nil, false
	}

	c.logger.Debug("cache.services.get.hit", out.LogFields{
		"barberId":      barberID,
		"servicesCount": len(services),
	})
	return services, true
}

func (c *CacheAdapter) StoreBarberServices(ctx context.Context, barberID uuid.UUID, services []domain.BarberService) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.services.store", out.LogFields{
		"barberId":      barberID,
		"servicesCount": len(services),
	})
	c.services.Add(barberID, services)
}

// InvalidateSalon drops the salon profile and roster, plus the service
// lists of every barber in the cached roster.
func (c *CacheAdapter) InvalidateSalon(ctx context.Context, salonID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if barbers, exists := c.barbers.Get(salonID); exists {
		for _, barber := range barbers {
			c.services.Remove(barber.ID)
		}
	}
	c.salons.Remove(salonID)
	c.barbers.Remove(salonID)

	c.logger.Debug("cache.salon.invalidate", out.LogFields{
		"salonId": salonID,
	})
}
