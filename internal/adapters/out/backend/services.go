package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

type barberServiceDto struct {
	ID          uuid.UUID `json:"id"`
	BarberID    uuid.UUID `json:"barber_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	DurationMin int       `json:"duration_min"`
	Active      bool      `json:"active"`
	Currency    *string   `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d barberServiceDto) toDomain() domain.BarberService {
	currency := ""
	if d.Currency != nil {
		currency = *d.Currency
	}
	return domain.BarberService{
		ID:          d.ID,
		BarberID:    d.BarberID,
		Name:        d.Name,
		Price:       d.Price,
		DurationMin: d.DurationMin,
		Active:      d.Active,
		Currency:    currency,
		CreatedAt:   d.CreatedAt,
	}
}

func mapBarberServices(dtos []barberServiceDto) []domain.BarberService {
	services := make([]domain.BarberService, 0, len(dtos))
	for _, dto := range dtos {
		services = append(services, dto.toDomain())
	}
	return services
}

type createServicePayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type updateServicePayload struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Active      bool    `json:"active"`
}

func (c *Client) ListServices(ctx context.Context, auth domain.Credentials) ([]domain.BarberService, error) {
	// The backend answers null instead of [] when the barber has no services.
	var dtos []barberServiceDto
	if err := c.do(ctx, http.MethodGet, "/barber/services", auth, nil, nil, &dtos); err != nil {
		return nil, err
	}
	return mapBarberServices(dtos), nil
}

func (c *Client) CreateService(ctx context.Context, auth domain.Credentials, in domain.CreateServiceInput) (*domain.BarberService, error) {
	var dto barberServiceDto
	err := c.do(ctx, http.MethodPost, "/barber/services", auth, nil, createServicePayload{
		Name:        in.Name,
		Price:       in.Price,
		DurationMin: in.DurationMin,
	}, &dto)
	if err != nil {
		return nil, err
	}
	service := dto.toDomain()
	return &service, nil
}

func (c *Client) UpdateService(ctx context.Context, auth domain.Credentials, serviceID uuid.UUID, in domain.UpdateServiceInput) (*domain.BarberService, error) {
	var dto barberServiceDto
	err := c.do(ctx, http.MethodPut, "/barber/services/"+serviceID.String(), auth, nil, updateServicePayload{
		Name:        in.Name,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Active:      in.Active,
	}, &dto)
	if err != nil {
		return nil, err
	}
	service := dto.toDomain()
	return &service, nil
}

func (c *Client) DeleteService(ctx context.Context, auth domain.Credentials, serviceID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/barber/services/"+serviceID.String(), auth, nil, nil, nil)
}
