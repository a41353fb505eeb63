package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/json_types"
	"github.com/google/uuid"
)

// Timestamps may arrive without a timezone suffix, the tolerant wrappers
// handle both forms.
type timeOffDto struct {
	ID       uuid.UUID           `json:"id"`
	BarberID uuid.UUID           `json:"barber_id"`
	StartAt  json_types.DateTime `json:"start_at"`
	EndAt    json_types.DateTime `json:"end_at"`
	Reason   *string             `json:"reason"`
}

func (d timeOffDto) toDomain() domain.TimeOff {
	reason := ""
	if d.Reason != nil {
		reason = *d.Reason
	}
	return domain.TimeOff{
		ID:       d.ID,
		BarberID: d.BarberID,
		StartAt:  d.StartAt.Date,
		EndAt:    d.EndAt.Date,
		Reason:   reason,
	}
}

type timeOffPayload struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Reason  string    `json:"reason,omitempty"`
}

func (c *Client) ListTimeOff(ctx context.Context, auth domain.Credentials) ([]domain.TimeOff, error) {
	var dtos []timeOffDto
	if err := c.do(ctx, http.MethodGet, "/barber/time-off", auth, nil, nil, &dtos); err != nil {
		return nil, err
	}
	entries := make([]domain.TimeOff, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, dto.toDomain())
	}
	return entries, nil
}

func (c *Client) CreateTimeOff(ctx context.Context, auth domain.Credentials, in domain.TimeOffInput) (*domain.TimeOff, error) {
	var dto timeOffDto
	err := c.do(ctx, http.MethodPost, "/barber/time-off", auth, nil, timeOffPayload{
		StartAt: in.StartAt,
		EndAt:   in.EndAt,
		Reason:  in.Reason,
	}, &dto)
	if err != nil {
		return nil, err
	}
	entry := dto.toDomain()
	return &entry, nil
}

func (c *Client) UpdateTimeOff(ctx context.Context, auth domain.Credentials, timeOffID uuid.UUID, in domain.TimeOffInput) (*domain.TimeOff, error) {
	var dto timeOffDto
	err := c.do(ctx, http.MethodPut, "/barber/time-off/"+timeOffID.String(), auth, nil, timeOffPayload{
		StartAt: in.StartAt,
		EndAt:   in.EndAt,
		Reason:  in.Reason,
	}, &dto)
	if err != nil {
		return nil, err
	}
	entry := dto.toDomain()
	return &entry, nil
}

func (c *Client) DeleteTimeOff(ctx context.Context, auth domain.Credentials, timeOffID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/barber/time-off/"+timeOffID.String(), auth, nil, nil, nil)
}
