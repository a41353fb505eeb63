package backend

import (
	"context"
	"net/http"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/json_types"
	"github.com/google/uuid"
)

// scheduleEntryDto covers both working hours and breaks, the backend
// serializes them identically.
type scheduleEntryDto struct {
	ID        uuid.UUID            `json:"id"`
	BarberID  uuid.UUID            `json:"barber_id"`
	DayOfWeek int                  `json:"day_of_week"`
	StartTime json_types.TimeOfDay `json:"start_time"`
	EndTime   json_types.TimeOfDay `json:"end_time"`
}

func (d scheduleEntryDto) toWorkingHour() domain.WorkingHour {
	return domain.WorkingHour{
		ID:        d.ID,
		BarberID:  d.BarberID,
		DayOfWeek: d.DayOfWeek,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

func (d scheduleEntryDto) toBreak() domain.Break {
	return domain.Break{
		ID:        d.ID,
		BarberID:  d.BarberID,
		DayOfWeek: d.DayOfWeek,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

type scheduleEntryPayload struct {
	DayOfWeek int                  `json:"day_of_week"`
	StartTime json_types.TimeOfDay `json:"start_time"`
	EndTime   json_types.TimeOfDay `json:"end_time"`
}

func scheduleBody(in domain.WorkingHourInput) scheduleEntryPayload {
	return scheduleEntryPayload{
		DayOfWeek: in.DayOfWeek,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
}

func (c *Client) ListWorkingHours(ctx context.Context, auth domain.Credentials) ([]domain.WorkingHour, error) {
	var dtos []scheduleEntryDto
	if err := c.do(ctx, http.MethodGet, "/barber/working-hours", auth, nil, nil, &dtos); err != nil {
		return nil, err
	}
	hours := make([]domain.WorkingHour, 0, len(dtos))
	for _, dto := range dtos {
		hours = append(hours, dto.toWorkingHour())
	}
	return hours, nil
}

func (c *Client) CreateWorkingHour(ctx context.Context, auth domain.Credentials, in domain.WorkingHourInput) (*domain.WorkingHour, error) {
	var dto scheduleEntryDto
	if err := c.do(ctx, http.MethodPost, "/barber/working-hours", auth, nil, scheduleBody(in), &dto); err != nil {
		return nil, err
	}
	hour := dto.toWorkingHour()
	return &hour, nil
}

func (c *Client) UpdateWorkingHour(ctx context.Context, auth domain.Credentials, hourID uuid.UUID, in domain.WorkingHourInput) (*domain.WorkingHour, error) {
	var dto scheduleEntryDto
	if err := c.do(ctx, http.MethodPut, "/barber/working-hours/"+hourID.String(), auth, nil, scheduleBody(in), &dto); err != nil {
		return nil, err
	}
	hour := dto.toWorkingHour()
	return &hour, nil
}

func (c *Client) DeleteWorkingHour(ctx context.Context, auth domain.Credentials, hourID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/barber/working-hours/"+hourID.String(), auth, nil, nil, nil)
}

func (c *Client) ListBreaks(ctx context.Context, auth domain.Credentials) ([]domain.Break, error) {
	var dtos []scheduleEntryDto
	if err := c.do(ctx, http.MethodGet, "/barber/breaks", auth, nil, nil, &dtos); err != nil {
		return nil, err
	}
	breaks := make([]domain.Break, 0, len(dtos))
	for _, dto := range dtos {
		breaks = append(breaks, dto.toBreak())
	}
	return breaks, nil
}

func (c *Client) CreateBreak(ctx context.Context, auth domain.Credentials, in domain.WorkingHourInput) (*domain.Break, error) {
	var dto scheduleEntryDto
	if err := c.do(ctx, http.MethodPost, "/barber/breaks", auth, nil, scheduleBody(in), &dto); err != nil {
		return nil, err
	}
	brk := dto.toBreak()
	return &brk, nil
}

func (c *Client) UpdateBreak(ctx context.Context, auth domain.Credentials, breakID uuid.UUID, in domain.WorkingHourInput) (*domain.Break, error) {
	var dto scheduleEntryDto
	if err := c.do(ctx, http.MethodPut, "/barber/breaks/"+breakID.String(), auth, nil, scheduleBody(in), &dto); err != nil {
		return nil, err
	}
	brk := dto.toBreak()
	return &brk, nil
}

func (c *Client) DeleteBreak(ctx context.Context, auth domain.Credentials, breakID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/barber/breaks/"+breakID.String(), auth, nil, nil, nil)
}
