package backend

import (
	"context"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/json_types"
	"github.com/google/uuid"
)

type appointmentDto struct {
	ID              uuid.UUID           `json:"id"`
	SalonID         uuid.UUID           `json:"salon_id"`
	BarberID        uuid.UUID           `json:"barber_id"`
	BarberServiceID uuid.UUID           `json:"barber_service_id"`
	ServiceName     string              `json:"service_name"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   *string             `json:"customer_email"`
	Price           float64             `json:"price"`
	DurationMin     int                 `json:"duration_min"`
	StartAt         json_types.DateTime `json:"start_at"`
	EndAt           json_types.DateTime `json:"end_at"`
	Status          string              `json:"status"`
	Notes           *string             `json:"notes"`
	CreatedAt       json_types.DateTime `json:"created_at"`
}

func (d appointmentDto) toDomain() domain.Appointment {
	email := ""
	if d.CustomerEmail != nil {
		email = *d.CustomerEmail
	}
	notes := ""
	if d.Notes != nil {
		notes = *d.Notes
	}
	return domain.Appointment{
		ID:              d.ID,
		SalonID:         d.SalonID,
		BarberID:        d.BarberID,
		BarberServiceID: d.BarberServiceID,
		ServiceName:     d.ServiceName,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		CustomerEmail:   email,
		Price:           d.Price,
		DurationMin:     d.DurationMin,
		StartAt:         d.StartAt.Date,
		EndAt:           d.EndAt.Date,
		Status:          domain.AppointmentStatus(d.Status),
		Notes:           notes,
		CreatedAt:       d.CreatedAt.Date,
	}
}

func (c *Client) ListAppointments(ctx context.Context, auth domain.Credentials, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	query := nurl.Values{}
	if !filter.From.IsZero() {
		query.Set("from", filter.From.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		query.Set("to", filter.To.Format(time.RFC3339))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var dtos []appointmentDto
	if err := c.do(ctx, http.MethodGet, "/barber/appointments", auth, query, nil, &dtos); err != nil {
		return nil, err
	}
	appointments := make([]domain.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		appointments = append(appointments, dto.toDomain())
	}
	return appointments, nil
}

func (c *Client) ConfirmAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) (*domain.Appointment, error) {
	return c.appointmentAction(ctx, auth, appointmentID, "confirm")
}

func (c *Client) CancelAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) (*domain.Appointment, error) {
	return c.appointmentAction(ctx, auth, appointmentID, "cancel")
}

func (c *Client) appointmentAction(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID, action string) (*domain.Appointment, error) {
	var dto appointmentDto
	path := "/barber/appointments/" + appointmentID.String() + "/" + action
	if err := c.do(ctx, http.MethodPost, path, auth, nil, nil, &dto); err != nil {
		return nil, err
	}
	appointment := dto.toDomain()
	return &appointment, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, auth domain.Credentials, appointmentID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/barber/appointments/"+appointmentID.String(), auth, nil, nil, nil)
}
