package backend

import (
	"context"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

type salonDto struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Timezone  string    `json:"timezone"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

func (d salonDto) toDomain() domain.Salon {
	return domain.Salon{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Address:   d.Address,
		Timezone:  d.Timezone,
		Currency:  d.Currency,
		CreatedAt: d.CreatedAt,
	}
}

type barberDto struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	SalonID             uuid.UUID `json:"salon_id"`
	DisplayName         string    `json:"display_name"`
	Active              bool      `json:"active"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	CreatedAt           time.Time `json:"created_at"`
}

func (d barberDto) toDomain() domain.Barber {
	return domain.Barber{
		ID:                  d.ID,
		UserID:              d.UserID,
		SalonID:             d.SalonID,
		DisplayName:         d.DisplayName,
		Active:              d.Active,
		SlotDurationMinutes: d.SlotDurationMinutes,
		CreatedAt:           d.CreatedAt,
	}
}

func mapBarbers(dtos []barberDto) []domain.Barber {
	barbers := make([]domain.Barber, 0, len(dtos))
	for _, dto := range dtos {
		barbers = append(barbers, dto.toDomain())
	}
	return barbers
}

type bookingPayload struct {
	SalonID         uuid.UUID `json:"salon_id"`
	BarberID        uuid.UUID `json:"barber_id"`
	BarberServiceID uuid.UUID `json:"barber_service_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	StartAt         time.Time `json:"start_at"`
	Notes           string    `json:"notes,omitempty"`
}

func (c *Client) GetBarberProfile(ctx context.Context, auth domain.Credentials) (*domain.Barber, error) {
	var dto barberDto
	if err := c.do(ctx, http.MethodGet, "/barber/me", auth, nil, nil, &dto); err != nil {
		return nil, err
	}
	barber := dto.toDomain()
	return &barber, nil
}

func (c *Client) GetSalon(ctx context.Context, salonID uuid.UUID) (*domain.Salon, error) {
	var dto salonDto
	if err := c.do(ctx, http.MethodGet, "/public/salons/"+salonID.String(), domain.Credentials{}, nil, nil, &dto); err != nil {
		return nil, err
	}
	salon := dto.toDomain()
	return &salon, nil
}

func (c *Client) ListSalonBarbers(ctx context.Context, salonID uuid.UUID) ([]domain.Barber, error) {
	var dtos []barberDto
	path := "/public/salons/" + salonID.String() + "/barbers"
	if err := c.do(ctx, http.MethodGet, path, domain.Credentials{}, nil, nil, &dtos); err != nil {
		return nil, err
	}
	return mapBarbers(dtos), nil
}

func (c *Client) ListBarberServices(ctx context.Context, barberID uuid.UUID) ([]domain.BarberService, error) {
	var dtos []barberServiceDto
	path := "/public/barbers/" + barberID.String() + "/services"
	if err := c.do(ctx, http.MethodGet, path, domain.Credentials{}, nil, nil, &dtos); err != nil {
		return nil, err
	}
	return mapBarberServices(dtos), nil
}

func (c *Client) GetAvailability(ctx context.Context, barberID, serviceID uuid.UUID, date time.Time) ([]domain.AvailabilitySlot, error) {
	query := nurl.Values{}
	query.Set("date", date.Format("2006-01-02"))

	var slots []domain.AvailabilitySlot
	path := "/public/barbers/" + barberID.String() + "/services/" + serviceID.String() + "/availability"
	if err := c.do(ctx, http.MethodGet, path, domain.Credentials{}, query, nil, &slots); err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []domain.AvailabilitySlot{}
	}
	return slots, nil
}

func (c *Client) CreateAppointment(ctx context.Context, auth domain.Credentials, in domain.BookingInput) (*domain.Appointment, error) {
	var dto appointmentDto
	err := c.do(ctx, http.MethodPost, "/public/appointments", auth, nil, bookingPayload{
		SalonID:         in.SalonID,
		BarberID:        in.BarberID,
		BarberServiceID: in.BarberServiceID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		StartAt:         in.StartAt,
		Notes:           in.Notes,
	}, &dto)
	if err != nil {
		return nil, err
	}
	appointment := dto.toDomain()
	return &appointment, nil
}
