package backend

import (
	"context"
	"net/http"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

type registerSalonPayload struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Phone      *string `json:"phone,omitempty"`
	Name       string  `json:"name"`
	SalonPhone string  `json:"salon_phone"`
	Address    string  `json:"address"`
	Timezone   string  `json:"timezone,omitempty"`
	Currency   string  `json:"currency,omitempty"`
}

// Registration creates the owner account and the salon in one call, the
// 201 body nests both under their own keys.
type registerSalonResponseDto struct {
	Salon salonDto `json:"salon"`
}

type updateSalonPayload struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
}

type createBarberPayload struct {
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	FullName            string  `json:"full_name"`
	Phone               *string `json:"phone,omitempty"`
	DisplayName         string  `json:"display_name"`
	SlotDurationMinutes int     `json:"slot_duration_minutes"`
}

type updateBarberPayload struct {
	DisplayName         string `json:"display_name"`
	Active              bool   `json:"active"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
}

func (c *Client) RegisterSalon(ctx context.Context, in domain.RegisterSalonInput) (*domain.Salon, error) {
	var dto registerSalonResponseDto
	err := c.do(ctx, http.MethodPost, "/salons", domain.Credentials{}, nil, registerSalonPayload{
		Email:      in.Owner.Email,
		Password:   in.Owner.Password,
		FullName:   in.Owner.FullName,
		Phone:      in.Owner.Phone,
		Name:       in.Salon.Name,
		SalonPhone: in.Salon.Phone,
		Address:    in.Salon.Address,
		Timezone:   in.Salon.Timezone,
		Currency:   in.Salon.Currency,
	}, &dto)
	if err != nil {
		return nil, err
	}
	salon := dto.Salon.toDomain()
	return &salon, nil
}

func (c *Client) GetMySalon(ctx context.Context, auth domain.Credentials) (*domain.Salon, error) {
	var dto salonDto
	if err := c.do(ctx, http.MethodGet, "/owner/me/salon", auth, nil, nil, &dto); err != nil {
		return nil, err
	}
	salon := dto.toDomain()
	return &salon, nil
}

func (c *Client) UpdateSalon(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.UpdateSalonInput) (*domain.Salon, error) {
	var dto salonDto
	err := c.do(ctx, http.MethodPut, "/salons/"+salonID.String(), auth, nil, updateSalonPayload{
		Name:     in.Name,
		Phone:    in.Phone,
		Address:  in.Address,
		Timezone: in.Timezone,
		Currency: in.Currency,
	}, &dto)
	if err != nil {
		return nil, err
	}
	salon := dto.toDomain()
	return &salon, nil
}

func (c *Client) ListBarbers(ctx context.Context, auth domain.Credentials, salonID uuid.UUID) ([]domain.Barber, error) {
	var dtos []barberDto
	path := "/salons/" + salonID.String() + "/barbers"
	if err := c.do(ctx, http.MethodGet, path, auth, nil, nil, &dtos); err != nil {
		return nil, err
	}
	return mapBarbers(dtos), nil
}

func (c *Client) CreateBarber(ctx context.Context, auth domain.Credentials, salonID uuid.UUID, in domain.CreateBarberInput) (*domain.Barber, error) {
	var dto barberDto
	path := "/salons/" + salonID.String() + "/barbers"
	err := c.do(ctx, http.MethodPost, path, auth, nil, createBarberPayload{
		Email:               in.Email,
		Password:            in.Password,
		FullName:            in.FullName,
		Phone:               in.Phone,
		DisplayName:         in.DisplayName,
		SlotDurationMinutes: in.SlotDurationMinutes,
	}, &dto)
	if err != nil {
		return nil, err
	}
	barber := dto.toDomain()
	return &barber, nil
}

func (c *Client) UpdateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID, in domain.UpdateBarberInput) (*domain.Barber, error) {
	var dto barberDto
	path := "/salons/" + salonID.String() + "/barbers/" + barberID.String()
	err := c.do(ctx, http.MethodPut, path, auth, nil, updateBarberPayload{
		DisplayName:         in.DisplayName,
		Active:              in.Active,
		SlotDurationMinutes: in.SlotDurationMinutes,
	}, &dto)
	if err != nil {
		return nil, err
	}
	barber := dto.toDomain()
	return &barber, nil
}

func (c *Client) DeactivateBarber(ctx context.Context, auth domain.Credentials, salonID, barberID uuid.UUID) error {
	path := "/salons/" + salonID.String() + "/barbers/" + barberID.String()
	return c.do(ctx, http.MethodDelete, path, auth, nil, nil, nil)
}
