package domain

import (
	"time"

	"github.com/google/uuid"
)

type Salon struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Address   string
	Timezone  string
	Currency  string
	CreatedAt time.Time
}

// Location resolves the salon's configured timezone, falling back to UTC
// when the name is unknown to the tz database.
func (s Salon) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RegisterSalonInput creates the owner account and the salon in one call.
type RegisterSalonInput struct {
	Owner struct {
		Email    string  `validate:"required,email"`
		Password string  `validate:"required,min=6"`
		FullName string  `validate:"required"`
		Phone    *string `validate:"omitempty"`
	}
	Salon struct {
		Name     string `validate:"required"`
		Phone    string `validate:"required"`
		Address  string `validate:"required"`
		Timezone string
		Currency string
	}
}

type UpdateSalonInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Address  string `validate:"required"`
	Timezone string `validate:"required"`
	Currency string `validate:"required"`
}
