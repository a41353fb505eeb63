package domain

import (
	"time"

	"github.com/google/uuid"
)

// Barber is the barber profile as the apps see it.
// SlotDurationMinutes drives the granularity of the day grid.
type Barber struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	SalonID             uuid.UUID
	DisplayName         string
	Active              bool
	SlotDurationMinutes int
	CreatedAt           time.Time
}

// CreateBarberInput is the owner-side payload for adding a barber,
// the backend creates the user account alongside the profile.
type CreateBarberInput struct {
	Email               string  `validate:"required,email"`
	Password            string  `validate:"required,min=6"`
	FullName            string  `validate:"required"`
	Phone               *string `validate:"omitempty"`
	DisplayName         string  `validate:"required"`
	SlotDurationMinutes int     `validate:"required,min=1"`
}

type UpdateBarberInput struct {
	DisplayName         string `validate:"required"`
	Active              bool
	SlotDurationMinutes int `validate:"required,min=1"`
}
