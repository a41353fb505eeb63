package domain

import (
	"time"

	"github.com/google/uuid"
)

// BarberService is a bookable service offered by a barber.
// Deleting a service only flips Active off, history keeps referencing it.
type BarberService struct {
	ID          uuid.UUID
	BarberID    uuid.UUID
	Name        string
	Price       float64
	DurationMin int
	Active      bool
	Currency    string
	CreatedAt   time.Time
}

type CreateServiceInput struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
	DurationMin int     `validate:"required,min=1"`
}

type UpdateServiceInput struct {
	Name        string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
	DurationMin int     `validate:"required,min=1"`
	Active      bool
}
