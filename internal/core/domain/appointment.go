package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID              uuid.UUID
	SalonID         uuid.UUID
	BarberID        uuid.UUID
	BarberServiceID uuid.UUID
	ServiceName     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	Price           float64
	DurationMin     int
	StartAt         time.Time
	EndAt           time.Time
	Status          AppointmentStatus
	Notes           string
	CreatedAt       time.Time
}

// Blocks reports whether the appointment occupies its interval,
// canceled ones do not.
func (a Appointment) Blocks() bool {
	return a.Status != AppointmentStatusCanceled
}

// AppointmentFilter narrows the barber appointment listing.
// Zero values mean no constraint.
type AppointmentFilter struct {
	From   time.Time
	To     time.Time
	Status AppointmentStatus
}

// BookingInput is the public create-appointment payload.
type BookingInput struct {
	SalonID         uuid.UUID `validate:"required"`
	BarberID        uuid.UUID `validate:"required"`
	BarberServiceID uuid.UUID `validate:"required"`
	CustomerName    string    `validate:"required"`
	CustomerPhone   string    `validate:"required"`
	CustomerEmail   string    `validate:"omitempty,email"`
	StartAt         time.Time `validate:"required"`
	Notes           string
}
