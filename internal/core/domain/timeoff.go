package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TimeOff is a one-off date range during which a barber is entirely
// unavailable, multi-day ranges included.
type TimeOff struct {
	ID       uuid.UUID
	BarberID uuid.UUID
	StartAt  time.Time
	EndAt    time.Time
	Reason   string
}

// InclusiveDays counts calendar days the range touches,
// ceil of the span in days plus one.
func (t TimeOff) InclusiveDays() int {
	span := t.EndAt.Sub(t.StartAt)
	if span < 0 {
		return 0
	}
	return int(math.Ceil(span.Hours()/24)) + 1
}

type TimeOffInput struct {
	StartAt time.Time `validate:"required"`
	EndAt   time.Time `validate:"required"`
	Reason  string
}

func (i TimeOffInput) Valid() bool {
	return !i.StartAt.IsZero() && !i.EndAt.IsZero() && i.StartAt.Before(i.EndAt)
}
