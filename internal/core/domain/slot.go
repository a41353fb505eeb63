package domain

import "time"

// AvailabilitySlot is a bookable interval as computed by the backend
// for the public booking flow.
type AvailabilitySlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// GridSlotKind classifies a slot on the barber's day grid.
type GridSlotKind string

const (
	GridSlotFree     GridSlotKind = "free"
	GridSlotOccupied GridSlotKind = "occupied"
	GridSlotBreak    GridSlotKind = "break"
)

// GridSlot is one cell of the barber's day grid: a fixed-duration candidate
// start time with its occupancy. Minutes are minutes since midnight in the
// salon's timezone.
type GridSlot struct {
	Label       string
	StartMinute int
	EndMinute   int
	Kind        GridSlotKind
	Appointment *Appointment
}

func (s GridSlot) Free() bool {
	return s.Kind == GridSlotFree
}
