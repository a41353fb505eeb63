package domain

import (
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/json_types"
	"github.com/google/uuid"
)

// WorkingHour is a recurring weekly interval during which a barber accepts
// appointments. DayOfWeek follows the wire convention, 0=Sunday.
type WorkingHour struct {
	ID        uuid.UUID
	BarberID  uuid.UUID
	DayOfWeek int
	StartTime json_types.TimeOfDay
	EndTime   json_types.TimeOfDay
}

// Break is a recurring weekly interval excluded from availability
// within the barber's working hours.
type Break struct {
	ID        uuid.UUID
	BarberID  uuid.UUID
	DayOfWeek int
	StartTime json_types.TimeOfDay
	EndTime   json_types.TimeOfDay
}

type WorkingHourInput struct {
	DayOfWeek int `validate:"min=0,max=6"`
	StartTime json_types.TimeOfDay
	EndTime   json_types.TimeOfDay
}

// Valid reports whether the interval is well formed, end strictly after start.
func (i WorkingHourInput) Valid() bool {
	return i.DayOfWeek >= 0 && i.DayOfWeek <= 6 && i.StartTime.Before(i.EndTime)
}

// Display order is Monday-first, the wire stays 0=Sunday.
var displayToWireDay = [7]int{1, 2, 3, 4, 5, 6, 0}
var wireToDisplayDay = [7]int{6, 0, 1, 2, 3, 4, 5}

var dayNames = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// DisplayToWireDay maps a Monday-first display index (0..6) to the
// backend's 0=Sunday day_of_week.
func DisplayToWireDay(display int) int {
	return displayToWireDay[display]
}

// WireToDisplayDay maps a backend day_of_week to the Monday-first index.
func WireToDisplayDay(wire int) int {
	return wireToDisplayDay[wire]
}

// DisplayDayName names a Monday-first display index.
func DisplayDayName(display int) string {
	return dayNames[display].String()
}
