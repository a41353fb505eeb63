package slotgrid

import (
	"fmt"
	"sort"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
)

// All interval math happens in the salon's timezone. Appointment instants
// are converted into it before minute-of-day extraction, so the grid and
// the occupancy check can never disagree about the clock.

// BuildDayGrid tiles the barber's working-hour intervals for one calendar
// day into fixed-duration slots and marks each one free, on break, or
// occupied by an appointment. A slot that would overrun its interval end
// is dropped entirely, there are no truncated slots.
func BuildDayGrid(
	date time.Time,
	loc *time.Location,
	slotDurationMin int,
	hours []domain.WorkingHour,
	breaks []domain.Break,
	appointments []domain.Appointment,
) []domain.GridSlot {
	slots := make([]domain.GridSlot, 0)
	if slotDurationMin <= 0 {
		return slots
	}

	weekday := int(date.In(loc).Weekday())

	dayHours := make([]domain.WorkingHour, 0, len(hours))
	for _, h := range hours {
		if h.DayOfWeek == weekday {
			dayHours = append(dayHours, h)
		}
	}
	sort.Slice(dayHours, func(i, j int) bool {
		return dayHours[i].StartTime.MinuteOfDay() < dayHours[j].StartTime.MinuteOfDay()
	})

	dayBreaks := make([]domain.Break, 0, len(breaks))
	for _, b := range breaks {
		if b.DayOfWeek == weekday {
			dayBreaks = append(dayBreaks, b)
		}
	}

	dayAppointments := appointmentsOn(date, loc, appointments)

	for _, h := range dayHours {
		startMin := h.StartTime.MinuteOfDay()
		endMin := h.EndTime.MinuteOfDay()

		for cur := startMin; cur+slotDurationMin <= endMin; cur += slotDurationMin {
			slot := domain.GridSlot{
				Label:       minuteLabel(cur),
				StartMinute: cur,
				EndMinute:   cur + slotDurationMin,
				Kind:        domain.GridSlotFree,
			}

			if apt := occupying(dayAppointments, loc, cur); apt != nil {
				slot.Kind = domain.GridSlotOccupied
				slot.Appointment = apt
			} else if onBreak(dayBreaks, cur) {
				slot.Kind = domain.GridSlotBreak
			}

			slots = append(slots, slot)
		}
	}

	return slots
}

// occupying returns the appointment whose [start, end) minute range contains
// the slot start, canceled appointments never block. A slot starting exactly
// at an appointment's end is free.
func occupying(appointments []domain.Appointment, loc *time.Location, slotStartMin int) *domain.Appointment {
	for i := range appointments {
		apt := &appointments[i]
		if !apt.Blocks() {
			continue
		}
		aptStart := minuteOfDay(apt.StartAt, loc)
		aptEnd := minuteOfDay(apt.EndAt, loc)
		if slotStartMin >= aptStart && slotStartMin < aptEnd {
			return apt
		}
	}
	return nil
}

func onBreak(breaks []domain.Break, slotStartMin int) bool {
	for _, b := range breaks {
		if slotStartMin >= b.StartTime.MinuteOfDay() && slotStartMin < b.EndTime.MinuteOfDay() {
			return true
		}
	}
	return false
}

// appointmentsOn keeps only appointments starting on the given calendar day.
func appointmentsOn(date time.Time, loc *time.Location, appointments []domain.Appointment) []domain.Appointment {
	day := date.In(loc)
	y, m, d := day.Date()

	filtered := make([]domain.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		ay, am, ad := apt.StartAt.In(loc).Date()
		if ay == y && am == m && ad == d {
			filtered = append(filtered, apt)
		}
	}
	return filtered
}

func minuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

func minuteLabel(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// SlotStart materializes a grid slot's start as an instant on the given day.
func SlotStart(date time.Time, loc *time.Location, startMinute int) time.Time {
	day := date.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), startMinute/60, startMinute%60, 0, 0, loc)
}
