package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type WizardStep int

const (
	WizardStepBarber WizardStep = iota + 1
	WizardStepService
	WizardStepDate
	WizardStepSlot
	WizardStepCustomer
)

type CustomerInfo struct {
	Name  string
	Phone string
	Email string
	Notes string
}

func (c CustomerInfo) IsZero() bool {
	return strings.TrimSpace(c.Name) == "" && strings.TrimSpace(c.Phone) == "" &&
		c.Email == "" && c.Notes == ""
}

// Wizard is the linear booking flow state:
// barber -> service -> date -> slot -> customer info.
// It is a value type, every transition returns the next state. Selecting a
// value at step N advances to N+1 and clears the selections of later steps,
// stepping back never clears anything.
type Wizard struct {
	Step      WizardStep
	SalonID   uuid.UUID
	BarberID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
	Slot      AvailabilitySlot
	Customer  CustomerInfo
}

func NewWizard(salonID uuid.UUID) Wizard {
	return Wizard{Step: WizardStepBarber, SalonID: salonID}
}

func (w Wizard) SelectBarber(barberID uuid.UUID) Wizard {
	if barberID == w.BarberID && w.Step > WizardStepBarber {
		return w
	}
	w.BarberID = barberID
	w.ServiceID = uuid.Nil
	w.Slot = AvailabilitySlot{}
	w.Customer = CustomerInfo{}
	w.Step = WizardStepService
	return w
}

func (w Wizard) SelectService(serviceID uuid.UUID) Wizard {
	if serviceID == w.ServiceID && w.Step > WizardStepService {
		return w
	}
	w.ServiceID = serviceID
	w.Slot = AvailabilitySlot{}
	w.Step = WizardStepDate
	return w
}

func (w Wizard) SelectDate(date time.Time) Wizard {
	w.Date = date
	w.Slot = AvailabilitySlot{}
	w.Step = WizardStepSlot
	return w
}

func (w Wizard) SelectSlot(slot AvailabilitySlot) Wizard {
	w.Slot = slot
	w.Step = WizardStepCustomer
	return w
}

func (w Wizard) WithCustomer(customer CustomerInfo) Wizard {
	w.Customer = customer
	return w
}

func (w Wizard) Back() Wizard {
	if w.Step > WizardStepBarber {
		w.Step--
	}
	return w
}

func (w Wizard) Reset() Wizard {
	return NewWizard(w.SalonID)
}

// CanBook reports whether every required selection is present.
func (w Wizard) CanBook() bool {
	return w.BarberID != uuid.Nil &&
		w.ServiceID != uuid.Nil &&
		!w.Slot.Start.IsZero() &&
		strings.TrimSpace(w.Customer.Name) != "" &&
		strings.TrimSpace(w.Customer.Phone) != ""
}

// BookingInput assembles the create-appointment payload from the
// current selections.
func (w Wizard) BookingInput() BookingInput {
	return BookingInput{
		SalonID:         w.SalonID,
		BarberID:        w.BarberID,
		BarberServiceID: w.ServiceID,
		CustomerName:    strings.TrimSpace(w.Customer.Name),
		CustomerPhone:   strings.TrimSpace(w.Customer.Phone),
		CustomerEmail:   strings.TrimSpace(w.Customer.Email),
		StartAt:         w.Slot.Start,
		Notes:           w.Customer.Notes,
	}
}
