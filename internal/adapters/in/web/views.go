package web

import (
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/google/uuid"
)

// View models are camelCase regardless of what the backend wire uses,
// the frontends never see snake_case.

type SalonView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Timezone string    `json:"timezone"`
	Currency string    `json:"currency"`
}

func newSalonView(salon domain.Salon) SalonView {
	return SalonView{
		ID:       salon.ID,
		Name:     salon.Name,
		Phone:    salon.Phone,
		Address:  salon.Address,
		Timezone: salon.Timezone,
		Currency: salon.Currency,
	}
}

type BarberView struct {
	ID                  uuid.UUID `json:"id"`
	SalonID             uuid.UUID `json:"salonId"`
	DisplayName         string    `json:"displayName"`
	Active              bool      `json:"active"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
}

func newBarberView(barber domain.Barber) BarberView {
	return BarberView{
		ID:                  barber.ID,
		SalonID:             barber.SalonID,
		DisplayName:         barber.DisplayName,
		Active:              barber.Active,
		SlotDurationMinutes: barber.SlotDurationMinutes,
	}
}

func newBarberViews(barbers []domain.Barber) []BarberView {
	views := make([]BarberView, 0, len(barbers))
	for _, barber := range barbers {
		views = append(views, newBarberView(barber))
	}
	return views
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	BarberID    uuid.UUID `json:"barberId"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	DurationMin int       `json:"durationMin"`
	Active      bool      `json:"active"`
	Currency    string    `json:"currency"`
}

func newServiceView(service domain.BarberService) ServiceView {
	return ServiceView{
		ID:          service.ID,
		BarberID:    service.BarberID,
		Name:        service.Name,
		Price:       service.Price,
		DurationMin: service.DurationMin,
		Active:      service.Active,
		Currency:    service.Currency,
	}
}

func newServiceViews(services []domain.BarberService) []ServiceView {
	views := make([]ServiceView, 0, len(services))
	for _, service := range services {
		views = append(views, newServiceView(service))
	}
	return views
}

// Slots carry bare instants, the frontend formats them in the salon's
// timezone.
type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newSlotViews(slots []domain.AvailabilitySlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, SlotView{
			Start: slot.Start,
			End:   slot.End,
		})
	}
	return views
}

type AppointmentView struct {
	ID            uuid.UUID `json:"id"`
	BarberID      uuid.UUID `json:"barberId"`
	ServiceName   string    `json:"serviceName"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Price         float64   `json:"price"`
	DurationMin   int       `json:"durationMin"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	Status        string    `json:"status"`
}

func newAppointmentView(appointment domain.Appointment) AppointmentView {
	return AppointmentView{
		ID:            appointment.ID,
		BarberID:      appointment.BarberID,
		ServiceName:   appointment.ServiceName,
		CustomerName:  appointment.CustomerName,
		CustomerPhone: appointment.CustomerPhone,
		Price:         appointment.Price,
		DurationMin:   appointment.DurationMin,
		StartAt:       appointment.StartAt,
		EndAt:         appointment.EndAt,
		Status:        string(appointment.Status),
	}
}
