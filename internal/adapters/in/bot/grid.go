package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Callback data prefixes. Telegram caps callback data at 64 bytes, so the
// payload stays compact: dates as 2006-01-02, minutes as integers.
const (
	cbGrid    = "grid_"
	cbSlot    = "slot_"
	cbService = "svc_"
	cbConfirm = "aptc_"
	cbCancel  = "aptx_"
	cbNoop    = "noop"
)

func (b *BarberBot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	data := query.Data

	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Warn("bot.callback.ack_failed", out.LogFields{
			"error": err.Error(),
		})
	}

	switch {
	case strings.HasPrefix(data, cbGrid):
		date, err := time.ParseInLocation(dateLayout, strings.TrimPrefix(data, cbGrid), b.location)
		if err != nil {
			return
		}
		b.showDayGrid(ctx, chatID, date)

	case strings.HasPrefix(data, cbSlot):
		b.handleSlotSelection(ctx, chatID, strings.TrimPrefix(data, cbSlot))

	case strings.HasPrefix(data, cbService):
		b.handleServiceSelection(ctx, chatID, strings.TrimPrefix(data, cbService))

	case strings.HasPrefix(data, cbConfirm):
		b.handleAppointmentAction(ctx, chatID, strings.TrimPrefix(data, cbConfirm), true)

	case strings.HasPrefix(data, cbCancel):
		b.handleAppointmentAction(ctx, chatID, strings.TrimPrefix(data, cbCancel), false)

	case data == cbNoop:

	default:
		b.logger.Debug("bot.callback.unknown", out.LogFields{
			"data": data,
		})
	}
}

func (b *BarberBot) showDayGrid(ctx context.Context, chatID int64, date time.Time) {
	grid, err := b.area.DayGrid(ctx, date)
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	text := "📅 " + date.Format("Monday, 02.01.2006")
	if len(grid) == 0 {
		text += "\n\nNot a working day."
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(grid)/4+2)
	row := make([]tgbotapi.InlineKeyboardButton, 0, 4)
	for _, slot := range grid {
		var button tgbotapi.InlineKeyboardButton
		switch {
		case slot.Free():
			button = tgbotapi.NewInlineKeyboardButtonData(
				"🔵 "+slot.Label,
				fmt.Sprintf("%s%s_%d", cbSlot, date.Format(dateLayout), slot.StartMinute),
			)
		case slot.Kind == domain.GridSlotBreak:
			button = tgbotapi.NewInlineKeyboardButtonData("☕️ "+slot.Label, cbNoop)
		default:
			button = tgbotapi.NewInlineKeyboardButtonData("🔴 "+slot.Label, cbNoop)
		}
		row = append(row, button)
		if len(row) == 4 {
			rows = append(rows, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 4)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️", cbGrid+date.AddDate(0, 0, -1).Format(dateLayout)),
		tgbotapi.NewInlineKeyboardButtonData("➡️", cbGrid+date.AddDate(0, 0, 1).Format(dateLayout)),
	))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.sendMsg(msg)
}

// handleSlotSelection asks which service the walk-in wants,
// payload is "<date>_<minute>".
func (b *BarberBot) handleSlotSelection(ctx context.Context, chatID int64, payload string) {
	parts := strings.SplitN(payload, "_", 2)
	if len(parts) != 2 {
		return
	}

	date, err := time.ParseInLocation(dateLayout, parts[0], b.location)
	if err != nil {
		return
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}

	services, err := b.area.Services(ctx)
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(services))
	for _, service := range services {
		if !service.Active {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s · %d min", service.Name, service.DurationMin),
				fmt.Sprintf("%s%s_%d_%s", cbService, parts[0], minute, service.ID),
			),
		))
	}

	if len(rows) == 0 {
		b.send(chatID, "You have no active services to book.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Book %s on %s, which service?",
		minuteLabel(minute), date.Format("02.01.2006")))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.sendMsg(msg)
}

// handleServiceSelection stores the pick and asks for the customer,
// payload is "<date>_<minute>_<serviceId>".
func (b *BarberBot) handleServiceSelection(ctx context.Context, chatID int64, payload string) {
	parts := strings.SplitN(payload, "_", 3)
	if len(parts) != 3 {
		return
	}

	date, err := time.ParseInLocation(dateLayout, parts[0], b.location)
	if err != nil {
		return
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	serviceID, err := uuid.Parse(parts[2])
	if err != nil {
		return
	}

	s := b.sessionFor(chatID)
	s.state = stateAwaitCustomer
	s.selectedDate = date
	s.selectedMinute = minute
	s.selectedServiceID = serviceID

	b.send(chatID, "Enter the customer's name and phone, e.g. \"Marko 0641234567\":")
}

func (b *BarberBot) showAppointments(ctx context.Context, chatID int64) {
	now := time.Now().In(b.location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, b.location)

	appointments, err := b.area.Appointments(ctx, domain.AppointmentFilter{
		From: from,
		To:   from.AddDate(0, 0, 7),
	})
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	if len(appointments) == 0 {
		b.send(chatID, "No appointments in the next 7 days.")
		return
	}

	for _, appointment := range appointments {
		text := fmt.Sprintf("%s %s\n%s · %s\n%s %s",
			appointment.StartAt.In(b.location).Format("02.01 15:04"),
			statusMarker(appointment.Status),
			appointment.ServiceName,
			appointment.CustomerName,
			appointment.CustomerPhone,
			appointment.Notes,
		)

		msg := tgbotapi.NewMessage(chatID, strings.TrimSpace(text))
		if appointment.Status == domain.AppointmentStatusPending {
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("✅ Confirm", cbConfirm+appointment.ID.String()),
					tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbCancel+appointment.ID.String()),
				),
			)
		} else if appointment.Status == domain.AppointmentStatusConfirmed {
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbCancel+appointment.ID.String()),
				),
			)
		}
		b.sendMsg(msg)
	}
}

func (b *BarberBot) handleAppointmentAction(ctx context.Context, chatID int64, idStr string, confirm bool) {
	appointmentID, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	var appointment *domain.Appointment
	if confirm {
		appointment, err = b.area.ConfirmAppointment(ctx, appointmentID)
	} else {
		appointment, err = b.area.CancelAppointment(ctx, appointmentID)
	}
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	b.send(chatID, fmt.Sprintf("%s %s at %s",
		statusMarker(appointment.Status),
		appointment.ServiceName,
		appointment.StartAt.In(b.location).Format("02.01 15:04"),
	))
}

func statusMarker(status domain.AppointmentStatus) string {
	switch status {
	case domain.AppointmentStatusPending:
		return "🕓 pending"
	case domain.AppointmentStatusConfirmed:
		return "✅ confirmed"
	case domain.AppointmentStatusCanceled:
		return "❌ canceled"
	case domain.AppointmentStatusCompleted:
		return "✔️ completed"
	}
	return string(status)
}

func minuteLabel(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
