package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/core/domain"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	btnLogin        = "🔐 Log in"
	btnLogout       = "🚪 Log out"
	btnToday        = "📅 Today"
	btnServices     = "💈 My services"
	btnSchedule     = "🗓 Working hours"
	btnTimeOff      = "🌴 Time off"
	btnAppointments = "📖 Appointments"
	btnMenu         = "🏠 Menu"
)

func (b *BarberBot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	s := b.sessionFor(chatID)

	switch s.state {
	case stateAwaitEmail:
		b.handleEmailInput(ctx, chatID, s, text)
		return
	case stateAwaitPassword:
		b.handlePasswordInput(ctx, chatID, s, text)
		return
	case stateAwaitCustomer:
		b.handleCustomerInput(ctx, chatID, s, text)
		return
	}

	switch text {
	case "/start", "/menu", btnMenu:
		b.sendMainMenu(chatID)

	case btnLogin, "/login":
		s.state = stateAwaitEmail
		b.send(chatID, "Enter your email:")

	case btnLogout, "/logout":
		if err := b.auth.Logout(ctx); err != nil {
			b.logger.Warn("bot.logout.failed", out.LogFields{"error": err.Error()})
		}
		b.area.ForgetProfile()
		b.resetSession(chatID)
		b.sendMainMenu(chatID)

	case btnToday, "/today":
		b.showDayGrid(ctx, chatID, time.Now().In(b.location))

	case btnServices, "/services":
		b.showServices(ctx, chatID)

	case btnSchedule, "/hours":
		b.showWorkingHours(ctx, chatID)

	case btnTimeOff, "/timeoff":
		b.showTimeOff(ctx, chatID)

	case btnAppointments, "/appointments":
		b.showAppointments(ctx, chatID)

	default:
		b.send(chatID, "Unknown command, use the menu buttons.")
	}
}

func (b *BarberBot) sendMainMenu(chatID int64) {
	if _, ok := b.auth.Credentials(); !ok {
		msg := tgbotapi.NewMessage(chatID, "💈 BarberBook\n\nLog in to manage your day.")
		msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(btnLogin),
			),
		)
		b.sendMsg(msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "💈 BarberBook\n\nChoose an action:")
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnToday),
			tgbotapi.NewKeyboardButton(btnAppointments),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnServices),
			tgbotapi.NewKeyboardButton(btnSchedule),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnTimeOff),
			tgbotapi.NewKeyboardButton(btnLogout),
		),
	)
	b.sendMsg(msg)
}

func (b *BarberBot) handleEmailInput(ctx context.Context, chatID int64, s *session, text string) {
	if !strings.Contains(text, "@") {
		b.send(chatID, "That does not look like an email, try again:")
		return
	}
	s.email = text
	s.state = stateAwaitPassword
	b.send(chatID, "Enter your password:")
}

func (b *BarberBot) handlePasswordInput(ctx context.Context, chatID int64, s *session, text string) {
	email := s.email
	s.email = ""
	s.state = stateIdle

	if err := b.auth.Login(ctx, email, text); err != nil {
		b.send(chatID, "❌ Login failed, check your credentials and try again.")
		return
	}

	b.send(chatID, "✅ Logged in.")
	b.sendMainMenu(chatID)
}

func (b *BarberBot) handleCustomerInput(ctx context.Context, chatID int64, s *session, text string) {
	s.state = stateIdle

	// Expected "Name Phone", the phone is the last token.
	parts := strings.Fields(text)
	if len(parts) < 2 {
		b.send(chatID, "❌ Expected name and phone, e.g. \"Marko 0641234567\". Slot not booked.")
		return
	}

	customer := domain.CustomerInfo{
		Name:  strings.Join(parts[:len(parts)-1], " "),
		Phone: parts[len(parts)-1],
	}

	appointment, err := b.area.BookSlot(ctx, s.selectedDate, s.selectedMinute, s.selectedServiceID, customer)
	if err != nil {
		b.send(chatID, "⚠️ Could not book the slot: "+err.Error())
		return
	}

	b.send(chatID, fmt.Sprintf("✅ Booked %s at %s for %s.",
		appointment.ServiceName,
		appointment.StartAt.In(b.location).Format("15:04"),
		appointment.CustomerName,
	))
	b.showDayGrid(ctx, chatID, s.selectedDate)
}

func (b *BarberBot) showServices(ctx context.Context, chatID int64) {
	services, err := b.area.Services(ctx)
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	if len(services) == 0 {
		b.send(chatID, "You have no services yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("💈 Your services:\n\n")
	for _, service := range services {
		marker := "🟢"
		if !service.Active {
			marker = "⚪️"
		}
		sb.WriteString(fmt.Sprintf("%s %s — %.2f %s, %d min\n",
			marker, service.Name, service.Price, service.Currency, service.DurationMin))
	}
	b.send(chatID, sb.String())
}

func (b *BarberBot) showWorkingHours(ctx context.Context, chatID int64) {
	hours, err := b.area.WorkingHours(ctx)
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	byDay := make(map[int][]domain.WorkingHour)
	for _, hour := range hours {
		byDay[hour.DayOfWeek] = append(byDay[hour.DayOfWeek], hour)
	}

	var sb strings.Builder
	sb.WriteString("🗓 Working hours:\n\n")
	for display := 0; display < 7; display++ {
		dayHours := byDay[domain.DisplayToWireDay(display)]
		if len(dayHours) == 0 {
			continue
		}
		sb.WriteString(domain.DisplayDayName(display) + ": ")
		labels := make([]string, 0, len(dayHours))
		for _, hour := range dayHours {
			labels = append(labels, hour.StartTime.Label()+"–"+hour.EndTime.Label())
		}
		sb.WriteString(strings.Join(labels, ", ") + "\n")
	}
	if len(hours) == 0 {
		sb.WriteString("No working hours configured.\n")
	}
	b.send(chatID, sb.String())
}

func (b *BarberBot) showTimeOff(ctx context.Context, chatID int64) {
	entries, err := b.area.TimeOff(ctx)
	if err != nil {
		b.sendUseCaseError(chatID, err)
		return
	}

	if len(entries) == 0 {
		b.send(chatID, "No time off planned.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🌴 Time off:\n\n")
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%s — %s (%d days)",
			entry.StartAt.In(b.location).Format("02.01.2006"),
			entry.EndAt.In(b.location).Format("02.01.2006"),
			entry.InclusiveDays(),
		))
		if entry.Reason != "" {
			sb.WriteString(" · " + entry.Reason)
		}
		sb.WriteString("\n")
	}
	b.send(chatID, sb.String())
}

func (b *BarberBot) sendUseCaseError(chatID int64, err error) {
	b.logger.Warn("bot.usecase.failed", out.LogFields{
		"chatId": chatID,
		"error":  err.Error(),
	})
	b.send(chatID, "⚠️ Something went wrong, try again later.")
}
