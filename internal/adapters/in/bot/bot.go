package bot

import (
	"context"
	"sync"
	"time"

	"github.com/BirtasevicLazar/barberbook-go/internal/config"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/in"
	"github.com/BirtasevicLazar/barberbook-go/internal/core/ports/out"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type sessionState int

const (
	stateIdle sessionState = iota
	stateAwaitEmail
	stateAwaitPassword
	stateAwaitCustomer
)

// session is the per-chat conversation state. The bot serves one barber
// account, chats share the login session held by the auth use case.
type session struct {
	state             sessionState
	email             string
	selectedDate      time.Time
	selectedMinute    int
	selectedServiceID uuid.UUID
}

// BarberBot is the barber-facing Telegram frontend. It owns no business
// logic, every action goes through the use case ports.
type BarberBot struct {
	api      *tgbotapi.BotAPI
	auth     in.AuthUseCase
	area     in.BarberAreaUseCase
	logger   out.LoggerPort
	location *time.Location

	mu       sync.Mutex
	sessions map[int64]*session
}

func NewBarberBot(cfg *config.Config, auth in.AuthUseCase, area in.BarberAreaUseCase, logger out.LoggerPort) (*BarberBot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Telegram.Debug

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &BarberBot{
		api:      api,
		auth:     auth,
		area:     area,
		logger:   logger.WithModule("BarberBot"),
		location: loc,
		sessions: make(map[int64]*session),
	}, nil
}

// Start consumes the update channel until the context is canceled.
func (b *BarberBot) Start(ctx context.Context) {
	b.logger.Info("bot.started", out.LogFields{
		"username": b.api.Self.UserName,
	})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot.stopped", nil)
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			} else if update.CallbackQuery != nil {
				b.handleCallbackQuery(ctx, update.CallbackQuery)
			}
		}
	}
}

func (b *BarberBot) sessionFor(chatID int64) *session {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[chatID]
	if !ok {
		s = &session{}
		b.sessions[chatID] = s
	}
	return s
}

func (b *BarberBot) resetSession(chatID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[chatID] = &session{}
}

func (b *BarberBot) send(chatID int64, text string) {
	b.sendMsg(tgbotapi.NewMessage(chatID, text))
}

func (b *BarberBot) sendMsg(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("bot.send.failed", out.LogFields{
			"chatId": msg.ChatID,
			"error":  err.Error(),
		})
	}
}
