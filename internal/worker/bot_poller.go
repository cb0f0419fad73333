package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// pollTimeout is the long-poll window in seconds.
const pollTimeout = 30

const welcomeTemplate = "👋 Assalomu alaykum, %s!\n\nGarajHub botiga xush kelibsiz. Startup g'oyangizni shu yerda yuboring."

// UpdateSource yields bot updates. *telegram.Client satisfies it.
type UpdateSource interface {
	GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// UserRegistrar stores users seen by the bot.
type UserRegistrar interface {
	Register(ctx context.Context, u *model.User) error
}

// BotPoller consumes bot updates: it upserts every sender and answers /start.
type BotPoller struct {
	source    UpdateSource
	users     UserRegistrar
	messenger service.Messenger
	log       zerolog.Logger
}

// NewBotPoller creates a new BotPoller.
func NewBotPoller(source UpdateSource, users UserRegistrar, messenger service.Messenger, log zerolog.Logger) *BotPoller {
	return &BotPoller{
		source:    source,
		users:     users,
		messenger: messenger,
		log:       log.With().Str("component", "bot_poller").Logger(),
	}
}

// Start polls until ctx is done or the update channel closes.
func (w *BotPoller) Start(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeout
	updates := w.source.GetUpdatesChan(cfg)

	w.log.Info().Msg("Worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			w.source.StopReceivingUpdates()
			w.log.Info().Msg("Worker stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				w.log.Warn().Msg("Update channel closed")
				return nil
			}
			w.handle(ctx, &update)
		}
	}
}

func (w *BotPoller) handle(ctx context.Context, update *tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}

	telegramID := msg.From.ID
	user := &model.User{
		TelegramID: &telegramID,
		FirstName:  msg.From.FirstName,
		LastName:   msg.From.LastName,
		Username:   msg.From.UserName,
	}
	if msg.Contact != nil && msg.Contact.UserID == telegramID {
		user.Phone = msg.Contact.PhoneNumber
	}

	if err := w.users.Register(ctx, user); err != nil {
		w.log.Error().Err(err).Int64("user_id", telegramID).Msg("Register user failed")
	}

	if msg.IsCommand() && msg.Command() == "start" {
		name := strings.TrimSpace(msg.From.FirstName)
		if name == "" {
			name = "do'st"
		}
		if err := w.messenger.SendText(ctx, msg.Chat.ID, fmt.Sprintf(welcomeTemplate, name)); err != nil {
			w.log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("Welcome reply failed")
		}
	}
}
