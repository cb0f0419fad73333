package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Client wraps the Bot API for outbound messages and update polling.
type Client struct {
	bot *tgbotapi.BotAPI
	log zerolog.Logger
}

// New authenticates token against the Bot API.
func New(token string, log zerolog.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect bot api: %w", err)
	}

	log.Info().Str("bot", bot.Self.UserName).Msg("Telegram bot connected")
	return &Client{
		bot: bot,
		log: log.With().Str("component", "telegram").Logger(),
	}, nil
}

// SendText sends a plain text message. The Bot API client is not
// context-aware, so ctx is only checked before the call.
func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send to %d: %w", chatID, err)
	}
	return nil
}

// GetUpdatesChan starts long polling.
func (c *Client) GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return c.bot.GetUpdatesChan(cfg)
}

// StopReceivingUpdates ends long polling started by GetUpdatesChan.
func (c *Client) StopReceivingUpdates() {
	c.bot.StopReceivingUpdates()
}

// Username is the bot's @handle without the @.
func (c *Client) Username() string {
	return c.bot.Self.UserName
}
