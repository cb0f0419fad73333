package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/garajhub/admin-panel/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrEmptyMessage is returned for a blank broadcast.
var ErrEmptyMessage = errors.New("message is empty")

const (
	broadcastPrefix      = "📢 Yangilik!\n\n"
	defaultRecipientType = "all"
	broadcastEchoLimit   = 100
	broadcastLogLimit    = 50
)

// Messenger delivers a text message to a Telegram chat.
type Messenger interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// EventPublisher fans admin events out to live panels.
type EventPublisher interface {
	Publish(event model.AdminEvent)
}

type noopPublisher struct{}

func (noopPublisher) Publish(model.AdminEvent) {}

// NotificationService sends bot messages. Every send is best-effort.
type NotificationService struct {
	store     repository.Store
	messenger Messenger
	events    EventPublisher
	delay     time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewNotificationService creates a new NotificationService. messenger may be
// nil when the bot is not configured; events may be nil.
func NewNotificationService(
	store repository.Store,
	messenger Messenger,
	events EventPublisher,
	delay time.Duration,
	log zerolog.Logger,
) *NotificationService {
	if events == nil {
		events = noopPublisher{}
	}
	return &NotificationService{
		store:     store,
		messenger: messenger,
		events:    events,
		delay:     delay,
		now:       time.Now,
		log:       log.With().Str("component", "notification_service").Logger(),
	}
}

// Online reports whether a bot is configured.
func (s *NotificationService) Online() bool {
	return s.messenger != nil
}

// NotifyOwner sends text to one user. Failures are logged, never returned.
func (s *NotificationService) NotifyOwner(ctx context.Context, userID int64, text string) {
	if s.messenger == nil || userID == 0 {
		return
	}
	if err := s.messenger.SendText(ctx, userID, text); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("Owner notification failed")
	}
}

// Broadcast sends message to every known user, one at a time, pausing after
// each delivered message. Per-recipient failures are skipped. A cancelled ctx
// stops the loop and the count so far is reported.
func (s *NotificationService) Broadcast(ctx context.Context, req model.BroadcastRequest, sentBy string) (*model.BroadcastResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}
	recipientType := req.RecipientType
	if recipientType == "" {
		recipientType = defaultRecipientType
	}

	sent := 0
	if s.messenger != nil && s.store.Mode() == repository.ModeLive {
		sent = s.fanOut(ctx, req.Message)
	}

	s.log.Info().
		Str("message", truncate(req.Message, broadcastLogLimit)).
		Str("recipient_type", recipientType).
		Int("sent", sent).
		Msg("Broadcast finished")

	s.events.Publish(model.AdminEvent{
		Type:        "message",
		Action:      "xabar yuborildi",
		Description: "Xabar yuborildi",
		Actor:       sentBy,
		At:          s.now(),
	})

	return &model.BroadcastResult{
		ID:            uuid.New().String(),
		Message:       truncate(req.Message, broadcastEchoLimit),
		RecipientType: recipientType,
		SentAt:        s.now(),
		SentBy:        sentBy,
		SentCount:     sent,
	}, nil
}

func (s *NotificationService) fanOut(ctx context.Context, message string) int {
	ids, err := s.store.AllTelegramIDs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Broadcast recipients unavailable")
		return 0
	}

	text := broadcastPrefix + message
	sent := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			s.log.Warn().Int("sent", sent).Msg("Broadcast cancelled")
			return sent
		}
		if err := s.messenger.SendText(ctx, id, text); err != nil {
			s.log.Error().Err(err).Int64("user_id", id).Msg("Broadcast send failed")
			continue
		}
		sent++

		if s.delay > 0 {
			timer := time.NewTimer(s.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				s.log.Warn().Int("sent", sent).Msg("Broadcast cancelled")
				return sent
			case <-timer.C:
			}
		}
	}
	return sent
}

// truncate cuts s to limit runes and marks the cut with "...".
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
