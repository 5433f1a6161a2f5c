package handler

import (
	"context"
	"tunebot/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// Dispatcher handles a single inbound command message.
type Dispatcher interface {
	Dispatch(ctx context.Context, message *domain.Message) error
}

type Command struct {
	dispatcher Dispatcher
}

// NewCommand wraps dispatcher as a telegram update handler.
func NewCommand(dispatcher Dispatcher) *Command {
	return &Command{dispatcher: dispatcher}
}

func (c *Command) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	message := toMessage(update)
	if message == nil {
		log.Debug().Msg("update without message")
		return
	}

	log.Debug().Str("message", message.Text).Msg("received command")

	go func() {
		if err := c.dispatcher.Dispatch(context.WithoutCancel(ctx), message); err != nil {
			log.Err(err).Int("messageId", message.ID).Int64("chatId", message.ChatID).
				Msg("failed to respond to command")
		}
	}()
}

func toMessage(update *models.Update) *domain.Message {
	if update == nil || update.Message == nil {
		return nil
	}

	m := update.Message
	text := m.Text
	if text == "" {
		text = m.Caption
	}

	message := &domain.Message{
		ID:     m.ID,
		ChatID: m.Chat.ID,
		Text:   text,
	}

	if m.From != nil {
		message.UserID = m.From.ID
		message.Username = getUserNameOrFirstName(m.From)
	}

	return message
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return "@" + user.Username
}
