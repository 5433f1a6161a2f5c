package sender

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tunebot/internal/core/domain"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name TelegramBot

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

const TelegramMessageLimit = 4096
const ChatActionRepeatSeconds = 5

type Telegram struct {
	bot            TelegramBot
	actionInterval time.Duration
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot, actionInterval: ChatActionRepeatSeconds * time.Second}
}

// SendMessageReply answers message with text, split into several messages
// when it exceeds the Telegram limit. It returns the ID of the last message.
func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	var sentID int

	for _, chunk := range splitMessage(text, TelegramMessageLimit) {
		sent, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: message.ChatID,
			Text:   chunk,
			ReplyParameters: &models.ReplyParameters{
				MessageID: message.ID,
				ChatID:    message.ChatID,
			},
		})
		if err != nil {
			log.Error().Err(err).Int64("chatId", message.ChatID).Msg("failed to send message")
			return sentID, err
		}

		if sent != nil {
			sentID = sent.ID
		}
	}

	return sentID, nil
}

func (s *Telegram) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	_, sendErr := s.SendMessageReply(ctx, message, fmt.Sprintf("error: %s", err))
	if sendErr != nil {
		return errors.Join(err, fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, sendErr))
	}

	return err
}

// SendChatAction repeats action until ctx is done, as Telegram clears it
// after a few seconds.
func (s *Telegram) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	log.Debug().Int64("chatID", chatID).Msg("starting action routine")

	var chatAction models.ChatAction
	switch action {
	case domain.Typing:
		chatAction = models.ChatActionTyping
	default:
		chatAction = models.ChatActionTyping
	}

	for {
		log.Debug().Int64("chatID", chatID).Msg("transmitting action")
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: chatAction,
		})
		if err != nil {
			log.Err(err).Msg("error sending chat action")
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Int64("chatID", chatID).Msg("done, stopping action routine")
			return
		case <-time.After(s.actionInterval):
		}
	}
}

func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = limit
		}

		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}

	if text != "" {
		chunks = append(chunks, text)
	}

	return chunks
}
