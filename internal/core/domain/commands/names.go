package commands

import (
	"tunebot/internal/core/domain/command"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// names carries the canonical name and aliases a handler is registered under.
type names struct {
	name    string
	aliases []string
}

func newNames(name string, aliases []string) names {
	return names{name: name, aliases: aliases}
}

func (n names) Name() string {
	return n.name
}

func (n names) Aliases() []string {
	return n.aliases
}

func requestLogger(inv *command.Invocation, name string) zerolog.Logger {
	return log.With().
		Int("messageId", inv.Message.ID).
		Int64("chatId", inv.Message.ChatID).
		Str("command", name).
		Str("trigger", inv.Trigger).
		Logger()
}
