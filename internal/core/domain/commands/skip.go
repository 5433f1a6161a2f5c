package commands

import (
	"context"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Skip ends the playing track and continues with the queue.
type Skip struct {
	names
	players port.Players
}

func NewSkip(players port.Players, name string, aliases ...string) *Skip {
	return &Skip{names: newNames(name, aliases), players: players}
}

func (s *Skip) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, s.Name())
	l.Info().Msg("handling request")

	session, _, err := playingTrack(s.players, inv.Message.ChatID)
	if err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	skipped, ok := session.Skip()
	if !ok {
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	return inv.Reply(ctx, inv.T("skipSuccess", skipped.EffectiveTitle()))
}

func (s *Skip) Help(inv *command.Invocation) string {
	return inv.Usage("") + "\n# " + inv.T("helpSkipCommand")
}

func (s *Skip) MinimumPermission() domain.PermissionLevel {
	return domain.PermDJ
}
