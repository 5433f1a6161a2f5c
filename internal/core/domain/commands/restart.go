package commands

import (
	"context"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Restart plays the current track again from its start offset.
type Restart struct {
	names
	players port.Players
}

func NewRestart(players port.Players, name string, aliases ...string) *Restart {
	return &Restart{names: newNames(name, aliases), players: players}
}

func (r *Restart) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, r.Name())
	l.Info().Msg("handling request")

	session, track, err := playingTrack(r.players, inv.Message.ChatID)
	if err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	session.SeekTo(track.StartOffset())

	return inv.Reply(ctx, inv.T("restartSuccess", track.EffectiveTitle()))
}

func (r *Restart) Help(inv *command.Invocation) string {
	return inv.Usage("") + "\n# " + inv.T("helpRestartCommand")
}

func (r *Restart) MinimumPermission() domain.PermissionLevel {
	return domain.PermDJ
}
