package commands

import (
	"context"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

type NowPlaying struct {
	names
	players port.Players
}

func NewNowPlaying(players port.Players, name string, aliases ...string) *NowPlaying {
	return &NowPlaying{names: newNames(name, aliases), players: players}
}

func (n *NowPlaying) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, n.Name())
	l.Info().Msg("handling request")

	session, track, err := playingTrack(n.players, inv.Message.ChatID)
	if err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	elapsed := domain.ClampDuration(session.Position()-track.StartOffset(), track.EffectiveDuration())

	return inv.Reply(ctx, inv.T("npPlaying",
		track.EffectiveTitle(),
		domain.FormatTime(elapsed),
		domain.FormatTime(track.EffectiveDuration())))
}

func (n *NowPlaying) Help(inv *command.Invocation) string {
	return inv.Usage("") + "\n# " + inv.T("helpNowplayingCommand")
}

func (n *NowPlaying) MinimumPermission() domain.PermissionLevel {
	return domain.PermUser
}
