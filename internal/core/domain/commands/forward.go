package commands

import (
	"context"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Forward skips ahead within the playing track, stopping at its end.
type Forward struct {
	names
	players port.Players
}

func NewForward(players port.Players, name string, aliases ...string) *Forward {
	return &Forward{names: newNames(name, aliases), players: players}
}

func (f *Forward) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, f.Name())
	l.Info().Msg("handling request")

	session, track, err := playingTrack(f.players, inv.Message.ChatID)
	if err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	if !inv.HasArguments() {
		return command.SendHelp(ctx, inv, f)
	}

	t, err := domain.ParseTime(inv.Args[0])
	if err != nil {
		l.Debug().Err(err).Msg("invalid forward amount")
		return command.SendHelp(ctx, inv, f)
	}

	position := session.Position()
	elapsed := position - track.StartOffset()
	t = domain.ClampDuration(t, track.EffectiveDuration()-elapsed)

	session.SeekTo(position + t)

	return inv.Reply(ctx, inv.T("fwdSuccess", track.EffectiveTitle(), domain.FormatTime(t)))
}

func (f *Forward) Help(inv *command.Invocation) string {
	return inv.Usage("[[hh:]mm:]ss") + "\n# " + inv.T("helpForwardCommand") + "\n" + inv.Prefix + inv.Trigger + " 2:30"
}

func (f *Forward) MinimumPermission() domain.PermissionLevel {
	return domain.PermDJ
}
