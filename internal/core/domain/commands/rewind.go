package commands

import (
	"context"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Rewind moves back within the playing track, stopping at its start.
type Rewind struct {
	names
	players port.Players
}

func NewRewind(players port.Players, name string, aliases ...string) *Rewind {
	return &Rewind{names: newNames(name, aliases), players: players}
}

func (r *Rewind) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, r.Name())
	l.Info().Msg("handling request")

	session, track, err := playingTrack(r.players, inv.Message.ChatID)
	if err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	if !inv.HasArguments() {
		return command.SendHelp(ctx, inv, r)
	}

	t, err := domain.ParseTime(inv.Args[0])
	if err != nil {
		l.Debug().Err(err).Msg("invalid rewind amount")
		return command.SendHelp(ctx, inv, r)
	}

	position := session.Position()
	t = domain.ClampDuration(t, position-track.StartOffset())

	session.SeekTo(position - t)

	return inv.Reply(ctx, inv.T("rewSuccess", track.EffectiveTitle(), domain.FormatTime(t)))
}

func (r *Rewind) Help(inv *command.Invocation) string {
	return inv.Usage("[[hh:]mm:]ss") + "\n# " + inv.T("helpRewindCommand") + "\n" + inv.Prefix + inv.Trigger + " 30"
}

func (r *Rewind) MinimumPermission() domain.PermissionLevel {
	return domain.PermDJ
}
