package commands

import (
	"context"
	"strings"
	"time"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// defaultTrackLength is used when no length is given.
const defaultTrackLength = 3 * time.Minute

// Play queues a track given as "<title> [length]".
type Play struct {
	names
	queue port.Queue
}

func NewPlay(queue port.Queue, name string, aliases ...string) *Play {
	return &Play{names: newNames(name, aliases), queue: queue}
}

func (p *Play) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, p.Name())
	l.Info().Msg("handling request")

	if !inv.HasArguments() {
		return command.SendHelp(ctx, inv, p)
	}

	args := inv.Args
	length := defaultTrackLength
	if len(args) > 1 {
		if parsed, err := domain.ParseTime(args[len(args)-1]); err == nil && parsed > 0 {
			length = parsed
			args = args[:len(args)-1]
		}
	}

	track, ahead := p.queue.Enqueue(inv.Message.ChatID, strings.Join(args, " "), length)
	l.Debug().Int("ahead", ahead).Dur("length", length).Msg("queued track")

	if ahead == 0 {
		return inv.Reply(ctx, inv.T("playNow", track.EffectiveTitle(), domain.FormatTime(length)))
	}

	return inv.Reply(ctx, inv.T("playQueued", track.EffectiveTitle(), ahead))
}

func (p *Play) Help(inv *command.Invocation) string {
	return inv.Usage("<title> [length]") + "\n# " + inv.T("helpPlayCommand") + "\n" + inv.Prefix + inv.Trigger +
		" Never Gonna Give You Up 3:33"
}

func (p *Play) MinimumPermission() domain.PermissionLevel {
	return domain.PermUser
}
