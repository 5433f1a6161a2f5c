package commands

import (
	"context"
	"fmt"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Seek jumps to an absolute position within the playing track.
type Seek struct {
	names
	players port.Players
}

func NewSeek(players port.Players, name string, aliases ...string) *Seek {
	return &Seek{names: newNames(name, aliases), players: players}
}

func (s *Seek) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, s.Name())
	l.Info().Msg("handling request")

	session, track, err := playingTrack(s.players, inv.Message.ChatID)
	if err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("queueEmpty"))
	}

	if !inv.HasArguments() {
		return command.SendHelp(ctx, inv, s)
	}

	t, err := domain.ParseTime(inv.Args[0])
	if err != nil {
		l.Debug().Err(err).Msg("invalid seek position")
		return command.SendHelp(ctx, inv, s)
	}

	t = domain.ClampDuration(t, track.EffectiveDuration())

	session.SeekTo(track.StartOffset() + t)
	l.Debug().Dur("position", t).Msg("seeked")

	return inv.Reply(ctx, inv.T("seekSuccess", track.EffectiveTitle(), domain.FormatTime(t)))
}

func (s *Seek) Help(inv *command.Invocation) string {
	return inv.Usage("[[hh:]mm:]ss") + "\n# " + inv.T("helpSeekCommand") + "\n" + inv.Prefix + inv.Trigger + " 2:45:00"
}

func (s *Seek) MinimumPermission() domain.PermissionLevel {
	return domain.PermDJ
}

// playingTrack returns the session of chatID and its current track, or
// domain.ErrNoSession when nothing is playing.
func playingTrack(players port.Players, chatID int64) (port.Session, port.Track, error) {
	session, ok := players.Find(chatID)
	if !ok {
		return nil, nil, fmt.Errorf("chat %d has no player: %w", chatID, domain.ErrNoSession)
	}

	if session.IsQueueEmpty() {
		return nil, nil, fmt.Errorf("chat %d has an empty queue: %w", chatID, domain.ErrNoSession)
	}

	track, ok := session.PlayingTrack()
	if !ok {
		return nil, nil, fmt.Errorf("chat %d has no playing track: %w", chatID, domain.ErrNoSession)
	}

	return session, track, nil
}
