package commands

import (
	"context"
	"fmt"
	"strings"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
	"tunebot/internal/core/service"
)

// Ask forwards a question to the text generator.
type Ask struct {
	names
	textGenerator port.TextGenerator
	textSender    port.TextSender
	track         service.Tracker
}

func NewAsk(textGenerator port.TextGenerator, textSender port.TextSender, track service.Tracker,
	name string, aliases ...string) *Ask {
	return &Ask{
		names:         newNames(name, aliases),
		textGenerator: textGenerator,
		textSender:    textSender,
		track:         track,
	}
}

func (a *Ask) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, a.Name())
	l.Info().Msg("handling request")

	if !inv.HasArguments() {
		l.Debug().Err(domain.ErrEmptyPrompt).Send()
		return command.SendHelp(ctx, inv, a)
	}

	if err := a.track.Reserve(ctx, inv.Message.ChatID); err != nil {
		l.Debug().Err(err).Send()
		return inv.ReplyWithName(ctx, inv.T("askLimitReached"))
	}

	actionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.textSender.SendChatAction(actionCtx, inv.Message.ChatID, domain.Typing)

	resp, err := a.textGenerator.GenerateFromPrompt(ctx, []domain.Prompt{{
		Prompt: strings.Join(inv.Args, " "),
		Author: domain.User,
	}})
	if err != nil {
		a.track.Release(inv.Message.ChatID)
		return a.textSender.NotifyAndReturnError(ctx, fmt.Errorf("failed to generate reply: %w", err), inv.Message)
	}

	l.Debug().
		Str("model", resp.Metadata.Model).
		Int("totalTokens", resp.Metadata.TotalTokens).
		Msg("generated reply")

	return inv.Reply(ctx, resp.Response)
}

func (a *Ask) Help(inv *command.Invocation) string {
	return inv.Usage("<question>") + "\n# " + inv.T("helpAskCommand") + "\n" + inv.Prefix + inv.Trigger +
		" what is the best album of 1997?"
}

func (a *Ask) MinimumPermission() domain.PermissionLevel {
	return domain.PermUser
}
