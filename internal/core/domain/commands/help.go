package commands

import (
	"context"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
)

// Help explains a single command, or points to the command list.
type Help struct {
	names
	directory *command.Directory
	list      string
}

// NewHelp creates the help command. list is the name of the command listing
// all commands.
func NewHelp(directory *command.Directory, list string, name string, aliases ...string) *Help {
	return &Help{names: newNames(name, aliases), directory: directory, list: list}
}

func (h *Help) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, h.Name())
	l.Info().Msg("handling request")

	if !inv.HasArguments() {
		return inv.Reply(ctx, inv.T("helpGeneral", inv.Prefix+h.list, inv.Prefix+h.Name()))
	}

	target := inv.WithTrigger(inv.Args[0])

	handler, ok := h.directory.FindCommand(target.Trigger)
	if !ok {
		l.Debug().Str("target", target.Trigger).Msg("help requested for unknown command")
		return inv.Reply(ctx, inv.T("helpUnknownCommand", inv.Args[0]))
	}

	return command.SendHelp(ctx, target, handler)
}

func (h *Help) Help(inv *command.Invocation) string {
	return inv.Usage("[command]") + "\n# " + inv.T("helpHelpCommand")
}

func (h *Help) MinimumPermission() domain.PermissionLevel {
	return domain.PermBase
}
