package commands

import (
	"context"
	"fmt"
	"strings"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Commands lists the commands of every module enabled in the chat.
type Commands struct {
	names
	directory *command.Directory
	store     port.ModuleStore
}

func NewCommands(directory *command.Directory, store port.ModuleStore, name string, aliases ...string) *Commands {
	return &Commands{names: newNames(name, aliases), directory: directory, store: store}
}

func (c *Commands) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, c.Name())
	l.Info().Msg("handling request")

	enabled, err := c.store.EnabledModules(ctx, inv.Message.ChatID)
	if err != nil {
		l.Error().Err(err).Msg("failed to load enabled modules")
		enabled = domain.DefaultModules
	}

	sb := &strings.Builder{}

	for _, m := range c.directory.Modules() {
		if !enabled.Has(m) {
			continue
		}

		registry, ok := c.directory.Registry(m)
		if !ok || registry.Size() == 0 {
			continue
		}

		handlers := registry.Handlers()
		commandNames := make([]string, len(handlers))
		for i, h := range handlers {
			commandNames[i] = inv.Prefix + h.Name()
		}

		_, err = fmt.Fprintf(sb, "%s %s: %s\n", m.Emoji(), inv.T(m.TranslationKey()), strings.Join(commandNames, " "))
		if err != nil {
			return fmt.Errorf("failed to construct response: %w", err)
		}
	}

	if sb.Len() == 0 {
		return inv.Reply(ctx, inv.T("commandsNone"))
	}

	sb.WriteString("\n")
	sb.WriteString(inv.T("commandsMoreHelp", inv.Prefix+"help"))

	return inv.Reply(ctx, sb.String())
}

func (c *Commands) Help(inv *command.Invocation) string {
	return inv.Usage("") + "\n# " + inv.T("helpCommandsCommand")
}

func (c *Commands) MinimumPermission() domain.PermissionLevel {
	return domain.PermBase
}
