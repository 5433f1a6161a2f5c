package commands

import (
	"context"
	"fmt"
	"strings"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"
)

// Modules shows which modules are enabled in the chat.
type Modules struct {
	names
	store port.ModuleStore
}

func NewModules(store port.ModuleStore, name string, aliases ...string) *Modules {
	return &Modules{names: newNames(name, aliases), store: store}
}

func (m *Modules) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, m.Name())
	l.Info().Msg("handling request")

	enabled, err := m.store.EnabledModules(ctx, inv.Message.ChatID)
	if err != nil {
		l.Error().Err(err).Msg("failed to load enabled modules")
		return inv.Reply(ctx, inv.T("modulesLoadFailed"))
	}

	sb := &strings.Builder{}
	sb.WriteString(inv.T("modulesHeader"))
	sb.WriteString("\n")

	for _, module := range domain.Modules() {
		state := "❌"
		if enabled.Has(module) {
			state = "✅"
		}

		_, err = fmt.Fprintf(sb, "%s %s %s (%s)\n", state, module.Emoji(), inv.T(module.TranslationKey()), module)
		if err != nil {
			return fmt.Errorf("failed to construct response: %w", err)
		}
	}

	return inv.Reply(ctx, sb.String())
}

func (m *Modules) Help(inv *command.Invocation) string {
	return inv.Usage("") + "\n# " + inv.T("helpModulesCommand")
}

func (m *Modules) MinimumPermission() domain.PermissionLevel {
	return domain.PermBase
}

// ModuleToggle enables or disables a module for the chat.
type ModuleToggle struct {
	names
	store  port.ModuleStore
	enable bool
}

func NewEnableModule(store port.ModuleStore, name string, aliases ...string) *ModuleToggle {
	return &ModuleToggle{names: newNames(name, aliases), store: store, enable: true}
}

func NewDisableModule(store port.ModuleStore, name string, aliases ...string) *ModuleToggle {
	return &ModuleToggle{names: newNames(name, aliases), store: store, enable: false}
}

func (t *ModuleToggle) Invoke(ctx context.Context, inv *command.Invocation) error {
	l := requestLogger(inv, t.Name())
	l.Info().Msg("handling request")

	if !inv.HasArguments() {
		return command.SendHelp(ctx, inv, t)
	}

	module, err := domain.ParseModule(inv.Args[0])
	if err != nil {
		l.Debug().Err(err).Msg("unknown module requested")
		return inv.Reply(ctx, inv.T("moduleUnknown", inv.Args[0]))
	}

	if !t.enable && !module.Lockable() {
		return inv.Reply(ctx, inv.T("moduleCantDisable", inv.T(module.TranslationKey())))
	}

	enabled, err := t.store.EnabledModules(ctx, inv.Message.ChatID)
	if err != nil {
		l.Error().Err(err).Msg("failed to load enabled modules")
		return inv.Reply(ctx, inv.T("modulesLoadFailed"))
	}

	key := "moduleDisabled"
	if t.enable {
		enabled = enabled.With(module)
		key = "moduleEnabled"
	} else {
		enabled = enabled.Without(module)
	}

	if err := t.store.SetEnabledModules(ctx, inv.Message.ChatID, enabled); err != nil {
		l.Error().Err(err).Msg("failed to store enabled modules")
		return inv.Reply(ctx, inv.T("modulesSaveFailed"))
	}

	l.Info().Str("module", module.String()).Bool("enabled", t.enable).Msg("module toggled")

	return inv.Reply(ctx, inv.T(key, inv.T(module.TranslationKey())))
}

func (t *ModuleToggle) Help(inv *command.Invocation) string {
	key := "helpDisableCommand"
	if t.enable {
		key = "helpEnableCommand"
	}

	return inv.Usage("<module>") + "\n# " + inv.T(key) + "\n" + inv.Prefix + inv.Trigger + " fun"
}

func (t *ModuleToggle) MinimumPermission() domain.PermissionLevel {
	return domain.PermAdmin
}
