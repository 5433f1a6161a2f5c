package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Dispatcher resolves an inbound message to a command handler, checks that
// the handler's module is enabled in the chat and that the caller is allowed
// to use it, and invokes it.
type Dispatcher struct {
	directory  *command.Directory
	store      port.ModuleStore
	auth       Authorizer
	sender     port.TextSender
	translator port.Translator
	prefix     string
	timeout    time.Duration
}

type DispatcherParams struct {
	Directory  *command.Directory
	Store      port.ModuleStore
	Auth       Authorizer
	Sender     port.TextSender
	Translator port.Translator
	Prefix     string
	Timeout    time.Duration
}

func NewDispatcher(p DispatcherParams) *Dispatcher {
	return &Dispatcher{
		directory:  p.Directory,
		store:      p.Store,
		auth:       p.Auth,
		sender:     p.Sender,
		translator: p.Translator,
		prefix:     p.Prefix,
		timeout:    p.Timeout,
	}
}

// Dispatch handles one message. Unknown commands are ignored; rejections are
// answered in the chat. Only failures of the handler itself are returned.
func (d *Dispatcher) Dispatch(ctx context.Context, message *domain.Message) error {
	inv := command.NewInvocation(message, d.prefix, d.sender, d.translator)
	if inv.Trigger == "" {
		return nil
	}

	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", inv.Trigger).
		Logger()

	resolved, ok := d.directory.Resolve(inv.Trigger)
	if !ok {
		l.Debug().Msg("no handler for command")
		return nil
	}

	enabled, err := d.store.EnabledModules(ctx, message.ChatID)
	if err != nil {
		l.Warn().Err(err).Msg("failed to load enabled modules, using defaults")
		enabled = domain.DefaultModules
	}

	if !enabled.Has(resolved.Module) {
		l.Debug().Str("module", resolved.Module.String()).Msg("module disabled in chat")
		return inv.Reply(ctx, inv.T("moduleIsDisabled", inv.T(resolved.Module.TranslationKey()), d.prefix+"enable"))
	}

	required := resolved.Handler.MinimumPermission()
	if level := d.auth.LevelOf(message); !level.Satisfies(required) {
		l.Info().
			Stringer("level", level).
			Stringer("required", required).
			Msg("permission denied")
		return inv.ReplyWithName(ctx, inv.T("permissionDenied", required.String()))
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := invoke(ctx, resolved.Handler, inv); err != nil {
		return fmt.Errorf("command %s failed: %w", resolved.Handler.Name(), err)
	}

	return nil
}

// invoke runs h, turning a panic into an error so one broken command cannot
// take down the update loop.
func invoke(ctx context.Context, h command.Handler, inv *command.Invocation) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Int("messageId", inv.Message.ID).
				Int64("chatId", inv.Message.ChatID).
				Str("command", h.Name()).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("command handler panicked")
			err = fmt.Errorf("%w: %v", domain.ErrHandlerPanicked, r)
		}
	}()

	return h.Invoke(ctx, inv)
}
