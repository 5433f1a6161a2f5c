package port

import (
	"context"
	"tunebot/internal/core/domain"
)

type ModuleStore interface {
	// EnabledModules returns the module mask of a chat, or domain.DefaultModules when none was stored.
	EnabledModules(ctx context.Context, chatID int64) (domain.ModuleMask, error)
	// SetEnabledModules persists the module mask of a chat.
	SetEnabledModules(ctx context.Context, chatID int64, mask domain.ModuleMask) error
}
