package command

import (
	"slices"
	"strings"
	"sync"
	"tunebot/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// ModuleRegistry maps lower-cased command names and aliases of one module to
// their handlers. Registering a key twice keeps the last handler.
type ModuleRegistry struct {
	module   domain.Module
	mu       sync.RWMutex
	commands map[string]Handler
}

func NewModuleRegistry(module domain.Module) *ModuleRegistry {
	return &ModuleRegistry{
		module:   module,
		commands: make(map[string]Handler),
	}
}

func (r *ModuleRegistry) Module() domain.Module {
	return r.module
}

// RegisterCommand adds handler under its name and every alias.
func (r *ModuleRegistry) RegisterCommand(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Info().
		Str("module", r.module.String()).
		Str("handler", handler.Name()).
		Strs("aliases", handler.Aliases()).
		Msg("adding command handler to registry")

	r.put(handler.Name(), handler)
	for _, alias := range handler.Aliases() {
		r.put(alias, handler)
	}
}

func (r *ModuleRegistry) put(key string, handler Handler) {
	key = strings.ToLower(key)

	if existing, ok := r.commands[key]; ok && existing != handler {
		log.Warn().
			Str("module", r.module.String()).
			Str("key", key).
			Str("previous", existing.Name()).
			Str("handler", handler.Name()).
			Msg("command key already registered, overwriting")
	}

	r.commands[key] = handler
}

// GetCommand looks name up case-insensitively.
func (r *ModuleRegistry) GetCommand(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.commands[strings.ToLower(name)]
	return handler, ok
}

// RegisteredNamesAndAliases returns a snapshot of all keys in no particular order.
func (r *ModuleRegistry) RegisteredNamesAndAliases() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.commands))
	for k := range r.commands {
		keys = append(keys, k)
	}

	return keys
}

// Size is the number of keys, not of distinct handlers.
func (r *ModuleRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.commands)
}

// Handlers returns each distinct handler once, sorted by name.
func (r *ModuleRegistry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Handler]struct{}, len(r.commands))
	handlers := make([]Handler, 0, len(r.commands))

	for _, h := range r.commands {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		handlers = append(handlers, h)
	}

	slices.SortFunc(handlers, func(a, b Handler) int {
		return strings.Compare(a.Name(), b.Name())
	})

	return handlers
}
