package command

import (
	"maps"
	"slices"
	"sync"
	"tunebot/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// Directory aggregates the registry of every module. It is built once at
// startup by the composition root and read concurrently afterwards.
type Directory struct {
	mu         sync.RWMutex
	registries map[domain.Module]*ModuleRegistry
}

func NewDirectory() *Directory {
	return &Directory{registries: make(map[domain.Module]*ModuleRegistry)}
}

// Register stores registry for its module, replacing any earlier one.
func (d *Directory) Register(registry *ModuleRegistry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.registries[registry.Module()]; ok {
		log.Warn().Str("module", registry.Module().String()).Msg("replacing module registry")
	}

	d.registries[registry.Module()] = registry
}

// NewModule creates a registry for module and registers it.
func (d *Directory) NewModule(module domain.Module) *ModuleRegistry {
	registry := NewModuleRegistry(module)
	d.Register(registry)

	return registry
}

// Registry returns the registry of module.
func (d *Directory) Registry(module domain.Module) (*ModuleRegistry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registry, ok := d.registries[module]
	return registry, ok
}

// Modules returns the registered modules in ascending bit order, which is
// their declaration order.
func (d *Directory) Modules() []domain.Module {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.sortedModules()
}

func (d *Directory) sortedModules() []domain.Module {
	return slices.Sorted(maps.Keys(d.registries))
}

// Resolved is a handler together with the module that owns it.
type Resolved struct {
	Handler Handler
	Module  domain.Module
}

// Resolve finds name in the first module, in declaration order, that has it.
func (d *Directory) Resolve(name string) (Resolved, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, m := range d.sortedModules() {
		if handler, ok := d.registries[m].GetCommand(name); ok {
			return Resolved{Handler: handler, Module: m}, true
		}
	}

	log.Debug().Str("command", name).Msg("command not found in any module")

	return Resolved{}, false
}

// FindCommand returns the handler registered under name in any module.
func (d *Directory) FindCommand(name string) (Handler, bool) {
	resolved, ok := d.Resolve(name)
	return resolved.Handler, ok
}

// Collisions returns every key registered in more than one module, with the
// modules in resolution order. Only the first of them is reachable.
func (d *Directory) Collisions() map[string][]domain.Module {
	d.mu.RLock()
	defer d.mu.RUnlock()

	owners := make(map[string][]domain.Module)
	for _, m := range d.sortedModules() {
		for _, key := range d.registries[m].RegisteredNamesAndAliases() {
			owners[key] = append(owners[key], m)
		}
	}

	for key, modules := range owners {
		if len(modules) < 2 {
			delete(owners, key)
		}
	}

	return owners
}

// TotalSize sums the key count of every module.
func (d *Directory) TotalSize() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	total := 0
	for _, r := range d.registries {
		total += r.Size()
	}

	return total
}

// AllRegisteredNamesAndAliases returns the deduplicated union of all keys.
func (d *Directory) AllRegisteredNamesAndAliases() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	set := make(map[string]struct{})
	for _, r := range d.registries {
		for _, key := range r.RegisteredNamesAndAliases() {
			set[key] = struct{}{}
		}
	}

	return slices.Collect(maps.Keys(set))
}
