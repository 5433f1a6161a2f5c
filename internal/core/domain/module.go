package domain

import (
	"fmt"
	"strings"
)

// Module is a fixed feature category. Its value is a single bit so that sets of
// modules can be stored as a ModuleMask.
type Module uint64

const (
	ModuleAdmin      Module = 1 << 0
	ModuleInfo       Module = 1 << 1
	ModuleConfig     Module = 1 << 2
	ModuleMusic      Module = 1 << 3
	ModuleModeration Module = 1 << 4
	ModuleUtility    Module = 1 << 5
	ModuleFun        Module = 1 << 6
)

// DefaultModules is enabled for every chat that has no stored configuration.
const DefaultModules = ModuleMask(ModuleAdmin | ModuleInfo | ModuleConfig | ModuleMusic)

type moduleInfo struct {
	name           string
	translationKey string
	emoji          string
}

var moduleInfos = map[Module]moduleInfo{
	ModuleAdmin:      {name: "admin", translationKey: "moduleAdmin", emoji: "🔑"},
	ModuleInfo:       {name: "info", translationKey: "moduleInfo", emoji: "ℹ️"},
	ModuleConfig:     {name: "config", translationKey: "moduleConfig", emoji: "⚙️"},
	ModuleMusic:      {name: "music", translationKey: "moduleMusic", emoji: "🎵"},
	ModuleModeration: {name: "moderation", translationKey: "moduleModeration", emoji: "🔨"},
	ModuleUtility:    {name: "utility", translationKey: "moduleUtility", emoji: "🛠️"},
	ModuleFun:        {name: "fun", translationKey: "moduleFun", emoji: "🎲"},
}

// Modules returns every module in declaration order.
func Modules() []Module {
	return []Module{
		ModuleAdmin,
		ModuleInfo,
		ModuleConfig,
		ModuleMusic,
		ModuleModeration,
		ModuleUtility,
		ModuleFun,
	}
}

func (m Module) Bits() uint64 {
	return uint64(m)
}

func (m Module) String() string {
	if info, ok := moduleInfos[m]; ok {
		return info.name
	}

	return fmt.Sprintf("module(%d)", uint64(m))
}

func (m Module) TranslationKey() string {
	return moduleInfos[m].translationKey
}

func (m Module) Emoji() string {
	return moduleInfos[m].emoji
}

// Lockable reports whether the module may be disabled for a chat.
func (m Module) Lockable() bool {
	return m != ModuleInfo && m != ModuleConfig
}

// ParseModule resolves a module by its name, case-insensitively.
func ParseModule(name string) (Module, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modules() {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownModule, name)
}

// ModuleMask is a combination of module bits.
type ModuleMask uint64

func (mm ModuleMask) Has(m Module) bool {
	return uint64(mm)&m.Bits() != 0
}

func (mm ModuleMask) With(m Module) ModuleMask {
	return mm | ModuleMask(m.Bits())
}

func (mm ModuleMask) Without(m Module) ModuleMask {
	return mm &^ ModuleMask(m.Bits())
}
