package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale provides every message; other locales fall back to it.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Translator renders chat replies from the embedded locale files.
type Translator struct {
	locale  string
	keys    map[string]struct{}
	printer *message.Printer
}

// NewTranslator returns a translator for locale. Unknown locales use the
// base locale.
func NewTranslator(locale string) (*Translator, error) {
	return newTranslator(embeddedLocales, locale)
}

func newTranslator(fsys fs.FS, locale string) (*Translator, error) {
	files, err := loadLocales(fsys)
	if err != nil {
		return nil, err
	}

	base, ok := files[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	baseTag := language.MustParse(BaseLocale)
	builder := catalog.NewBuilder(catalog.Fallback(baseTag))

	for name, messages := range files {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse locale tag %q: %w", name, err)
		}

		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("locale %s key %s: %w", name, key, err)
			}
		}

		// Keys missing from a translation are served from the base locale.
		if name != BaseLocale {
			for key, msg := range base {
				if _, exists := messages[key]; !exists {
					if err := builder.SetString(tag, key, msg); err != nil {
						return nil, fmt.Errorf("locale %s key %s: %w", name, key, err)
					}
				}
			}
		}
	}

	if _, ok := files[locale]; !ok {
		log.Warn().Str("locale", locale).Str("fallback", BaseLocale).Msg("unknown locale")
		locale = BaseLocale
	}

	keys := make(map[string]struct{}, len(base))
	for key := range base {
		keys[key] = struct{}{}
	}

	return &Translator{
		locale:  locale,
		keys:    keys,
		printer: message.NewPrinter(language.MustParse(locale), message.Catalog(builder)),
	}, nil
}

func (t *Translator) Locale() string {
	return t.locale
}

// Translate renders key with args. Unknown keys are returned as-is and
// their args are dropped.
func (t *Translator) Translate(key string, args ...any) string {
	if _, ok := t.keys[key]; !ok {
		log.Warn().Str("key", key).Msg("missing translation")
		return key
	}

	return t.printer.Sprintf(key, args...)
}

// Locales lists the embedded locales.
func Locales() []string {
	files, err := loadLocales(embeddedLocales)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func loadLocales(fsys fs.FS) (map[string]map[string]string, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	files := make(map[string]map[string]string, len(paths))
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", p, err)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", p, err)
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if file.Locale != name {
			return nil, fmt.Errorf("locale %s: locale %q must match file name", p, file.Locale)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("locale %s: no messages", p)
		}

		files[name] = file.Messages
	}

	return files, nil
}
