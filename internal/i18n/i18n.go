// Package i18n resolves localized text for namespaced keys such as
// "egg:greatTier".
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// supported lists the bundled locales; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Translator looks up text for one language with English fallback.
type Translator struct {
	lang     language.Tag
	primary  map[string]string
	fallback map[string]string
}

// New returns a Translator for the closest bundled match of lang, which may
// be any BCP 47 tag or an empty string for English.
func New(lang string) (*Translator, error) {
	_, idx, _ := matcher.Match(language.Make(lang))
	tag := supported[idx]

	fallback, err := loadLocale(supported[0])
	if err != nil {
		return nil, err
	}
	primary := fallback
	if idx != 0 {
		if primary, err = loadLocale(tag); err != nil {
			return nil, err
		}
	}
	return &Translator{lang: tag, primary: primary, fallback: fallback}, nil
}

// Language returns the resolved language.
func (t *Translator) Language() language.Tag {
	return t.lang
}

// T returns the text for key. Keys missing from the active locale fall back
// to English, then to the key itself.
func (t *Translator) T(key string) string {
	if s, ok := t.primary[key]; ok {
		return s
	}
	if s, ok := t.fallback[key]; ok {
		return s
	}
	return key
}

// loadLocale reads a bundled locale and flattens it to "namespace:key"
// entries.
func loadLocale(tag language.Tag) (map[string]string, error) {
	base, _ := tag.Base()
	name := "locales/" + base.String() + ".yaml"
	data, err := localeFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read locale %s: %w", name, err)
	}

	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode locale %s: %w", name, err)
	}

	flat := make(map[string]string)
	for ns, entries := range doc {
		for k, v := range entries {
			flat[ns+":"+k] = strings.TrimSpace(v)
		}
	}
	return flat, nil
}
