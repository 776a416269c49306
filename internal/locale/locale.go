// Package locale serves the ru/en message catalog.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed messages/*.json
var messagesFS embed.FS

// Supported lists the site languages.
var Supported = []language.Tag{language.Russian, language.English}

// Translator localizes message IDs and numbers.
type Translator struct {
	bundle   *i18n.Bundle
	matcher  language.Matcher
	fallback string
}

// New loads the embedded catalogs. fallback is used when a request names no
// supported language.
func New(fallback string) (*Translator, error) {
	base := language.Russian
	if fallback == "en" {
		base = language.English
	}

	bundle := i18n.NewBundle(base)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(messagesFS, "messages/*.json")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(messagesFS, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", path.Base(f), err)
		}
	}

	tags := []language.Tag{base}
	for _, t := range Supported {
		if t != base {
			tags = append(tags, t)
		}
	}

	return &Translator{
		bundle:   bundle,
		matcher:  language.NewMatcher(tags),
		fallback: base.String(),
	}, nil
}

// Match picks a supported language from preferences such as a ?lang= value or
// an Accept-Language header. Empty preferences give the fallback.
func (t *Translator) Match(prefs ...string) string {
	tag, _ := language.MatchStrings(t.matcher, prefs...)
	base, _ := tag.Base()
	switch base.String() {
	case "ru", "en":
		return base.String()
	default:
		return t.fallback
	}
}

// T localizes a message ID. Unknown IDs come back unchanged.
func (t *Translator) T(lang, id string, data map[string]any) string {
	loc := i18n.NewLocalizer(t.bundle, lang, t.fallback)
	s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}

// Number formats a value with the digit grouping and decimal mark of lang.
func (t *Translator) Number(lang string, v float64, decimals int) string {
	tag := language.Make(lang)
	if decimals < 0 {
		decimals = 0
	}
	p := message.NewPrinter(tag)
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}
