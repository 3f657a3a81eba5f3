package service

import (
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/MKhiriev/orbit-bootstrap/models"
)

// Locale defaults match the translations shipped with the wallet.
var (
	DefaultLocale           = "en"
	DefaultSupportedLocales = []string{"en", "pt", "fr"}
)

// resolveLocales validates the configured locales as BCP 47 tags. Invalid
// entries are dropped after trimming surrounding whitespace; an empty list falls back to the defaults. The default
// locale is always part of the supported list.
func resolveLocales(defaultLocale string, supported []string) models.LocaleConfig {
	def := DefaultLocale
	if tag, err := language.Parse(strings.TrimSpace(defaultLocale)); err == nil {
		def = tag.String()
	}

	locales := make([]string, 0, len(supported)+1)
	for _, s := range supported {
		tag, err := language.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		if l := tag.String(); !slices.Contains(locales, l) {
			locales = append(locales, l)
		}
	}
	if len(locales) == 0 {
		locales = slices.Clone(DefaultSupportedLocales)
	}
	if !slices.Contains(locales, def) {
		locales = append([]string{def}, locales...)
	}

	return models.LocaleConfig{Default: def, SupportedLocales: locales}
}

// localeMatcher picks the best supported locale for an Accept-Language header.
type localeMatcher struct {
	def     string
	locales []string
	matcher language.Matcher
}

func newLocaleMatcher(cfg models.LocaleConfig) *localeMatcher {
	// The first tag is the matcher's fallback, so the default leads.
	locales := []string{cfg.Default}
	for _, l := range cfg.SupportedLocales {
		if l != cfg.Default {
			locales = append(locales, l)
		}
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tags = append(tags, language.Make(l))
	}

	return &localeMatcher{
		def:     cfg.Default,
		locales: locales,
		matcher: language.NewMatcher(tags),
	}
}

func (m *localeMatcher) match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return m.def
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return m.def
	}

	_, idx, confidence := m.matcher.Match(desired...)
	if confidence == language.No || idx < 0 || idx >= len(m.locales) {
		return m.def
	}

	return m.locales[idx]
}
