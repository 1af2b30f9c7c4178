// Package i18n resolves the locale a gallery request renders in.
package i18n

import (
	"net/http"
	"strings"

	"github.com/louisbranch/uikit/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

// QueryParam overrides Accept-Language when present.
const QueryParam = "lang"

// Resolver matches request preferences against the catalog's locales.
type Resolver struct {
	fallback string
	locales  []string
	matcher  language.Matcher
}

// NewResolver builds a resolver over bundle. fallback is used when the
// request states no usable preference; it defaults to the base locale.
func NewResolver(bundle *catalog.Bundle, fallback string) *Resolver {
	if bundle == nil {
		bundle = catalog.Default()
	}
	locales := bundle.Locales()
	fallback = strings.TrimSpace(fallback)
	if !bundle.HasLocale(fallback) {
		fallback = catalog.BaseLocale
	}
	// The matcher returns the first supported tag on no match, so the
	// fallback goes first.
	ordered := []string{fallback}
	for _, locale := range locales {
		if locale != fallback {
			ordered = append(ordered, locale)
		}
	}
	tags := make([]language.Tag, 0, len(ordered))
	for _, locale := range ordered {
		tags = append(tags, language.MustParse(locale))
	}
	return &Resolver{fallback: fallback, locales: ordered, matcher: language.NewMatcher(tags)}
}

// Fallback returns the locale used when nothing matches.
func (r *Resolver) Fallback() string {
	return r.fallback
}

// Resolve returns the best supported locale for the request.
func (r *Resolver) Resolve(req *http.Request) string {
	if req == nil {
		return r.fallback
	}
	if explicit := strings.TrimSpace(req.URL.Query().Get(QueryParam)); explicit != "" {
		if locale, ok := r.match(explicit); ok {
			return locale
		}
	}
	if header := strings.TrimSpace(req.Header.Get("Accept-Language")); header != "" {
		if locale, ok := r.match(header); ok {
			return locale
		}
	}
	return r.fallback
}

func (r *Resolver) match(preference string) (string, bool) {
	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return r.locales[index], true
}
