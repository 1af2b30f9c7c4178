// Package app bundles the shared services every component renders
// against: id generation, icon resolution, action and attach registries,
// and localized copy.
//
// A Provider is created once per rendered view and passed explicitly to
// component constructors; nothing is looked up from ambient state.
package app

import (
	"fmt"

	"github.com/louisbranch/uikit/internal/platform/i18n/catalog"
	"github.com/louisbranch/uikit/internal/platform/icons"
	"github.com/louisbranch/uikit/internal/platform/uid"
	"github.com/louisbranch/uikit/internal/ui/action"
	"github.com/louisbranch/uikit/internal/ui/lifecycle"
	"golang.org/x/text/message"
)

// DefaultActionPrefix is used when Options.ActionPrefix is empty.
const DefaultActionPrefix = "/ui/actions"

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Options configures a Provider. Zero fields take defaults.
type Options struct {
	IDs          uid.Generator
	Icons        icons.Resolver
	Localizer    Localizer
	ActionPrefix string
}

// Provider is the app-wide dependency set handed to components.
type Provider struct {
	IDs     uid.Generator
	Icons   icons.Resolver
	Actions *action.Registry
	Mounts  *lifecycle.Registry
	Loc     Localizer
}

// New builds a Provider from opts.
func New(opts Options) *Provider {
	ids := opts.IDs
	if ids == nil {
		ids = uid.Default()
	}
	resolver := opts.Icons
	if resolver == nil {
		resolver = icons.NewLucide()
	}
	loc := opts.Localizer
	if loc == nil {
		loc = catalog.Default().Printer(catalog.BaseLocale)
	}
	prefix := opts.ActionPrefix
	if prefix == "" {
		prefix = DefaultActionPrefix
	}
	return &Provider{
		IDs:     ids,
		Icons:   resolver,
		Actions: action.NewRegistry(ids, prefix),
		Mounts:  lifecycle.NewRegistry(),
		Loc:     loc,
	}
}

// T returns a translated string or a key-derived fallback.
func (p *Provider) T(key message.Reference, args ...any) string {
	if p != nil && p.Loc != nil {
		return p.Loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// Reset clears registered actions and pending attach hooks before the
// view is rendered again.
func (p *Provider) Reset() {
	p.Actions.Reset()
	p.Mounts.Reset()
}
