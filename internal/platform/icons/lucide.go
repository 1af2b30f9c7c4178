package icons

import (
	_ "embed"
	"strings"
)

const lucideSymbolPrefix = "lucide-"

// FallbackLucideName is drawn for sources missing from the catalog.
const FallbackLucideName = "flag"

//go:embed sprite.svg
var lucideSprite string

// Resolver maps an icon source to a renderable sprite symbol id.
type Resolver interface {
	Resolve(source Source) (symbolID string, ok bool)
}

// Lucide resolves sources through the embedded Lucide catalog.
type Lucide struct {
	names map[Source]string
}

// NewLucide builds a resolver from the catalog.
func NewLucide() *Lucide {
	names := make(map[Source]string, len(catalog))
	for _, def := range catalog {
		names[def.Source] = def.Lucide
	}
	return &Lucide{names: names}
}

// Resolve returns the sprite symbol id for source. Unknown or empty
// sources resolve to the fallback symbol with ok=false.
func (l *Lucide) Resolve(source Source) (string, bool) {
	name, ok := l.LucideName(source)
	if !ok {
		return LucideSymbolID(FallbackLucideName), false
	}
	return LucideSymbolID(name), true
}

// LucideName returns the Lucide icon name for a source.
func (l *Lucide) LucideName(source Source) (string, bool) {
	if l == nil {
		return "", false
	}
	name, ok := l.names[Source(strings.TrimSpace(string(source)))]
	return name, ok
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for cataloged icons.
func LucideSprite() string {
	return lucideSprite
}
