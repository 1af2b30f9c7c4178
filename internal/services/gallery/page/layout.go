// Package page renders the gallery document and its component showcase.
package page

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/platform/branding"
	"github.com/louisbranch/uikit/internal/platform/icons"
	"github.com/louisbranch/uikit/internal/ui/markup"
)

// LayoutOptions configures the document shell.
type LayoutOptions struct {
	Title         string
	Lang          string
	SessionID     string
	MountEndpoint string
	// HTMXScript, when set, loads htmx from that URL. gallery.js handles
	// hx-post activations itself when htmx is absent.
	HTMXScript string
}

// ComposeTitle appends the product name to a page title.
func ComposeTitle(title string) string {
	title = strings.TrimSpace(title)
	suffix := " | " + branding.AppName
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, suffix) {
		return title
	}
	return title + suffix
}

// Layout wraps body in the full HTML document.
func Layout(opts LayoutOptions, body templ.Component) templ.Component {
	lang := opts.Lang
	if lang == "" {
		lang = "en-US"
	}
	var htmx templ.Component
	if opts.HTMXScript != "" {
		htmx = markup.El("script", []markup.Attr{markup.A("src", opts.HTMXScript)})
	}
	head := markup.El("head", nil,
		markup.Void("meta", markup.A("charset", "utf-8")),
		markup.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1")),
		markup.El("title", nil, markup.Text(ComposeTitle(opts.Title))),
		markup.Void("link", markup.A("rel", "stylesheet"), markup.A("href", "/static/gallery.css")),
		htmx,
		markup.El("script", []markup.Attr{markup.A("src", "/static/gallery.js"), markup.Flag("defer", true)}),
	)
	bodyEl := markup.El("body", []markup.Attr{
		markup.Opt("data-session", opts.SessionID),
		markup.Opt("data-mount-endpoint", opts.MountEndpoint),
	}, templ.Raw(icons.LucideSprite()), body)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>"); err != nil {
			return err
		}
		return markup.El("html", []markup.Attr{markup.A("lang", lang)}, head, bodyEl).Render(ctx, w)
	})
}
