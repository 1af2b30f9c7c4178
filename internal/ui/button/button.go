// Package button renders actions as design-system buttons.
package button

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/platform/icons"
	"github.com/louisbranch/uikit/internal/ui/action"
	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/icon"
	"github.com/louisbranch/uikit/internal/ui/link"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

// Size is a button size variation.
type Size string

// Sizes other than the default.
const (
	SizeDefault Size = ""
	SizeSlim    Size = "slim"
	SizeLarge   Size = "large"
)

// Options controls button presentation.
type Options struct {
	Outline            bool
	Plain              bool
	Size               Size
	Icon               icons.Source
	AccessibilityLabel string
	Disabled           bool
	Loading            bool
}

const blockName = "Button"

var (
	contentClass = styles.Element(blockName, "Content")
	textClass    = styles.Element(blockName, "Text")
	iconClass    = styles.Element(blockName, "Icon")
	spinnerClass = styles.Element(blockName, "Spinner")
)

// From renders a as a button. Callback actions register their handler with
// the provider's action registry when rendered and post back to its
// endpoint; navigation actions render as links styled like buttons. A nil
// action renders nothing.
func From(p *app.Provider, a action.Action, opts Options) templ.Component {
	switch a := a.(type) {
	case action.Callback:
		return callbackButton(p, a, opts)
	case action.Navigation:
		return navigationButton(p, a, opts)
	default:
		return nil
	}
}

// FromPrimary renders a primary action, merging its disabled, loading and
// label settings into opts.
func FromPrimary(p *app.Provider, primary action.Primary, opts Options) templ.Component {
	opts.Disabled = opts.Disabled || primary.Disabled
	opts.Loading = opts.Loading || primary.Loading
	if primary.AccessibilityLabel != "" {
		opts.AccessibilityLabel = primary.AccessibilityLabel
	}
	return From(p, primary.Action, opts)
}

func callbackButton(p *app.Provider, a action.Callback, opts Options) templ.Component {
	inactive := opts.Disabled || opts.Loading
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var activation []markup.Attr
		if !inactive {
			id := p.Actions.Register(a.Handler)
			activation = []markup.Attr{
				markup.A("data-action", id),
				markup.A("hx-post", p.Actions.Endpoint(id)),
				markup.A("hx-swap", "none"),
			}
		}
		attrs := markup.Attrs(
			[]markup.Attr{
				markup.A("type", "button"),
				markup.A("class", className(a.Content, opts)),
				markup.Opt("aria-label", opts.AccessibilityLabel),
				markup.Flag("disabled", inactive),
				markup.Opt("aria-busy", trueIf(opts.Loading)),
			},
			activation,
		)
		return markup.El("button", attrs, content(p, a.Content, opts)).Render(ctx, w)
	})
}

func navigationButton(p *app.Provider, a action.Navigation, opts Options) templ.Component {
	if opts.Disabled || opts.Loading {
		return markup.El("button", []markup.Attr{
			markup.A("type", "button"),
			markup.A("class", className(a.Content, opts)),
			markup.Opt("aria-label", opts.AccessibilityLabel),
			markup.Flag("disabled", true),
			markup.Opt("aria-busy", trueIf(opts.Loading)),
		}, content(p, a.Content, opts))
	}
	return link.Unstyled(link.Props{
		URL:      a.URL,
		External: a.External,
		Class:    className(a.Content, opts),
		Attrs:    []markup.Attr{markup.Opt("aria-label", opts.AccessibilityLabel)},
	}, content(p, a.Content, opts))
}

func className(label string, opts Options) string {
	return styles.ClassNames(
		styles.Block(blockName),
		styles.If(opts.Outline, styles.Modifier(blockName, "outline")),
		styles.If(opts.Plain, styles.Modifier(blockName, "plain")),
		styles.If(opts.Size != SizeDefault, styles.Modifier(blockName, styles.VariationName("size", string(opts.Size)))),
		styles.If(opts.Disabled, styles.Modifier(blockName, "disabled")),
		styles.If(opts.Loading, styles.Modifier(blockName, "loading")),
		styles.If(opts.Icon != "" && label == "", styles.Modifier(blockName, "iconOnly")),
	)
}

func content(p *app.Provider, label string, opts Options) templ.Component {
	var spinner, glyph, text templ.Component
	if opts.Loading {
		spinner = markup.El("span", []markup.Attr{markup.A("class", spinnerClass), markup.A("role", "status")},
			markup.El("span", []markup.Attr{markup.A("class", styles.Block("VisuallyHidden"))}, markup.Text(p.T("ui.button.loading"))),
		)
	}
	if opts.Icon != "" {
		glyph = markup.El("span", []markup.Attr{markup.A("class", iconClass)}, icon.Icon(p.Icons, icon.Props{Source: opts.Icon}))
	}
	if label != "" {
		text = markup.El("span", []markup.Attr{markup.A("class", textClass)}, markup.Text(label))
	}
	return markup.El("span", []markup.Attr{markup.A("class", contentClass)}, spinner, glyph, text)
}

func trueIf(cond bool) string {
	if cond {
		return "true"
	}
	return ""
}
