// Package banner renders prominent status notices.
//
// A banner combines an optional dismiss control, a colored ribbon icon, a
// heading, body content and an action group. Its tone comes from Status;
// its size adapts to whether it sits inside a content container.
package banner

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/platform/icons"
	"github.com/louisbranch/uikit/internal/ui/action"
	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/button"
	"github.com/louisbranch/uikit/internal/ui/heading"
	"github.com/louisbranch/uikit/internal/ui/icon"
	"github.com/louisbranch/uikit/internal/ui/link"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

// IDPrefix prefixes generated banner ids.
const IDPrefix = "Banner"

// Context is the nesting state supplied by the enclosing layout.
type Context struct {
	WithinContentContainer bool
}

// Props configures one banner render.
type Props struct {
	Title string
	// Icon overrides the status default icon.
	Icon   icons.Source
	Status Status
	// Children is the body content; nil means none.
	Children        templ.Component
	Action          *action.Primary
	SecondaryAction action.Action
	// OnDismiss, when set, adds a dismiss control that invokes it.
	OnDismiss action.Handler
}

func (p Props) hasAction() bool {
	return p.Action != nil && p.Action.Action != nil
}

// Banner renders props against the provider. Each render draws a fresh id
// from the provider's generator; heading and content ids derive from it.
func Banner(p *app.Provider, props Props, nesting Context) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		variant := VariantFor(props.Status)
		id := p.IDs.Next(IDPrefix)

		source := props.Icon
		if source == "" {
			source = variant.Icon
		}

		var headingID string
		var headingMarkup templ.Component
		if props.Title != "" {
			headingID = id + "Heading"
			headingMarkup = markup.El("div", []markup.Attr{
				markup.A("class", styles.BannerHeading),
				markup.A("id", headingID),
			}, heading.Heading(heading.P, props.Title))
		}

		var contentID string
		var contentMarkup templ.Component
		actionMarkup := actions(p, props, nesting)
		if props.Children != nil || actionMarkup != nil {
			contentID = id + "Content"
			contentMarkup = markup.El("div", []markup.Attr{
				markup.A("class", styles.BannerContent),
				markup.A("id", contentID),
			}, props.Children, actionMarkup)
		}

		var dismissMarkup templ.Component
		if props.OnDismiss != nil {
			dismissMarkup = markup.El("div", []markup.Attr{markup.A("class", styles.BannerDismiss)},
				button.From(p, action.Callback{Handler: props.OnDismiss}, button.Options{
					Plain:              true,
					Icon:               icons.CancelSmallMinor,
					AccessibilityLabel: p.T("ui.banner.dismiss"),
				}),
			)
		}

		container := markup.El("div", []markup.Attr{
			markup.A("class", className(props, variant, nesting)),
			markup.A("tabindex", "0"),
			markup.A("role", variant.Role),
			markup.A("aria-live", "polite"),
			markup.A("onmouseup", "this.blur()"),
			markup.Opt("aria-labelledby", headingID),
			markup.Opt("aria-describedby", contentID),
		},
			dismissMarkup,
			markup.El("div", []markup.Attr{markup.A("class", styles.BannerRibbon)},
				icon.Icon(p.Icons, icon.Props{Source: source, Color: variant.Color, Backdrop: true}),
			),
			markup.El("div", nil, headingMarkup, contentMarkup),
		)
		return container.Render(ctx, w)
	})
}

func className(props Props, variant Variant, nesting Context) string {
	placement := styles.BannerWithinPage
	if nesting.WithinContentContainer {
		placement = styles.BannerWithinContentContainer
	}
	return styles.ClassNames(
		styles.Banner,
		variant.Class,
		styles.If(props.OnDismiss != nil, styles.BannerHasDismiss),
		placement,
	)
}

func actions(p *app.Provider, props Props, nesting Context) templ.Component {
	if !props.hasAction() {
		return nil
	}
	size := button.SizeDefault
	if nesting.WithinContentContainer {
		size = button.SizeSlim
	}
	return markup.El("div", []markup.Attr{markup.A("class", styles.BannerActions)},
		button.Group(
			markup.El("div", []markup.Attr{markup.A("class", styles.BannerPrimaryAction)},
				button.FromPrimary(p, *props.Action, button.Options{Outline: true, Size: size}),
			),
			secondaryAction(p, props.SecondaryAction),
		),
	)
}

func secondaryAction(p *app.Provider, a action.Action) templ.Component {
	switch a := a.(type) {
	case action.Navigation:
		return link.Unstyled(link.Props{
			URL:      a.URL,
			External: a.External,
			Class:    styles.BannerSecondaryAction,
		}, secondaryText(a.Content))
	case action.Callback:
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			id := p.Actions.Register(a.Handler)
			return markup.El("button", []markup.Attr{
				markup.A("type", "button"),
				markup.A("class", styles.BannerSecondaryAction),
				markup.A("data-action", id),
				markup.A("hx-post", p.Actions.Endpoint(id)),
				markup.A("hx-swap", "none"),
			}, secondaryText(a.Content)).Render(ctx, w)
		})
	default:
		return nil
	}
}

func secondaryText(content string) templ.Component {
	return markup.El("span", []markup.Attr{markup.A("class", styles.BannerText)}, markup.Text(content))
}
