package page

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/flash"
	"github.com/louisbranch/uikit/internal/services/gallery/sessions"
	"github.com/louisbranch/uikit/internal/ui/action"
	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/banner"
	"github.com/louisbranch/uikit/internal/ui/heading"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/scrollable"
)

// Gallery entry names, used for dismissal state.
const (
	EntrySuccess  = "success"
	EntryInfo     = "info"
	EntryWarning  = "warning"
	EntryCritical = "critical"
	EntryDefault  = "default"
	EntryNested   = "nested"
)

// LearnMoreURL is the external destination of the info banner link.
const LearnMoreURL = "https://polaris.shopify.com/components/feedback-indicators/banner"

// GalleryOptions configures the showcase.
type GalleryOptions struct {
	// Notice is the flash notice carried over from the last action.
	Notice *flash.Notice
	// WithinContent renders every banner as if nested in a content
	// container.
	WithinContent bool
}

// Gallery renders the showcase for view. Actions and attach hooks
// register with the view's provider as the markup is written.
func Gallery(view *sessions.View, opts GalleryOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := view.Provider
		nesting := banner.Context{WithinContentContainer: opts.WithinContent}

		region := scrollable.NewRegion(p)
		view.AddRegion(region)
		anchor := scrollable.NewScrollTo(p, region.Context())

		main := markup.El("main", []markup.Attr{markup.A("class", "Gallery")},
			heading.Heading(heading.H1, p.T("gallery.title")),
			markup.El("p", []markup.Attr{markup.A("class", "Gallery__Intro")}, markup.Text(p.T("gallery.intro"))),
			flashBanner(p, opts.Notice, nesting),
			section(entries(view, nesting)...),
			card(p, view),
			markup.El("section", []markup.Attr{markup.A("class", "Gallery__Scroll")},
				heading.Heading(heading.H2, p.T("gallery.scroll.title")),
				region.Render(
					markup.El("p", nil, markup.Text(p.T("gallery.scroll.body"))),
					markup.El("div", []markup.Attr{markup.A("class", "Gallery__Spacer")}),
					anchor,
				),
			),
		)
		return main.Render(ctx, w)
	})
}

func section(children ...templ.Component) templ.Component {
	items := make([]templ.Component, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		items = append(items, markup.El("div", []markup.Attr{markup.A("class", "Gallery__Item")}, child))
	}
	return markup.El("section", []markup.Attr{markup.A("class", "Gallery__Banners")}, items...)
}

func flashBanner(p *app.Provider, notice *flash.Notice, nesting banner.Context) templ.Component {
	if notice == nil {
		return nil
	}
	return banner.Banner(p, banner.Props{
		Title:  p.T(notice.Key),
		Status: notice.Status(),
	}, nesting)
}

func entries(view *sessions.View, nesting banner.Context) []templ.Component {
	p := view.Provider
	visitor := view.Visitor
	visible := func(name string, c templ.Component) templ.Component {
		if visitor.Dismissed(name) {
			return nil
		}
		return c
	}
	return []templ.Component{
		visible(EntrySuccess, banner.Banner(p, banner.Props{
			Title:    p.T("gallery.banner.success.title"),
			Status:   banner.StatusSuccess,
			Children: markup.Text(p.T("gallery.banner.success.body")),
			Action: &action.Primary{Action: action.Navigation{
				Content: p.T("gallery.action.view_orders"),
				URL:     "/#orders",
			}},
			SecondaryAction: action.Callback{
				Content: p.T("gallery.action.undo"),
				Handler: restore(visitor),
			},
			OnDismiss: dismiss(visitor, EntrySuccess),
		}, nesting)),
		visible(EntryInfo, banner.Banner(p, banner.Props{
			Title:    p.T("gallery.banner.info.title"),
			Status:   banner.StatusInfo,
			Children: markup.Text(p.T("gallery.banner.info.body")),
			Action: &action.Primary{Action: action.Callback{
				Content: p.T("gallery.action.retry"),
				Handler: retry(visitor),
			}},
			SecondaryAction: action.Navigation{
				Content:  p.T("gallery.action.learn_more"),
				URL:      LearnMoreURL,
				External: true,
			},
			OnDismiss: dismiss(visitor, EntryInfo),
		}, nesting)),
		visible(EntryWarning, banner.Banner(p, banner.Props{
			Title:     p.T("gallery.banner.warning.title"),
			Status:    banner.StatusWarning,
			Children:  markup.Text(p.T("gallery.banner.warning.body")),
			OnDismiss: dismiss(visitor, EntryWarning),
		}, nesting)),
		banner.Banner(p, banner.Props{
			Title:  p.T("gallery.banner.critical.title"),
			Status: banner.StatusCritical,
		}, nesting),
		banner.Banner(p, banner.Props{
			Children: markup.Text(p.T("gallery.banner.default.body")),
			Action: &action.Primary{Action: action.Callback{
				Content: p.T("gallery.action.retry"),
				Handler: retry(visitor),
			}},
		}, nesting),
	}
}

func card(p *app.Provider, view *sessions.View) templ.Component {
	if view.Visitor.Dismissed(EntryNested) {
		return nil
	}
	return markup.El("div", []markup.Attr{markup.A("class", "Polaris-Card")},
		markup.El("div", []markup.Attr{markup.A("class", "Polaris-Card__Section")},
			banner.Banner(p, banner.Props{
				Title:    p.T("gallery.nested.title"),
				Status:   banner.StatusInfo,
				Children: markup.Text(p.T("gallery.nested.body")),
				Action: &action.Primary{Action: action.Callback{
					Content: p.T("gallery.action.retry"),
					Handler: retry(view.Visitor),
				}},
				OnDismiss: dismiss(view.Visitor, EntryNested),
			}, banner.Context{WithinContentContainer: true}),
		),
	)
}

func dismiss(visitor *sessions.Visitor, name string) action.Handler {
	return func(ctx context.Context) error {
		visitor.Dismiss(name)
		flash.Post(ctx, flash.Notice{Kind: flash.KindInfo, Key: "gallery.flash.dismissed"})
		return nil
	}
}

func restore(visitor *sessions.Visitor) action.Handler {
	return func(ctx context.Context) error {
		visitor.Restore()
		flash.Post(ctx, flash.Notice{Kind: flash.KindSuccess, Key: "gallery.flash.undone"})
		return nil
	}
}

func retry(visitor *sessions.Visitor) action.Handler {
	return func(ctx context.Context) error {
		visitor.Retry()
		flash.Post(ctx, flash.Notice{Kind: flash.KindSuccess, Key: "gallery.flash.retried"})
		return nil
	}
}
