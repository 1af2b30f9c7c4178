package scrollable

import (
	"context"
	"io"
	"sync"

	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/lifecycle"
	"github.com/louisbranch/uikit/internal/ui/markup"
)

// ScrollToIDPrefix prefixes generated anchor ids.
const ScrollToIDPrefix = "ScrollTo"

// ScrollTo is an invisible anchor. After its first attach it asks the
// enclosing region to scroll to the anchor's offset; later renders and
// attach passes never scroll again.
type ScrollTo struct {
	id       string
	mounts   *lifecycle.Registry
	scroll   ScrollToPosition
	attach   *lifecycle.Once
	register sync.Once
}

// NewScrollTo builds an anchor inside the region described by sc.
func NewScrollTo(p *app.Provider, sc Context) *ScrollTo {
	s := &ScrollTo{
		id:     p.IDs.Next(ScrollToIDPrefix),
		mounts: p.Mounts,
		scroll: sc.ScrollToPosition,
	}
	s.attach = lifecycle.OnAttach(s.attached)
	return s
}

// ID returns the anchor's DOM id.
func (s *ScrollTo) ID() string {
	return s.id
}

// Render writes the anchor and, on the first render, queues its attach
// hook.
func (s *ScrollTo) Render(ctx context.Context, w io.Writer) error {
	s.register.Do(func() {
		s.mounts.Register(s)
	})
	return markup.El("a", []markup.Attr{
		markup.A("id", s.id),
		markup.A("data-mount", s.id),
	}).Render(ctx, w)
}

// Attach implements lifecycle.Hook.
func (s *ScrollTo) Attach(ctx context.Context, layout lifecycle.Layout) {
	s.attach.Attach(ctx, layout)
}

// Attached reports whether the anchor has been through its attach pass.
func (s *ScrollTo) Attached() bool {
	return s.attach.Attached()
}

func (s *ScrollTo) attached(_ context.Context, layout lifecycle.Layout) {
	if s.scroll == nil {
		return
	}
	offset, ok := layout.OffsetTop(s.id)
	if !ok {
		return
	}
	s.scroll(offset)
}
