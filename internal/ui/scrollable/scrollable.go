// Package scrollable provides a scrolling region and the ScrollTo anchor
// that asks it to scroll once the anchor is laid out.
package scrollable

import (
	"sync"

	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

// ScrollToPosition scrolls the enclosing region to a vertical offset.
type ScrollToPosition func(offset float64)

// Context is what a region hands to the components inside it. A zero
// Context means the component is not inside any scrollable region.
type Context struct {
	ScrollToPosition ScrollToPosition
}

// Scroll is a pending scroll request for the client to apply.
type Scroll struct {
	Region string  `json:"region"`
	Top    float64 `json:"top"`
}

// RegionIDPrefix prefixes generated region ids.
const RegionIDPrefix = "Scrollable"

// Region is a vertically scrolling container. Scroll requests made by
// its children are queued until the transport drains them.
type Region struct {
	id string

	mu      sync.Mutex
	pending []Scroll
}

// NewRegion allocates a region id from the provider.
func NewRegion(p *app.Provider) *Region {
	return &Region{id: p.IDs.Next(RegionIDPrefix)}
}

// ID returns the region's DOM id.
func (r *Region) ID() string {
	return r.id
}

// ScrollToPosition queues a scroll to offset.
func (r *Region) ScrollToPosition(offset float64) {
	r.mu.Lock()
	r.pending = append(r.pending, Scroll{Region: r.id, Top: offset})
	r.mu.Unlock()
}

// Context exposes the region's scroll capability to children.
func (r *Region) Context() Context {
	return Context{ScrollToPosition: r.ScrollToPosition}
}

// Drain returns queued scroll requests in order and clears the queue.
func (r *Region) Drain() []Scroll {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	return out
}

// Render draws the region around children.
func (r *Region) Render(children ...templ.Component) templ.Component {
	return markup.El("div", []markup.Attr{
		markup.A("class", styles.Block("Scrollable")),
		markup.A("id", r.id),
		markup.Flag("data-scrollable", true),
	}, children...)
}
