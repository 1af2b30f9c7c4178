// Package sessions keeps the per-visitor and per-view state the gallery
// needs between a page render and the activations that follow it.
package sessions

import (
	"strings"
	"sync"

	"github.com/louisbranch/uikit/internal/platform/uid"
	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/scrollable"
)

// DefaultCapacity bounds retained views and visitors.
const DefaultCapacity = 256

const (
	visitorPrefix = "v"
	viewPrefix    = "s"
)

// Visitor is one browser's gallery state, identified by cookie.
type Visitor struct {
	ID string

	mu        sync.Mutex
	dismissed map[string]bool
	retries   int
}

// Dismiss hides the named gallery entry.
func (v *Visitor) Dismiss(name string) {
	v.mu.Lock()
	v.dismissed[name] = true
	v.mu.Unlock()
}

// Restore shows every dismissed entry again and reports how many were
// hidden.
func (v *Visitor) Restore() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := len(v.dismissed)
	v.dismissed = make(map[string]bool)
	return n
}

// Dismissed reports whether name is hidden.
func (v *Visitor) Dismissed(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dismissed[name]
}

// Retry counts one retry activation and returns the running total.
func (v *Visitor) Retry() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.retries++
	return v.retries
}

// Retries returns the number of retry activations so far.
func (v *Visitor) Retries() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.retries
}

// View is one rendered page: its provider holds the actions and attach
// hooks registered while rendering.
type View struct {
	ID       string
	Visitor  *Visitor
	Locale   string
	Provider *app.Provider

	mu      sync.Mutex
	regions []*scrollable.Region
}

// AddRegion records a scroll region rendered into the view.
func (v *View) AddRegion(region *scrollable.Region) {
	if region == nil {
		return
	}
	v.mu.Lock()
	v.regions = append(v.regions, region)
	v.mu.Unlock()
}

// DrainScrolls collects pending scroll requests from every region in
// render order.
func (v *View) DrainScrolls() []scrollable.Scroll {
	v.mu.Lock()
	regions := append([]*scrollable.Region(nil), v.regions...)
	v.mu.Unlock()

	out := []scrollable.Scroll{}
	for _, region := range regions {
		out = append(out, region.Drain()...)
	}
	return out
}

// ProviderFactory builds the provider for a new view. actionPrefix is the
// view's activation URL prefix.
type ProviderFactory func(locale string, actionPrefix string) *app.Provider

// Store holds visitors and views, evicting the oldest past capacity.
type Store struct {
	ids      uid.Generator
	capacity int

	mu           sync.Mutex
	visitors     map[string]*Visitor
	visitorOrder []string
	views        map[string]*View
	viewOrder    []string
}

// NewStore builds a store. A nil generator uses random ids; a
// non-positive capacity uses DefaultCapacity.
func NewStore(ids uid.Generator, capacity int) *Store {
	if ids == nil {
		ids = uid.Random{}
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		ids:      ids,
		capacity: capacity,
		visitors: make(map[string]*Visitor),
		views:    make(map[string]*View),
	}
}

// Visitor returns the visitor for id, creating a fresh one when id is
// unknown. created reports whether a new visitor was made.
func (s *Store) Visitor(id string) (visitor *Visitor, created bool) {
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.visitors[id]; ok && id != "" {
		return existing, false
	}
	visitor = &Visitor{ID: s.ids.Next(visitorPrefix), dismissed: make(map[string]bool)}
	s.visitors[visitor.ID] = visitor
	s.visitorOrder = append(s.visitorOrder, visitor.ID)
	if len(s.visitorOrder) > s.capacity {
		evict := s.visitorOrder[0]
		s.visitorOrder = s.visitorOrder[1:]
		delete(s.visitors, evict)
	}
	return visitor, true
}

// Open registers a new view for visitor.
func (s *Store) Open(visitor *Visitor, locale string, actionBase string, build ProviderFactory) *View {
	id := s.ids.Next(viewPrefix)
	view := &View{
		ID:       id,
		Visitor:  visitor,
		Locale:   locale,
		Provider: build(locale, ActionPrefix(actionBase, id)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[id] = view
	s.viewOrder = append(s.viewOrder, id)
	if len(s.viewOrder) > s.capacity {
		evict := s.viewOrder[0]
		s.viewOrder = s.viewOrder[1:]
		delete(s.views, evict)
	}
	return view
}

// View returns a live view by id.
func (s *Store) View(id string) (*View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[strings.TrimSpace(id)]
	return view, ok
}

// Len returns the number of live views.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// ActionPrefix joins the session route base and a view id into the
// prefix its action endpoints hang from.
func ActionPrefix(base string, viewID string) string {
	return strings.TrimRight(base, "/") + "/" + viewID + "/actions"
}

// MountEndpoint is where the client reports layout for a view.
func MountEndpoint(base string, viewID string) string {
	return strings.TrimRight(base, "/") + "/" + viewID + "/mount"
}
