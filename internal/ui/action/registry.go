package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/uikit/internal/platform/uid"
)

// ErrUnknownAction reports a dispatch for an id that was never registered
// or has been cleared.
var ErrUnknownAction = errors.New("unknown action")

// IDPrefix prefixes registered handler ids.
const IDPrefix = "Action"

// Registry maps rendered controls to their handlers. Controls carry only the
// id in markup; activation posts it back to Endpoint(id).
type Registry struct {
	ids    uid.Generator
	prefix string

	mu       sync.Mutex
	handlers map[string]Handler
}

// NewRegistry builds a registry whose endpoints live under prefix, e.g.
// "/ui/sessions/abc/actions".
func NewRegistry(ids uid.Generator, prefix string) *Registry {
	if ids == nil {
		ids = uid.Default()
	}
	return &Registry{
		ids:      ids,
		prefix:   strings.TrimRight(strings.TrimSpace(prefix), "/"),
		handlers: map[string]Handler{},
	}
}

// Register stores handler and returns its id. A nil handler is stored too:
// activating it is a no-op, matching a control wired to nothing.
func (r *Registry) Register(handler Handler) string {
	id := r.ids.Next(IDPrefix)
	r.mu.Lock()
	r.handlers[id] = handler
	r.mu.Unlock()
	return id
}

// Endpoint returns the activation URL for id.
func (r *Registry) Endpoint(id string) string {
	return r.prefix + "/" + id
}

// Dispatch invokes the handler registered under id once.
func (r *Registry) Dispatch(ctx context.Context, id string) error {
	r.mu.Lock()
	handler, ok := r.handlers[strings.TrimSpace(id)]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, id)
	}
	if handler == nil {
		return nil
	}
	return handler(ctx)
}

// Len reports how many handlers are registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

// Reset drops every registered handler.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.handlers = map[string]Handler{}
	r.mu.Unlock()
}
