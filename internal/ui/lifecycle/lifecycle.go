// Package lifecycle runs post-attach hooks once the client has laid out
// rendered markup and reported measurements back.
package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
)

// Layout reports measurements for rendered elements by DOM id.
type Layout interface {
	// OffsetTop returns the element's vertical offset relative to its
	// closest positioned ancestor.
	OffsetTop(id string) (float64, bool)
}

// Measurement is one element's reported geometry.
type Measurement struct {
	OffsetTop float64 `json:"offsetTop"`
}

// Measurements is a Layout backed by a client report.
type Measurements map[string]Measurement

// OffsetTop implements Layout.
func (m Measurements) OffsetTop(id string) (float64, bool) {
	measurement, ok := m[id]
	if !ok {
		return 0, false
	}
	return measurement.OffsetTop, true
}

// Hook is notified when its element is attached.
type Hook interface {
	Attach(ctx context.Context, layout Layout)
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, layout Layout)

// Attach calls f.
func (f HookFunc) Attach(ctx context.Context, layout Layout) {
	f(ctx, layout)
}

// Once fires a hook at most one time, however many attach passes run.
type Once struct {
	once  sync.Once
	fired atomic.Bool
	fn    func(ctx context.Context, layout Layout)
}

// OnAttach wraps fn so it runs on the first attach only.
func OnAttach(fn func(ctx context.Context, layout Layout)) *Once {
	return &Once{fn: fn}
}

// Attach runs the wrapped function on the first call.
func (o *Once) Attach(ctx context.Context, layout Layout) {
	o.once.Do(func() {
		o.fired.Store(true)
		if o.fn != nil {
			o.fn(ctx, layout)
		}
	})
}

// Attached reports whether the hook has fired.
func (o *Once) Attached() bool {
	return o.fired.Load()
}

// Registry collects hooks registered while rendering and releases them to
// the next attach pass.
type Registry struct {
	mu      sync.Mutex
	pending []Hook
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register queues hook for the next attach pass.
func (r *Registry) Register(hook Hook) {
	if hook == nil {
		return
	}
	r.mu.Lock()
	r.pending = append(r.pending, hook)
	r.mu.Unlock()
}

// Pending reports how many hooks wait for attach.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// AttachAll runs every queued hook in registration order and clears the
// queue. It returns the number of hooks run.
func (r *Registry) AttachAll(ctx context.Context, layout Layout) int {
	r.mu.Lock()
	hooks := r.pending
	r.pending = nil
	r.mu.Unlock()

	if layout == nil {
		layout = Measurements{}
	}
	for _, hook := range hooks {
		hook.Attach(ctx, layout)
	}
	return len(hooks)
}

// Reset drops queued hooks without running them.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.pending = nil
	r.mu.Unlock()
}
