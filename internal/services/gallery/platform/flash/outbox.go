package flash

import (
	"context"
	"sync"
)

type outboxKey struct{}

// Outbox collects the notice an action handler wants shown after the
// redirect. The last posted notice wins.
type Outbox struct {
	mu     sync.Mutex
	notice Notice
	set    bool
}

// WithOutbox attaches a fresh outbox to ctx.
func WithOutbox(ctx context.Context) (context.Context, *Outbox) {
	box := &Outbox{}
	return context.WithValue(ctx, outboxKey{}, box), box
}

// Post records notice in the outbox carried by ctx. It reports false when
// ctx has no outbox.
func Post(ctx context.Context, notice Notice) bool {
	box, ok := ctx.Value(outboxKey{}).(*Outbox)
	if !ok || box == nil {
		return false
	}
	box.mu.Lock()
	box.notice = notice
	box.set = true
	box.mu.Unlock()
	return true
}

// Notice returns the posted notice, if any.
func (b *Outbox) Notice() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notice, b.set
}
