// Package action describes what happens when a user activates a control.
//
// An Action is a sealed two-case variant: Navigation moves to a URL and
// renders as a link; Callback invokes a server-side Handler and renders as
// a button. Callers resolve it with a type switch on the concrete type.
package action

import "context"

// Handler runs when a callback action is activated.
type Handler func(context.Context) error

// Action is implemented only by Navigation and Callback.
type Action interface {
	Label() string
	isAction()
}

// Navigation is an action that moves the user to URL.
type Navigation struct {
	Content  string
	URL      string
	External bool
}

// Label returns the display text.
func (n Navigation) Label() string { return n.Content }

func (Navigation) isAction() {}

// Callback is an action that invokes Handler.
type Callback struct {
	Content string
	Handler Handler
}

// Label returns the display text.
func (c Callback) Label() string { return c.Content }

func (Callback) isAction() {}

// Primary is a prominent action that may be disabled or show progress.
type Primary struct {
	Action             Action
	Disabled           bool
	Loading            bool
	AccessibilityLabel string
}

// Label returns the wrapped action's display text.
func (p Primary) Label() string {
	if p.Action == nil {
		return ""
	}
	return p.Action.Label()
}
