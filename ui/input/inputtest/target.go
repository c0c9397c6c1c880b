// Package inputtest implements elements that tests can send events to.
package inputtest

import (
	"github.com/jacobpatterson1549/circle-canvas/ui/input"
)

type (
	// Target is an input.EventTarget that tests dispatch events on.
	Target struct {
		listeners []*listener
	}

	listener struct {
		eventType string
		fn        func(event input.Event)
		removed   bool
	}

	// Event is a mouse event at a position on the page.
	Event struct {
		X, Y             float64
		DefaultPrevented bool
	}
)

// Target implements the input.EventTarget interface.
var _ input.EventTarget = new(Target)

// AddEventListener implements the input.EventTarget interface.
func (t *Target) AddEventListener(eventType string, fn func(event input.Event)) input.Subscription {
	l := listener{
		eventType: eventType,
		fn:        fn,
	}
	t.listeners = append(t.listeners, &l)
	return &l
}

// Remove implements the input.Subscription interface.
func (l *listener) Remove() {
	l.removed = true
}

// Dispatch calls the listeners for the event type.
// The number of listeners called is returned.
func (t *Target) Dispatch(eventType string, event *Event) int {
	n := 0
	for _, l := range t.listeners {
		if l.removed || l.eventType != eventType {
			continue
		}
		l.fn(event)
		n++
	}
	return n
}

// Listeners is the number of listeners that have not been removed.
func (t *Target) Listeners() int {
	n := 0
	for _, l := range t.listeners {
		if !l.removed {
			n++
		}
	}
	return n
}

// ClientX implements the input.Event interface.
func (e *Event) ClientX() float64 {
	return e.X
}

// ClientY implements the input.Event interface.
func (e *Event) ClientY() float64 {
	return e.Y
}

// PreventDefault implements the input.Event interface.
func (e *Event) PreventDefault() {
	e.DefaultPrevented = true
}
