// Package input turns clicks on the page into changes to the drawing.
package input

import (
	"errors"

	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
)

const (
	// PointerDownEvent is the event on the canvas that adds a shape.
	PointerDownEvent = "mousedown"
	// ActivateEvent is the event on the clear button that removes all shapes.
	ActivateEvent = "click"
)

type (
	// Bridge holds the event listeners of the canvas and the clear button.
	Bridge struct {
		subscriptions []Subscription
		log           Logger
	}

	// Config contains the parameters to create a Bridge.
	Config struct {
		// Surface is the canvas, used to convert click positions to buffer positions.
		Surface canvas.Surface
		// Canvas receives the pointer-down events.
		Canvas EventTarget
		// Button receives the clear events.
		Button EventTarget
		// Sink is changed by the events.
		Sink Sink
		// Log records skipped events.
		Log Logger
	}

	// EventTarget is an element that can be listened to.
	EventTarget interface {
		AddEventListener(eventType string, fn func(event Event)) Subscription
	}

	// Subscription is an event listener that has been added.
	Subscription interface {
		// Remove stops the listener from being called and frees its resources.
		Remove()
	}

	// Event is a mouse event.
	Event interface {
		// ClientX is the horizontal position of the event on the page.
		ClientX() float64
		// ClientY is the vertical position of the event on the page.
		ClientY() float64
		PreventDefault()
	}

	// Sink is changed by the events.
	Sink interface {
		AddCircleAtPoint(x, y float64)
		ClearCanvas()
	}

	// Logger records skipped events.
	Logger interface {
		Debug(text string)
	}
)

// New adds the event listeners for the canvas and button.
// Every pointer-down event on the canvas adds one shape.
func (cfg Config) New() (*Bridge, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.New("creating input bridge: validation: " + err.Error())
	}
	b := Bridge{
		log: cfg.Log,
	}
	pointerDown := cfg.Canvas.AddEventListener(PointerDownEvent, func(event Event) {
		b.pointerDown(cfg.Surface, cfg.Sink, event)
	})
	activate := cfg.Button.AddEventListener(ActivateEvent, func(event Event) {
		cfg.Sink.ClearCanvas()
	})
	b.subscriptions = []Subscription{pointerDown, activate}
	return &b, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Surface == nil:
		return errors.New("surface required")
	case cfg.Canvas == nil:
		return errors.New("canvas event target required")
	case cfg.Button == nil:
		return errors.New("button event target required")
	case cfg.Sink == nil:
		return errors.New("sink required")
	case cfg.Log == nil:
		return errors.New("log required")
	}
	return nil
}

// pointerDown adds a shape where the event happened on the canvas.
// Events on a canvas with no layout size are ignored.
func (b *Bridge) pointerDown(surface canvas.Surface, sink Sink, event Event) {
	event.PreventDefault()
	p := canvas.Point{
		X: event.ClientX(),
		Y: event.ClientY(),
	}
	bp, err := canvas.MapToBuffer(p, surface.BoundingRect(), surface.BufferSize())
	if err != nil {
		b.log.Debug("ignoring pointer-down: " + err.Error())
		return
	}
	sink.AddCircleAtPoint(bp.X, bp.Y)
}

// Release removes the event listeners.  It is safe to call more than once.
func (b *Bridge) Release() {
	for _, s := range b.subscriptions {
		s.Remove()
	}
	b.subscriptions = nil
}

// Len is the number of event listeners held.
func (b *Bridge) Len() int {
	return len(b.subscriptions)
}
