// Package app links the drawing state, renderer, input listeners, and frame loop into one application.
package app

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/jacobpatterson1549/circle-canvas/drawing"
	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
	"github.com/jacobpatterson1549/circle-canvas/ui/frame"
	"github.com/jacobpatterson1549/circle-canvas/ui/input"
)

var (
	// ErrMissingHostElement is returned when an element the application needs is not on the page.
	ErrMissingHostElement = errors.New("host element not found")
	// ErrAlreadyStarted is returned when the frame loop is started a second time.
	ErrAlreadyStarted = errors.New("render loop already started")
	// ErrDisposed is returned when the frame loop is started after the application is disposed.
	ErrDisposed = errors.New("application disposed")
)

type (
	// App owns the drawing state and every resource registered with the page for it.
	App struct {
		log       Logger
		renderer  *canvas.Renderer
		bridge    *input.Bridge
		scheduler *frame.Scheduler
		loop      *frame.Handle
		// mu guards the fields below, which are changed by both page events and direct calls.
		mu       sync.Mutex
		state    *drawing.State
		disposed bool
	}

	// Config contains the parameters to create an App.
	Config struct {
		// Surface is the canvas that is drawn on.
		Surface canvas.Surface
		// Canvas receives pointer-down events that add shapes.
		Canvas input.EventTarget
		// Button receives click events that clear the shapes.
		Button input.EventTarget
		// Frames is the frame clock that drives the render loop.
		Frames frame.Host
		// Log records application events and failed frames.
		Log Logger
		// Generator picks the radius and color of new shapes.  A default generator is used if nil.
		Generator *drawing.Generator
	}

	// Logger records application events.
	Logger interface {
		Debug(text string)
		Info(text string)
		Error(text string)
	}
)

// New creates an application and adds its event listeners to the page.
// The renderer must be initialized before the application is started.
func (cfg Config) New() (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	a := App{
		log:       cfg.Log,
		renderer:  canvas.NewRenderer(cfg.Surface),
		scheduler: frame.NewScheduler(cfg.Frames, cfg.Log),
		state:     drawing.NewState(cfg.Generator),
	}
	bridgeCfg := input.Config{
		Surface: cfg.Surface,
		Canvas:  cfg.Canvas,
		Button:  cfg.Button,
		Sink:    &a,
		Log:     cfg.Log,
	}
	bridge, err := bridgeCfg.New()
	if err != nil {
		return nil, err
	}
	a.bridge = bridge
	a.log.Debug("drawing app created")
	return &a, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Surface == nil:
		return fmt.Errorf("creating app: drawing canvas: %w", ErrMissingHostElement)
	case cfg.Canvas == nil:
		return fmt.Errorf("creating app: drawing canvas events: %w", ErrMissingHostElement)
	case cfg.Button == nil:
		return fmt.Errorf("creating app: clear button: %w", ErrMissingHostElement)
	case cfg.Frames == nil:
		return errors.New("creating app: frame host required")
	case cfg.Log == nil:
		return errors.New("creating app: log required")
	}
	return nil
}

// InitializeRenderer binds the drawing context of the canvas.
// This must be called once the canvas is on the page, before Start.
func (a *App) InitializeRenderer() error {
	if err := a.renderer.Initialize(); err != nil {
		return err
	}
	a.log.Debug("renderer initialized")
	return nil
}

// Start runs the render loop, which redraws the canvas on every frame until the app is disposed.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.disposed:
		return ErrDisposed
	case a.loop != nil:
		return ErrAlreadyStarted
	}
	a.loop = a.scheduler.Start(a.tick)
	a.log.Info("starting render loop")
	return nil
}

// tick fits the canvas to the page and paints the current shapes.
// The shapes are copied so the lock is not held while drawing.
func (a *App) tick(timestamp float64) error {
	state := a.DrawingState()
	return a.renderer.Frame(state)
}

// AddCircleAtPoint adds a randomly styled circle at the buffer position.
func (a *App) AddCircleAtPoint(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.AddShape(x, y)
	a.log.Debug("adding circle at (" + formatFloat(x) + ", " + formatFloat(y) + ")")
}

// ClearCanvas removes all circles.
func (a *App) ClearCanvas() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Clear()
	a.log.Debug("clearing all shapes")
}

// DrawingState returns a copy of the shapes.
func (a *App) DrawingState() drawing.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Snapshot()
}

// Running reports whether the render loop is running.
func (a *App) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loop != nil && a.loop.Alive()
}

// Dispose stops the render loop and removes the event listeners.
// Nothing the app registered with the page is left afterwards.  It is safe to call more than once.
func (a *App) Dispose() {
	a.mu.Lock()
	if a.disposed {
		a.mu.Unlock()
		return
	}
	a.disposed = true
	loop := a.loop
	a.loop = nil
	a.mu.Unlock()
	if loop != nil {
		loop.Release()
	}
	a.bridge.Release()
	a.log.Info("drawing app disposed")
}

// Disposed reports whether Dispose has been called.
func (a *App) Disposed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.disposed
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
