// Package frame runs functions once per display frame until they are released.
package frame

import (
	"errors"
	"fmt"
	"sync"
)

type (
	// Scheduler runs loops on the frame clock of a host.
	// Each loop is kept in a slot of the scheduler, and the host callback of a loop only knows the id of its slot.
	// Removing the slot is what stops the loop: a callback that finds no slot does nothing and does not request another frame.
	Scheduler struct {
		host   Host
		log    Logger
		mu     sync.Mutex
		loops  map[LoopID]*loop
		nextID LoopID
	}

	// Handle owns a running loop.  Releasing the handle stops the loop.
	Handle struct {
		scheduler *Scheduler
		id        LoopID
	}

	// LoopID identifies the slot of a loop in its scheduler.
	LoopID int

	// RequestID identifies a pending frame request with the host.
	RequestID int

	// TickFunc does the work for one frame.
	// The timestamp is in milliseconds, as provided by the host.
	TickFunc func(timestamp float64) error

	// Host provides the frame clock, such as window.requestAnimationFrame in browsers.
	// Callbacks are run one at a time on a single thread.
	Host interface {
		// NewCallback wraps the function so it can be passed to the host.
		NewCallback(fn func(timestamp float64)) Callback
		// RequestAnimationFrame asks the host to run the callback before the next repaint.
		RequestAnimationFrame(cb Callback) RequestID
		// CancelAnimationFrame withdraws a request that has not run.
		CancelAnimationFrame(id RequestID)
	}

	// Callback is a function the host can call.
	Callback interface {
		// Release frees the resources of the callback.  The host must not call it afterwards.
		Release()
	}

	// Logger records frames that fail.
	Logger interface {
		Error(text string)
	}

	loop struct {
		tick     TickFunc
		callback Callback
		request  RequestID
		lastErr  string
	}
)

// NewScheduler creates a scheduler for the host.
func NewScheduler(host Host, log Logger) *Scheduler {
	s := Scheduler{
		host:  host,
		log:   log,
		loops: make(map[LoopID]*loop),
	}
	return &s
}

// Start runs the tick on every frame until the returned handle is released.
// The first tick runs on the next frame.
func (s *Scheduler) Start(tick TickFunc) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	l := loop{
		tick: tick,
	}
	l.callback = s.host.NewCallback(func(timestamp float64) {
		s.run(id, timestamp)
	})
	l.request = s.host.RequestAnimationFrame(l.callback)
	s.loops[id] = &l
	h := Handle{
		scheduler: s,
		id:        id,
	}
	return &h
}

// Len is the number of running loops.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.loops)
}

// run is called by the host for the loop on each frame.
// The next frame is requested with the same callback after the tick, unless the tick released the loop.
func (s *Scheduler) run(id LoopID, timestamp float64) {
	s.mu.Lock()
	l, ok := s.loops[id]
	s.mu.Unlock()
	if !ok {
		return
	}
	s.runTick(l, timestamp)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.loops[id]; !ok {
		return
	}
	l.request = s.host.RequestAnimationFrame(l.callback)
}

// runTick runs the tick, logging errors and panics rather than passing them to the host, which would end the loop.
// Repeated errors are only logged once.
func (s *Scheduler) runTick(l *loop, timestamp float64) {
	defer func() {
		if r := recover(); r != nil {
			s.logError(l, "frame panic: "+recoverError(r).Error())
		}
	}()
	if err := l.tick(timestamp); err != nil {
		s.logError(l, "drawing frame: "+err.Error())
		return
	}
	l.lastErr = ""
}

// logError logs the message if it differs from the previous error of the loop.
func (s *Scheduler) logError(l *loop, message string) {
	if message == l.lastErr {
		return
	}
	l.lastErr = message
	s.log.Error(message)
}

// release removes the loop from the scheduler, cancels its pending frame, and releases its callback.
func (s *Scheduler) release(id LoopID) {
	s.mu.Lock()
	l, ok := s.loops[id]
	delete(s.loops, id)
	s.mu.Unlock()
	if !ok {
		return
	}
	s.host.CancelAnimationFrame(l.request)
	l.callback.Release()
}

// Release stops the loop.  It is safe to call more than once, including from inside the tick.
func (h *Handle) Release() {
	h.scheduler.release(h.id)
}

// Alive reports whether the loop has not been released.
func (h *Handle) Alive() bool {
	h.scheduler.mu.Lock()
	defer h.scheduler.mu.Unlock()
	_, ok := h.scheduler.loops[h.id]
	return ok
}

// recoverError converts the recovery interface into a useful error.
func recoverError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("%v", v)
	}
}
