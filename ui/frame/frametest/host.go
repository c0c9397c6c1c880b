// Package frametest implements a frame clock that is advanced by tests.
package frametest

import (
	"sort"
	"sync"

	"github.com/jacobpatterson1549/circle-canvas/ui/frame"
)

// Host is a frame.Host that runs requested callbacks when Tick is called.
type Host struct {
	mu        sync.Mutex
	nextID    frame.RequestID
	pending   map[frame.RequestID]*Callback
	due       map[frame.RequestID]*Callback
	callbacks []*Callback
	// ReleasedCalls counts the times a released callback would have been run.
	// A browser panics when this happens.
	ReleasedCalls int
}

// Callback is a function registered with the Host.
type Callback struct {
	fn       func(timestamp float64)
	released bool
}

// Host implements the frame.Host interface.
var _ frame.Host = new(Host)

// NewCallback implements the frame.Host interface.
func (h *Host) NewCallback(fn func(timestamp float64)) frame.Callback {
	h.mu.Lock()
	defer h.mu.Unlock()
	cb := Callback{
		fn: fn,
	}
	h.callbacks = append(h.callbacks, &cb)
	return &cb
}

// RequestAnimationFrame implements the frame.Host interface.
func (h *Host) RequestAnimationFrame(cb frame.Callback) frame.RequestID {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == nil {
		h.pending = make(map[frame.RequestID]*Callback)
	}
	h.nextID++
	h.pending[h.nextID] = cb.(*Callback)
	return h.nextID
}

// CancelAnimationFrame implements the frame.Host interface.
func (h *Host) CancelAnimationFrame(id frame.RequestID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.pending, id)
	delete(h.due, id)
}

// Release implements the frame.Callback interface.
func (cb *Callback) Release() {
	cb.released = true
}

// Tick runs the callbacks that were requested before the call, in request order.
// Callbacks requested while ticking run on the next tick.
// The number of callbacks run is returned.
func (h *Host) Tick(timestamp float64) int {
	h.mu.Lock()
	ids := make([]frame.RequestID, 0, len(h.pending))
	for id := range h.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	h.due, h.pending = h.pending, nil
	h.mu.Unlock()
	n := 0
	for _, id := range ids {
		h.mu.Lock()
		cb, ok := h.due[id]
		delete(h.due, id)
		if ok && cb.released {
			h.ReleasedCalls++
			ok = false
		}
		h.mu.Unlock()
		if !ok {
			continue
		}
		cb.fn(timestamp)
		n++
	}
	return n
}

// Pending is the number of requests waiting for the next tick.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Live is the number of callbacks that have not been released.
func (h *Host) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, cb := range h.callbacks {
		if !cb.released {
			n++
		}
	}
	return n
}

// Callbacks is the number of callbacks ever created.
func (h *Host) Callbacks() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.callbacks)
}
