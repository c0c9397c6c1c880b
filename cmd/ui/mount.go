//go:build js && wasm

package main

import (
	"context"
	"errors"
	"sync"
	"syscall/js"

	"github.com/jacobpatterson1549/circle-canvas/ui/app"
	"github.com/jacobpatterson1549/circle-canvas/ui/dom"
	"github.com/jacobpatterson1549/circle-canvas/ui/log"
)

type (
	// mounter creates apps for javascript.
	mounter struct {
		dom *dom.DOM
		log *log.Log
		mu  sync.Mutex
		// handles are the apps that have not been freed.
		handles map[*handle]struct{}
	}

	// handle is an app with the page elements and javascript functions created for it.
	handle struct {
		app     *app.App
		page    *dom.Page
		value   js.Value
		jsFuncs map[string]js.Func
	}

	// handleFunc is a method of a handle that javascript can call.
	handleFunc func(args []js.Value) (interface{}, error)
)

// mountAppName is the name of the global function that mounts an app.
const mountAppName = "mountApp"

var errNeedPoint = errors.New("adding circle: x and y required")

func newMounter(dom *dom.DOM, log *log.Log) *mounter {
	m := mounter{
		dom:     dom,
		log:     log,
		handles: make(map[*handle]struct{}),
	}
	return &m
}

// InitDom registers the mountApp function.
// When the context is done, the function is removed and every app that has not been freed is freed.
func (m *mounter) InitDom(ctx context.Context, wg *sync.WaitGroup) {
	mountApp := m.newJsFunc(func(args []js.Value) (interface{}, error) {
		h, err := m.mount()
		if err != nil {
			return nil, err
		}
		return h.value, nil
	})
	global := m.dom.Global()
	global.Set(mountAppName, mountApp)
	wg.Add(1)
	go m.releaseOnDone(ctx, wg, mountApp)
}

// releaseOnDone frees the apps and releases the mountApp function when the context is done.
// This function should be called on a separate goroutine.
func (m *mounter) releaseOnDone(ctx context.Context, wg *sync.WaitGroup, mountApp js.Func) {
	defer wg.Done()
	<-ctx.Done() // BLOCKING
	m.mu.Lock()
	handles := make([]*handle, 0, len(m.handles))
	for h := range m.handles {
		handles = append(handles, h)
	}
	m.mu.Unlock()
	for _, h := range handles {
		m.free(h)
	}
	m.dom.Global().Delete(mountAppName)
	mountApp.Release()
}

// mount adds the app elements to the page and creates a handle for them.
func (m *mounter) mount() (*handle, error) {
	page, err := m.dom.Mount()
	if err != nil {
		return nil, err
	}
	cfg := app.Config{
		Surface: page.Canvas,
		Canvas:  page.Canvas,
		Button:  page.Button,
		Frames:  m.dom.AnimationFrames(),
		Log:     m.log,
	}
	a, err := cfg.New()
	if err != nil {
		page.Unmount()
		return nil, err
	}
	h := handle{
		app:  a,
		page: page,
	}
	h.jsFuncs = map[string]js.Func{
		"initializeRenderer": m.newJsFunc(h.initializeRenderer),
		"start":              m.newJsFunc(h.start),
		"addCircleAtPoint":   m.newJsFunc(h.addCircleAtPoint),
		"clearCanvas":        m.newJsFunc(h.clearCanvas),
		"getDrawingState":    m.newJsFunc(h.getDrawingState),
		"free": m.newJsFunc(func(args []js.Value) (interface{}, error) {
			m.free(&h)
			return nil, nil
		}),
	}
	fields := make(map[string]interface{}, len(h.jsFuncs))
	for name, fn := range h.jsFuncs {
		fields[name] = fn
	}
	h.value = js.ValueOf(fields)
	m.mu.Lock()
	m.handles[&h] = struct{}{}
	m.mu.Unlock()
	m.log.Info("app mounted")
	return &h, nil
}

// free disposes the app, removes its elements, and releases the functions of the handle.
// The handle object has no functions afterwards.  It is safe to call more than once.
func (m *mounter) free(h *handle) {
	m.mu.Lock()
	_, ok := m.handles[h]
	delete(m.handles, h)
	m.mu.Unlock()
	if !ok {
		return
	}
	h.app.Dispose()
	h.page.Unmount()
	for name, fn := range h.jsFuncs {
		h.value.Delete(name)
		fn.Release()
	}
}

// newJsFunc creates a function that returns a javascript Error if the handle function fails or panics.
func (m *mounter) newJsFunc(fn handleFunc) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) (result interface{}) {
		defer func() {
			if r := recover(); r != nil {
				err := dom.RecoverError(r)
				m.log.Error("unexpected failure: " + err.Error())
				result = m.dom.NewError(err)
			}
		}()
		v, err := fn(args)
		if err != nil {
			m.log.Error(err.Error())
			return m.dom.NewError(err)
		}
		return v
	})
}

func (h *handle) initializeRenderer(args []js.Value) (interface{}, error) {
	return nil, h.app.InitializeRenderer()
}

func (h *handle) start(args []js.Value) (interface{}, error) {
	return nil, h.app.Start()
}

func (h *handle) addCircleAtPoint(args []js.Value) (interface{}, error) {
	if len(args) < 2 {
		return nil, errNeedPoint
	}
	h.app.AddCircleAtPoint(args[0].Float(), args[1].Float())
	return nil, nil
}

func (h *handle) clearCanvas(args []js.Value) (interface{}, error) {
	h.app.ClearCanvas()
	return nil, nil
}

func (h *handle) getDrawingState(args []js.Value) (interface{}, error) {
	state := h.app.DrawingState()
	return js.ValueOf(state.Map()), nil
}
