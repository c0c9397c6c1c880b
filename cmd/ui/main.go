//go:build js && wasm

// Package main exposes the drawing app to javascript and runs as long as the webpage is open.
package main

import (
	"context"
	"sync"
	"syscall/js"
	"time"

	"github.com/jacobpatterson1549/circle-canvas/ui/dom"
	"github.com/jacobpatterson1549/circle-canvas/ui/log"
)

// main registers the mountApp function and runs as long as the browser is open.
func main() {
	ctx := context.Background()
	ctx, cancelFunc := context.WithCancel(ctx)
	var wg sync.WaitGroup
	dom := dom.New(js.Global())
	timeFunc := func() int64 {
		return time.Now().Unix()
	}
	log := log.New(dom.Console(), timeFunc)
	log.Verbose = debugRequested(dom.Global())
	m := newMounter(dom, log)
	m.InitDom(ctx, &wg)
	initBeforeUnloadFn(dom, cancelFunc, &wg)
	wg.Wait() // BLOCKING
}

// initBeforeUnloadFn registers a function to cancel the context when the browser is about to close.
// This disposes the mounted apps.
func initBeforeUnloadFn(dom *dom.DOM, cancelFunc context.CancelFunc, wg *sync.WaitGroup) {
	wg.Add(1)
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cancelFunc()
		fn.Release()
		wg.Done()
		return nil
	})
	global := dom.Global()
	global.Call("addEventListener", "beforeunload", fn)
}

// debugRequested determines if the page was opened with a debug query parameter, such as /?debug.
func debugRequested(global js.Value) bool {
	location := global.Get("location")
	if location.Type() != js.TypeObject {
		return false
	}
	params := global.Get("URLSearchParams").New(location.Get("search"))
	return params.Call("has", "debug").Bool()
}
