//go:build js && wasm

package dom

import (
	"syscall/js"
	"testing"
)

// fakeNodeFuncs are the functions shared by the elements of a fake document.
type fakeNodeFuncs struct {
	appendChild   js.Func
	remove        js.Func
	createElement js.Func
}

func newFakeNodeFuncs() *fakeNodeFuncs {
	var f fakeNodeFuncs
	f.appendChild = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		this.Get("children").Call("push", args[0])
		return args[0]
	})
	f.remove = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		this.Set("removed", true)
		return nil
	})
	f.createElement = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return f.newNode(args[0].String())
	})
	return &f
}

func (f *fakeNodeFuncs) newNode(tagName string) js.Value {
	return js.ValueOf(map[string]interface{}{
		"tagName":     tagName,
		"children":    []interface{}{},
		"removed":     false,
		"appendChild": f.appendChild,
		"remove":      f.remove,
	})
}

func (f *fakeNodeFuncs) release() {
	f.appendChild.Release()
	f.remove.Release()
	f.createElement.Release()
}

// fakeGlobal creates a global object with a document that finds the container by its id.
// The container may be null.
func fakeGlobal(t *testing.T, f *fakeNodeFuncs, container js.Value) (global js.Value, release func()) {
	t.Helper()
	getElementByID := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if args[0].String() != ContainerID {
			t.Errorf("wanted query for %v, got %v", ContainerID, args[0])
			return nil
		}
		return container
	})
	document := js.ValueOf(map[string]interface{}{
		"getElementById": getElementByID,
		"createElement":  f.createElement,
	})
	global = js.ValueOf(map[string]interface{}{
		"document": document,
	})
	return global, getElementByID.Release
}

// recordingObject creates an object with functions that record their names and arguments in calls.
func recordingObject(calls *[]string, names ...string) (value js.Value, release func()) {
	fields := make(map[string]interface{}, len(names))
	funcs := make([]js.Func, 0, len(names))
	for _, name := range names {
		name := name
		fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			call := name
			for _, a := range args {
				call += " " + js.Global().Get("String").Invoke(a).String()
			}
			*calls = append(*calls, call)
			return nil
		})
		fields[name] = fn
		funcs = append(funcs, fn)
	}
	release = func() {
		for _, fn := range funcs {
			fn.Release()
		}
	}
	return js.ValueOf(fields), release
}
