//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/jacobpatterson1549/circle-canvas/ui/app"
)

// Ids of the elements of the app.
const (
	ContainerID       = "main-app-container"
	ToolbarID         = "toolbar"
	ClearButtonID     = "clear-btn"
	CanvasContainerID = "canvas-container"
	CanvasID          = "drawing-canvas"
)

// ClearButtonText is the label of the clear button.
const ClearButtonText = "Clear Canvas"

// Page holds the elements that were added to the container for an app.
type Page struct {
	// Canvas is the drawing canvas.
	Canvas *Element
	// Button is the clear button.
	Button *Element
	nodes  []js.Value
}

// Mount adds the toolbar and canvas to the container element of the page.
// Every element is created before any is added to the container, so nothing is added if an element cannot be created.
func (dom *DOM) Mount() (page *Page, err error) {
	document := dom.document()
	container := document.Call("getElementById", ContainerID)
	if missing(container) {
		return nil, fmt.Errorf("mounting app: container element %q: %w", ContainerID, app.ErrMissingHostElement)
	}
	var p Page
	defer func() {
		if r := recover(); r != nil {
			p.Unmount()
			page = nil
			err = fmt.Errorf("mounting app: %w", RecoverError(r))
		}
	}()
	toolbar := createElement(document, "div", ToolbarID)
	button := createElement(document, "button", ClearButtonID)
	button.Set("textContent", ClearButtonText)
	toolbar.Call("appendChild", button)
	canvasContainer := createElement(document, "div", CanvasContainerID)
	canvas := createElement(document, "canvas", CanvasID)
	canvasContainer.Call("appendChild", canvas)
	p.Canvas = dom.newElement(canvas)
	p.Button = dom.newElement(button)
	for _, node := range []js.Value{toolbar, canvasContainer} {
		container.Call("appendChild", node)
		p.nodes = append(p.nodes, node)
	}
	return &p, nil
}

// Unmount removes the elements that Mount added to the container.  It is safe to call more than once.
func (p *Page) Unmount() {
	for _, node := range p.nodes {
		node.Call("remove")
	}
	p.nodes = nil
}

// createElement creates an element with the tag and id.
func createElement(document js.Value, tagName, id string) js.Value {
	element := document.Call("createElement", tagName)
	element.Set("id", id)
	return element
}
