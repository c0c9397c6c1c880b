package input_test

import "github.com/jacobpatterson1549/circle-canvas/ui/canvas"

type mockSurface struct {
	rect   canvas.Rect
	buffer canvas.Size
}

func (s mockSurface) BoundingRect() canvas.Rect {
	return s.rect
}

func (s mockSurface) BufferSize() canvas.Size {
	return s.buffer
}

func (mockSurface) SetBufferSize(size canvas.Size) {
	panic("SetBufferSize should not be called by the input bridge")
}

func (mockSurface) Context2D() (canvas.Context, error) {
	panic("Context2D should not be called by the input bridge")
}

type mockSink struct {
	AddCircleAtPointFunc func(x, y float64)
	ClearCanvasFunc      func()
}

func (m *mockSink) AddCircleAtPoint(x, y float64) {
	m.AddCircleAtPointFunc(x, y)
}

func (m *mockSink) ClearCanvas() {
	m.ClearCanvasFunc()
}

type mockLog struct {
	messages []string
}

func (m *mockLog) Debug(text string) {
	m.messages = append(m.messages, text)
}
