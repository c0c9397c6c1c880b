package input_test

import (
	"reflect"
	"testing"

	"github.com/jacobpatterson1549/circle-canvas/ui/canvas"
	"github.com/jacobpatterson1549/circle-canvas/ui/input"
	"github.com/jacobpatterson1549/circle-canvas/ui/input/inputtest"
)

func TestNewValidation(t *testing.T) {
	surface := mockSurface{}
	target := new(inputtest.Target)
	sink := new(mockSink)
	log := new(mockLog)
	newTests := []struct {
		input.Config
		wantOk bool
	}{
		{},
		{
			Config: input.Config{Canvas: target, Button: target, Sink: sink, Log: log},
		},
		{
			Config: input.Config{Surface: surface, Button: target, Sink: sink, Log: log},
		},
		{
			Config: input.Config{Surface: surface, Canvas: target, Sink: sink, Log: log},
		},
		{
			Config: input.Config{Surface: surface, Canvas: target, Button: target, Log: log},
		},
		{
			Config: input.Config{Surface: surface, Canvas: target, Button: target, Sink: sink},
		},
		{
			Config: input.Config{Surface: surface, Canvas: target, Button: target, Sink: sink, Log: log},
			wantOk: true,
		},
	}
	for i, test := range newTests {
		b, err := test.Config.New()
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case b.Len() != 2:
			t.Errorf("Test %v: wanted 2 listeners, got %v", i, b.Len())
		}
	}
}

func newTestBridge(t *testing.T, surface canvas.Surface, sink input.Sink) (b *input.Bridge, canvasTarget, buttonTarget *inputtest.Target, log *mockLog) {
	t.Helper()
	canvasTarget = new(inputtest.Target)
	buttonTarget = new(inputtest.Target)
	log = new(mockLog)
	cfg := input.Config{
		Surface: surface,
		Canvas:  canvasTarget,
		Button:  buttonTarget,
		Sink:    sink,
		Log:     log,
	}
	b, err := cfg.New()
	if err != nil {
		t.Fatalf("creating bridge: %v", err)
	}
	return b, canvasTarget, buttonTarget, log
}

func TestPointerDownAddsShape(t *testing.T) {
	var got [][2]float64
	sink := mockSink{
		AddCircleAtPointFunc: func(x, y float64) {
			got = append(got, [2]float64{x, y})
		},
		ClearCanvasFunc: func() {
			t.Error("unwanted clear")
		},
	}
	surface := mockSurface{
		rect:   canvas.Rect{Left: 10, Top: 20, Width: 100, Height: 100},
		buffer: canvas.Size{Width: 200, Height: 200},
	}
	_, canvasTarget, buttonTarget, _ := newTestBridge(t, surface, &sink)
	events := []*inputtest.Event{
		{X: 60, Y: 70},
		{X: 60, Y: 70}, // rapid repeated clicks are not debounced
		{X: 10, Y: 20},
	}
	for _, e := range events {
		if n := canvasTarget.Dispatch(input.PointerDownEvent, e); n != 1 {
			t.Errorf("wanted one listener for %v, got %v", input.PointerDownEvent, n)
		}
		if !e.DefaultPrevented {
			t.Error("wanted default of pointer-down to be prevented")
		}
	}
	if n := buttonTarget.Dispatch(input.PointerDownEvent, new(inputtest.Event)); n != 0 {
		t.Errorf("wanted no pointer-down listener on the button, got %v", n)
	}
	want := [][2]float64{{100, 100}, {100, 100}, {0, 0}}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("wanted shapes at %v, got %v", want, got)
	}
}

func TestPointerDownDegenerateLayout(t *testing.T) {
	sink := mockSink{
		AddCircleAtPointFunc: func(x, y float64) {
			t.Error("unwanted shape")
		},
	}
	surface := mockSurface{
		rect:   canvas.Rect{Width: 0, Height: 100},
		buffer: canvas.Size{Width: 200, Height: 200},
	}
	_, canvasTarget, _, log := newTestBridge(t, surface, &sink)
	canvasTarget.Dispatch(input.PointerDownEvent, &inputtest.Event{X: 5, Y: 5})
	if len(log.messages) != 1 {
		t.Errorf("wanted skipped event to be logged, got %v", log.messages)
	}
}

func TestActivateClears(t *testing.T) {
	clears := 0
	sink := mockSink{
		ClearCanvasFunc: func() {
			clears++
		},
	}
	_, canvasTarget, buttonTarget, _ := newTestBridge(t, mockSurface{}, &sink)
	buttonTarget.Dispatch(input.ActivateEvent, new(inputtest.Event))
	buttonTarget.Dispatch(input.ActivateEvent, new(inputtest.Event))
	canvasTarget.Dispatch(input.ActivateEvent, new(inputtest.Event))
	if clears != 2 {
		t.Errorf("wanted 2 clears, got %v", clears)
	}
}

func TestRelease(t *testing.T) {
	sink := mockSink{
		AddCircleAtPointFunc: func(x, y float64) {
			t.Error("unwanted shape after release")
		},
		ClearCanvasFunc: func() {
			t.Error("unwanted clear after release")
		},
	}
	surface := mockSurface{
		rect:   canvas.Rect{Width: 100, Height: 100},
		buffer: canvas.Size{Width: 100, Height: 100},
	}
	b, canvasTarget, buttonTarget, _ := newTestBridge(t, surface, &sink)
	b.Release()
	b.Release()
	canvasTarget.Dispatch(input.PointerDownEvent, new(inputtest.Event))
	buttonTarget.Dispatch(input.ActivateEvent, new(inputtest.Event))
	if n := canvasTarget.Listeners() + buttonTarget.Listeners(); n != 0 {
		t.Errorf("wanted all listeners removed, got %v", n)
	}
	if b.Len() != 0 {
		t.Errorf("wanted bridge to hold no listeners, got %v", b.Len())
	}
}
