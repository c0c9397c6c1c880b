package canvas

type mockSurface struct {
	BoundingRectFunc  func() Rect
	BufferSizeFunc    func() Size
	SetBufferSizeFunc func(size Size)
	Context2DFunc     func() (Context, error)
}

func (s *mockSurface) BoundingRect() Rect {
	return s.BoundingRectFunc()
}

func (s *mockSurface) BufferSize() Size {
	return s.BufferSizeFunc()
}

func (s *mockSurface) SetBufferSize(size Size) {
	s.SetBufferSizeFunc(size)
}

func (s *mockSurface) Context2D() (Context, error) {
	return s.Context2DFunc()
}

type mockContext struct {
	ClearRectFunc    func(x, y, width, height float64)
	BeginPathFunc    func()
	ArcFunc          func(x, y, radius, startAngle, endAngle float64)
	SetFillColorFunc func(color string)
	FillFunc         func()
}

func (ctx *mockContext) ClearRect(x, y, width, height float64) {
	ctx.ClearRectFunc(x, y, width, height)
}

func (ctx *mockContext) BeginPath() {
	ctx.BeginPathFunc()
}

func (ctx *mockContext) Arc(x, y, radius, startAngle, endAngle float64) {
	ctx.ArcFunc(x, y, radius, startAngle, endAngle)
}

func (ctx *mockContext) SetFillColor(color string) {
	ctx.SetFillColorFunc(color)
}

func (ctx *mockContext) Fill() {
	ctx.FillFunc()
}

// recordingContext returns a context that appends the name of each call to the log.
func recordingContext(log *[]string) *mockContext {
	return &mockContext{
		ClearRectFunc: func(x, y, width, height float64) {
			*log = append(*log, "clearRect")
		},
		BeginPathFunc: func() {
			*log = append(*log, "beginPath")
		},
		ArcFunc: func(x, y, radius, startAngle, endAngle float64) {
			*log = append(*log, "arc")
		},
		SetFillColorFunc: func(color string) {
			*log = append(*log, "fillStyle="+color)
		},
		FillFunc: func() {
			*log = append(*log, "fill")
		},
	}
}
