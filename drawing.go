package pdfview

// DrawingState is the current state of the freehand ink engine.
type DrawingState struct {
	Enabled bool
	Color   Color
	Width   float64
	// Stroke are the recorded points of the stroke in progress.
	Stroke []Point
}

// Drawing is the freehand ink engine. It records pointer positions into a
// stroke, thinning points that fall closer than the minimum distance to
// keep the path short and curve fitting numerically stable. The recorded
// stroke is smoothed for rendering with [SmoothStroke].
type Drawing struct {
	state       DrawingState
	minDistance float64
}

// NewDrawing creates an ink engine in the disabled state.
func NewDrawing() *Drawing {
	return &Drawing{minDistance: DefaultMinDistance}
}

// SetMinDistance sets the point-thinning distance in display units.
// Values below zero are ignored.
func (d *Drawing) SetMinDistance(dist float64) {
	if dist >= 0 {
		d.minDistance = dist
	}
}

// Enable turns on drawing mode with the given ink color and stroke width,
// discarding any stroke in progress.
func (d *Drawing) Enable(c Color, width float64) {
	d.state.Enabled = true
	d.state.Color = c
	d.state.Width = width
	d.state.Stroke = nil
}

// Disable turns off drawing mode and discards any stroke in progress.
func (d *Drawing) Disable() {
	d.state.Enabled = false
	d.state.Stroke = nil
}

// Enabled reports whether drawing mode is active.
func (d *Drawing) Enabled() bool {
	return d.state.Enabled
}

// Color returns the current ink color.
func (d *Drawing) Color() Color {
	return d.state.Color
}

// Width returns the current stroke width.
func (d *Drawing) Width() float64 {
	return d.state.Width
}

// Stroke returns the points recorded so far.
func (d *Drawing) Stroke() []Point {
	return d.state.Stroke
}

// StartStroke begins a new stroke at the given point. It is a no-op when
// drawing mode is disabled.
func (d *Drawing) StartStroke(x, y float64) {
	if !d.state.Enabled {
		return
	}
	d.state.Stroke = []Point{Pt(x, y)}
}

// AddPoint appends a point to the current stroke if it lies at least the
// minimum distance from the last recorded point. The first point of an
// empty stroke is always recorded.
func (d *Drawing) AddPoint(x, y float64) {
	if !d.state.Enabled {
		return
	}
	p := Pt(x, y)
	if len(d.state.Stroke) == 0 {
		d.state.Stroke = append(d.state.Stroke, p)
		return
	}
	last := d.state.Stroke[len(d.state.Stroke)-1]
	if p.Distance(last) >= d.minDistance {
		d.state.Stroke = append(d.state.Stroke, p)
	}
}

// EndStroke returns the recorded stroke and clears it. The caller commits
// strokes of at least two points; shorter results mean nothing to commit.
func (d *Drawing) EndStroke() []Point {
	stroke := d.state.Stroke
	d.state.Stroke = nil
	if len(stroke) >= 2 {
		logger().Debug("stroke ended", "points", len(stroke))
	}
	return stroke
}

// ClearStroke discards the stroke in progress without returning it.
func (d *Drawing) ClearStroke() {
	d.state.Stroke = nil
}

// ScaledStroke returns the current stroke in document coordinates, with
// both axes divided by scale.
func (d *Drawing) ScaledStroke(scale float64) []Point {
	if len(d.state.Stroke) == 0 {
		return nil
	}
	out := make([]Point, len(d.state.Stroke))
	for i, p := range d.state.Stroke {
		out[i] = p.Div(scale)
	}
	return out
}
