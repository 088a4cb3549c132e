package pdfview

import "math"

// ShapeType identifies the kind of shape being drawn.
type ShapeType uint8

const (
	// ShapeNone means shape drawing is inactive.
	ShapeNone ShapeType = iota
	// ShapeRectangle draws an axis-aligned rectangle.
	ShapeRectangle
	// ShapeCircle draws an ellipse inscribed in the drag rectangle.
	ShapeCircle
	// ShapeLine draws a straight line between the drag endpoints.
	ShapeLine
	// ShapeArrow draws a line with an arrow head at the end point.
	ShapeArrow
	// ShapeText places a text box sized by the drag rectangle.
	ShapeText
)

// String returns the shape type name.
func (t ShapeType) String() string {
	switch t {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	case ShapeLine:
		return "line"
	case ShapeArrow:
		return "arrow"
	case ShapeText:
		return "text"
	default:
		return "none"
	}
}

// Shape is a committed shape: the active type and the raw drag endpoints
// in display coordinates.
type Shape struct {
	Type           ShapeType
	X1, Y1, X2, Y2 float64
}

// ShapeState is the current state of the shape drawing engine.
type ShapeState struct {
	Type        ShapeType
	StrokeColor Color
	FillColor   *Color
	StrokeWidth float64
	Start, End  Point
	// IsDrawing implies Start and End are set.
	IsDrawing bool
}

// ShapeTool is the interactive shape drawing engine: a preview-then-commit
// state machine for rectangles, circles, lines, arrows, and text boxes.
type ShapeTool struct {
	state ShapeState
}

// NewShapeTool creates a shape engine in the inactive state.
func NewShapeTool() *ShapeTool {
	return &ShapeTool{}
}

// Enable activates shape drawing with the given type and paint settings,
// discarding any shape in progress. Enabling with ShapeNone is equivalent
// to Disable.
func (t *ShapeTool) Enable(shape ShapeType, stroke Color, fill *Color, width float64) {
	t.state.Type = shape
	t.state.StrokeColor = stroke
	t.state.FillColor = fill
	t.state.StrokeWidth = width
	t.clearPoints()
}

// Disable deactivates shape drawing and discards any shape in progress.
func (t *ShapeTool) Disable() {
	t.state.Type = ShapeNone
	t.clearPoints()
}

// Enabled reports whether a shape type is active.
func (t *ShapeTool) Enabled() bool {
	return t.state.Type != ShapeNone
}

// Type returns the active shape type.
func (t *ShapeTool) Type() ShapeType {
	return t.state.Type
}

// StrokeColor returns the current stroke color.
func (t *ShapeTool) StrokeColor() Color {
	return t.state.StrokeColor
}

// FillColor returns the current fill color, or nil for no fill.
func (t *ShapeTool) FillColor() *Color {
	return t.state.FillColor
}

// StrokeWidth returns the current stroke width.
func (t *ShapeTool) StrokeWidth() float64 {
	return t.state.StrokeWidth
}

// IsDrawing reports whether a drag is in progress.
func (t *ShapeTool) IsDrawing() bool {
	return t.state.IsDrawing
}

// Start begins a shape drag at the given point. It is a no-op when no
// shape type is active, so IsDrawing can never be true with ShapeNone.
func (t *ShapeTool) Start(x, y float64) {
	if !t.Enabled() {
		return
	}
	t.state.Start = Pt(x, y)
	t.state.End = Pt(x, y)
	t.state.IsDrawing = true
}

// Update moves the shape's end point. It is a no-op unless a drag is in
// progress.
func (t *ShapeTool) Update(x, y float64) {
	if !t.state.IsDrawing {
		return
	}
	t.state.End = Pt(x, y)
}

// End commits the shape in progress and resets the drag. The returned
// Shape carries the raw (unnormalized) endpoints. ok is false if no drag
// was in progress.
func (t *ShapeTool) End() (shape Shape, ok bool) {
	if !t.state.IsDrawing {
		return Shape{}, false
	}
	shape = Shape{
		Type: t.state.Type,
		X1:   t.state.Start.X,
		Y1:   t.state.Start.Y,
		X2:   t.state.End.X,
		Y2:   t.state.End.Y,
	}
	t.clearPoints()
	logger().Debug("shape committed", "type", shape.Type.String())
	return shape, true
}

// Cancel discards the shape in progress without committing it.
func (t *ShapeTool) Cancel() {
	t.clearPoints()
}

func (t *ShapeTool) clearPoints() {
	t.state.Start = Point{}
	t.state.End = Point{}
	t.state.IsDrawing = false
}

// CurrentRect returns the normalized bounds of the drag for
// rectangle/circle/text previews. ok is false if no drag is in progress.
func (t *ShapeTool) CurrentRect() (r Rect, ok bool) {
	if !t.state.IsDrawing {
		return Rect{}, false
	}
	return RectFromPoints(t.state.Start, t.state.End), true
}

// CurrentLine returns the raw drag endpoints for line/arrow previews.
// ok is false if no drag is in progress.
func (t *ShapeTool) CurrentLine() (x1, y1, x2, y2 float64, ok bool) {
	if !t.state.IsDrawing {
		return 0, 0, 0, 0, false
	}
	return t.state.Start.X, t.state.Start.Y, t.state.End.X, t.state.End.Y, true
}

// ArrowHead computes the filled triangle forming an arrow head at end.
// The head size scales with the stroke width (never below 12 display
// units) and the back edges sweep 30 degrees to either side of the line
// direction. The function is pure: fixed inputs give a fixed triangle.
func ArrowHead(start, end Point, strokeWidth float64) [3]Point {
	angle := math.Atan2(end.Y-start.Y, end.X-start.X)
	length := math.Max(12, strokeWidth*4)
	const half = math.Pi / 6

	p1 := Point{
		X: end.X - length*math.Cos(angle-half),
		Y: end.Y - length*math.Sin(angle-half),
	}
	p2 := Point{
		X: end.X - length*math.Cos(angle+half),
		Y: end.Y - length*math.Sin(angle+half),
	}
	return [3]Point{end, p1, p2}
}
