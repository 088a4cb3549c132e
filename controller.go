package pdfview

import "fmt"

// Mode selects which engine receives pointer events.
type Mode uint8

const (
	// ModeSelect routes pointer drags to the selection engine.
	ModeSelect Mode = iota
	// ModeDraw routes pointer drags to the freehand ink engine.
	ModeDraw
	// ModeShape routes pointer drags to the shape engine.
	ModeShape
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeShape:
		return "shape"
	default:
		return "select"
	}
}

// Controller orchestrates the four engines. It routes each pointer event
// to exactly one engine based on the current mode, clears the selection
// whenever the character universe is replaced, and forwards committed
// results (annotation rectangles, ink strokes, shapes) to the document
// backend.
//
// The backend may be nil, in which case commits are dropped and only the
// overlay-facing state is maintained.
type Controller struct {
	sel    *Selector
	ink    *Drawing
	shapes *ShapeTool
	nav    *SearchNavigator

	doc   DocumentBackend
	mode  Mode
	scale float64
	page  int
}

// NewController creates a controller with fresh engines in selection
// mode at scale 1.
func NewController(doc DocumentBackend, opts ...ControllerOption) *Controller {
	c := &Controller{
		sel:    NewSelector(),
		ink:    NewDrawing(),
		shapes: NewShapeTool(),
		nav:    NewSearchNavigator(),
		doc:    doc,
		scale:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Selector returns the selection engine.
func (c *Controller) Selector() *Selector { return c.sel }

// Drawing returns the freehand ink engine.
func (c *Controller) Drawing() *Drawing { return c.ink }

// Shapes returns the shape engine.
func (c *Controller) Shapes() *ShapeTool { return c.shapes }

// Navigator returns the search navigator.
func (c *Controller) Navigator() *SearchNavigator { return c.nav }

// Mode returns the active interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// Scale returns the current display scale.
func (c *Controller) Scale() float64 { return c.scale }

// SetScale updates the display scale. Changing the scale invalidates all
// character geometry, so the selection is cleared; the caller supplies a
// freshly scaled character list via SetCharacters afterwards.
func (c *Controller) SetScale(scale float64) {
	if scale <= 0 || scale == c.scale {
		return
	}
	c.scale = scale
	c.sel.Clear()
}

// CurrentPage returns the page that receives ink and shape commits.
func (c *Controller) CurrentPage() int { return c.page }

// SetCurrentPage sets the page that receives ink and shape commits.
func (c *Controller) SetCurrentPage(index int) {
	c.page = index
}

// SetCharacters replaces the selection engine's hit-test universe and
// clears the selection, which would otherwise reference stale geometry.
func (c *Controller) SetCharacters(chars []Char) {
	c.sel.SetCharacters(chars)
	c.sel.Clear()
}

// EnableDrawing switches to ink mode with the given color and width.
// The selection and any shape in progress are discarded.
func (c *Controller) EnableDrawing(col Color, width float64) {
	c.shapes.Disable()
	c.sel.Clear()
	c.ink.Enable(col, width)
	c.mode = ModeDraw
}

// DisableDrawing leaves ink mode and returns to selection mode.
func (c *Controller) DisableDrawing() {
	c.ink.Disable()
	c.mode = ModeSelect
}

// EnableShape switches to shape mode with the given type and paint.
// The selection and any ink stroke in progress are discarded.
func (c *Controller) EnableShape(shape ShapeType, stroke Color, fill *Color, width float64) {
	if shape == ShapeNone {
		c.DisableShape()
		return
	}
	c.ink.Disable()
	c.sel.Clear()
	c.shapes.Enable(shape, stroke, fill, width)
	c.mode = ModeShape
}

// DisableShape leaves shape mode and returns to selection mode.
func (c *Controller) DisableShape() {
	c.shapes.Disable()
	c.mode = ModeSelect
}

// PointerDown dispatches a pointer-down event to the active engine.
func (c *Controller) PointerDown(x, y float64) {
	switch c.mode {
	case ModeDraw:
		c.ink.StartStroke(x, y)
	case ModeShape:
		c.shapes.Start(x, y)
	default:
		c.sel.Start(x, y)
	}
}

// PointerMove dispatches a pointer-move event to the active engine.
func (c *Controller) PointerMove(x, y float64) {
	switch c.mode {
	case ModeDraw:
		c.ink.AddPoint(x, y)
	case ModeShape:
		c.shapes.Update(x, y)
	default:
		c.sel.Update(x, y)
	}
}

// PointerUp dispatches a pointer-up event to the active engine and
// commits the result to the backend where one applies.
func (c *Controller) PointerUp() error {
	switch c.mode {
	case ModeDraw:
		return c.commitInk()
	case ModeShape:
		return c.commitShape()
	default:
		c.sel.End()
		return nil
	}
}

// Tap handles a single tap: outside of ink and shape modes it clears the
// current selection.
func (c *Controller) Tap(x, y float64) {
	if c.mode == ModeSelect {
		c.sel.Clear()
	}
}

// SelectedText returns the reconstructed text of the current selection.
func (c *Controller) SelectedText() string {
	return c.sel.Text()
}

// commitInk finalizes the stroke in progress and forwards it to the
// current page in document coordinates. Strokes shorter than two points
// mean nothing to commit.
func (c *Controller) commitInk() error {
	scaled := c.ink.ScaledStroke(c.scale)
	raw := c.ink.EndStroke()
	if len(raw) < 2 || c.doc == nil {
		return nil
	}
	page, err := c.doc.Page(c.page)
	if err != nil {
		return fmt.Errorf("commit ink: %w", err)
	}
	page.AddInk([][]Point{scaled}, c.ink.Color(), c.ink.Width())
	return nil
}

// commitShape finalizes the shape in progress and forwards it to the
// current page in document coordinates.
func (c *Controller) commitShape() error {
	stroke := c.shapes.StrokeColor()
	fill := c.shapes.FillColor()
	width := c.shapes.StrokeWidth()

	shape, ok := c.shapes.End()
	if !ok || c.doc == nil {
		return nil
	}
	page, err := c.doc.Page(c.page)
	if err != nil {
		return fmt.Errorf("commit shape: %w", err)
	}

	start := Pt(shape.X1/c.scale, shape.Y1/c.scale)
	end := Pt(shape.X2/c.scale, shape.Y2/c.scale)
	rect := RectFromPoints(start, end)

	switch shape.Type {
	case ShapeRectangle, ShapeText:
		page.AddRect(rect, stroke, fill, width)
	case ShapeCircle:
		page.AddCircle(rect, stroke, fill, width)
	case ShapeLine:
		page.AddLine(start, end, stroke, width)
	case ShapeArrow:
		page.AddArrow(start, end, stroke, width)
	}
	return nil
}

// markupKind identifies a text markup annotation for annotate.
type markupKind uint8

const (
	markupHighlight markupKind = iota
	markupUnderline
	markupStrikethrough
	markupSquiggly
)

// HighlightSelection adds highlight annotations over the current
// selection and clears it. An empty selection is a no-op.
func (c *Controller) HighlightSelection(col Color) error {
	return c.annotate(markupHighlight, col)
}

// UnderlineSelection adds underline annotations over the current
// selection and clears it. An empty selection is a no-op.
func (c *Controller) UnderlineSelection(col Color) error {
	return c.annotate(markupUnderline, col)
}

// StrikethroughSelection adds strikethrough annotations over the current
// selection and clears it. An empty selection is a no-op.
func (c *Controller) StrikethroughSelection(col Color) error {
	return c.annotate(markupStrikethrough, col)
}

// SquigglySelection adds squiggly annotations over the current selection
// and clears it. An empty selection is a no-op.
func (c *Controller) SquigglySelection(col Color) error {
	return c.annotate(markupSquiggly, col)
}

func (c *Controller) annotate(kind markupKind, col Color) error {
	if c.doc == nil || len(c.sel.Chars()) == 0 {
		return nil
	}
	byPage := c.sel.AnnotationRects(c.scale)
	for pageIndex, rects := range byPage {
		page, err := c.doc.Page(pageIndex)
		if err != nil {
			return fmt.Errorf("annotate page %d: %w", pageIndex, err)
		}
		switch kind {
		case markupHighlight:
			page.AddHighlight(rects, col)
		case markupUnderline:
			page.AddUnderline(rects, col)
		case markupStrikethrough:
			page.AddStrikethrough(rects, col)
		case markupSquiggly:
			page.AddSquiggly(rects, col)
		}
	}
	c.sel.Clear()
	return nil
}

// Search runs a document-wide search starting from the current page.
// Matching is case-insensitive without whole-word filtering; use the
// navigator directly for other options.
func (c *Controller) Search(query string) []SearchResult {
	if c.doc == nil {
		return nil
	}
	return c.nav.Search(query, c.doc.PageCount(), func(pageIndex int) []SearchResult {
		page, err := c.doc.Page(pageIndex)
		if err != nil {
			logger().Warn("search: page unavailable",
				"page", pageIndex, "err", err)
			return nil
		}
		return page.SearchText(query, false, false)
	}, c.page)
}

// SearchNext advances to the next result with wraparound and moves the
// current page to the result's page.
func (c *Controller) SearchNext() (SearchResult, bool) {
	r, ok := c.nav.Next()
	if ok {
		c.page = r.PageIndex
	}
	return r, ok
}

// SearchPrev steps back to the previous result with wraparound and moves
// the current page to the result's page.
func (c *Controller) SearchPrev() (SearchResult, bool) {
	r, ok := c.nav.Prev()
	if ok {
		c.page = r.PageIndex
	}
	return r, ok
}

// ClearSearch resets the search navigator.
func (c *Controller) ClearSearch() {
	c.nav.Clear()
}
