// Package overlay paints live interaction state onto a gg drawing
// context. It turns the geometry produced by the pdfview engines,
// selection highlight rectangles, in-progress ink strokes, shape
// previews, and search results, into pixels on a transparent layer
// composited above the rendered page.
//
// The painter holds no engine state of its own: every Draw method reads
// the engine passed to it, so callers simply repaint the overlay after
// each pointer event.
package overlay

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/pdfview"
)

// Style bundles the overlay's paint settings.
type Style struct {
	// SelectionColor fills selection highlight rectangles.
	SelectionColor pdfview.Color
	// SelectionAlpha is the fill opacity for selection rectangles.
	SelectionAlpha float64

	// SearchColor fills non-current search result boxes.
	SearchColor pdfview.Color
	// SearchCurrentColor fills the current search result box.
	SearchCurrentColor pdfview.Color
	// SearchAlpha is the fill opacity for search result boxes.
	SearchAlpha float64

	// PreviewDash is the dash pattern for text box previews.
	PreviewDash []float64
}

// DefaultStyle returns the stock overlay appearance.
func DefaultStyle() Style {
	return Style{
		SelectionColor:     pdfview.RGB(0.25, 0.5, 1.0),
		SelectionAlpha:     0.3,
		SearchColor:        pdfview.ColorHighlight,
		SearchCurrentColor: pdfview.RGB(1.0, 0.6, 0.0),
		SearchAlpha:        0.4,
		PreviewDash:        []float64{6, 4},
	}
}

// Option configures a Painter during creation.
type Option func(*Painter)

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(p *Painter) {
		p.style = s
	}
}

// Painter draws interaction state onto a gg context.
type Painter struct {
	style Style
}

// New creates a painter with the default style.
func New(opts ...Option) *Painter {
	p := &Painter{style: DefaultStyle()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Style returns the painter's current style.
func (p *Painter) Style() Style {
	return p.style
}

// DrawSelection fills the selection's highlight rectangles.
func (p *Painter) DrawSelection(dc *gg.Context, sel *pdfview.Selector) {
	rects := sel.HighlightRects()
	if len(rects) == 0 {
		return
	}
	col := p.style.SelectionColor
	dc.SetRGBA(col.R, col.G, col.B, p.style.SelectionAlpha)
	for _, r := range rects {
		dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
	}
	_ = dc.Fill()
}

// DrawInk strokes the ink engine's in-progress stroke, smoothed.
func (p *Painter) DrawInk(dc *gg.Context, ink *pdfview.Drawing) {
	p.DrawStroke(dc, ink.Stroke(), ink.Color(), ink.Width())
}

// DrawStroke strokes a raw point list after Catmull-Rom smoothing. It
// serves both the live stroke and committed strokes replayed from the
// document.
func (p *Painter) DrawStroke(dc *gg.Context, points []pdfview.Point, col pdfview.Color, width float64) {
	elements := pdfview.SmoothStroke(points, pdfview.DefaultTension)
	if len(elements) == 0 {
		return
	}
	dc.SetRGB(col.R, col.G, col.B)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	replayPath(dc, elements)
	_ = dc.Stroke()
}

// DrawShapePreview draws the shape engine's in-progress shape. Nothing
// is drawn when no drag is active.
func (p *Painter) DrawShapePreview(dc *gg.Context, tool *pdfview.ShapeTool) {
	if !tool.IsDrawing() {
		return
	}
	col := tool.StrokeColor()
	dc.SetRGB(col.R, col.G, col.B)
	dc.SetLineWidth(tool.StrokeWidth())

	switch tool.Type() {
	case pdfview.ShapeRectangle:
		r, _ := tool.CurrentRect()
		dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
		if fill := tool.FillColor(); fill != nil {
			p.fillPreserveThenStroke(dc, *fill, col)
			return
		}
		_ = dc.Stroke()
	case pdfview.ShapeText:
		r, _ := tool.CurrentRect()
		dc.SetDash(p.style.PreviewDash...)
		dc.DrawRectangle(r.X0, r.Y0, r.Width(), r.Height())
		_ = dc.Stroke()
		dc.ClearDash()
	case pdfview.ShapeCircle:
		r, _ := tool.CurrentRect()
		cx := r.X0 + r.Width()/2
		cy := r.Y0 + r.Height()/2
		dc.DrawEllipse(cx, cy, r.Width()/2, r.Height()/2)
		if fill := tool.FillColor(); fill != nil {
			p.fillPreserveThenStroke(dc, *fill, col)
			return
		}
		_ = dc.Stroke()
	case pdfview.ShapeLine:
		x1, y1, x2, y2, _ := tool.CurrentLine()
		dc.DrawLine(x1, y1, x2, y2)
		_ = dc.Stroke()
	case pdfview.ShapeArrow:
		x1, y1, x2, y2, _ := tool.CurrentLine()
		p.DrawArrow(dc, pdfview.Pt(x1, y1), pdfview.Pt(x2, y2), col, tool.StrokeWidth())
	}
}

// DrawArrow strokes a line from start to end and fills the arrow head
// triangle at the end point.
func (p *Painter) DrawArrow(dc *gg.Context, start, end pdfview.Point, col pdfview.Color, width float64) {
	dc.SetRGB(col.R, col.G, col.B)
	dc.SetLineWidth(width)
	dc.DrawLine(start.X, start.Y, end.X, end.Y)
	_ = dc.Stroke()

	tri := pdfview.ArrowHead(start, end, width)
	dc.MoveTo(tri[0].X, tri[0].Y)
	dc.LineTo(tri[1].X, tri[1].Y)
	dc.LineTo(tri[2].X, tri[2].Y)
	dc.ClosePath()
	_ = dc.Fill()
}

// PageOffsetFunc locates a page on the composite surface, returning the
// display-space offset of its top-left corner.
type PageOffsetFunc func(pageIndex int) (x, y float64)

// DrawSearchResults fills one box per search result, with the current
// result in a distinct color. Results carry document coordinates; scale
// and offset map them onto the display surface. A nil offset places
// every page at the origin.
func (p *Painter) DrawSearchResults(dc *gg.Context, nav *pdfview.SearchNavigator, scale float64, offset PageOffsetFunc) {
	results := nav.Results()
	if len(results) == 0 {
		return
	}
	current := nav.CurrentIndex()

	for i, r := range results {
		var ox, oy float64
		if offset != nil {
			ox, oy = offset(r.PageIndex)
		}
		col := p.style.SearchColor
		if i == current {
			col = p.style.SearchCurrentColor
		}
		dc.SetRGBA(col.R, col.G, col.B, p.style.SearchAlpha)
		dc.DrawRectangle(
			r.Rect.X0*scale+ox,
			r.Rect.Y0*scale+oy,
			r.Rect.Width()*scale,
			r.Rect.Height()*scale)
		_ = dc.Fill()
	}
}

func (p *Painter) fillPreserveThenStroke(dc *gg.Context, fill, stroke pdfview.Color) {
	dc.SetRGB(fill.R, fill.G, fill.B)
	_ = dc.FillPreserve()
	dc.SetRGB(stroke.R, stroke.G, stroke.B)
	_ = dc.Stroke()
}

// replayPath feeds smoothed path elements into the context's current
// path.
func replayPath(dc *gg.Context, elements []pdfview.PathElement) {
	for _, el := range elements {
		switch e := el.(type) {
		case pdfview.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case pdfview.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case pdfview.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		}
	}
}
