package pdfdoc

import "github.com/gogpu/pdfview"

// AnnotKind identifies an annotation descriptor's type.
type AnnotKind uint8

const (
	AnnotHighlight AnnotKind = iota
	AnnotUnderline
	AnnotStrikethrough
	AnnotSquiggly
	AnnotInk
	AnnotSquare
	AnnotCircle
	AnnotLine
	AnnotArrow
)

// String returns the annotation kind name.
func (k AnnotKind) String() string {
	switch k {
	case AnnotHighlight:
		return "highlight"
	case AnnotUnderline:
		return "underline"
	case AnnotStrikethrough:
		return "strikethrough"
	case AnnotSquiggly:
		return "squiggly"
	case AnnotInk:
		return "ink"
	case AnnotSquare:
		return "square"
	case AnnotCircle:
		return "circle"
	case AnnotLine:
		return "line"
	case AnnotArrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Annotation is one recorded annotation in document coordinates with a
// top-left origin. Which geometry fields are set depends on the kind:
// markup kinds carry Rects, ink carries Strokes, square and circle
// carry Bounds, line and arrow carry Start and End.
type Annotation struct {
	Kind AnnotKind

	Rects   []pdfview.Rect
	Strokes [][]pdfview.Point
	Bounds  pdfview.Rect
	Start   pdfview.Point
	End     pdfview.Point

	Color pdfview.Color
	Fill  *pdfview.Color
	Width float64
}

// AddHighlight records highlight markup over the given rectangles.
func (p *Page) AddHighlight(rects []pdfview.Rect, c pdfview.Color) {
	p.addMarkup(AnnotHighlight, rects, c)
}

// AddUnderline records underline markup over the given rectangles.
func (p *Page) AddUnderline(rects []pdfview.Rect, c pdfview.Color) {
	p.addMarkup(AnnotUnderline, rects, c)
}

// AddStrikethrough records strikethrough markup over the given
// rectangles.
func (p *Page) AddStrikethrough(rects []pdfview.Rect, c pdfview.Color) {
	p.addMarkup(AnnotStrikethrough, rects, c)
}

// AddSquiggly records squiggly underline markup over the given
// rectangles.
func (p *Page) AddSquiggly(rects []pdfview.Rect, c pdfview.Color) {
	p.addMarkup(AnnotSquiggly, rects, c)
}

func (p *Page) addMarkup(kind AnnotKind, rects []pdfview.Rect, c pdfview.Color) {
	if len(rects) == 0 {
		return
	}
	p.annots = append(p.annots, Annotation{Kind: kind, Rects: rects, Color: c})
}

// AddInk records freehand strokes.
func (p *Page) AddInk(strokes [][]pdfview.Point, c pdfview.Color, width float64) {
	if len(strokes) == 0 {
		return
	}
	p.annots = append(p.annots, Annotation{
		Kind:    AnnotInk,
		Strokes: strokes,
		Color:   c,
		Width:   width,
	})
}

// AddRect records a rectangle annotation.
func (p *Page) AddRect(r pdfview.Rect, stroke pdfview.Color, fill *pdfview.Color, width float64) {
	p.annots = append(p.annots, Annotation{
		Kind:   AnnotSquare,
		Bounds: r,
		Color:  stroke,
		Fill:   fill,
		Width:  width,
	})
}

// AddCircle records an ellipse annotation inscribed in r.
func (p *Page) AddCircle(r pdfview.Rect, stroke pdfview.Color, fill *pdfview.Color, width float64) {
	p.annots = append(p.annots, Annotation{
		Kind:   AnnotCircle,
		Bounds: r,
		Color:  stroke,
		Fill:   fill,
		Width:  width,
	})
}

// AddLine records a line annotation.
func (p *Page) AddLine(start, end pdfview.Point, c pdfview.Color, width float64) {
	p.annots = append(p.annots, Annotation{
		Kind:  AnnotLine,
		Start: start,
		End:   end,
		Color: c,
		Width: width,
	})
}

// AddArrow records a line annotation with an arrow head at the end
// point.
func (p *Page) AddArrow(start, end pdfview.Point, c pdfview.Color, width float64) {
	p.annots = append(p.annots, Annotation{
		Kind:  AnnotArrow,
		Start: start,
		End:   end,
		Color: c,
		Width: width,
	})
}

// Annotations returns the annotations recorded on this page, in the
// order they were added.
func (p *Page) Annotations() []Annotation {
	return p.annots
}
