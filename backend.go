package pdfview

// DocumentBackend is the document-level interface to the external PDF
// library. The engines never call it; the [Controller] uses it to reach
// pages for search and annotation commits.
type DocumentBackend interface {
	// PageCount returns the number of pages in the document.
	PageCount() int
	// Page returns the backend for one page.
	Page(index int) (PageBackend, error)
}

// PageBackend is the page-level interface to the external PDF library.
// The engines produce the arguments to these calls; they never invoke a
// parsing or persistence routine themselves. All geometry passed in is in
// document coordinates.
type PageBackend interface {
	// ExtractChars returns the page's characters with document-space
	// glyph boxes, in content order.
	ExtractChars() ([]Char, error)
	// SearchText returns the page's matches for query, in page order.
	SearchText(query string, caseSensitive, wholeWord bool) []SearchResult

	// Text markup annotations over merged character rectangles.
	AddHighlight(rects []Rect, c Color)
	AddUnderline(rects []Rect, c Color)
	AddStrikethrough(rects []Rect, c Color)
	AddSquiggly(rects []Rect, c Color)

	// AddInk records freehand strokes.
	AddInk(strokes [][]Point, c Color, width float64)

	// Shape annotations.
	AddRect(r Rect, stroke Color, fill *Color, width float64)
	AddCircle(r Rect, stroke Color, fill *Color, width float64)
	AddLine(start, end Point, c Color, width float64)
	AddArrow(start, end Point, c Color, width float64)
}
