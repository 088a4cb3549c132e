package pdfdoc

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/pdf/reader"

	"github.com/gogpu/pdfview"
)

// Page is a single page of an open document. It implements
// [pdfview.PageBackend]. Characters are extracted lazily on the first
// call to ExtractChars or SearchText and cached for the life of the
// document.
type Page struct {
	doc   *Document
	index int

	extracted     bool
	chars         []pdfview.Char
	width, height float64

	annots []Annotation
}

var _ pdfview.PageBackend = (*Page)(nil)

// Size returns the page dimensions in document units. The values are
// only valid after a successful ExtractChars.
func (p *Page) Size() (width, height float64) {
	return p.width, p.height
}

// ExtractChars returns the page's characters with document-space glyph
// boxes, in content order. Coordinates use a top-left origin with y
// growing downward, matching the display convention of the interaction
// engines.
func (p *Page) ExtractChars() ([]pdfview.Char, error) {
	if p.extracted {
		return p.chars, nil
	}

	pageDict, err := pagetree.GetPage(p.doc.r, p.index)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", p.index, err)
	}

	llx, lly, width, height, err := mediaBox(p.doc.r, pageDict)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", p.index, err)
	}
	p.width, p.height = width, height

	rd := reader.New(p.doc.r, nil)
	var chars []pdfview.Char
	rd.DrawGlyph = func(g font.Glyph) error {
		if len(g.Text) == 0 {
			return nil
		}
		m := rd.TextMatrix.Mul(rd.CTM)
		x, y := m.Apply(0, g.Rise)

		// Device-space glyph metrics. The font size picks up the text
		// matrix's vertical scale; the advance picks up the horizontal.
		size := rd.TextFontSize * math.Hypot(m[2], m[3])
		advance := g.Advance * math.Hypot(m[0], m[1])

		// Flip to a top-left origin. The glyph box spans one font size
		// above the baseline.
		top := height - (y - lly) - size
		left := x - llx

		chars = append(chars, splitClusters(string(g.Text), left, top, advance, size, p.index)...)
		return nil
	}

	if err := rd.ParsePage(pageDict, graphics.IdentityMatrix); err != nil {
		return nil, fmt.Errorf("page %d: parse content: %w", p.index, err)
	}

	p.chars = chars
	p.extracted = true
	return p.chars, nil
}

// splitClusters divides one glyph's text into grapheme clusters, each
// receiving an equal share of the advance. Ligatures and multi-rune
// glyphs then select and search as their constituent characters.
func splitClusters(text string, x, y, advance, size float64, pageIndex int) []pdfview.Char {
	n := uniseg.GraphemeClusterCount(text)
	if n == 0 {
		return nil
	}
	w := advance / float64(n)

	chars := make([]pdfview.Char, 0, n)
	g := uniseg.NewGraphemes(text)
	for i := 0; g.Next(); i++ {
		chars = append(chars, pdfview.Char{
			Text:      g.Str(),
			X:         x + float64(i)*w,
			Y:         y,
			Width:     w,
			Height:    size,
			PageIndex: pageIndex,
		})
	}
	return chars
}

// mediaBox reads the page's media box, returning its lower-left corner
// and dimensions.
func mediaBox(r pdf.Getter, pageDict pdf.Dict) (llx, lly, width, height float64, err error) {
	box, err := pdf.GetArray(r, pageDict["MediaBox"])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if len(box) < 4 {
		return 0, 0, 0, 0, fmt.Errorf("missing or invalid MediaBox")
	}
	x0, _ := pdf.GetNumber(r, box[0])
	y0, _ := pdf.GetNumber(r, box[1])
	x1, _ := pdf.GetNumber(r, box[2])
	y1, _ := pdf.GetNumber(r, box[3])
	return float64(x0), float64(y0), float64(x1 - x0), float64(y1 - y0), nil
}

// SearchText returns the page's matches for query, in page order.
// Matching is substring-based over reconstructed text lines. An
// extraction failure yields no matches; use ExtractChars directly to
// observe the error.
func (p *Page) SearchText(query string, caseSensitive, wholeWord bool) []pdfview.SearchResult {
	if query == "" {
		return nil
	}
	chars, err := p.ExtractChars()
	if err != nil {
		return nil
	}

	var results []pdfview.SearchResult
	for _, line := range buildLines(chars) {
		for _, span := range line.find(query, caseSensitive, wholeWord) {
			results = append(results, p.resultFor(line, span))
		}
	}
	return results
}

func (p *Page) resultFor(line textLine, span [2]int) pdfview.SearchResult {
	matched := line.chars[span[0]:span[1]]

	var text string
	rect := charRect(matched[0])
	quads := make([]pdfview.Rect, 0, len(matched))
	for _, c := range matched {
		text += c.Text
		r := charRect(c)
		rect = rect.Union(r)
		quads = append(quads, r)
	}
	return pdfview.SearchResult{
		PageIndex: p.index,
		Rect:      rect,
		Text:      text,
		Quads:     quads,
	}
}

func charRect(c pdfview.Char) pdfview.Rect {
	return pdfview.Rect{X0: c.X, Y0: c.Y, X1: c.X + c.Width, Y1: c.Y + c.Height}
}
