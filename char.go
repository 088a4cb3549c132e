package pdfview

import "math"

// Char is a single positioned character: one grapheme cluster together
// with its on-page bounding box. X and Y are the top-left corner of the
// glyph box in page-local display coordinates; PageOffsetX and PageOffsetY
// place the page within the overall composite surface.
//
// Char values are an immutable snapshot of one render pass. They are owned
// by the layout collaborator and read-only to the engines; whenever the
// layout changes (page, scale, or view mode), the whole list is replaced
// and any selection referring to the old list must be cleared.
type Char struct {
	Text        string
	X, Y        float64
	Width       float64
	Height      float64
	PageIndex   int
	PageOffsetX float64
	PageOffsetY float64
}

// AbsX returns the X coordinate including the page offset.
func (c Char) AbsX() float64 {
	return c.X + c.PageOffsetX
}

// AbsY returns the Y coordinate including the page offset.
func (c Char) AbsY() float64 {
	return c.Y + c.PageOffsetY
}

// Bounds returns the glyph box in composite-surface coordinates.
func (c Char) Bounds() Rect {
	return Rect{
		X0: c.AbsX(),
		Y0: c.AbsY(),
		X1: c.AbsX() + c.Width,
		Y1: c.AbsY() + c.Height,
	}
}

// lineKey quantizes the vertical position of a character into a line
// bucket. Characters whose quantized keys match are treated as belonging
// to the same text line; the quantum both absorbs sub-pixel baseline
// jitter within a line and separates adjacent lines.
func (c Char) lineKey(quantum float64) int {
	return int(math.Round(c.AbsY() / quantum))
}

// ScaleChars maps document-space characters to display space: positions
// and sizes are multiplied by scale and the page offsets are set. This is
// a convenience for layout collaborators that hold document-space glyph
// boxes.
func ScaleChars(chars []Char, scale, offsetX, offsetY float64) []Char {
	out := make([]Char, len(chars))
	for i, c := range chars {
		c.X *= scale
		c.Y *= scale
		c.Width *= scale
		c.Height *= scale
		c.PageOffsetX = offsetX
		c.PageOffsetY = offsetY
		out[i] = c
	}
	return out
}
