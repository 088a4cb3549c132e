package pdfview

import (
	"math"
	"sort"
	"strings"
)

// SelectionState is the current state of a text selection drag.
type SelectionState struct {
	// Start is the anchor point where the drag began.
	Start Point
	// End is the active end of the drag.
	End Point
	// IsSelecting reports whether a drag is in progress. When false and
	// Chars is non-empty, the selection is frozen.
	IsSelecting bool
	// Chars are the currently selected characters, recomputed on every
	// drag update.
	Chars []Char
}

// Selector is the text selection engine. It hit-tests positioned
// characters against the drag rectangle, groups them into lines, extends
// multi-line selections to line boundaries, and derives highlight
// rectangles and reconstructed text from the result.
//
// All operations are total functions over possibly-empty inputs; calling
// them out of turn is a silent no-op.
type Selector struct {
	chars    []Char
	state    SelectionState
	quantum  float64
	tol      float64
	onChange func(text string)
}

// NewSelector creates a selection engine with default line quantization.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		quantum: DefaultLineQuantum,
		tol:     DefaultEdgeTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCharacters replaces the hit-test universe. It does not clear the
// current selection: the caller must clear whenever the layout changes,
// since the old selection refers to stale geometry. [Controller] does
// this automatically.
func (s *Selector) SetCharacters(chars []Char) {
	s.chars = chars
}

// Start begins a new selection drag at the given point, discarding any
// previous selection.
func (s *Selector) Start(x, y float64) {
	s.state = SelectionState{
		Start:       Pt(x, y),
		End:         Pt(x, y),
		IsSelecting: true,
	}
}

// Update moves the active end of the drag and recomputes the selected
// characters. It is a no-op if no drag is in progress.
func (s *Selector) Update(x, y float64) {
	if !s.state.IsSelecting {
		return
	}
	s.state.End = Pt(x, y)
	s.updateSelectedChars()
}

// End freezes the current selection. If any characters are selected, the
// change callback receives the reconstructed text. Calling End again
// without an intervening Start is a no-op.
func (s *Selector) End() {
	if !s.state.IsSelecting {
		return
	}
	s.state.IsSelecting = false
	if s.onChange != nil && len(s.state.Chars) > 0 {
		s.onChange(s.Text())
	}
	if len(s.state.Chars) > 0 {
		logger().Debug("selection frozen", "chars", len(s.state.Chars))
	}
}

// Clear resets the selection to the empty state.
func (s *Selector) Clear() {
	s.state = SelectionState{}
}

// IsSelecting reports whether a drag is in progress.
func (s *Selector) IsSelecting() bool {
	return s.state.IsSelecting
}

// Chars returns the currently selected characters in hit-test order.
func (s *Selector) Chars() []Char {
	return s.state.Chars
}

// State returns a copy of the current selection state.
func (s *Selector) State() SelectionState {
	return s.state
}

// updateSelectedChars recomputes the selected set from the drag
// rectangle. Characters directly intersecting the rectangle are found
// first; if they span multiple line buckets, the selection is extended to
// line boundaries: the first line from the leftmost hit character to the
// line's end, middle lines completely, and the last line from the line's
// start to the rightmost hit character.
func (s *Selector) updateSelectedChars() {
	drag := RectFromPoints(s.state.Start, s.state.End)

	var direct []Char
	for _, c := range s.chars {
		if drag.Intersects(c.Bounds()) {
			direct = append(direct, c)
		}
	}
	if len(direct) == 0 {
		s.state.Chars = nil
		return
	}

	lines := make(map[int][]Char)
	for _, c := range direct {
		key := c.lineKey(s.quantum)
		lines[key] = append(lines[key], c)
	}

	// Single line: the directly intersecting set is the selection.
	if len(lines) <= 1 {
		s.state.Chars = direct
		return
	}

	firstKey, lastKey := math.MaxInt, math.MinInt
	for key := range lines {
		if key < firstKey {
			firstKey = key
		}
		if key > lastKey {
			lastKey = key
		}
	}

	firstSelectedX := math.Inf(1)
	for _, c := range lines[firstKey] {
		if x := c.AbsX(); x < firstSelectedX {
			firstSelectedX = x
		}
	}
	lastSelectedX := math.Inf(-1)
	for _, c := range lines[lastKey] {
		if x := c.AbsX() + c.Width; x > lastSelectedX {
			lastSelectedX = x
		}
	}

	// Rebuild from the entire character universe, not just the hits. The
	// tolerance absorbs rounding introduced by line quantization.
	var selected []Char
	for _, c := range s.chars {
		key := c.lineKey(s.quantum)
		switch {
		case key < firstKey || key > lastKey:
			continue
		case key == firstKey:
			if c.AbsX() >= firstSelectedX-s.tol {
				selected = append(selected, c)
			}
		case key == lastKey:
			if c.AbsX()+c.Width <= lastSelectedX+s.tol {
				selected = append(selected, c)
			}
		default:
			selected = append(selected, c)
		}
	}
	s.state.Chars = selected
}

// Text reconstructs the selected text. Characters are ordered by page,
// line bucket, and horizontal position; a newline separates lines and a
// single space is inserted wherever the horizontal gap between adjacent
// characters exceeds 30% of their average width, recovering word
// boundaries lost when glyphs are extracted individually.
func (s *Selector) Text() string {
	chars := s.state.Chars
	if len(chars) == 0 {
		return ""
	}

	sorted := make([]Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.PageIndex != b.PageIndex {
			return a.PageIndex < b.PageIndex
		}
		ak, bk := a.lineKey(s.quantum), b.lineKey(s.quantum)
		if ak != bk {
			return ak < bk
		}
		return a.AbsX() < b.AbsX()
	})

	var b strings.Builder
	var prev *Char
	for i := range sorted {
		c := sorted[i]
		if prev != nil && (c.PageIndex != prev.PageIndex ||
			math.Abs(c.AbsY()-prev.AbsY()) > prev.Height*0.5) {
			b.WriteByte('\n')
			prev = nil
		}
		if prev != nil {
			gap := c.AbsX() - (prev.AbsX() + prev.Width)
			avgWidth := (c.Width + prev.Width) / 2
			if gap > avgWidth*0.3 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(c.Text)
		prev = &sorted[i]
	}
	return b.String()
}

// HighlightRects returns the rectangles to paint for the current
// selection, one per selected line. For multi-line selections the first
// line extends from the first selected character to the line's full
// extent, middle lines cover the full line, and the last line extends
// from the line's start to the last selected character.
func (s *Selector) HighlightRects() []Rect {
	chars := s.state.Chars
	if len(chars) == 0 {
		return nil
	}

	lines := make(map[int][]Char)
	for _, c := range chars {
		key := c.lineKey(s.quantum)
		lines[key] = append(lines[key], c)
	}

	if len(lines) <= 1 {
		return []Rect{lineSpan(chars)}
	}

	// Full horizontal extent of each line over the whole universe.
	bounds := make(map[int][2]float64)
	for _, c := range s.chars {
		key := c.lineKey(s.quantum)
		x0, x1 := c.AbsX(), c.AbsX()+c.Width
		if b, ok := bounds[key]; ok {
			bounds[key] = [2]float64{math.Min(b[0], x0), math.Max(b[1], x1)}
		} else {
			bounds[key] = [2]float64{x0, x1}
		}
	}

	keys := make([]int, 0, len(lines))
	for key := range lines {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	rects := make([]Rect, 0, len(keys))
	for i, key := range keys {
		lineChars := lines[key]
		sort.Slice(lineChars, func(a, b int) bool {
			return lineChars[a].AbsX() < lineChars[b].AbsX()
		})

		first, last := lineChars[0], lineChars[len(lineChars)-1]
		y0, y1 := math.Inf(1), math.Inf(-1)
		for _, c := range lineChars {
			y0 = math.Min(y0, c.AbsY())
			y1 = math.Max(y1, c.AbsY()+c.Height)
		}

		lineStart := bounds[key][0]
		lineEnd := bounds[key][1]

		var x0, x1 float64
		switch i {
		case 0:
			x0, x1 = first.AbsX(), lineEnd
		case len(keys) - 1:
			x0, x1 = lineStart, last.AbsX()+last.Width
		default:
			x0, x1 = lineStart, lineEnd
		}
		rects = append(rects, Rect{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
	return rects
}

// lineSpan returns one rectangle covering all chars of a single line.
func lineSpan(chars []Char) Rect {
	x0, x1 := math.Inf(1), math.Inf(-1)
	y0, y1 := math.Inf(1), math.Inf(-1)
	for _, c := range chars {
		x0 = math.Min(x0, c.AbsX())
		x1 = math.Max(x1, c.AbsX()+c.Width)
		y0 = math.Min(y0, c.AbsY())
		y1 = math.Max(y1, c.AbsY()+c.Height)
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AnnotationRects returns document-space rectangles for the current
// selection, grouped by page. Coordinates are page-local (offsets
// removed) and divided by scale; adjacent characters on the same line are
// merged into contiguous rectangles to minimize the number of annotation
// primitives created downstream.
func (s *Selector) AnnotationRects(scale float64) map[int][]Rect {
	chars := s.state.Chars
	if len(chars) == 0 {
		return nil
	}

	byPage := make(map[int][]Char)
	for _, c := range chars {
		byPage[c.PageIndex] = append(byPage[c.PageIndex], c)
	}

	result := make(map[int][]Rect, len(byPage))
	for page, pageChars := range byPage {
		result[page] = s.mergeCharRects(pageChars, scale)
	}
	return result
}

// mergeCharRects merges same-line adjacent characters into contiguous
// document-space rectangles. Coordinates here are page-local.
func (s *Selector) mergeCharRects(chars []Char, scale float64) []Rect {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ak := int(math.Round(a.Y / s.quantum))
		bk := int(math.Round(b.Y / s.quantum))
		if ak != bk {
			return ak < bk
		}
		return a.X < b.X
	})

	var rects []Rect
	var current Rect
	var lastY, lastHeight float64
	active := false

	for _, c := range sorted {
		charRect := Rect{
			X0: c.X / scale,
			Y0: c.Y / scale,
			X1: (c.X + c.Width) / scale,
			Y1: (c.Y + c.Height) / scale,
		}
		switch {
		case !active:
			current = charRect
			lastY, lastHeight = c.Y, c.Height
			active = true
		case math.Abs(c.Y-lastY) < lastHeight*0.5:
			current.X1 = charRect.X1
			current.Y0 = math.Min(current.Y0, charRect.Y0)
			current.Y1 = math.Max(current.Y1, charRect.Y1)
		default:
			rects = append(rects, current)
			current = charRect
			lastY, lastHeight = c.Y, c.Height
		}
	}
	rects = append(rects, current)
	return rects
}
