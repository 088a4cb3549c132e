package pdfview

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// textLine lays out one character per rune on a single line.
func textLine(text string, startX, y, w, h float64, page int, offY float64) []Char {
	runes := []rune(text)
	chars := make([]Char, len(runes))
	for i, r := range runes {
		chars[i] = Char{
			Text:        string(r),
			X:           startX + float64(i)*w,
			Y:           y,
			Width:       w,
			Height:      h,
			PageIndex:   page,
			PageOffsetY: offY,
		}
	}
	return chars
}

func selectedText(chars []Char) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteString(c.Text)
	}
	return b.String()
}

func TestSelectorSingleLine(t *testing.T) {
	// Ten 10x10 characters starting at x=0.
	chars := textLine("abcdefghij", 0, 0, 10, 10, 0, 0)

	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           string
	}{
		{"partial from left", 5, 0, 35, 10, "abcd"},
		{"interior only", 22, 2, 48, 8, "cde"},
		{"full line", -5, -5, 105, 15, "abcdefghij"},
		{"miss above", 0, -20, 100, -10, ""},
		{"touching top edge", 0, -10, 100, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector()
			s.SetCharacters(chars)
			s.Start(tt.x0, tt.y0)
			s.Update(tt.x1, tt.y1)
			s.End()
			if got := selectedText(s.Chars()); got != tt.want {
				t.Errorf("selected %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectorReverseDrag(t *testing.T) {
	chars := textLine("abcdefghij", 0, 0, 10, 10, 0, 0)
	s := NewSelector()
	s.SetCharacters(chars)

	// Dragging right-to-left selects the same characters as left-to-right.
	s.Start(35, 10)
	s.Update(5, 0)
	if got := selectedText(s.Chars()); got != "abcd" {
		t.Errorf("selected %q, want %q", got, "abcd")
	}
}

func TestSelectorMultiLineExtension(t *testing.T) {
	// Three lines of ten 10x10 characters at y=0, 20, 40.
	var chars []Char
	chars = append(chars, textLine("aaaaaaaaaa", 0, 0, 10, 10, 0, 0)...)
	chars = append(chars, textLine("bbbbbbbbbb", 0, 20, 10, 10, 0, 0)...)
	chars = append(chars, textLine("cccccccccc", 0, 40, 10, 10, 0, 0)...)

	s := NewSelector()
	s.SetCharacters(chars)

	// A narrow drag from mid line 1 to mid line 3. Direct hits are only
	// two columns wide, but the selection extends to line boundaries:
	// the tail of line 1, all of line 2, and the head of line 3.
	s.Start(45, 2)
	s.Update(55, 48)

	got := s.Chars()
	if len(got) != 22 {
		t.Fatalf("selected %d chars, want 22", len(got))
	}

	counts := map[string]int{}
	for _, c := range got {
		counts[c.Text]++
	}
	want := map[string]int{"a": 6, "b": 10, "c": 6}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("per-line counts mismatch (-want +got):\n%s", diff)
	}

	// The first line keeps only characters at or right of the leftmost
	// hit, the last line only characters at or left of the rightmost hit.
	for _, c := range got {
		switch c.Text {
		case "a":
			if c.X < 40 {
				t.Errorf("first line kept char at x=%v, want x >= 40", c.X)
			}
		case "c":
			if c.X+c.Width > 61 {
				t.Errorf("last line kept char ending at x=%v, want <= 60", c.X+c.Width)
			}
		}
	}
}

func TestSelectorUpdateIdempotent(t *testing.T) {
	var chars []Char
	chars = append(chars, textLine("aaaaaaaaaa", 0, 0, 10, 10, 0, 0)...)
	chars = append(chars, textLine("bbbbbbbbbb", 0, 20, 10, 10, 0, 0)...)

	s := NewSelector()
	s.SetCharacters(chars)
	s.Start(45, 2)
	s.Update(55, 28)
	first := append([]Char(nil), s.Chars()...)

	// Repeating the same update must not grow or shrink the selection.
	s.Update(55, 28)
	if diff := cmp.Diff(first, s.Chars()); diff != "" {
		t.Errorf("selection changed on repeated update (-first +second):\n%s", diff)
	}
}

func TestSelectorLineQuantum(t *testing.T) {
	// Two tightly packed lines, 4 units apart, as produced at small zoom.
	var chars []Char
	chars = append(chars, textLine("aaaa", 0, 0, 4, 4, 0, 0)...)
	chars = append(chars, textLine("bbbb", 0, 4, 4, 4, 0, 0)...)

	drag := func(s *Selector) []Char {
		s.SetCharacters(chars)
		s.Start(1, 1)
		s.Update(3, 5)
		return s.Chars()
	}

	// With the default quantum both lines collapse into one bucket: the
	// hits look single-line, so no boundary extension happens and only
	// the two directly intersected characters are selected.
	coarse := drag(NewSelector())
	if len(coarse) != 2 {
		t.Fatalf("coarse quantum selected %d chars, want 2 direct hits", len(coarse))
	}

	// A quantum matched to the line pitch keeps the lines distinct, so
	// the drag across both lines extends line 1 to its end.
	fine := drag(NewSelector(WithLineQuantum(4)))
	counts := map[string]int{}
	for _, c := range fine {
		counts[c.Text]++
	}
	want := map[string]int{"a": 4, "b": 1}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("fine quantum counts mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorText(t *testing.T) {
	tests := []struct {
		name  string
		chars []Char
		want  string
	}{
		{
			name:  "no gaps",
			chars: textLine("abc", 0, 0, 10, 10, 0, 0),
			want:  "abc",
		},
		{
			name: "word gap inserts space",
			chars: []Char{
				{Text: "a", X: 0, Width: 10, Height: 10},
				{Text: "b", X: 14, Width: 10, Height: 10},
			},
			want: "a b",
		},
		{
			name: "small gap is kerning",
			chars: []Char{
				{Text: "a", X: 0, Width: 10, Height: 10},
				{Text: "b", X: 12, Width: 10, Height: 10},
			},
			want: "ab",
		},
		{
			name: "line break",
			chars: append(
				textLine("ab", 0, 0, 10, 10, 0, 0),
				textLine("cd", 0, 20, 10, 10, 0, 0)...),
			want: "ab\ncd",
		},
		{
			name: "page break",
			chars: []Char{
				{Text: "a", X: 0, Y: 0, Width: 10, Height: 10, PageIndex: 0},
				{Text: "b", X: 0, Y: 0, Width: 10, Height: 10, PageIndex: 1, PageOffsetY: 30},
			},
			want: "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector()
			s.SetCharacters(tt.chars)
			s.state.Chars = tt.chars
			if got := s.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectorTextOrdering(t *testing.T) {
	// Characters arrive in extraction order, not reading order.
	chars := []Char{
		{Text: "d", X: 10, Y: 20, Width: 10, Height: 10},
		{Text: "a", X: 0, Y: 0, Width: 10, Height: 10},
		{Text: "c", X: 0, Y: 20, Width: 10, Height: 10},
		{Text: "b", X: 10, Y: 0, Width: 10, Height: 10},
	}
	s := NewSelector()
	s.SetCharacters(chars)
	s.state.Chars = chars
	if got, want := s.Text(), "ab\ncd"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestSelectorHighlightRects(t *testing.T) {
	var chars []Char
	chars = append(chars, textLine("aaaaaaaaaa", 0, 0, 10, 10, 0, 0)...)
	chars = append(chars, textLine("bbbbbbbbbb", 0, 20, 10, 10, 0, 0)...)
	chars = append(chars, textLine("cccccccccc", 0, 40, 10, 10, 0, 0)...)

	s := NewSelector()
	s.SetCharacters(chars)
	s.Start(45, 2)
	s.Update(55, 48)

	rects := s.HighlightRects()
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}

	want := []Rect{
		{X0: 40, Y0: 0, X1: 100, Y1: 10},  // tail of line 1
		{X0: 0, Y0: 20, X1: 100, Y1: 30},  // full line 2
		{X0: 0, Y0: 40, X1: 60, Y1: 50},   // head of line 3
	}
	for i := range want {
		if !rectsEqual(rects[i], want[i], epsilon) {
			t.Errorf("rect[%d] = %v, want %v", i, rects[i], want[i])
		}
	}
}

func TestSelectorHighlightRectsSingleLine(t *testing.T) {
	chars := textLine("abcdefghij", 0, 0, 10, 10, 0, 0)
	s := NewSelector()
	s.SetCharacters(chars)
	s.Start(22, 2)
	s.Update(48, 8)

	rects := s.HighlightRects()
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	want := Rect{X0: 20, Y0: 0, X1: 50, Y1: 10}
	if !rectsEqual(rects[0], want, epsilon) {
		t.Errorf("rect = %v, want %v", rects[0], want)
	}
}

func TestSelectorAnnotationRects(t *testing.T) {
	// Display coordinates at 2x zoom; annotation rects come back in
	// document space with contiguous characters merged per line.
	chars := textLine("abcd", 0, 0, 20, 20, 0, 0)
	s := NewSelector()
	s.SetCharacters(chars)
	s.Start(0, 0)
	s.Update(80, 20)

	rects := s.AnnotationRects(2)
	if len(rects) != 1 {
		t.Fatalf("got rects for %d pages, want 1", len(rects))
	}
	page0 := rects[0]
	if len(page0) != 1 {
		t.Fatalf("got %d rects on page 0, want 1 merged", len(page0))
	}
	want := Rect{X0: 0, Y0: 0, X1: 40, Y1: 10}
	if !rectsEqual(page0[0], want, epsilon) {
		t.Errorf("rect = %v, want %v", page0[0], want)
	}
}

func TestSelectorAnnotationRectsTwoLines(t *testing.T) {
	var chars []Char
	chars = append(chars, textLine("ab", 0, 0, 10, 10, 0, 0)...)
	chars = append(chars, textLine("cd", 0, 20, 10, 10, 0, 0)...)

	s := NewSelector()
	s.SetCharacters(chars)
	s.Start(0, 0)
	s.Update(20, 30)

	page0 := s.AnnotationRects(1)[0]
	if len(page0) != 2 {
		t.Fatalf("got %d rects, want 2 (one per line)", len(page0))
	}
	want := []Rect{
		{X0: 0, Y0: 0, X1: 20, Y1: 10},
		{X0: 0, Y0: 20, X1: 20, Y1: 30},
	}
	for i := range want {
		if !rectsEqual(page0[i], want[i], epsilon) {
			t.Errorf("rect[%d] = %v, want %v", i, page0[i], want[i])
		}
	}
}

func TestSelectorLifecycle(t *testing.T) {
	chars := textLine("abc", 0, 0, 10, 10, 0, 0)

	var reported string
	s := NewSelector(WithChangeFunc(func(text string) { reported = text }))
	s.SetCharacters(chars)

	// Update before Start is a no-op.
	s.Update(100, 100)
	if s.IsSelecting() || len(s.Chars()) != 0 {
		t.Fatal("Update before Start changed state")
	}

	s.Start(0, 0)
	if !s.IsSelecting() {
		t.Fatal("not selecting after Start")
	}
	s.Update(30, 10)
	s.End()
	if s.IsSelecting() {
		t.Error("still selecting after End")
	}
	if reported != "abc" {
		t.Errorf("change callback got %q, want %q", reported, "abc")
	}

	// A second End must not re-fire the callback.
	reported = ""
	s.End()
	if reported != "" {
		t.Error("repeated End re-fired the change callback")
	}

	s.Clear()
	s.Clear()
	if len(s.Chars()) != 0 || s.Text() != "" {
		t.Error("Clear left selection state behind")
	}
}
