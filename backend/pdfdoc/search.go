package pdfdoc

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/pdfview"
)

// textLine is one reconstructed text line with byte-offset maps back to
// its characters. The folded form backs case-insensitive matching; the
// per-character fold keeps folded byte offsets aligned with character
// boundaries even where folding changes byte lengths.
type textLine struct {
	chars []pdfview.Char

	text   string
	folded string

	// offsets[i] is the byte offset of chars[i] in text;
	// offsets[len(chars)] is len(text). foldedOffsets likewise for
	// folded.
	offsets       []int
	foldedOffsets []int
}

// buildLines groups characters into text lines. A character starts a
// new line when its vertical position differs from the running line's
// by more than half the line height, the same rule the selection engine
// uses for text reconstruction.
func buildLines(chars []pdfview.Char) []textLine {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]pdfview.Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var groups [][]pdfview.Char
	var current []pdfview.Char
	lineY, lineH := sorted[0].Y, sorted[0].Height
	for _, c := range sorted {
		if len(current) > 0 && math.Abs(c.Y-lineY) > lineH*0.5 {
			groups = append(groups, current)
			current = nil
			lineY, lineH = c.Y, c.Height
		}
		current = append(current, c)
	}
	groups = append(groups, current)

	lines := make([]textLine, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool { return g[i].X < g[j].X })
		lines = append(lines, newTextLine(g))
	}
	return lines
}

func newTextLine(chars []pdfview.Char) textLine {
	l := textLine{
		chars:         chars,
		offsets:       make([]int, 0, len(chars)+1),
		foldedOffsets: make([]int, 0, len(chars)+1),
	}
	var text, folded strings.Builder
	for _, c := range chars {
		l.offsets = append(l.offsets, text.Len())
		l.foldedOffsets = append(l.foldedOffsets, folded.Len())
		text.WriteString(c.Text)
		folded.WriteString(strings.ToLower(c.Text))
	}
	l.offsets = append(l.offsets, text.Len())
	l.foldedOffsets = append(l.foldedOffsets, folded.Len())
	l.text = text.String()
	l.folded = folded.String()
	return l
}

// find returns the character index ranges of all non-overlapping
// occurrences of query in the line.
func (l textLine) find(query string, caseSensitive, wholeWord bool) [][2]int {
	hay := l.text
	offsets := l.offsets
	needle := query
	if !caseSensitive {
		hay = l.folded
		offsets = l.foldedOffsets
		needle = strings.ToLower(query)
	}

	var spans [][2]int
	for start := 0; start <= len(hay)-len(needle); {
		i := strings.Index(hay[start:], needle)
		if i < 0 {
			break
		}
		b0 := start + i
		b1 := b0 + len(needle)

		if wholeWord && !isWholeWord(hay, b0, b1) {
			start = b0 + 1
			continue
		}

		c0 := charIndexAt(offsets, b0)
		c1 := charIndexAt(offsets, b1-1) + 1
		spans = append(spans, [2]int{c0, c1})
		start = b1
	}
	return spans
}

// charIndexAt returns the index of the character covering byte offset b.
func charIndexAt(offsets []int, b int) int {
	// offsets has one entry per character plus the total length.
	return sort.Search(len(offsets)-1, func(i int) bool {
		return offsets[i+1] > b
	})
}

// isWholeWord reports whether the byte range [b0, b1) of s is delimited
// by non-word runes (or the string ends).
func isWholeWord(s string, b0, b1 int) bool {
	if b0 > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:b0])
		if isWordRune(r) {
			return false
		}
	}
	if b1 < len(s) {
		r, _ := utf8.DecodeRuneInString(s[b1:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
