package pdfview

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

func rectsEqual(r, s Rect, eps float64) bool {
	return math.Abs(r.X0-s.X0) < eps && math.Abs(r.Y0-s.Y0) < eps &&
		math.Abs(r.X1-s.X1) < eps && math.Abs(r.Y1-s.Y1) < eps
}

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want Rect
	}{
		{
			name: "normal order",
			p:    Pt(0, 0), q: Pt(10, 10),
			want: Rect{X0: 0, Y0: 0, X1: 10, Y1: 10},
		},
		{
			name: "reversed order",
			p:    Pt(10, 10), q: Pt(0, 0),
			want: Rect{X0: 0, Y0: 0, X1: 10, Y1: 10},
		},
		{
			name: "mixed corners",
			p:    Pt(5, 0), q: Pt(0, 5),
			want: Rect{X0: 0, Y0: 0, X1: 5, Y1: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectFromPoints(tt.p, tt.q)
			if !rectsEqual(got, tt.want, epsilon) {
				t.Errorf("RectFromPoints(%v, %v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X0: 5, Y0: 5, X1: 15, Y1: 15}, true},
		{"contained", Rect{X0: 2, Y0: 2, X1: 8, Y1: 8}, true},
		{"disjoint", Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}, false},
		// The intersection test is open: touching edges do not count.
		{"touching right edge", Rect{X0: 10, Y0: 0, X1: 20, Y1: 10}, false},
		{"touching bottom edge", Rect{X0: 0, Y0: 10, X1: 10, Y1: 20}, false},
		{"one unit overlap", Rect{X0: 9, Y0: 9, X1: 19, Y1: 19}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectScaled(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 30, Y1: 40}
	got := r.Scaled(2)
	want := Rect{X0: 5, Y0: 10, X1: 15, Y1: 20}
	if !rectsEqual(got, want, epsilon) {
		t.Errorf("Scaled(2) = %v, want %v", got, want)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 5, Y1: 5}
	b := Rect{X0: 3, Y0: -2, X1: 10, Y1: 4}
	want := Rect{X0: 0, Y0: -2, X1: 10, Y1: 5}
	if got := a.Union(b); !rectsEqual(got, want, epsilon) {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestCharLineKey(t *testing.T) {
	tests := []struct {
		name    string
		y       float64
		offsetY float64
		quantum float64
		want    int
	}{
		{"origin", 0, 0, 10, 0},
		{"jitter within band", 3, 0, 10, 0},
		{"next band", 17, 0, 10, 2},
		{"offset included", 3, 20, 10, 2},
		{"fine quantum", 4, 0, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Char{Y: tt.y, PageOffsetY: tt.offsetY}
			if got := c.lineKey(tt.quantum); got != tt.want {
				t.Errorf("lineKey(%v) = %d, want %d", tt.quantum, got, tt.want)
			}
		})
	}
}

func TestScaleChars(t *testing.T) {
	chars := []Char{{Text: "a", X: 10, Y: 20, Width: 5, Height: 8}}
	got := ScaleChars(chars, 2, 100, 50)

	want := Char{Text: "a", X: 20, Y: 40, Width: 10, Height: 16, PageOffsetX: 100, PageOffsetY: 50}
	if got[0] != want {
		t.Errorf("ScaleChars = %+v, want %+v", got[0], want)
	}
	// The input must not be mutated.
	if chars[0].X != 10 {
		t.Errorf("ScaleChars mutated input: %+v", chars[0])
	}
}
