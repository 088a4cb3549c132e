package pdfview

import "fmt"

// Color is an opaque RGB color with components in the range [0, 1].
// Annotation and stroke colors travel through the engines unchanged; only
// the overlay painter and the document backend interpret them.
type Color struct {
	R, G, B float64
}

// RGB creates a color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#rrggbb" string for overlay toolkits that
// take hex color values.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(clamp255(c.R*255)),
		uint8(clamp255(c.G*255)),
		uint8(clamp255(c.B*255)))
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Default annotation colors, matching common PDF viewer conventions.
var (
	ColorHighlight     = Color{R: 1.0, G: 0.92, B: 0.23}
	ColorUnderline     = Color{R: 0.38, G: 0.65, B: 0.98}
	ColorStrikethrough = Color{R: 0.97, G: 0.44, B: 0.44}
	ColorSquiggly      = Color{R: 0.0, G: 0.8, B: 0.0}
)
