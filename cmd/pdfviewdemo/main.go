// Command pdfviewdemo exercises the pdfview interaction engines and
// renders their overlay state to a PNG. With -input it runs against a
// real PDF page; without it a synthetic text layout is used, so the
// overlay pipeline can be demonstrated standalone.
package main

import (
	"flag"
	"log"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/pdfview"
	"github.com/gogpu/pdfview/backend/pdfdoc"
	"github.com/gogpu/pdfview/overlay"
)

func main() {
	var (
		input  = flag.String("input", "", "PDF file to open (optional)")
		page   = flag.Int("page", 0, "page index")
		scale  = flag.Float64("scale", 1.5, "display scale")
		query  = flag.String("query", "", "search query to highlight")
		output = flag.String("output", "overlay.png", "output file")
	)
	flag.Parse()

	var (
		doc    pdfview.DocumentBackend
		chars  []pdfview.Char
		width  = 595.0
		height = 842.0
	)

	if *input != "" {
		d, err := pdfdoc.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open: %v", err)
		}
		defer d.Close()

		pg, err := d.Page(*page)
		if err != nil {
			log.Fatalf("Failed to load page %d: %v", *page, err)
		}
		chars, err = pg.ExtractChars()
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}
		if p, ok := pg.(*pdfdoc.Page); ok {
			width, height = p.Size()
		}
		doc = d
	} else {
		chars = syntheticChars()
	}

	c := pdfview.NewController(doc, pdfview.WithScale(*scale))
	c.SetCurrentPage(*page)
	c.SetCharacters(pdfview.ScaleChars(chars, *scale, 0, 0))

	w := int(width * *scale)
	h := int(height * *scale)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	_ = dc.Fill()

	p := overlay.New()

	// Select a band across the upper part of the page.
	c.PointerDown(40**scale, 60**scale)
	c.PointerMove(float64(w)-40**scale, 120**scale)
	if err := c.PointerUp(); err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	p.DrawSelection(dc, c.Selector())
	if text := c.SelectedText(); text != "" {
		preview := text
		if len(preview) > 60 {
			preview = preview[:60] + "..."
		}
		log.Printf("Selected: %s", strings.ReplaceAll(preview, "\n", " / "))
	}

	// Freehand ink stroke.
	c.EnableDrawing(pdfview.RGB(0.9, 0.1, 0.1), 4)
	c.PointerDown(60**scale, 300**scale)
	for i := 1; i <= 20; i++ {
		t := float64(i) / 20
		x := 60 + t*300
		y := 300 + 40*wave(t*4)
		c.PointerMove(x**scale, y**scale)
	}
	p.DrawInk(dc, c.Drawing())
	if err := c.PointerUp(); err != nil {
		log.Fatalf("Ink commit failed: %v", err)
	}

	// Arrow shape preview.
	c.EnableShape(pdfview.ShapeArrow, pdfview.RGB(0.1, 0.3, 0.9), nil, 3)
	c.PointerDown(80**scale, 500**scale)
	c.PointerMove(320**scale, 420**scale)
	p.DrawShapePreview(dc, c.Shapes())
	if err := c.PointerUp(); err != nil {
		log.Fatalf("Shape commit failed: %v", err)
	}

	// Search highlights.
	if *query != "" && doc != nil {
		results := c.Search(*query)
		log.Printf("Search %q: %d results", *query, len(results))
		p.DrawSearchResults(dc, c.Navigator(), *scale, nil)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Overlay saved to %s (%dx%d)", *output, w, h)
}

func wave(t float64) float64 {
	return math.Sin(t * 2 * math.Pi)
}

// syntheticChars lays out a few lines of placeholder text so the demo
// works without an input document.
func syntheticChars() []pdfview.Char {
	var chars []pdfview.Char
	lines := []string{
		"Lorem ipsum dolor sit amet consectetur",
		"adipiscing elit sed do eiusmod tempor",
		"incididunt ut labore et dolore magna",
		"aliqua ut enim ad minim veniam quis",
	}
	const (
		charW = 12.0
		charH = 16.0
		left  = 40.0
		top   = 60.0
		pitch = 24.0
	)
	for li, line := range lines {
		for i, r := range line {
			if r == ' ' {
				continue
			}
			chars = append(chars, pdfview.Char{
				Text:   string(r),
				X:      left + float64(i)*charW,
				Y:      top + float64(li)*pitch,
				Width:  charW,
				Height: charH,
			})
		}
	}
	return chars
}
