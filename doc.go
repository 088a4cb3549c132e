// Package pdfview provides the interaction geometry engine for an
// embeddable PDF viewer widget.
//
// # Overview
//
// pdfview sits between a PDF document backend (which extracts positioned
// characters and search matches) and a GUI-toolkit canvas (which paints
// overlays). It owns no parsing and no pixels; it turns raw pointer events
// and a flat list of glyph rectangles into selection ranges, merged
// highlight regions, freehand ink strokes, shape previews, and ordered
// search navigation.
//
// Four engines cooperate, each a small synchronous state machine:
//
//   - [Selector]: drag-rectangle hit testing over positioned characters,
//     line grouping, multi-line extension, text reconstruction, and
//     highlight/annotation rectangle merging.
//   - [Drawing]: freehand ink capture with distance-based point thinning
//     and Catmull-Rom smoothing (see [SmoothStroke]).
//   - [ShapeTool]: preview-then-commit drawing of rectangles, circles,
//     lines, arrows, and text boxes.
//   - [SearchNavigator]: document-wide result ordering with wraparound
//     next/prev navigation.
//
// A [Controller] routes each pointer event to exactly one engine based on
// the current mode and forwards committed results to a [PageBackend].
//
// # Quick Start
//
//	sel := pdfview.NewSelector()
//	sel.SetCharacters(chars) // from the layout collaborator
//	sel.Start(5, 0)
//	sel.Update(35, 10)
//	sel.End()
//	text := sel.Text()
//	rects := sel.HighlightRects()
//
// # Coordinate System
//
// All engine inputs share one coordinate space: display units with the
// origin at the top-left, X increasing right and Y increasing down.
// Characters carry per-page offsets that place each page within the
// composite scrollable surface. AnnotationRects and ScaledStroke divide by
// the display scale to return document-space geometry.
//
// # Concurrency
//
// The engines are single-threaded and non-blocking; they perform no I/O
// and own no goroutines. The caller's event loop drives them. The only
// package-level state is the logger configured via [SetLogger].
package pdfview
