package pdfview

// Defaults for the selection engine's geometry constants. Both assume
// text rendered at typical sizes; at extreme zoom scales callers should
// derive them from the current scale instead (see [WithLineQuantum]).
const (
	// DefaultLineQuantum is the height in display units of one vertical
	// band used to group characters into text lines.
	DefaultLineQuantum = 10.0

	// DefaultEdgeTolerance absorbs the rounding introduced by line
	// quantization when extending a selection to line boundaries.
	DefaultEdgeTolerance = 1.0

	// DefaultMinDistance is the minimum spacing between recorded ink
	// points, in display units.
	DefaultMinDistance = 5.0
)

// SelectorOption configures a Selector during creation.
type SelectorOption func(*Selector)

// WithLineQuantum sets the vertical quantization band used to group
// characters into lines. Selection tests at line boundaries are sensitive
// to this value: all collaborators that bucket characters by line must
// use the same quantum. Scale the quantum together with the display scale
// when zooming far from 100%.
func WithLineQuantum(q float64) SelectorOption {
	return func(s *Selector) {
		if q > 0 {
			s.quantum = q
		}
	}
}

// WithEdgeTolerance sets the tolerance, in display units, applied when
// comparing character positions against selection line boundaries.
func WithEdgeTolerance(tol float64) SelectorOption {
	return func(s *Selector) {
		if tol >= 0 {
			s.tol = tol
		}
	}
}

// WithChangeFunc sets a callback invoked from End when the frozen
// selection is non-empty. The callback receives the reconstructed text.
func WithChangeFunc(fn func(text string)) SelectorOption {
	return func(s *Selector) {
		s.onChange = fn
	}
}

// ControllerOption configures a Controller during creation.
type ControllerOption func(*Controller)

// WithSelector uses a pre-configured selection engine instead of the
// default one. Use this to set a custom line quantum or change callback.
func WithSelector(sel *Selector) ControllerOption {
	return func(c *Controller) {
		if sel != nil {
			c.sel = sel
		}
	}
}

// WithScale sets the initial display scale. The default is 1.
func WithScale(scale float64) ControllerOption {
	return func(c *Controller) {
		if scale > 0 {
			c.scale = scale
		}
	}
}
