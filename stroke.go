package pdfview

// PathElement represents a single element in a rendered stroke path.
// The overlay painter replays elements onto whatever canvas it targets.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// DefaultTension is the Catmull-Rom tension used for ink smoothing.
// 0.5 is the standard (centripetal-free) Catmull-Rom parameterization.
const DefaultTension = 0.5

// SmoothStroke converts a raw point list into a smooth path using
// Catmull-Rom splines expressed as cubic Beziers.
//
// Raw pointer samples are visually jagged at typical event rates; the
// spline passes exactly through every sample point while producing
// continuous tangents. For fewer than two points there is nothing to
// render and SmoothStroke returns nil; for exactly two points it returns
// a single straight segment.
func SmoothStroke(points []Point, tension float64) []PathElement {
	if len(points) < 2 {
		return nil
	}
	if len(points) == 2 {
		return []PathElement{
			MoveTo{Point: points[0]},
			LineTo{Point: points[1]},
		}
	}

	// Duplicate the first and last points so every original point gets a
	// spline segment ending on it.
	pts := make([]Point, 0, len(points)+2)
	pts = append(pts, points[0])
	pts = append(pts, points...)
	pts = append(pts, points[len(points)-1])

	elements := make([]PathElement, 0, len(points))
	elements = append(elements, MoveTo{Point: points[0]})

	for i := 1; i <= len(pts)-3; i++ {
		p0, p1, p2, p3 := pts[i-1], pts[i], pts[i+1], pts[i+2]

		cp1 := p1.Add(p2.Sub(p0).Mul(tension / 3))
		cp2 := p2.Sub(p3.Sub(p1).Mul(tension / 3))

		elements = append(elements, CubicTo{
			Control1: cp1,
			Control2: cp2,
			Point:    p2,
		})
	}

	return elements
}
