package geom

import "math"

// Path operations for area calculation, bounding boxes and flattening.

// Area returns the signed area enclosed by the path.
// Uses the shoelace formula extended for curves (Green's theorem).
// With y pointing down, clockwise contours on the page are positive.
// Open contours are treated as closed.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			area += lineArea(current, start)
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case QuadTo:
			area += quadArea(current, e.Control, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}
	area += lineArea(current, start)

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * p0.Cross(p1)
}

// quadArea integrates x*dy - y*dx over a quadratic Bezier.
func quadArea(p0, p1, p2 Point) float64 {
	return (2*p0.Cross(p1) + 2*p1.Cross(p2) + p0.Cross(p2)) / 6.0
}

// cubicArea integrates x*dy - y*dx over a cubic Bezier.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (6*p0.Cross(p1) + 3*p0.Cross(p2) + p0.Cross(p3) +
		3*p1.Cross(p2) + 3*p1.Cross(p3) + 6*p2.Cross(p3)) / 20.0
}

// BoundingBox returns an axis-aligned box containing the path.
// Control points are included, so the box may be slightly loose for curves.
func (p *Path) BoundingBox() Rect {
	if p.IsEmpty() {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
		case QuadTo:
			bbox = expandBBox(expandBBox(bbox, e.Control), e.Point)
		case CubicTo:
			bbox = expandBBox(expandBBox(expandBBox(bbox, e.Control1), e.Control2), e.Point)
		}
	}

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

// Contours flattens the path into closed polylines, one per contour.
// tolerance is the maximum distance from the curve; values <= 0 use
// FlattenTolerance. The closing vertex is not repeated.
func (p *Path) Contours(tolerance float64) [][]Point {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = FlattenTolerance
	}
	tolSq := tolerance * tolerance

	var contours [][]Point
	var contour []Point
	var current Point

	flush := func() {
		if len(contour) > 1 {
			contours = append(contours, contour)
		}
		contour = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			contour = append(contour, e.Point)
			current = e.Point
		case LineTo:
			if contour == nil {
				contour = append(contour, current)
			}
			contour = append(contour, e.Point)
			current = e.Point
		case QuadTo:
			if contour == nil {
				contour = append(contour, current)
			}
			contour = flattenQuad(QuadBez{P0: current, P1: e.Control, P2: e.Point}, tolSq, 0, contour)
			current = e.Point
		case CubicTo:
			if contour == nil {
				contour = append(contour, current)
			}
			contour = flattenCubic(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, tolSq, 0, contour)
			current = e.Point
		case Close:
			if len(contour) > 0 {
				current = contour[0]
			}
			flush()
		}
	}
	flush()

	return contours
}

// flattenQuad appends the end points of the flattened quadratic to dst.
func flattenQuad(q QuadBez, tolSq float64, depth int, dst []Point) []Point {
	if depth >= maxFlattenDepth || q.flatnessSq() <= tolSq {
		return append(dst, q.P2)
	}
	q1, q2 := q.Subdivide()
	dst = flattenQuad(q1, tolSq, depth+1, dst)
	return flattenQuad(q2, tolSq, depth+1, dst)
}

// flattenCubic appends the end points of the flattened cubic to dst.
func flattenCubic(c CubicBez, tolSq float64, depth int, dst []Point) []Point {
	if depth >= maxFlattenDepth || c.flatnessSq() <= 16*tolSq {
		return append(dst, c.P3)
	}
	c1, c2 := c.Subdivide()
	dst = flattenCubic(c1, tolSq, depth+1, dst)
	return flattenCubic(c2, tolSq, depth+1, dst)
}

// polygonArea returns the signed shoelace area of a closed polyline.
func polygonArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += pts[i].Cross(pts[(i+1)%n])
	}
	return sum / 2
}
