package geom

import (
	"math"
	"sort"

	polyclip "github.com/ctessum/polyclip-go"
)

// Outline is a filled polygonal region made of one or more closed contours.
// Contours never cross each other. A point is inside when it is enclosed by
// an odd number of contours.
//
// A nil *Outline is the empty region. Operations never mutate their
// receivers or arguments.
type Outline struct {
	poly polyclip.Polygon
}

// NewOutline flattens p with FlattenTolerance and returns its region under
// the even-odd rule. Crossing contours are split at their intersections.
// Returns nil when the path has nothing fillable.
func NewOutline(p *Path) *Outline {
	rings := flattenRings(p)
	if len(rings) == 0 {
		return nil
	}
	poly := make(polyclip.Polygon, len(rings))
	for i, r := range rings {
		poly[i] = r.contour
	}
	return newOutline(poly.MakeValid())
}

// NewNonZeroOutline flattens p and returns its region under the non-zero
// rule, the rule TrueType and CFF glyphs are drawn with.
//
// Contours are applied from the largest to the smallest. A contour wound
// like the largest one adds its area and a contour wound the other way cuts
// it out. Overlapping strokes, counters and islands inside counters come
// out as they would under non-zero fill; a counter that pokes out of its
// outer contour only removes ink.
func NewNonZeroOutline(p *Path) *Outline {
	rings := flattenRings(p)
	if len(rings) == 0 {
		return nil
	}
	sort.SliceStable(rings, func(i, j int) bool {
		return math.Abs(rings[i].area) > math.Abs(rings[j].area)
	})
	outer := math.Signbit(rings[0].area)

	var acc *Outline
	for _, r := range rings {
		o := newOutline(polyclip.Polygon{r.contour}.MakeValid())
		if math.Signbit(r.area) == outer {
			acc = acc.Union(o)
		} else {
			acc = acc.Difference(o)
		}
	}
	return acc
}

// ring is a sanitized flattened contour with its signed area.
type ring struct {
	contour polyclip.Contour
	area    float64
}

func flattenRings(p *Path) []ring {
	if p.IsEmpty() {
		return nil
	}
	contours := p.Contours(FlattenTolerance)
	rings := make([]ring, 0, len(contours))
	for _, c := range contours {
		contour := make(polyclip.Contour, len(c))
		for i, pt := range c {
			contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
		}
		if contour = sanitizeContour(contour); contour == nil {
			continue
		}
		rings = append(rings, ring{contour: contour, area: contourArea(contour)})
	}
	return rings
}

// RectOutline returns the region covered by r, or nil for an empty rect.
func RectOutline(r Rect) *Outline {
	if r.Empty() {
		return nil
	}
	return &Outline{poly: polyclip.Polygon{{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}}}
}

// IsEmpty reports whether the outline covers nothing.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.poly) == 0
}

// Union returns the region covered by o or other.
func (o *Outline) Union(other *Outline) *Outline {
	switch {
	case o.IsEmpty():
		return other.clone()
	case other.IsEmpty():
		return o.clone()
	}
	return newOutline(o.poly.Construct(polyclip.UNION, other.poly))
}

// Difference returns the region covered by o but not by other.
func (o *Outline) Difference(other *Outline) *Outline {
	switch {
	case o.IsEmpty():
		return nil
	case other.IsEmpty():
		return o.clone()
	}
	return newOutline(o.poly.Construct(polyclip.DIFFERENCE, other.poly))
}

// Intersect returns the region covered by both o and other.
func (o *Outline) Intersect(other *Outline) *Outline {
	if o.IsEmpty() || other.IsEmpty() {
		return nil
	}
	return newOutline(o.poly.Construct(polyclip.INTERSECTION, other.poly))
}

// IntersectRect clips o to r. When r contains the whole outline the
// result is an unchanged copy.
func (o *Outline) IntersectRect(r Rect) *Outline {
	if o.IsEmpty() || r.Empty() {
		return nil
	}
	b := o.Bounds()
	if r.ContainsRect(b) {
		return o.clone()
	}
	if !r.Intersects(b) {
		return nil
	}
	return o.Intersect(RectOutline(r))
}

// Contours returns a copy of the outline's contours.
func (o *Outline) Contours() [][]Point {
	if o.IsEmpty() {
		return nil
	}
	out := make([][]Point, len(o.poly))
	for i, c := range o.poly {
		pts := make([]Point, len(c))
		for j, p := range c {
			pts[j] = Point{X: p.X, Y: p.Y}
		}
		out[i] = pts
	}
	return out
}

// Len returns the number of contours.
func (o *Outline) Len() int {
	if o == nil {
		return 0
	}
	return len(o.poly)
}

// Bounds returns the bounding box of all contours.
func (o *Outline) Bounds() Rect {
	if o.IsEmpty() {
		return Rect{}
	}
	b := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, c := range o.poly {
		for _, p := range c {
			b.Min.X = math.Min(b.Min.X, p.X)
			b.Min.Y = math.Min(b.Min.Y, p.Y)
			b.Max.X = math.Max(b.Max.X, p.X)
			b.Max.Y = math.Max(b.Max.Y, p.Y)
		}
	}
	return b
}

// Area returns the filled area under the even-odd rule. Contours nested at
// an odd depth are holes and subtract from the total.
func (o *Outline) Area() float64 {
	if o.IsEmpty() {
		return 0
	}
	contours := o.Contours()
	var total float64
	for i, c := range contours {
		a := math.Abs(polygonArea(c))
		inner, ok := interiorPoint(c)
		if !ok {
			continue
		}
		depth := 0
		for j, other := range contours {
			if i != j && containsPoint(other, inner) {
				depth++
			}
		}
		if depth%2 == 0 {
			total += a
		} else {
			total -= a
		}
	}
	return total
}

func (o *Outline) clone() *Outline {
	if o.IsEmpty() {
		return nil
	}
	poly := make(polyclip.Polygon, len(o.poly))
	for i, c := range o.poly {
		poly[i] = append(polyclip.Contour(nil), c...)
	}
	return &Outline{poly: poly}
}

// newOutline sanitizes a boolean-operation result. Non-finite vertices,
// repeated vertices, contours with fewer than three points and slivers
// below AreaEpsilon are dropped.
func newOutline(poly polyclip.Polygon) *Outline {
	clean := make(polyclip.Polygon, 0, len(poly))
	for _, c := range poly {
		if c = sanitizeContour(c); c != nil {
			clean = append(clean, c)
		}
	}
	if len(clean) == 0 {
		return nil
	}
	return &Outline{poly: clean}
}

func sanitizeContour(c polyclip.Contour) polyclip.Contour {
	out := make(polyclip.Contour, 0, len(c))
	for _, p := range c {
		if !Pt(p.X, p.Y).IsFinite() {
			continue
		}
		if n := len(out); n > 0 && samePoint(out[n-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}
	if math.Abs(contourArea(out)) < AreaEpsilon {
		return nil
	}
	return out
}

func contourArea(c polyclip.Contour) float64 {
	pts := make([]Point, len(c))
	for i, p := range c {
		pts[i] = Point{X: p.X, Y: p.Y}
	}
	return polygonArea(pts)
}

func samePoint(a, b polyclip.Point) bool {
	return math.Abs(a.X-b.X) <= PointEpsilon && math.Abs(a.Y-b.Y) <= PointEpsilon
}

// interiorPoint returns a point just inside contour c, next to the midpoint
// of its first non-degenerate edge.
func interiorPoint(c []Point) (Point, bool) {
	sign := 1.0
	if polygonArea(c) < 0 {
		sign = -1
	}
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		d := b.Sub(a)
		l := d.Length()
		if l <= PointEpsilon {
			continue
		}
		// Positive area puts the interior on the (-dy, dx) side.
		n := Point{X: -d.Y / l, Y: d.X / l}.Mul(sign)
		off := math.Min(l*1e-3, 1e-4)
		return a.Lerp(b, 0.5).Add(n.Mul(off)), true
	}
	return Point{}, false
}

// containsPoint reports whether pt is inside the polygon c (even-odd).
func containsPoint(c []Point, pt Point) bool {
	inside := false
	n := len(c)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := c[i], c[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
