package text

import "github.com/gogpu/bookmark/geom"

// GlyphID is a glyph index within a font. 0 is .notdef, the glyph fonts
// use for missing characters.
type GlyphID uint16

// OutlinePoint represents a point in a glyph outline, in font units.
type OutlinePoint struct {
	X, Y float64
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// GlyphOutline is the vector outline of one glyph in font units with y
// pointing down. Contours are implicitly closed: every MoveTo starts a new
// one.
type GlyphOutline struct {
	Segments []OutlineSegment
	Advance  float64
	GID      GlyphID
}

// IsEmpty returns true if the outline has no segments (e.g. a space).
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Placement maps font units into document space: a point (x, y) lands at
// (OriginX + x*Scale, OriginY + y*Scale), rounded to Precision decimals.
type Placement struct {
	Scale     float64
	OriginX   float64
	OriginY   float64
	Precision int
}

func (pl Placement) apply(p OutlinePoint) (float64, float64) {
	return geom.RoundCoord(pl.OriginX+p.X*pl.Scale, pl.Precision),
		geom.RoundCoord(pl.OriginY+p.Y*pl.Scale, pl.Precision)
}

// AppendTo adds the placed outline to dst, closing every contour.
func (o *GlyphOutline) AppendTo(dst *geom.Path, pl Placement) {
	if o.IsEmpty() {
		return
	}
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if open {
				dst.Close()
			}
			x, y := pl.apply(seg.Points[0])
			dst.MoveTo(x, y)
			open = true
		case OutlineOpLineTo:
			x, y := pl.apply(seg.Points[0])
			dst.LineTo(x, y)
		case OutlineOpQuadTo:
			cx, cy := pl.apply(seg.Points[0])
			x, y := pl.apply(seg.Points[1])
			dst.QuadraticTo(cx, cy, x, y)
		case OutlineOpCubicTo:
			c1x, c1y := pl.apply(seg.Points[0])
			c2x, c2y := pl.apply(seg.Points[1])
			x, y := pl.apply(seg.Points[2])
			dst.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		dst.Close()
	}
}
