package content

import (
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/gogpu/bookmark/geom"
	"github.com/gogpu/bookmark/rng"
)

// Kind identifies a shape in shape mode.
type Kind int

// Shape kinds in generation order.
const (
	KindCircle Kind = iota
	KindRect
	KindSmallRect
	KindTriangle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindSmallRect:
		return "small-rect"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Noise channels. Each shape field samples its own channel so fields of
// one shape vary independently.
const (
	channelX     = 1
	channelY     = 2
	channelAngle = 3
	channelSize  = 4
)

// Fixed offsets of the warp sample.
const (
	warpOffsetX = 12.3
	warpOffsetY = 45.6
)

// Range is a closed interval used to map noise values.
type Range struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// Lerp maps t in [0,1] into the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// ShapeParams controls the noise field and the shape sizes.
type ShapeParams struct {
	Freq          float64 `toml:"freq"`
	Warp          float64 `toml:"warp"`
	ChannelSpread float64 `toml:"channel_spread"`
	AngleMin      float64 `toml:"angle_min"`
	AngleMax      float64 `toml:"angle_max"`

	CircleRadius  Range `toml:"circle_radius"`
	RectSize      Range `toml:"rect_size"`
	SmallRectSize Range `toml:"small_rect_size"`
	TriangleSize  Range `toml:"triangle_radius"`

	// Sample coordinates along the noise field, one per kind.
	TCircle    float64 `toml:"t_circle"`
	TRect      float64 `toml:"t_rect"`
	TSmallRect float64 `toml:"t_small_rect"`
	TTriangle  float64 `toml:"t_triangle"`
}

// DefaultShapeParams returns the settings of the organic shape sketch.
func DefaultShapeParams() ShapeParams {
	return ShapeParams{
		Freq:          0.5,
		Warp:          1,
		ChannelSpread: 1000,
		AngleMin:      -180,
		AngleMax:      180,
		CircleRadius:  Range{Min: 10, Max: 30},
		RectSize:      Range{Min: 40, Max: 50},
		SmallRectSize: Range{Min: 10, Max: 15},
		TriangleSize:  Range{Min: 30, Max: 40},
		TCircle:       0,
		TRect:         50,
		TSmallRect:    100,
		TTriangle:     150,
	}
}

// Validate reports the first invalid field.
func (p ShapeParams) Validate() error {
	switch {
	case !finite(p.Freq, p.Warp, p.ChannelSpread, p.AngleMin, p.AngleMax,
		p.TCircle, p.TRect, p.TSmallRect, p.TTriangle):
		return fmt.Errorf("content: shape parameters must be finite")
	case p.AngleMax < p.AngleMin:
		return fmt.Errorf("content: angle_max %v < angle_min %v", p.AngleMax, p.AngleMin)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"circle_radius", p.CircleRadius},
		{"rect_size", p.RectSize},
		{"small_rect_size", p.SmallRectSize},
		{"triangle_radius", p.TriangleSize},
	} {
		if !finite(r.r.Min, r.r.Max) || r.r.Min <= 0 || r.r.Max < r.r.Min {
			return fmt.Errorf("content: %s must satisfy 0 < min <= max, got [%v, %v]", r.name, r.r.Min, r.r.Max)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Shape describes one placed shape. Size is the radius for circles, the
// side length for squares and the circumradius for triangles.
type Shape struct {
	Kind     Kind
	Center   geom.Point
	Size     float64
	Rotation float64 // degrees, clockwise on the page
}

// Path builds the shape geometry, rotated about its center.
func (s Shape) Path() *geom.Path {
	p := geom.NewPath()
	c := s.Center
	switch s.Kind {
	case KindCircle:
		p.Circle(c.X, c.Y, s.Size)
	case KindRect, KindSmallRect:
		p.Rectangle(c.X-s.Size/2, c.Y-s.Size/2, s.Size, s.Size)
	case KindTriangle:
		p.RegularPolygon(3, c.X, c.Y, s.Size)
	}
	if s.Rotation == 0 {
		return p
	}
	return p.Transform(geom.RotateAbout(s.Rotation*math.Pi/180, c))
}

// Field is a domain-warped coherent noise field.
type Field struct {
	noise  opensimplex.Noise
	freq   float64
	warp   float64
	spread float64
}

// NewField builds a field whose noise is seeded by two draws from s.
func NewField(s *rng.Stream, p ShapeParams) *Field {
	hi := int64(s.Uint32())
	lo := int64(s.Uint32())
	return &Field{
		noise:  opensimplex.NewNormalized(hi<<32 | lo),
		freq:   p.Freq,
		warp:   p.Warp,
		spread: p.ChannelSpread,
	}
}

// Sample returns the warped noise value at position t on channel ch,
// clamped to [0,1].
func (f *Field) Sample(t float64, ch int) float64 {
	x := t * f.freq
	y := float64(ch) * f.spread
	w := f.noise.Eval2(x+warpOffsetX, y+warpOffsetY)*2 - 1
	v := f.noise.Eval2(x+w*f.warp, y+w*f.warp)
	return math.Max(0, math.Min(1, v))
}

func (f *Field) between(t float64, r Range, ch int) float64 {
	return r.Lerp(f.Sample(t, ch))
}

// Shapes returns the four shapes in kind order, placed inside frame.
func Shapes(s *rng.Stream, p ShapeParams, frame geom.Rect) []Shape {
	f := NewField(s, p)
	xs := Range{Min: frame.Min.X, Max: frame.Max.X}
	ys := Range{Min: frame.Min.Y, Max: frame.Max.Y}
	angles := Range{Min: p.AngleMin, Max: p.AngleMax}

	specs := []struct {
		kind Kind
		t    float64
		size Range
	}{
		{KindCircle, p.TCircle, p.CircleRadius},
		{KindRect, p.TRect, p.RectSize},
		{KindSmallRect, p.TSmallRect, p.SmallRectSize},
		{KindTriangle, p.TTriangle, p.TriangleSize},
	}

	shapes := make([]Shape, 0, len(specs))
	for _, sp := range specs {
		shapes = append(shapes, Shape{
			Kind: sp.kind,
			Center: geom.Pt(
				f.between(sp.t, xs, channelX),
				f.between(sp.t, ys, channelY),
			),
			Size:     f.between(sp.t, sp.size, channelSize),
			Rotation: f.between(sp.t, angles, channelAngle),
		})
	}
	return shapes
}
