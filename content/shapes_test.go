package content

import (
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/bookmark/geom"
	"github.com/gogpu/bookmark/rng"
)

var testFrame = geom.NewRect(geom.Pt(2, 2), geom.Pt(46, 146))

func TestShapesWithinRanges(t *testing.T) {
	p := DefaultShapeParams()
	for _, seed := range []string{"abc123", "shapes", "K7mXq2Pz9BcDeF"} {
		shapes := Shapes(rng.New(seed), p, testFrame)
		if len(shapes) != 4 {
			t.Fatalf("Shapes() returned %d shapes, want 4", len(shapes))
		}
		sizes := map[Kind]Range{
			KindCircle:    p.CircleRadius,
			KindRect:      p.RectSize,
			KindSmallRect: p.SmallRectSize,
			KindTriangle:  p.TriangleSize,
		}
		for i, s := range shapes {
			if s.Kind != Kind(i) {
				t.Errorf("shape %d kind = %v, want %v", i, s.Kind, Kind(i))
			}
			if !testFrame.Contains(s.Center) {
				t.Errorf("%v center %v outside frame", s.Kind, s.Center)
			}
			r := sizes[s.Kind]
			if s.Size < r.Min || s.Size > r.Max {
				t.Errorf("%v size %v outside [%v, %v]", s.Kind, s.Size, r.Min, r.Max)
			}
			if s.Rotation < p.AngleMin || s.Rotation > p.AngleMax {
				t.Errorf("%v rotation %v outside [%v, %v]", s.Kind, s.Rotation, p.AngleMin, p.AngleMax)
			}
		}
	}
}

func TestShapesDeterministic(t *testing.T) {
	p := DefaultShapeParams()
	a := Shapes(rng.New("same"), p, testFrame)
	b := Shapes(rng.New("same"), p, testFrame)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced %v and %v", a, b)
	}
	c := Shapes(rng.New("other"), p, testFrame)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical shapes")
	}
}

func TestFieldSampleClamped(t *testing.T) {
	p := DefaultShapeParams()
	p.Warp = 25
	f := NewField(rng.New("field"), p)
	for i := 0; i < 500; i++ {
		v := f.Sample(float64(i)*0.37, 1+i%4)
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("Sample() = %v, want [0,1]", v)
		}
	}
}

func TestShapePath(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		wantArea float64
		tol      float64
	}{
		{"circle", Shape{Kind: KindCircle, Center: geom.Pt(10, 10), Size: 2}, math.Pi * 4, 0.01},
		{"rect", Shape{Kind: KindRect, Center: geom.Pt(0, 0), Size: 4, Rotation: 30}, 16, 1e-9},
		{"small rect", Shape{Kind: KindSmallRect, Center: geom.Pt(5, 5), Size: 1}, 1, 1e-9},
		{"triangle", Shape{Kind: KindTriangle, Center: geom.Pt(0, 0), Size: 2, Rotation: -45}, 3 * math.Sqrt(3), 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.shape.Path()
			if got := math.Abs(p.Area()); math.Abs(got-tt.wantArea) > tt.tol {
				t.Errorf("|Area()| = %v, want %v", got, tt.wantArea)
			}
			c := p.BoundingBox().Center()
			if tt.shape.Kind != KindTriangle && c.Distance(tt.shape.Center) > 1e-9 {
				t.Errorf("center = %v, want %v", c, tt.shape.Center)
			}
		})
	}
}

func TestShapeRotationAboutCenter(t *testing.T) {
	s := Shape{Kind: KindRect, Center: geom.Pt(10, 20), Size: 2, Rotation: 45}
	b := s.Path().BoundingBox()
	want := math.Sqrt2
	if math.Abs(b.Width()-2*want) > 1e-9 || math.Abs(b.Height()-2*want) > 1e-9 {
		t.Errorf("rotated bounds = %v, want %vx%v", b, 2*want, 2*want)
	}
}

func TestShapeParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *ShapeParams)
		wantErr bool
	}{
		{"defaults", func(*ShapeParams) {}, false},
		{"reversed angles", func(p *ShapeParams) { p.AngleMin, p.AngleMax = 10, -10 }, true},
		{"zero size", func(p *ShapeParams) { p.RectSize.Min = 0 }, true},
		{"reversed size", func(p *ShapeParams) { p.CircleRadius = Range{Min: 5, Max: 1} }, true},
		{"nan freq", func(p *ShapeParams) { p.Freq = math.NaN() }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultShapeParams()
			tt.modify(&p)
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindSmallRect.String(); got != "small-rect" {
		t.Errorf("String() = %q, want small-rect", got)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("String() = %q, want Kind(9)", got)
	}
}
