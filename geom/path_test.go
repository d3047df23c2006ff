package geom

import (
	"math"
	"testing"
)

func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantArea  float64
		tolerance float64
	}{
		{
			name: "unit square clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(1, 0)
				p.LineTo(1, 1)
				p.LineTo(0, 1)
				p.Close()
				return p
			},
			wantArea:  1.0,
			tolerance: 1e-9,
		},
		{
			name: "unit square counter-clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(0, 1)
				p.LineTo(1, 1)
				p.LineTo(1, 0)
				p.Close()
				return p
			},
			wantArea:  -1.0,
			tolerance: 1e-9,
		},
		{
			name: "open triangle",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(0, 0)
				p.LineTo(4, 0)
				p.LineTo(2, 3)
				return p
			},
			wantArea:  6,
			tolerance: 1e-9,
		},
		{
			name: "circle radius 1",
			buildPath: func() *Path {
				p := NewPath()
				p.Circle(0, 0, 1)
				return p
			},
			wantArea:  math.Pi,
			tolerance: 0.01,
		},
		{
			name:      "empty path",
			buildPath: NewPath,
			wantArea:  0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.buildPath().Area()
			if math.Abs(got-tt.wantArea) > tt.tolerance {
				t.Errorf("Area() = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

func TestPathContours(t *testing.T) {
	t.Run("rectangle", func(t *testing.T) {
		p := NewPath()
		p.Rectangle(1, 2, 3, 4)
		got := p.Contours(0)
		if len(got) != 1 {
			t.Fatalf("Contours() returned %d contours, want 1", len(got))
		}
		if len(got[0]) != 4 {
			t.Errorf("len(contour) = %d, want 4", len(got[0]))
		}
		if a := polygonArea(got[0]); math.Abs(a-12) > 1e-9 {
			t.Errorf("contour area = %v, want 12", a)
		}
	})

	t.Run("circle stays within tolerance", func(t *testing.T) {
		p := NewPath()
		p.Circle(5, 5, 2)
		tol := 0.01
		got := p.Contours(tol)
		if len(got) != 1 {
			t.Fatalf("Contours() returned %d contours, want 1", len(got))
		}
		for _, pt := range got[0] {
			d := pt.Distance(Pt(5, 5))
			// The cubic approximation itself deviates from the true circle
			// by about 0.027% of the radius.
			if math.Abs(d-2) > tol+2*0.0003 {
				t.Fatalf("vertex %v at distance %v, want 2", pt, d)
			}
		}
		if len(got[0]) < 16 {
			t.Errorf("len(contour) = %d, want a finer subdivision", len(got[0]))
		}
	})

	t.Run("two contours", func(t *testing.T) {
		p := NewPath()
		p.Rectangle(0, 0, 10, 10)
		p.Rectangle(2, 2, 6, 6)
		if got := len(p.Contours(0)); got != 2 {
			t.Errorf("Contours() returned %d contours, want 2", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := NewPath().Contours(0); got != nil {
			t.Errorf("Contours() = %v, want nil", got)
		}
	})
}

func TestRegularPolygon(t *testing.T) {
	p := NewPath()
	p.RegularPolygon(3, 0, 0, 1)
	c := p.Contours(0)
	if len(c) != 1 || len(c[0]) != 3 {
		t.Fatalf("Contours() = %v, want one triangle", c)
	}
	apex := c[0][0]
	if math.Abs(apex.X) > 1e-12 || math.Abs(apex.Y+1) > 1e-12 {
		t.Errorf("apex = %v, want (0,-1)", apex)
	}
	want := 3 * math.Sqrt(3) / 4
	if got := math.Abs(p.Area()); math.Abs(got-want) > 1e-9 {
		t.Errorf("|Area()| = %v, want %v", got, want)
	}

	empty := NewPath()
	empty.RegularPolygon(2, 0, 0, 1)
	if !empty.IsEmpty() {
		t.Error("RegularPolygon(2, ...) added elements")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(-1, -1, 2, 2)

	rotated := p.Transform(RotateAbout(math.Pi/4, Pt(0, 0)))
	if got := rotated.Area(); math.Abs(got-4) > 1e-9 {
		t.Errorf("rotated Area() = %v, want 4", got)
	}
	b := rotated.BoundingBox()
	if math.Abs(b.Max.X-math.Sqrt2) > 1e-9 {
		t.Errorf("rotated BoundingBox().Max.X = %v, want %v", b.Max.X, math.Sqrt2)
	}

	moved := p.Transform(Translate(10, 20))
	if c := moved.BoundingBox().Center(); c != Pt(10, 20) {
		t.Errorf("translated center = %v, want (10,20)", c)
	}
	if p.BoundingBox().Center() != Pt(0, 0) {
		t.Error("Transform mutated the receiver")
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	c := p.Clone()
	c.LineTo(5, 5)
	if len(p.Elements()) != 5 {
		t.Errorf("original has %d elements after clone mutation, want 5", len(p.Elements()))
	}
}
