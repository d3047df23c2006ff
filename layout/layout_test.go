package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/gogpu/bookmark/text"
)

var testMetrics = text.VerticalMetrics{Ascender: 800, Descender: -200, UnitsPerEm: 1000}

func bookmarkEngine() Engine {
	return Engine{
		Metrics:    testMetrics,
		FontSize:   3,
		LineFactor: 1.2,
		Left:       2,
		Top:        2,
		Limit:      164 - 18,
	}
}

func lines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %d", i)
	}
	return out
}

func TestEngineMetrics(t *testing.T) {
	e := bookmarkEngine()
	if got := e.LineHeight(); math.Abs(got-3.6) > 1e-12 {
		t.Errorf("LineHeight() = %v, want 3.6", got)
	}
	if got := e.FirstBaseline(); math.Abs(got-4.4) > 1e-12 {
		t.Errorf("FirstBaseline() = %v, want 4.4", got)
	}
	if got := e.Descent(); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Descent() = %v, want 0.6", got)
	}
}

func TestPlaceAllFit(t *testing.T) {
	e := bookmarkEngine()
	got := e.Place(lines(5))
	if len(got) != 5 {
		t.Fatalf("Place() placed %d lines, want 5", len(got))
	}
	for i, p := range got {
		if p.Index != i || p.Text != fmt.Sprintf("line %d", i) {
			t.Errorf("placement %d = %+v", i, p)
		}
		if p.X != 2 {
			t.Errorf("placement %d X = %v, want 2", i, p.X)
		}
		want := 4.4 + float64(i)*3.6
		if math.Abs(p.Y-want) > 1e-9 {
			t.Errorf("placement %d Y = %v, want %v", i, p.Y, want)
		}
	}
}

func TestPlaceTruncates(t *testing.T) {
	e := bookmarkEngine()
	// Baselines 4.4 + 3.6k; the descender (0.6) must stay <= 146, so
	// k <= 39.17 and 40 lines fit.
	if got := e.Capacity(); got != 40 {
		t.Fatalf("Capacity() = %d, want 40", got)
	}

	for _, n := range []int{39, 40, 41, 56, 400} {
		got := e.Place(lines(n))
		want := min(n, 40)
		if len(got) != want {
			t.Errorf("Place(%d lines) placed %d, want %d", n, len(got), want)
			continue
		}
		last := got[len(got)-1]
		if last.Y+e.Descent() > e.Limit {
			t.Errorf("last descender %v crosses limit %v", last.Y+e.Descent(), e.Limit)
		}
		if n > want && e.Baseline(want)+e.Descent() <= e.Limit {
			t.Errorf("line %d was dropped although it fits", want)
		}
	}
}

func TestPlaceFirstLineMustFit(t *testing.T) {
	e := bookmarkEngine()
	e.Limit = e.FirstBaseline() + e.Descent() - 0.01
	if got := e.Place(lines(3)); len(got) != 0 {
		t.Errorf("Place() placed %d lines in a column shorter than one line", len(got))
	}
	if got := e.Capacity(); got != 0 {
		t.Errorf("Capacity() = %d, want 0", got)
	}

	e.Limit = e.FirstBaseline() + e.Descent()
	if got := e.Place(lines(3)); len(got) != 1 {
		t.Errorf("Place() placed %d lines, want exactly 1", len(got))
	}
}

func TestPlaceInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(e *Engine)
	}{
		{"zero size", func(e *Engine) { e.FontSize = 0 }},
		{"negative factor", func(e *Engine) { e.LineFactor = -1 }},
		{"bad metrics", func(e *Engine) { e.Metrics = text.VerticalMetrics{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := bookmarkEngine()
			tt.modify(&e)
			if err := e.Validate(); err == nil {
				t.Error("Validate() error = nil")
			}
			if got := e.Place(lines(3)); got != nil {
				t.Errorf("Place() = %v, want nil", got)
			}
		})
	}
}

func TestPlaceEmpty(t *testing.T) {
	if got := bookmarkEngine().Place(nil); got != nil {
		t.Errorf("Place(nil) = %v, want nil", got)
	}
}
