package text

import (
	"errors"
	"math"
	"testing"
)

func TestVerticalMetrics(t *testing.T) {
	m := VerticalMetrics{Ascender: 800, Descender: -200, UnitsPerEm: 1000}
	if got := m.Ascent(3); math.Abs(got-2.4) > 1e-12 {
		t.Errorf("Ascent(3) = %v, want 2.4", got)
	}
	if got := m.Descent(3); math.Abs(got-0.6) > 1e-12 {
		t.Errorf("Descent(3) = %v, want 0.6", got)
	}
	if got := m.Height(10); got != 10 {
		t.Errorf("Height(10) = %v, want 10", got)
	}
}

func TestVerticalMetricsValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       VerticalMetrics
		wantErr bool
	}{
		{"valid", VerticalMetrics{Ascender: 800, Descender: -200, UnitsPerEm: 1000}, false},
		{"zero descender", VerticalMetrics{Ascender: 800, Descender: 0, UnitsPerEm: 1000}, false},
		{"zero upem", VerticalMetrics{Ascender: 800, Descender: -200}, true},
		{"negative ascender", VerticalMetrics{Ascender: -1, Descender: -200, UnitsPerEm: 1000}, true},
		{"positive descender", VerticalMetrics{Ascender: 800, Descender: 10, UnitsPerEm: 1000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidMetrics) {
				t.Errorf("Validate() error = %v, want ErrInvalidMetrics", err)
			}
		})
	}
}
