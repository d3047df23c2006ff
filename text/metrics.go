package text

import "fmt"

// VerticalMetrics holds the font-wide vertical metrics in font units.
type VerticalMetrics struct {
	// Ascender is the distance from the baseline to the top of the font
	// (positive).
	Ascender float64

	// Descender is the offset from the baseline to the bottom of the font
	// (negative, below the baseline).
	Descender float64

	// UnitsPerEm is the size of the em square.
	UnitsPerEm int
}

// Validate reports whether the metrics can drive line layout.
func (m VerticalMetrics) Validate() error {
	if m.UnitsPerEm <= 0 || m.Ascender <= 0 || m.Descender > 0 {
		return fmt.Errorf("%w: ascender=%v descender=%v unitsPerEm=%d",
			ErrInvalidMetrics, m.Ascender, m.Descender, m.UnitsPerEm)
	}
	return nil
}

// Ascent returns the ascender scaled to size (positive).
func (m VerticalMetrics) Ascent(size float64) float64 {
	return m.Ascender / float64(m.UnitsPerEm) * size
}

// Descent returns the depth below the baseline at size (positive).
func (m VerticalMetrics) Descent(size float64) float64 {
	return -m.Descender / float64(m.UnitsPerEm) * size
}

// Height returns ascent plus descent at size.
func (m VerticalMetrics) Height(size float64) float64 {
	return (m.Ascender - m.Descender) / float64(m.UnitsPerEm) * size
}
