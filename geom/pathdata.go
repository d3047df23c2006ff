package geom

import (
	"strconv"
	"strings"
)

// PathData serializes the outline as SVG path data. Every contour becomes
// "M x y L x y ... Z" with coordinates rounded to precision decimals.
// Returns "" for an empty outline.
func (o *Outline) PathData(precision int) string {
	if o.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for _, c := range o.poly {
		for i, p := range c {
			if i == 0 {
				sb.WriteByte('M')
			} else {
				sb.WriteByte('L')
			}
			sb.WriteString(formatCoord(p.X, precision))
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(p.Y, precision))
		}
		sb.WriteByte('Z')
	}
	return sb.String()
}

// formatCoord formats v with at most prec decimals, without trailing zeros
// and without a negative sign on zero.
func formatCoord(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// RoundCoord rounds v to prec decimals using the same rule as PathData.
func RoundCoord(v float64, prec int) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
	if err != nil {
		return v
	}
	if f == 0 {
		return 0
	}
	return f
}
