package rng

import "math"

// Intn returns an integer in [min, max], both ends inclusive.
// Consumes exactly one draw. If max < min the result is min.
func (s *Stream) Intn(min, max int) int {
	f := s.Float64()
	if max < min {
		return min
	}
	return int(math.Floor(f*float64(max-min+1))) + min
}

// Bool returns true with probability p. Consumes exactly one draw.
func (s *Stream) Bool(p float64) bool {
	return s.Float64() < p
}

// Range returns a value in [lo, hi). Consumes exactly one draw.
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Choice returns a uniformly drawn element of items.
// Consumes exactly one draw and panics if items is empty.
func Choice[T any](s *Stream, items []T) T {
	if len(items) == 0 {
		panic("rng: Choice from empty slice")
	}
	return items[s.Intn(0, len(items)-1)]
}
