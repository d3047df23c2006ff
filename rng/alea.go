package rng

import (
	"math"
	"unicode/utf16"
)

const (
	twoPow32    = 4294967296.0
	twoPowNeg32 = 2.3283064365386963e-10
	mashInit    = 0xefc8249d
	aleaMul     = 2091639
)

// mash is the string hash used to derive Alea's initial state.
// It keeps running state between calls.
type mash struct {
	n float64
}

func newMash() *mash {
	return &mash{n: mashInit}
}

// sum hashes data into [0,1).
func (m *mash) sum(data string) float64 {
	for _, c := range utf16.Encode([]rune(data)) {
		m.n += float64(c)
		h := 0.02519603282416938 * m.n
		m.n = toUint32(h)
		h -= m.n
		h *= m.n
		m.n = toUint32(h)
		h -= m.n
		m.n += h * twoPow32
	}
	return toUint32(m.n) * twoPowNeg32
}

// toUint32 truncates x and wraps it into [0, 2^32).
func toUint32(x float64) float64 {
	v := math.Mod(math.Trunc(x), twoPow32)
	if v < 0 {
		v += twoPow32
	}
	return v
}

// Stream is an Alea generator.
type Stream struct {
	s0, s1, s2 float64
	c          float64
	seed       string
}

// New returns a stream seeded with seed. Equal seeds produce equal streams.
func New(seed string) *Stream {
	m := newMash()
	s := &Stream{
		s0:   m.sum(" "),
		s1:   m.sum(" "),
		s2:   m.sum(" "),
		c:    1,
		seed: seed,
	}
	s.s0 = wrapUnit(s.s0 - m.sum(seed))
	s.s1 = wrapUnit(s.s1 - m.sum(seed))
	s.s2 = wrapUnit(s.s2 - m.sum(seed))
	return s
}

func wrapUnit(v float64) float64 {
	if v < 0 {
		return v + 1
	}
	return v
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() string {
	return s.seed
}

// Float64 returns the next value in [0,1).
func (s *Stream) Float64() float64 {
	t := aleaMul*s.s0 + s.c*twoPowNeg32
	s.s0 = s.s1
	s.s1 = s.s2
	s.c = math.Trunc(t)
	s.s2 = t - s.c
	return s.s2
}

// Uint32 returns the next value as a 32-bit integer.
func (s *Stream) Uint32() uint32 {
	return uint32(s.Float64() * twoPow32)
}
