package rng

import "testing"

func TestIntnInclusive(t *testing.T) {
	s := New("range")
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.Intn(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("Intn(3, 7) = %d", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 7; v++ {
		if !seen[v] {
			t.Errorf("Intn(3, 7) never returned %d", v)
		}
	}
	if got := s.Intn(5, 5); got != 5 {
		t.Errorf("Intn(5, 5) = %d, want 5", got)
	}
	if got := s.Intn(9, 2); got != 9 {
		t.Errorf("Intn(9, 2) = %d, want 9", got)
	}
}

func TestHelpersConsumeOneDraw(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Stream)
	}{
		{"Intn", func(s *Stream) { s.Intn(0, 999) }},
		{"Bool", func(s *Stream) { s.Bool(0.5) }},
		{"Range", func(s *Stream) { s.Range(-1, 1) }},
		{"Choice", func(s *Stream) { Choice(s, []string{"a", "b", "c"}) }},
		{"Uint32", func(s *Stream) { s.Uint32() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := New("draws"), New("draws")
			tt.draw(a)
			b.Float64()
			if a.Float64() != b.Float64() {
				t.Errorf("%s consumed more than one draw", tt.name)
			}
		})
	}
}

func TestBoolProbability(t *testing.T) {
	s := New("coin")
	for i := 0; i < 100; i++ {
		if s.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !s.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}
}

func TestChoicePanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Choice(empty) did not panic")
		}
	}()
	Choice(New("x"), []int{})
}
