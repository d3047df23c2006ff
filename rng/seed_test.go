package rng

import "testing"

func TestNewSeed(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantLen int
		wantErr bool
	}{
		{"default length", 0, SeedLength, false},
		{"custom length", 20, 20, false},
		{"single", 1, 1, false},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSeed(tt.n)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSeed(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len(NewSeed(%d)) = %d, want %d", tt.n, len(got), tt.wantLen)
			}
			if !tt.wantErr && !ValidSeed(got) {
				t.Errorf("NewSeed(%d) = %q is not a valid seed", tt.n, got)
			}
		})
	}
}

func TestNewSeedVaries(t *testing.T) {
	a, _ := NewSeed(0)
	b, _ := NewSeed(0)
	if a == b {
		t.Errorf("two seeds are equal: %q", a)
	}
}

func TestValidSeed(t *testing.T) {
	tests := []struct {
		seed string
		want bool
	}{
		{"abc23", true},
		{"", false},
		{"abc0", false},
		{"lol", false},
		{"ABC IJ", false},
	}
	for _, tt := range tests {
		if got := ValidSeed(tt.seed); got != tt.want {
			t.Errorf("ValidSeed(%q) = %v, want %v", tt.seed, got, tt.want)
		}
	}
}
